package models

// Issue severities.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Issue is a structured diagnostic emitted by a pipeline stage. Issues are
// the only channel for partial-failure reporting; a single bad record never
// aborts a batch.
type Issue struct {
	Severity   string         `json:"severity"`
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	RetailerID string         `json:"retailerId,omitempty"`
	SourceID   string         `json:"sourceId,omitempty"`
	ProductID  string         `json:"productId,omitempty"`
	VariantID  string         `json:"variantId,omitempty"`
	Field      string         `json:"field,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// ErrorCount returns the number of error-severity issues.
func ErrorCount(issues []Issue) int {
	return countSeverity(issues, SeverityError)
}

// WarningCount returns the number of warning-severity issues.
func WarningCount(issues []Issue) int {
	return countSeverity(issues, SeverityWarning)
}

func countSeverity(issues []Issue, severity string) int {
	count := 0

	for _, issue := range issues {
		if issue.Severity == severity {
			count++
		}
	}

	return count
}
