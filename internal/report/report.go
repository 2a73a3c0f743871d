// Package report renders human-readable ingestion run summaries.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"clothinghub/internal/ingest/run"
	"clothinghub/internal/models"
)

// maxIssueLines caps how many issues are listed per severity before the
// report truncates.
const maxIssueLines = 20

// RenderSummary renders a run summary as aligned plain text suitable for a
// terminal or a CI log.
func RenderSummary(summary *run.Summary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Ingestion run %s\n", summary.RunID)
	fmt.Fprintf(&sb, "Started:   %s\n", summary.StartedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "Duration:  %s\n", summary.Duration.Round(time.Millisecond).String())
	fmt.Fprintf(&sb, "Persisted: %d of %d fetched\n", summary.Persisted, summary.Fetched)

	if summary.SnapshotPath != "" {
		fmt.Fprintf(&sb, "Snapshot:  %s\n", summary.SnapshotPath)
	}

	sb.WriteString("\n")
	sb.WriteString(renderSourceTable(summary.Sources))

	if errs := models.ErrorCount(summary.Issues); errs > 0 {
		sb.WriteString("\nErrors:\n")
		sb.WriteString(renderIssues(summary.Issues, models.SeverityError))
	}

	if warns := models.WarningCount(summary.Issues); warns > 0 {
		sb.WriteString("\nWarnings:\n")
		sb.WriteString(renderIssues(summary.Issues, models.SeverityWarning))
	}

	return sb.String()
}

func renderSourceTable(sources []run.SourceSummary) string {
	header := []string{"SOURCE", "RETAILER", "FETCHED", "KEPT", "ERRORS", "WARNINGS"}

	rows := make([][]string, 0, len(sources))
	for _, src := range sources {
		rows = append(rows, []string{
			src.SourceID,
			src.RetailerID,
			fmt.Sprintf("%d", src.Fetched),
			fmt.Sprintf("%d", src.Normalized),
			fmt.Sprintf("%d", src.Errors),
			fmt.Sprintf("%d", src.Warnings),
		})
	}

	return renderTable(header, rows)
}

// renderTable aligns columns by display width so wide characters in source
// names do not break the layout.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))

	for i, cell := range header {
		widths[i] = runewidth.StringWidth(cell)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}

			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder

	writeRow := func(cells []string) {
		for i, cell := range cells {
			sb.WriteString(cell)

			if i < len(cells)-1 {
				padding := widths[i] - runewidth.StringWidth(cell)
				sb.WriteString(strings.Repeat(" ", padding+2))
			}
		}

		sb.WriteString("\n")
	}

	writeRow(header)

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

func renderIssues(issues []models.Issue, severity string) string {
	var sb strings.Builder

	count := 0

	for _, issue := range issues {
		if issue.Severity != severity {
			continue
		}

		count++

		if count > maxIssueLines {
			continue
		}

		sb.WriteString("  ")
		sb.WriteString(issue.Code)

		if issue.ProductID != "" {
			fmt.Fprintf(&sb, " [%s]", issue.ProductID)
		}

		if issue.Message != "" {
			sb.WriteString(": ")
			sb.WriteString(issue.Message)
		}

		sb.WriteString("\n")
	}

	if count > maxIssueLines {
		fmt.Fprintf(&sb, "  ... and %d more\n", count-maxIssueLines)
	}

	return sb.String()
}
