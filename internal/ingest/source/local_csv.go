package source

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"clothinghub/internal/models"
)

const localCSVCodePrefix = "local-csv"

// ColumnMap binds feed columns to raw product fields. With a header row the
// values are column names; without one they are zero-based column indexes in
// string form.
type ColumnMap struct {
	SourceProductID     string `json:"sourceProductId" yaml:"sourceProductId"`
	Title               string `json:"title" yaml:"title"`
	ProductURL          string `json:"productUrl" yaml:"productUrl"`
	ImageURL            string `json:"imageUrl" yaml:"imageUrl"`
	Price               string `json:"price" yaml:"price"`
	Brand               string `json:"brand,omitempty" yaml:"brand,omitempty"`
	Description         string `json:"description,omitempty" yaml:"description,omitempty"`
	CategoryPath        string `json:"categoryPath,omitempty" yaml:"categoryPath,omitempty"`
	AdditionalImageURLs string `json:"additionalImageUrls,omitempty" yaml:"additionalImageUrls,omitempty"`
	Currency            string `json:"currency,omitempty" yaml:"currency,omitempty"`
	Availability        string `json:"availability,omitempty" yaml:"availability,omitempty"`
}

// LocalCSV reads a delimited feed file and maps rows to raw products via a
// caller-supplied column map.
type LocalCSV struct {
	retailerID string
	sourceID   string
	filePath   string
	delimiter  rune
	hasHeader  bool
	charset    string
	columns    ColumnMap
}

// LocalCSVOptions configures a local CSV feed source.
type LocalCSVOptions struct {
	FilePath   string
	RetailerID string
	SourceID   string
	Delimiter  rune
	HasHeader  *bool
	Charset    string
	Columns    ColumnMap
}

// NewLocalCSV creates a local CSV feed source. The header defaults to
// present and the delimiter to a comma.
func NewLocalCSV(opts LocalCSVOptions) *LocalCSV {
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}

	hasHeader := true
	if opts.HasHeader != nil {
		hasHeader = *opts.HasHeader
	}

	return &LocalCSV{
		retailerID: opts.RetailerID,
		sourceID:   opts.SourceID,
		filePath:   opts.FilePath,
		delimiter:  delimiter,
		hasHeader:  hasHeader,
		charset:    opts.Charset,
		columns:    opts.Columns,
	}
}

// SourceID returns the source identifier.
func (s *LocalCSV) SourceID() string { return s.sourceID }

// RetailerID returns the retailer identifier.
func (s *LocalCSV) RetailerID() string { return s.retailerID }

// ListRawProducts reads, decodes, and parses the CSV feed. Rows missing any
// required column are skipped with an error issue while the rest of the
// batch proceeds.
func (s *LocalCSV) ListRawProducts(_ context.Context) Result {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return failure([]models.Issue{{
			Severity:   models.SeverityError,
			Code:       localCSVCodePrefix + ".read_failed",
			Message:    fmt.Sprintf("Failed to read CSV feed at %s", s.filePath),
			RetailerID: s.retailerID,
			SourceID:   s.sourceID,
			Details:    map[string]any{"error": err.Error()},
		}})
	}

	text, err := decodeCharset(data, s.charset)
	if err != nil {
		return failure([]models.Issue{{
			Severity:   models.SeverityError,
			Code:       localCSVCodePrefix + ".read_failed",
			Message:    fmt.Sprintf("Failed to decode CSV feed at %s", s.filePath),
			RetailerID: s.retailerID,
			SourceID:   s.sourceID,
			Details:    map[string]any{"error": err.Error()},
		}})
	}

	rows := parseCSV(text, s.delimiter)
	if len(rows) == 0 {
		return failure([]models.Issue{{
			Severity:   models.SeverityError,
			Code:       localCSVCodePrefix + ".empty",
			Message:    "CSV feed is empty",
			RetailerID: s.retailerID,
			SourceID:   s.sourceID,
		}})
	}

	headerIndex := make(map[string]int)
	dataRows := rows

	if s.hasHeader {
		for idx, name := range rows[0] {
			headerIndex[trimmedHeader(name)] = idx
		}

		dataRows = rows[1:]
	}

	var (
		products []models.RawProduct
		issues   []models.Issue
	)

	for index, row := range dataRows {
		product, rowIssues := s.mapRow(row, headerIndex, index)
		issues = append(issues, rowIssues...)

		if product != nil {
			products = append(products, *product)
		}
	}

	products, issues = ValidateProducts(products, ValidateOptions{
		RetailerID: s.retailerID,
		SourceID:   s.sourceID,
		CodePrefix: localCSVCodePrefix,
	}, issues)

	return finishResult(products, issues)
}

func (s *LocalCSV) mapRow(row []string, headerIndex map[string]int, index int) (*models.RawProduct, []models.Issue) {
	get := func(column string) string {
		if column == "" {
			return ""
		}

		if s.hasHeader {
			idx, ok := headerIndex[column]
			if !ok || idx >= len(row) {
				return ""
			}

			return trimmedHeader(row[idx])
		}

		idx, err := strconv.Atoi(column)
		if err != nil || idx < 0 || idx >= len(row) {
			return ""
		}

		return trimmedHeader(row[idx])
	}

	productID := get(s.columns.SourceProductID)
	title := get(s.columns.Title)
	productURL := get(s.columns.ProductURL)
	imageURL := get(s.columns.ImageURL)
	priceValue := get(s.columns.Price)
	currencyValue := get(s.columns.Currency)

	amount, currency := parsePriceText(priceValue, currencyValue)

	if productID == "" || title == "" || productURL == "" || imageURL == "" || amount == nil {
		return nil, []models.Issue{{
			Severity:   models.SeverityError,
			Code:       localCSVCodePrefix + ".missing_required",
			Message:    "Row is missing required fields",
			RetailerID: s.retailerID,
			SourceID:   s.sourceID,
			Details: map[string]any{
				"index":      index,
				"productId":  productID,
				"title":      title,
				"productUrl": productURL,
				"imageUrl":   imageURL,
				"price":      priceValue,
			},
		}}
	}

	product := &models.RawProduct{
		ID:           productID,
		RetailerID:   s.retailerID,
		SourceID:     s.sourceID,
		Name:         title,
		Brand:        get(s.columns.Brand),
		Description:  get(s.columns.Description),
		ProductURL:   productURL,
		ImageURL:     imageURL,
		ImageURLs:    splitMultiValue(get(s.columns.AdditionalImageURLs)),
		Price:        amount,
		Currency:     currency,
		CategoryPath: get(s.columns.CategoryPath),
		InStock:      parseBoolText(get(s.columns.Availability)),
	}

	return product, nil
}

func trimmedHeader(s string) string {
	return strings.TrimSpace(s)
}
