package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/model"
	"github.com/awesomegic/gicbank/internal/request"
)

const (
	simpleFields = 4
	colDate      = 0
	colAccount   = 1
	colType      = 2
	colAmount    = 3

	simpleDateFormat = "20060102"
)

// SimpleParser reads "date,account,type,amount" CSV with a header row.
// Dates are YYYYMMdd and type is D or W.
type SimpleParser struct{}

// Format returns the registry key.
func (SimpleParser) Format() string { return "simple" }

// Parse reads all rows from r.
func (SimpleParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = simpleFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var rows []Row
	for i, rec := range records[1:] {
		line := i + 2

		date, err := time.ParseInLocation(simpleDateFormat, rec[colDate], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q", line, rec[colDate])
		}
		amount, err := decimal.NewFromString(rec[colAmount])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid amount %q", line, rec[colAmount])
		}

		rows = append(rows, Row{
			Line: line,
			Req: request.Transaction{
				Date:      date,
				AccountID: rec[colAccount],
				Kind:      model.TransactionKind(strings.ToUpper(rec[colType])),
				Amount:    amount,
			},
		})
	}
	return rows, nil
}
