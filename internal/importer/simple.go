package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// SimpleParser parses the generic "date,description,amount" CSV layout most
// banks can export, with a header row and signed amounts.
type SimpleParser struct{}

const (
	simpleDateFormat = "2006-01-02"
	simpleNumFields  = 3
	simpleColDate    = 0
	simpleColDesc    = 1
	simpleColAmount  = 2
)

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads a simple CSV and returns StatementRows.
func (p *SimpleParser) Parse(r io.Reader) ([]StatementRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = simpleNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var rows []StatementRow
	for i, rec := range records[1:] {
		row, err := parseSimpleRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseSimpleRow(rec []string) (StatementRow, error) {
	date, err := time.Parse(simpleDateFormat, rec[simpleColDate])
	if err != nil {
		return StatementRow{}, fmt.Errorf("parsing date %q: %w", rec[simpleColDate], err)
	}

	amount, err := decimal.NewFromString(rec[simpleColAmount])
	if err != nil {
		return StatementRow{}, fmt.Errorf("parsing amount %q: %w", rec[simpleColAmount], err)
	}

	return StatementRow{
		Date:        date,
		Description: rec[simpleColDesc],
		Amount:      amount,
	}, nil
}
