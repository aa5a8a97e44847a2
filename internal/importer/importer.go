// Package importer turns bank statement CSV exports into ledger
// transactions: positive rows become income, negative rows become expenses.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

// StatementRow is one parsed statement line. Amount is signed: negative
// means money left the account.
type StatementRow struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// Parser converts a statement CSV file into StatementRows.
type Parser interface {
	Parse(r io.Reader) ([]StatementRow, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&SimpleParser{})
	return r
}

// SkippedRow records a statement row that could not be applied.
type SkippedRow struct {
	Index  int // 0-based row position
	Reason string
}

// Result summarizes one import run.
type Result struct {
	Applied int
	Skipped []SkippedRow
}

// Apply records statement rows against an account. Rows with a zero amount,
// and debits the balance cannot cover, are skipped and reported in the
// Result; a persistence failure aborts the run.
func Apply(store *ledger.Store, acct *model.Account, rows []StatementRow) (Result, error) {
	var res Result
	for i, row := range rows {
		detail := fmt.Sprintf("statement %s", row.Date.Format("2006-01-02"))

		var err error
		switch row.Amount.Sign() {
		case 0:
			res.Skipped = append(res.Skipped, SkippedRow{Index: i, Reason: "zero amount"})
			continue
		case 1:
			_, err = store.RecordIncome(acct, row.Amount, row.Description)
		default:
			_, err = store.RecordDebit(acct, row.Amount.Abs(), model.KindExpense, row.Description, detail)
		}

		if err == nil {
			res.Applied++
			continue
		}
		if errors.Is(err, ledger.ErrInsufficientBalance) {
			res.Skipped = append(res.Skipped, SkippedRow{Index: i, Reason: "insufficient balance"})
			continue
		}
		return res, fmt.Errorf("row %d: %w", i+1, err)
	}
	return res, nil
}
