// Package report summarizes expense history over a date window, matching
// the weekly / monthly / custom-range reports of the original tracker.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// Window is an inclusive date range filter.
type Window struct {
	From time.Time
	To   time.Time
}

// LastDays returns a window covering the past days up to now.
func LastDays(now time.Time, days int) Window {
	return Window{From: now.AddDate(0, 0, -days), To: now}
}

// Between returns a window from the start of from through the end of to,
// so both boundary days are included.
func Between(from, to time.Time) Window {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
	return Window{From: start, To: end}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// Summary is the result of filtering expenses into a window.
type Summary struct {
	Rows  []model.Transaction
	Total decimal.Decimal
}

// Expenses filters expense transactions inside w, preserving append order,
// and totals their amounts.
func Expenses(txs []model.Transaction, w Window) Summary {
	sum := Summary{Total: decimal.Zero}
	for _, tx := range txs {
		if tx.Kind != model.KindExpense {
			continue
		}
		if !w.Contains(tx.Date) {
			continue
		}
		sum.Rows = append(sum.Rows, tx)
		sum.Total = sum.Total.Add(tx.Amount)
	}
	return sum
}
