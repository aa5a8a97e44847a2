package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies ledger transactions.
type TransactionKind string

const (
	KindIncome     TransactionKind = "income"
	KindExpense    TransactionKind = "expense"
	KindWithdrawal TransactionKind = "withdrawal"
)

// Valid reports whether k is a known transaction kind.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindIncome, KindExpense, KindWithdrawal:
		return true
	}
	return false
}

// IsDebit reports whether the kind decreases the balance.
func (k TransactionKind) IsDebit() bool {
	return k == KindExpense || k == KindWithdrawal
}

// Transaction is one entry in an account's history. Amount is always
// positive; the balance effect comes from Kind. A transaction's position in
// the account's sequence is its identifier, valid only until the next
// mutation of that account.
type Transaction struct {
	Kind   TransactionKind
	Amount decimal.Decimal
	Date   time.Time // second resolution
	Label  string    // income source or expense category
	Detail string    // free-text description, debits only
}

// Signed returns the balance effect: +Amount for income, -Amount for debits.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind.IsDebit() {
		return t.Amount.Neg()
	}
	return t.Amount
}

// DisplayLabel returns the label to show for this transaction, falling back
// to the detail text when no label was recorded.
func (t Transaction) DisplayLabel() string {
	if t.Label != "" {
		return t.Label
	}
	return t.Detail
}
