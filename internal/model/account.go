package model

import "github.com/shopspring/decimal"

// Account is one user's ledger: a credential, a running balance, and the
// append-ordered transaction history that produced it. Balance always equals
// the signed sum of Transactions as long as the account is only mutated
// through the ledger store.
type Account struct {
	Username     string
	Password     string // plaintext exact-match, kept for data-file compatibility
	Balance      decimal.Decimal
	Transactions []Transaction
}
