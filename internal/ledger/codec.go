package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// DateFormat is the wire format for transaction timestamps.
const DateFormat = "2006-01-02 15:04:05"

// fileDoc is the on-disk layout: a single "users" object keyed by username.
type fileDoc struct {
	Users map[string]fileAccount `json:"users"`
}

type fileAccount struct {
	Password     string            `json:"password"`
	Balance      wireDecimal       `json:"balance"`
	Transactions []fileTransaction `json:"transactions"`
}

// fileTransaction keeps the legacy label keys: income stores its label under
// "source", expense under "category" plus an optional "description", and
// withdrawal under "description" alone.
type fileTransaction struct {
	Type        string      `json:"type"`
	Amount      wireDecimal `json:"amount"`
	Date        string      `json:"date"`
	Source      string      `json:"source,omitempty"`
	Category    string      `json:"category,omitempty"`
	Description string      `json:"description,omitempty"`
}

// wireDecimal marshals as a bare JSON number so ledger files stay readable
// by the legacy tooling, and accepts either quoted or bare numbers on read.
type wireDecimal struct{ decimal.Decimal }

func (d wireDecimal) MarshalJSON() ([]byte, error) {
	return []byte(d.Decimal.String()), nil
}

func (d *wireDecimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	dec, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parsing decimal %q: %w", s, err)
	}
	d.Decimal = dec
	return nil
}

// encode serializes the full account map to indented JSON.
func encode(users map[string]*model.Account) ([]byte, error) {
	doc := fileDoc{Users: make(map[string]fileAccount, len(users))}
	for name, acct := range users {
		doc.Users[name] = marshalAccount(acct)
	}
	return json.MarshalIndent(doc, "", "    ")
}

// decode parses a ledger file into an account map.
func decode(data []byte) (map[string]*model.Account, error) {
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing ledger: %w", err)
	}

	users := make(map[string]*model.Account, len(doc.Users))
	for name, fa := range doc.Users {
		acct, err := unmarshalAccount(name, fa)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", name, err)
		}
		users[name] = acct
	}
	return users, nil
}

func marshalAccount(a *model.Account) fileAccount {
	fa := fileAccount{
		Password:     a.Password,
		Balance:      wireDecimal{a.Balance},
		Transactions: make([]fileTransaction, 0, len(a.Transactions)),
	}
	for _, tx := range a.Transactions {
		fa.Transactions = append(fa.Transactions, marshalTransaction(tx))
	}
	return fa
}

func unmarshalAccount(name string, fa fileAccount) (*model.Account, error) {
	acct := &model.Account{
		Username: name,
		Password: fa.Password,
		Balance:  fa.Balance.Decimal,
	}
	for i, ftx := range fa.Transactions {
		tx, err := unmarshalTransaction(ftx)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		acct.Transactions = append(acct.Transactions, tx)
	}
	return acct, nil
}

func marshalTransaction(t model.Transaction) fileTransaction {
	ftx := fileTransaction{
		Type:   string(t.Kind),
		Amount: wireDecimal{t.Amount},
		Date:   t.Date.Format(DateFormat),
	}
	switch t.Kind {
	case model.KindIncome:
		ftx.Source = t.Label
	case model.KindExpense:
		ftx.Category = t.Label
		ftx.Description = t.Detail
	case model.KindWithdrawal:
		ftx.Description = t.Label
	}
	return ftx
}

func unmarshalTransaction(ftx fileTransaction) (model.Transaction, error) {
	kind := model.TransactionKind(ftx.Type)
	if !kind.Valid() {
		return model.Transaction{}, fmt.Errorf("unknown transaction type %q", ftx.Type)
	}

	date, err := parseDate(ftx.Date)
	if err != nil {
		return model.Transaction{}, err
	}

	tx := model.Transaction{
		Kind:   kind,
		Amount: ftx.Amount.Decimal,
		Date:   date,
	}
	switch kind {
	case model.KindIncome:
		tx.Label = ftx.Source
	case model.KindExpense:
		tx.Label = ftx.Category
		tx.Detail = ftx.Description
	case model.KindWithdrawal:
		tx.Label = ftx.Description
	}
	return tx, nil
}

// parseDate accepts the full timestamp format and the date-only form some
// legacy files carry.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}
