package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const sampleCSV = `date,description,amount
2025-06-01,Salary,1200.00
2025-06-02,Groceries,-54.30
2025-06-03,Refund,20.00
`

func TestSimpleParse(t *testing.T) {
	p := &SimpleParser{}
	rows, err := p.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Salary", rows[0].Description)
	assert.True(t, rows[0].Amount.Equal(dec("1200.00")))
	assert.Equal(t, "2025-06-01", rows[0].Date.Format("2006-01-02"))

	assert.True(t, rows[1].Amount.IsNegative())
}

func TestSimpleParse_HeaderOnly(t *testing.T) {
	p := &SimpleParser{}
	rows, err := p.Parse(strings.NewReader("date,description,amount\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSimpleParse_BadRow(t *testing.T) {
	p := &SimpleParser{}
	_, err := p.Parse(strings.NewReader("date,description,amount\nnot-a-date,X,1.00\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("simple"))
	assert.NotNil(t, r.Get("SIMPLE"), "format lookup is case-insensitive")
	assert.Nil(t, r.Get("chase"))
	assert.Contains(t, r.Formats(), "simple")
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&SimpleParser{})
	assert.Panics(t, func() { r.Register(&SimpleParser{}) })
}

func newAccount(t *testing.T) (*ledger.Store, *model.Account) {
	t.Helper()
	s := ledger.Open(filepath.Join(t.TempDir(), "ledger.json"))
	require.NoError(t, s.CreateAccount("alice", "pw"))
	acct, err := s.Authenticate("alice", "pw")
	require.NoError(t, err)
	return s, acct
}

func TestApply(t *testing.T) {
	s, acct := newAccount(t)

	p := &SimpleParser{}
	rows, err := p.Parse(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	res, err := Apply(s, acct, rows)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Applied)
	assert.Empty(t, res.Skipped)

	assert.True(t, acct.Balance.Equal(dec("1165.70")))
	require.Len(t, acct.Transactions, 3)
	assert.Equal(t, model.KindIncome, acct.Transactions[0].Kind)
	assert.Equal(t, model.KindExpense, acct.Transactions[1].Kind)
	assert.Equal(t, "Groceries", acct.Transactions[1].Label)
	assert.Equal(t, "statement 2025-06-02", acct.Transactions[1].Detail)
}

func TestApply_SkipsUncoveredDebits(t *testing.T) {
	s, acct := newAccount(t)

	rows := []StatementRow{
		{Description: "Rent", Amount: dec("-500")},
		{Description: "Salary", Amount: dec("100")},
		{Description: "Nothing", Amount: dec("0")},
	}

	res, err := Apply(s, acct, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Applied)
	require.Len(t, res.Skipped, 2)
	assert.Equal(t, 0, res.Skipped[0].Index)
	assert.Equal(t, "insufficient balance", res.Skipped[0].Reason)
	assert.Equal(t, "zero amount", res.Skipped[1].Reason)
	assert.True(t, acct.Balance.Equal(dec("100")))
}
