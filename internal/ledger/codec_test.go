package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// A file written by the legacy tracker: bare JSON numbers, label keys that
// vary by transaction type, and one date-only timestamp.
const legacyLedger = `{
    "users": {
        "umair": {
            "password": "secret",
            "balance": 25.5,
            "transactions": [
                {
                    "type": "income",
                    "amount": 50,
                    "date": "2025-05-01 09:30:00",
                    "source": "job"
                },
                {
                    "type": "expense",
                    "amount": 20,
                    "date": "2025-05-02 13:00:00",
                    "category": "Food",
                    "description": "lunch"
                },
                {
                    "type": "withdrawal",
                    "amount": 4.5,
                    "date": "2025-05-03",
                    "description": "cash"
                }
            ]
        }
    }
}`

func TestDecodeLegacyFile(t *testing.T) {
	users, err := decode([]byte(legacyLedger))
	require.NoError(t, err)
	require.Contains(t, users, "umair")

	acct := users["umair"]
	assert.Equal(t, "secret", acct.Password)
	assert.True(t, acct.Balance.Equal(dec("25.5")))
	require.Len(t, acct.Transactions, 3)

	income := acct.Transactions[0]
	assert.Equal(t, model.KindIncome, income.Kind)
	assert.Equal(t, "job", income.Label)
	assert.True(t, income.Amount.Equal(dec("50")))

	expense := acct.Transactions[1]
	assert.Equal(t, "Food", expense.Label)
	assert.Equal(t, "lunch", expense.Detail)

	withdrawal := acct.Transactions[2]
	assert.Equal(t, "cash", withdrawal.Label)
	assert.Equal(t, "2025-05-03", withdrawal.Date.Format("2006-01-02"))
}

func TestEncodeUsesLegacyKeys(t *testing.T) {
	users, err := decode([]byte(legacyLedger))
	require.NoError(t, err)

	data, err := encode(users)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, `"users"`)
	assert.Contains(t, out, `"source": "job"`)
	assert.Contains(t, out, `"category": "Food"`)
	assert.Contains(t, out, `"description": "cash"`)
	// Amounts stay bare numbers, not quoted strings.
	assert.Contains(t, out, `"balance": 25.5`)
	assert.Contains(t, out, `"amount": 50`)
	assert.NotContains(t, out, `"50"`)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	users, err := decode([]byte(legacyLedger))
	require.NoError(t, err)

	data, err := encode(users)
	require.NoError(t, err)

	again, err := decode(data)
	require.NoError(t, err)
	require.Contains(t, again, "umair")
	assert.Equal(t, users["umair"].Transactions, again["umair"].Transactions)
	assert.True(t, users["umair"].Balance.Equal(again["umair"].Balance))
}

func TestDecodeQuotedAmount(t *testing.T) {
	users, err := decode([]byte(`{"users":{"a":{"password":"p","balance":"7.25","transactions":[]}}}`))
	require.NoError(t, err)
	assert.True(t, users["a"].Balance.Equal(dec("7.25")))
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := decode([]byte(`{"users":{"a":{"password":"p","balance":0,"transactions":[{"type":"transfer","amount":1,"date":"2025-01-01 00:00:00"}]}}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transaction type")
}
