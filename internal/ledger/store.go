package ledger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// Store is the account ledger: every account with its balance and
// transaction history, held in memory and mirrored to a single JSON file
// after each mutation. It assumes one exclusive in-process owner; there is
// no file locking, so two processes sharing a ledger file will silently
// clobber each other's writes.
type Store struct {
	path  string
	users map[string]*model.Account
	now   func() time.Time
}

// Open loads the ledger at path. A missing, unreadable, or corrupt file
// starts an empty store; the file is rewritten on the first mutation.
func Open(path string) *Store {
	s := &Store{
		path:  path,
		users: make(map[string]*model.Account),
		now:   time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	users, err := decode(data)
	if err != nil {
		return s
	}
	s.users = users
	return s
}

// Save rewrites the whole ledger file. Callers normally never need this:
// every mutating operation saves on its own.
func (s *Store) Save() error {
	data, err := encode(s.users)
	if err != nil {
		return fmt.Errorf("%w: encoding: %v", ErrPersistence, err)
	}

	// Write a temp file next to the target, then rename over it, so a
	// crash mid-write cannot leave a truncated ledger behind.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", ErrPersistence, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: replacing %s: %v", ErrPersistence, s.path, err)
	}
	return nil
}

// CreateAccount inserts a new account with a zero balance and no
// transactions, then persists. Usernames are case-folded and must be unique.
func (s *Store) CreateAccount(username, password string) error {
	name := normalize(username)
	if name == "" {
		return ErrEmptyUsername
	}
	if _, ok := s.users[name]; ok {
		return ErrAccountExists
	}

	s.users[name] = &model.Account{
		Username: name,
		Password: password,
		Balance:  decimal.Zero,
	}
	return s.Save()
}

// Authenticate looks up an account and checks its credential by exact match.
// The returned handle is valid for subsequent operations on this store;
// there is no session or token concept.
//
// Passwords are stored and compared in plaintext for compatibility with
// existing ledger files. Known gap.
func (s *Store) Authenticate(username, password string) (*model.Account, error) {
	acct, ok := s.users[normalize(username)]
	if !ok {
		return nil, ErrUnknownAccount
	}
	if acct.Password != password {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

// RecordIncome appends an income transaction, credits the balance, persists,
// and returns the new balance.
func (s *Store) RecordIncome(acct *model.Account, amount decimal.Decimal, source string) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return acct.Balance, ErrInvalidAmount
	}

	acct.Transactions = append(acct.Transactions, model.Transaction{
		Kind:   model.KindIncome,
		Amount: amount,
		Date:   s.now().Truncate(time.Second),
		Label:  source,
	})
	acct.Balance = acct.Balance.Add(amount)
	return acct.Balance, s.Save()
}

// RecordDebit appends an expense or withdrawal transaction, debits the
// balance, persists, and returns the new balance. A debit equal to the
// balance is allowed (leaving zero); one unit more fails with
// ErrInsufficientBalance.
func (s *Store) RecordDebit(acct *model.Account, amount decimal.Decimal, kind model.TransactionKind, label, detail string) (decimal.Decimal, error) {
	if !kind.IsDebit() {
		return acct.Balance, ErrInvalidKind
	}
	if amount.Sign() <= 0 {
		return acct.Balance, ErrInvalidAmount
	}
	if amount.GreaterThan(acct.Balance) {
		return acct.Balance, ErrInsufficientBalance
	}

	tx := model.Transaction{
		Kind:   kind,
		Amount: amount,
		Date:   s.now().Truncate(time.Second),
	}
	if kind == model.KindExpense {
		tx.Label = label
		tx.Detail = detail
	} else {
		// Withdrawals carry a single description.
		tx.Label = label
		if tx.Label == "" {
			tx.Label = detail
		}
	}

	acct.Transactions = append(acct.Transactions, tx)
	acct.Balance = acct.Balance.Sub(amount)
	return acct.Balance, s.Save()
}

// Transactions returns a copy of the account's history in append order.
// An empty slice is a valid result, distinct from an unknown account.
func (s *Store) Transactions(acct *model.Account) []model.Transaction {
	out := make([]model.Transaction, len(acct.Transactions))
	copy(out, acct.Transactions)
	return out
}

// DeleteTransaction removes the transaction at index and reverses its
// balance effect, then persists. Indices of later transactions shift down by
// one. Reversing an income can drive the balance negative; that is the
// documented behavior, not rejected.
func (s *Store) DeleteTransaction(acct *model.Account, index int) error {
	if index < 0 || index >= len(acct.Transactions) {
		return ErrIndexOutOfRange
	}

	tx := acct.Transactions[index]
	acct.Transactions = append(acct.Transactions[:index], acct.Transactions[index+1:]...)
	acct.Balance = acct.Balance.Sub(tx.Signed())
	return s.Save()
}

// Usernames returns the case-folded usernames present in the store, in no
// particular order.
func (s *Store) Usernames() []string {
	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	return names
}

func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
