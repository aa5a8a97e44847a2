package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	e := New("alice", "income", "amount=50 source=job")

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "alice", e.User)
	assert.Equal(t, "income", e.Action)
	assert.WithinDuration(t, time.Now(), e.Timestamp, time.Minute)

	// IDs are unique per entry.
	assert.NotEqual(t, e.ID, New("alice", "income", "").ID)
}

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, New("alice", "signup", "")))
	require.NoError(t, Append(dir, New("alice", "income", "amount=50"), New("alice", "expense", "amount=20")))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "signup", entries[0].Action)
	assert.Equal(t, "income", entries[1].Action)
	assert.Equal(t, "amount=20", entries[2].Details)
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Append(dir, New("a", "signup", "")))
	require.NoError(t, Append(dir, New("b", "signup", "")))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "audit-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMarshalRoundTrip(t *testing.T) {
	e := Entry{
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ID:        "abc-123",
		User:      "alice",
		Action:    "delete",
		Details:   "index=2, kind=income",
	}

	got, err := UnmarshalEntry(MarshalEntry(e))
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalBadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"just", "three", "fields"})
	require.Error(t, err)
}
