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

func TestRecordAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	logger := New(path)

	ts := time.Date(2024, 11, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, logger.Record(ts, "post-transaction", "A1", "20241101 A1 D 100.00", "ok"))
	require.NoError(t, logger.Record(ts.Add(time.Minute), "statement", "A1", "2024-11", "account not found"))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "post-transaction", entries[0].Operation)
	assert.Equal(t, "A1", entries[0].Subject)
	assert.Equal(t, "ok", entries[0].Outcome)
	assert.True(t, ts.Equal(entries[0].Timestamp))
	assert.Equal(t, "account not found", entries[1].Outcome)
}

func TestRecord_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.csv")
	logger := New(path)

	ts := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, logger.Record(ts, "post-interest-rule", "RULE01", "", "ok"))
	require.NoError(t, logger.Record(ts, "post-interest-rule", "RULE02", "", "ok"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRecord_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "audit.csv")
	logger := New(path)

	require.NoError(t, logger.Record(time.Now(), "statement", "A1", "", "ok"))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestNilLoggerDiscards(t *testing.T) {
	var logger *Logger
	assert.NoError(t, logger.Record(time.Now(), "statement", "A1", "", "ok"))
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUnmarshalEntry_WrongFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "four", "fields", "here"})
	assert.Error(t, err)
}
