package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-snapshot/internal/snapshot"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	firstMonth := snapshot.NewDate(2024, time.January, 1)
	memo := "Groceries"
	doc := &snapshot.Document{}
	doc.Data.ServerKnowledge = 12345
	doc.Data.Budget = snapshot.Budget{
		ID:         "budget-1",
		Name:       "Household",
		FirstMonth: &firstMonth,
		LastMonth:  &firstMonth,
		Accounts:   []snapshot.Account{{ID: "a-1", Name: "Checking"}},
		Transactions: []snapshot.Transaction{
			{ID: "t-1", Date: snapshot.NewDate(2024, time.January, 5), Amount: 4500, Memo: &memo, AccountID: "a-1", Cleared: snapshot.ClearedCleared},
		},
	}

	path := filepath.Join(t.TempDir(), "budget.json")
	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestSave_IndentedOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.json")
	require.NoError(t, Save(path, &snapshot.Document{}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  \"data\"")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_AbsentCollectionsStayNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data":{"budget":{"id":"b","transactions":[]}}}`), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.NotNil(t, doc.Data.Budget.Transactions)
	assert.Nil(t, doc.Data.Budget.Payees, "absent collection decodes as nil")
}
