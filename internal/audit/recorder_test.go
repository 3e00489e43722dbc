package audit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"backoffice/internal/models"

	"github.com/stretchr/testify/require"
)

var testConfig = Config{
	Buffer:     100,
	BatchSize:  10,
	FlushEvery: 10 * time.Millisecond,
}

func jane() *models.StaffUser {
	return &models.StaffUser{
		ID:          "u2",
		Username:    "jane",
		DisplayName: "Jane",
		Role:        models.RoleStaff,
	}
}

func TestRecordAndQuery(t *testing.T) {
	store := NewMemoryStore()
	rec := NewRecorderWithConfig(store, testConfig)

	rec.Record(jane(), ActionCreateTransaction, TransactionDetails{
		TransactionID: "t1",
		Amount:        500,
		Category:      "rent",
	})
	rec.Close()

	entries, err := rec.Query(context.Background(), "Jane", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	require.Equal(t, ActionCreateTransaction, entry.Action)
	require.Equal(t, "u2", entry.ActorID)
	require.Equal(t, "Jane", entry.ActorLabel)
	require.False(t, entry.Timestamp.IsZero())

	var details TransactionDetails
	require.NoError(t, json.Unmarshal([]byte(entry.Details), &details))
	require.Equal(t, float64(500), details.Amount)
	require.Equal(t, "rent", details.Category)
}

func TestRecordingIsAppendOnly(t *testing.T) {
	store := NewMemoryStore()
	rec := NewRecorderWithConfig(store, testConfig)

	// identical inputs twice: two independent records, never merged
	rec.Record(jane(), ActionDeleteCategory, CategoryDetails{CategoryID: "c1"})
	rec.Record(jane(), ActionDeleteCategory, CategoryDetails{CategoryID: "c1"})
	rec.Close()

	entries, err := rec.Query(context.Background(), "", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, entries[0].Details, entries[1].Details)
}

func TestNilActorRecordsUnauthenticatedAttempt(t *testing.T) {
	store := NewMemoryStore()
	rec := NewRecorderWithConfig(store, testConfig)

	rec.LoginFailed("intruder")
	rec.Close()

	entries, err := rec.Query(context.Background(), "intruder", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, ActionLoginFailed, entries[0].Action)
	require.Empty(t, entries[0].ActorID)
	require.Empty(t, entries[0].ActorLabel)
}

func TestAppendFailureIsSwallowed(t *testing.T) {
	store := NewMemoryStore()
	store.FailWith = errors.New("store unreachable")
	rec := NewRecorderWithConfig(store, testConfig)

	// must not panic or block the caller
	rec.Record(jane(), ActionCreateTransaction, TransactionDetails{TransactionID: "t1"})
	rec.Close()

	require.Equal(t, 0, store.Len())
}

func TestQueryNewestFirstWithLimit(t *testing.T) {
	store := NewMemoryStore()
	rec := NewRecorderWithConfig(store, testConfig)

	for i := 0; i < 5; i++ {
		rec.Record(jane(), ActionUpdateProfile, nil)
		time.Sleep(time.Millisecond)
	}
	rec.Close()

	entries, err := rec.Query(context.Background(), "", 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i := 1; i < len(entries); i++ {
		require.False(t, entries[i].Timestamp.After(entries[i-1].Timestamp))
	}
}

func TestBufferOverflowWritesThrough(t *testing.T) {
	store := NewMemoryStore()
	cfg := Config{Buffer: 1, BatchSize: 50, FlushEvery: time.Hour}
	rec := NewRecorderWithConfig(store, cfg)

	for i := 0; i < 10; i++ {
		rec.Record(jane(), ActionLogout, nil)
	}
	rec.Close()

	entries, err := rec.Query(context.Background(), "", 50)
	require.NoError(t, err)
	require.Len(t, entries, 10)
}
