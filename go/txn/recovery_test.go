package txn

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tradewire/mt5bridge/go/wal"
)

func openRecoveryLog(t *testing.T) *wal.Log {
	t.Helper()
	var journal, err = wal.Open(filepath.Join(t.TempDir(), "orders.db"), 7)
	require.NoError(t, err)
	t.Cleanup(func() { _ = journal.Close() })
	return journal
}

func TestRecoverIncompleteMatchesHistory(t *testing.T) {
	var journal = openRecoveryLog(t)

	var executedID = GenerateRequestID()
	var lostID = GenerateRequestID()
	require.NoError(t, journal.LogIntent(executedID, `{"symbol":"EURUSD"}`))
	require.NoError(t, journal.MarkSent(executedID))
	require.NoError(t, journal.LogIntent(lostID, `{"symbol":"GBPUSD"}`))

	var searchedWindows int
	var search = func(_ context.Context, from, to time.Time) ([]HistoryRecord, error) {
		searchedWindows++
		require.True(t, from.Before(to))
		return []HistoryRecord{
			{Comment: "manual order", Payload: `{"ticket":1}`},
			{Comment: MarkComment("strategy", executedID), Payload: `{"ticket":2}`},
		}, nil
	}

	recovered, failed, err := RecoverIncomplete(context.Background(), journal, 15*time.Minute, search)
	require.NoError(t, err)
	require.Equal(t, 1, recovered)
	require.Equal(t, 1, failed)
	require.Equal(t, 2, searchedWindows)

	e, err := journal.GetEntry(executedID)
	require.NoError(t, err)
	require.Equal(t, wal.Recovered, e.Status)
	require.Equal(t, `{"ticket":2}`, e.ResultJSON)

	e, err = journal.GetEntry(lostID)
	require.NoError(t, err)
	require.Equal(t, wal.Failed, e.Status)
	require.Equal(t, "recovered-not-found", e.Error)
}

func TestRecoverIncompleteLeavesEntryOnSearchFailure(t *testing.T) {
	var journal = openRecoveryLog(t)

	var id = GenerateRequestID()
	require.NoError(t, journal.LogIntent(id, `{}`))

	recovered, failed, err := RecoverIncomplete(context.Background(), journal, time.Minute,
		func(context.Context, time.Time, time.Time) ([]HistoryRecord, error) {
			return nil, errors.New("terminal unreachable")
		})
	require.NoError(t, err)
	require.Zero(t, recovered)
	require.Zero(t, failed)

	// The entry stays incomplete for the next recovery pass.
	var e, gerr = journal.GetEntry(id)
	require.NoError(t, gerr)
	require.Equal(t, wal.Pending, e.Status)
}

func TestRecoverIncompleteNoEntries(t *testing.T) {
	var journal = openRecoveryLog(t)
	recovered, failed, err := RecoverIncomplete(context.Background(), journal, time.Minute,
		func(context.Context, time.Time, time.Time) ([]HistoryRecord, error) {
			t.Fatal("search must not run without incomplete entries")
			return nil, nil
		})
	require.NoError(t, err)
	require.Zero(t, recovered)
	require.Zero(t, failed)
}
