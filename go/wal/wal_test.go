package wal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestLog(t *testing.T) *Log {
	t.Helper()
	var l, err = Open(filepath.Join(t.TempDir(), "orders.db"), 7)
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestEntryLifecycle(t *testing.T) {
	var l = openTestLog(t)

	require.NoError(t, l.LogIntent("RQ0011223344556677", `{"symbol":"EURUSD"}`))

	var e, err = l.GetEntry("RQ0011223344556677")
	require.NoError(t, err)
	require.NotNil(t, e)
	require.Equal(t, Pending, e.Status)
	require.Equal(t, `{"symbol":"EURUSD"}`, e.RequestJSON)
	require.False(t, e.Timestamp.IsZero())

	require.NoError(t, l.MarkSent("RQ0011223344556677"))
	e, err = l.GetEntry("RQ0011223344556677")
	require.NoError(t, err)
	require.Equal(t, Sent, e.Status)

	require.NoError(t, l.MarkVerified("RQ0011223344556677", `{"retcode":10009}`))
	e, err = l.GetEntry("RQ0011223344556677")
	require.NoError(t, err)
	require.Equal(t, Verified, e.Status)
	require.Equal(t, `{"retcode":10009}`, e.ResultJSON)
	require.True(t, e.Status.Terminal())
}

func TestMarkFailedRecordsCause(t *testing.T) {
	var l = openTestLog(t)

	require.NoError(t, l.LogIntent("RQaabbccddeeff0011", `{}`))
	require.NoError(t, l.MarkFailed("RQaabbccddeeff0011", "terminal retcode 10019"))

	var e, err = l.GetEntry("RQaabbccddeeff0011")
	require.NoError(t, err)
	require.Equal(t, Failed, e.Status)
	require.Equal(t, "terminal retcode 10019", e.Error)
}

func TestGetEntryMissing(t *testing.T) {
	var l = openTestLog(t)
	var e, err = l.GetEntry("RQdoesnotexist0000")
	require.NoError(t, err)
	require.Nil(t, e)
}

func TestGetIncompleteReturnsOldestFirst(t *testing.T) {
	var l = openTestLog(t)

	require.NoError(t, l.LogIntent("RQ0000000000000001", `{}`))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, l.LogIntent("RQ0000000000000002", `{}`))
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, l.LogIntent("RQ0000000000000003", `{}`))

	require.NoError(t, l.MarkSent("RQ0000000000000002"))
	require.NoError(t, l.MarkVerified("RQ0000000000000003", `{}`))

	var entries, err = l.GetIncomplete()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "RQ0000000000000001", entries[0].RequestID)
	require.Equal(t, "RQ0000000000000002", entries[1].RequestID)
}

func TestCleanupOldSparesInflightEntries(t *testing.T) {
	var l = openTestLog(t)

	// Backdate one terminal and one in-flight entry past retention.
	require.NoError(t, l.LogIntent("RQ000000000000000a", `{}`))
	require.NoError(t, l.MarkVerified("RQ000000000000000a", `{}`))
	require.NoError(t, l.LogIntent("RQ000000000000000b", `{}`))

	var old = time.Now().UTC().AddDate(0, 0, -30).Format(time.RFC3339Nano)
	var _, err = l.db.Exec(`UPDATE order_wal SET timestamp = ?`, old)
	require.NoError(t, err)

	removed, err := l.CleanupOld(7)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	// The Pending entry survives regardless of age.
	e, err := l.GetEntry("RQ000000000000000b")
	require.NoError(t, err)
	require.NotNil(t, e)
	e, err = l.GetEntry("RQ000000000000000a")
	require.NoError(t, err)
	require.Nil(t, e)
}

func TestCleanupOldUsesConfiguredRetention(t *testing.T) {
	var l = openTestLog(t)

	require.NoError(t, l.LogIntent("RQ000000000000000c", `{}`))
	require.NoError(t, l.MarkFailed("RQ000000000000000c", "rejected"))

	var old = time.Now().UTC().AddDate(0, 0, -8).Format(time.RFC3339Nano)
	var _, err = l.db.Exec(`UPDATE order_wal SET timestamp = ?`, old)
	require.NoError(t, err)

	// days <= 0 falls back to the retention given at Open (7 days).
	removed, err := l.CleanupOld(0)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
}

func TestStats(t *testing.T) {
	var l = openTestLog(t)

	require.NoError(t, l.LogIntent("RQ0000000000000010", `{}`))
	require.NoError(t, l.LogIntent("RQ0000000000000011", `{}`))
	require.NoError(t, l.MarkSent("RQ0000000000000011"))
	require.NoError(t, l.LogIntent("RQ0000000000000012", `{}`))
	require.NoError(t, l.MarkVerified("RQ0000000000000012", `{}`))

	var stats, err = l.Stats()
	require.NoError(t, err)
	require.Equal(t, 1, stats[Pending])
	require.Equal(t, 1, stats[Sent])
	require.Equal(t, 1, stats[Verified])
	require.Zero(t, stats[Failed])
}

func TestNilLogIsNoOp(t *testing.T) {
	var l *Log

	require.NoError(t, l.LogIntent("RQ0000000000000020", `{}`))
	require.NoError(t, l.MarkSent("RQ0000000000000020"))
	require.NoError(t, l.MarkVerified("RQ0000000000000020", `{}`))
	require.NoError(t, l.MarkFailed("RQ0000000000000020", "x"))
	require.NoError(t, l.Close())

	var e, err = l.GetEntry("RQ0000000000000020")
	require.NoError(t, err)
	require.Nil(t, e)

	entries, err := l.GetIncomplete()
	require.NoError(t, err)
	require.Nil(t, entries)

	removed, err := l.CleanupOld(1)
	require.NoError(t, err)
	require.Zero(t, removed)
}

func TestCloseIsIdempotent(t *testing.T) {
	var l = openTestLog(t)
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())
	// Post-close operations degrade to no-ops rather than erroring.
	require.NoError(t, l.LogIntent("RQ0000000000000030", `{}`))
}

func TestMarkRecoveredStoresPayload(t *testing.T) {
	var l = openTestLog(t)

	require.NoError(t, l.LogIntent("RQ0000000000000040", `{}`))
	require.NoError(t, l.MarkSent("RQ0000000000000040"))

	var payload = `{"ticket":12345}`
	require.NoError(t, l.MarkRecovered("RQ0000000000000040", &payload))

	var e, err = l.GetEntry("RQ0000000000000040")
	require.NoError(t, err)
	require.Equal(t, Recovered, e.Status)
	require.Equal(t, payload, e.ResultJSON)
	require.True(t, e.Status.Terminal())
}
