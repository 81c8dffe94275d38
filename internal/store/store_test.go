package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestOpen_CreatesSchema(t *testing.T) {
	st := openTestStore(t)

	var n int
	err := st.DB().QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('scan_events', 'session_events')`,
	).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	st, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// Second open must not fail on existing schema.
	st, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())
}

func TestAppendAndQueryScanEvents(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	events := []ScanEventData{
		{SessionID: "s1", Category: "Recyclable", Label: "Recyclable", Confidence: 0.9, Tip: "rinse it"},
		{SessionID: "s1", Category: "Trash", Label: "Possible Trash", Confidence: 0.2, Tip: "bin it", LowConfidence: true},
		{SessionID: "s1", Category: "Unknown", Label: "Detection timed out — hold the item steady", IsError: true, ErrorKind: "timeout", Tip: "try again"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendScanEvent(ctx, e))
	}

	got, err := repo.RecentScans(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.True(t, got[0].IsError)
	assert.Equal(t, "Possible Trash", got[1].Label)
	assert.Equal(t, "Recyclable", got[2].Label)
	assert.InDelta(t, 0.9, got[2].Confidence, 1e-9)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestRecentScans_Limit(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AppendScanEvent(ctx, ScanEventData{
			SessionID: "s1", Category: "Trash", Label: "Trash", Confidence: 0.5, Tip: "t",
		}))
	}

	got, err := repo.RecentScans(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCategoryCounts_ExcludesErrorsAndHelp(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendScanEvent(ctx, ScanEventData{SessionID: "s", Category: "Recyclable", Label: "Recyclable", Confidence: 0.8, Tip: "t"}))
	require.NoError(t, repo.AppendScanEvent(ctx, ScanEventData{SessionID: "s", Category: "Recyclable", Label: "Recyclable", Confidence: 0.7, Tip: "t"}))
	require.NoError(t, repo.AppendScanEvent(ctx, ScanEventData{SessionID: "s", Category: "Unknown", Label: "boom", IsError: true, Tip: "t"}))
	require.NoError(t, repo.AppendScanEvent(ctx, ScanEventData{SessionID: "s", Category: "Unknown", Label: "help", HelpMessage: true, Tip: "t"}))

	counts, err := repo.CategoryCounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, counts["Recyclable"])
	assert.Zero(t, counts["Unknown"], "errors and help messages must not count")
}

func TestSessionSummaries_OnlyEndEvents(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start"}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", TotalScans: 12, Errors: 1, DurationSecs: 95, TopCategory: "Compostable",
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s2", Action: "start"}))

	got, err := repo.SessionSummaries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "s1", got[0].SessionID)
	assert.Equal(t, 12, got[0].TotalScans)
	assert.Equal(t, "Compostable", got[0].TopCategory)
}
