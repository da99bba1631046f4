package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/internal/testutil"
	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(":memory:", testutil.NewTestLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleResults() *lint.Results {
	line := 4
	r := lint.NewResults()
	r.Add("b.md", []lint.Finding{{
		RuleID:   "knowledge-cutoff",
		Severity: core.SeverityFail,
		Message:  "Knowledge cutoff disclaimer found",
		FilePath: "b.md",
		Snippet:  "as of my last update",
		Line:     &line,
		Details:  map[string]any{"phrase": "as of my last update"},
		Category: "ai-tells",
	}})
	r.Add("a.md", []lint.Finding{
		{RuleID: "adverbs", Severity: core.SeverityWarn, Message: "m1", FilePath: "a.md", Details: map[string]any{}},
		{RuleID: "passive-voice", Severity: core.SeverityPass, Message: "m2", FilePath: "a.md", Details: map[string]any{"count": 2}},
	})
	return r
}

func TestSQLiteStore_OpenClose(t *testing.T) {
	store := NewSQLiteStore(nil)
	require.NoError(t, store.Open(":memory:"))
	require.NoError(t, store.Migrate())

	version, err := store.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, store.Close())
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	store := NewSQLiteStore(nil)
	ctx := context.Background()

	_, err := store.ListRuns(ctx, 10)
	assert.ErrorIs(t, err, errNotOpened)
	_, err = store.GetRun(ctx, "x")
	assert.ErrorIs(t, err, errNotOpened)
	assert.ErrorIs(t, store.Migrate(), errNotOpened)
	assert.NoError(t, store.Close())
}

func TestSQLiteStore_RecordRun(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	run, err := store.RecordRun(ctx, RunInput{
		Target:    "docs",
		StartedAt: started,
		Duration:  1500 * time.Millisecond,
		FailOn:    core.SeverityFail,
		Results:   sampleResults(),
	})
	require.NoError(t, err)
	assert.Len(t, run.ID, 36)
	assert.True(t, run.Failed)
	assert.Equal(t, 2, run.TotalFiles)
	assert.Equal(t, 3, run.TotalFindings)
	assert.Equal(t, 1, run.Fail)
	assert.Equal(t, 1, run.Warn)
	assert.Equal(t, 1, run.Pass)

	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, got)

	byPrefix, err := store.GetRun(ctx, run.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, run.ID, byPrefix.ID)
}

func TestSQLiteStore_RunResults(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	run, err := store.RecordRun(ctx, RunInput{
		Target:    "docs",
		StartedAt: time.Now(),
		FailOn:    core.SeverityWarn,
		Results:   sampleResults(),
	})
	require.NoError(t, err)

	results, err := store.RunResults(ctx, run.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"b.md", "a.md"}, results.Paths())
	first := results.Findings("b.md")[0]
	assert.Equal(t, "knowledge-cutoff", first.RuleID)
	assert.Equal(t, core.SeverityFail, first.Severity)
	assert.Equal(t, 4, first.LineOrZero())
	assert.Equal(t, "ai-tells", first.Category)
	assert.Equal(t, "as of my last update", first.Details["phrase"])

	second := results.Findings("a.md")
	require.Len(t, second, 2)
	assert.Nil(t, second[0].Line)
	assert.Equal(t, core.DefaultCategory, second[0].Category)
	assert.InDelta(t, 2, second[1].Details["count"], 0)

	// The rebuilt results summarize like the originals.
	assert.Equal(t, lint.Summarize(sampleResults()).TopRules, lint.Summarize(results).TopRules)
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := range 3 {
		run, err := store.RecordRun(ctx, RunInput{
			Target:    "docs",
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			FailOn:    core.SeverityFail,
			Results:   lint.NewResults(),
		})
		require.NoError(t, err)
		ids = append(ids, run.ID)
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"all newest first", 0, []string{ids[2], ids[1], ids[0]}},
		{"limited", 2, []string{ids[2], ids[1]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := store.ListRuns(ctx, tt.limit)
			require.NoError(t, err)
			got := make([]string, len(runs))
			for i, r := range runs {
				got[i] = r.ID
				assert.False(t, r.Failed)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQLiteStore_GetRunErrors(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.GetRun(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = store.GetRun(ctx, "")
	assert.ErrorIs(t, err, ErrRunNotFound)

	_, err = store.RunResults(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestSQLiteStore_DeleteRun(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	run, err := store.RecordRun(ctx, RunInput{Target: "x", StartedAt: time.Now(), Results: sampleResults()})
	require.NoError(t, err)

	require.NoError(t, store.DeleteRun(ctx, run.ID))
	_, err = store.GetRun(ctx, run.ID)
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.ErrorIs(t, store.DeleteRun(ctx, run.ID), ErrRunNotFound)
}

func TestSQLiteStore_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	ctx := context.Background()

	store, err := Open(path, nil)
	require.NoError(t, err)
	run, err := store.RecordRun(ctx, RunInput{Target: "x", StartedAt: time.Now(), Results: sampleResults()})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalFindings)
	assert.Equal(t, path, reopened.Path())
}
