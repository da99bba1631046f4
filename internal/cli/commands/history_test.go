package commands

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/contentlint/internal/cli/testutil"
	"github.com/leapstack-labs/contentlint/internal/state"
)

func TestHistory_RecordListShowDelete(t *testing.T) {
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)
	dbPath := filepath.Join(dir, "state", "history.db")

	_, _, err := execute(t, NewLintCommand(), "docs", "--history", "--history-path", dbPath)
	require.ErrorIs(t, err, ErrLintFailed)
	assert.FileExists(t, dbPath)

	stdout, _, err := execute(t, NewHistoryCommand(), "list", "--history-path", dbPath, "--output", "json")
	require.NoError(t, err)

	var runs []state.Run
	require.NoError(t, json.Unmarshal([]byte(stdout), &runs))
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, "docs", run.Target)
	assert.True(t, run.Failed)
	assert.Equal(t, 2, run.TotalFiles)
	assert.Equal(t, 2, run.Fail)

	t.Run("list table", func(t *testing.T) {
		stdout, _, err := execute(t, NewHistoryCommand(), "list", "--history-path", dbPath)
		require.NoError(t, err)
		assert.Contains(t, stdout, run.ID[:shortIDLen])
		assert.Contains(t, stdout, "docs")
	})

	t.Run("show by prefix", func(t *testing.T) {
		stdout, stderr, err := execute(t, NewHistoryCommand(), "show", run.ID[:shortIDLen], "--history-path", dbPath, "--format", "json")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Run "+run.ID)

		rep := decodeReport(t, stdout)
		assert.Equal(t, 2, rep.Summary.TotalFiles)
		assert.Equal(t, 2, rep.Summary.SeverityCounts["FAIL"])
	})

	t.Run("show unknown run", func(t *testing.T) {
		_, _, err := execute(t, NewHistoryCommand(), "show", "zzzzzzzz", "--history-path", dbPath)
		require.Error(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		stdout, _, err := execute(t, NewHistoryCommand(), "delete", run.ID, "--history-path", dbPath)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Deleted run "+run.ID)

		stdout, _, err = execute(t, NewHistoryCommand(), "list", "--history-path", dbPath)
		require.NoError(t, err)
		assert.Contains(t, stdout, "No runs recorded")
	})
}

func TestHistory_ListEmptyJSON(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, _, err := execute(t, NewHistoryCommand(), "list", "--history-path", filepath.Join(dir, "h.db"), "--output", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", stdout)
}
