package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// timeLayout is fixed-width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `id, target, started_at, duration_ms, fail_on, failed,
	total_files, total_findings, fail_count, warn_count, pass_count`

// RecordRun stores a finished run and all of its findings in one transaction.
func (s *SQLiteStore) RecordRun(ctx context.Context, in RunInput) (*Run, error) {
	if s.db == nil {
		return nil, errNotOpened
	}

	counts := lint.CountSeverities(in.Results)
	run := &Run{
		ID:            generateID(),
		Target:        in.Target,
		StartedAt:     in.StartedAt.UTC(),
		Duration:      in.Duration,
		FailOn:        in.FailOn,
		Failed:        lint.ShouldFail(counts, in.FailOn),
		TotalFiles:    in.Results.Len(),
		TotalFindings: in.Results.TotalFindings(),
		Fail:          counts[core.SeverityFail],
		Warn:          counts[core.SeverityWarn],
		Pass:          counts[core.SeverityPass],
	}

	s.logger.Debug("recording run",
		slog.String("id", run.ID),
		slog.String("target", run.Target),
		slog.Int("findings", run.TotalFindings))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Target, run.StartedAt.Format(timeLayout), run.Duration.Milliseconds(),
		run.FailOn.String(), run.Failed, run.TotalFiles, run.TotalFindings,
		run.Fail, run.Warn, run.Pass,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO findings (run_id, position, file_path, rule_id, severity, message, snippet, line, category, details)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare finding insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	pos := 0
	for _, path := range in.Results.Paths() {
		for _, f := range in.Results.Findings(path) {
			details, err := json.Marshal(f.Details)
			if err != nil {
				return nil, fmt.Errorf("failed to encode details for %s: %w", f.RuleID, err)
			}
			category := f.Category
			if category == "" {
				category = core.DefaultCategory
			}
			if _, err := stmt.ExecContext(ctx,
				run.ID, pos, path, f.RuleID, f.Severity.String(), f.Message, f.Snippet,
				f.Line, category, string(details),
			); err != nil {
				return nil, fmt.Errorf("failed to save finding: %w", err)
			}
			pos++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit run: %w", err)
	}
	return run, nil
}

// GetRun retrieves a run by ID. A unique ID prefix is accepted.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	if s.db == nil {
		return nil, errNotOpened
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrRunNotFound)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ? OR id LIKE ? || '%' ORDER BY id = ? DESC LIMIT 2`,
		id, id, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	switch {
	case len(runs) == 0:
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	case runs[0].ID == id || len(runs) == 1:
		return runs[0], nil
	default:
		return nil, fmt.Errorf("ambiguous run id prefix %q", id)
	}
}

// ListRuns retrieves the most recent runs up to the given limit, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if s.db == nil {
		return nil, errNotOpened
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// RunResults rebuilds the result set recorded for a run, in the original order.
func (s *SQLiteStore) RunResults(ctx context.Context, id string) (*lint.Results, error) {
	run, err := s.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT file_path, rule_id, severity, message, snippet, line, category, details
		 FROM findings WHERE run_id = ? ORDER BY position`, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load findings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := lint.NewResults()
	for rows.Next() {
		var (
			f        lint.Finding
			sev      string
			line     sql.NullInt64
			details  string
			filePath string
		)
		if err := rows.Scan(&filePath, &f.RuleID, &sev, &f.Message, &f.Snippet, &line, &f.Category, &details); err != nil {
			return nil, fmt.Errorf("failed to scan finding: %w", err)
		}
		if err := f.Severity.UnmarshalText([]byte(sev)); err != nil {
			return nil, fmt.Errorf("finding in run %s: %w", run.ID, err)
		}
		if line.Valid {
			n := int(line.Int64)
			f.Line = &n
		}
		if err := json.Unmarshal([]byte(details), &f.Details); err != nil {
			return nil, fmt.Errorf("failed to decode details: %w", err)
		}
		f.FilePath = filePath
		results.Add(filePath, []lint.Finding{f})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load findings: %w", err)
	}
	return results, nil
}

// DeleteRun removes a run and its findings.
func (s *SQLiteStore) DeleteRun(ctx context.Context, id string) error {
	if s.db == nil {
		return errNotOpened
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run        Run
		startedAt  string
		durationMs int64
		failOn     string
	)
	err := row.Scan(&run.ID, &run.Target, &startedAt, &durationMs, &failOn, &run.Failed,
		&run.TotalFiles, &run.TotalFindings, &run.Fail, &run.Warn, &run.Pass)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan run: %w", err)
	}

	if run.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
		return nil, fmt.Errorf("run %s: bad started_at: %w", run.ID, err)
	}
	run.Duration = time.Duration(durationMs) * time.Millisecond
	if err := run.FailOn.UnmarshalText([]byte(failOn)); err != nil {
		return nil, fmt.Errorf("run %s: %w", run.ID, err)
	}
	return &run, nil
}
