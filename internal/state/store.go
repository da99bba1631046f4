// Package state keeps a history of lint runs in SQLite.
//
// Each run records its target, severity counts and every finding, so past
// results can be listed and re-rendered without linting again.
package state

import (
	"context"
	"errors"
	"time"

	"github.com/leapstack-labs/contentlint/pkg/core"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// ErrRunNotFound is returned when a run id does not exist.
var ErrRunNotFound = errors.New("run not found")

// errNotOpened is returned by store methods called before Open.
var errNotOpened = errors.New("database not opened")

// Run is one recorded lint invocation.
type Run struct {
	ID            string        `json:"id"`
	Target        string        `json:"target"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
	FailOn        core.Severity `json:"fail_on"`
	Failed        bool          `json:"failed"`
	TotalFiles    int           `json:"total_files"`
	TotalFindings int           `json:"total_findings"`
	Fail          int           `json:"fail"`
	Warn          int           `json:"warn"`
	Pass          int           `json:"pass"`
}

// RunInput describes a finished run to record.
type RunInput struct {
	Target    string
	StartedAt time.Time
	Duration  time.Duration
	FailOn    core.Severity
	Results   *lint.Results
}

// Store records and reads lint runs.
type Store interface {
	RecordRun(ctx context.Context, in RunInput) (*Run, error)
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)
	RunResults(ctx context.Context, id string) (*lint.Results, error)
	Close() error
}

var _ Store = (*SQLiteStore)(nil)
