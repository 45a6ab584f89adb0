// Package runlog records batch-run summaries in the append-only
// outreach_runs table for observability.
package runlog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/outreach-cli/internal/db"
)

// Run kinds.
const (
	KindLaunch   = "launch"
	KindDiscover = "discover"
	KindAdvance  = "advance"
)

// Entry is one row of outreach_runs.
type Entry struct {
	ID          int64          `json:"id"`
	Kind        string         `json:"kind"`
	Status      string         `json:"status"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Counters    map[string]int `json:"counters,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// Log provides read/write access to the outreach_runs table.
type Log struct {
	pool db.Pool
}

// New creates a Log backed by the given connection pool.
func New(pool db.Pool) *Log {
	return &Log{pool: pool}
}

// Start records the beginning of a run and returns its ID.
func (l *Log) Start(ctx context.Context, kind string) (int64, error) {
	var id int64
	err := l.pool.QueryRow(ctx,
		`INSERT INTO outreach_runs (kind, status, started_at)
		 VALUES ($1, 'running', now()) RETURNING id`,
		kind,
	).Scan(&id)
	if err != nil {
		return 0, eris.Wrapf(err, "runlog: start %s run", kind)
	}
	return id, nil
}

// Complete marks a run as successfully completed with its counters.
func (l *Log) Complete(ctx context.Context, runID int64, counters map[string]int) error {
	var countersJSON []byte
	if counters != nil {
		var err error
		countersJSON, err = json.Marshal(counters)
		if err != nil {
			return eris.Wrap(err, "runlog: marshal counters")
		}
	}

	_, err := l.pool.Exec(ctx,
		`UPDATE outreach_runs
		 SET status = 'complete', completed_at = now(), counters = $1
		 WHERE id = $2`,
		countersJSON, runID,
	)
	if err != nil {
		return eris.Wrapf(err, "runlog: complete run %d", runID)
	}
	return nil
}

// Fail marks a run as failed with an error message.
func (l *Log) Fail(ctx context.Context, runID int64, errMsg string) error {
	_, err := l.pool.Exec(ctx,
		`UPDATE outreach_runs
		 SET status = 'failed', completed_at = now(), error = $1
		 WHERE id = $2`,
		errMsg, runID,
	)
	if err != nil {
		return eris.Wrapf(err, "runlog: fail run %d", runID)
	}
	return nil
}

// Recent returns the most recent run entries, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := l.pool.Query(ctx,
		`SELECT id, kind, status, started_at, completed_at, counters, error
		 FROM outreach_runs ORDER BY started_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "runlog: list recent")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var errStr *string
		var countersJSON []byte
		if err := rows.Scan(&e.ID, &e.Kind, &e.Status, &e.StartedAt, &e.CompletedAt, &countersJSON, &errStr); err != nil {
			return nil, eris.Wrap(err, "runlog: scan entry")
		}
		if errStr != nil {
			e.Error = *errStr
		}
		if countersJSON != nil {
			_ = json.Unmarshal(countersJSON, &e.Counters)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
