package testutil

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	postgres "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres"
)

// BatchRecorder is a Querier for testing pgx.Batch writes. SendBatch
// captures every queued statement and answers each execution with the
// configured command tag, so tests can assert the exact SQL and argument
// order a repository queues without a live connection.
type BatchRecorder struct {
	// Batches holds every batch sent, in order.
	Batches []*pgx.Batch
	// Tag is reported for each executed statement; the zero value reports
	// zero rows affected.
	Tag pgconn.CommandTag
	// Err, when set, fails every statement execution.
	Err error
}

var _ postgres.Querier = (*BatchRecorder)(nil)

// SendBatch records the batch and returns canned results for it.
func (r *BatchRecorder) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	r.Batches = append(r.Batches, b)
	return &recordedResults{tag: r.Tag, err: r.Err}
}

// Queued flattens the recorded batches into one list of queued statements.
func (r *BatchRecorder) Queued() []*pgx.QueuedQuery {
	var queued []*pgx.QueuedQuery
	for _, b := range r.Batches {
		queued = append(queued, b.QueuedQueries...)
	}
	return queued
}

func (r *BatchRecorder) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("BatchRecorder supports SendBatch only")
}

func (r *BatchRecorder) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("BatchRecorder supports SendBatch only")
}

func (r *BatchRecorder) QueryRow(context.Context, string, ...any) pgx.Row {
	panic("BatchRecorder supports SendBatch only")
}

type recordedResults struct {
	tag pgconn.CommandTag
	err error
}

func (r *recordedResults) Exec() (pgconn.CommandTag, error) {
	if r.err != nil {
		return pgconn.CommandTag{}, r.err
	}
	return r.tag, nil
}

func (r *recordedResults) Query() (pgx.Rows, error) {
	panic("recorded batch results support Exec only")
}

func (r *recordedResults) QueryRow() pgx.Row {
	panic("recorded batch results support Exec only")
}

func (r *recordedResults) Close() error { return nil }
