// Package testutil provides helpers for repository tests built on pgxmock.
package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	postgres "github.com/flashdeck/flashdeck-backend/internal/adapter/postgres"
)

// mockQuerier adapts the pgxmock pool to the postgres.Querier interface.
// pgxmock has no batch expectations, so SendBatch panics; batched writes
// are tested through BatchRecorder instead.
type mockQuerier struct {
	pgxmock.PgxPoolIface
}

func (mockQuerier) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("SendBatch is not supported by the mock pool")
}

// NewMockQuerier returns a Querier backed by a pgxmock pool along with the
// mock handle for setting expectations.
func NewMockQuerier(t *testing.T) (postgres.Querier, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)

	return mockQuerier{PgxPoolIface: mock}, mock
}

// ExpectationsWereMet fails the test if any expectation set on the mock was
// not satisfied.
func ExpectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
