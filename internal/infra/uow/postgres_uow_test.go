//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"meetslot/internal/infra"
	"meetslot/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "lock timeout", err: &pgconn.PgError{Code: "55P03"}, want: false},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: assert.AnError, want: false},
		{name: "wrapped deadlock", err: errs.Wrap(&pgconn.PgError{Code: "40P01"}, "update slot"), want: true},
		{name: "repository error around deadlock", err: infra.WrapRepoErr("lock slot", &pgconn.PgError{Code: "40P01"}), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	deadlock := &pgconn.PgError{Code: "40P01"}

	assert.True(t, shouldRetry(deadlock, 0, 3))
	assert.False(t, shouldRetry(deadlock, 3, 3))
	assert.False(t, shouldRetry(deadlock, 0, 0), "single-attempt transactions never retry")
	assert.False(t, shouldRetry(assert.AnError, 0, 3))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 0; attempt < 3; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Millisecond)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	assert.Equal(t, int64(0), cryptoRandInt63n(-1))
	for i := 0; i < 50; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}

type commitRecorder struct {
	pgx.Tx
	ctxErr error
	value  any
}

func (r *commitRecorder) Commit(ctx context.Context) error {
	r.ctxErr = ctx.Err()
	r.value = ctx.Value(ctxKey{})
	return nil
}

type ctxKey struct{}

func TestCommitDetached(t *testing.T) {
	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey{}, "req-1"))
	cancel()

	tx := &commitRecorder{}
	err := commitDetached(ctx, tx)

	assert.NoError(t, err)
	assert.NoError(t, tx.ctxErr, "commit must not see the caller's cancellation")
	assert.Equal(t, "req-1", tx.value)
}
