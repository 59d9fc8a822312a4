package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/examhall/internal/pkg/apperrors"
)

// fakeTx records lifecycle calls; the embedded interface covers the
// pgx.Tx methods no test path reaches.
type fakeTx struct {
	pgx.Tx
	commits   int
	rollbacks int
	commitErr error
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.commits++
	return t.commitErr
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.rollbacks++
	return nil
}

type fakeBeginner struct {
	tx       *fakeTx
	beginErr error
}

func (b *fakeBeginner) Begin(_ context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	return b.tx, nil
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.tx.commits)
	assert.Zero(t, beginner.tx.rollbacks)
}

func TestWithTransaction_RollsBackAndReturnsErrorUnwrapped(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		return apperrors.ErrAllocationAlreadyExists
	})

	// Sentinel checks on the caller side must keep working.
	assert.ErrorIs(t, err, apperrors.ErrAllocationAlreadyExists)
	assert.Equal(t, 1, beginner.tx.rollbacks)
	assert.Zero(t, beginner.tx.commits)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}

	require.Panics(t, func() {
		_ = WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
			panic("boom")
		})
	})

	assert.Equal(t, 1, beginner.tx.rollbacks)
	assert.Zero(t, beginner.tx.commits)
}

func TestWithTransaction_AppliesDefaultDeadline(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	})
	require.NoError(t, err)
}

func TestWithTransaction_BeginFailure(t *testing.T) {
	beginner := &fakeBeginner{beginErr: fmt.Errorf("pool exhausted")}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		t.Fatal("function must not run when begin fails")
		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
}

func TestWithTransaction_CommitFailure(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{commitErr: fmt.Errorf("connection lost")}}

	err := WithTransaction(context.Background(), beginner, func(ctx context.Context, tx pgx.Tx) error {
		return nil
	})

	assert.ErrorContains(t, err, "failed to commit transaction")
}
