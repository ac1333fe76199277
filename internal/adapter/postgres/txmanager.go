package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/internal/metrics"
)

const (
	defaultMaxRetries = 5
	defaultRetryWait  = 10 * time.Millisecond
)

// TxManager runs functions inside database transactions. The transaction is
// carried in the context and picked up by QuerierFromCtx.
// Nested calls are not supported: an inner RunInTx opens a second,
// independent transaction.
type TxManager struct {
	pool       *pgxpool.Pool
	maxRetries uint64
	retryWait  time.Duration
}

// TxOption configures a TxManager.
type TxOption func(*TxManager)

// WithSerializableRetry sets how often RunInSerializableTx retries a
// transaction that lost a serialization race, and the first backoff wait.
func WithSerializableRetry(maxRetries uint64, baseWait time.Duration) TxOption {
	return func(m *TxManager) {
		if maxRetries > 0 {
			m.maxRetries = maxRetries
		}
		if baseWait > 0 {
			m.retryWait = baseWait
		}
	}
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool, opts ...TxOption) *TxManager {
	m := &TxManager{
		pool:       pool,
		maxRetries: defaultMaxRetries,
		retryWait:  defaultRetryWait,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// RunInTx executes fn in a READ COMMITTED transaction. It commits when fn
// returns nil and rolls back on error or panic (re-panicking afterwards).
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, pgx.TxOptions{}, fn)
}

// RunInSerializableTx executes fn in a SERIALIZABLE transaction and retries
// the whole function with exponential backoff when the store reports a
// serialization failure, a deadlock or a unique violation caused by a
// concurrent writer. fn must therefore be safe to run more than once.
// When retries are exhausted the error wraps domain.ErrStoreFailure.
func (m *TxManager) RunInSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(m.maxRetries, retry.WithJitterPercent(20, retry.NewExponential(m.retryWait)))

	attempts := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		if attempts > 1 {
			metrics.TxRetries.Inc()
		}
		err := m.run(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
		if err != nil && isRetryable(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil && isRetryable(err) {
		return fmt.Errorf("%w after %d attempts: %w", domain.ErrStoreFailure, attempts, err)
	}
	return err
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// isRetryable reports whether err came from losing a race against another
// transaction, in which case running the same work again may succeed.
func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeUniqueViolation:
			return true
		}
	}
	return errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrAlreadyExists)
}
