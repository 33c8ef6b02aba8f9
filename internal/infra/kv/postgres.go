package kv

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"console-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const DriverPostgres = "postgres"

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// DBTX is the subset of pgx shared by pools and transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore provisions the bucket tables on pool. It does not take
// ownership of the pool; Close is a no-op.
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if err := EnsureSchema(ctx, pool); err != nil {
		return nil, err
	}
	return &PostgresStore{pool: pool}, nil
}

func EnsureSchema(ctx context.Context, db DBTX) error {
	for _, bucket := range Buckets {
		stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			payload JSONB NOT NULL
		)`, bucket)
		if _, err := db.Exec(ctx, stmt); err != nil {
			return errs.Wrapf(err, "create table %s", bucket)
		}
	}
	return nil
}

// Serializable so the cascade's read-modify-write cannot interleave; conflicts are retried.
func (s *PostgresStore) Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return s.runInTxWithRetry(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, true, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (s *PostgresStore) View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return s.runInTxWithRetry(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, false, fn)
}

func (s *PostgresStore) Driver() string { return DriverPostgres }

func (s *PostgresStore) Close() error { return nil }

// Avoids defer accumulation in retry loops to prevent connection leaks
func (s *PostgresStore) runInTxWithRetry(ctx context.Context, options pgx.TxOptions, writable bool, fn func(ctx context.Context, tx Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxTxRetries; attempt++ {
		pgxTx, err := s.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &postgresTx{db: pgxTx, writable: writable})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxTxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// mask the sign bit so the conversion stays non-negative
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type postgresTx struct {
	db       DBTX
	writable bool
}

func (t *postgresTx) Bucket(name string) Bucket {
	if !isKnownBucket(name) {
		return unknownBucket{}
	}
	return &postgresBucket{tx: t, table: name}
}

type postgresBucket struct {
	tx    *postgresTx
	table string
}

func (b *postgresBucket) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := b.tx.db.QueryRow(ctx, "SELECT payload FROM "+b.table+" WHERE id = $1", key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrapf(err, "select %s", b.table)
	}
	return payload, true, nil
}

func (b *postgresBucket) Put(ctx context.Context, key string, value []byte) error {
	if !b.tx.writable {
		return ErrReadOnlyTx
	}
	_, err := b.tx.db.Exec(ctx,
		"INSERT INTO "+b.table+" (id, payload) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload",
		key, value)
	if err != nil {
		return errs.Wrapf(err, "upsert %s", b.table)
	}
	return nil
}

func (b *postgresBucket) Delete(ctx context.Context, key string) ([]byte, bool, error) {
	if !b.tx.writable {
		return nil, false, ErrReadOnlyTx
	}
	var payload []byte
	err := b.tx.db.QueryRow(ctx, "DELETE FROM "+b.table+" WHERE id = $1 RETURNING payload", key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrapf(err, "delete %s", b.table)
	}
	return payload, true, nil
}

// COLLATE "C" matches the byte-wise key order of the other backends.
func (b *postgresBucket) Values(ctx context.Context) ([][]byte, error) {
	rows, err := b.tx.db.Query(ctx, "SELECT payload FROM "+b.table+` ORDER BY id COLLATE "C"`)
	if err != nil {
		return nil, errs.Wrapf(err, "select %s", b.table)
	}
	defer rows.Close()

	values := make([][]byte, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, errs.Wrapf(err, "scan %s", b.table)
		}
		values = append(values, payload)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrapf(err, "iterate %s", b.table)
	}
	return values, nil
}
