package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"console-rental/internal/pkg/errs"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const DriverSQLite = "sqlite"

// SQLiteStore keeps one table per bucket, payloads stored as JSON blobs.
// It is suitable for single-process use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens (or creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, errs.Wrap(err, "create dirs")
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errs.Wrap(err, "open database")
	}
	// one connection serializes writers and keeps pragmas in effect
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errs.Wrap(err, "enable WAL mode")
	}

	for _, bucket := range Buckets {
		stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			payload BLOB NOT NULL
		)`, bucket)
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, errs.Wrapf(err, "create table %s", bucket)
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return s.run(ctx, true, fn)
}

func (s *SQLiteStore) View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return s.run(ctx, false, fn)
}

func (s *SQLiteStore) run(ctx context.Context, writable bool, fn func(ctx context.Context, tx Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrStoreClosed
	}

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrap(err, "begin transaction")
	}

	if err := fn(ctx, &sqliteTx{tx: sqlTx, writable: writable}); err != nil {
		_ = sqlTx.Rollback()
		return err
	}

	if !writable {
		return sqlTx.Rollback()
	}
	if err := sqlTx.Commit(); err != nil {
		return errs.Wrap(err, "commit transaction")
	}
	return nil
}

func (s *SQLiteStore) Driver() string { return DriverSQLite }

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

type sqliteTx struct {
	tx       *sql.Tx
	writable bool
}

func (t *sqliteTx) Bucket(name string) Bucket {
	if !isKnownBucket(name) {
		return unknownBucket{}
	}
	return &sqliteBucket{tx: t, table: name}
}

type sqliteBucket struct {
	tx    *sqliteTx
	table string
}

func (b *sqliteBucket) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := b.tx.tx.QueryRowContext(ctx, "SELECT payload FROM "+b.table+" WHERE id = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrapf(err, "select %s", b.table)
	}
	return payload, true, nil
}

func (b *sqliteBucket) Put(ctx context.Context, key string, value []byte) error {
	if !b.tx.writable {
		return ErrReadOnlyTx
	}
	_, err := b.tx.tx.ExecContext(ctx,
		"INSERT INTO "+b.table+"(id, payload) VALUES(?, ?) ON CONFLICT(id) DO UPDATE SET payload = excluded.payload",
		key, value)
	if err != nil {
		return errs.Wrapf(err, "upsert %s", b.table)
	}
	return nil
}

func (b *sqliteBucket) Delete(ctx context.Context, key string) ([]byte, bool, error) {
	if !b.tx.writable {
		return nil, false, ErrReadOnlyTx
	}
	prior, ok, err := b.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}
	if _, err := b.tx.tx.ExecContext(ctx, "DELETE FROM "+b.table+" WHERE id = ?", key); err != nil {
		return nil, false, errs.Wrapf(err, "delete %s", b.table)
	}
	return prior, true, nil
}

func (b *sqliteBucket) Values(ctx context.Context) ([][]byte, error) {
	rows, err := b.tx.tx.QueryContext(ctx, "SELECT payload FROM "+b.table+" ORDER BY id")
	if err != nil {
		return nil, errs.Wrapf(err, "select %s", b.table)
	}
	defer func() { _ = rows.Close() }()

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
