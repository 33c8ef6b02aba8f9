// Package kv is the ordered key-value layer under the record stores. Each
// backend keeps one bucket per collection and enumerates values in ascending
// key order.
package kv

import (
	"context"

	"console-rental/internal/pkg/errs"
)

const (
	BucketRenters      = "renters"
	BucketGames        = "games"
	BucketPlayStations = "playstations"
	BucketRentLogs     = "rentlogs"
)

// Buckets lists every bucket a backend must provision.
var Buckets = []string{BucketRenters, BucketGames, BucketPlayStations, BucketRentLogs}

var (
	ErrStoreClosed   = errs.New("kv store is closed")
	ErrReadOnlyTx    = errs.New("write in read-only transaction")
	ErrUnknownBucket = errs.New("unknown bucket")
)

type Store interface {
	// Update runs fn in a read-write transaction; its writes commit together or not at all.
	Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// View runs fn in a read-only transaction.
	View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	Driver() string
	Close() error
}

type Tx interface {
	Bucket(name string) Bucket
}

type Bucket interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put overwrites any existing value at key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete returns the prior value, if any. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) ([]byte, bool, error)
	// Values enumerates every value in ascending key order.
	Values(ctx context.Context) ([][]byte, error)
}

func isKnownBucket(name string) bool {
	for _, b := range Buckets {
		if b == name {
			return true
		}
	}
	return false
}

// unknownBucket fails every call so a typo surfaces as an error, not as an empty table.
type unknownBucket struct{}

func (unknownBucket) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, ErrUnknownBucket
}

func (unknownBucket) Put(context.Context, string, []byte) error {
	return ErrUnknownBucket
}

func (unknownBucket) Delete(context.Context, string) ([]byte, bool, error) {
	return nil, false, ErrUnknownBucket
}

func (unknownBucket) Values(context.Context) ([][]byte, error) {
	return nil, ErrUnknownBucket
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
