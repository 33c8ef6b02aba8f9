//go:build unit

package kv_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"console-rental/internal/infra/kv"
	"console-rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreContractSuite struct {
	suite.Suite
	newStore func(t *testing.T) kv.Store
	store    kv.Store
}

func (s *StoreContractSuite) SetupTest() {
	s.store = s.newStore(s.T())
}

func (s *StoreContractSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &StoreContractSuite{newStore: func(*testing.T) kv.Store {
		return kv.NewMemoryStore()
	}})
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, &StoreContractSuite{newStore: func(t *testing.T) kv.Store {
		store, err := kv.NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "kv.db"))
		require.NoError(t, err)
		return store
	}})
}

func TestTracedStoreSuite(t *testing.T) {
	suite.Run(t, &StoreContractSuite{newStore: func(*testing.T) kv.Store {
		return kv.WithTracing(kv.NewMemoryStore())
	}})
}

func (s *StoreContractSuite) put(bucket, key, value string) {
	err := s.store.Update(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		return tx.Bucket(bucket).Put(ctx, key, []byte(value))
	})
	s.Require().NoError(err)
}

func (s *StoreContractSuite) values(bucket string) []string {
	var out []string
	err := s.store.View(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		vals, err := tx.Bucket(bucket).Values(ctx)
		for _, v := range vals {
			out = append(out, string(v))
		}
		return err
	})
	s.Require().NoError(err)
	return out
}

func (s *StoreContractSuite) TestGetMissing() {
	err := s.store.View(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		v, ok, err := tx.Bucket(kv.BucketRenters).Get(ctx, "nope")
		s.NoError(err)
		s.False(ok)
		s.Nil(v)
		return nil
	})
	s.NoError(err)
}

func (s *StoreContractSuite) TestPutOverwrites() {
	s.put(kv.BucketGames, "k", `{"v":1}`)
	s.put(kv.BucketGames, "k", `{"v":2}`)

	s.Equal([]string{`{"v":2}`}, s.values(kv.BucketGames))
}

func (s *StoreContractSuite) TestValuesAscendingKeyOrder() {
	s.put(kv.BucketRentLogs, "c", `"c"`)
	s.put(kv.BucketRentLogs, "a", `"a"`)
	s.put(kv.BucketRentLogs, "b", `"b"`)

	s.Equal([]string{`"a"`, `"b"`, `"c"`}, s.values(kv.BucketRentLogs))
}

func (s *StoreContractSuite) TestBucketsAreIndependent() {
	s.put(kv.BucketRenters, "k", `"renter"`)
	s.put(kv.BucketPlayStations, "k", `"playstation"`)

	s.Equal([]string{`"renter"`}, s.values(kv.BucketRenters))
	s.Equal([]string{`"playstation"`}, s.values(kv.BucketPlayStations))
	s.Empty(s.values(kv.BucketGames))
}

func (s *StoreContractSuite) TestDeleteIsIdempotent() {
	s.put(kv.BucketGames, "k", `"v"`)

	err := s.store.Update(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		b := tx.Bucket(kv.BucketGames)

		prior, ok, err := b.Delete(ctx, "k")
		s.NoError(err)
		s.True(ok)
		s.Equal(`"v"`, string(prior))

		prior, ok, err = b.Delete(ctx, "k")
		s.NoError(err)
		s.False(ok)
		s.Nil(prior)
		return nil
	})
	s.NoError(err)
	s.Empty(s.values(kv.BucketGames))
}

func (s *StoreContractSuite) TestReadYourWritesInsideTransaction() {
	s.put(kv.BucketGames, "a", `"a"`)

	err := s.store.Update(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		b := tx.Bucket(kv.BucketGames)
		s.NoError(b.Put(ctx, "b", []byte(`"b"`)))
		_, _, err := b.Delete(ctx, "a")
		s.NoError(err)

		v, ok, err := b.Get(ctx, "b")
		s.NoError(err)
		s.True(ok)
		s.Equal(`"b"`, string(v))

		vals, err := b.Values(ctx)
		s.NoError(err)
		s.Len(vals, 1)
		return nil
	})
	s.NoError(err)
}

func (s *StoreContractSuite) TestFailedUpdateRollsBack() {
	s.put(kv.BucketPlayStations, "p1", `"before"`)
	boom := errors.New("boom")

	err := s.store.Update(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		s.NoError(tx.Bucket(kv.BucketPlayStations).Put(ctx, "p1", []byte(`"after"`)))
		s.NoError(tx.Bucket(kv.BucketGames).Put(ctx, "g1", []byte(`"game"`)))
		return boom
	})
	s.ErrorIs(err, boom)

	s.Equal([]string{`"before"`}, s.values(kv.BucketPlayStations))
	s.Empty(s.values(kv.BucketGames))
}

func (s *StoreContractSuite) TestViewIsReadOnly() {
	err := s.store.View(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		return tx.Bucket(kv.BucketGames).Put(ctx, "k", []byte(`"v"`))
	})
	s.ErrorIs(err, kv.ErrReadOnlyTx)
}

func (s *StoreContractSuite) TestUnknownBucket() {
	err := s.store.View(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		_, err := tx.Bucket("nope").Values(ctx)
		return err
	})
	s.ErrorIs(err, kv.ErrUnknownBucket)
}

func TestMemoryStore_Closed(t *testing.T) {
	store := kv.NewMemoryStore()
	require.NoError(t, store.Close())

	err := store.View(context.Background(), func(context.Context, kv.Tx) error { return nil })
	assert.ErrorIs(t, err, kv.ErrStoreClosed)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	store, err := kv.NewSQLiteStore(path)
	require.NoError(t, err)
	err = store.Update(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		return tx.Bucket(kv.BucketRenters).Put(ctx, "r1", []byte(`{"name":"Ada"}`))
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := kv.NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	err = reopened.View(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		v, ok, err := tx.Bucket(kv.BucketRenters).Get(ctx, "r1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `{"name":"Ada"}`, string(v))
		return nil
	})
	require.NoError(t, err)
}

func TestSQLiteStore_OpenErrorCarriesStack(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := kv.NewSQLiteStore(filepath.Join(blocker, "nested", "kv.db"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "create dirs")

	marker := errs.New("store unavailable")
	assert.True(t, errs.IsMarked(errs.Mark(err, marker), marker))
	assert.Contains(t, strings.Join(errs.ExtractStackLines(err, 0), "\n"), "kv.NewSQLiteStore")
}
