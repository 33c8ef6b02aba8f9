//go:build unit

package recordstore_test

import (
	"context"
	"testing"

	"console-rental/internal/infra"
	"console-rental/internal/infra/kv"
	"console-rental/internal/infra/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func update(t *testing.T, store kv.Store, fn func(ctx context.Context, s *recordstore.Store[item])) {
	t.Helper()
	err := store.Update(context.Background(), func(ctx context.Context, tx kv.Tx) error {
		fn(ctx, recordstore.New[item](tx, kv.BucketGames))
		return nil
	})
	require.NoError(t, err)
}

func TestStore(t *testing.T) {
	t.Run("absent key is not an error", func(t *testing.T) {
		update(t, kv.NewMemoryStore(), func(ctx context.Context, s *recordstore.Store[item]) {
			v, ok, err := s.Get(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, item{}, v)

			_, ok, err = s.Remove(ctx, "missing")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	})

	t.Run("insert get remove", func(t *testing.T) {
		update(t, kv.NewMemoryStore(), func(ctx context.Context, s *recordstore.Store[item]) {
			require.NoError(t, s.Insert(ctx, "a", item{Name: "first", Count: 1}))
			require.NoError(t, s.Insert(ctx, "a", item{Name: "second", Count: 2}))

			v, ok, err := s.Get(ctx, "a")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, item{Name: "second", Count: 2}, v)

			has, err := s.Contains(ctx, "a")
			require.NoError(t, err)
			assert.True(t, has)

			prior, ok, err := s.Remove(ctx, "a")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "second", prior.Name)

			has, err = s.Contains(ctx, "a")
			require.NoError(t, err)
			assert.False(t, has)
		})
	})

	t.Run("values in key order", func(t *testing.T) {
		update(t, kv.NewMemoryStore(), func(ctx context.Context, s *recordstore.Store[item]) {
			for _, k := range []string{"c", "a", "b"} {
				require.NoError(t, s.Insert(ctx, k, item{Name: k}))
			}
			vals, err := s.Values(ctx)
			require.NoError(t, err)
			assert.Equal(t, []item{{Name: "a"}, {Name: "b"}, {Name: "c"}}, vals)
		})
	})

	t.Run("corrupt payload is a decode failure", func(t *testing.T) {
		store := kv.NewMemoryStore()
		err := store.Update(context.Background(), func(ctx context.Context, tx kv.Tx) error {
			return tx.Bucket(kv.BucketGames).Put(ctx, "bad", []byte("{not json"))
		})
		require.NoError(t, err)

		update(t, store, func(ctx context.Context, s *recordstore.Store[item]) {
			_, _, err := s.Get(ctx, "bad")
			assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))

			_, err = s.Values(ctx)
			assert.True(t, infra.IsKind(err, infra.KindDecodeFailure))
		})
	})
}
