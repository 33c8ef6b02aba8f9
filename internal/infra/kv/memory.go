package kv

import (
	"context"
	"maps"
	"slices"
	"sync"
)

const DriverMemory = "memory"

// MemoryStore keeps buckets in maps. Transactions are serialized: Update holds
// the write lock and stages writes in an overlay that is merged on success.
type MemoryStore struct {
	mu      sync.RWMutex
	buckets map[string]map[string][]byte
	closed  bool
}

func NewMemoryStore() *MemoryStore {
	buckets := make(map[string]map[string][]byte, len(Buckets))
	for _, name := range Buckets {
		buckets[name] = make(map[string][]byte)
	}
	return &MemoryStore{buckets: buckets}
}

func (s *MemoryStore) Update(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tx := &memoryTx{store: s, writable: true, overlay: make(map[string]map[string]*[]byte)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

func (s *MemoryStore) View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrStoreClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx, &memoryTx{store: s})
}

func (s *MemoryStore) Driver() string { return DriverMemory }

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type memoryTx struct {
	store    *MemoryStore
	writable bool
	// nil entry marks a staged delete
	overlay map[string]map[string]*[]byte
}

func (t *memoryTx) Bucket(name string) Bucket {
	if !isKnownBucket(name) {
		return unknownBucket{}
	}
	return &memoryBucket{tx: t, name: name}
}

func (t *memoryTx) commit() {
	for name, writes := range t.overlay {
		base := t.store.buckets[name]
		for key, v := range writes {
			if v == nil {
				delete(base, key)
				continue
			}
			base[key] = *v
		}
	}
}

type memoryBucket struct {
	tx   *memoryTx
	name string
}

func (b *memoryBucket) lookup(key string) ([]byte, bool) {
	if writes, ok := b.tx.overlay[b.name]; ok {
		if v, staged := writes[key]; staged {
			if v == nil {
				return nil, false
			}
			return *v, true
		}
	}
	v, ok := b.tx.store.buckets[b.name][key]
	return v, ok
}

func (b *memoryBucket) stage(key string, v *[]byte) {
	writes, ok := b.tx.overlay[b.name]
	if !ok {
		writes = make(map[string]*[]byte)
		b.tx.overlay[b.name] = writes
	}
	writes[key] = v
}

func (b *memoryBucket) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := b.lookup(key)
	return cloneBytes(v), ok, nil
}

func (b *memoryBucket) Put(_ context.Context, key string, value []byte) error {
	if !b.tx.writable {
		return ErrReadOnlyTx
	}
	v := cloneBytes(value)
	b.stage(key, &v)
	return nil
}

func (b *memoryBucket) Delete(_ context.Context, key string) ([]byte, bool, error) {
	if !b.tx.writable {
		return nil, false, ErrReadOnlyTx
	}
	prior, ok := b.lookup(key)
	if ok {
		b.stage(key, nil)
	}
	return cloneBytes(prior), ok, nil
}

func (b *memoryBucket) Values(_ context.Context) ([][]byte, error) {
	keys := make(map[string]struct{}, len(b.tx.store.buckets[b.name]))
	for k := range b.tx.store.buckets[b.name] {
		keys[k] = struct{}{}
	}
	for k := range b.tx.overlay[b.name] {
		keys[k] = struct{}{}
	}

	values := make([][]byte, 0, len(keys))
	for _, k := range slices.Sorted(maps.Keys(keys)) {
		if v, ok := b.lookup(k); ok {
			values = append(values, cloneBytes(v))
		}
	}
	return values, nil
}
