// Package recordstore layers typed JSON records over a single kv bucket.
package recordstore

import (
	"context"
	"encoding/json"

	"console-rental/internal/infra"
	"console-rental/internal/infra/kv"
)

// Store is a keyed collection of V. Missing keys are reported through the
// bool result, never as an error.
type Store[V any] struct {
	bucket kv.Bucket
	name   string
}

func New[V any](tx kv.Tx, name string) *Store[V] {
	return &Store[V]{bucket: tx.Bucket(name), name: name}
}

func (s *Store[V]) Get(ctx context.Context, id string) (V, bool, error) {
	var zero V
	raw, ok, err := s.bucket.Get(ctx, id)
	if err != nil {
		return zero, false, infra.WrapRepoErr("failed to read "+s.name+" record", err)
	}
	if !ok {
		return zero, false, nil
	}
	v, err := s.decode(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

// Insert stores v under id, replacing any previous value.
func (s *Store[V]) Insert(ctx context.Context, id string, v V) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return infra.WrapRepoErr("failed to encode "+s.name+" record", err, infra.KindDecodeFailure)
	}
	if err := s.bucket.Put(ctx, id, raw); err != nil {
		return infra.WrapRepoErr("failed to write "+s.name+" record", err)
	}
	return nil
}

// Remove deletes id and returns the prior value if there was one.
func (s *Store[V]) Remove(ctx context.Context, id string) (V, bool, error) {
	var zero V
	raw, ok, err := s.bucket.Delete(ctx, id)
	if err != nil {
		return zero, false, infra.WrapRepoErr("failed to delete "+s.name+" record", err)
	}
	if !ok {
		return zero, false, nil
	}
	v, err := s.decode(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (s *Store[V]) Contains(ctx context.Context, id string) (bool, error) {
	_, ok, err := s.bucket.Get(ctx, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to read "+s.name+" record", err)
	}
	return ok, nil
}

// Values returns every record in ascending key order.
func (s *Store[V]) Values(ctx context.Context) ([]V, error) {
	raws, err := s.bucket.Values(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list "+s.name+" records", err)
	}
	out := make([]V, 0, len(raws))
	for _, raw := range raws {
		v, err := s.decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *Store[V]) decode(raw []byte) (V, error) {
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, infra.WrapRepoErr("failed to decode "+s.name+" record", err, infra.KindDecodeFailure)
	}
	return v, nil
}
