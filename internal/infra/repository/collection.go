package repository

import (
	"context"

	"console-rental/internal/infra"
	"console-rental/internal/infra/recordstore"
	"console-rental/internal/pkg/ident"
)

// collection maps a domain entity E onto its stored row R.
type collection[E any, R any] struct {
	kind    string
	store   *recordstore.Store[R]
	idOf    func(E) ident.ID
	toRow   func(E) R
	fromRow func(R) E
}

func (c *collection[E, R]) FindByID(ctx context.Context, id ident.ID) (E, error) {
	var zero E
	row, ok, err := c.store.Get(ctx, id.String())
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, infra.WrapRepoErr(c.kind+" not found", nil, infra.KindNotFound)
	}
	return c.fromRow(row), nil
}

func (c *collection[E, R]) Exists(ctx context.Context, id ident.ID) (bool, error) {
	return c.store.Contains(ctx, id.String())
}

func (c *collection[E, R]) Save(ctx context.Context, e E) error {
	return c.store.Insert(ctx, c.idOf(e).String(), c.toRow(e))
}

func (c *collection[E, R]) Delete(ctx context.Context, id ident.ID) (E, error) {
	var zero E
	row, ok, err := c.store.Remove(ctx, id.String())
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, infra.WrapRepoErr(c.kind+" not found", nil, infra.KindNotFound)
	}
	return c.fromRow(row), nil
}

func (c *collection[E, R]) List(ctx context.Context) ([]E, error) {
	rows, err := c.store.Values(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]E, len(rows))
	for i, row := range rows {
		out[i] = c.fromRow(row)
	}
	return out, nil
}
