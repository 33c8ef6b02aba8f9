package queries

import (
	"context"

	"console-rental/internal/domain/playstation"
	"console-rental/internal/usecase/shared"
)

type PlayStationQueries interface {
	List(ctx context.Context) ([]*PlayStationView, error)
	ListAvailable(ctx context.Context) ([]*PlayStationView, error)
}

type playstationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewPlayStationQueries(uow shared.UnitOfWork) PlayStationQueries {
	return &playstationQueriesImpl{uow: uow}
}

func (q *playstationQueriesImpl) List(ctx context.Context) ([]*PlayStationView, error) {
	return q.list(ctx, shared.PlayStationRepository.List)
}

func (q *playstationQueriesImpl) ListAvailable(ctx context.Context) ([]*PlayStationView, error) {
	return q.list(ctx, shared.PlayStationRepository.ListAvailable)
}

func (q *playstationQueriesImpl) list(
	ctx context.Context,
	fetch func(shared.PlayStationRepository, context.Context) ([]*playstation.PlayStation, error),
) ([]*PlayStationView, error) {
	var views []*PlayStationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		items, err := fetch(tx.PlayStations(), ctx)
		if err != nil {
			return err
		}
		views = mapViews(items, NewPlayStationView)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
