package queries

import (
	"context"

	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/shared"
)

type GameQueries interface {
	GetByID(ctx context.Context, id ident.ID) (*GameView, error)
	List(ctx context.Context) ([]*GameView, error)
}

type gameQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewGameQueries(uow shared.UnitOfWork) GameQueries {
	return &gameQueriesImpl{uow: uow}
}

func (q *gameQueriesImpl) GetByID(ctx context.Context, id ident.ID) (*GameView, error) {
	var view *GameView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := tx.Games().FindByID(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, errs.MsgGameNotFound)
		}
		view = NewGameView(g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *gameQueriesImpl) List(ctx context.Context) ([]*GameView, error) {
	var views []*GameView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		games, err := tx.Games().List(ctx)
		if err != nil {
			return err
		}
		views = mapViews(games, NewGameView)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
