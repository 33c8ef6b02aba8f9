package queries

import (
	"context"

	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/shared"
)

type RenterQueries interface {
	GetByID(ctx context.Context, id ident.ID) (*RenterView, error)
	List(ctx context.Context) ([]*RenterView, error)
}

type renterQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRenterQueries(uow shared.UnitOfWork) RenterQueries {
	return &renterQueriesImpl{uow: uow}
}

func (q *renterQueriesImpl) GetByID(ctx context.Context, id ident.ID) (*RenterView, error) {
	var view *RenterView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Renters().FindByID(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, errs.MsgRenterNotFound)
		}
		view = NewRenterView(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *renterQueriesImpl) List(ctx context.Context) ([]*RenterView, error) {
	var views []*RenterView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		renters, err := tx.Renters().List(ctx)
		if err != nil {
			return err
		}
		views = mapViews(renters, NewRenterView)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

