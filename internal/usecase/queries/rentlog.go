package queries

import (
	"context"

	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/shared"
)

// RentLogQueries enumerates the rental ledger. There is no filtering by
// renter or playstation.
type RentLogQueries interface {
	GetByID(ctx context.Context, id ident.ID) (*RentLogView, error)
	List(ctx context.Context) ([]*RentLogView, error)
}

type rentLogQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRentLogQueries(uow shared.UnitOfWork) RentLogQueries {
	return &rentLogQueriesImpl{uow: uow}
}

func (q *rentLogQueriesImpl) GetByID(ctx context.Context, id ident.ID) (*RentLogView, error) {
	var view *RentLogView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.RentLogs().FindByID(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, errs.MsgRentLogNotFound)
		}
		view = NewRentLogView(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *rentLogQueriesImpl) List(ctx context.Context) ([]*RentLogView, error) {
	var views []*RentLogView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		logs, err := tx.RentLogs().List(ctx)
		if err != nil {
			return err
		}
		views = mapViews(logs, NewRentLogView)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}
