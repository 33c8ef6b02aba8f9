package commands

import (
	"context"

	"console-rental/internal/domain/renter"
	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/queries"
	"console-rental/internal/usecase/shared"
)

type CreateRenterRequest struct {
	Name        string
	ContactInfo string
}

type RenterCommands interface {
	Create(ctx context.Context, req CreateRenterRequest) (*queries.RenterView, error)
	EditContactInfo(ctx context.Context, id ident.ID, contactInfo string) (*queries.RenterView, error)
}

type renterUseCaseImpl struct {
	uow shared.UnitOfWork
	ids ident.Generator
}

func NewRenterUseCase(uow shared.UnitOfWork, ids ident.Generator) RenterCommands {
	return &renterUseCaseImpl{uow: uow, ids: ids}
}

func (uc *renterUseCaseImpl) Create(ctx context.Context, req CreateRenterRequest) (*queries.RenterView, error) {
	var created *renter.Renter
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := shared.NewID(ctx, uc.ids, tx.Renters().Exists)
		if err != nil {
			return err
		}
		r, err := renter.NewRenter(id, req.Name, req.ContactInfo)
		if err != nil {
			return err
		}
		if err := tx.Renters().Save(ctx, r); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewRenterView(created), nil
}

// EditContactInfo reports NotFound before validating contactInfo.
func (uc *renterUseCaseImpl) EditContactInfo(ctx context.Context, id ident.ID, contactInfo string) (*queries.RenterView, error) {
	var updated *renter.Renter
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Renters().FindByID(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, errs.MsgRenterNotFound)
		}
		if err := r.ChangeContactInfo(contactInfo); err != nil {
			return err
		}
		if err := tx.Renters().Save(ctx, r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewRenterView(updated), nil
}
