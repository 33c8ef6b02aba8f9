package commands

import (
	"context"
	"log/slog"

	"console-rental/internal/domain/rentlog"
	"console-rental/internal/pkg/clock"
	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/queries"
	"console-rental/internal/usecase/shared"
)

type RentRequest struct {
	RenterID      ident.ID
	PlayStationID ident.ID
}

type RentalCommands interface {
	Rent(ctx context.Context, req RentRequest) (*queries.RentLogView, error)
	Release(ctx context.Context, playstationID ident.ID) (*queries.PlayStationView, error)
}

type RentalPolicy struct {
	// RejectUnavailable makes Rent fail with PlayStationNotAvailable when the
	// playstation is already rented. Off, a second rental is logged as usual.
	RejectUnavailable bool
}

type rentalUseCaseImpl struct {
	uow          shared.UnitOfWork
	ids          ident.Generator
	clock        clock.Clock
	policy       RentalPolicy
	playstations PlayStationCommands
}

func NewRentalUseCase(uow shared.UnitOfWork, ids ident.Generator, clk clock.Clock, policy RentalPolicy, playstations PlayStationCommands) RentalCommands {
	return &rentalUseCaseImpl{
		uow:          uow,
		ids:          ids,
		clock:        clk,
		policy:       policy,
		playstations: playstations,
	}
}

func (uc *rentalUseCaseImpl) Rent(ctx context.Context, req RentRequest) (*queries.RentLogView, error) {
	var logged *rentlog.RentLog
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Renters().Exists(ctx, req.RenterID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NotFound(errs.MsgRenterNotFound)
		}

		ps, err := tx.PlayStations().FindByID(ctx, req.PlayStationID)
		if err != nil {
			return shared.NotFoundAs(err, errs.MsgPlayStationNotFound)
		}
		if uc.policy.RejectUnavailable && !ps.IsAvailable() {
			return errs.PlayStationNotAvailable(errs.MsgPlayStationNotAvailable)
		}

		ps.MarkRented()
		if err := tx.PlayStations().Save(ctx, ps); err != nil {
			return err
		}

		id, err := shared.NewID(ctx, uc.ids, tx.RentLogs().Exists)
		if err != nil {
			return err
		}
		l := rentlog.NewRentLog(id, req.RenterID, req.PlayStationID, uc.clock.Now())
		if err := tx.RentLogs().Save(ctx, l); err != nil {
			return err
		}
		logged = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "playstation rented",
		"rent_log_id", logged.ID().String(),
		"renter_id", req.RenterID.String(),
		"playstation_id", req.PlayStationID.String())
	return queries.NewRentLogView(logged), nil
}

func (uc *rentalUseCaseImpl) Release(ctx context.Context, playstationID ident.ID) (*queries.PlayStationView, error) {
	return uc.playstations.MakeAvailable(ctx, playstationID)
}
