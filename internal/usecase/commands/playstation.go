package commands

import (
	"context"
	"log/slog"

	"console-rental/internal/domain/playstation"
	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/queries"
	"console-rental/internal/usecase/shared"
)

// PlayStationCommands manages consoles. Game ids are not checked against the
// catalog on create or add.
type PlayStationCommands interface {
	Create(ctx context.Context, games []ident.ID) (*queries.PlayStationView, error)
	Delete(ctx context.Context, id ident.ID) (*queries.PlayStationView, error)
	AddGames(ctx context.Context, id ident.ID, games []ident.ID) (*queries.PlayStationView, error)
	RemoveGame(ctx context.Context, id, gameID ident.ID) (*queries.PlayStationView, error)
	MakeAvailable(ctx context.Context, id ident.ID) (*queries.PlayStationView, error)
}

type playstationUseCaseImpl struct {
	uow shared.UnitOfWork
	ids ident.Generator
}

func NewPlayStationUseCase(uow shared.UnitOfWork, ids ident.Generator) PlayStationCommands {
	return &playstationUseCaseImpl{uow: uow, ids: ids}
}

func (uc *playstationUseCaseImpl) Create(ctx context.Context, games []ident.ID) (*queries.PlayStationView, error) {
	var created *playstation.PlayStation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := shared.NewID(ctx, uc.ids, tx.PlayStations().Exists)
		if err != nil {
			return err
		}
		ps := playstation.NewPlayStation(id, games)
		if err := tx.PlayStations().Save(ctx, ps); err != nil {
			return err
		}
		created = ps
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewPlayStationView(created), nil
}

func (uc *playstationUseCaseImpl) Delete(ctx context.Context, id ident.ID) (*queries.PlayStationView, error) {
	var deleted *playstation.PlayStation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ps, err := tx.PlayStations().Delete(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, errs.MsgPlayStationNotFound)
		}
		deleted = ps
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewPlayStationView(deleted), nil
}

func (uc *playstationUseCaseImpl) AddGames(ctx context.Context, id ident.ID, games []ident.ID) (*queries.PlayStationView, error) {
	return uc.mutate(ctx, id, func(_ context.Context, _ shared.Tx, ps *playstation.PlayStation) error {
		ps.AddGames(games)
		return nil
	})
}

// RemoveGame requires gameID to exist in the catalog, not in the console's list.
func (uc *playstationUseCaseImpl) RemoveGame(ctx context.Context, id, gameID ident.ID) (*queries.PlayStationView, error) {
	return uc.mutate(ctx, id, func(ctx context.Context, tx shared.Tx, ps *playstation.PlayStation) error {
		exists, err := tx.Games().Exists(ctx, gameID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NotFound(errs.MsgGameNotFound)
		}
		ps.RemoveGame(gameID)
		return nil
	})
}

func (uc *playstationUseCaseImpl) MakeAvailable(ctx context.Context, id ident.ID) (*queries.PlayStationView, error) {
	view, err := uc.mutate(ctx, id, func(_ context.Context, _ shared.Tx, ps *playstation.PlayStation) error {
		ps.MarkAvailable()
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "playstation released", "playstation_id", id.String())
	return view, nil
}

// mutate loads the playstation, applies fn and persists the result.
func (uc *playstationUseCaseImpl) mutate(
	ctx context.Context,
	id ident.ID,
	fn func(ctx context.Context, tx shared.Tx, ps *playstation.PlayStation) error,
) (*queries.PlayStationView, error) {
	var updated *playstation.PlayStation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ps, err := tx.PlayStations().FindByID(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, errs.MsgPlayStationNotFound)
		}
		if err := fn(ctx, tx, ps); err != nil {
			return err
		}
		if err := tx.PlayStations().Save(ctx, ps); err != nil {
			return err
		}
		updated = ps
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewPlayStationView(updated), nil
}
