package commands

import (
	"context"
	"log/slog"

	"console-rental/internal/domain/game"
	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/queries"
	"console-rental/internal/usecase/shared"
)

type CreateGameRequest struct {
	Title       string
	Description string
	Developers  string
}

type GameCommands interface {
	Create(ctx context.Context, req CreateGameRequest) (*queries.GameView, error)
	Delete(ctx context.Context, id ident.ID) (*queries.GameView, error)
}

type gameUseCaseImpl struct {
	uow shared.UnitOfWork
	ids ident.Generator
}

func NewGameUseCase(uow shared.UnitOfWork, ids ident.Generator) GameCommands {
	return &gameUseCaseImpl{uow: uow, ids: ids}
}

func (uc *gameUseCaseImpl) Create(ctx context.Context, req CreateGameRequest) (*queries.GameView, error) {
	var created *game.Game
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := shared.NewID(ctx, uc.ids, tx.Games().Exists)
		if err != nil {
			return err
		}
		g, err := game.NewGame(id, req.Title, req.Description, req.Developers)
		if err != nil {
			return err
		}
		if err := tx.Games().Save(ctx, g); err != nil {
			return err
		}
		created = g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewGameView(created), nil
}

// Delete removes the game and strips it from every playstation that lists it,
// in one unit of work. Playstations that never listed it are not rewritten.
func (uc *gameUseCaseImpl) Delete(ctx context.Context, id ident.ID) (*queries.GameView, error) {
	var deleted *game.Game
	var rewritten int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := tx.Games().Delete(ctx, id)
		if err != nil {
			return shared.NotFoundAs(err, errs.MsgGameNotFound)
		}

		referencing, err := tx.PlayStations().ListReferencing(ctx, id)
		if err != nil {
			return err
		}
		for _, ps := range referencing {
			ps.RemoveGame(id)
			if err := tx.PlayStations().Save(ctx, ps); err != nil {
				return err
			}
		}

		deleted = g
		rewritten = len(referencing)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "game deleted",
		"game_id", id.String(),
		"playstations_updated", rewritten)
	return queries.NewGameView(deleted), nil
}
