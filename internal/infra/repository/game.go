package repository

import (
	"console-rental/internal/domain/game"
	"console-rental/internal/infra/kv"
	"console-rental/internal/infra/recordstore"
	"console-rental/internal/infra/repository/converter"
)

type GameRepository struct {
	collection[*game.Game, converter.GameRow]
}

func NewGameRepository(tx kv.Tx) *GameRepository {
	return &GameRepository{collection[*game.Game, converter.GameRow]{
		kind:    "game",
		store:   recordstore.New[converter.GameRow](tx, kv.BucketGames),
		idOf:    (*game.Game).ID,
		toRow:   converter.GameToRow,
		fromRow: converter.GameFromRow,
	}}
}
