//go:build unit || e2e

package builder

import (
	"console-rental/internal/domain/game"
	reqdto "console-rental/internal/handler/dto/request"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/queries"
)

type GameBuilder struct {
	ID          ident.ID
	Title       string
	Description string
	Developers  string
}

func NewGameBuilder() *GameBuilder {
	return &GameBuilder{
		ID:          ident.NewRandomGenerator().Generate(),
		Title:       "Gran Turismo 7",
		Description: "Racing simulator",
		Developers:  "Polyphony Digital",
	}
}

func (g *GameBuilder) With(mutate func(*GameBuilder)) *GameBuilder {
	mutate(g)
	return g
}

// Build methods
func (g *GameBuilder) BuildDomain() (*game.Game, error) {
	return game.NewGame(g.ID, g.Title, g.Description, g.Developers)
}

func (g *GameBuilder) BuildCreateRequestDTO() reqdto.CreateGameRequest {
	return reqdto.CreateGameRequest{
		Title:       g.Title,
		Description: g.Description,
		Developers:  g.Developers,
	}
}

func (g *GameBuilder) BuildView() *queries.GameView {
	return &queries.GameView{
		ID:          g.ID.String(),
		Title:       g.Title,
		Description: g.Description,
		Developers:  g.Developers,
	}
}
