package game

import (
	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
)

// Game is a catalog entry. It is immutable once created; deleting it cascades
// into every playstation that lists it.
type Game struct {
	id          ident.ID
	title       string
	description string
	developers  string
}

func NewGame(id ident.ID, title, description, developers string) (*Game, error) {
	for _, field := range []string{title, description, developers} {
		if field == "" {
			return nil, errs.InvalidPayload(errs.MsgGamePayload)
		}
	}

	return &Game{
		id:          id,
		title:       title,
		description: description,
		developers:  developers,
	}, nil
}

func ReconstructGame(id ident.ID, title, description, developers string) *Game {
	return &Game{
		id:          id,
		title:       title,
		description: description,
		developers:  developers,
	}
}

func (g *Game) ID() ident.ID        { return g.id }
func (g *Game) Title() string       { return g.title }
func (g *Game) Description() string { return g.description }
func (g *Game) Developers() string  { return g.developers }
