package playstation

import (
	"slices"

	"console-rental/internal/pkg/ident"
)

// PlayStation is a rentable console. Games holds catalog ids in insertion
// order; duplicates are kept and existence is not checked on insert.
type PlayStation struct {
	id        ident.ID
	games     []ident.ID
	available bool
}

func NewPlayStation(id ident.ID, games []ident.ID) *PlayStation {
	return &PlayStation{
		id:        id,
		games:     cloneIDs(games),
		available: true,
	}
}

func ReconstructPlayStation(id ident.ID, games []ident.ID, available bool) *PlayStation {
	return &PlayStation{
		id:        id,
		games:     cloneIDs(games),
		available: available,
	}
}

func (p *PlayStation) AddGames(games []ident.ID) {
	p.games = append(p.games, games...)
}

// RemoveGame drops every occurrence of gameID and reports whether the list changed.
func (p *PlayStation) RemoveGame(gameID ident.ID) bool {
	before := len(p.games)
	p.games = slices.DeleteFunc(p.games, func(id ident.ID) bool { return id == gameID })
	return len(p.games) != before
}

func (p *PlayStation) HasGame(gameID ident.ID) bool {
	return slices.Contains(p.games, gameID)
}

func (p *PlayStation) MarkRented() {
	p.available = false
}

func (p *PlayStation) MarkAvailable() {
	p.available = true
}

func (p *PlayStation) ID() ident.ID      { return p.id }
func (p *PlayStation) Games() []ident.ID { return cloneIDs(p.games) }
func (p *PlayStation) IsAvailable() bool { return p.available }

func cloneIDs(ids []ident.ID) []ident.ID {
	out := make([]ident.ID, len(ids))
	copy(out, ids)
	return out
}
