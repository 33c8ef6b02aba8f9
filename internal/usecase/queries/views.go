package queries

import (
	"time"

	"console-rental/internal/domain/game"
	"console-rental/internal/domain/playstation"
	"console-rental/internal/domain/renter"
	"console-rental/internal/domain/rentlog"
)

// RenterView represents read-optimized renter data
type RenterView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
}

// GameView represents read-optimized catalog data
type GameView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Developers  string `json:"developers"`
}

type PlayStationView struct {
	ID        string   `json:"id"`
	Games     []string `json:"games"`
	Available bool     `json:"available"`
}

type RentLogView struct {
	ID            string    `json:"id"`
	RenterID      string    `json:"renterId"`
	PlayStationID string    `json:"playstationId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewRenterView(r *renter.Renter) *RenterView {
	return &RenterView{
		ID:          r.ID().String(),
		Name:        r.Name(),
		ContactInfo: r.ContactInfo(),
	}
}

func NewGameView(g *game.Game) *GameView {
	return &GameView{
		ID:          g.ID().String(),
		Title:       g.Title(),
		Description: g.Description(),
		Developers:  g.Developers(),
	}
}

func NewPlayStationView(p *playstation.PlayStation) *PlayStationView {
	games := p.Games()
	ids := make([]string, len(games))
	for i, id := range games {
		ids[i] = id.String()
	}
	return &PlayStationView{
		ID:        p.ID().String(),
		Games:     ids,
		Available: p.IsAvailable(),
	}
}

func NewRentLogView(l *rentlog.RentLog) *RentLogView {
	return &RentLogView{
		ID:            l.ID().String(),
		RenterID:      l.RenterID().String(),
		PlayStationID: l.PlayStationID().String(),
		CreatedAt:     l.CreatedAt(),
	}
}

func mapViews[E any, V any](items []E, fn func(E) *V) []*V {
	out := make([]*V, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}
