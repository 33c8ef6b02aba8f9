package converter

import (
	"time"

	"console-rental/internal/domain/game"
	"console-rental/internal/domain/playstation"
	"console-rental/internal/domain/renter"
	"console-rental/internal/domain/rentlog"
	"console-rental/internal/pkg/ident"
)

// Stored payload shapes. Field names are part of the on-disk format.

type RenterRow struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
}

type GameRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Developers  string `json:"developers"`
}

type PlayStationRow struct {
	ID        string   `json:"id"`
	Games     []string `json:"games"`
	Available bool     `json:"available"`
}

type RentLogRow struct {
	ID            string    `json:"id"`
	RenterID      string    `json:"renterId"`
	PlayStationID string    `json:"playstationId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func RenterToRow(r *renter.Renter) RenterRow {
	return RenterRow{
		ID:          r.ID().String(),
		Name:        r.Name(),
		ContactInfo: r.ContactInfo(),
	}
}

func RenterFromRow(row RenterRow) *renter.Renter {
	return renter.ReconstructRenter(ident.ID(row.ID), row.Name, row.ContactInfo)
}

func GameToRow(g *game.Game) GameRow {
	return GameRow{
		ID:          g.ID().String(),
		Title:       g.Title(),
		Description: g.Description(),
		Developers:  g.Developers(),
	}
}

func GameFromRow(row GameRow) *game.Game {
	return game.ReconstructGame(ident.ID(row.ID), row.Title, row.Description, row.Developers)
}

func PlayStationToRow(p *playstation.PlayStation) PlayStationRow {
	games := p.Games()
	ids := make([]string, len(games))
	for i, id := range games {
		ids[i] = id.String()
	}
	return PlayStationRow{
		ID:        p.ID().String(),
		Games:     ids,
		Available: p.IsAvailable(),
	}
}

func PlayStationFromRow(row PlayStationRow) *playstation.PlayStation {
	games := make([]ident.ID, len(row.Games))
	for i, id := range row.Games {
		games[i] = ident.ID(id)
	}
	return playstation.ReconstructPlayStation(ident.ID(row.ID), games, row.Available)
}

func RentLogToRow(l *rentlog.RentLog) RentLogRow {
	return RentLogRow{
		ID:            l.ID().String(),
		RenterID:      l.RenterID().String(),
		PlayStationID: l.PlayStationID().String(),
		CreatedAt:     l.CreatedAt().UTC(),
	}
}

func RentLogFromRow(row RentLogRow) *rentlog.RentLog {
	return rentlog.ReconstructRentLog(
		ident.ID(row.ID),
		ident.ID(row.RenterID),
		ident.ID(row.PlayStationID),
		row.CreatedAt,
	)
}
