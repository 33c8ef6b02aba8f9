//go:build unit || e2e

package builder

import (
	"time"

	"console-rental/internal/domain/playstation"
	reqdto "console-rental/internal/handler/dto/request"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/queries"
)

type PlayStationBuilder struct {
	ID        ident.ID
	Games     []ident.ID
	Available bool
}

func NewPlayStationBuilder() *PlayStationBuilder {
	return &PlayStationBuilder{
		ID:        ident.NewRandomGenerator().Generate(),
		Games:     []ident.ID{},
		Available: true,
	}
}

func (p *PlayStationBuilder) With(mutate func(*PlayStationBuilder)) *PlayStationBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *PlayStationBuilder) BuildDomain() *playstation.PlayStation {
	return playstation.ReconstructPlayStation(p.ID, p.Games, p.Available)
}

func (p *PlayStationBuilder) BuildGamesRequestDTO() reqdto.PlayStationGamesRequest {
	return reqdto.PlayStationGamesRequest{Games: p.gameStrings()}
}

func (p *PlayStationBuilder) BuildView() *queries.PlayStationView {
	return &queries.PlayStationView{
		ID:        p.ID.String(),
		Games:     p.gameStrings(),
		Available: p.Available,
	}
}

func (p *PlayStationBuilder) gameStrings() []string {
	out := make([]string, len(p.Games))
	for i, id := range p.Games {
		out[i] = id.String()
	}
	return out
}

type RentLogBuilder struct {
	ID            ident.ID
	RenterID      ident.ID
	PlayStationID ident.ID
	CreatedAt     time.Time
}

func NewRentLogBuilder() *RentLogBuilder {
	gen := ident.NewRandomGenerator()
	return &RentLogBuilder{
		ID:            gen.Generate(),
		RenterID:      gen.Generate(),
		PlayStationID: gen.Generate(),
		CreatedAt:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (l *RentLogBuilder) With(mutate func(*RentLogBuilder)) *RentLogBuilder {
	mutate(l)
	return l
}

func (l *RentLogBuilder) BuildRentRequestDTO() reqdto.RentRequest {
	return reqdto.RentRequest{
		RenterID:      l.RenterID.String(),
		PlayStationID: l.PlayStationID.String(),
	}
}

func (l *RentLogBuilder) BuildView() *queries.RentLogView {
	return &queries.RentLogView{
		ID:            l.ID.String(),
		RenterID:      l.RenterID.String(),
		PlayStationID: l.PlayStationID.String(),
		CreatedAt:     l.CreatedAt,
	}
}
