package shared

import (
	"context"

	"console-rental/internal/domain/game"
	"console-rental/internal/domain/playstation"
	"console-rental/internal/domain/renter"
	"console-rental/internal/domain/rentlog"
	"console-rental/internal/pkg/ident"
)

type UnitOfWork interface {
	// Within: read-write unit, every write in fn commits together or not at all
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent snapshot across collections, writes are rejected
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Renters() RenterRepository
	Games() GameRepository
	PlayStations() PlayStationRepository
	RentLogs() RentLogRepository
}

// FindByID returns an infra.RepositoryError of KindNotFound for unknown ids.

type RenterRepository interface {
	FindByID(ctx context.Context, id ident.ID) (*renter.Renter, error)
	Exists(ctx context.Context, id ident.ID) (bool, error)
	Save(ctx context.Context, r *renter.Renter) error
	List(ctx context.Context) ([]*renter.Renter, error)
}

type GameRepository interface {
	FindByID(ctx context.Context, id ident.ID) (*game.Game, error)
	Exists(ctx context.Context, id ident.ID) (bool, error)
	Save(ctx context.Context, g *game.Game) error
	Delete(ctx context.Context, id ident.ID) (*game.Game, error)
	List(ctx context.Context) ([]*game.Game, error)
}

type PlayStationRepository interface {
	FindByID(ctx context.Context, id ident.ID) (*playstation.PlayStation, error)
	Exists(ctx context.Context, id ident.ID) (bool, error)
	Save(ctx context.Context, p *playstation.PlayStation) error
	Delete(ctx context.Context, id ident.ID) (*playstation.PlayStation, error)
	List(ctx context.Context) ([]*playstation.PlayStation, error)
	ListAvailable(ctx context.Context) ([]*playstation.PlayStation, error)
	ListReferencing(ctx context.Context, gameID ident.ID) ([]*playstation.PlayStation, error)
}

type RentLogRepository interface {
	FindByID(ctx context.Context, id ident.ID) (*rentlog.RentLog, error)
	Exists(ctx context.Context, id ident.ID) (bool, error)
	Save(ctx context.Context, l *rentlog.RentLog) error
	List(ctx context.Context) ([]*rentlog.RentLog, error)
}
