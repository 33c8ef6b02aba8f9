package uow

import (
	"context"

	"console-rental/internal/infra/kv"
	"console-rental/internal/infra/repository"
	"console-rental/internal/usecase/shared"
)

type KVUoW struct {
	store kv.Store
}

func NewKVUoW(store kv.Store) shared.UnitOfWork {
	return &KVUoW{store: store}
}

func (u *KVUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.store.Update(ctx, func(ctx context.Context, kvTx kv.Tx) error {
		return fn(ctx, &storeTx{kvTx: kvTx})
	})
}

func (u *KVUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.store.View(ctx, func(ctx context.Context, kvTx kv.Tx) error {
		return fn(ctx, &storeTx{kvTx: kvTx})
	})
}

type storeTx struct {
	kvTx kv.Tx

	// Lazy-initialized repositories
	renterRepo      shared.RenterRepository
	gameRepo        shared.GameRepository
	playstationRepo shared.PlayStationRepository
	rentLogRepo     shared.RentLogRepository
}

func (t *storeTx) Renters() shared.RenterRepository {
	if t.renterRepo == nil {
		t.renterRepo = repository.NewRenterRepository(t.kvTx)
	}
	return t.renterRepo
}

func (t *storeTx) Games() shared.GameRepository {
	if t.gameRepo == nil {
		t.gameRepo = repository.NewGameRepository(t.kvTx)
	}
	return t.gameRepo
}

func (t *storeTx) PlayStations() shared.PlayStationRepository {
	if t.playstationRepo == nil {
		t.playstationRepo = repository.NewPlayStationRepository(t.kvTx)
	}
	return t.playstationRepo
}

func (t *storeTx) RentLogs() shared.RentLogRepository {
	if t.rentLogRepo == nil {
		t.rentLogRepo = repository.NewRentLogRepository(t.kvTx)
	}
	return t.rentLogRepo
}
