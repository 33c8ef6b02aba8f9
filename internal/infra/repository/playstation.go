package repository

import (
	"context"

	"console-rental/internal/domain/playstation"
	"console-rental/internal/infra/kv"
	"console-rental/internal/infra/recordstore"
	"console-rental/internal/infra/repository/converter"
	"console-rental/internal/pkg/ident"
)

type PlayStationRepository struct {
	collection[*playstation.PlayStation, converter.PlayStationRow]
}

func NewPlayStationRepository(tx kv.Tx) *PlayStationRepository {
	return &PlayStationRepository{collection[*playstation.PlayStation, converter.PlayStationRow]{
		kind:    "playstation",
		store:   recordstore.New[converter.PlayStationRow](tx, kv.BucketPlayStations),
		idOf:    (*playstation.PlayStation).ID,
		toRow:   converter.PlayStationToRow,
		fromRow: converter.PlayStationFromRow,
	}}
}

// ListReferencing returns the playstations whose game list contains gameID.
func (r *PlayStationRepository) ListReferencing(ctx context.Context, gameID ident.ID) ([]*playstation.PlayStation, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*playstation.PlayStation
	for _, ps := range all {
		if ps.HasGame(gameID) {
			out = append(out, ps)
		}
	}
	return out, nil
}

func (r *PlayStationRepository) ListAvailable(ctx context.Context) ([]*playstation.PlayStation, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*playstation.PlayStation, 0, len(all))
	for _, ps := range all {
		if ps.IsAvailable() {
			out = append(out, ps)
		}
	}
	return out, nil
}
