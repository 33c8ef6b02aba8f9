package repository

import (
	"console-rental/internal/domain/renter"
	"console-rental/internal/infra/kv"
	"console-rental/internal/infra/recordstore"
	"console-rental/internal/infra/repository/converter"
)

type RenterRepository struct {
	collection[*renter.Renter, converter.RenterRow]
}

func NewRenterRepository(tx kv.Tx) *RenterRepository {
	return &RenterRepository{collection[*renter.Renter, converter.RenterRow]{
		kind:    "renter",
		store:   recordstore.New[converter.RenterRow](tx, kv.BucketRenters),
		idOf:    (*renter.Renter).ID,
		toRow:   converter.RenterToRow,
		fromRow: converter.RenterFromRow,
	}}
}
