package repository

import (
	"console-rental/internal/domain/rentlog"
	"console-rental/internal/infra/kv"
	"console-rental/internal/infra/recordstore"
	"console-rental/internal/infra/repository/converter"
)

type RentLogRepository struct {
	collection[*rentlog.RentLog, converter.RentLogRow]
}

func NewRentLogRepository(tx kv.Tx) *RentLogRepository {
	return &RentLogRepository{collection[*rentlog.RentLog, converter.RentLogRow]{
		kind:    "rent log",
		store:   recordstore.New[converter.RentLogRow](tx, kv.BucketRentLogs),
		idOf:    (*rentlog.RentLog).ID,
		toRow:   converter.RentLogToRow,
		fromRow: converter.RentLogFromRow,
	}}
}
