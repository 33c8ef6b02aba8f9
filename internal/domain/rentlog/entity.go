package rentlog

import (
	"time"

	"console-rental/internal/pkg/ident"
)

// RentLog records one rental. It has no update or delete path; references are
// checked only when the log is written.
type RentLog struct {
	id            ident.ID
	renterID      ident.ID
	playstationID ident.ID
	createdAt     time.Time
}

func NewRentLog(id, renterID, playstationID ident.ID, now time.Time) *RentLog {
	return &RentLog{
		id:            id,
		renterID:      renterID,
		playstationID: playstationID,
		createdAt:     now,
	}
}

func ReconstructRentLog(id, renterID, playstationID ident.ID, createdAt time.Time) *RentLog {
	return NewRentLog(id, renterID, playstationID, createdAt)
}

func (r *RentLog) ID() ident.ID            { return r.id }
func (r *RentLog) RenterID() ident.ID      { return r.renterID }
func (r *RentLog) PlayStationID() ident.ID { return r.playstationID }
func (r *RentLog) CreatedAt() time.Time    { return r.createdAt }
