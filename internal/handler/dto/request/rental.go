package request

import (
	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
	"console-rental/internal/usecase/commands"
)

type RentRequest struct {
	RenterID      string `json:"renterId" binding:"required"`
	PlayStationID string `json:"playstationId" binding:"required"`
}

func (r RentRequest) ToCommand() (commands.RentRequest, error) {
	renterID, err := ident.Parse(r.RenterID)
	if err != nil {
		return commands.RentRequest{}, errs.Wrap(err, "renterId")
	}
	playstationID, err := ident.Parse(r.PlayStationID)
	if err != nil {
		return commands.RentRequest{}, errs.Wrap(err, "playstationId")
	}
	return commands.RentRequest{RenterID: renterID, PlayStationID: playstationID}, nil
}
