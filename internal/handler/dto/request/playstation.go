package request

import (
	"console-rental/internal/pkg/errs"
	"console-rental/internal/pkg/ident"
)

// PlayStationGamesRequest is the body of both create and add-games.
type PlayStationGamesRequest struct {
	Games []string `json:"games"`
}

func (r PlayStationGamesRequest) GameIDs() ([]ident.ID, error) {
	ids, err := ident.ParseAll(r.Games)
	if err != nil {
		return nil, errs.Wrap(err, "games")
	}
	return ids, nil
}
