package response

import (
	"fmt"
	"log/slog"
	"time"

	"console-rental/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RenterResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
}

type GameResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Developers  string `json:"developers"`
}

type PlayStationResponse struct {
	ID        string   `json:"id"`
	Games     []string `json:"games"`
	Available bool     `json:"available"`
}

type RentLogResponse struct {
	ID            string    `json:"id"`
	RenterID      string    `json:"renterId"`
	PlayStationID string    `json:"playstationId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromRenterView(v *queries.RenterView) *RenterResponse {
	return convert[RenterResponse](v)
}

func FromRenterViews(vs []*queries.RenterView) []*RenterResponse {
	return convertAll[RenterResponse](vs)
}

func FromGameView(v *queries.GameView) *GameResponse {
	return convert[GameResponse](v)
}

func FromGameViews(vs []*queries.GameView) []*GameResponse {
	return convertAll[GameResponse](vs)
}

func FromPlayStationView(v *queries.PlayStationView) *PlayStationResponse {
	resp := convert[PlayStationResponse](v)
	if resp.Games == nil {
		resp.Games = []string{}
	}
	return resp
}

func FromPlayStationViews(vs []*queries.PlayStationView) []*PlayStationResponse {
	out := make([]*PlayStationResponse, len(vs))
	for i, v := range vs {
		out[i] = FromPlayStationView(v)
	}
	return out
}

func FromRentLogView(v *queries.RentLogView) *RentLogResponse {
	return convert[RentLogResponse](v)
}

func FromRentLogViews(vs []*queries.RentLogView) []*RentLogResponse {
	return convertAll[RentLogResponse](vs)
}

// Views and responses share field names, so copier fills every field. A copy
// failure is logged and leaves the response zero-valued.
func convert[T any](src any) *T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		slog.Error("response mapping failed",
			"from", fmt.Sprintf("%T", src),
			"to", fmt.Sprintf("%T", dst),
			"error", err.Error())
	}
	return &dst
}

func convertAll[T any, V any](vs []*V) []*T {
	out := make([]*T, len(vs))
	for i, v := range vs {
		out[i] = convert[T](v)
	}
	return out
}
