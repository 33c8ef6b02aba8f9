//go:build unit

package response_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"console-rental/internal/handler/dto/response"
	"console-rental/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestFromViews(t *testing.T) {
	logs := captureLogs(t)

	t.Run("every field is copied", func(t *testing.T) {
		created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		got := response.FromRentLogView(&queries.RentLogView{
			ID: "l", RenterID: "r", PlayStationID: "p", CreatedAt: created,
		})
		assert.Equal(t, &response.RentLogResponse{
			ID: "l", RenterID: "r", PlayStationID: "p", CreatedAt: created,
		}, got)

		renter := response.FromRenterView(&queries.RenterView{ID: "1", Name: " ", ContactInfo: "c"})
		assert.Equal(t, " ", renter.Name)
		assert.Empty(t, logs.String())
	})

	t.Run("nil games render as an empty list", func(t *testing.T) {
		got := response.FromPlayStationView(&queries.PlayStationView{ID: "p", Available: true})
		require.NotNil(t, got.Games)
		assert.Empty(t, got.Games)
	})

	t.Run("copy failures are logged", func(t *testing.T) {
		logs.Reset()
		got := response.FromGameView(nil)
		require.NotNil(t, got)
		assert.Zero(t, *got)
		assert.Contains(t, logs.String(), "response mapping failed")
		assert.Contains(t, logs.String(), "GameResponse")
	})
}
