//go:build unit

package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"console-rental/internal/handler"
	"console-rental/internal/handler/api"
	"console-rental/internal/handler/middleware"
	"console-rental/internal/pkg/config"
	"console-rental/internal/usecase/queries"
	"console-rental/tests/common/httptest"
	commandsmock "console-rental/tests/mock/commands"
	queriesmock "console-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	engine  *gin.Engine
	renters *queriesmock.MockRenterQueries
}

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	renters := queriesmock.NewMockRenterQueries(ctrl)
	rentals := commandsmock.NewMockRentalCommands(ctrl)
	playstations := commandsmock.NewMockPlayStationCommands(ctrl)

	cfg := config.NewTestConfig()
	engine := gin.New()
	handler.NewRouter(engine, cfg, handler.Handlers{
		Renters:      api.NewRenterHandler(commandsmock.NewMockRenterCommands(ctrl), renters),
		Games:        api.NewGameHandler(commandsmock.NewMockGameCommands(ctrl), queriesmock.NewMockGameQueries(ctrl)),
		PlayStations: api.NewPlayStationHandler(playstations, queriesmock.NewMockPlayStationQueries(ctrl)),
		Rentals:      api.NewRentalHandler(rentals, queriesmock.NewMockRentLogQueries(ctrl)),
	}, handler.Observability{
		Logger:   middleware.NewLogger(cfg.Log),
		Registry: prometheus.NewRegistry(),
	})

	return routerFixture{engine: engine, renters: renters}
}

func TestRouter(t *testing.T) {
	f := newRouterFixture(t)

	t.Run("health", func(t *testing.T) {
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("routes are mounted under /api", func(t *testing.T) {
		f.renters.EXPECT().List(gomock.Any()).Return([]*queries.RenterView{}, nil).Times(1)

		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/renters", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("malformed path id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/api/renters/not-an-id", nil)
		httptest.AssertErrorKind(t, rec, http.StatusBadRequest, "InvalidPayload", "Malformed id")
	})

	t.Run("metrics exposes request counters", func(t *testing.T) {
		rec := httptest.PerformRequest(t, f.engine, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), `console_rental_http_requests_total{method="GET",route="/health",status="200"} 1`),
			rec.Body.String())
	})
}
