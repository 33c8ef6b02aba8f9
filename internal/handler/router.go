package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"console-rental/internal/handler/api"
	"console-rental/internal/handler/middleware"
	"console-rental/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Renters      *api.RenterHandler
	Games        *api.GameHandler
	PlayStations *api.PlayStationHandler
	Rentals      *api.RentalHandler
}

type Observability struct {
	Logger   *middleware.Logger
	Registry *prometheus.Registry
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, obs Observability) {
	setupMiddleware(engine, cfg, obs)
	setupRoutes(engine, h, obs)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, obs Observability) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(obs.Logger.LoggingMiddleware())
	engine.Use(middleware.NewMetrics(obs.Registry).Middleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, obs Observability) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/renters"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Renters.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Renters.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Renters.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Renters.EditContactInfo},
		})

		addRoutes(apiGroup.Group("/games"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Games.Create},
			{Method: http.MethodGet, Path: "", Handler: h.Games.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Games.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Games.Delete},
		})

		addRoutes(apiGroup.Group("/playstations"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.PlayStations.Create},
			{Method: http.MethodGet, Path: "", Handler: h.PlayStations.List},
			{Method: http.MethodGet, Path: "/available", Handler: h.PlayStations.ListAvailable},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.PlayStations.Delete},
			{Method: http.MethodPost, Path: "/:id/games", Handler: h.PlayStations.AddGames},
			{Method: http.MethodDelete, Path: "/:id/games/:gameId", Handler: h.PlayStations.RemoveGame},
			{Method: http.MethodPost, Path: "/:id/release", Handler: h.Rentals.Release},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/rentals", Handler: h.Rentals.Rent},
			{Method: http.MethodGet, Path: "/rent-logs", Handler: h.Rentals.ListLogs},
			{Method: http.MethodGet, Path: "/rent-logs/:id", Handler: h.Rentals.GetLog},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
