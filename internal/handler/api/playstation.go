package api

import (
	"net/http"

	reqdto "console-rental/internal/handler/dto/request"
	resdto "console-rental/internal/handler/dto/response"
	"console-rental/internal/handler/httperr"
	"console-rental/internal/pkg/errs"
	"console-rental/internal/usecase/commands"
	"console-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PlayStationHandler struct {
	cmds commands.PlayStationCommands
	q    queries.PlayStationQueries
}

func NewPlayStationHandler(cmds commands.PlayStationCommands, q queries.PlayStationQueries) *PlayStationHandler {
	return &PlayStationHandler{cmds: cmds, q: q}
}

// @Summary Create playstation
// @Tags playstations
// @Accept json
// @Produce json
// @Param request body reqdto.PlayStationGamesRequest true "Initial games"
// @Success 201 {object} resdto.PlayStationResponse
// @Failure 400 {object} httperr.Response
// @Router /playstations [post]
func (h *PlayStationHandler) Create(c *gin.Context) {
	var req reqdto.PlayStationGamesRequest
	if !bindJSON(c, &req) {
		return
	}
	games, err := req.GameIDs()
	if err != nil {
		httperr.AbortWithDomainError(c, errs.InvalidPayload(msgInvalidID))
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), games)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/playstations/"+view.ID)
	c.JSON(http.StatusCreated, resdto.FromPlayStationView(view))
}

// @Summary List playstations
// @Tags playstations
// @Produce json
// @Success 200 {array} resdto.PlayStationResponse
// @Router /playstations [get]
func (h *PlayStationHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlayStationViews(views))
}

// @Summary List available playstations
// @Tags playstations
// @Produce json
// @Success 200 {array} resdto.PlayStationResponse
// @Router /playstations/available [get]
func (h *PlayStationHandler) ListAvailable(c *gin.Context) {
	views, err := h.q.ListAvailable(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlayStationViews(views))
}

// @Summary Delete playstation
// @Tags playstations
// @Produce json
// @Param id path string true "PlayStation ID"
// @Success 200 {object} resdto.PlayStationResponse
// @Failure 404 {object} httperr.Response
// @Router /playstations/{id} [delete]
func (h *PlayStationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlayStationView(view))
}

// @Summary Add games to playstation
// @Tags playstations
// @Accept json
// @Produce json
// @Param id path string true "PlayStation ID"
// @Param request body reqdto.PlayStationGamesRequest true "Games to append"
// @Success 200 {object} resdto.PlayStationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /playstations/{id}/games [post]
func (h *PlayStationHandler) AddGames(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PlayStationGamesRequest
	if !bindJSON(c, &req) {
		return
	}
	games, err := req.GameIDs()
	if err != nil {
		httperr.AbortWithDomainError(c, errs.InvalidPayload(msgInvalidID))
		return
	}
	view, err := h.cmds.AddGames(c.Request.Context(), id, games)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlayStationView(view))
}

// @Summary Remove game from playstation
// @Tags playstations
// @Produce json
// @Param id path string true "PlayStation ID"
// @Param gameId path string true "Game ID"
// @Success 200 {object} resdto.PlayStationResponse
// @Failure 404 {object} httperr.Response
// @Router /playstations/{id}/games/{gameId} [delete]
func (h *PlayStationHandler) RemoveGame(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	gameID, ok := pathID(c, "gameId")
	if !ok {
		return
	}
	view, err := h.cmds.RemoveGame(c.Request.Context(), id, gameID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlayStationView(view))
}
