package api

import (
	"net/http"

	reqdto "console-rental/internal/handler/dto/request"
	resdto "console-rental/internal/handler/dto/response"
	"console-rental/internal/handler/httperr"
	"console-rental/internal/usecase/commands"
	"console-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	cmds commands.GameCommands
	q    queries.GameQueries
}

func NewGameHandler(cmds commands.GameCommands, q queries.GameQueries) *GameHandler {
	return &GameHandler{cmds: cmds, q: q}
}

// @Summary Create game
// @Tags games
// @Accept json
// @Produce json
// @Param request body reqdto.CreateGameRequest true "Create game request"
// @Success 201 {object} resdto.GameResponse
// @Failure 400 {object} httperr.Response
// @Router /games [post]
func (h *GameHandler) Create(c *gin.Context) {
	var req reqdto.CreateGameRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/games/"+view.ID)
	c.JSON(http.StatusCreated, resdto.FromGameView(view))
}

// @Summary List games
// @Tags games
// @Produce json
// @Success 200 {array} resdto.GameResponse
// @Router /games [get]
func (h *GameHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGameViews(views))
}

// @Summary Get game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} resdto.GameResponse
// @Failure 404 {object} httperr.Response
// @Router /games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGameView(view))
}

// @Summary Delete game
// @Description Deletes the game and removes it from every playstation's game list
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} resdto.GameResponse
// @Failure 404 {object} httperr.Response
// @Router /games/{id} [delete]
func (h *GameHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.cmds.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGameView(view))
}
