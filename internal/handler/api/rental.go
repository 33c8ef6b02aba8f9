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

type RentalHandler struct {
	cmds commands.RentalCommands
	q    queries.RentLogQueries
}

func NewRentalHandler(cmds commands.RentalCommands, q queries.RentLogQueries) *RentalHandler {
	return &RentalHandler{cmds: cmds, q: q}
}

// @Summary Rent playstation
// @Description Marks the playstation rented and appends a rent log
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body reqdto.RentRequest true "Rent request"
// @Success 201 {object} resdto.RentLogResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rentals [post]
func (h *RentalHandler) Rent(c *gin.Context) {
	var req reqdto.RentRequest
	if !bindJSON(c, &req) {
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithDomainError(c, errs.InvalidPayload(msgInvalidID))
		return
	}
	view, err := h.cmds.Rent(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/rent-logs/"+view.ID)
	c.JSON(http.StatusCreated, resdto.FromRentLogView(view))
}

// @Summary Release playstation
// @Description Makes a rented playstation available again. Releasing an available one is a no-op.
// @Tags rentals
// @Produce json
// @Param id path string true "PlayStation ID"
// @Success 200 {object} resdto.PlayStationResponse
// @Failure 404 {object} httperr.Response
// @Router /playstations/{id}/release [post]
func (h *RentalHandler) Release(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.cmds.Release(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlayStationView(view))
}

// @Summary List rent logs
// @Tags rentals
// @Produce json
// @Success 200 {array} resdto.RentLogResponse
// @Router /rent-logs [get]
func (h *RentalHandler) ListLogs(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentLogViews(views))
}

// @Summary Get rent log
// @Tags rentals
// @Produce json
// @Param id path string true "Rent log ID"
// @Success 200 {object} resdto.RentLogResponse
// @Failure 404 {object} httperr.Response
// @Router /rent-logs/{id} [get]
func (h *RentalHandler) GetLog(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRentLogView(view))
}
