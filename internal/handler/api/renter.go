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

type RenterHandler struct {
	cmds commands.RenterCommands
	q    queries.RenterQueries
}

func NewRenterHandler(cmds commands.RenterCommands, q queries.RenterQueries) *RenterHandler {
	return &RenterHandler{cmds: cmds, q: q}
}

// @Summary Create renter
// @Tags renters
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRenterRequest true "Create renter request"
// @Success 201 {object} resdto.RenterResponse
// @Failure 400 {object} httperr.Response
// @Router /renters [post]
func (h *RenterHandler) Create(c *gin.Context) {
	var req reqdto.CreateRenterRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Header("Location", "/api/renters/"+view.ID)
	c.JSON(http.StatusCreated, resdto.FromRenterView(view))
}

// @Summary List renters
// @Tags renters
// @Produce json
// @Success 200 {array} resdto.RenterResponse
// @Router /renters [get]
func (h *RenterHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRenterViews(views))
}

// @Summary Get renter
// @Tags renters
// @Produce json
// @Param id path string true "Renter ID"
// @Success 200 {object} resdto.RenterResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /renters/{id} [get]
func (h *RenterHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRenterView(view))
}

// @Summary Edit renter contact info
// @Tags renters
// @Accept json
// @Produce json
// @Param id path string true "Renter ID"
// @Param request body reqdto.EditContactInfoRequest true "New contact info"
// @Success 200 {object} resdto.RenterResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /renters/{id} [patch]
func (h *RenterHandler) EditContactInfo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.EditContactInfoRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cmds.EditContactInfo(c.Request.Context(), id, req.ContactInfo)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRenterView(view))
}
