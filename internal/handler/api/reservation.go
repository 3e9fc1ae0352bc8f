package api

import (
	reqdto "event-reservation/internal/handler/dto/request"
	resdto "event-reservation/internal/handler/dto/response"
	"event-reservation/internal/handler/middleware"
	"event-reservation/internal/handler/render"
	"event-reservation/internal/pkg/config"
	"event-reservation/internal/pkg/errs"
	"event-reservation/internal/usecase/commands"
	"event-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	componentReservationShow  = "Reservation/Show"
	componentReservationIndex = "Reservation/Index"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	cfg  config.AppConfig
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, cfg config.Config) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, cfg: cfg.App}
}

// @Summary Submit reservation
// @Description Submit a reservation for the current user. Food selections must fit the package price.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitReservationRequest true "Reservation request"
// @Success 303 {object} render.RedirectResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Submit(c *gin.Context) {
	actor := middleware.GetCurrentUser(c)
	if actor == nil {
		respondError(c, errs.ErrAccessDenied, nil)
		return
	}

	var req reqdto.SubmitReservationRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err, req)
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, err, req)
		return
	}

	render.Redirect(c, h.cfg.DashboardPath, render.Success(result.Message))
}

// @Summary Show reservation
// @Description Show a reservation with its package, customization, payments and receipts. Owner or admin only.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} render.PageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.q.Show(c.Request.Context(), middleware.GetCurrentUser(c), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	render.Page(c, componentReservationShow, map[string]any{
		"reservation": resdto.FromReservationView(view),
	})
}

// @Summary List my reservations
// @Description List the current user's reservations, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} render.PageResponse
// @Failure 403 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) Index(c *gin.Context) {
	views, err := h.q.ListMine(c.Request.Context(), middleware.GetCurrentUser(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}

	render.Page(c, componentReservationIndex, map[string]any{
		"reservations": resdto.FromReservationViews(views),
	})
}
