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
	"event-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const componentUserManagement = "Admin/UserManagement"

type AdminUserHandler struct {
	cmds commands.UserAdminCommands
	q    queries.UserQueries
	cfg  config.AppConfig
}

func NewAdminUserHandler(cmds commands.UserAdminCommands, q queries.UserQueries, cfg config.Config) *AdminUserHandler {
	return &AdminUserHandler{cmds: cmds, q: q, cfg: cfg.App}
}

// @Summary List users
// @Description List every user ordered by creation. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} render.PageResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/users [get]
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.q.ListUsers(c.Request.Context(), middleware.GetCurrentUser(c))
	if err != nil {
		respondError(c, err, nil)
		return
	}

	render.Page(c, componentUserManagement, map[string]any{
		"users": resdto.FromUserRMs(users),
	})
}

// @Summary Update user
// @Description Update username, email or role. Only provided, non-empty fields change. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Fields to change"
// @Success 303 {object} render.RedirectResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/users/{id} [patch]
func (h *AdminUserHandler) Update(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateUserRequest
	if err := bindRequest(c, &req); err != nil {
		respondError(c, err, req)
		return
	}

	if err := h.cmds.Update(c.Request.Context(), actor, id, req); err != nil {
		respondError(c, err, req)
		return
	}

	render.Redirect(c, render.Back(c, h.cfg.FallbackAdminPath), render.Success(commands.UserUpdatedMessage))
}

// @Summary Delete user
// @Description Delete a user together with their reservations. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 303 {object} render.RedirectResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id} [delete]
func (h *AdminUserHandler) Destroy(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.cmds.Destroy(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, nil)
		return
	}

	render.Redirect(c, render.Back(c, h.cfg.FallbackAdminPath), render.Success(commands.UserDeletedMessage))
}

// @Summary Promote user
// @Description Grant the admin role. Promoting an admin succeeds without change. Admin only.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 303 {object} render.RedirectResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/promote [post]
func (h *AdminUserHandler) Promote(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.cmds.Promote(c.Request.Context(), actor, id); err != nil {
		respondError(c, err, nil)
		return
	}

	render.Redirect(c, render.Back(c, h.cfg.FallbackAdminPath), render.Success(commands.UserPromotedMessage))
}

// requireAdmin rejects non-admin callers before the target id is even parsed.
func requireAdmin(c *gin.Context) (*shared.Actor, bool) {
	actor := middleware.GetCurrentUser(c)
	if !actor.IsAdmin() {
		respondError(c, errs.ErrAccessDenied, nil)
		return nil, false
	}
	return actor, true
}
