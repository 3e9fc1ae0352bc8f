// Package render writes the page and redirect envelopes consumed by the client app.
package render

import (
	"net/http"
	"net/url"
	"strings"

	"event-reservation/internal/handler/middleware"
	"event-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const FlashSuccess = "success"

type PageResponse struct {
	Component string         `json:"component"`
	Props     map[string]any `json:"props"`
	URL       string         `json:"url"`
}

type RedirectResponse struct {
	RedirectTo string            `json:"redirect_to"`
	Flash      map[string]string `json:"flash,omitempty"`
}

type AuthUser struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	IsAdmin bool      `json:"is_admin"`
}

type authProps struct {
	User *AuthUser `json:"user"`
}

// Page renders component with props; the caller is always shared as props.auth.
func Page(c *gin.Context, component string, props map[string]any) {
	merged := make(map[string]any, len(props)+1)
	for k, v := range props {
		merged[k] = v
	}
	merged["auth"] = authProps{User: authUserOf(middleware.GetCurrentUser(c))}

	c.JSON(http.StatusOK, PageResponse{
		Component: component,
		Props:     merged,
		URL:       c.Request.URL.RequestURI(),
	})
}

func Redirect(c *gin.Context, location string, flash map[string]string) {
	c.Header("Location", location)
	c.JSON(http.StatusSeeOther, RedirectResponse{
		RedirectTo: location,
		Flash:      flash,
	})
}

func Success(message string) map[string]string {
	return map[string]string{FlashSuccess: message}
}

// Back returns the Referer when it points at this host, otherwise fallback.
func Back(c *gin.Context, fallback string) string {
	ref := c.GetHeader("Referer")
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil {
		return fallback
	}
	if u.Host != "" && !strings.EqualFold(u.Host, c.Request.Host) {
		return fallback
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

func authUserOf(a *shared.Actor) *AuthUser {
	if a == nil {
		return nil
	}
	return &AuthUser{
		ID:      a.ID,
		Name:    a.Name,
		Email:   a.Email,
		Role:    a.Role.String(),
		IsAdmin: a.IsAdmin(),
	}
}
