//go:build unit

package api_test

import (
	"encoding/json"
	"strings"

	"event-reservation/internal/domain/user"
	"event-reservation/internal/handler/middleware"
	"event-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	memberActor = &shared.Actor{ID: uuid.New(), Name: "Member", Email: "member@example.com", Role: user.RoleUser}
	adminActor  = &shared.Actor{ID: uuid.New(), Name: "Admin", Email: "admin@example.com", Role: user.RoleAdmin}
)

// fakeAuth resolves "Bearer member" and "Bearer admin"; anything else stays anonymous.
func fakeAuth(c *gin.Context) {
	switch strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ") {
	case "member":
		middleware.SetCurrentUser(c, memberActor)
	case "admin":
		middleware.SetCurrentUser(c, adminActor)
	}
	c.Next()
}

type redirectBody struct {
	RedirectTo string            `json:"redirect_to"`
	Flash      map[string]string `json:"flash"`
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail struct {
		Errors map[string]string `json:"errors"`
		Old    map[string]any    `json:"old"`
	} `json:"detail"`
}

func decode[T any](body []byte) (T, error) {
	var v T
	err := json.Unmarshal(body, &v)
	return v, err
}
