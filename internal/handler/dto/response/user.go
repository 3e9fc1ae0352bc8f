package response

import (
	"time"

	"event-reservation/internal/domain/user"
	"event-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserRMs(users []readmodel.UserRM) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Username:  u.Username,
			Email:     u.Email,
			Role:      u.Role,
			IsAdmin:   user.Role(u.Role).IsAdmin(),
			CreatedAt: u.CreatedAt,
		}
	}
	return out
}
