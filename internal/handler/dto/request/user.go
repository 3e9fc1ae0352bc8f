package request

type UpdateUserRequest struct {
	Username *string `json:"username" binding:"omitempty,max=255"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Role     *string `json:"role" binding:"omitempty,oneof=user admin"`
}

func (r *UpdateUserRequest) Normalize() {
	r.Username = nilIfEmpty(r.Username)
	r.Email = nilIfEmpty(r.Email)
	r.Role = nilIfEmpty(r.Role)
}
