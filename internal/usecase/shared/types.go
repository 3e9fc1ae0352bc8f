package shared

import (
	"event-reservation/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller resolved for the current request.
type Actor struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  user.Role
}

func (a *Actor) IsAdmin() bool {
	return a != nil && a.Role.IsAdmin()
}

// Write-side view of a package, enough to apply the budget rule.
type PackageSnapshot struct {
	ID             uuid.UUID
	Name           string
	BasePriceCents int64
}
