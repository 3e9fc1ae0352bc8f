package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id        uuid.UUID
	name      string
	username  Username
	email     Email
	role      Role
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name string, username Username, email Email, role Role) *User {
	return &User{
		id:       uuid.New(),
		name:     name,
		username: username,
		email:    email,
		role:     role,
	}
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	username Username,
	email Email,
	role Role,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:        id,
		name:      name,
		username:  username,
		email:     email,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Changes carries an admin edit; nil fields are left untouched.
type Changes struct {
	Username *Username
	Email    *Email
	Role     *Role
}

func (c Changes) IsEmpty() bool {
	return c.Username == nil && c.Email == nil && c.Role == nil
}

func (u *User) ApplyChanges(c Changes) {
	if c.Username != nil {
		u.username = *c.Username
	}
	if c.Email != nil {
		u.email = *c.Email
	}
	if c.Role != nil {
		u.role = *c.Role
	}
}

// Promote grants the admin role. Promoting an admin is a no-op.
func (u *User) Promote() {
	u.role = RoleAdmin
}

func (u *User) IsAdmin() bool { return u.role.IsAdmin() }

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
