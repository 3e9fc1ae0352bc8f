package repository

import (
	"context"

	"event-reservation/internal/domain/user"
	"event-reservation/internal/infra"
	"event-reservation/internal/infra/sqlc"
	"event-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	LockUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (sqlc.Users, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.LockUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return userToDomain(row)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	params := sqlc.UpdateUserParams{
		ID:       u.ID(),
		Username: pgconv.StringToPgtype(u.Username().Value()),
		Email:    pgconv.StringToPgtype(u.Email().Value()),
		Role:     pgconv.StringToPgtype(u.Role().String()),
	}
	if _, err := r.queries.UpdateUser(ctx, r.db, params); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	return nil
}

// Delete removes the user; reservations and their children go with it (ON DELETE CASCADE).
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// Stored username and email are not re-validated.
func userToDomain(row sqlc.Users) (*user.User, error) {
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has unknown role", err, infra.KindDBFailure)
	}
	return user.ReconstructUser(
		row.ID,
		row.Name,
		user.ReconstructUsername(row.Username),
		user.ReconstructEmail(row.Email),
		role,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
