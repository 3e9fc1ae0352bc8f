package readstore

import (
	"context"

	"event-reservation/internal/infra"
	"event-reservation/internal/infra/sqlc"
	"event-reservation/internal/pkg/pgconv"
	"event-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PackageReadQueries interface {
	FindPackageByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Packages, error)
}

type PackageReadStore struct {
	queries PackageReadQueries
	db      sqlc.DBTX
}

func NewPackageReadStore(queries PackageReadQueries, db sqlc.DBTX) *PackageReadStore {
	return &PackageReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PackageReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.PackageRM, error) {
	row, err := r.queries.FindPackageByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package by ID", err)
	}

	rm := toPackageRM(row)
	return &rm, nil
}
