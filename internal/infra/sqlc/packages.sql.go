package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const packageColumns = `id, name, base_price_cents, created_at, updated_at`

func scanPackage(row interface{ Scan(dest ...any) error }) (Packages, error) {
	var i Packages
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.BasePriceCents,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const findPackageByID = `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

func (q *Queries) FindPackageByID(ctx context.Context, db DBTX, id uuid.UUID) (Packages, error) {
	return scanPackage(db.QueryRow(ctx, findPackageByID, id))
}

const listPackagesByIDs = `SELECT ` + packageColumns + ` FROM packages WHERE id = ANY($1::uuid[])`

func (q *Queries) ListPackagesByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Packages, error) {
	rows, err := db.Query(ctx, listPackagesByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Packages{}
	for rows.Next() {
		i, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createPackage = `INSERT INTO packages (name, base_price_cents)
VALUES ($1, $2)
RETURNING ` + packageColumns

type CreatePackageParams struct {
	Name           string `json:"name"`
	BasePriceCents int64  `json:"base_price_cents"`
}

func (q *Queries) CreatePackage(ctx context.Context, db DBTX, arg CreatePackageParams) (Packages, error) {
	return scanPackage(db.QueryRow(ctx, createPackage, arg.Name, arg.BasePriceCents))
}
