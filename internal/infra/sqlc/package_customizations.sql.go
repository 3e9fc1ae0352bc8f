package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const customizationColumns = `id, reservation_id, selected_table_type, selected_chair_type,
    selected_foods, customization_notes, created_at, updated_at`

func scanCustomization(row interface{ Scan(dest ...any) error }) (PackageCustomizations, error) {
	var i PackageCustomizations
	err := row.Scan(
		&i.ID,
		&i.ReservationID,
		&i.SelectedTableType,
		&i.SelectedChairType,
		&i.SelectedFoods,
		&i.CustomizationNotes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createPackageCustomization = `INSERT INTO package_customizations (
    id, reservation_id, selected_table_type, selected_chair_type, selected_foods, customization_notes
) VALUES (
    $1, $2, $3, $4, $5::jsonb, $6
)
RETURNING ` + customizationColumns

type CreatePackageCustomizationParams struct {
	ID                 uuid.UUID   `json:"id"`
	ReservationID      uuid.UUID   `json:"reservation_id"`
	SelectedTableType  string      `json:"selected_table_type"`
	SelectedChairType  string      `json:"selected_chair_type"`
	SelectedFoods      []byte      `json:"selected_foods"`
	CustomizationNotes pgtype.Text `json:"customization_notes"`
}

func (q *Queries) CreatePackageCustomization(ctx context.Context, db DBTX, arg CreatePackageCustomizationParams) (PackageCustomizations, error) {
	return scanCustomization(db.QueryRow(ctx, createPackageCustomization,
		arg.ID,
		arg.ReservationID,
		arg.SelectedTableType,
		arg.SelectedChairType,
		string(arg.SelectedFoods),
		arg.CustomizationNotes,
	))
}

const listCustomizationsByReservationIDs = `SELECT ` + customizationColumns + `
FROM package_customizations
WHERE reservation_id = ANY($1::uuid[])`

func (q *Queries) ListCustomizationsByReservationIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]PackageCustomizations, error) {
	rows, err := db.Query(ctx, listCustomizationsByReservationIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []PackageCustomizations{}
	for rows.Next() {
		i, err := scanCustomization(rows)
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
