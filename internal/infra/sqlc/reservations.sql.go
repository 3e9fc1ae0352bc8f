package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationColumns = `id, user_id, package_id, customer_full_name, customer_address,
    customer_contact_number, customer_email, event_type, event_date, event_time, venue,
    guest_count, customization, total_amount_cents, status, payment_status, created_at, updated_at`

func scanReservation(row interface{ Scan(dest ...any) error }) (Reservations, error) {
	var i Reservations
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.PackageID,
		&i.CustomerFullName,
		&i.CustomerAddress,
		&i.CustomerContactNumber,
		&i.CustomerEmail,
		&i.EventType,
		&i.EventDate,
		&i.EventTime,
		&i.Venue,
		&i.GuestCount,
		&i.Customization,
		&i.TotalAmountCents,
		&i.Status,
		&i.PaymentStatus,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createReservation = `INSERT INTO reservations (
    id, user_id, package_id, customer_full_name, customer_address,
    customer_contact_number, customer_email, event_type, event_date, event_time, venue,
    guest_count, customization, total_amount_cents, status, payment_status
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
)
RETURNING ` + reservationColumns

type CreateReservationParams struct {
	ID                    uuid.UUID   `json:"id"`
	UserID                uuid.UUID   `json:"user_id"`
	PackageID             pgtype.UUID `json:"package_id"`
	CustomerFullName      string      `json:"customer_full_name"`
	CustomerAddress       pgtype.Text `json:"customer_address"`
	CustomerContactNumber pgtype.Text `json:"customer_contact_number"`
	CustomerEmail         string      `json:"customer_email"`
	EventType             string      `json:"event_type"`
	EventDate             pgtype.Date `json:"event_date"`
	EventTime             pgtype.Time `json:"event_time"`
	Venue                 string      `json:"venue"`
	GuestCount            int32       `json:"guest_count"`
	Customization         pgtype.Text `json:"customization"`
	TotalAmountCents      int64       `json:"total_amount_cents"`
	Status                string      `json:"status"`
	PaymentStatus         string      `json:"payment_status"`
}

func (q *Queries) CreateReservation(ctx context.Context, db DBTX, arg CreateReservationParams) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, createReservation,
		arg.ID,
		arg.UserID,
		arg.PackageID,
		arg.CustomerFullName,
		arg.CustomerAddress,
		arg.CustomerContactNumber,
		arg.CustomerEmail,
		arg.EventType,
		arg.EventDate,
		arg.EventTime,
		arg.Venue,
		arg.GuestCount,
		arg.Customization,
		arg.TotalAmountCents,
		arg.Status,
		arg.PaymentStatus,
	))
}

const findReservationByID = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

func (q *Queries) FindReservationByID(ctx context.Context, db DBTX, id uuid.UUID) (Reservations, error) {
	return scanReservation(db.QueryRow(ctx, findReservationByID, id))
}

const listReservationsByUser = `SELECT ` + reservationColumns + `
FROM reservations
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`

func (q *Queries) ListReservationsByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]Reservations, error) {
	rows, err := db.Query(ctx, listReservationsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Reservations{}
	for rows.Next() {
		i, err := scanReservation(rows)
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
