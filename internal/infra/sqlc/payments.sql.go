package sqlc

import (
	"context"

	"github.com/google/uuid"
)

const listPaymentsByReservationIDs = `SELECT id, reservation_id, amount_cents, method, status, reference_number, paid_at, created_at
FROM payments
WHERE reservation_id = ANY($1::uuid[])
ORDER BY reservation_id, created_at DESC, id DESC`

func (q *Queries) ListPaymentsByReservationIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Payments, error) {
	rows, err := db.Query(ctx, listPaymentsByReservationIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Payments{}
	for rows.Next() {
		var i Payments
		if err := rows.Scan(
			&i.ID,
			&i.ReservationID,
			&i.AmountCents,
			&i.Method,
			&i.Status,
			&i.ReferenceNumber,
			&i.PaidAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listReceiptsByReservationIDs = `SELECT id, reservation_id, payment_id, receipt_number, amount_cents, issued_at
FROM receipts
WHERE reservation_id = ANY($1::uuid[])
ORDER BY reservation_id, issued_at DESC, id DESC`

func (q *Queries) ListReceiptsByReservationIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Receipts, error) {
	rows, err := db.Query(ctx, listReceiptsByReservationIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Receipts{}
	for rows.Next() {
		var i Receipts
		if err := rows.Scan(
			&i.ID,
			&i.ReservationID,
			&i.PaymentID,
			&i.ReceiptNumber,
			&i.AmountCents,
			&i.IssuedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
