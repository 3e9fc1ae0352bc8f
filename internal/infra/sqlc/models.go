package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Packages struct {
	ID             uuid.UUID          `json:"id"`
	Name           string             `json:"name"`
	BasePriceCents int64              `json:"base_price_cents"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
	UpdatedAt      pgtype.Timestamptz `json:"updated_at"`
}

type Reservations struct {
	ID                    uuid.UUID          `json:"id"`
	UserID                uuid.UUID          `json:"user_id"`
	PackageID             pgtype.UUID        `json:"package_id"`
	CustomerFullName      string             `json:"customer_full_name"`
	CustomerAddress       pgtype.Text        `json:"customer_address"`
	CustomerContactNumber pgtype.Text        `json:"customer_contact_number"`
	CustomerEmail         string             `json:"customer_email"`
	EventType             string             `json:"event_type"`
	EventDate             pgtype.Date        `json:"event_date"`
	EventTime             pgtype.Time        `json:"event_time"`
	Venue                 string             `json:"venue"`
	GuestCount            int32              `json:"guest_count"`
	Customization         pgtype.Text        `json:"customization"`
	TotalAmountCents      int64              `json:"total_amount_cents"`
	Status                string             `json:"status"`
	PaymentStatus         string             `json:"payment_status"`
	CreatedAt             pgtype.Timestamptz `json:"created_at"`
	UpdatedAt             pgtype.Timestamptz `json:"updated_at"`
}

type PackageCustomizations struct {
	ID                 uuid.UUID          `json:"id"`
	ReservationID      uuid.UUID          `json:"reservation_id"`
	SelectedTableType  string             `json:"selected_table_type"`
	SelectedChairType  string             `json:"selected_chair_type"`
	SelectedFoods      []byte             `json:"selected_foods"`
	CustomizationNotes pgtype.Text        `json:"customization_notes"`
	CreatedAt          pgtype.Timestamptz `json:"created_at"`
	UpdatedAt          pgtype.Timestamptz `json:"updated_at"`
}

type Payments struct {
	ID              uuid.UUID          `json:"id"`
	ReservationID   uuid.UUID          `json:"reservation_id"`
	AmountCents     int64              `json:"amount_cents"`
	Method          string             `json:"method"`
	Status          string             `json:"status"`
	ReferenceNumber pgtype.Text        `json:"reference_number"`
	PaidAt          pgtype.Timestamptz `json:"paid_at"`
	CreatedAt       pgtype.Timestamptz `json:"created_at"`
}

type Receipts struct {
	ID            uuid.UUID          `json:"id"`
	ReservationID uuid.UUID          `json:"reservation_id"`
	PaymentID     pgtype.UUID        `json:"payment_id"`
	ReceiptNumber string             `json:"receipt_number"`
	AmountCents   int64              `json:"amount_cents"`
	IssuedAt      pgtype.Timestamptz `json:"issued_at"`
}
