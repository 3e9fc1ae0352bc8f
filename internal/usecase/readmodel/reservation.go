package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ReservationRM struct {
	ID                    uuid.UUID  `json:"id"`
	UserID                uuid.UUID  `json:"user_id"`
	PackageID             *uuid.UUID `json:"package_id,omitempty"`
	CustomerFullName      string     `json:"customer_full_name"`
	CustomerAddress       *string    `json:"customer_address,omitempty"`
	CustomerContactNumber *string    `json:"customer_contact_number,omitempty"`
	CustomerEmail         string     `json:"customer_email"`
	EventType             string     `json:"event_type"`
	EventDate             string     `json:"event_date"`
	EventTime             *string    `json:"event_time,omitempty"`
	Venue                 string     `json:"venue"`
	GuestCount            int        `json:"guest_count"`
	Customization         *string    `json:"customization,omitempty"`
	TotalAmountCents      int64      `json:"total_amount_cents"`
	Status                string     `json:"status"`
	PaymentStatus         string     `json:"payment_status"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type PackageRM struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"base_price_cents"`
}

type FoodRM struct {
	Name       *string `json:"name,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty"`
}

type CustomizationRM struct {
	ID                 uuid.UUID `json:"id"`
	ReservationID      uuid.UUID `json:"reservation_id"`
	SelectedTableType  string    `json:"selected_table_type"`
	SelectedChairType  string    `json:"selected_chair_type"`
	SelectedFoods      []FoodRM  `json:"selected_foods"`
	CustomizationNotes *string   `json:"customization_notes,omitempty"`
}

type PaymentRM struct {
	ID              uuid.UUID  `json:"id"`
	ReservationID   uuid.UUID  `json:"reservation_id"`
	AmountCents     int64      `json:"amount_cents"`
	Method          string     `json:"method"`
	Status          string     `json:"status"`
	ReferenceNumber *string    `json:"reference_number,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ReceiptRM struct {
	ID            uuid.UUID  `json:"id"`
	ReservationID uuid.UUID  `json:"reservation_id"`
	PaymentID     *uuid.UUID `json:"payment_id,omitempty"`
	ReceiptNumber string     `json:"receipt_number"`
	AmountCents   int64      `json:"amount_cents"`
	IssuedAt      time.Time  `json:"issued_at"`
}
