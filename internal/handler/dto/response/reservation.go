package response

import (
	"time"

	"event-reservation/internal/usecase/queries"
	"event-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Amounts are decimal pesos, e.g. 49.5.
type ReservationResponse struct {
	ID                    uuid.UUID              `json:"id"`
	UserID                uuid.UUID              `json:"user_id"`
	PackageID             *uuid.UUID             `json:"package_id"`
	CustomerFullName      string                 `json:"customer_full_name"`
	CustomerAddress       *string                `json:"customer_address"`
	CustomerContactNumber *string                `json:"customer_contact_number"`
	CustomerEmail         string                 `json:"customer_email"`
	EventType             string                 `json:"event_type"`
	EventDate             string                 `json:"event_date"`
	EventTime             *string                `json:"event_time"`
	Venue                 string                 `json:"venue"`
	GuestCount            int                    `json:"guest_count"`
	Customization         *string                `json:"customization"`
	TotalAmount           float64                `json:"total_amount"`
	Status                string                 `json:"status"`
	PaymentStatus         string                 `json:"payment_status"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
	Package               *PackageResponse       `json:"package"`
	PackageCustomization  *CustomizationResponse `json:"package_customization"`
	LatestPayment         *PaymentResponse       `json:"latest_payment,omitempty"`
	Payments              []PaymentResponse      `json:"payments"`
	Receipts              []ReceiptResponse      `json:"receipts"`
}

type PackageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	BasePrice float64   `json:"base_price"`
}

type FoodResponse struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

type CustomizationResponse struct {
	ID                 uuid.UUID      `json:"id"`
	SelectedTableType  string         `json:"selected_table_type"`
	SelectedChairType  string         `json:"selected_chair_type"`
	SelectedFoods      []FoodResponse `json:"selected_foods"`
	CustomizationNotes *string        `json:"customization_notes"`
}

type PaymentResponse struct {
	ID              uuid.UUID  `json:"id"`
	Amount          float64    `json:"amount"`
	Method          string     `json:"method"`
	Status          string     `json:"status"`
	ReferenceNumber *string    `json:"reference_number"`
	PaidAt          *time.Time `json:"paid_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ReceiptResponse struct {
	ID            uuid.UUID  `json:"id"`
	PaymentID     *uuid.UUID `json:"payment_id"`
	ReceiptNumber string     `json:"receipt_number"`
	Amount        float64    `json:"amount"`
	IssuedAt      time.Time  `json:"issued_at"`
}

func FromReservationView(v *queries.ReservationView) ReservationResponse {
	r := v.Reservation
	resp := ReservationResponse{
		ID:                    r.ID,
		UserID:                r.UserID,
		PackageID:             r.PackageID,
		CustomerFullName:      r.CustomerFullName,
		CustomerAddress:       r.CustomerAddress,
		CustomerContactNumber: r.CustomerContactNumber,
		CustomerEmail:         r.CustomerEmail,
		EventType:             r.EventType,
		EventDate:             r.EventDate,
		EventTime:             r.EventTime,
		Venue:                 r.Venue,
		GuestCount:            r.GuestCount,
		Customization:         r.Customization,
		TotalAmount:           amount(r.TotalAmountCents),
		Status:                r.Status,
		PaymentStatus:         r.PaymentStatus,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
		Payments:              make([]PaymentResponse, len(v.Payments)),
		Receipts:              make([]ReceiptResponse, len(v.Receipts)),
	}

	if v.Package != nil {
		resp.Package = &PackageResponse{
			ID:        v.Package.ID,
			Name:      v.Package.Name,
			BasePrice: amount(v.Package.BasePriceCents),
		}
	}
	if v.Customization != nil {
		resp.PackageCustomization = fromCustomization(v.Customization)
	}
	if v.LatestPayment != nil {
		latest := fromPayment(*v.LatestPayment)
		resp.LatestPayment = &latest
	}
	for i, p := range v.Payments {
		resp.Payments[i] = fromPayment(p)
	}
	for i, rc := range v.Receipts {
		resp.Receipts[i] = ReceiptResponse{
			ID:            rc.ID,
			PaymentID:     rc.PaymentID,
			ReceiptNumber: rc.ReceiptNumber,
			Amount:        amount(rc.AmountCents),
			IssuedAt:      rc.IssuedAt,
		}
	}
	return resp
}

func FromReservationViews(views []*queries.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}

func fromCustomization(c *readmodel.CustomizationRM) *CustomizationResponse {
	foods := make([]FoodResponse, len(c.SelectedFoods))
	for i, f := range c.SelectedFoods {
		foods[i] = FoodResponse{Name: f.Name}
		if f.PriceCents != nil {
			p := amount(*f.PriceCents)
			foods[i].Price = &p
		}
	}
	return &CustomizationResponse{
		ID:                 c.ID,
		SelectedTableType:  c.SelectedTableType,
		SelectedChairType:  c.SelectedChairType,
		SelectedFoods:      foods,
		CustomizationNotes: c.CustomizationNotes,
	}
}

func fromPayment(p readmodel.PaymentRM) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		Amount:          amount(p.AmountCents),
		Method:          p.Method,
		Status:          p.Status,
		ReferenceNumber: p.ReferenceNumber,
		PaidAt:          p.PaidAt,
		CreatedAt:       p.CreatedAt,
	}
}

func amount(cents int64) float64 {
	return float64(cents) / 100
}
