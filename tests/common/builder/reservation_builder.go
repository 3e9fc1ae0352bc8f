//go:build unit || e2e

package builder

import (
	"math"
	"time"

	reqdto "event-reservation/internal/handler/dto/request"
	"event-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type FoodLine struct {
	Name  string
	Price *float64
}

type ReservationBuilder struct {
	UserID        uuid.UUID
	PackageID     *uuid.UUID
	EventType     string
	EventDate     string
	EventTime     string
	Venue         string
	GuestCount    int
	TotalAmount   *float64
	TableType     string
	ChairType     string
	Foods         []FoodLine
	Notes         string
	Status        string
	PaymentStatus string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		UserID:        uuid.New(),
		EventType:     "Wedding",
		EventDate:     time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		Venue:         "Grand Hall",
		GuestCount:    100,
		Status:        "pending",
		PaymentStatus: "pending",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildSubmitRequestDTO() reqdto.SubmitReservationRequest {
	guests := r.GuestCount
	req := reqdto.SubmitReservationRequest{
		EventType:   r.EventType,
		EventDate:   r.EventDate,
		Venue:       r.Venue,
		GuestCount:  &guests,
		TotalAmount: r.TotalAmount,
	}
	if r.PackageID != nil {
		id := r.PackageID.String()
		req.PackageID = &id
	}
	req.EventTime = optional(r.EventTime)
	req.SelectedTableType = optional(r.TableType)
	req.SelectedChairType = optional(r.ChairType)
	req.CustomizationNotes = optional(r.Notes)
	for _, f := range r.Foods {
		req.SelectedFoods = append(req.SelectedFoods, reqdto.FoodSelection{Name: optional(f.Name), Price: f.Price})
	}
	return req
}

// BuildReadModel leaves timestamps zero so stores can assign ordered ones.
func (r *ReservationBuilder) BuildReadModel() readmodel.ReservationRM {
	rm := readmodel.ReservationRM{
		ID:               uuid.New(),
		UserID:           r.UserID,
		PackageID:        r.PackageID,
		CustomerFullName: "Juan Dela Cruz",
		CustomerEmail:    "juan@example.com",
		EventType:        r.EventType,
		EventDate:        r.EventDate,
		EventTime:        optional(r.EventTime),
		Venue:            r.Venue,
		GuestCount:       r.GuestCount,
		Status:           r.Status,
		PaymentStatus:    r.PaymentStatus,
	}
	if r.TotalAmount != nil {
		rm.TotalAmountCents = int64(math.Round(*r.TotalAmount * 100))
	}
	return rm
}

// Fluent builder methods
func (r *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	r.UserID = id
	return r
}

func (r *ReservationBuilder) WithPackage(id uuid.UUID) *ReservationBuilder {
	r.PackageID = &id
	return r
}

func (r *ReservationBuilder) WithEventDate(date string) *ReservationBuilder {
	r.EventDate = date
	return r
}

func (r *ReservationBuilder) WithEventTime(hhmm string) *ReservationBuilder {
	r.EventTime = hhmm
	return r
}

func (r *ReservationBuilder) WithGuestCount(n int) *ReservationBuilder {
	r.GuestCount = n
	return r
}

func (r *ReservationBuilder) WithTableType(t string) *ReservationBuilder {
	r.TableType = t
	return r
}

func (r *ReservationBuilder) WithFood(name string, price float64) *ReservationBuilder {
	r.Foods = append(r.Foods, FoodLine{Name: name, Price: &price})
	return r
}

func (r *ReservationBuilder) WithUnpricedFood(name string) *ReservationBuilder {
	r.Foods = append(r.Foods, FoodLine{Name: name})
	return r
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
