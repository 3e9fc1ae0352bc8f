package converter

import (
	"encoding/json"
	"fmt"
	"math"

	"event-reservation/internal/domain/reservation"
	"event-reservation/internal/infra/sqlc"
	"event-reservation/internal/pkg/pgconv"
)

// FoodRecord is the jsonb element stored in package_customizations.selected_foods.
type FoodRecord struct {
	Name       *string `json:"name,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty"`
}

func ReservationToInfra(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	guests := res.GuestCount().Value()
	if guests < 0 || guests > math.MaxInt32 {
		return sqlc.CreateReservationParams{}, fmt.Errorf("guest count out of int32 range: %d", guests)
	}

	var minutes *int
	if t := res.EventTime(); t != nil {
		m := t.MinutesOfDay()
		minutes = &m
	}

	return sqlc.CreateReservationParams{
		ID:                    res.ID(),
		UserID:                res.UserID(),
		PackageID:             pgconv.UUIDPtrToPgtype(res.PackageID()),
		CustomerFullName:      res.CustomerFullName(),
		CustomerAddress:       pgconv.StringPtrToPgtype(res.CustomerAddress()),
		CustomerContactNumber: pgconv.StringPtrToPgtype(res.CustomerContactNumber()),
		CustomerEmail:         res.CustomerEmail(),
		EventType:             res.EventType(),
		EventDate:             pgconv.DateToPgtype(res.EventDate().Time()),
		EventTime:             pgconv.ClockToPgtype(minutes),
		Venue:                 res.Venue(),
		GuestCount:            int32(guests), // #nosec G115 -- range checked above
		Customization:         pgconv.StringPtrToPgtype(res.Customization()),
		TotalAmountCents:      res.TotalAmount().Cents(),
		Status:                res.Status().String(),
		PaymentStatus:         res.PaymentStatus().String(),
	}, nil
}

func CustomizationToInfra(res *reservation.Reservation) (sqlc.CreatePackageCustomizationParams, error) {
	pc := res.PackageCustomization()
	if pc == nil {
		return sqlc.CreatePackageCustomizationParams{}, fmt.Errorf("reservation %s has no customization", res.ID())
	}

	foods, err := EncodeFoods(pc.Foods())
	if err != nil {
		return sqlc.CreatePackageCustomizationParams{}, err
	}

	return sqlc.CreatePackageCustomizationParams{
		ID:                 pc.ID(),
		ReservationID:      res.ID(),
		SelectedTableType:  pc.TableType(),
		SelectedChairType:  pc.ChairType(),
		SelectedFoods:      foods,
		CustomizationNotes: pgconv.StringPtrToPgtype(pc.Notes()),
	}, nil
}

func EncodeFoods(foods []reservation.FoodItem) ([]byte, error) {
	records := make([]FoodRecord, len(foods))
	for i, f := range foods {
		records[i] = FoodRecord{Name: f.Name()}
		if p := f.Price(); p != nil {
			cents := p.Cents()
			records[i].PriceCents = &cents
		}
	}
	return json.Marshal(records)
}

func DecodeFoods(raw []byte) ([]FoodRecord, error) {
	if len(raw) == 0 {
		return []FoodRecord{}, nil
	}
	var records []FoodRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []FoodRecord{}
	}
	return records, nil
}
