package readstore

import (
	"context"
	"fmt"

	"event-reservation/internal/infra"
	"event-reservation/internal/infra/repository/converter"
	"event-reservation/internal/infra/sqlc"
	"event-reservation/internal/pkg/pgconv"
	"event-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationViewQueries interface {
	FindReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error)
	ListReservationsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Reservations, error)
	ListPackagesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Packages, error)
	ListCustomizationsByReservationIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.PackageCustomizations, error)
	ListPaymentsByReservationIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Payments, error)
	ListReceiptsByReservationIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Receipts, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	row, err := r.queries.FindReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	rm := toReservationRM(row)
	return &rm, nil
}

func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]readmodel.ReservationRM, error) {
	rows, err := r.queries.ListReservationsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by user", err)
	}

	result := make([]readmodel.ReservationRM, len(rows))
	for i, row := range rows {
		result[i] = toReservationRM(row)
	}
	return result, nil
}

func (r *ReservationReadStore) PackagesByIDs(ctx context.Context, ids []uuid.UUID) ([]readmodel.PackageRM, error) {
	if len(ids) == 0 {
		return []readmodel.PackageRM{}, nil
	}
	rows, err := r.queries.ListPackagesByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}

	result := make([]readmodel.PackageRM, len(rows))
	for i, row := range rows {
		result[i] = toPackageRM(row)
	}
	return result, nil
}

func (r *ReservationReadStore) CustomizationsByReservationIDs(ctx context.Context, ids []uuid.UUID) ([]readmodel.CustomizationRM, error) {
	if len(ids) == 0 {
		return []readmodel.CustomizationRM{}, nil
	}
	rows, err := r.queries.ListCustomizationsByReservationIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list package customizations", err)
	}

	result := make([]readmodel.CustomizationRM, 0, len(rows))
	for _, row := range rows {
		foods, err := converter.DecodeFoods(row.SelectedFoods)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode selected foods", err, infra.KindDBFailure)
		}
		rm := readmodel.CustomizationRM{
			ID:                 row.ID,
			ReservationID:      row.ReservationID,
			SelectedTableType:  row.SelectedTableType,
			SelectedChairType:  row.SelectedChairType,
			SelectedFoods:      make([]readmodel.FoodRM, len(foods)),
			CustomizationNotes: pgconv.StringPtrFromPgtype(row.CustomizationNotes),
		}
		for i, f := range foods {
			rm.SelectedFoods[i] = readmodel.FoodRM{Name: f.Name, PriceCents: f.PriceCents}
		}
		result = append(result, rm)
	}
	return result, nil
}

func (r *ReservationReadStore) PaymentsByReservationIDs(ctx context.Context, ids []uuid.UUID) ([]readmodel.PaymentRM, error) {
	if len(ids) == 0 {
		return []readmodel.PaymentRM{}, nil
	}
	rows, err := r.queries.ListPaymentsByReservationIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}

	result := make([]readmodel.PaymentRM, len(rows))
	for i, row := range rows {
		result[i] = readmodel.PaymentRM{
			ID:              row.ID,
			ReservationID:   row.ReservationID,
			AmountCents:     row.AmountCents,
			Method:          row.Method,
			Status:          row.Status,
			ReferenceNumber: pgconv.StringPtrFromPgtype(row.ReferenceNumber),
			PaidAt:          pgconv.TimePtrFromPgtype(row.PaidAt),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ReservationReadStore) ReceiptsByReservationIDs(ctx context.Context, ids []uuid.UUID) ([]readmodel.ReceiptRM, error) {
	if len(ids) == 0 {
		return []readmodel.ReceiptRM{}, nil
	}
	rows, err := r.queries.ListReceiptsByReservationIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list receipts", err)
	}

	result := make([]readmodel.ReceiptRM, len(rows))
	for i, row := range rows {
		result[i] = readmodel.ReceiptRM{
			ID:            row.ID,
			ReservationID: row.ReservationID,
			PaymentID:     pgconv.UUIDPtrFromPgtype(row.PaymentID),
			ReceiptNumber: row.ReceiptNumber,
			AmountCents:   row.AmountCents,
			IssuedAt:      pgconv.TimeFromPgtype(row.IssuedAt),
		}
	}
	return result, nil
}

func toReservationRM(row sqlc.Reservations) readmodel.ReservationRM {
	rm := readmodel.ReservationRM{
		ID:                    row.ID,
		UserID:                row.UserID,
		PackageID:             pgconv.UUIDPtrFromPgtype(row.PackageID),
		CustomerFullName:      row.CustomerFullName,
		CustomerAddress:       pgconv.StringPtrFromPgtype(row.CustomerAddress),
		CustomerContactNumber: pgconv.StringPtrFromPgtype(row.CustomerContactNumber),
		CustomerEmail:         row.CustomerEmail,
		EventType:             row.EventType,
		EventDate:             pgconv.DateFromPgtype(row.EventDate).Format("2006-01-02"),
		Venue:                 row.Venue,
		GuestCount:            int(row.GuestCount),
		Customization:         pgconv.StringPtrFromPgtype(row.Customization),
		TotalAmountCents:      row.TotalAmountCents,
		Status:                row.Status,
		PaymentStatus:         row.PaymentStatus,
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if m := pgconv.ClockFromPgtype(row.EventTime); m != nil {
		s := formatClock(*m)
		rm.EventTime = &s
	}
	return rm
}

func toPackageRM(row sqlc.Packages) readmodel.PackageRM {
	return readmodel.PackageRM{
		ID:             row.ID,
		Name:           row.Name,
		BasePriceCents: row.BasePriceCents,
	}
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
