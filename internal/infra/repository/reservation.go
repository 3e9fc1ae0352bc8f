package repository

import (
	"context"

	"event-reservation/internal/domain/reservation"
	"event-reservation/internal/infra"
	"event-reservation/internal/infra/repository/converter"
	"event-reservation/internal/infra/sqlc"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error)
	CreatePackageCustomization(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePackageCustomizationParams) (sqlc.PackageCustomizations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

// Create must run inside a transaction so the customization is never stored alone.
func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	resParams, err := converter.ReservationToInfra(res)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation", err, infra.KindDBFailure)
	}
	if _, err := r.queries.CreateReservation(ctx, r.db, resParams); err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	if res.PackageCustomization() == nil {
		return nil
	}

	params, err := converter.CustomizationToInfra(res)
	if err != nil {
		return infra.WrapRepoErr("failed to encode package customization", err, infra.KindDBFailure)
	}
	if _, err := r.queries.CreatePackageCustomization(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create package customization", err)
	}

	return nil
}
