package shared

import (
	"context"

	"event-reservation/internal/domain/reservation"
	"event-reservation/internal/domain/user"
	"event-reservation/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: read-committed transaction for write operations; any error rolls back
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads Reads) error) error
	// Reads: single query reads outside an explicit transaction
	Reads() Reads
}

type Tx interface {
	Reservations() ReservationRepository
	Users() UserRepository
	Reads() CommandReads
}

type CommandReads interface {
	PackageByID(ctx context.Context, id uuid.UUID) (*PackageSnapshot, error)
}

type ReservationRepository interface {
	// Create stores the reservation and its package customization, if any.
	Create(ctx context.Context, res *reservation.Reservation) error
}

type UserRepository interface {
	FindForUpdate(ctx context.Context, id uuid.UUID) (*user.User, error)
	Update(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Reads interface {
	Reservations() ReservationReads
	Users() UserReads
}

type ReservationReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]readmodel.ReservationRM, error)
	PackagesByIDs(ctx context.Context, ids []uuid.UUID) ([]readmodel.PackageRM, error)
	CustomizationsByReservationIDs(ctx context.Context, ids []uuid.UUID) ([]readmodel.CustomizationRM, error)
	// PaymentsByReservationIDs returns payments newest first within each reservation.
	PaymentsByReservationIDs(ctx context.Context, ids []uuid.UUID) ([]readmodel.PaymentRM, error)
	ReceiptsByReservationIDs(ctx context.Context, ids []uuid.UUID) ([]readmodel.ReceiptRM, error)
}

type UserReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.UserRM, error)
	List(ctx context.Context) ([]readmodel.UserRM, error)
}
