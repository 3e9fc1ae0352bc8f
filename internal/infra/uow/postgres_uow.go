package uow

import (
	"context"
	"errors"
	"log/slog"

	"event-reservation/internal/infra/readstore"
	"event-reservation/internal/infra/repository"
	"event-reservation/internal/infra/sqlc"
	"event-reservation/internal/pkg/errs"
	"event-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTransactionBegin  = errs.New("failed to begin transaction")
	ErrTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}
	defer rollback(ctx, pgxTx, "failed to rollback transaction")

	if err := fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTransactionCommit)
	}
	return nil
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}
	defer rollback(ctx, pgxTx, "failed to rollback read-only transaction")

	if err := fn(ctx, &reads{dbtx: pgxTx, q: u.q}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) Reads() shared.Reads {
	return &reads{dbtx: u.pool, q: u.q}
}

func rollback(ctx context.Context, tx pgx.Tx, msg string) {
	if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
		// Only log rollback errors for uncommitted transactions
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn(msg, "error", rollbackErr.Error())
		}
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	userRepo        shared.UserRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.q, t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			packageStore: readstore.NewPackageReadStore(t.q, t.dbtx),
		}
	}
	return t.commandReads
}

type commandReads struct {
	packageStore *readstore.PackageReadStore
}

func (r *commandReads) PackageByID(ctx context.Context, id uuid.UUID) (*shared.PackageSnapshot, error) {
	pkg, err := r.packageStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.PackageSnapshot{
		ID:             pkg.ID,
		Name:           pkg.Name,
		BasePriceCents: pkg.BasePriceCents,
	}
	return snapshot, nil
}

type reads struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized readstores
	reservationStore *readstore.ReservationReadStore
	userStore        *readstore.UserReadStore
}

func (r *reads) Reservations() shared.ReservationReads {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.q, r.dbtx)
	}
	return r.reservationStore
}

func (r *reads) Users() shared.UserReads {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.q, r.dbtx)
	}
	return r.userStore
}
