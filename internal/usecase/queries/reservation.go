package queries

import (
	"context"

	"event-reservation/internal/infra"
	"event-reservation/internal/pkg/errs"
	"event-reservation/internal/usecase/readmodel"
	"event-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)

// ReservationView is a reservation with its related records attached.
type ReservationView struct {
	Reservation   readmodel.ReservationRM
	Package       *readmodel.PackageRM
	Customization *readmodel.CustomizationRM
	LatestPayment *readmodel.PaymentRM
	Payments      []readmodel.PaymentRM
	Receipts      []readmodel.ReceiptRM
}

type ReservationQueries interface {
	Show(ctx context.Context, actor *shared.Actor, id uuid.UUID) (*ReservationView, error)
	ListMine(ctx context.Context, actor *shared.Actor) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

// Show is allowed for the owner and for admins.
func (q *reservationQueriesImpl) Show(ctx context.Context, actor *shared.Actor, id uuid.UUID) (*ReservationView, error) {
	if actor == nil {
		return nil, errs.ErrAccessDenied
	}

	var view *ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		res, err := reads.Reservations().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if res.UserID != actor.ID && !actor.IsAdmin() {
			return errs.ErrAccessDenied
		}

		views, err := attachRelations(ctx, reads.Reservations(), []readmodel.ReservationRM{*res})
		if err != nil {
			return err
		}
		view = views[0]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListMine returns the actor's reservations, newest first.
func (q *reservationQueriesImpl) ListMine(ctx context.Context, actor *shared.Actor) ([]*ReservationView, error) {
	if actor == nil {
		return nil, errs.ErrAccessDenied
	}

	var views []*ReservationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.Reads) error {
		rows, err := reads.Reservations().ListByUser(ctx, actor.ID)
		if err != nil {
			return err
		}
		views, err = attachRelations(ctx, reads.Reservations(), rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// attachRelations loads each relation with one batched read and stitches the
// results onto the reservations in their original order.
func attachRelations(ctx context.Context, store shared.ReservationReads, rows []readmodel.ReservationRM) ([]*ReservationView, error) {
	views := make([]*ReservationView, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, len(rows))
	var packageIDs []uuid.UUID
	seenPkg := map[uuid.UUID]struct{}{}
	byID := make(map[uuid.UUID]*ReservationView, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
		views[i] = &ReservationView{
			Reservation: r,
			Payments:    []readmodel.PaymentRM{},
			Receipts:    []readmodel.ReceiptRM{},
		}
		byID[r.ID] = views[i]
		if r.PackageID != nil {
			if _, ok := seenPkg[*r.PackageID]; !ok {
				seenPkg[*r.PackageID] = struct{}{}
				packageIDs = append(packageIDs, *r.PackageID)
			}
		}
	}

	packages, err := store.PackagesByIDs(ctx, packageIDs)
	if err != nil {
		return nil, err
	}
	pkgByID := make(map[uuid.UUID]*readmodel.PackageRM, len(packages))
	for i := range packages {
		pkgByID[packages[i].ID] = &packages[i]
	}
	for _, v := range views {
		if v.Reservation.PackageID != nil {
			v.Package = pkgByID[*v.Reservation.PackageID]
		}
	}

	customizations, err := store.CustomizationsByReservationIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range customizations {
		if v, ok := byID[customizations[i].ReservationID]; ok {
			v.Customization = &customizations[i]
		}
	}

	payments, err := store.PaymentsByReservationIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if v, ok := byID[p.ReservationID]; ok {
			v.Payments = append(v.Payments, p)
		}
	}
	for _, v := range views {
		if len(v.Payments) > 0 {
			latest := v.Payments[0]
			v.LatestPayment = &latest
		}
	}

	receipts, err := store.ReceiptsByReservationIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, r := range receipts {
		if v, ok := byID[r.ReservationID]; ok {
			v.Receipts = append(v.Receipts, r)
		}
	}

	return views, nil
}
