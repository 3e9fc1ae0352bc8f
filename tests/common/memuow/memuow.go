//go:build unit || e2e

// Package memuow is an in-memory shared.UnitOfWork for usecase tests.
// Within works on a copy of the state and publishes it only on success.
package memuow

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"event-reservation/internal/domain/reservation"
	"event-reservation/internal/domain/user"
	"event-reservation/internal/infra"
	"event-reservation/internal/usecase/readmodel"
	"event-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names accepted by FailOn.
const (
	OpCreateReservation   = "create_reservation"
	OpCreateCustomization = "create_customization"
	OpUpdateUser          = "update_user"
	OpDeleteUser          = "delete_user"
	OpListReservations    = "list_reservations"
)

type state struct {
	users          map[uuid.UUID]readmodel.UserRM
	packages       map[uuid.UUID]readmodel.PackageRM
	reservations   map[uuid.UUID]readmodel.ReservationRM
	customizations map[uuid.UUID]readmodel.CustomizationRM
	payments       []readmodel.PaymentRM
	receipts       []readmodel.ReceiptRM
	seq            int
}

func (s *state) clone() *state {
	c := &state{
		users:          make(map[uuid.UUID]readmodel.UserRM, len(s.users)),
		packages:       make(map[uuid.UUID]readmodel.PackageRM, len(s.packages)),
		reservations:   make(map[uuid.UUID]readmodel.ReservationRM, len(s.reservations)),
		customizations: make(map[uuid.UUID]readmodel.CustomizationRM, len(s.customizations)),
		payments:       append([]readmodel.PaymentRM(nil), s.payments...),
		receipts:       append([]readmodel.ReceiptRM(nil), s.receipts...),
		seq:            s.seq,
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.packages {
		c.packages[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	for k, v := range s.customizations {
		c.customizations[k] = v
	}
	return c
}

// next returns a strictly increasing timestamp for created_at ordering.
func (s *state) next() time.Time {
	s.seq++
	return baseTime.Add(time.Duration(s.seq) * time.Second)
}

var baseTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type UoW struct {
	mu     sync.Mutex
	st     *state
	FailOn map[string]error

	// Commits counts successful Within calls.
	Commits int
}

func New() *UoW {
	return &UoW{
		st: &state{
			users:          map[uuid.UUID]readmodel.UserRM{},
			packages:       map[uuid.UUID]readmodel.PackageRM{},
			reservations:   map[uuid.UUID]readmodel.ReservationRM{},
			customizations: map[uuid.UUID]readmodel.CustomizationRM{},
		},
		FailOn: map[string]error{},
	}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	work := u.st.clone()
	if err := fn(ctx, &memTx{st: work, failOn: u.FailOn}); err != nil {
		return err
	}
	u.st = work
	u.Commits++
	return nil
}

func (u *UoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.Reads) error) error {
	u.mu.Lock()
	snapshot := u.st.clone()
	u.mu.Unlock()

	return fn(ctx, &memReads{st: snapshot, failOn: u.FailOn})
}

func (u *UoW) Reads() shared.Reads {
	u.mu.Lock()
	defer u.mu.Unlock()
	return &memReads{st: u.st.clone(), failOn: u.FailOn}
}

// Seeding and inspection helpers

func (u *UoW) SeedUser(name, username, email string, role user.Role) readmodel.UserRM {
	u.mu.Lock()
	defer u.mu.Unlock()
	at := u.st.next()
	rm := readmodel.UserRM{
		ID:        uuid.New(),
		Name:      name,
		Username:  username,
		Email:     email,
		Role:      role.String(),
		CreatedAt: at,
		UpdatedAt: at,
	}
	u.st.users[rm.ID] = rm
	return rm
}

func (u *UoW) SeedPackage(name string, basePriceCents int64) readmodel.PackageRM {
	u.mu.Lock()
	defer u.mu.Unlock()
	rm := readmodel.PackageRM{ID: uuid.New(), Name: name, BasePriceCents: basePriceCents}
	u.st.packages[rm.ID] = rm
	return rm
}

func (u *UoW) SeedReservation(rm readmodel.ReservationRM) readmodel.ReservationRM {
	u.mu.Lock()
	defer u.mu.Unlock()
	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	if rm.CreatedAt.IsZero() {
		rm.CreatedAt = u.st.next()
		rm.UpdatedAt = rm.CreatedAt
	}
	u.st.reservations[rm.ID] = rm
	return rm
}

func (u *UoW) SeedPayment(rm readmodel.PaymentRM) readmodel.PaymentRM {
	u.mu.Lock()
	defer u.mu.Unlock()
	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	if rm.CreatedAt.IsZero() {
		rm.CreatedAt = u.st.next()
	}
	u.st.payments = append(u.st.payments, rm)
	return rm
}

func (u *UoW) SeedReceipt(rm readmodel.ReceiptRM) readmodel.ReceiptRM {
	u.mu.Lock()
	defer u.mu.Unlock()
	if rm.ID == uuid.Nil {
		rm.ID = uuid.New()
	}
	if rm.IssuedAt.IsZero() {
		rm.IssuedAt = u.st.next()
	}
	u.st.receipts = append(u.st.receipts, rm)
	return rm
}

func (u *UoW) User(id uuid.UUID) (readmodel.UserRM, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	rm, ok := u.st.users[id]
	return rm, ok
}

func (u *UoW) Reservations() []readmodel.ReservationRM {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]readmodel.ReservationRM, 0, len(u.st.reservations))
	for _, r := range u.st.reservations {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (u *UoW) Customization(reservationID uuid.UUID) (readmodel.CustomizationRM, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	rm, ok := u.st.customizations[reservationID]
	return rm, ok
}

func (u *UoW) CountReservationsOf(userID uuid.UUID) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := 0
	for _, r := range u.st.reservations {
		if r.UserID == userID {
			n++
		}
	}
	return n
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func failed(failOn map[string]error, op string) error {
	if err, ok := failOn[op]; ok {
		return infra.WrapRepoErr(fmt.Sprintf("%s failed", op), err)
	}
	return nil
}

type memTx struct {
	st     *state
	failOn map[string]error
}

func (t *memTx) Reservations() shared.ReservationRepository {
	return &reservationRepo{st: t.st, failOn: t.failOn}
}

func (t *memTx) Users() shared.UserRepository {
	return &userRepo{st: t.st, failOn: t.failOn}
}

func (t *memTx) Reads() shared.CommandReads {
	return &commandReads{st: t.st}
}

type commandReads struct {
	st *state
}

func (r *commandReads) PackageByID(_ context.Context, id uuid.UUID) (*shared.PackageSnapshot, error) {
	p, ok := r.st.packages[id]
	if !ok {
		return nil, notFound("package")
	}
	return &shared.PackageSnapshot{ID: p.ID, Name: p.Name, BasePriceCents: p.BasePriceCents}, nil
}

type reservationRepo struct {
	st     *state
	failOn map[string]error
}

func (r *reservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	if err := failed(r.failOn, OpCreateReservation); err != nil {
		return err
	}
	if _, ok := r.st.users[res.UserID()]; !ok {
		return infra.WrapRepoErr("owner missing", nil, infra.KindForeignKeyViolated)
	}
	if id := res.PackageID(); id != nil {
		if _, ok := r.st.packages[*id]; !ok {
			return infra.WrapRepoErr("package missing", nil, infra.KindForeignKeyViolated)
		}
	}

	at := r.st.next()
	rm := readmodel.ReservationRM{
		ID:                    res.ID(),
		UserID:                res.UserID(),
		PackageID:             res.PackageID(),
		CustomerFullName:      res.CustomerFullName(),
		CustomerAddress:       res.CustomerAddress(),
		CustomerContactNumber: res.CustomerContactNumber(),
		CustomerEmail:         res.CustomerEmail(),
		EventType:             res.EventType(),
		EventDate:             res.EventDate().String(),
		Venue:                 res.Venue(),
		GuestCount:            res.GuestCount().Value(),
		Customization:         res.Customization(),
		TotalAmountCents:      res.TotalAmount().Cents(),
		Status:                res.Status().String(),
		PaymentStatus:         res.PaymentStatus().String(),
		CreatedAt:             at,
		UpdatedAt:             at,
	}
	if t := res.EventTime(); t != nil {
		s := t.String()
		rm.EventTime = &s
	}
	r.st.reservations[rm.ID] = rm

	pc := res.PackageCustomization()
	if pc == nil {
		return nil
	}
	if err := failed(r.failOn, OpCreateCustomization); err != nil {
		return err
	}
	foods := make([]readmodel.FoodRM, len(pc.Foods()))
	for i, f := range pc.Foods() {
		foods[i] = readmodel.FoodRM{Name: f.Name()}
		if p := f.Price(); p != nil {
			cents := p.Cents()
			foods[i].PriceCents = &cents
		}
	}
	r.st.customizations[rm.ID] = readmodel.CustomizationRM{
		ID:                 pc.ID(),
		ReservationID:      rm.ID,
		SelectedTableType:  pc.TableType(),
		SelectedChairType:  pc.ChairType(),
		SelectedFoods:      foods,
		CustomizationNotes: pc.Notes(),
	}
	return nil
}

type userRepo struct {
	st     *state
	failOn map[string]error
}

func (r *userRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*user.User, error) {
	rm, ok := r.st.users[id]
	if !ok {
		return nil, notFound("user")
	}
	role, err := user.NewRole(rm.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has unknown role", err, infra.KindDBFailure)
	}
	return user.ReconstructUser(rm.ID, rm.Name, user.ReconstructUsername(rm.Username),
		user.ReconstructEmail(rm.Email), role, rm.CreatedAt, rm.UpdatedAt), nil
}

func (r *userRepo) Update(_ context.Context, u *user.User) error {
	if err := failed(r.failOn, OpUpdateUser); err != nil {
		return err
	}
	rm, ok := r.st.users[u.ID()]
	if !ok {
		return notFound("user")
	}
	for id, other := range r.st.users {
		if id != u.ID() && (other.Email == u.Email().Value() || other.Username == u.Username().Value()) {
			return infra.WrapRepoErr("duplicate user", nil, infra.KindDuplicateKey)
		}
	}
	rm.Username = u.Username().Value()
	rm.Email = u.Email().Value()
	rm.Role = u.Role().String()
	rm.UpdatedAt = r.st.next()
	r.st.users[rm.ID] = rm
	return nil
}

// Delete cascades to the user's reservations and their children.
func (r *userRepo) Delete(_ context.Context, id uuid.UUID) error {
	if err := failed(r.failOn, OpDeleteUser); err != nil {
		return err
	}
	if _, ok := r.st.users[id]; !ok {
		return notFound("user")
	}
	delete(r.st.users, id)

	gone := map[uuid.UUID]struct{}{}
	for rid, res := range r.st.reservations {
		if res.UserID == id {
			gone[rid] = struct{}{}
			delete(r.st.reservations, rid)
			delete(r.st.customizations, rid)
		}
	}
	payments := r.st.payments[:0]
	for _, p := range r.st.payments {
		if _, ok := gone[p.ReservationID]; !ok {
			payments = append(payments, p)
		}
	}
	r.st.payments = payments
	receipts := r.st.receipts[:0]
	for _, rc := range r.st.receipts {
		if _, ok := gone[rc.ReservationID]; !ok {
			receipts = append(receipts, rc)
		}
	}
	r.st.receipts = receipts
	return nil
}

type memReads struct {
	st     *state
	failOn map[string]error
}

func (r *memReads) Reservations() shared.ReservationReads {
	return &reservationReads{st: r.st, failOn: r.failOn}
}

func (r *memReads) Users() shared.UserReads {
	return &userReads{st: r.st}
}

type reservationReads struct {
	st     *state
	failOn map[string]error
}

func (r *reservationReads) FindByID(_ context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, ok := r.st.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return &rm, nil
}

func (r *reservationReads) ListByUser(_ context.Context, userID uuid.UUID) ([]readmodel.ReservationRM, error) {
	if err := failed(r.failOn, OpListReservations); err != nil {
		return nil, err
	}
	out := []readmodel.ReservationRM{}
	for _, res := range r.st.reservations {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out, nil
}

func (r *reservationReads) PackagesByIDs(_ context.Context, ids []uuid.UUID) ([]readmodel.PackageRM, error) {
	out := []readmodel.PackageRM{}
	for _, id := range ids {
		if p, ok := r.st.packages[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *reservationReads) CustomizationsByReservationIDs(_ context.Context, ids []uuid.UUID) ([]readmodel.CustomizationRM, error) {
	out := []readmodel.CustomizationRM{}
	for _, id := range ids {
		if c, ok := r.st.customizations[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *reservationReads) PaymentsByReservationIDs(_ context.Context, ids []uuid.UUID) ([]readmodel.PaymentRM, error) {
	want := idSet(ids)
	out := []readmodel.PaymentRM{}
	for _, p := range r.st.payments {
		if _, ok := want[p.ReservationID]; ok {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *reservationReads) ReceiptsByReservationIDs(_ context.Context, ids []uuid.UUID) ([]readmodel.ReceiptRM, error) {
	want := idSet(ids)
	out := []readmodel.ReceiptRM{}
	for _, rc := range r.st.receipts {
		if _, ok := want[rc.ReservationID]; ok {
			out = append(out, rc)
		}
	}
	return out, nil
}

type userReads struct {
	st *state
}

func (r *userReads) FindByID(_ context.Context, id uuid.UUID) (*readmodel.UserRM, error) {
	rm, ok := r.st.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &rm, nil
}

func (r *userReads) List(_ context.Context) ([]readmodel.UserRM, error) {
	out := make([]readmodel.UserRM, 0, len(r.st.users))
	for _, u := range r.st.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	m := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return m
}
