package reservation

import (
	"errors"
	"time"

	"event-reservation/internal/pkg/clock"
	"event-reservation/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrBudgetExceeded  = errors.New("total food cost exceeds package price")
	ErrInvalidStatus   = errors.New("invalid reservation status")
	ErrMissingRequired = errors.New("required reservation field is empty")
)

// BudgetExceededError reports how far the selected foods go over the package price.
type BudgetExceededError struct {
	Excess Money
}

func (e *BudgetExceededError) Error() string {
	return ErrBudgetExceeded.Error()
}

func (e *BudgetExceededError) Is(target error) bool {
	return target == ErrBudgetExceeded
}

type PackageSpec struct {
	ID        uuid.UUID
	BasePrice Money
}

type Owner struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type Services struct {
	Clock clock.Clock
}

type Contact struct {
	FullName      *string
	Address       *string
	ContactNumber *string
	Email         *string
}

type Details struct {
	EventType     string
	EventDate     EventDate
	EventTime     *EventTime
	Venue         string
	GuestCount    GuestCount
	Customization *string
	TotalAmount   Money
}

type Reservation struct {
	id                   uuid.UUID
	userID               uuid.UUID
	packageID            *uuid.UUID
	customerFullName     string
	customerAddress      *string
	customerContact      *string
	customerEmail        string
	eventType            string
	eventDate            EventDate
	eventTime            *EventTime
	venue                string
	guestCount           GuestCount
	customization        *string
	totalAmount          Money
	status               Status
	paymentStatus        PaymentStatus
	packageCustomization *PackageCustomization
	createdAt            time.Time
	updatedAt            time.Time
}

// NewReservation validates a submission and builds a pending reservation.
// pkg is nil when no package was selected.
func NewReservation(
	services *Services,
	owner Owner,
	pkg *PackageSpec,
	contact Contact,
	details Details,
	custom CustomizationInput,
) (*Reservation, error) {
	if details.EventType == "" || details.Venue == "" {
		return nil, ErrMissingRequired
	}
	if details.GuestCount.Value() < 1 {
		return nil, ErrInvalidGuestCount
	}
	if !details.EventDate.After(services.Clock.Now()) {
		return nil, ErrEventDateNotFuture
	}
	if err := checkBudget(pkg, custom.Foods); err != nil {
		return nil, err
	}

	var packageID *uuid.UUID
	if pkg != nil {
		id := pkg.ID
		packageID = &id
	}

	return &Reservation{
		id:                   uuid.New(),
		userID:               owner.ID,
		packageID:            packageID,
		customerFullName:     patch.Coalesce(contact.FullName, owner.Name),
		customerAddress:      contact.Address,
		customerContact:      contact.ContactNumber,
		customerEmail:        patch.Coalesce(contact.Email, owner.Email),
		eventType:            details.EventType,
		eventDate:            details.EventDate,
		eventTime:            details.EventTime,
		venue:                details.Venue,
		guestCount:           details.GuestCount,
		customization:        details.Customization,
		totalAmount:          details.TotalAmount,
		status:               StatusPending,
		paymentStatus:        PaymentPending,
		packageCustomization: newPackageCustomization(custom),
	}, nil
}

// checkBudget applies only when a package and at least one food are selected.
func checkBudget(pkg *PackageSpec, foods []FoodItem) error {
	if pkg == nil || len(foods) == 0 {
		return nil
	}
	total := TotalCost(foods)
	if total.GreaterThan(pkg.BasePrice) {
		return &BudgetExceededError{Excess: total.Sub(pkg.BasePrice)}
	}
	return nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PackageID     *uuid.UUID
	FullName      string
	Address       *string
	ContactNumber *string
	Email         string
	Details       Details
	Status        Status
	PaymentStatus PaymentStatus
	Customization *PackageCustomization
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructReservation(p ReconstructParams) (*Reservation, error) {
	if !p.Status.IsValid() || !p.PaymentStatus.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Reservation{
		id:                   p.ID,
		userID:               p.UserID,
		packageID:            p.PackageID,
		customerFullName:     p.FullName,
		customerAddress:      p.Address,
		customerContact:      p.ContactNumber,
		customerEmail:        p.Email,
		eventType:            p.Details.EventType,
		eventDate:            p.Details.EventDate,
		eventTime:            p.Details.EventTime,
		venue:                p.Details.Venue,
		guestCount:           p.Details.GuestCount,
		customization:        p.Details.Customization,
		totalAmount:          p.Details.TotalAmount,
		status:               p.Status,
		paymentStatus:        p.PaymentStatus,
		packageCustomization: p.Customization,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
	}, nil
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID                               { return r.id }
func (r *Reservation) UserID() uuid.UUID                           { return r.userID }
func (r *Reservation) PackageID() *uuid.UUID                       { return r.packageID }
func (r *Reservation) CustomerFullName() string                    { return r.customerFullName }
func (r *Reservation) CustomerAddress() *string                    { return r.customerAddress }
func (r *Reservation) CustomerContactNumber() *string              { return r.customerContact }
func (r *Reservation) CustomerEmail() string                       { return r.customerEmail }
func (r *Reservation) EventType() string                           { return r.eventType }
func (r *Reservation) EventDate() EventDate                        { return r.eventDate }
func (r *Reservation) EventTime() *EventTime                       { return r.eventTime }
func (r *Reservation) Venue() string                               { return r.venue }
func (r *Reservation) GuestCount() GuestCount                      { return r.guestCount }
func (r *Reservation) Customization() *string                      { return r.customization }
func (r *Reservation) TotalAmount() Money                          { return r.totalAmount }
func (r *Reservation) Status() Status                              { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus                { return r.paymentStatus }
func (r *Reservation) PackageCustomization() *PackageCustomization { return r.packageCustomization }
func (r *Reservation) CreatedAt() time.Time                        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time                        { return r.updatedAt }
