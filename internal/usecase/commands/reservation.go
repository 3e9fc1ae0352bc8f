package commands

import (
	"context"
	"strconv"

	"event-reservation/internal/domain/reservation"
	reqdto "event-reservation/internal/handler/dto/request"
	"event-reservation/internal/infra"
	"event-reservation/internal/pkg/clock"
	"event-reservation/internal/pkg/errs"
	"event-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const ReservationSubmittedMessage = "Reservation submitted successfully!"

const maxAmountText = "999999999999.99"

var ErrReservationCreationFailed = errs.New("reservation creation failed")

type SubmitReservationResult struct {
	ReservationID uuid.UUID
	Message       string
}

type ReservationCommands interface {
	Submit(ctx context.Context, req reqdto.SubmitReservationRequest, actor *shared.Actor) (*SubmitReservationResult, error)
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	printer *message.Printer
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:     uow,
		clock:   clk,
		printer: message.NewPrinter(language.English),
	}
}

func (uc *reservationUseCaseImpl) Submit(
	ctx context.Context,
	req reqdto.SubmitReservationRequest,
	actor *shared.Actor,
) (*SubmitReservationResult, error) {
	if actor == nil {
		return nil, errs.ErrAccessDenied
	}

	in, err := toSubmission(req)
	if err != nil {
		return nil, err
	}

	services := &reservation.Services{Clock: uc.clock}
	owner := reservation.Owner{ID: actor.ID, Name: actor.Name, Email: actor.Email}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pkg, err := uc.loadPackage(ctx, tx, in.packageID)
		if err != nil {
			return err
		}

		res, err := reservation.NewReservation(services, owner, pkg, in.contact, in.details, in.custom)
		if err != nil {
			return uc.domainError(err)
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.FieldError("package_id", "The selected package id is invalid.")
			}
			return errs.Mark(err, ErrReservationCreationFailed)
		}
		createdID = res.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SubmitReservationResult{
		ReservationID: createdID,
		Message:       ReservationSubmittedMessage,
	}, nil
}

func (uc *reservationUseCaseImpl) loadPackage(ctx context.Context, tx shared.Tx, id *uuid.UUID) (*reservation.PackageSpec, error) {
	if id == nil {
		return nil, nil
	}

	snap, err := tx.Reads().PackageByID(ctx, *id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.FieldError("package_id", "The selected package id is invalid.")
		}
		return nil, errs.Mark(err, ErrReservationCreationFailed)
	}

	price, err := reservation.NewMoney(snap.BasePriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationCreationFailed)
	}
	return &reservation.PackageSpec{ID: snap.ID, BasePrice: price}, nil
}

func (uc *reservationUseCaseImpl) domainError(err error) error {
	var budget *reservation.BudgetExceededError
	switch {
	case errs.As(err, &budget):
		return errs.FieldError("selected_foods", uc.printer.Sprintf(
			"The total food cost exceeds the package price by ₱%.2f.", budget.Excess.Amount()))
	case errs.Is(err, reservation.ErrEventDateNotFuture):
		return errs.FieldError("event_date", "The event date field must be a date after today.")
	case errs.Is(err, reservation.ErrInvalidGuestCount):
		return errs.FieldError("guest_count", "The guest count field must be at least 1.")
	default:
		return errs.Mark(err, ErrReservationCreationFailed)
	}
}

type submission struct {
	packageID *uuid.UUID
	contact   reservation.Contact
	details   reservation.Details
	custom    reservation.CustomizationInput
}

// toSubmission builds domain values from a shape-validated request,
// collecting one message per failing field.
func toSubmission(req reqdto.SubmitReservationRequest) (*submission, error) {
	verr := errs.NewValidationError()
	in := &submission{
		contact: reservation.Contact{
			FullName:      req.CustomerFullName,
			Address:       req.CustomerAddress,
			ContactNumber: req.CustomerContactNumber,
			Email:         req.CustomerEmail,
		},
		details: reservation.Details{
			EventType:     req.EventType,
			Venue:         req.Venue,
			Customization: req.Customization,
		},
		custom: reservation.CustomizationInput{
			TableType: req.SelectedTableType,
			ChairType: req.SelectedChairType,
			Notes:     req.CustomizationNotes,
		},
	}

	if req.PackageID != nil {
		id, err := uuid.Parse(*req.PackageID)
		if err != nil {
			verr.Add("package_id", "The selected package id is invalid.")
		} else {
			in.packageID = &id
		}
	}

	date, err := reservation.NewEventDate(req.EventDate)
	if err != nil {
		verr.Add("event_date", "The event date field must match the format Y-m-d.")
	}
	in.details.EventDate = date

	if req.EventTime != nil {
		t, err := reservation.NewEventTime(*req.EventTime)
		if err != nil {
			verr.Add("event_time", "The event time field must match the format H:i.")
		} else {
			in.details.EventTime = &t
		}
	}

	if req.GuestCount == nil {
		verr.Add("guest_count", "The guest count field is required.")
	} else if guests, err := reservation.NewGuestCount(*req.GuestCount); err != nil {
		verr.Add("guest_count", amountMessage("guest count", err))
	} else {
		in.details.GuestCount = guests
	}

	if req.TotalAmount != nil {
		total, err := reservation.MoneyFromAmount(*req.TotalAmount)
		if err != nil {
			verr.Add("total_amount", amountMessage("total amount", err))
		}
		in.details.TotalAmount = total
	}

	for i, f := range req.SelectedFoods {
		var price *reservation.Money
		if f.Price != nil {
			m, err := reservation.MoneyFromAmount(*f.Price)
			if err != nil {
				verr.Add(foodPriceField(i), amountMessage(foodPriceAttr(i), err))
				continue
			}
			price = &m
		}
		in.custom.Foods = append(in.custom.Foods, reservation.NewFoodItem(f.Name, price))
	}

	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return in, nil
}

func amountMessage(attr string, err error) string {
	switch {
	case errs.Is(err, reservation.ErrMoneyTooLarge):
		return "The " + attr + " field must not be greater than " + maxAmountText + "."
	case errs.Is(err, reservation.ErrGuestCountTooLarge):
		return "The " + attr + " field must not be greater than " + strconv.Itoa(reservation.MaxGuestCount) + "."
	case errs.Is(err, reservation.ErrInvalidGuestCount):
		return "The " + attr + " field must be at least 1."
	default:
		return "The " + attr + " field must be at least 0."
	}
}

func foodPriceField(i int) string {
	return "selected_foods." + strconv.Itoa(i) + ".price"
}

func foodPriceAttr(i int) string {
	return "selected foods." + strconv.Itoa(i) + ".price"
}
