//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"event-reservation/internal/domain/user"
	reqdto "event-reservation/internal/handler/dto/request"
	"event-reservation/internal/pkg/clock"
	"event-reservation/internal/pkg/errs"
	"event-reservation/internal/usecase/commands"
	"event-reservation/internal/usecase/shared"
	"event-reservation/tests/common/builder"
	"event-reservation/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var submitNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

type ReservationCommandsTestSuite struct {
	suite.Suite
	uow     *memuow.UoW
	useCase commands.ReservationCommands
	actor   *shared.Actor
	pkgID   uuid.UUID
	ctx     context.Context
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.uow = memuow.New()
	s.useCase = commands.NewReservationUseCase(s.uow, clock.NewMockClock(submitNow))
	s.ctx = context.Background()

	owner := s.uow.SeedUser("Juan Dela Cruz", "juan", "juan@example.com", user.RoleUser)
	s.actor = &shared.Actor{ID: owner.ID, Name: owner.Name, Email: owner.Email, Role: user.RoleUser}
	s.pkgID = s.uow.SeedPackage("Gold", 500000).ID
}

func TestReservationCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) request() *builder.ReservationBuilder {
	return builder.NewReservationBuilder().WithEventDate("2025-07-01")
}

func (s *ReservationCommandsTestSuite) TestSubmit() {
	s.Run("minimal submission defaults contact from the profile", func() {
		s.SetupTest()

		result, err := s.useCase.Submit(s.ctx, s.request().BuildSubmitRequestDTO(), s.actor)

		s.Require().NoError(err)
		s.Equal(commands.ReservationSubmittedMessage, result.Message)

		stored := s.uow.Reservations()
		s.Require().Len(stored, 1)
		r := stored[0]
		s.Equal(result.ReservationID, r.ID)
		s.Equal(s.actor.ID, r.UserID)
		s.Equal("Juan Dela Cruz", r.CustomerFullName)
		s.Equal("juan@example.com", r.CustomerEmail)
		s.Equal("pending", r.Status)
		s.Equal("pending", r.PaymentStatus)
		s.Equal(int64(0), r.TotalAmountCents)
		s.Nil(r.PackageID)

		_, hasCustomization := s.uow.Customization(r.ID)
		s.False(hasCustomization)
	})

	s.Run("package with foods inside the budget stores the customization", func() {
		s.SetupTest()
		req := s.request().
			WithPackage(s.pkgID).
			WithEventTime("18:30").
			WithFood("Lechon", 3000).
			WithFood("Pancit", 1500).
			WithUnpricedFood("Rice").
			BuildSubmitRequestDTO()

		result, err := s.useCase.Submit(s.ctx, req, s.actor)

		s.Require().NoError(err)
		c, ok := s.uow.Customization(result.ReservationID)
		s.Require().True(ok)
		s.Equal("Default", c.SelectedTableType)
		s.Equal("Default", c.SelectedChairType)
		s.Require().Len(c.SelectedFoods, 3)
		s.Equal(int64(300000), *c.SelectedFoods[0].PriceCents)
		s.Nil(c.SelectedFoods[2].PriceCents)

		stored := s.uow.Reservations()
		s.Require().Len(stored, 1)
		s.Equal("18:30", *stored[0].EventTime)
		s.Equal(s.pkgID, *stored[0].PackageID)
	})

	s.Run("foods equal to the base price are accepted", func() {
		s.SetupTest()
		req := s.request().WithPackage(s.pkgID).WithFood("Lechon", 5000).BuildSubmitRequestDTO()

		_, err := s.useCase.Submit(s.ctx, req, s.actor)

		s.Require().NoError(err)
	})

	s.Run("foods without a package skip the budget rule", func() {
		s.SetupTest()
		req := s.request().WithFood("Lechon", 999999).BuildSubmitRequestDTO()

		_, err := s.useCase.Submit(s.ctx, req, s.actor)

		s.Require().NoError(err)
		s.Len(s.uow.Reservations(), 1)
	})
}

func (s *ReservationCommandsTestSuite) TestSubmit_Budget() {
	tests := []struct {
		name    string
		foods   []float64
		message string
	}{
		{
			name:    "excess of 500",
			foods:   []float64{3000, 2500},
			message: "The total food cost exceeds the package price by ₱500.00.",
		},
		{
			name:    "excess with thousands separator",
			foods:   []float64{4000, 2234.5},
			message: "The total food cost exceeds the package price by ₱1,234.50.",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			b := s.request().WithPackage(s.pkgID)
			for _, f := range tt.foods {
				b.WithFood("Dish", f)
			}

			result, err := s.useCase.Submit(s.ctx, b.BuildSubmitRequestDTO(), s.actor)

			s.Nil(result)
			verr, ok := errs.AsValidation(err)
			s.Require().True(ok)
			s.Equal(map[string]string{"selected_foods": tt.message}, verr.Fields)
			s.Empty(s.uow.Reservations())
			s.Equal(0, s.uow.Commits)
		})
	}
}

func (s *ReservationCommandsTestSuite) TestSubmit_Validation() {
	tests := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		fields map[string]string
	}{
		{
			name:   "event date today",
			mutate: func(b *builder.ReservationBuilder) { b.WithEventDate("2025-06-10") },
			fields: map[string]string{"event_date": "The event date field must be a date after today."},
		},
		{
			name:   "event date in the past",
			mutate: func(b *builder.ReservationBuilder) { b.WithEventDate("2024-12-25") },
			fields: map[string]string{"event_date": "The event date field must be a date after today."},
		},
		{
			name:   "unknown package",
			mutate: func(b *builder.ReservationBuilder) {
				b.WithPackage(uuid.New())
			},
			fields: map[string]string{"package_id": "The selected package id is invalid."},
		},
		{
			name:   "malformed date and time together",
			mutate: func(b *builder.ReservationBuilder) {
				b.WithEventDate("07/01/2025").WithEventTime("25:00")
			},
			fields: map[string]string{
				"event_date": "The event date field must match the format Y-m-d.",
				"event_time": "The event time field must match the format H:i.",
			},
		},
		{
			name:   "zero guests",
			mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(0) },
			fields: map[string]string{"guest_count": "The guest count field must be at least 1."},
		},
		{
			name:   "guests beyond the storable range",
			mutate: func(b *builder.ReservationBuilder) { b.WithGuestCount(3000000000) },
			fields: map[string]string{"guest_count": "The guest count field must not be greater than 2147483647."},
		},
		{
			name:   "total amount beyond the maximum",
			mutate: func(b *builder.ReservationBuilder) {
				total := 1e17
				b.TotalAmount = &total
			},
			fields: map[string]string{"total_amount": "The total amount field must not be greater than 999999999999.99."},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			b := s.request()
			tt.mutate(b)

			_, err := s.useCase.Submit(s.ctx, b.BuildSubmitRequestDTO(), s.actor)

			s.Require().ErrorIs(err, errs.ErrValidation)
			verr, _ := errs.AsValidation(err)
			s.Equal(tt.fields, verr.Fields)
			s.Empty(s.uow.Reservations())
		})
	}

	s.Run("negative food price is reported per item", func() {
		s.SetupTest()
		req := s.request().BuildSubmitRequestDTO()
		price := -1.0
		req.SelectedFoods = []reqdto.FoodSelection{{}, {Price: &price}}

		_, err := s.useCase.Submit(s.ctx, req, s.actor)

		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Equal("The selected foods.1.price field must be at least 0.", verr.Fields["selected_foods.1.price"])
	})

	s.Run("food price too large to represent never passes the budget", func() {
		s.SetupTest()
		b := s.request().WithPackage(s.pkgID).WithFood("Caviar", 1e17)

		result, err := s.useCase.Submit(s.ctx, b.BuildSubmitRequestDTO(), s.actor)

		s.Nil(result)
		verr, ok := errs.AsValidation(err)
		s.Require().True(ok)
		s.Equal(map[string]string{
			"selected_foods.0.price": "The selected foods.0.price field must not be greater than 999999999999.99.",
		}, verr.Fields)
		s.Empty(s.uow.Reservations())
		s.Equal(0, s.uow.Commits)
	})
}

func (s *ReservationCommandsTestSuite) TestSubmit_AccessDenied() {
	s.SetupTest()
	req := s.request().WithEventDate("not-a-date").BuildSubmitRequestDTO()

	_, err := s.useCase.Submit(s.ctx, req, nil)

	s.Require().ErrorIs(err, errs.ErrAccessDenied)
	s.Empty(s.uow.Reservations())
}

func (s *ReservationCommandsTestSuite) TestSubmit_Atomicity() {
	s.SetupTest()
	s.uow.FailOn[memuow.OpCreateCustomization] = errors.New("connection reset")
	req := s.request().WithPackage(s.pkgID).WithTableType("Round").BuildSubmitRequestDTO()

	_, err := s.useCase.Submit(s.ctx, req, s.actor)

	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrReservationCreationFailed))
	s.Empty(s.uow.Reservations(), "reservation must be rolled back with its customization")
	s.Equal(0, s.uow.Commits)
}

func TestSubmit_EmptyStringsAreAbsent(t *testing.T) {
	uow := memuow.New()
	owner := uow.SeedUser("Ana Cruz", "ana", "ana@example.com", user.RoleUser)
	actor := &shared.Actor{ID: owner.ID, Name: owner.Name, Email: owner.Email, Role: user.RoleUser}
	useCase := commands.NewReservationUseCase(uow, clock.NewMockClock(submitNow))

	req := builder.NewReservationBuilder().WithEventDate("2025-07-01").BuildSubmitRequestDTO()
	empty := ""
	req.PackageID = &empty
	req.CustomerEmail = &empty
	req.SelectedTableType = &empty
	req.Normalize()

	_, err := useCase.Submit(context.Background(), req, actor)
	require.NoError(t, err)

	stored := uow.Reservations()
	require.Len(t, stored, 1)
	assert.Equal(t, "ana@example.com", stored[0].CustomerEmail)
	assert.Nil(t, stored[0].PackageID)
	_, ok := uow.Customization(stored[0].ID)
	assert.False(t, ok)
}
