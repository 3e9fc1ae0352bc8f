//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"event-reservation/internal/domain/reservation"
	"event-reservation/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func money(t *testing.T, amount float64) reservation.Money {
	t.Helper()
	m, err := reservation.MoneyFromAmount(amount)
	require.NoError(t, err)
	return m
}

func food(t *testing.T, name string, amount float64) reservation.FoodItem {
	m := money(t, amount)
	return reservation.NewFoodItem(strPtr(name), &m)
}

type input struct {
	pkg     *reservation.PackageSpec
	contact reservation.Contact
	details reservation.Details
	custom  reservation.CustomizationInput
}

func validInput(t *testing.T) *input {
	t.Helper()
	date, err := reservation.NewEventDate("2025-07-01")
	require.NoError(t, err)
	guests, err := reservation.NewGuestCount(100)
	require.NoError(t, err)

	return &input{
		details: reservation.Details{
			EventType:  "Wedding",
			EventDate:  date,
			Venue:      "Grand Hall",
			GuestCount: guests,
		},
	}
}

var owner = reservation.Owner{
	ID:    uuid.MustParse("11111111-1111-1111-1111-111111111111"),
	Name:  "Juan Dela Cruz",
	Email: "juan@example.com",
}

func build(in *input) (*reservation.Reservation, error) {
	services := &reservation.Services{Clock: clock.NewMockClock(now)}
	return reservation.NewReservation(services, owner, in.pkg, in.contact, in.details, in.custom)
}

func TestNewReservation(t *testing.T) {
	t.Run("defaults contact from the owner and starts pending", func(t *testing.T) {
		res, err := build(validInput(t))
		require.NoError(t, err)

		type summary struct {
			UserID        uuid.UUID
			FullName      string
			Email         string
			Status        reservation.Status
			PaymentStatus reservation.PaymentStatus
			Total         int64
			EventDate     string
		}
		expected := summary{
			UserID:        owner.ID,
			FullName:      "Juan Dela Cruz",
			Email:         "juan@example.com",
			Status:        reservation.StatusPending,
			PaymentStatus: reservation.PaymentPending,
			Total:         0,
			EventDate:     "2025-07-01",
		}
		actual := summary{
			UserID:        res.UserID(),
			FullName:      res.CustomerFullName(),
			Email:         res.CustomerEmail(),
			Status:        res.Status(),
			PaymentStatus: res.PaymentStatus(),
			Total:         res.TotalAmount().Cents(),
			EventDate:     res.EventDate().String(),
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
		}
		assert.Nil(t, res.PackageID())
		assert.Nil(t, res.PackageCustomization())
		assert.True(t, res.IsOwnedBy(owner.ID))
		assert.False(t, res.IsOwnedBy(uuid.New()))
	})

	t.Run("explicit contact overrides the profile", func(t *testing.T) {
		in := validInput(t)
		in.contact = reservation.Contact{
			FullName:      strPtr("Maria Clara"),
			Email:         strPtr("maria@example.com"),
			ContactNumber: strPtr("09171234567"),
		}

		res, err := build(in)
		require.NoError(t, err)

		assert.Equal(t, "Maria Clara", res.CustomerFullName())
		assert.Equal(t, "maria@example.com", res.CustomerEmail())
		assert.Equal(t, "09171234567", *res.CustomerContactNumber())
	})

	t.Run("event date", func(t *testing.T) {
		tests := []struct {
			name  string
			date  string
			errIs error
		}{
			{name: "tomorrow is accepted", date: "2025-06-11"},
			{name: "today is rejected", date: "2025-06-10", errIs: reservation.ErrEventDateNotFuture},
			{name: "yesterday is rejected", date: "2025-06-09", errIs: reservation.ErrEventDateNotFuture},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				in := validInput(t)
				date, err := reservation.NewEventDate(tt.date)
				require.NoError(t, err)
				in.details.EventDate = date

				res, err := build(in)

				if tt.errIs == nil {
					require.NoError(t, err)
					require.NotNil(t, res)
				} else {
					require.ErrorIs(t, err, tt.errIs)
					assert.Nil(t, res)
				}
			})
		}
	})

	t.Run("missing event type or venue", func(t *testing.T) {
		in := validInput(t)
		in.details.Venue = ""

		_, err := build(in)

		require.ErrorIs(t, err, reservation.ErrMissingRequired)
	})

	t.Run("zero guest count", func(t *testing.T) {
		in := validInput(t)
		in.details.GuestCount = reservation.GuestCount{}

		_, err := build(in)

		require.ErrorIs(t, err, reservation.ErrInvalidGuestCount)
	})
}

func TestNewReservation_Budget(t *testing.T) {
	tests := []struct {
		name        string
		withPackage bool
		foods       []float64
		unpriced    int
		excessCents int64
	}{
		{name: "under the base price", withPackage: true, foods: []float64{2000, 2500}},
		{name: "equal to the base price", withPackage: true, foods: []float64{2500, 2500}},
		{name: "over the base price", withPackage: true, foods: []float64{3000, 2500}, excessCents: 50000},
		{name: "fractional excess", withPackage: true, foods: []float64{5000.25}, excessCents: 25},
		{name: "largest prices still exceed", withPackage: true, foods: []float64{reservation.MaxAmount, reservation.MaxAmount}, excessCents: 2*99999999999999 - 500000},
		{name: "unpriced foods count as zero", withPackage: true, foods: []float64{5000}, unpriced: 2},
		{name: "no package skips the check", foods: []float64{9000}},
		{name: "package without foods", withPackage: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(t)
			if tt.withPackage {
				in.pkg = &reservation.PackageSpec{ID: uuid.New(), BasePrice: money(t, 5000)}
			}
			for _, f := range tt.foods {
				in.custom.Foods = append(in.custom.Foods, food(t, "Lechon", f))
			}
			for i := 0; i < tt.unpriced; i++ {
				in.custom.Foods = append(in.custom.Foods, reservation.NewFoodItem(strPtr("Rice"), nil))
			}

			res, err := build(in)

			if tt.excessCents == 0 {
				require.NoError(t, err)
				require.NotNil(t, res)
				return
			}
			require.ErrorIs(t, err, reservation.ErrBudgetExceeded)
			var budget *reservation.BudgetExceededError
			require.ErrorAs(t, err, &budget)
			assert.Equal(t, tt.excessCents, budget.Excess.Cents())
			assert.Nil(t, res)
		})
	}
}

func TestNewReservation_Customization(t *testing.T) {
	tests := []struct {
		name          string
		custom        reservation.CustomizationInput
		expectCreated bool
		expectTable   string
		expectChair   string
	}{
		{
			name:   "nothing selected",
			custom: reservation.CustomizationInput{Notes: strPtr("notes alone do not count")},
		},
		{
			name:          "table only defaults the chair",
			custom:        reservation.CustomizationInput{TableType: strPtr("Round")},
			expectCreated: true,
			expectTable:   "Round",
			expectChair:   reservation.DefaultFurnitureType,
		},
		{
			name:          "foods only defaults both",
			custom:        reservation.CustomizationInput{Foods: []reservation.FoodItem{reservation.NewFoodItem(strPtr("Pancit"), nil)}},
			expectCreated: true,
			expectTable:   reservation.DefaultFurnitureType,
			expectChair:   reservation.DefaultFurnitureType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(t)
			in.custom = tt.custom

			res, err := build(in)
			require.NoError(t, err)

			pc := res.PackageCustomization()
			if !tt.expectCreated {
				assert.Nil(t, pc)
				return
			}
			require.NotNil(t, pc)
			assert.Equal(t, tt.expectTable, pc.TableType())
			assert.Equal(t, tt.expectChair, pc.ChairType())
			assert.Len(t, pc.Foods(), len(tt.custom.Foods))
		})
	}
}

func TestReconstructReservation(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := reservation.ReconstructReservation(reservation.ReconstructParams{
			Status:        "archived",
			PaymentStatus: reservation.PaymentPending,
		})

		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})

	t.Run("keeps stored values", func(t *testing.T) {
		id := uuid.New()
		res, err := reservation.ReconstructReservation(reservation.ReconstructParams{
			ID:            id,
			UserID:        owner.ID,
			FullName:      "Stored Name",
			Email:         "stored@example.com",
			Status:        reservation.StatusConfirmed,
			PaymentStatus: reservation.PaymentPartial,
		})
		require.NoError(t, err)

		assert.Equal(t, id, res.ID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, reservation.PaymentPartial, res.PaymentStatus())
	})
}
