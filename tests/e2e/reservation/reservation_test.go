//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"event-reservation/internal/domain/user"
	"event-reservation/internal/handler/dto/response"
	"event-reservation/tests/common/builder"
	"event-reservation/tests/common/dbtest"
	"event-reservation/tests/common/httptest"
	"event-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/reservations"
	reservationURL  = "/reservations/%s"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

type redirectBody struct {
	RedirectTo string            `json:"redirect_to"`
	Flash      map[string]string `json:"flash"`
}

type errorBody struct {
	Detail struct {
		Errors map[string]string `json:"errors"`
	} `json:"detail"`
}

type showPage struct {
	Component string `json:"component"`
	Props     struct {
		Reservation response.ReservationResponse `json:"reservation"`
	} `json:"props"`
}

type indexPage struct {
	Component string `json:"component"`
	Props     struct {
		Reservations []response.ReservationResponse `json:"reservations"`
	} `json:"props"`
}

func (s *ReservationSuite) TestSubmitReservation() {
	s.Run("Normal case: reservation with package and foods is stored with its customization", func() {
		t := s.T()
		ownerID, token := s.Login("maria", user.RoleUser)
		packageID := dbtest.CreateTestPackage(t, s.DB, "Gold", 500000)

		reqBody := builder.NewReservationBuilder().
			WithPackage(packageID).
			WithEventTime("18:30").
			WithFood("Lechon", 3000).
			WithFood("Pancit", 1999.5).
			BuildSubmitRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
		httptest.AssertHeaders(t, w, map[string]string{"Location": "/dashboard"})

		var body redirectBody
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		assert.Equal(t, "Reservation submitted successfully!", body.Flash["success"])

		require.Equal(t, 1, dbtest.CountReservations(t, s.DB, ownerID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var page indexPage
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Props.Reservations, 1)

		got := page.Props.Reservations[0]
		assert.Equal(t, "Test maria", got.CustomerFullName)
		assert.Equal(t, "maria@example.com", got.CustomerEmail)
		assert.Equal(t, "pending", got.Status)
		assert.Equal(t, "pending", got.PaymentStatus)
		require.NotNil(t, got.EventTime)
		assert.Equal(t, "18:30", *got.EventTime)
		require.NotNil(t, got.Package)
		assert.Equal(t, 5000.0, got.Package.BasePrice)
		require.NotNil(t, got.PackageCustomization)
		assert.Equal(t, "Default", got.PackageCustomization.SelectedTableType)
		assert.Equal(t, "Default", got.PackageCustomization.SelectedChairType)
		require.Len(t, got.PackageCustomization.SelectedFoods, 2)
		assert.Equal(t, 1999.5, *got.PackageCustomization.SelectedFoods[1].Price)
	})

	s.Run("Error case: foods over the package price persist nothing", func() {
		t := s.T()
		ownerID, token := s.Login("pedro", user.RoleUser)
		packageID := dbtest.CreateTestPackage(t, s.DB, "Silver", 500000)

		reqBody := builder.NewReservationBuilder().
			WithPackage(packageID).
			WithFood("Lechon", 3000).
			WithFood("Cake", 2500).
			BuildSubmitRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var body errorBody
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		assert.Equal(t, "The total food cost exceeds the package price by ₱500.00.", body.Detail.Errors["selected_foods"])
		assert.Equal(t, 0, dbtest.CountReservations(t, s.DB, ownerID))
	})

	s.Run("Error case: event date must be after today", func() {
		t := s.T()
		ownerID, token := s.Login("ana", user.RoleUser)

		today := time.Now().In(manila(t)).Format("2006-01-02")
		reqBody := builder.NewReservationBuilder().WithEventDate(today).BuildSubmitRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var body errorBody
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		assert.Contains(t, body.Detail.Errors, "event_date")
		assert.Equal(t, 0, dbtest.CountReservations(t, s.DB, ownerID))
	})

	s.Run("Error case: unknown package is reported on package_id", func() {
		_, token := s.Login("rosa", user.RoleUser)

		reqBody := builder.NewReservationBuilder().WithPackage(uuid.New()).BuildSubmitRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var body errorBody
		require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &body))
		assert.Contains(s.T(), body.Detail.Errors, "package_id")
	})

	s.Run("Error case: anonymous caller is denied", func() {
		reqBody := builder.NewReservationBuilder().BuildSubmitRequestDTO()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "This action is unauthorized.")
	})

	s.Run("Error case: expired token is treated as anonymous", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "late", user.RoleUser.String())
		token := s.JWT.CreateExpiredToken(t, id, user.RoleUser)

		reqBody := builder.NewReservationBuilder().BuildSubmitRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})
}

func (s *ReservationSuite) TestShowReservation() {
	s.Run("Normal case: owner sees payments newest first", func() {
		t := s.T()
		ownerID, token := s.Login("owner", user.RoleUser)
		resID := dbtest.CreateTestReservation(t, s.DB, ownerID, "Garden", time.Now())
		base := time.Now().Add(-time.Hour)
		dbtest.CreateTestPayment(t, s.DB, resID, 100000, base)
		latest := dbtest.CreateTestPayment(t, s.DB, resID, 250000, base.Add(10*time.Minute))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, resID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page showPage
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		assert.Equal(t, "Reservation/Show", page.Component)
		assert.Equal(t, resID, page.Props.Reservation.ID)
		require.Len(t, page.Props.Reservation.Payments, 2)
		assert.Equal(t, latest, page.Props.Reservation.Payments[0].ID)
		assert.Equal(t, 2500.0, page.Props.Reservation.Payments[0].Amount)
	})

	s.Run("Normal case: admin can view another user's reservation", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "someone", user.RoleUser.String())
		resID := dbtest.CreateTestReservation(t, s.DB, ownerID, "Garden", time.Now())
		_, adminToken := s.Login("boss", user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, resID), nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Error case: another user is denied", func() {
		t := s.T()
		ownerID := dbtest.CreateTestUser(t, s.DB, "someone", user.RoleUser.String())
		resID := dbtest.CreateTestReservation(t, s.DB, ownerID, "Garden", time.Now())
		_, token := s.Login("stranger", user.RoleUser)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(reservationURL, resID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "This action is unauthorized.")
	})

	s.Run("Error case: unknown id is not found", func() {
		_, token := s.Login("owner", user.RoleUser)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(reservationURL, uuid.New()), nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *ReservationSuite) TestListMyReservations() {
	s.Run("Normal case: only own reservations, newest first", func() {
		t := s.T()
		ownerID, token := s.Login("owner", user.RoleUser)
		otherID := dbtest.CreateTestUser(t, s.DB, "other", user.RoleUser.String())

		now := time.Now()
		older := dbtest.CreateTestReservation(t, s.DB, ownerID, "Old Hall", now.Add(-2*time.Hour))
		newer := dbtest.CreateTestReservation(t, s.DB, ownerID, "New Hall", now.Add(-time.Hour))
		dbtest.CreateTestReservation(t, s.DB, otherID, "Elsewhere", now)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page indexPage
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		assert.Equal(t, "Reservation/Index", page.Component)
		require.Len(t, page.Props.Reservations, 2)
		assert.Equal(t, newer, page.Props.Reservations[0].ID)
		assert.Equal(t, older, page.Props.Reservations[1].ID)
	})

	s.Run("Error case: anonymous caller is denied", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})
}

func manila(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	return loc
}
