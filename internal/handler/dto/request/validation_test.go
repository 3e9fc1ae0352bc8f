//go:build unit

package request_test

import (
	"encoding/json"
	"strings"
	"testing"

	"event-reservation/internal/handler/dto/request"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validRequest() request.SubmitReservationRequest {
	return request.SubmitReservationRequest{
		EventType:  "Wedding",
		EventDate:  "2030-02-14",
		Venue:      "Garden Hall",
		GuestCount: ptr(100),
	}
}

func TestSubmitReservationValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *request.SubmitReservationRequest)
		field  string
		msg    string
	}{
		{name: "valid", mutate: func(*request.SubmitReservationRequest) {}},
		{
			name:   "missing event type",
			mutate: func(r *request.SubmitReservationRequest) { r.EventType = "" },
			field:  "event_type",
			msg:    "The event type field is required.",
		},
		{
			name:   "missing guest count",
			mutate: func(r *request.SubmitReservationRequest) { r.GuestCount = nil },
			field:  "guest_count",
			msg:    "The guest count field is required.",
		},
		{
			name:   "zero guests",
			mutate: func(r *request.SubmitReservationRequest) { r.GuestCount = ptr(0) },
			field:  "guest_count",
			msg:    "The guest count field must be at least 1.",
		},
		{
			name:   "largest guest count",
			mutate: func(r *request.SubmitReservationRequest) { r.GuestCount = ptr(2147483647) },
		},
		{
			name:   "guests beyond int32",
			mutate: func(r *request.SubmitReservationRequest) { r.GuestCount = ptr(3000000000) },
			field:  "guest_count",
			msg:    "The guest count field must not be greater than 2147483647.",
		},
		{
			name:   "bad date format",
			mutate: func(r *request.SubmitReservationRequest) { r.EventDate = "14/02/2030" },
			field:  "event_date",
			msg:    "The event date field must match the format Y-m-d.",
		},
		{
			name:   "bad time",
			mutate: func(r *request.SubmitReservationRequest) { r.EventTime = ptr("25:00") },
			field:  "event_time",
			msg:    "The event time field must match the format H:i.",
		},
		{
			name:   "venue too long",
			mutate: func(r *request.SubmitReservationRequest) { r.Venue = strings.Repeat("v", 256) },
			field:  "venue",
			msg:    "The venue field must not be greater than 255 characters.",
		},
		{
			name:   "address at limit",
			mutate: func(r *request.SubmitReservationRequest) { r.CustomerAddress = ptr(strings.Repeat("a", 1000)) },
		},
		{
			name:   "address too long",
			mutate: func(r *request.SubmitReservationRequest) { r.CustomerAddress = ptr(strings.Repeat("a", 1001)) },
			field:  "customer_address",
			msg:    "The customer address field must not be greater than 1000 characters.",
		},
		{
			name:   "phone too short",
			mutate: func(r *request.SubmitReservationRequest) { r.CustomerContactNumber = ptr("091712345") },
			field:  "customer_contact_number",
			msg:    "The customer contact number field format is invalid.",
		},
		{
			name:   "phone with 15 digits",
			mutate: func(r *request.SubmitReservationRequest) { r.CustomerContactNumber = ptr("639171234567890") },
		},
		{
			name:   "invalid email",
			mutate: func(r *request.SubmitReservationRequest) { r.CustomerEmail = ptr("not-an-email") },
			field:  "customer_email",
			msg:    "The customer email field must be a valid email address.",
		},
		{
			name:   "invalid package id",
			mutate: func(r *request.SubmitReservationRequest) { r.PackageID = ptr("pkg-1") },
			field:  "package_id",
			msg:    "The selected package id is invalid.",
		},
		{
			name:   "negative total amount",
			mutate: func(r *request.SubmitReservationRequest) { r.TotalAmount = ptr(-1.0) },
			field:  "total_amount",
			msg:    "The total amount field must be at least 0.",
		},
		{
			name:   "negative food price",
			mutate: func(r *request.SubmitReservationRequest) {
				r.SelectedFoods = []request.FoodSelection{{Name: ptr("Cake"), Price: ptr(10.0)}, {Price: ptr(-5.0)}}
			},
			field: "selected_foods.1.price",
			msg:   "The selected foods.1.price field must be at least 0.",
		},
		{
			name:   "total amount beyond the maximum",
			mutate: func(r *request.SubmitReservationRequest) { r.TotalAmount = ptr(1e12) },
			field:  "total_amount",
			msg:    "The total amount field must not be greater than 999999999999.99.",
		},
		{
			name:   "food price beyond the maximum",
			mutate: func(r *request.SubmitReservationRequest) {
				r.SelectedFoods = []request.FoodSelection{{Name: ptr("Caviar"), Price: ptr(1e17)}}
			},
			field: "selected_foods.0.price",
			msg:   "The selected foods.0.price field must not be greater than 999999999999.99.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := binding.Validator.ValidateStruct(&req)

			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			fields, ok := request.FieldErrors(err)
			require.True(t, ok)
			assert.Equal(t, tt.msg, fields[tt.field])
		})
	}
}

func TestEmptyOptionalStringsSkipValidation(t *testing.T) {
	req := validRequest()
	req.CustomerEmail = ptr("")
	req.CustomerContactNumber = ptr("")
	req.PackageID = ptr("")
	req.EventTime = ptr("")

	require.NoError(t, binding.Validator.ValidateStruct(&req))

	req.Normalize()
	assert.Nil(t, req.CustomerEmail)
	assert.Nil(t, req.CustomerContactNumber)
	assert.Nil(t, req.PackageID)
	assert.Nil(t, req.EventTime)
}

func TestUpdateUserValidation(t *testing.T) {
	err := binding.Validator.ValidateStruct(&request.UpdateUserRequest{Role: ptr("owner")})
	fields, ok := request.FieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "The selected role is invalid.", fields["role"])

	assert.NoError(t, binding.Validator.ValidateStruct(&request.UpdateUserRequest{Role: ptr("admin"), Email: ptr("a@b.co")}))
	assert.NoError(t, binding.Validator.ValidateStruct(&request.UpdateUserRequest{}))
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	_, ok := request.FieldErrors(assert.AnError)
	assert.False(t, ok)
}

func TestTypeError(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		msg   string
	}{
		{name: "string for an integer", body: `{"guest_count": "abc"}`, field: "guest_count", msg: "The guest count field must be an integer."},
		{name: "fraction for an integer", body: `{"guest_count": 1.5}`, field: "guest_count", msg: "The guest count field must be an integer."},
		{name: "string for a number", body: `{"total_amount": "a lot"}`, field: "total_amount", msg: "The total amount field must be a number."},
		{name: "number for a string", body: `{"venue": 12}`, field: "venue", msg: "The venue field must be a string."},
		{name: "object for a list", body: `{"selected_foods": {}}`, field: "selected_foods", msg: "The selected foods field must be an array."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req request.SubmitReservationRequest
			err := json.Unmarshal([]byte(tt.body), &req)

			var typeErr *json.UnmarshalTypeError
			require.ErrorAs(t, err, &typeErr)
			field, msg := request.TypeError(typeErr)
			assert.Equal(t, tt.field, field)
			assert.Equal(t, tt.msg, msg)
		})
	}
}
