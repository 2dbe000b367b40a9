package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"pgms/shared/failure"
	"pgms/shared/validator"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roomRequest struct {
	RoomNumber string  `json:"room_number" validate:"required,max=10"`
	Capacity   int     `json:"capacity"    validate:"gte=1,lte=20"`
	Status     string  `json:"status"      validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	Email      *string `json:"email"       validate:"omitempty,email"`
}

type contactRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
	Date  string `json:"date"  validate:"omitempty,date"`
}

func TestValidateStruct(t *testing.T) {
	badEmail := "not-an-email"

	tests := []struct {
		name    string
		data    roomRequest
		wantErr string
	}{
		{name: "valid", data: roomRequest{RoomNumber: "101", Capacity: 3, Status: "AVAILABLE"}},
		{name: "missing room number", data: roomRequest{Capacity: 3}, wantErr: "room_number is required"},
		{name: "capacity too large", data: roomRequest{RoomNumber: "101", Capacity: 40}, wantErr: "capacity must be less than or equal to 20"},
		{name: "unknown status", data: roomRequest{RoomNumber: "101", Capacity: 1, Status: "CLOSED"}, wantErr: "status must be one of AVAILABLE OCCUPIED MAINTENANCE"},
		{name: "bad optional email", data: roomRequest{RoomNumber: "101", Capacity: 1, Email: &badEmail}, wantErr: "email must be a valid email address"},
		{
			name:    "every failure reported",
			data:    roomRequest{RoomNumber: strings.Repeat("1", 11), Capacity: 0},
			wantErr: "room_number must be at most 10; capacity must be greater than or equal to 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr string
	}{
		{name: "required present", field: "x", tag: "required"},
		{name: "required missing", field: "", tag: "required", wantErr: "value is required"},
		{name: "in range", field: 25, tag: "gte=18,lte=100"},
		{name: "out of range", field: 150, tag: "gte=18,lte=100", wantErr: "value must be less than or equal to 100"},
		{name: "oneof", field: "CASH", tag: "oneof=CASH UPI CARD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid body", body: `{"room_number":"101","capacity":2}`},
		{name: "rule failure", body: `{"room_number":"101","capacity":0}`, wantErr: "capacity must be greater than or equal to 1"},
		{name: "malformed body", body: `{"room_number":`, wantErr: "failed to decode request body"},
		{name: "wrong type", body: `{"room_number":101}`, wantErr: "failed to decode request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data roomRequest

			err := validator.Validate(strings.NewReader(tt.body), &data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestDataURLValidation(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		tag     string
		wantErr bool
	}{
		{name: "allowed mimetype", field: "data:image/png;base64,iVBORw0=", tag: "mimetypes=image/png image/jpeg"},
		{name: "mimetype parameters ignored", field: "data:text/plain;charset=utf-8;base64,SGk=", tag: "mimetypes=text/plain"},
		{name: "disallowed mimetype", field: "data:text/plain;base64,SGk=", tag: "mimetypes=image/png", wantErr: true},
		{name: "not a data url", field: "SGk=", tag: "mimetypes=text/plain", wantErr: true},
		{name: "decoded size within limit", field: "data:text/plain;base64,SGk=", tag: "maxfilesize=0.00001"},
		{name: "decoded size over limit", field: "data:text/plain;base64,SGVsbG8gV29ybGQ=", tag: "maxfilesize=0.00001", wantErr: true},
		{name: "plain string measured raw", field: "0123456789a", tag: "maxfilesize=0.00001", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestPhoneAndDateValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    contactRequest
		wantErr string
	}{
		{name: "plain digits", data: contactRequest{Phone: "9876543210"}},
		{name: "international prefix", data: contactRequest{Phone: "+919876543210", Date: "2024-03-15"}},
		{name: "too short", data: contactRequest{Phone: "12345"}, wantErr: "phone must be a valid phone number"},
		{name: "letters", data: contactRequest{Phone: "98765abc10"}, wantErr: "phone must be a valid phone number"},
		{name: "bad date", data: contactRequest{Phone: "9876543210", Date: "15/03/2024"}, wantErr: "date must be a date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

type rentRequest struct {
	Rent    decimal.Decimal  `json:"rent"     validate:"gte=0"`
	NewRent *decimal.Decimal `json:"new_rent" validate:"omitempty,gte=0"`
}

func TestDecimalValidation(t *testing.T) {
	negative := decimal.RequireFromString("-0.01")
	positive := decimal.NewFromInt(4500)

	tests := []struct {
		name    string
		data    rentRequest
		wantErr string
	}{
		{name: "zero value", data: rentRequest{}},
		{name: "positive", data: rentRequest{Rent: positive, NewRent: &positive}},
		{name: "negative", data: rentRequest{Rent: negative}, wantErr: "rent must be greater than or equal to 0"},
		{name: "negative pointer", data: rentRequest{Rent: positive, NewRent: &negative}, wantErr: "new_rent must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
