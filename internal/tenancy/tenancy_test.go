package tenancy_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"pgms/internal/tenancy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableName(t *testing.T) {
	tests := []struct {
		name     string
		tenantID tenancy.TenantID
		kind     tenancy.Kind
		expected string
	}{
		{name: "rooms", tenantID: 42, kind: tenancy.KindRooms, expected: "tenant_42_rooms"},
		{name: "occupants", tenantID: 7, kind: tenancy.KindOccupants, expected: "tenant_7_occupants"},
		{name: "staff", tenantID: 1, kind: tenancy.KindStaff, expected: "tenant_1_staff"},
		{name: "payments", tenantID: 1000, kind: tenancy.KindPayments, expected: "tenant_1000_payments"},
		{name: "attendance", tenantID: 9, kind: tenancy.KindAttendance, expected: "tenant_9_attendance"},
		{
			name:     "largest id",
			tenantID: 9223372036854775807,
			kind:     tenancy.KindRooms,
			expected: "tenant_9223372036854775807_rooms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tenancy.TableName(tt.tenantID, tt.kind))
			assert.Equal(t, tt.expected, tenancy.TableName(tt.tenantID, tt.kind), "must be deterministic")
		})
	}
}

func TestTableName_Injective(t *testing.T) {
	seen := map[string]struct {
		id   tenancy.TenantID
		kind tenancy.Kind
	}{}

	for id := tenancy.TenantID(1); id <= 2500; id++ {
		for _, kind := range tenancy.Kinds() {
			name := tenancy.TableName(id, kind)

			if prev, ok := seen[name]; ok {
				t.Fatalf("%s produced by (%d, %s) and (%d, %s)", name, prev.id, prev.kind, id, kind)
			}

			seen[name] = struct {
				id   tenancy.TenantID
				kind tenancy.Kind
			}{id, kind}
		}
	}
}

func TestTableName_SafeIdentifier(t *testing.T) {
	identifier := regexp.MustCompile(`^tenant_[1-9][0-9]*_[a-z]+$`)

	for _, kind := range tenancy.Kinds() {
		assert.Regexp(t, identifier, tenancy.TableName(31337, kind))
	}
}

func TestTableName_PanicsOnInvalidInput(t *testing.T) {
	assert.Panics(t, func() { tenancy.TableName(0, tenancy.KindRooms) })
	assert.Panics(t, func() { tenancy.TableName(-5, tenancy.KindRooms) })
	assert.Panics(t, func() { tenancy.TableName(5, tenancy.Kind(0)) })
	assert.Panics(t, func() { tenancy.TableName(5, tenancy.Kind(99)) })
}

func TestParseTenantID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    tenancy.TenantID
		wantErr bool
	}{
		{name: "plain id", input: "42", want: 42},
		{name: "max int64", input: "9223372036854775807", want: 9223372036854775807},
		{name: "leading zeros", input: "007", want: 7},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "plus sign", input: "+1", wantErr: true},
		{name: "surrounding spaces", input: " 7 ", wantErr: true},
		{name: "exponent", input: "1e3", wantErr: true},
		{name: "hex", input: "0x10", wantErr: true},
		{name: "overflow", input: "9223372036854775808", wantErr: true},
		{name: "too long", input: "12345678901234567890", wantErr: true},
		{name: "sql comment", input: "1--", wantErr: true},
		{name: "statement injection", input: "1; DROP TABLE admins", wantErr: true},
		{name: "identifier injection", input: "1_rooms UNION SELECT", wantErr: true},
		{name: "quote", input: "1'", wantErr: true},
		{name: "unicode digits", input: "١٢", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tenancy.ParseTenantID(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, tenancy.ErrInvalidTenant)
				assert.Zero(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	for _, kind := range tenancy.Kinds() {
		text, err := kind.MarshalText()
		require.NoError(t, err)

		var parsed tenancy.Kind
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, kind, parsed)
	}

	_, err := tenancy.ParseKind("tenants")
	assert.ErrorIs(t, err, tenancy.ErrUnknownKind)

	payload, err := json.Marshal([]tenancy.Kind{tenancy.KindRooms, tenancy.KindStaff})
	require.NoError(t, err)
	assert.JSONEq(t, `["rooms","staff"]`, string(payload))
}

func TestContext(t *testing.T) {
	_, err := tenancy.FromContext(context.Background())
	assert.ErrorIs(t, err, tenancy.ErrInvalidTenant)

	ctx := tenancy.WithTenant(context.Background(), 12)
	id, err := tenancy.FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, tenancy.TenantID(12), id)
}

func TestSchemaMissingError(t *testing.T) {
	cause := errors.New(`relation "tenant_3_rooms" does not exist`)
	err := &tenancy.SchemaMissingError{TenantID: 3, Kind: tenancy.KindRooms, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode())
	assert.Contains(t, err.Error(), "rooms")
}
