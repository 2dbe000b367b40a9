// Package tenancy names the physical tables that hold one tenant's data.
//
// Every tenant (an admin account) owns a private table per entity kind, named
// tenant_<id>_<kind>. Only the numeric id is variable, so a table name can be
// spliced into SQL text without quoting.
package tenancy

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

var (
	ErrInvalidTenant = errors.New("invalid tenant id")
	ErrUnknownKind   = errors.New("unknown entity kind")
)

// maxTenantIDDigits bounds the decimal width of an int64.
const maxTenantIDDigits = 19

// TenantID identifies an admin account. Valid ids are strictly positive.
type TenantID int64

// ParseTenantID accepts only a plain run of ASCII digits.
func ParseTenantID(raw string) (TenantID, error) {
	if raw == "" || len(raw) > maxTenantIDDigits {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTenant, raw)
	}

	for i := range len(raw) {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTenant, raw)
		}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTenant, raw)
	}

	tenantID := TenantID(id)
	if err := tenantID.Validate(); err != nil {
		return 0, err
	}

	return tenantID, nil
}

func (id TenantID) Validate() error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTenant, int64(id))
	}

	return nil
}

func (id TenantID) Int64() int64 {
	return int64(id)
}

func (id TenantID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Kind is one of the fixed categories of tenant data.
type Kind uint8

const (
	KindOccupants Kind = iota + 1
	KindRooms
	KindStaff
	KindPayments
	KindAttendance
)

var kindNames = [...]string{
	KindOccupants:  "occupants",
	KindRooms:      "rooms",
	KindStaff:      "staff",
	KindPayments:   "payments",
	KindAttendance: "attendance",
}

// Kinds returns every kind in provisioning order.
func Kinds() []Kind {
	return []Kind{KindOccupants, KindRooms, KindStaff, KindPayments, KindAttendance}
}

func (k Kind) Valid() bool {
	return k >= KindOccupants && k <= KindAttendance
}

func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, k)
	}

	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds() {
		if kindNames[kind] == name {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// TableName returns tenant_<id>_<kind>. It panics on an invalid id or kind;
// callers validate the id at their boundary.
func TableName(id TenantID, kind Kind) string {
	if id.Validate() != nil || !kind.Valid() {
		panic(fmt.Sprintf("tenancy: table name for tenant %d kind %d", int64(id), kind))
	}

	return "tenant_" + strconv.FormatInt(int64(id), 10) + "_" + kindNames[kind]
}

// SchemaMissingError reports a statement that failed because the tenant's
// table has not been provisioned.
type SchemaMissingError struct {
	TenantID TenantID
	Kind     Kind
	Err      error
}

func (e *SchemaMissingError) Error() string {
	return fmt.Sprintf("tables for tenant %d are not provisioned (missing %s)", int64(e.TenantID), e.Kind)
}

func (e *SchemaMissingError) Unwrap() error {
	return e.Err
}

func (e *SchemaMissingError) StatusCode() int {
	return http.StatusServiceUnavailable
}

type contextKey struct{}

// WithTenant stores the resolved tenant id on the request context.
func WithTenant(ctx context.Context, id TenantID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the tenant id stored by WithTenant.
func FromContext(ctx context.Context) (TenantID, error) {
	id, ok := ctx.Value(contextKey{}).(TenantID)
	if !ok {
		return 0, ErrInvalidTenant
	}

	return id, id.Validate()
}
