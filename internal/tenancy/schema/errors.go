package schema

import (
	"fmt"
	"net/http"
	"strings"

	"pgms/internal/tenancy"
)

// ProvisioningError reports a tenant whose table set is incomplete after a
// provisioning attempt. Missing is read back from the catalog, so callers
// may retry only those kinds.
type ProvisioningError struct {
	TenantID tenancy.TenantID
	Missing  []tenancy.Kind
	Err      error
}

func (e *ProvisioningError) Error() string {
	msg := fmt.Sprintf("failed to provision tables for tenant %d", e.TenantID.Int64())

	if len(e.Missing) > 0 {
		names := make([]string, len(e.Missing))
		for i, kind := range e.Missing {
			names[i] = kind.String()
		}

		msg += " (missing: " + strings.Join(names, ", ") + ")"
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}

func (e *ProvisioningError) StatusCode() int {
	return http.StatusServiceUnavailable
}
