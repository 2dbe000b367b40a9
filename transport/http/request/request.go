// Package request reads the values handlers need from an incoming request.
package request

import (
	"net/http"
	"strconv"
	"strings"

	"pgms/internal/tenancy"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"

	"github.com/go-chi/chi/v5"
)

// TenantID returns the tenant the auth middleware resolved from the token.
func TenantID(r *http.Request) (tenancy.TenantID, error) {
	tenantID, err := tenancy.FromContext(r.Context())
	if err != nil {
		return 0, failure.Unauthorized("request is not bound to an account")
	}

	return tenantID, nil
}

// PathID parses a positive integer path parameter.
func PathID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(key + " must be a positive integer")
	}

	return id, nil
}

// PathParam returns a trimmed path parameter, rejecting empty values.
func PathParam(r *http.Request, key string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, key))
	if value == "" {
		return "", failure.BadRequestFromString(key + " is required")
	}

	return value, nil
}

// QueryFilter ANDs an equality filter for every listed query parameter that
// is present. Parameter names double as column names.
func QueryFilter(r *http.Request, fields ...string) gDto.FilterGroup {
	query := r.URL.Query()
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	for _, field := range fields {
		value := strings.TrimSpace(query.Get(field))
		if value == "" {
			continue
		}

		group.Filters = append(group.Filters, gDto.Filter{
			Field:    field,
			Operator: gDto.FilterOperatorEq,
			Value:    value,
		})
	}

	return group
}
