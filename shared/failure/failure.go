package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is an error whose message is safe to show the client as is.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) StatusCode() int {
	return e.Code
}

func newFailure(code int, message string) error {
	return &Failure{Code: code, Message: message}
}

// BadRequest keeps err's text. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

// NotFound is for lookups by something other than an id, such as a room
// number. Lookups by id use NotFoundError.
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

// Conflict is for state clashes that are not unique violations, such as an
// occupied bed.
func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

// ServiceUnavailable reports a dependency that is not ready yet.
func ServiceUnavailable(msg string) error {
	return newFailure(http.StatusServiceUnavailable, msg)
}

// NotFoundError reports that no row with the given key exists.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Entity, e.ID)
}

func (e *NotFoundError) StatusCode() int {
	return http.StatusNotFound
}

// DuplicateError reports a value that must be unique within its table. Field
// is empty when only the database constraint identified the conflict.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	if e.Field == "" {
		return e.Entity + " already exists"
	}

	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

func (e *DuplicateError) StatusCode() int {
	return http.StatusConflict
}

type statusCoder interface {
	StatusCode() int
}

// GetCode returns the HTTP status of the outermost classified error in the
// chain, or 500 when nothing in the chain is classified.
func GetCode(err error) int {
	var coder statusCoder
	if errors.As(err, &coder) {
		return coder.StatusCode()
	}

	return http.StatusInternalServerError
}

// IsNotFound reports whether err carries a 404 code.
func IsNotFound(err error) bool {
	return err != nil && GetCode(err) == http.StatusNotFound
}
