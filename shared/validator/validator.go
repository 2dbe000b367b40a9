package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"pgms/shared/base64"
	"pgms/shared/constant"
	"pgms/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

const (
	minPhoneDigits = 7
	maxPhoneDigits = 15
	bytesPerMB     = 1 << 20
)

// rules are the tags registered on top of the built-in ones.
var rules = map[string]val.Func{
	"phone":       phoneRule,
	"date":        dateRule,
	"mimetypes":   mimetypeRule,
	"maxfilesize": fileSizeRule,
}

// mimetypeRule checks an upload's Content-Type, or a data URL's media type,
// against the space separated list in the tag parameter.
func mimetypeRule(field val.FieldLevel) bool {
	var contentType string

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		contentType = value.Header.Get(constant.RequestHeaderContentType)
	case string:
		contentType = base64.GetContentType(value)
	}

	if contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

// fileSizeRule takes a limit in MB. Data URLs are measured after decoding.
func fileSizeRule(field val.FieldLevel) bool {
	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	var size int

	switch value := field.Field().Interface().(type) {
	case multipart.FileHeader:
		size = int(value.Size)
	case string:
		size = len(value)
		if decoded, ok := base64.DecodedSize(value); ok {
			size = decoded
		}
	}

	return float64(size) <= maxSizeMB*bytesPerMB
}

// phoneRule accepts an optional leading '+' followed by 7 to 15 digits.
func phoneRule(field val.FieldLevel) bool {
	phone := strings.TrimPrefix(field.Field().String(), "+")
	if len(phone) < minPhoneDigits || len(phone) > maxPhoneDigits {
		return false
	}

	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func dateRule(field val.FieldLevel) bool {
	_, err := time.Parse(constant.DateOnlyFormat, field.Field().String())

	return err == nil
}

// decimalValue lets numeric tags such as gte compare decimal fields.
func decimalValue(field reflect.Value) any {
	amount, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	return amount.InexactFloat64()
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	for tag, rule := range rules {
		if err := validate.RegisterValidation(tag, rule); err != nil {
			panic(fmt.Sprintf("validator: register %s: %v", tag, err))
		}
	}
}

// Validate decodes a JSON body into data and checks its validate tags. Both
// decode and rule failures are bad requests.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	return asFailure(validate.Struct(data))
}

func ValidateVar(field any, tag string) error {
	return asFailure(validate.Var(field, tag))
}

func asFailure(err error) error {
	if err == nil {
		return nil
	}

	return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
}
