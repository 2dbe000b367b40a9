package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const messageSeparator = "; "

var messages = map[string]string{
	"required":    "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"gt":          "{field} must be greater than {param}",
	"min":         "{field} must be at least {param}",
	"max":         "{field} must be at most {param}",
	"len":         "{field} must be exactly {param} characters",
	"oneof":       "{field} must be one of {param}",
	"email":       "{field} must be a valid email address",
	"numeric":     "{field} must contain digits only",
	"phone":       "{field} must be a valid phone number",
	"date":        "{field} must be a date in YYYY-MM-DD format",
	"datauri":     "{field} must be a base64 data URL",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// jsonFieldName reports fields by the name clients send.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// message renders every failed rule, in field order.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	rendered := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			rendered = append(rendered, valErr.Error())

			continue
		}

		field := valErr.Field()
		if field == "" {
			field = "value"
		}

		text := strings.ReplaceAll(template, "{field}", field)
		text = strings.ReplaceAll(text, "{param}", valErr.Param())

		rendered = append(rendered, text)
	}

	return strings.Join(rendered, messageSeparator)
}
