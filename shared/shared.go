package shared

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"pgms/shared/constant"
	"pgms/shared/dto"
	"pgms/shared/failure"
	"pgms/shared/timezone"
)

// ParseOptionalBool reads an optional boolean query value. An empty value
// yields nil; anything strconv.ParseBool rejects is a bad request.
func ParseOptionalBool(name, value string) (*bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, failure.BadRequestFromString(name + " must be true or false")
	}

	return &parsed, nil
}

// CalculateTotalPage reports at least one page so an empty list still renders.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields turns the non-zero db-tagged fields of a struct, or a
// pointer to one, into a column map for a partial update and stamps
// updated_at.
func TransformFields(data any) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	if val.Kind() != reflect.Struct {
		panic(fmt.Sprintf("shared: TransformFields needs a struct, got %T", data))
	}

	typ := val.Type()
	updatedFields := make(map[string]any, val.NumField()+1)

	for index := range val.NumField() {
		structField := typ.Field(index)
		column := structField.Tag.Get("db")

		if column == "" || column == "-" || !structField.IsExported() {
			continue
		}

		if field := val.Field(index); !field.IsZero() {
			updatedFields[column] = field.Interface()
		}
	}

	updatedFields[constant.FieldUpdatedAt] = timezone.Now()

	return updatedFields
}

// FilterByID matches one row by its key column, qualified by table when set.
func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the parts with ':' under prefix.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}
