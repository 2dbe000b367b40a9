package repository

import (
	"fmt"
	"reflect"
	"slices"

	"pgms/shared/constant"
)

type field struct {
	name  string
	index []int
}

// Codec maps a db-tagged struct to its column list and back to ordered
// statement parameters. Decoding goes through sqlx struct scanning, which
// follows the same tags.
type Codec[T any] struct {
	fields        []field
	insertColumns []string
	updateColumns []string
}

func NewCodec[T any]() *Codec[T] {
	var zero T

	reflectType := reflect.TypeOf(zero)
	if reflectType.Kind() != reflect.Struct {
		panic(fmt.Sprintf("repository: codec requires a struct type, got %s", reflectType))
	}

	fields := getFields(reflectType, nil)

	codec := &Codec[T]{fields: fields}

	for _, f := range fields {
		if f.name == constant.FieldID {
			continue
		}

		codec.insertColumns = append(codec.insertColumns, f.name)

		if f.name != constant.FieldCreatedAt {
			codec.updateColumns = append(codec.updateColumns, f.name)
		}
	}

	return codec
}

// Columns lists every mapped column in declaration order.
func (c *Codec[T]) Columns() []string {
	columns := make([]string, len(c.fields))
	for i, f := range c.fields {
		columns[i] = f.name
	}

	return columns
}

// InsertColumns omits the generated primary key.
func (c *Codec[T]) InsertColumns() []string {
	return slices.Clone(c.insertColumns)
}

// UpdateColumns omits the primary key and created_at.
func (c *Codec[T]) UpdateColumns() []string {
	return slices.Clone(c.updateColumns)
}

func (c *Codec[T]) HasColumn(name string) bool {
	return slices.ContainsFunc(c.fields, func(f field) bool { return f.name == name })
}

// Bind returns the values of columns read from model, in the given order.
func (c *Codec[T]) Bind(model *T, columns []string) []any {
	value := reflect.ValueOf(model).Elem()
	args := make([]any, 0, len(columns))

	for _, column := range columns {
		idx := slices.IndexFunc(c.fields, func(f field) bool { return f.name == column })
		if idx < 0 {
			panic(fmt.Sprintf("repository: unknown column %q", column))
		}

		args = append(args, value.FieldByIndex(c.fields[idx].index).Interface())
	}

	return args
}

func getFields(reflectType reflect.Type, parent []int) []field {
	fields := []field{}

	for i := range reflectType.NumField() {
		structField := reflectType.Field(i)
		index := append(slices.Clone(parent), i)
		dbTag := structField.Tag.Get("db")

		if structField.Anonymous && structField.Type.Kind() == reflect.Struct && dbTag == "" {
			fields = append(fields, getFields(structField.Type, index)...)

			continue
		}

		if dbTag == "" || dbTag == "-" || !structField.IsExported() {
			continue
		}

		fields = append(fields, field{name: dbTag, index: index})
	}

	return fields
}
