package schema

import (
	"strings"

	"pgms/infras/database"
	"pgms/internal/tenancy"
)

const currentTimestamp = "CURRENT_TIMESTAMP"

type Column struct {
	Name    string
	Type    database.ColumnType
	Size    int
	NotNull bool
	Unique  bool
	Default string
}

type Index struct {
	Columns []string
	Unique  bool
}

// Table is the fixed column layout of one entity kind.
type Table struct {
	Kind    tenancy.Kind
	Columns []Column
	Indexes []Index
}

func id() Column {
	return Column{Name: "id", Type: database.TypeID}
}

func timestamps() []Column {
	return []Column{
		{Name: "created_at", Type: database.TypeTimestamp, Default: currentTimestamp},
		{Name: "updated_at", Type: database.TypeTimestamp, Default: currentTimestamp},
	}
}

func str(name string, size int) Column {
	return Column{Name: name, Type: database.TypeString, Size: size}
}

func required(c Column) Column {
	c.NotNull = true

	return c
}

func unique(c Column) Column {
	c.Unique = true

	return c
}

func withDefault(c Column, value string) Column {
	c.Default = value

	return c
}

var tables = map[tenancy.Kind]Table{
	tenancy.KindOccupants: {
		Kind: tenancy.KindOccupants,
		Columns: append([]Column{
			id(),
			required(str("name", 255)),
			{Name: "age", Type: database.TypeInt},
			str("gender", 20),
			unique(required(str("phone", 20))),
			str("email", 255),
			required(str("room_number", 50)),
			{Name: "bed_number", Type: database.TypeInt},
			{Name: "address", Type: database.TypeText},
			{Name: "joining_date", Type: database.TypeDate},
			str("identity_proof_type", 50),
			{Name: "identity_proof", Type: database.TypeLongText},
			withDefault(str("status", 20), "'ACTIVE'"),
		}, timestamps()...),
		Indexes: []Index{{Columns: []string{"room_number"}}},
	},
	tenancy.KindRooms: {
		Kind: tenancy.KindRooms,
		Columns: append([]Column{
			id(),
			unique(required(str("room_number", 50))),
			{Name: "capacity", Type: database.TypeInt},
			{Name: "occupied_beds", Type: database.TypeInt, NotNull: true, Default: "0"},
			{Name: "occupied_bed_numbers", Type: database.TypeText},
			{Name: "rent", Type: database.TypeDecimal, NotNull: true, Default: "0"},
			withDefault(str("status", 20), "'AVAILABLE'"),
			{Name: "description", Type: database.TypeText},
		}, timestamps()...),
		Indexes: []Index{{Columns: []string{"status"}}},
	},
	tenancy.KindStaff: {
		Kind: tenancy.KindStaff,
		Columns: append([]Column{
			id(),
			unique(required(str("username", 100))),
			unique(required(str("email", 255))),
			str("phone", 20),
			str("role", 50),
		}, timestamps()...),
	},
	tenancy.KindPayments: {
		Kind: tenancy.KindPayments,
		Columns: append([]Column{
			id(),
			{Name: "occupant_id", Type: database.TypeBigInt},
			required(str("payer_name", 255)),
			{Name: "amount", Type: database.TypeDecimal, NotNull: true},
			{Name: "payment_date", Type: database.TypeDate, NotNull: true},
			required(str("method", 50)),
			withDefault(str("status", 20), "'COMPLETED'"),
			{Name: "notes", Type: database.TypeText},
			str("transaction_id", 100),
			{Name: "transaction_details", Type: database.TypeText},
		}, timestamps()...),
		Indexes: []Index{{Columns: []string{"payment_date"}}},
	},
	tenancy.KindAttendance: {
		Kind: tenancy.KindAttendance,
		Columns: append([]Column{
			id(),
			required(str("occupant_name", 255)),
			str("room_number", 50),
			{Name: "attendance_date", Type: database.TypeDate, NotNull: true},
			required(str("status", 20)),
			{Name: "notes", Type: database.TypeText},
		}, timestamps()...),
		Indexes: []Index{{Columns: []string{"occupant_name", "attendance_date"}, Unique: true}},
	},
}

// TableFor returns the layout of kind.
func TableFor(kind tenancy.Kind) (Table, bool) {
	table, ok := tables[kind]

	return table, ok
}

// Statements renders the idempotent DDL creating this table for tenantID.
func (t Table) Statements(dialect database.Dialect, tenantID tenancy.TenantID) []string {
	name := tenancy.TableName(tenantID, t.Kind)

	definitions := make([]string, 0, len(t.Columns)+len(t.Indexes))
	for _, column := range t.Columns {
		definitions = append(definitions, renderColumn(dialect, column))
	}

	var indexes []string

	for _, index := range t.Indexes {
		switch {
		case index.Unique:
			definitions = append(definitions, "UNIQUE ("+strings.Join(index.Columns, ", ")+")")
		case dialect.InlineIndexes():
			definitions = append(definitions, "INDEX "+indexName("", index)+" ("+strings.Join(index.Columns, ", ")+")")
		default:
			indexes = append(indexes, "CREATE INDEX IF NOT EXISTS "+indexName(name, index)+" ON "+name+" ("+strings.Join(index.Columns, ", ")+")")
		}
	}

	create := "CREATE TABLE IF NOT EXISTS " + name + " (\n\t" + strings.Join(definitions, ",\n\t") + "\n)"

	return append([]string{create}, indexes...)
}

func renderColumn(dialect database.Dialect, column Column) string {
	parts := []string{column.Name, dialect.ColumnType(column.Type, column.Size)}

	if column.NotNull {
		parts = append(parts, "NOT NULL")
	}

	if column.Default != "" {
		parts = append(parts, "DEFAULT "+column.Default)
	}

	if column.Unique {
		parts = append(parts, "UNIQUE")
	}

	return strings.Join(parts, " ")
}

// indexName is prefixed with the table name where index names share a
// namespace across tables.
func indexName(table string, index Index) string {
	name := "idx_" + strings.Join(index.Columns, "_")
	if table == "" {
		return name
	}

	return "idx_" + table + "_" + strings.Join(index.Columns, "_")
}
