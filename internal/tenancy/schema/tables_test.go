package schema_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgms/infras/database"
	"pgms/internal/tenancy"
	"pgms/internal/tenancy/schema"
)

func TestTableFor_CoversEveryKind(t *testing.T) {
	for _, kind := range tenancy.Kinds() {
		table, ok := schema.TableFor(kind)
		require.True(t, ok, kind.String())
		assert.Equal(t, kind, table.Kind)
		assert.Equal(t, "id", table.Columns[0].Name)
	}

	_, ok := schema.TableFor(tenancy.Kind(0))
	assert.False(t, ok)
}

func TestStatements_Postgres(t *testing.T) {
	dialect, err := database.DialectFor(database.DriverPostgres)
	require.NoError(t, err)

	table, _ := schema.TableFor(tenancy.KindRooms)
	statements := table.Statements(dialect, 42)

	require.Len(t, statements, 2)
	assert.True(t, strings.HasPrefix(statements[0], "CREATE TABLE IF NOT EXISTS tenant_42_rooms ("))
	assert.Contains(t, statements[0], "id BIGSERIAL PRIMARY KEY")
	assert.Contains(t, statements[0], "room_number VARCHAR(50) NOT NULL UNIQUE")
	assert.Contains(t, statements[0], "capacity INTEGER,")
	assert.Contains(t, statements[0], "occupied_beds INTEGER NOT NULL DEFAULT 0")
	assert.Contains(t, statements[0], "rent NUMERIC(12,2) NOT NULL DEFAULT 0")
	assert.Contains(t, statements[0], "status VARCHAR(20) DEFAULT 'AVAILABLE'")
	assert.Contains(t, statements[0], "created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP")
	assert.Equal(t, "CREATE INDEX IF NOT EXISTS idx_tenant_42_rooms_status ON tenant_42_rooms (status)", statements[1])
}

func TestStatements_MySQLInlinesIndexes(t *testing.T) {
	dialect, err := database.DialectFor(database.DriverMySQL)
	require.NoError(t, err)

	table, _ := schema.TableFor(tenancy.KindOccupants)
	statements := table.Statements(dialect, 7)

	require.Len(t, statements, 1)
	assert.Contains(t, statements[0], "id BIGINT AUTO_INCREMENT PRIMARY KEY")
	assert.Contains(t, statements[0], "identity_proof LONGTEXT")
	assert.Contains(t, statements[0], "INDEX idx_room_number (room_number)")
	assert.Contains(t, statements[0], "status VARCHAR(20) DEFAULT 'ACTIVE'")
}

func TestStatements_AttendanceUniquePair(t *testing.T) {
	dialect, err := database.DialectFor(database.DriverSQLite)
	require.NoError(t, err)

	table, _ := schema.TableFor(tenancy.KindAttendance)
	statements := table.Statements(dialect, 1)

	require.Len(t, statements, 1)
	assert.Contains(t, statements[0], "UNIQUE (occupant_name, attendance_date)")
}
