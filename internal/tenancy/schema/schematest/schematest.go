// Package schematest provisions tenant tables in a throwaway SQLite database.
package schematest

import (
	"context"
	"testing"

	"pgms/config"
	"pgms/infras/database"
	"pgms/infras/database/dbtest"
	"pgms/infras/otel/mocks"
	"pgms/internal/tenancy"
	"pgms/internal/tenancy/schema"

	"github.com/stretchr/testify/require"
)

// Provisioned returns a fresh database in which every given tenant owns its
// full set of tables.
func Provisioned(t testing.TB, tenantIDs ...tenancy.TenantID) (*database.Connection, schema.Provisioner) {
	t.Helper()

	conn := dbtest.NewSQLite(t)
	provisioner := schema.NewProvisioner(conn, mocks.NewOtel(), &config.Config{})

	for _, tenantID := range tenantIDs {
		require.NoError(t, provisioner.ProvisionTenant(context.Background(), tenantID))
	}

	return conn, provisioner
}
