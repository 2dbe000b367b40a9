package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgms/helper"
	"pgms/infras/database/dbtest"
)

func TestApply(t *testing.T) {
	conn := dbtest.NewSQLite(t)

	require.NoError(t, helper.Apply(conn, ""))

	var count int
	require.NoError(t, conn.Read.Get(&count, "SELECT COUNT(*) FROM admins"))
	assert.Zero(t, count)

	require.NoError(t, helper.Apply(conn, ""), "second run is a no-op")
}
