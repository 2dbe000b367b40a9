package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgms/infras/otel/mocks"
	"pgms/internal/domains/staff/model"
	"pgms/internal/domains/staff/repository"
	"pgms/internal/tenancy/schema/schematest"
)

func TestStaffRepository_Finders(t *testing.T) {
	conn, provisioner := schematest.Provisioned(t, 3)
	repo := repository.New(conn, mocks.NewOtel(), provisioner)
	ctx := context.Background()

	warden := "WARDEN"
	cook := "COOK"

	for _, s := range []model.Staff{
		{Username: "ravi", Email: "ravi@example.com", Role: &warden},
		{Username: "meera", Email: "meera@example.com", Role: &cook},
		{Username: "arun", Email: "arun@example.com", Role: &cook},
	} {
		_, err := repo.Save(ctx, 3, &s)
		require.NoError(t, err)
	}

	got, found, err := repo.FindByUsername(ctx, 3, "meera")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "meera@example.com", got.Email)
	assert.Nil(t, got.Phone)

	_, found, err = repo.FindByEmail(ctx, 3, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, found)

	cooks, err := repo.FindByRole(ctx, 3, cook)
	require.NoError(t, err)
	assert.Len(t, cooks, 2)
}
