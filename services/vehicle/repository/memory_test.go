package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryVehicleRepo_OnePrimaryPerOwner(t *testing.T) {
	repo := NewMemoryVehicleRepository()
	ctx := context.Background()

	first := testVehicle("VIN00000001", true)
	require.NoError(t, repo.AddVehicle(ctx, first))
	second := testVehicle("VIN00000002", true)
	require.NoError(t, repo.AddVehicle(ctx, second))
	other := testVehicle("VIN00000001", true)
	other.OwnerID = "owner-2"
	require.NoError(t, repo.AddVehicle(ctx, other))

	list, err := repo.ListVehicles(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].IsPrimary)
	assert.True(t, list[1].IsPrimary)

	v, err := repo.SetPrimary(ctx, "owner-1", first.ID)
	require.NoError(t, err)
	assert.True(t, v.IsPrimary)

	list, err = repo.ListVehicles(ctx, "owner-1")
	require.NoError(t, err)
	assert.True(t, list[0].IsPrimary)
	assert.False(t, list[1].IsPrimary)

	list, err = repo.ListVehicles(ctx, "owner-2")
	require.NoError(t, err)
	assert.True(t, list[0].IsPrimary)
}

func TestMemoryVehicleRepo_DuplicateAndMissing(t *testing.T) {
	repo := NewMemoryVehicleRepository()
	ctx := context.Background()
	require.NoError(t, repo.AddVehicle(ctx, testVehicle("VIN00000001", false)))

	err := repo.AddVehicle(ctx, testVehicle("VIN00000001", false))
	assert.True(t, errors.Is(err, models.ErrDuplicateVehicle))

	_, err = repo.SetPrimary(ctx, "owner-1", uuid.New())
	assert.True(t, errors.Is(err, models.ErrVehicleNotFound))
}
