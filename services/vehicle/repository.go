package vehicle

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// VehicleRepo stores the cars users register
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/roadbuddy/services/vehicle VehicleRepo
type VehicleRepo interface {
	// AddVehicle stores v. A primary v takes the flag from the owner's other
	// cars in the same write. A VIN the owner already registered returns
	// models.ErrDuplicateVehicle.
	AddVehicle(ctx context.Context, v *models.OwnedVehicle) error
	// ListVehicles returns the owner's cars, oldest first
	ListVehicles(ctx context.Context, ownerID string) ([]*models.OwnedVehicle, error)
	// SetPrimary returns models.ErrVehicleNotFound unless ownerID owns vehicleID
	SetPrimary(ctx context.Context, ownerID string, vehicleID uuid.UUID) (*models.OwnedVehicle, error)
}
