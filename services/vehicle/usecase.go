package vehicle

import (
	"context"

	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// VehicleUC is the car registry behind ride posting
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/roadbuddy/services/vehicle VehicleUC
type VehicleUC interface {
	AddVehicle(ctx context.Context, req models.AddVehicleRequest) (*models.OwnedVehicle, error)
	ListVehicles(ctx context.Context, ownerID string) ([]*models.OwnedVehicle, error)
	SetPrimary(ctx context.Context, ownerID, vehicleID string) (*models.OwnedVehicle, error)
	// PrimaryVehicle returns models.ErrVehicleNotFound when the owner has no cars
	PrimaryVehicle(ctx context.Context, ownerID string) (*models.OwnedVehicle, error)
}
