package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/internal/utils"
	"github.com/piresc/roadbuddy/services/vehicle"
)

const minVehicleYear = 1900

// VINs before 1981 were not standardised at 17 characters
var vinPattern = regexp.MustCompile(`^[A-Z0-9]{11,17}$`)

type vehicleUC struct {
	repo vehicle.VehicleRepo
	now  func() time.Time
}

// NewVehicleUC creates the car registry over repo
func NewVehicleUC(repo vehicle.VehicleRepo) (vehicle.VehicleUC, error) {
	if repo == nil {
		return nil, errors.New("vehicle repository is required")
	}
	return &vehicleUC{repo: repo, now: time.Now}, nil
}

// AddVehicle registers a car. An owner's first car is primary whether or
// not the request asks for it.
func (uc *vehicleUC) AddVehicle(ctx context.Context, req models.AddVehicleRequest) (*models.OwnedVehicle, error) {
	v, err := uc.validate(req)
	if err != nil {
		return nil, err
	}

	owned, err := uc.repo.ListVehicles(ctx, v.OwnerID)
	if err != nil {
		return nil, err
	}
	for _, existing := range owned {
		if existing.VIN == v.VIN {
			return nil, fmt.Errorf("%w: VIN %s", models.ErrDuplicateVehicle, v.VIN)
		}
	}
	if len(owned) == 0 {
		v.IsPrimary = true
	}

	if err := uc.repo.AddVehicle(ctx, v); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Vehicle registered",
		logger.String("owner_id", v.OwnerID),
		logger.String("vehicle_id", v.ID.String()),
		logger.Bool("primary", v.IsPrimary))
	return v, nil
}

func (uc *vehicleUC) validate(req models.AddVehicleRequest) (*models.OwnedVehicle, error) {
	v := &models.OwnedVehicle{
		OwnerID:   req.OwnerID,
		Make:      utils.SanitizeString(req.Make),
		Model:     utils.SanitizeString(req.Model),
		Year:      req.Year,
		Color:     utils.SanitizeString(req.Color),
		Plate:     strings.ToUpper(utils.SanitizeString(req.Plate)),
		VIN:       strings.ToUpper(strings.ReplaceAll(utils.SanitizeString(req.VIN), " ", "")),
		IsPrimary: req.IsPrimary,
		CreatedAt: uc.now().UTC(),
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"owner", v.OwnerID}, {"make", v.Make}, {"model", v.Model},
		{"color", v.Color}, {"plate", v.Plate}, {"vin", v.VIN},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", models.ErrValidation, strings.Join(missing, ", "))
	}
	if !vinPattern.MatchString(v.VIN) {
		return nil, fmt.Errorf("%w: VIN must be 11 to 17 letters or digits", models.ErrValidation)
	}
	if maxYear := uc.now().Year() + 1; v.Year < minVehicleYear || v.Year > maxYear {
		return nil, fmt.Errorf("%w: year must be between %d and %d", models.ErrValidation, minVehicleYear, maxYear)
	}
	return v, nil
}

func (uc *vehicleUC) ListVehicles(ctx context.Context, ownerID string) ([]*models.OwnedVehicle, error) {
	return uc.repo.ListVehicles(ctx, ownerID)
}

func (uc *vehicleUC) SetPrimary(ctx context.Context, ownerID, vehicleID string) (*models.OwnedVehicle, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrVehicleNotFound, vehicleID)
	}

	v, err := uc.repo.SetPrimary(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "Primary vehicle changed",
		logger.String("owner_id", ownerID),
		logger.String("vehicle_id", vehicleID))
	return v, nil
}

func (uc *vehicleUC) PrimaryVehicle(ctx context.Context, ownerID string) (*models.OwnedVehicle, error) {
	owned, err := uc.repo.ListVehicles(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, v := range owned {
		if v.IsPrimary {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s has no primary car", models.ErrVehicleNotFound, ownerID)
}
