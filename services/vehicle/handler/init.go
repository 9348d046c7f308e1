package handler

import (
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/vehicle"
	httpHandler "github.com/piresc/roadbuddy/services/vehicle/handler/http"
)

// Handler serves the car registry
type Handler struct {
	vehiclesHTTP *httpHandler.VehiclesHandler
	cfg          *models.Config
}

func NewHandler(vehicleUC vehicle.VehicleUC, cfg *models.Config) *Handler {
	return &Handler{
		vehiclesHTTP: httpHandler.NewVehiclesHandler(vehicleUC),
		cfg:          cfg,
	}
}
