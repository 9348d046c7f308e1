package handler

import (
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/services/rides"
	httpHandler "github.com/piresc/roadbuddy/services/rides/handler/http"
)

// Handler combines the HTTP handlers of the rides service
type Handler struct {
	ridesHTTP  *httpHandler.RidesHandler
	routesHTTP *httpHandler.RouteHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(ridesUC rides.RideUC, cfg *models.Config) *Handler {
	return &Handler{
		ridesHTTP:  httpHandler.NewRidesHandler(ridesUC),
		routesHTTP: httpHandler.NewRouteHandler(),
		cfg:        cfg,
	}
}
