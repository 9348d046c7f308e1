package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/roadbuddy/internal/pkg/middleware"
)

// RegisterRoutes registers the car registry behind JWT authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/vehicles", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.POST("", h.vehiclesHTTP.AddVehicle)
	group.GET("", h.vehiclesHTTP.ListVehicles)
	group.POST("/:vehicleID/primary", h.vehiclesHTTP.SetPrimary)
}
