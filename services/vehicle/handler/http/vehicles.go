package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/middleware"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	nrpkg "github.com/piresc/roadbuddy/internal/pkg/newrelic"
	"github.com/piresc/roadbuddy/internal/utils"
	"github.com/piresc/roadbuddy/services/vehicle"
)

// VehiclesHandler serves the caller's car registry
type VehiclesHandler struct {
	vehicleUC vehicle.VehicleUC
}

func NewVehiclesHandler(vehicleUC vehicle.VehicleUC) *VehiclesHandler {
	return &VehiclesHandler{vehicleUC: vehicleUC}
}

// AddVehicle registers a car for the caller
func (h *VehiclesHandler) AddVehicle(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Vehicles.AddVehicle")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AddVehicleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.OwnerID = userID

	v, err := h.vehicleUC.AddVehicle(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, txn, "add vehicle", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Car added", v)
}

func (h *VehiclesHandler) ListVehicles(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Vehicles.ListVehicles")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.vehicleUC.ListVehicles(c.Request().Context(), userID)
	if err != nil {
		return h.fail(c, txn, "list vehicles", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// SetPrimary makes one of the caller's cars the default for new rides
func (h *VehiclesHandler) SetPrimary(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Vehicles.SetPrimary")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	v, err := h.vehicleUC.SetPrimary(c.Request().Context(), userID, c.Param("vehicleID"))
	if err != nil {
		return h.fail(c, txn, "set primary vehicle", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Primary car updated", v)
}

func (h *VehiclesHandler) fail(c echo.Context, txn *newrelic.Transaction, action string, err error) error {
	status := utils.StatusForError(err)
	fields := []logger.Field{
		logger.String("action", action),
		logger.String("vehicle_id", c.Param("vehicleID")),
		logger.Int("status", status),
		logger.Err(err),
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Vehicle request failed", fields...)
		nrpkg.NoticeTransactionError(txn, err)
	} else {
		logger.WarnCtx(c.Request().Context(), "Vehicle request rejected", fields...)
	}
	return utils.DomainErrorResponse(c, err)
}
