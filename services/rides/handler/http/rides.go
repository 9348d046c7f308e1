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
	"github.com/piresc/roadbuddy/services/rides"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// CreateRide posts a ride owned by the caller
func (h *RidesHandler) CreateRide(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Rides.CreateRide")

	userID, userName, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	req.OwnerID = userID
	req.OwnerName = userName

	ride, err := h.rideUC.CreateRide(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, txn, "create ride", err)
	}

	nrpkg.AddTransactionAttribute(txn, "ride_id", ride.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Ride posted", ride)
}

func (h *RidesHandler) GetRide(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Rides.GetRide")

	ride, err := h.rideUC.GetRide(c.Request().Context(), c.Param("rideID"))
	if err != nil {
		return h.fail(c, txn, "get ride", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", ride)
}

// ListAvailable returns open future rides the caller could still book
func (h *RidesHandler) ListAvailable(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Rides.ListAvailable")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.rideUC.ListAvailable(c.Request().Context(), userID)
	if err != nil {
		return h.fail(c, txn, "list available rides", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// ListUpcoming returns active future rides the caller owns or joined
func (h *RidesHandler) ListUpcoming(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Rides.ListUpcoming")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.rideUC.ListUpcoming(c.Request().Context(), userID)
	if err != nil {
		return h.fail(c, txn, "list upcoming rides", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// BookRide reserves and pays for a seat for the caller
func (h *RidesHandler) BookRide(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Rides.BookRide")

	userID, userName, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID := c.Param("rideID")

	confirmation, err := h.rideUC.BookRide(c.Request().Context(), rideID, userID, userName)
	if err != nil {
		return h.fail(c, txn, "book ride", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride booked", confirmation)
}

// CancelBooking gives the caller's seat back without a refund
func (h *RidesHandler) CancelBooking(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Rides.CancelBooking")

	userID, userName, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID := c.Param("rideID")

	ride, err := h.rideUC.CancelBooking(c.Request().Context(), rideID, userID, userName)
	if err != nil {
		return h.fail(c, txn, "cancel booking", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", ride)
}

// DeleteRide settles and removes a ride owned by the caller. A partial
// refund failure answers 502 with the passengers still owed.
func (h *RidesHandler) DeleteRide(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Rides.DeleteRide")

	userID, userName, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID := c.Param("rideID")

	receipt, err := h.rideUC.DeleteRide(c.Request().Context(), rideID, userID, userName)
	if err != nil {
		return h.fail(c, txn, "delete ride", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride deleted", receipt)
}

// GetChatRoom returns the ride's chat room to one of its participants
func (h *RidesHandler) GetChatRoom(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Rides.GetChatRoom")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	room, err := h.rideUC.GetChatRoom(c.Request().Context(), c.Param("rideID"), userID)
	if err != nil {
		return h.fail(c, txn, "get chat room", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", room)
}

// ListChatRooms returns every ride chat the caller takes part in
func (h *RidesHandler) ListChatRooms(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Rides.ListChatRooms")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rooms, err := h.rideUC.ListChatRooms(c.Request().Context(), userID)
	if err != nil {
		return h.fail(c, txn, "list chat rooms", err)
	}
	nrpkg.AddTransactionAttribute(txn, "chat_rooms", len(rooms))
	return utils.SuccessResponse(c, http.StatusOK, "", rooms)
}

func (h *RidesHandler) fail(c echo.Context, txn *newrelic.Transaction, action string, err error) error {
	status := utils.StatusForError(err)
	fields := []logger.Field{
		logger.String("action", action),
		logger.String("ride_id", c.Param("rideID")),
		logger.Int("status", status),
		logger.Err(err),
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Ride request failed", fields...)
		nrpkg.NoticeTransactionError(txn, err)
	} else {
		logger.WarnCtx(c.Request().Context(), "Ride request rejected", fields...)
	}
	return utils.DomainErrorResponse(c, err)
}
