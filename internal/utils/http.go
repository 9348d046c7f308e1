package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roadbuddy/internal/pkg/models"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Code    int         `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}

// StatusForError maps a domain error to its HTTP status
func StatusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, models.ErrRideNotFound),
		errors.Is(err, models.ErrNotificationNotFound),
		errors.Is(err, models.ErrChatRoomNotFound),
		errors.Is(err, models.ErrVehicleNotFound),
		errors.Is(err, models.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrRideUnavailable),
		errors.Is(err, models.ErrRideFull),
		errors.Is(err, models.ErrAlreadyBooked),
		errors.Is(err, models.ErrRecordFinalized),
		errors.Is(err, models.ErrRosterChanged),
		errors.Is(err, models.ErrDuplicateVehicle):
		return http.StatusConflict
	case errors.Is(err, models.ErrPaymentTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, models.ErrPartialRefund):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrPayment):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// DomainErrorResponse writes err with the status StatusForError picks.
// Unknown errors are reported without their message.
func DomainErrorResponse(c echo.Context, err error) error {
	status := StatusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	resp := ErrorResponse{
		Success: false,
		Error:   message,
		Code:    status,
	}

	var partial *models.PartialRefundError
	if errors.As(err, &partial) {
		resp.Details = map[string]interface{}{
			"ride_id":           partial.RideID,
			"refunded":          partial.Refunded,
			"failed_passengers": partial.FailedPassengers(),
		}
	}

	return c.JSON(status, resp)
}
