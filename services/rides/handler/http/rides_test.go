package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/roadbuddy/internal/pkg/middleware"
	"github.com/piresc/roadbuddy/internal/pkg/models"
	"github.com/piresc/roadbuddy/internal/utils"
	"github.com/piresc/roadbuddy/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string, rideID string, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if rideID != "" {
		c.SetParamNames("rideID")
		c.SetParamValues(rideID)
	}
	if userID != "" {
		c.Set(middleware.ContextKeyUserID, userID)
		c.Set(middleware.ContextKeyUserName, "Name of "+userID)
	}
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestNewRidesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)

	handler := NewRidesHandler(mockRideUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockRideUC, handler.rideUC)
}

func TestRidesHandler_CreateRide_UsesCallerAsOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	body := `{"origin":"San Jose","destination":"Oakland","date":"2030-05-01","departure_time":"9:30 AM","cost_per_seat":12.5,"max_passengers":3}`
	mockRideUC.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req models.CreateRideRequest) (*models.Ride, error) {
			assert.Equal(t, "owner-1", req.OwnerID)
			assert.Equal(t, "Name of owner-1", req.OwnerName)
			assert.Equal(t, 12.5, req.CostPerSeat)
			assert.Equal(t, 3, req.MaxPassengers)
			return &models.Ride{ID: uuid.New(), OwnerID: req.OwnerID, State: models.RideStateOpen}, nil
		})

	c, rec := newContext(http.MethodPost, "/rides", body, "", "owner-1")
	require.NoError(t, handler.CreateRide(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRidesHandler_CreateRide_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	mockRideUC.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: cost per seat must be at least $0.50", models.ErrValidation))

	c, rec := newContext(http.MethodPost, "/rides", `{"cost_per_seat":0.1}`, "", "owner-1")
	require.NoError(t, handler.CreateRide(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, "$0.50")
}

func TestRidesHandler_RequiresCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewRidesHandler(mocks.NewMockRideUC(ctrl))

	handlers := map[string]echo.HandlerFunc{
		"create":    handler.CreateRide,
		"available": handler.ListAvailable,
		"upcoming":  handler.ListUpcoming,
		"book":      handler.BookRide,
		"cancel":    handler.CancelBooking,
		"delete":    handler.DeleteRide,
		"chat":      handler.GetChatRoom,
		"chats":     handler.ListChatRooms,
	}
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			c, rec := newContext(http.MethodPost, "/", "", "ride-1", "")
			require.NoError(t, h(c))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRidesHandler_BookRide_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"full", models.ErrRideFull, http.StatusConflict},
		{"already booked", models.ErrAlreadyBooked, http.StatusConflict},
		{"unavailable", fmt.Errorf("%w: ride is cancelled", models.ErrRideUnavailable), http.StatusConflict},
		{"not found", models.ErrRideNotFound, http.StatusNotFound},
		{"own ride", fmt.Errorf("%w: you cannot book your own ride", models.ErrRideUnavailable), http.StatusConflict},
		{"declined", fmt.Errorf("%w: card declined", models.ErrPayment), http.StatusPaymentRequired},
		{"timeout", models.ErrPaymentTimeout, http.StatusGatewayTimeout},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockRideUC := mocks.NewMockRideUC(ctrl)
			handler := NewRidesHandler(mockRideUC)
			mockRideUC.EXPECT().BookRide(gomock.Any(), "ride-1", "p1", "Name of p1").Return(nil, tt.err)

			c, rec := newContext(http.MethodPost, "/rides/ride-1/bookings", "", "ride-1", "p1")
			require.NoError(t, handler.BookRide(c))

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", decodeError(t, rec).Error)
			}
		})
	}
}

func TestRidesHandler_BookRide_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	mockRideUC.EXPECT().BookRide(gomock.Any(), "ride-1", "p1", "Name of p1").
		Return(&models.BookingConfirmation{PassengerID: "p1", Seat: 1, Amount: 1000}, nil)

	c, rec := newContext(http.MethodPost, "/rides/ride-1/bookings", "", "ride-1", "p1")
	require.NoError(t, handler.BookRide(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Data models.BookingConfirmation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1000), resp.Data.Amount)
}

func TestRidesHandler_CancelBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	mockRideUC.EXPECT().CancelBooking(gomock.Any(), "ride-1", "p1", "Name of p1").
		Return(&models.Ride{State: models.RideStateOpen}, nil)

	c, rec := newContext(http.MethodDelete, "/rides/ride-1/bookings", "", "ride-1", "p1")
	require.NoError(t, handler.CancelBooking(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRidesHandler_DeleteRide_Receipt(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	mockRideUC.EXPECT().DeleteRide(gomock.Any(), "ride-1", "owner-1", "Name of owner-1").
		Return(&models.DeletionReceipt{RideID: "ride-1", State: models.RideStateDeleted, Fee: 400, RefundTotal: 2400}, nil)

	c, rec := newContext(http.MethodDelete, "/rides/ride-1", "", "ride-1", "owner-1")
	require.NoError(t, handler.DeleteRide(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data models.DeletionReceipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(400), resp.Data.Fee)
	assert.Equal(t, int64(2400), resp.Data.RefundTotal)
}

func TestRidesHandler_DeleteRide_PartialRefund(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	partial := &models.PartialRefundError{
		RideID:   "ride-1",
		Refunded: []string{"p1"},
		Failed:   map[string]error{"p2": models.ErrPayment},
	}
	mockRideUC.EXPECT().DeleteRide(gomock.Any(), "ride-1", "owner-1", gomock.Any()).Return(nil, partial)

	c, rec := newContext(http.MethodDelete, "/rides/ride-1", "", "ride-1", "owner-1")
	require.NoError(t, handler.DeleteRide(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decodeError(t, rec)
	details, ok := resp.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"p2"}, details["failed_passengers"])
}

func TestRidesHandler_DeleteRide_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	mockRideUC.EXPECT().DeleteRide(gomock.Any(), "ride-1", "p1", gomock.Any()).
		Return(nil, fmt.Errorf("%w: only the owner can delete this ride", models.ErrAuthorization))

	c, rec := newContext(http.MethodDelete, "/rides/ride-1", "", "ride-1", "p1")
	require.NoError(t, handler.DeleteRide(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRidesHandler_Listings(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	mockRideUC.EXPECT().ListAvailable(gomock.Any(), "p1").Return([]*models.Ride{{Origin: "A"}}, nil)
	mockRideUC.EXPECT().ListUpcoming(gomock.Any(), "p1").Return([]*models.Ride{}, nil)

	c, rec := newContext(http.MethodGet, "/rides/available", "", "", "p1")
	require.NoError(t, handler.ListAvailable(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/rides/upcoming", "", "", "p1")
	require.NoError(t, handler.ListUpcoming(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRidesHandler_GetRide_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	mockRideUC.EXPECT().GetRide(gomock.Any(), "missing").Return(nil, models.ErrRideNotFound)

	c, rec := newContext(http.MethodGet, "/rides/missing", "", "missing", "p1")
	require.NoError(t, handler.GetRide(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRidesHandler_GetChatRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	mockRideUC.EXPECT().GetChatRoom(gomock.Any(), "ride-1", "p1").
		Return(&models.ChatRoom{RideID: "ride-1", Participants: []string{"owner-1", "p1"}}, nil)
	mockRideUC.EXPECT().GetChatRoom(gomock.Any(), "ride-1", "p9").
		Return(nil, fmt.Errorf("%w: not a participant", models.ErrAuthorization))

	c, rec := newContext(http.MethodGet, "/rides/ride-1/chat", "", "ride-1", "p1")
	require.NoError(t, handler.GetChatRoom(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(http.MethodGet, "/rides/ride-1/chat", "", "ride-1", "p9")
	require.NoError(t, handler.GetChatRoom(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRidesHandler_ListChatRooms(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)
	handler := NewRidesHandler(mockRideUC)

	mockRideUC.EXPECT().ListChatRooms(gomock.Any(), "p1").
		Return([]*models.ChatRoom{{RideID: "ride-2"}, {RideID: "ride-1"}}, nil)
	mockRideUC.EXPECT().ListChatRooms(gomock.Any(), "p2").
		Return(nil, errors.New("redis down"))

	c, rec := newContext(http.MethodGet, "/chats", "", "", "p1")
	require.NoError(t, handler.ListChatRooms(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []models.ChatRoom `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "ride-2", resp.Data[0].RideID)

	c, rec = newContext(http.MethodGet, "/chats", "", "", "p2")
	require.NoError(t, handler.ListChatRooms(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
