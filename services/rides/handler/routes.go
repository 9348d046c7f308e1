package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/roadbuddy/internal/pkg/middleware"
)

// RegisterRoutes registers all HTTP routes behind JWT authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	ridesGroup := e.Group("/rides", auth)
	ridesGroup.POST("", h.ridesHTTP.CreateRide)
	ridesGroup.GET("/available", h.ridesHTTP.ListAvailable)
	ridesGroup.GET("/upcoming", h.ridesHTTP.ListUpcoming)
	ridesGroup.GET("/:rideID", h.ridesHTTP.GetRide)
	ridesGroup.DELETE("/:rideID", h.ridesHTTP.DeleteRide)
	ridesGroup.POST("/:rideID/bookings", h.ridesHTTP.BookRide)
	ridesGroup.DELETE("/:rideID/bookings", h.ridesHTTP.CancelBooking)
	ridesGroup.GET("/:rideID/chat", h.ridesHTTP.GetChatRoom)

	chatsGroup := e.Group("/chats", auth)
	chatsGroup.GET("", h.ridesHTTP.ListChatRooms)

	routesGroup := e.Group("/routes", auth)
	routesGroup.POST("/decode", h.routesHTTP.DecodeRoute)
}
