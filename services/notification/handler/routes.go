package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/roadbuddy/internal/pkg/middleware"
)

// RegisterRoutes registers the polling API behind JWT authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/notifications", middleware.JWTAuthMiddleware(h.cfg.JWT))
	group.GET("", h.notificationsHTTP.List)
	group.GET("/unread-count", h.notificationsHTTP.UnreadCount)
	group.POST("/:id/read", h.notificationsHTTP.MarkRead)
}
