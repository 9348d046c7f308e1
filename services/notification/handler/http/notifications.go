package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/roadbuddy/internal/pkg/logger"
	"github.com/piresc/roadbuddy/internal/pkg/middleware"
	nrpkg "github.com/piresc/roadbuddy/internal/pkg/newrelic"
	"github.com/piresc/roadbuddy/internal/utils"
	"github.com/piresc/roadbuddy/services/notification"
)

// NotificationsHandler serves the polling API
type NotificationsHandler struct {
	notificationUC notification.NotificationUC
}

func NewNotificationsHandler(notificationUC notification.NotificationUC) *NotificationsHandler {
	return &NotificationsHandler{notificationUC: notificationUC}
}

// List returns the caller's notifications, newest first, and marks them read
func (h *NotificationsHandler) List(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Notifications.List")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.notificationUC.List(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list notifications", logger.UserID(userID), logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

func (h *NotificationsHandler) UnreadCount(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Notifications.UnreadCount")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to count unread notifications", logger.UserID(userID), logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", count)
}

func (h *NotificationsHandler) MarkRead(c echo.Context) error {
	txn := nrpkg.NameEchoTransaction(c, "Notifications.MarkRead")

	userID, _, ok := middleware.UserFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), userID, c.Param("id")); err != nil {
		if utils.StatusForError(err) >= http.StatusInternalServerError {
			logger.Error("Failed to mark notification read", logger.UserID(userID), logger.Err(err))
			nrpkg.NoticeTransactionError(txn, err)
		}
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification marked read", nil)
}
