package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"loanly-backend/internal/domain/notification"
	notifUC "loanly-backend/internal/usecase/notification"
)

type NotificationHandler struct{ uc *notifUC.Usecase }

func NewNotificationHandler(uc *notifUC.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List returns the customer's notifications, newest first. ?unread=true
// narrows to unread ones.
func (h *NotificationHandler) List(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	var (
		ns  []notification.Notification
		err error
	)
	if c.QueryParam("unread") == "true" {
		ns, err = h.uc.ListUnread(c.Request().Context(), cid)
	} else {
		ns, err = h.uc.List(c.Request().Context(), cid)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ns)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	n, err := h.uc.UnreadCount(c.Request().Context(), cid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread": n})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id path param"})
	}
	if err := h.uc.MarkRead(c.Request().Context(), cid, id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	cid := customerID(c)
	if cid == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing " + HeaderCustomerID})
	}
	n, err := h.uc.MarkAllRead(c.Request().Context(), cid)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"updated": n})
}
