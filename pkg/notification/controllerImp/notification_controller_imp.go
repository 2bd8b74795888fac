package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"growlog/pkg/middleware"
	"growlog/pkg/notification/repository"
)

const inboxCap = 20

type NotificationCtrl struct{ repo repository.NotificationRepository }

func New(repo repository.NotificationRepository) *NotificationCtrl {
	return &NotificationCtrl{repo}
}

func (h *NotificationCtrl) List(c echo.Context) error {
	ns, err := h.repo.Recent(middleware.UID(c), inboxCap)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ns)
}

func (h *NotificationCtrl) MarkRead(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.MarkRead(uint(id), middleware.UID(c)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *NotificationCtrl) MarkAllRead(c echo.Context) error {
	if err := h.repo.MarkAllRead(middleware.UID(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
