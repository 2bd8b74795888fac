package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	"growlog/pkg/auth/repository"
)

type AdminCtrl struct{ users repository.UserRepository }

func New(users repository.UserRepository) *AdminCtrl { return &AdminCtrl{users} }

func (h *AdminCtrl) ListUsers(c echo.Context) error {
	us, err := h.users.List()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, us)
}

type roleReq struct {
	Role string `json:"role"`
}

func (h *AdminCtrl) UpdateRole(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Role != entities.RoleAdmin && req.Role != entities.RoleUser {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "role must be ADMIN or USER"})
	}
	u, err := h.users.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	u.Role = req.Role
	if err := h.users.Update(u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, u)
}
