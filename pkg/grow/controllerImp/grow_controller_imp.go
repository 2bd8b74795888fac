package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/grow/repository"
	"growlog/pkg/middleware"
)

type GrowCtrl struct{ repo repository.GrowRepository }

func New(repo repository.GrowRepository) *GrowCtrl { return &GrowCtrl{repo} }

type growReq struct {
	Name         string `json:"name"`
	LocationType string `json:"location_type"`
	Notes        string `json:"notes"`
}

func (req *growReq) validate() string {
	if req.Name == "" {
		return "name is required"
	}
	if req.LocationType != entities.LocationIndoor && req.LocationType != entities.LocationOutdoor {
		return "location_type must be INDOOR or OUTDOOR"
	}
	return ""
}

func (h *GrowCtrl) Create(c echo.Context) error {
	var req growReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	g := &entities.Grow{
		UserID:       middleware.UID(c),
		Name:         req.Name,
		LocationType: req.LocationType,
		Notes:        req.Notes,
	}
	if err := h.repo.Create(g); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GrowCtrl) List(c echo.Context) error {
	gs, err := h.repo.ListByUser(middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, gs)
}

func (h *GrowCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	g, err := h.repo.FindByID(uint(id), middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GrowCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	g, err := h.repo.FindByID(uint(id), middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req growReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	g.Name, g.LocationType, g.Notes = req.Name, req.LocationType, req.Notes
	if err := h.repo.Update(g); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GrowCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	err := h.repo.Delete(uint(id), middleware.UID(c))
	switch {
	case err == nil:
		return c.NoContent(http.StatusNoContent)
	case errors.Is(err, repository.ErrHasPlants):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
