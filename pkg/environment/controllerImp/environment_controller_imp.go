package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	"growlog/pkg/climate"
	"growlog/pkg/environment/repository"
	growrepo "growlog/pkg/grow/repository"
	"growlog/pkg/middleware"
)

type EnvCtrl struct {
	repo  repository.EnvironmentRepository
	grows growrepo.GrowRepository
}

func New(repo repository.EnvironmentRepository, grows growrepo.GrowRepository) *EnvCtrl {
	return &EnvCtrl{repo: repo, grows: grows}
}

// ownGrow resolves the :id route param to a grow owned by the caller.
func (h *EnvCtrl) ownGrow(c echo.Context) (*entities.Grow, bool) {
	id, _ := strconv.Atoi(c.Param("id"))
	g, err := h.grows.FindByID(uint(id), middleware.UID(c))
	if err != nil {
		return nil, false
	}
	return g, true
}

type envReq struct {
	Name          string   `json:"name"`
	Medium        string   `json:"medium"`
	LightSchedule string   `json:"light_schedule"`
	TargetTemp    *float64 `json:"target_temp"`
	TargetRH      *float64 `json:"target_rh"`
	TargetCO2     *float64 `json:"target_co2"`
	Notes         string   `json:"notes"`
}

func (h *EnvCtrl) Create(c echo.Context) error {
	g, ok := h.ownGrow(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req envReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	e := &entities.Environment{
		GrowID:        g.GrowID,
		Name:          req.Name,
		Medium:        req.Medium,
		LightSchedule: req.LightSchedule,
		TargetTemp:    req.TargetTemp,
		TargetRH:      req.TargetRH,
		TargetCO2:     req.TargetCO2,
		Notes:         req.Notes,
	}
	if err := h.repo.Create(e); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EnvCtrl) List(c echo.Context) error {
	g, ok := h.ownGrow(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	es, err := h.repo.ListByGrow(g.GrowID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, es)
}

func (h *EnvCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	e, err := h.repo.FindByID(uint(id), middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req envReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	e.Name, e.Medium, e.LightSchedule = req.Name, req.Medium, req.LightSchedule
	e.TargetTemp, e.TargetRH, e.TargetCO2 = req.TargetTemp, req.TargetRH, req.TargetCO2
	e.Notes = req.Notes
	if err := h.repo.Update(e); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, e)
}

func (h *EnvCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), middleware.UID(c)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

type metricReq struct {
	Temperature float64    `json:"temperature"`
	Humidity    float64    `json:"humidity"`
	CO2         *float64   `json:"co2"`
	VPD         *float64   `json:"vpd"`
	RecordedAt  *time.Time `json:"recorded_at"`
}

// RecordMetric appends a climate sample to the grow. VPD is derived from
// temperature and humidity when the caller leaves it out.
func (h *EnvCtrl) RecordMetric(c echo.Context) error {
	g, ok := h.ownGrow(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req metricReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Humidity < 0 || req.Humidity > 100 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "humidity must be 0-100"})
	}
	vpd := climate.VPD(req.Temperature, req.Humidity, 0)
	if req.VPD != nil {
		vpd = *req.VPD
	}
	at := time.Now()
	if req.RecordedAt != nil {
		at = *req.RecordedAt
	}
	m := &entities.EnvironmentMetric{
		GrowID:      g.GrowID,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		CO2:         req.CO2,
		VPD:         vpd,
		RecordedAt:  at,
	}
	if err := h.repo.RecordMetric(m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *EnvCtrl) LatestMetric(c echo.Context) error {
	g, ok := h.ownGrow(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	m, err := h.repo.LatestMetric(g.GrowID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no metrics recorded"})
	}
	return c.JSON(http.StatusOK, m)
}

func (h *EnvCtrl) MetricHistory(c echo.Context) error {
	g, ok := h.ownGrow(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	days := 7
	if v, err := strconv.Atoi(c.QueryParam("days")); err == nil && v > 0 {
		days = v
	}
	ms, err := h.repo.MetricHistory(g.GrowID, days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ms)
}
