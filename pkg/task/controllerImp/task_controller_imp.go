package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	"growlog/pkg/middleware"
	"growlog/pkg/task/repository"
)

type TaskCtrl struct{ repo repository.TaskRepository }

func New(repo repository.TaskRepository) *TaskCtrl { return &TaskCtrl{repo} }

type taskReq struct {
	GrowID        *uint      `json:"grow_id"`
	PlantID       *uint      `json:"plant_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DueAt         *time.Time `json:"due_at"`
	RepeatRule    string     `json:"repeat_rule"`
	Notify        bool       `json:"notify"`
	LeadTimeHours int        `json:"lead_time_hours"`
	Priority      string     `json:"priority"`
}

func (h *TaskCtrl) Create(c echo.Context) error {
	var req taskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
	}
	if req.DueAt == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "due_at is required"})
	}
	if req.Priority == "" {
		req.Priority = "MEDIUM"
	}
	t := &entities.Task{
		UserID:        middleware.UID(c),
		GrowID:        req.GrowID,
		PlantID:       req.PlantID,
		Title:         req.Title,
		Description:   req.Description,
		DueAt:         *req.DueAt,
		RepeatRule:    req.RepeatRule,
		Notify:        req.Notify,
		LeadTimeHours: req.LeadTimeHours,
		Priority:      req.Priority,
		Status:        entities.TaskOpen,
	}
	if err := h.repo.Create(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) List(c echo.Context) error {
	ts, err := h.repo.ListByUser(middleware.UID(c), c.QueryParam("status"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ts)
}

type taskPatchReq struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	DueAt         *time.Time `json:"due_at"`
	RepeatRule    *string    `json:"repeat_rule"`
	Notify        *bool      `json:"notify"`
	LeadTimeHours *int       `json:"lead_time_hours"`
	Priority      *string    `json:"priority"`
}

func (h *TaskCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.repo.FindByID(uint(id), middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req taskPatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.DueAt != nil {
		t.DueAt = *req.DueAt
	}
	if req.RepeatRule != nil {
		t.RepeatRule = *req.RepeatRule
	}
	if req.Notify != nil {
		t.Notify = *req.Notify
	}
	if req.LeadTimeHours != nil {
		t.LeadTimeHours = *req.LeadTimeHours
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if err := h.repo.Update(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), middleware.UID(c)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Complete marks a task DONE; for repeating tasks the response carries the
// spawned successor under "next".
func (h *TaskCtrl) Complete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	done, next, err := h.repo.Complete(uint(id), middleware.UID(c), time.Now())
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	resp := map[string]any{"task": done}
	if next != nil {
		resp["next"] = next
	}
	return c.JSON(http.StatusOK, resp)
}
