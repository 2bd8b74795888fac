package controllerImp

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"

	"growlog/entities"
)

type logReq struct {
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Tags     []string       `json:"tags"`
	Metrics  map[string]any `json:"metrics"`
	LoggedAt *time.Time     `json:"logged_at"`
}

func (h *PlantCtrl) AddLog(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req logReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Type == "" {
		req.Type = entities.LogNote
	}
	at := time.Now()
	if req.LoggedAt != nil {
		at = *req.LoggedAt
	}
	l := &entities.PlantLog{
		PlantID:  p.PlantID,
		UserID:   p.UserID,
		Type:     strings.ToUpper(req.Type),
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		Metrics:  req.Metrics,
		LoggedAt: at,
	}
	if err := h.repo.AddLog(l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, l)
}

func (h *PlantCtrl) Logs(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	ls, err := h.repo.Logs(p.PlantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ls)
}

type plantMetricReq struct {
	Height      *float64   `json:"height"`
	NodeCount   *int       `json:"node_count"`
	PH          *float64   `json:"ph"`
	EC          *float64   `json:"ec"`
	Temperature *float64   `json:"temperature"`
	Humidity    *float64   `json:"humidity"`
	Notes       string     `json:"notes"`
	RecordedAt  *time.Time `json:"recorded_at"`
}

func (h *PlantCtrl) AddMetric(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req plantMetricReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	at := time.Now()
	if req.RecordedAt != nil {
		at = *req.RecordedAt
	}
	m := &entities.PlantMetric{
		PlantID:     p.PlantID,
		Height:      req.Height,
		NodeCount:   req.NodeCount,
		PH:          req.PH,
		EC:          req.EC,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		Notes:       req.Notes,
		RecordedAt:  at,
	}
	if err := h.repo.AddMetric(m); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *PlantCtrl) Metrics(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	ms, err := h.repo.Metrics(p.PlantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ms)
}

// ExportMetrics writes the plant's growth samples to an XLSX workbook.
func (h *PlantCtrl) ExportMetrics(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	ms, err := h.repo.Metrics(p.PlantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	x := excelize.NewFile()
	defer x.Close()
	sheet := x.GetSheetName(0)
	_ = x.SetSheetRow(sheet, "A1", &[]any{
		"recorded_at", "height_cm", "node_count", "ph", "ec", "temperature", "humidity", "notes",
	})
	cell := func(v *float64) any {
		if v == nil {
			return nil
		}
		return *v
	}
	for i, m := range ms {
		nodes := any(nil)
		if m.NodeCount != nil {
			nodes = *m.NodeCount
		}
		_ = x.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &[]any{
			m.RecordedAt.Format(time.RFC3339),
			cell(m.Height), nodes, cell(m.PH), cell(m.EC),
			cell(m.Temperature), cell(m.Humidity), m.Notes,
		})
	}

	buf, err := x.WriteToBuffer()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=plant-%d-metrics.xlsx", p.PlantID))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *PlantCtrl) AddPhoto(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "photo file required"})
	}
	if ct := fh.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "only image uploads are accepted"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	var takenAt *time.Time
	if v := c.FormValue("taken_at"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			takenAt = &t
		}
	}
	photo := &entities.PlantPhoto{
		PlantID:  p.PlantID,
		UserID:   p.UserID,
		FilePath: "/uploads/" + name,
		Caption:  c.FormValue("caption"),
		TakenAt:  takenAt,
	}
	if err := h.repo.AddPhoto(photo); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, photo)
}

func (h *PlantCtrl) Photos(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	ps, err := h.repo.Photos(p.PlantID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ps)
}
