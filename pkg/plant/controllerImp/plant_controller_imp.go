package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"growlog/entities"
	growrepo "growlog/pkg/grow/repository"
	"growlog/pkg/middleware"
	"growlog/pkg/plant/progress"
	"growlog/pkg/plant/repository"
)

var validPhases = map[string]bool{
	entities.PhaseGermination: true,
	entities.PhaseVegetative:  true,
	entities.PhaseFlowering:   true,
	entities.PhaseDrying:      true,
	entities.PhaseCured:       true,
	entities.PhaseFinished:    true,
}

var validStatuses = map[string]bool{
	entities.StatusHealthy:   true,
	entities.StatusIssues:    true,
	entities.StatusSick:      true,
	entities.StatusHarvested: true,
	entities.StatusDead:      true,
}

var validTypes = map[string]bool{
	entities.TypePhotoperiod: true,
	entities.TypeAutoflower:  true,
	entities.TypeUnknown:     true,
}

type PlantCtrl struct {
	repo      repository.PlantRepository
	grows     growrepo.GrowRepository
	uploadDir string
}

func New(repo repository.PlantRepository, grows growrepo.GrowRepository, uploadDir string) *PlantCtrl {
	return &PlantCtrl{repo: repo, grows: grows, uploadDir: uploadDir}
}

type createPlantReq struct {
	GrowID        uint     `json:"grow_id"`
	EnvironmentID *uint    `json:"environment_id"`
	Name          string   `json:"name"`
	Strain        string   `json:"strain"`
	PlantType     string   `json:"plant_type"`
	Sex           string   `json:"sex"`
	StartDate     *string  `json:"start_date"` // YYYY-MM-DD
	Phase         string   `json:"phase"`
	Status        string   `json:"status"`
	HealthIssues  []string `json:"health_issues"`
	Notes         string   `json:"notes"`
}

func (h *PlantCtrl) Create(c echo.Context) error {
	uid := middleware.UID(c)
	var req createPlantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}
	// The parent grow must exist and belong to the caller.
	if _, err := h.grows.FindByID(req.GrowID, uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "grow not found"})
	}
	if req.PlantType == "" {
		req.PlantType = entities.TypeUnknown
	}
	if !validTypes[req.PlantType] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown plant_type"})
	}
	if req.Phase == "" {
		req.Phase = entities.PhaseGermination
	}
	if !validPhases[req.Phase] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown phase"})
	}
	if req.Status == "" {
		req.Status = entities.StatusHealthy
	}
	if !validStatuses[req.Status] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown status"})
	}

	var start *time.Time
	if req.StartDate != nil && *req.StartDate != "" {
		d, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "start_date must be YYYY-MM-DD"})
		}
		start = &d
	}

	now := time.Now()
	p := &entities.Plant{
		UserID:         uid,
		GrowID:         req.GrowID,
		EnvironmentID:  req.EnvironmentID,
		Name:           req.Name,
		Strain:         req.Strain,
		PlantType:      req.PlantType,
		Sex:            req.Sex,
		StartDate:      start,
		Phase:          req.Phase,
		PhaseStartedAt: &now,
		Status:         req.Status,
		HealthIssues:   req.HealthIssues,
		Notes:          req.Notes,
	}
	if err := h.repo.Create(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, h.withProgress(p))
}

func (h *PlantCtrl) List(c echo.Context) error {
	var growID *uint
	if v, err := strconv.Atoi(c.QueryParam("grow_id")); err == nil {
		g := uint(v)
		growID = &g
	}
	ps, err := h.repo.ListByUser(middleware.UID(c), growID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	out := make([]map[string]any, 0, len(ps))
	for i := range ps {
		out = append(out, h.withProgress(&ps[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlantCtrl) Get(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, h.withProgress(p))
}

type patchPlantReq struct {
	EnvironmentID *uint     `json:"environment_id"`
	Name          *string   `json:"name"`
	Strain        *string   `json:"strain"`
	PlantType     *string   `json:"plant_type"`
	Sex           *string   `json:"sex"`
	StartDate     *string   `json:"start_date"`
	Status        *string   `json:"status"`
	HealthIssues  *[]string `json:"health_issues"`
	Notes         *string   `json:"notes"`
}

func (h *PlantCtrl) Patch(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req patchPlantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name != nil {
		if *req.Name == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
		}
		p.Name = *req.Name
	}
	if req.Strain != nil {
		p.Strain = *req.Strain
	}
	if req.PlantType != nil {
		if !validTypes[*req.PlantType] {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown plant_type"})
		}
		p.PlantType = *req.PlantType
	}
	if req.Sex != nil {
		p.Sex = *req.Sex
	}
	if req.StartDate != nil {
		d, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "start_date must be YYYY-MM-DD"})
		}
		p.StartDate = &d
	}
	if req.Status != nil {
		if !validStatuses[*req.Status] {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown status"})
		}
		p.Status = *req.Status
	}
	if req.HealthIssues != nil {
		p.HealthIssues = *req.HealthIssues
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.EnvironmentID != nil {
		p.EnvironmentID = req.EnvironmentID
	}
	if err := h.repo.Update(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.withProgress(p))
}

func (h *PlantCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), middleware.UID(c)); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

type phaseReq struct {
	Phase string `json:"phase"`
}

// ChangePhase moves the plant to a new lifecycle phase, stamps
// phase_started_at and journals the transition.
func (h *PlantCtrl) ChangePhase(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	var req phaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !validPhases[req.Phase] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown phase"})
	}

	prev := p.Phase
	now := time.Now()
	p.Phase = req.Phase
	p.PhaseStartedAt = &now
	l := &entities.PlantLog{
		PlantID:  p.PlantID,
		UserID:   p.UserID,
		Type:     entities.LogPhaseChange,
		Title:    "Phase changed",
		Content:  prev + " -> " + req.Phase,
		LoggedAt: now,
	}
	if err := h.repo.ChangePhase(p, l); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, h.withProgress(p))
}

func (h *PlantCtrl) Progress(c echo.Context) error {
	p, ok := h.own(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	pct := progress.Estimate(p.Phase, p.PlantType, p.StartDate, time.Now())
	return c.JSON(http.StatusOK, map[string]int{"progress": pct})
}

func (h *PlantCtrl) own(c echo.Context) (*entities.Plant, bool) {
	id, _ := strconv.Atoi(c.Param("id"))
	p, err := h.repo.FindByID(uint(id), middleware.UID(c))
	if err != nil {
		return nil, false
	}
	return p, true
}

// withProgress shapes a plant response with its computed display progress.
func (h *PlantCtrl) withProgress(p *entities.Plant) map[string]any {
	return map[string]any{
		"plant":    p,
		"progress": progress.Estimate(p.Phase, p.PlantType, p.StartDate, time.Now()),
	}
}
