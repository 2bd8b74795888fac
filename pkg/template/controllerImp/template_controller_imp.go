package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"growlog/entities"
)

// TemplateCtrl serves the read-only plant template catalog used to prefill
// creation forms.
type TemplateCtrl struct{ db *gorm.DB }

func New(db *gorm.DB) *TemplateCtrl { return &TemplateCtrl{db} }

func (h *TemplateCtrl) ListPlants(c echo.Context) error {
	var ts []entities.PlantTemplate
	if err := h.db.Order("name ASC").Find(&ts).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, ts)
}
