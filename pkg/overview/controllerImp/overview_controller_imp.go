package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"growlog/pkg/middleware"
	"growlog/pkg/overview/service"
)

type OverviewCtrl struct{ svc service.OverviewService }

func New(svc service.OverviewService) *OverviewCtrl { return &OverviewCtrl{svc} }

func (h *OverviewCtrl) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Build(middleware.UID(c), time.Now()))
}
