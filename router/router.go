package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	adminCtrl "growlog/pkg/admin/controllerImp"
	authCtrl "growlog/pkg/auth/controllerImp"
	envCtrl "growlog/pkg/environment/controllerImp"
	feedbackCtrl "growlog/pkg/feedback/controllerImp"
	growCtrl "growlog/pkg/grow/controllerImp"
	healthCtrl "growlog/pkg/health/controllerImp"
	"growlog/pkg/middleware"
	notifCtrl "growlog/pkg/notification/controllerImp"
	overviewCtrl "growlog/pkg/overview/controllerImp"
	plantCtrl "growlog/pkg/plant/controllerImp"
	taskCtrl "growlog/pkg/task/controllerImp"
	templateCtrl "growlog/pkg/template/controllerImp"
)

const uploadSizeLimit = "10M"

type Controllers struct {
	Auth     *authCtrl.AuthCtrl
	Admin    *adminCtrl.AdminCtrl
	Grow     *growCtrl.GrowCtrl
	Env      *envCtrl.EnvCtrl
	Plant    *plantCtrl.PlantCtrl
	Task     *taskCtrl.TaskCtrl
	Overview *overviewCtrl.OverviewCtrl
	Notif    *notifCtrl.NotificationCtrl
	Template *templateCtrl.TemplateCtrl
	Feedback *feedbackCtrl.FeedbackCtrl
	Health   *healthCtrl.HealthCtrl
}

func New(e *echo.Echo, secret []byte, c Controllers) *echo.Echo {
	e.GET("/health", c.Health.Health)

	// Public API surface
	e.GET("/api/config/features", c.Health.Features)
	e.POST("/api/auth/register", c.Auth.Register)
	e.POST("/api/auth/login", c.Auth.Login)

	api := e.Group("/api", middleware.RequireAuth(secret))

	api.GET("/auth/me", c.Auth.Me)
	api.GET("/profile/preferences", c.Auth.GetPreferences)
	api.PUT("/profile/preferences", c.Auth.PutPreferences)

	api.GET("/grows", c.Grow.List)
	api.POST("/grows", c.Grow.Create)
	api.GET("/grows/:id", c.Grow.Get)
	api.PUT("/grows/:id", c.Grow.Update)
	api.DELETE("/grows/:id", c.Grow.Delete)

	api.GET("/grows/:id/environments", c.Env.List)
	api.POST("/grows/:id/environments", c.Env.Create)
	api.PUT("/environments/:id", c.Env.Update)
	api.DELETE("/environments/:id", c.Env.Delete)
	api.POST("/grows/:id/environment", c.Env.RecordMetric)
	api.GET("/grows/:id/environment/latest", c.Env.LatestMetric)
	api.GET("/grows/:id/environment/history", c.Env.MetricHistory)

	api.GET("/plants", c.Plant.List)
	api.POST("/plants", c.Plant.Create)
	api.GET("/plants/:id", c.Plant.Get)
	api.PATCH("/plants/:id", c.Plant.Patch)
	api.DELETE("/plants/:id", c.Plant.Delete)
	api.POST("/plants/:id/phase", c.Plant.ChangePhase)
	api.GET("/plants/:id/progress", c.Plant.Progress)
	api.GET("/plants/:id/logs", c.Plant.Logs)
	api.POST("/plants/:id/logs", c.Plant.AddLog)
	api.GET("/plants/:id/metrics", c.Plant.Metrics)
	api.POST("/plants/:id/metrics", c.Plant.AddMetric)
	api.GET("/plants/:id/metrics/export", c.Plant.ExportMetrics)
	api.GET("/plants/:id/photos", c.Plant.Photos)
	api.POST("/plants/:id/photos", c.Plant.AddPhoto,
		echoMiddleware.BodyLimit(uploadSizeLimit))

	api.GET("/tasks", c.Task.List)
	api.POST("/tasks", c.Task.Create)
	api.PATCH("/tasks/:id", c.Task.Patch)
	api.DELETE("/tasks/:id", c.Task.Delete)
	api.POST("/tasks/:id/complete", c.Task.Complete)

	api.GET("/overview", c.Overview.Get)

	api.GET("/notifications", c.Notif.List)
	api.POST("/notifications/:id/read", c.Notif.MarkRead)
	api.POST("/notifications/read-all", c.Notif.MarkAllRead)

	api.GET("/templates/plants", c.Template.ListPlants)

	api.POST("/feedback", c.Feedback.Submit)

	admin := api.Group("/admin", middleware.RequireAdmin())
	admin.GET("/users", c.Admin.ListUsers)
	admin.PATCH("/users/:id/role", c.Admin.UpdateRole)

	return e
}
