package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"growlog/config"
	"growlog/database"
	"growlog/router"

	adminCtrlImp "growlog/pkg/admin/controllerImp"
	authCtrlImp "growlog/pkg/auth/controllerImp"
	userRepoImp "growlog/pkg/auth/repositoryImp"
	envCtrlImp "growlog/pkg/environment/controllerImp"
	envRepoImp "growlog/pkg/environment/repositoryImp"
	feedbackCtrlImp "growlog/pkg/feedback/controllerImp"
	growCtrlImp "growlog/pkg/grow/controllerImp"
	growRepoImp "growlog/pkg/grow/repositoryImp"
	healthCtrlImp "growlog/pkg/health/controllerImp"
	notifCtrlImp "growlog/pkg/notification/controllerImp"
	notifRepoImp "growlog/pkg/notification/repositoryImp"
	overviewCtrlImp "growlog/pkg/overview/controllerImp"
	overviewRepoImp "growlog/pkg/overview/repositoryImp"
	overviewSvcImp "growlog/pkg/overview/serviceImp"
	plantCtrlImp "growlog/pkg/plant/controllerImp"
	plantRepoImp "growlog/pkg/plant/repositoryImp"
	taskCtrlImp "growlog/pkg/task/controllerImp"
	taskRepoImp "growlog/pkg/task/repositoryImp"
	templateCtrlImp "growlog/pkg/template/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + seed
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Static("/static", "static")
	e.Static("/uploads", cfg.UploadDir)
	e.File("/", "static/index.html")

	// 4) Repositories
	users := userRepoImp.New(db)
	grows := growRepoImp.New(db)
	envs := envRepoImp.New(db)
	plants := plantRepoImp.New(db)
	tasks := taskRepoImp.New(db)
	notifs := notifRepoImp.New(db)

	// 5) Controllers
	secret := []byte(cfg.JWTSecret)
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour
	ctrls := router.Controllers{
		Auth:     authCtrlImp.New(users, secret, ttl, cfg.EnableSignup),
		Admin:    adminCtrlImp.New(users),
		Grow:     growCtrlImp.New(grows),
		Env:      envCtrlImp.New(envs, grows),
		Plant:    plantCtrlImp.New(plants, grows, cfg.UploadDir),
		Task:     taskCtrlImp.New(tasks),
		Overview: overviewCtrlImp.New(overviewSvcImp.New(overviewRepoImp.New(db))),
		Notif:    notifCtrlImp.New(notifs),
		Template: templateCtrlImp.New(db),
		Feedback: feedbackCtrlImp.New(cfg.FeedbackRepo, cfg.FeedbackToken),
		Health:   healthCtrlImp.New(db, cfg.Features()),
	}

	// 6) Routes + start
	r := router.New(e, secret, ctrls)
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
