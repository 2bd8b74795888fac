package repository

import (
	"time"

	"growlog/entities"
)

type OverviewRepository interface {
	PlantStatusCounts(uid uint) (map[string]int64, error)
	LatestEnvironmentMetric(uid uint) (*entities.EnvironmentMetric, error)
	// LatestPlantClimate returns the freshest plant metric carrying a
	// temperature, across the user's active plants.
	LatestPlantClimate(uid uint) (*entities.PlantMetric, error)
	HeightSamples(uid uint, since time.Time) ([]entities.PlantMetric, error)
	RecentLogs(uid uint, limit int) ([]entities.PlantLog, error)
	RecentPhotos(uid uint, limit int) ([]entities.PlantPhoto, error)
	OverdueTasks(uid uint, now time.Time, limit int) ([]entities.Task, error)
}
