package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/overview/repository"
)

type overviewRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OverviewRepository { return &overviewRepo{db} }

func (r *overviewRepo) PlantStatusCounts(uid uint) (map[string]int64, error) {
	var rows []struct {
		Status string
		N      int64
	}
	err := r.db.Model(&entities.Plant{}).
		Select("status, COUNT(*) AS n").
		Where("user_id = ?", uid).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

func (r *overviewRepo) LatestEnvironmentMetric(uid uint) (*entities.EnvironmentMetric, error) {
	var m entities.EnvironmentMetric
	err := r.db.
		Joins("JOIN grows ON grows.grow_id = environment_metrics.grow_id").
		Where("grows.user_id = ?", uid).
		Order("environment_metrics.recorded_at DESC").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *overviewRepo) LatestPlantClimate(uid uint) (*entities.PlantMetric, error) {
	var m entities.PlantMetric
	err := r.db.
		Joins("JOIN plants ON plants.plant_id = plant_metrics.plant_id").
		Where("plants.user_id = ? AND plants.status NOT IN ?", uid,
			[]string{entities.StatusHarvested, entities.StatusDead}).
		Where("plant_metrics.temperature IS NOT NULL").
		Order("plant_metrics.recorded_at DESC").
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *overviewRepo) HeightSamples(uid uint, since time.Time) ([]entities.PlantMetric, error) {
	var ms []entities.PlantMetric
	err := r.db.
		Joins("JOIN plants ON plants.plant_id = plant_metrics.plant_id").
		Where("plants.user_id = ?", uid).
		Where("plant_metrics.height IS NOT NULL AND plant_metrics.recorded_at >= ?", since).
		Find(&ms).Error
	return ms, err
}

func (r *overviewRepo) RecentLogs(uid uint, limit int) ([]entities.PlantLog, error) {
	var ls []entities.PlantLog
	err := r.db.
		Joins("JOIN plants ON plants.plant_id = plant_logs.plant_id").
		Where("plants.user_id = ?", uid).
		Order("plant_logs.logged_at DESC").
		Limit(limit).
		Find(&ls).Error
	return ls, err
}

func (r *overviewRepo) RecentPhotos(uid uint, limit int) ([]entities.PlantPhoto, error) {
	var ps []entities.PlantPhoto
	err := r.db.
		Joins("JOIN plants ON plants.plant_id = plant_photos.plant_id").
		Where("plants.user_id = ?", uid).
		Order("plant_photos.created_at DESC").
		Limit(limit).
		Find(&ps).Error
	return ps, err
}

func (r *overviewRepo) OverdueTasks(uid uint, now time.Time, limit int) ([]entities.Task, error) {
	var ts []entities.Task
	err := r.db.
		Where("user_id = ? AND status = ? AND due_at < ?", uid, entities.TaskOpen, now).
		Order("due_at ASC").
		Limit(limit).
		Find(&ts).Error
	return ts, err
}
