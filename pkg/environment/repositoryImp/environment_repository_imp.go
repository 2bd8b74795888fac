package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/environment/repository"
)

type envRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EnvironmentRepository { return &envRepo{db} }

func (r *envRepo) Create(e *entities.Environment) error { return r.db.Create(e).Error }

func (r *envRepo) ListByGrow(growID uint) ([]entities.Environment, error) {
	var es []entities.Environment
	return es, r.db.Where("grow_id = ?", growID).Order("environment_id ASC").Find(&es).Error
}

func (r *envRepo) FindByID(id, uid uint) (*entities.Environment, error) {
	var e entities.Environment
	err := r.db.
		Joins("JOIN grows ON grows.grow_id = environments.grow_id").
		Where("environments.environment_id = ? AND grows.user_id = ?", id, uid).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *envRepo) Update(e *entities.Environment) error { return r.db.Save(e).Error }

func (r *envRepo) Delete(id, uid uint) error {
	e, err := r.FindByID(id, uid)
	if err != nil {
		return err
	}
	return r.db.Delete(e).Error
}

func (r *envRepo) RecordMetric(m *entities.EnvironmentMetric) error { return r.db.Create(m).Error }

func (r *envRepo) LatestMetric(growID uint) (*entities.EnvironmentMetric, error) {
	var m entities.EnvironmentMetric
	err := r.db.Where("grow_id = ?", growID).Order("recorded_at DESC").First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *envRepo) MetricHistory(growID uint, days int) ([]entities.EnvironmentMetric, error) {
	var ms []entities.EnvironmentMetric
	cut := time.Now().AddDate(0, 0, -days)
	return ms, r.db.Where("grow_id = ? AND recorded_at >= ?", growID, cut).
		Order("recorded_at ASC").Find(&ms).Error
}
