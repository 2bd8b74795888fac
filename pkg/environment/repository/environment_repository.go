package repository

import "growlog/entities"

type EnvironmentRepository interface {
	Create(e *entities.Environment) error
	ListByGrow(growID uint) ([]entities.Environment, error)
	// FindByID resolves ownership through the parent grow.
	FindByID(id, uid uint) (*entities.Environment, error)
	Update(e *entities.Environment) error
	Delete(id, uid uint) error

	RecordMetric(m *entities.EnvironmentMetric) error
	LatestMetric(growID uint) (*entities.EnvironmentMetric, error)
	MetricHistory(growID uint, days int) ([]entities.EnvironmentMetric, error)
}
