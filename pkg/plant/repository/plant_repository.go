package repository

import "growlog/entities"

type PlantRepository interface {
	Create(p *entities.Plant) error
	FindByID(id, uid uint) (*entities.Plant, error)
	ListByUser(uid uint, growID *uint) ([]entities.Plant, error)
	Update(p *entities.Plant) error
	// ChangePhase persists the phase transition and its journal entry in one
	// transaction; neither lands without the other.
	ChangePhase(p *entities.Plant, l *entities.PlantLog) error
	// Delete removes the plant together with its metrics, logs and photos.
	Delete(id, uid uint) error

	AddMetric(m *entities.PlantMetric) error
	Metrics(plantID uint) ([]entities.PlantMetric, error)
	AddLog(l *entities.PlantLog) error
	Logs(plantID uint) ([]entities.PlantLog, error)
	AddPhoto(p *entities.PlantPhoto) error
	Photos(plantID uint) ([]entities.PlantPhoto, error)
}
