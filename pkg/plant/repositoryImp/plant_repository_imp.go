package repositoryImp

import (
	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/plant/repository"
)

type plantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlantRepository { return &plantRepo{db} }

func (r *plantRepo) Create(p *entities.Plant) error { return r.db.Create(p).Error }

func (r *plantRepo) FindByID(id, uid uint) (*entities.Plant, error) {
	var p entities.Plant
	if err := r.db.Where("plant_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plantRepo) ListByUser(uid uint, growID *uint) ([]entities.Plant, error) {
	q := r.db.Where("user_id = ?", uid)
	if growID != nil {
		q = q.Where("grow_id = ?", *growID)
	}
	var ps []entities.Plant
	return ps, q.Order("plant_id ASC").Find(&ps).Error
}

func (r *plantRepo) Update(p *entities.Plant) error { return r.db.Save(p).Error }

func (r *plantRepo) ChangePhase(p *entities.Plant, l *entities.PlantLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return tx.Create(l).Error
	})
}

func (r *plantRepo) Delete(id, uid uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var p entities.Plant
		if err := tx.Where("plant_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
			return err
		}
		for _, dep := range []any{
			&entities.PlantMetric{}, &entities.PlantLog{}, &entities.PlantPhoto{},
		} {
			if err := tx.Where("plant_id = ?", id).Delete(dep).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&p).Error
	})
}

func (r *plantRepo) AddMetric(m *entities.PlantMetric) error { return r.db.Create(m).Error }

func (r *plantRepo) Metrics(plantID uint) ([]entities.PlantMetric, error) {
	var ms []entities.PlantMetric
	return ms, r.db.Where("plant_id = ?", plantID).Order("recorded_at ASC").Find(&ms).Error
}

func (r *plantRepo) AddLog(l *entities.PlantLog) error { return r.db.Create(l).Error }

func (r *plantRepo) Logs(plantID uint) ([]entities.PlantLog, error) {
	var ls []entities.PlantLog
	return ls, r.db.Where("plant_id = ?", plantID).Order("logged_at DESC").Find(&ls).Error
}

func (r *plantRepo) AddPhoto(p *entities.PlantPhoto) error { return r.db.Create(p).Error }

func (r *plantRepo) Photos(plantID uint) ([]entities.PlantPhoto, error) {
	var ps []entities.PlantPhoto
	return ps, r.db.Where("plant_id = ?", plantID).Order("created_at DESC").Find(&ps).Error
}
