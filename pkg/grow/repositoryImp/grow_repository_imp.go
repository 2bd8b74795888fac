package repositoryImp

import (
	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/grow/repository"
)

type growRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GrowRepository { return &growRepo{db} }

func (r *growRepo) Create(g *entities.Grow) error { return r.db.Create(g).Error }

func (r *growRepo) FindByID(id, uid uint) (*entities.Grow, error) {
	var g entities.Grow
	if err := r.db.Where("grow_id = ? AND user_id = ?", id, uid).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *growRepo) ListByUser(uid uint) ([]entities.Grow, error) {
	var gs []entities.Grow
	return gs, r.db.Where("user_id = ?", uid).Order("grow_id ASC").Find(&gs).Error
}

func (r *growRepo) Update(g *entities.Grow) error { return r.db.Save(g).Error }

func (r *growRepo) Delete(id, uid uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var g entities.Grow
		if err := tx.Where("grow_id = ? AND user_id = ?", id, uid).First(&g).Error; err != nil {
			return err
		}
		var plants int64
		if err := tx.Model(&entities.Plant{}).Where("grow_id = ?", id).Count(&plants).Error; err != nil {
			return err
		}
		if plants > 0 {
			return repository.ErrHasPlants
		}
		if err := tx.Where("grow_id = ?", id).Delete(&entities.Environment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("grow_id = ?", id).Delete(&entities.EnvironmentMetric{}).Error; err != nil {
			return err
		}
		return tx.Delete(&g).Error
	})
}
