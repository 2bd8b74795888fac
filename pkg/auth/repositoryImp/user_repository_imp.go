package repositoryImp

import (
	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Update(u *entities.User) error { return r.db.Save(u).Error }

func (r *userRepo) List() ([]entities.User, error) {
	var us []entities.User
	return us, r.db.Order("user_id ASC").Find(&us).Error
}

func (r *userRepo) Count() (int64, error) {
	var n int64
	return n, r.db.Model(&entities.User{}).Count(&n).Error
}
