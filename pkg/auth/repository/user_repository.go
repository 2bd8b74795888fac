package repository

import "growlog/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByEmail(email string) (*entities.User, error)
	FindByID(id uint) (*entities.User, error)
	Update(u *entities.User) error
	List() ([]entities.User, error)
	Count() (int64, error)
}
