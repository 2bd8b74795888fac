package repository

import (
	"errors"

	"growlog/entities"
)

// ErrHasPlants is returned when deleting a grow that still owns plants.
var ErrHasPlants = errors.New("grow has dependent plants")

type GrowRepository interface {
	Create(g *entities.Grow) error
	FindByID(id, uid uint) (*entities.Grow, error)
	ListByUser(uid uint) ([]entities.Grow, error)
	Update(g *entities.Grow) error
	// Delete removes the grow; fails with ErrHasPlants while plants reference it.
	Delete(id, uid uint) error
}
