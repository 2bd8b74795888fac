package repository

import (
	"time"

	"growlog/entities"
)

type TaskRepository interface {
	Create(t *entities.Task) error
	FindByID(id, uid uint) (*entities.Task, error)
	ListByUser(uid uint, status string) ([]entities.Task, error)
	Update(t *entities.Task) error
	Delete(id, uid uint) error

	// Complete marks the task DONE and, for repeating tasks, inserts its
	// successor in the same transaction. Completing an already-DONE task is
	// a no-op; the returned successor is nil when none was spawned.
	Complete(id, uid uint, now time.Time) (*entities.Task, *entities.Task, error)
}
