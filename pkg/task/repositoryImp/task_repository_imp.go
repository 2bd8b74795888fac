package repositoryImp

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/task/recurrence"
	"growlog/pkg/task/repository"
)

type taskRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TaskRepository { return &taskRepo{db} }

func (r *taskRepo) Create(t *entities.Task) error { return r.db.Create(t).Error }

func (r *taskRepo) FindByID(id, uid uint) (*entities.Task, error) {
	var t entities.Task
	if err := r.db.Where("task_id = ? AND user_id = ?", id, uid).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) ListByUser(uid uint, status string) ([]entities.Task, error) {
	q := r.db.Where("user_id = ?", uid)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var ts []entities.Task
	return ts, q.Order("due_at ASC").Find(&ts).Error
}

func (r *taskRepo) Update(t *entities.Task) error { return r.db.Save(t).Error }

func (r *taskRepo) Delete(id, uid uint) error {
	res := r.db.Where("task_id = ? AND user_id = ?", id, uid).Delete(&entities.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepo) Complete(id, uid uint, now time.Time) (*entities.Task, *entities.Task, error) {
	var done, next *entities.Task
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var t entities.Task
		if err := tx.Where("task_id = ? AND user_id = ?", id, uid).First(&t).Error; err != nil {
			return err
		}
		done = &t
		if t.Status == entities.TaskDone {
			// Already completed; do not spawn a second successor.
			return nil
		}

		t.Status = entities.TaskDone
		t.CompletedAt = &now
		if err := tx.Save(&t).Error; err != nil {
			return err
		}

		succ, ok := recurrence.Successor(&t)
		if !ok {
			return nil
		}
		if err := tx.Create(succ).Error; err != nil {
			return err
		}
		next = succ

		if t.Notify {
			n := entities.Notification{
				UserID:  t.UserID,
				Title:   "Task rescheduled",
				Message: fmt.Sprintf("%q is next due %s", t.Title, succ.DueAt.Format("2006-01-02")),
				Type:    entities.NotifyInfo,
			}
			if err := tx.Create(&n).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return done, next, nil
}
