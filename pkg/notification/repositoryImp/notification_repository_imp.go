package repositoryImp

import (
	"gorm.io/gorm"

	"growlog/entities"
	"growlog/pkg/notification/repository"
)

type notifRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NotificationRepository { return &notifRepo{db} }

func (r *notifRepo) Create(n *entities.Notification) error { return r.db.Create(n).Error }

func (r *notifRepo) Recent(uid uint, limit int) ([]entities.Notification, error) {
	var ns []entities.Notification
	return ns, r.db.Where("user_id = ?", uid).
		Order("created_at DESC").Limit(limit).Find(&ns).Error
}

func (r *notifRepo) MarkRead(id, uid uint) error {
	res := r.db.Model(&entities.Notification{}).
		Where("notification_id = ? AND user_id = ?", id, uid).
		Update("read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notifRepo) MarkAllRead(uid uint) error {
	return r.db.Model(&entities.Notification{}).
		Where("user_id = ? AND read = ?", uid, false).
		Update("read", true).Error
}
