package repository

import "growlog/entities"

type NotificationRepository interface {
	Create(n *entities.Notification) error
	// Recent returns the newest notifications, capped.
	Recent(uid uint, limit int) ([]entities.Notification, error)
	MarkRead(id, uid uint) error
	MarkAllRead(uid uint) error
}
