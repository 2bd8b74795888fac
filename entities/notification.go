package entities

import "time"

const (
	NotifyInfo    = "info"
	NotifySuccess = "success"
	NotifyWarning = "warning"
	NotifyError   = "error"
)

type Notification struct {
	NotificationID uint   `gorm:"primaryKey" json:"notification_id"`
	UserID         uint   `gorm:"index" json:"user_id"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Type           string `json:"type"` // info|success|warning|error
	Read           bool   `json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
