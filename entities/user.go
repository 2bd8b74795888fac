package entities

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	UserID       uint           `gorm:"primaryKey" json:"user_id"`
	Email        string         `gorm:"uniqueIndex" json:"email"`
	PasswordHash string         `json:"-"`
	Role         string         `json:"role"` // ADMIN|USER
	Preferences  map[string]any `gorm:"serializer:json" json:"preferences,omitempty"`
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
