package entities

import "time"

const (
	TaskOpen = "OPEN"
	TaskDone = "DONE"
)

// Recognized repeat rules. Matching is case-insensitive; anything else
// spawns no successor.
const (
	RepeatDaily      = "DAILY"
	RepeatWeekly     = "WEEKLY"
	RepeatEvery3Days = "EVERY_3_DAYS"
	RepeatMonthly    = "MONTHLY"
)

type Task struct {
	TaskID        uint       `gorm:"primaryKey" json:"task_id"`
	UserID        uint       `gorm:"index" json:"user_id"`
	GrowID        *uint      `gorm:"index" json:"grow_id"`
	PlantID       *uint      `gorm:"index" json:"plant_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DueAt         time.Time  `gorm:"index" json:"due_at"`
	RepeatRule    string     `json:"repeat_rule"` // empty = one-shot
	Notify        bool       `json:"notify"`
	LeadTimeHours int        `json:"lead_time_hours"`
	Priority      string     `json:"priority"` // LOW|MEDIUM|HIGH
	Status        string     `gorm:"index" json:"status"`
	CompletedAt   *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
