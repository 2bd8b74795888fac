package entities

import "time"

// Lifecycle phases, in order. Phase tracks where the plant is in its
// lifecycle; Status tracks health. The two axes are independent.
const (
	PhaseGermination = "GERMINATION"
	PhaseVegetative  = "VEGETATIVE"
	PhaseFlowering   = "FLOWERING"
	PhaseDrying      = "DRYING"
	PhaseCured       = "CURED"
	PhaseFinished    = "FINISHED"
)

const (
	StatusHealthy   = "HEALTHY"
	StatusIssues    = "ISSUES"
	StatusSick      = "SICK"
	StatusHarvested = "HARVESTED"
	StatusDead      = "DEAD"
)

const (
	TypePhotoperiod = "PHOTOPERIOD"
	TypeAutoflower  = "AUTOFLOWER"
	TypeUnknown     = "UNKNOWN"
)

type Plant struct {
	PlantID        uint       `gorm:"primaryKey" json:"plant_id"`
	UserID         uint       `gorm:"index" json:"user_id"`
	GrowID         uint       `gorm:"index" json:"grow_id"`
	EnvironmentID  *uint      `json:"environment_id"`
	Name           string     `json:"name"`
	Strain         string     `json:"strain"`
	PlantType      string     `json:"plant_type"` // PHOTOPERIOD|AUTOFLOWER|UNKNOWN
	Sex            string     `json:"sex"`
	StartDate      *time.Time `json:"start_date"`
	Phase          string     `json:"phase"`
	PhaseStartedAt *time.Time `json:"phase_started_at"`
	Status         string     `json:"status"`
	HealthIssues   []string   `gorm:"serializer:json" json:"health_issues,omitempty"`
	Notes          string     `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlantMetric is an append-only growth sample, one row per recording event.
type PlantMetric struct {
	MetricID    uint      `gorm:"primaryKey" json:"metric_id"`
	PlantID     uint      `gorm:"index" json:"plant_id"`
	Height      *float64  `json:"height"` // cm
	NodeCount   *int      `json:"node_count"`
	PH          *float64  `json:"ph"`
	EC          *float64  `json:"ec"`
	Temperature *float64  `json:"temperature"`
	Humidity    *float64  `json:"humidity"`
	Notes       string    `json:"notes"`
	RecordedAt  time.Time `gorm:"index" json:"recorded_at"`

	CreatedAt time.Time `json:"created_at"`
}

const (
	LogWater       = "WATER"
	LogNutrient    = "NUTRIENT"
	LogPrune       = "PRUNE"
	LogIssue       = "ISSUE"
	LogNote        = "NOTE"
	LogPhaseChange = "PHASE_CHANGE"
)

// PlantLog is an append-only journal entry. Type is free-form; the constants
// above are the vocabulary the client offers.
type PlantLog struct {
	LogID    uint           `gorm:"primaryKey" json:"log_id"`
	PlantID  uint           `gorm:"index" json:"plant_id"`
	UserID   uint           `json:"user_id"`
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Content  string         `json:"content"`
	Tags     []string       `gorm:"serializer:json" json:"tags,omitempty"`
	Metrics  map[string]any `gorm:"serializer:json" json:"metrics,omitempty"`
	LoggedAt time.Time      `gorm:"index" json:"logged_at"`

	CreatedAt time.Time `json:"created_at"`
}

type PlantPhoto struct {
	PhotoID  uint       `gorm:"primaryKey" json:"photo_id"`
	PlantID  uint       `gorm:"index" json:"plant_id"`
	UserID   uint       `json:"user_id"`
	FilePath string     `json:"file_path"` // served under /uploads
	Caption  string     `json:"caption"`
	TakenAt  *time.Time `json:"taken_at"`

	CreatedAt time.Time `json:"created_at"`
}
