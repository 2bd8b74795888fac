package entities

import "time"

const (
	LocationIndoor  = "INDOOR"
	LocationOutdoor = "OUTDOOR"
)

type Grow struct {
	GrowID       uint   `gorm:"primaryKey" json:"grow_id"`
	UserID       uint   `gorm:"index" json:"user_id"`
	Name         string `json:"name"`
	LocationType string `json:"location_type"` // INDOOR|OUTDOOR
	Notes        string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Environment struct {
	EnvironmentID uint     `gorm:"primaryKey" json:"environment_id"`
	GrowID        uint     `gorm:"index" json:"grow_id"`
	Name          string   `json:"name"`
	Medium        string   `json:"medium"`         // soil|coco|hydro|...
	LightSchedule string   `json:"light_schedule"` // e.g. 18/6
	TargetTemp    *float64 `json:"target_temp"`
	TargetRH      *float64 `json:"target_rh"`
	TargetCO2     *float64 `json:"target_co2"`
	Notes         string   `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnvironmentMetric is an append-only climate sample for a grow. VPD is
// derived at write time when the caller does not supply it.
type EnvironmentMetric struct {
	MetricID    uint      `gorm:"primaryKey" json:"metric_id"`
	GrowID      uint      `gorm:"index" json:"grow_id"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	CO2         *float64  `json:"co2"`
	VPD         float64   `json:"vpd"`
	RecordedAt  time.Time `gorm:"index" json:"recorded_at"`

	CreatedAt time.Time `json:"created_at"`
}
