package service

import (
	"time"

	"growlog/entities"
)

// Overview is the dashboard snapshot for one user. Its five sections are
// computed independently; an empty data source degrades a section to its
// zero/default value instead of failing the whole payload.
type Overview struct {
	Counts      Counts         `json:"counts"`
	Environment EnvSnapshot    `json:"environment"`
	Trend       []TrendPoint   `json:"trend"`
	Activity    []ActivityItem `json:"activity"`
	Overdue     []entities.Task `json:"overdue"`
}

type Counts struct {
	Total   int64 `json:"total"`
	Active  int64 `json:"active"`
	Healthy int64 `json:"healthy"`
	Waste   int64 `json:"waste"`
}

// EnvSnapshot reports the freshest climate reading available. Source tells
// the client which fallback tier produced it: "environment", "plants" or
// "default".
type EnvSnapshot struct {
	Temperature float64    `json:"temperature"`
	Humidity    float64    `json:"humidity"`
	CO2         float64    `json:"co2"`
	VPD         *float64   `json:"vpd,omitempty"`
	Source      string     `json:"source"`
	RecordedAt  *time.Time `json:"recorded_at,omitempty"`
}

// TrendPoint is one weekly bucket of the growth trend, labeled by the
// calendar date its week counts back from.
type TrendPoint struct {
	Label  string `json:"label"` // YYYY-MM-DD
	Height int    `json:"height"`
}

type ActivityItem struct {
	Kind      string    `json:"kind"` // log|photo
	ID        uint      `json:"id"`
	PlantID   uint      `json:"plant_id"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

type OverviewService interface {
	Build(uid uint, now time.Time) *Overview
}
