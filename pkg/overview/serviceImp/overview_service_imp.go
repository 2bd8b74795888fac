package serviceImp

import (
	"math"
	"sort"
	"time"

	"growlog/entities"
	"growlog/pkg/overview/repository"
	"growlog/pkg/overview/service"
)

// Defaults emitted when neither environment nor plant metrics exist.
const (
	defaultTemp = 24.0
	defaultRH   = 60.0
	defaultCO2  = 400.0
)

const (
	trendBuckets   = 5
	trendBucketLen = 7 // days
)

type overviewSvc struct{ repo repository.OverviewRepository }

func New(repo repository.OverviewRepository) service.OverviewService {
	return &overviewSvc{repo: repo}
}

// Build assembles the dashboard snapshot. Every section degrades
// independently: a failed or empty query yields that section's zero value
// and the others are still computed.
func (s *overviewSvc) Build(uid uint, now time.Time) *service.Overview {
	out := &service.Overview{
		Trend:    make([]service.TrendPoint, 0, trendBuckets),
		Activity: []service.ActivityItem{},
		Overdue:  []entities.Task{},
	}

	if counts, err := s.repo.PlantStatusCounts(uid); err == nil {
		out.Counts = countsFrom(counts)
	}

	out.Environment = s.environment(uid)

	since := now.AddDate(0, 0, -trendBuckets*trendBucketLen)
	samples, err := s.repo.HeightSamples(uid, since)
	if err != nil {
		samples = nil
	}
	out.Trend = Trend(samples, now)

	out.Activity = s.activity(uid)

	if overdue, err := s.repo.OverdueTasks(uid, now, 5); err == nil {
		out.Overdue = overdue
	}

	return out
}

func countsFrom(byStatus map[string]int64) service.Counts {
	var c service.Counts
	for status, n := range byStatus {
		c.Total += n
		if status != entities.StatusHarvested && status != entities.StatusDead {
			c.Active += n
		}
		if status == entities.StatusHealthy {
			c.Healthy += n
		}
		if status == entities.StatusDead || status == entities.StatusSick {
			c.Waste += n
		}
	}
	return c
}

// environment resolves the snapshot through the fallback chain: freshest
// environment metric, then freshest plant climate sample, then defaults.
func (s *overviewSvc) environment(uid uint) service.EnvSnapshot {
	if m, err := s.repo.LatestEnvironmentMetric(uid); err == nil {
		snap := service.EnvSnapshot{
			Temperature: m.Temperature,
			Humidity:    m.Humidity,
			CO2:         defaultCO2,
			VPD:         &m.VPD,
			Source:      "environment",
			RecordedAt:  &m.RecordedAt,
		}
		if m.CO2 != nil {
			snap.CO2 = *m.CO2
		}
		return snap
	}
	if m, err := s.repo.LatestPlantClimate(uid); err == nil {
		snap := service.EnvSnapshot{
			Temperature: defaultTemp,
			Humidity:    defaultRH,
			CO2:         defaultCO2,
			Source:      "plants",
			RecordedAt:  &m.RecordedAt,
		}
		if m.Temperature != nil {
			snap.Temperature = *m.Temperature
		}
		if m.Humidity != nil {
			snap.Humidity = *m.Humidity
		}
		return snap
	}
	return service.EnvSnapshot{
		Temperature: defaultTemp,
		Humidity:    defaultRH,
		CO2:         defaultCO2,
		Source:      "default",
	}
}

// Trend buckets height samples from the last 35 days into 5 weekly averages,
// oldest bucket first. Bucket 4 covers the most recent 7 days. Buckets
// without samples report 0.
func Trend(samples []entities.PlantMetric, now time.Time) []service.TrendPoint {
	sums := make([]float64, trendBuckets)
	counts := make([]int, trendBuckets)
	for _, m := range samples {
		if m.Height == nil {
			continue
		}
		days := int(math.Floor(now.Sub(m.RecordedAt).Hours() / 24))
		if days < 0 || days >= trendBuckets*trendBucketLen {
			continue
		}
		b := trendBuckets - 1 - days/trendBucketLen
		sums[b] += *m.Height
		counts[b]++
	}

	out := make([]service.TrendPoint, trendBuckets)
	for i := range out {
		// oldest bucket first: label counts back (4-i) weeks from today
		label := now.AddDate(0, 0, -(trendBuckets-1-i)*trendBucketLen).Format("2006-01-02")
		v := 0
		if counts[i] > 0 {
			v = int(math.Round(sums[i] / float64(counts[i])))
		}
		out[i] = service.TrendPoint{Label: label, Height: v}
	}
	return out
}

// activity merges the most recent logs and photos into one feed, newest
// first, truncated to 10 entries.
func (s *overviewSvc) activity(uid uint) []service.ActivityItem {
	items := []service.ActivityItem{}
	if logs, err := s.repo.RecentLogs(uid, 5); err == nil {
		for _, l := range logs {
			title := l.Title
			if title == "" {
				title = l.Type
			}
			items = append(items, service.ActivityItem{
				Kind: "log", ID: l.LogID, PlantID: l.PlantID,
				Title: title, Timestamp: l.LoggedAt,
			})
		}
	}
	if photos, err := s.repo.RecentPhotos(uid, 5); err == nil {
		for _, p := range photos {
			title := p.Caption
			if title == "" {
				title = "Photo"
			}
			items = append(items, service.ActivityItem{
				Kind: "photo", ID: p.PhotoID, PlantID: p.PlantID,
				Title: title, Timestamp: p.CreatedAt,
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if len(items) > 10 {
		items = items[:10]
	}
	return items
}
