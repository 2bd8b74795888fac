package progress

import (
	"math"
	"time"

	"growlog/entities"
)

// Phase segment boundaries for photoperiod plants: germination runs 14 days
// to 10%, vegetative 60 days to 50%, flowering 70 days to 90%. Drying is a
// fixed 95 and cured/finished are terminal. Autoflowers are modeled as a
// linear 90-day lifecycle.
const (
	germDays   = 14
	vegDays    = 60
	flowerDays = 70
	autoDays   = 90
)

// Estimate maps a plant's phase, type and age to a 0-100 display percentage.
// Pure; callers pass "now" so the result is reproducible.
func Estimate(phase, plantType string, startDate *time.Time, now time.Time) int {
	if startDate == nil {
		return 0
	}
	switch phase {
	case entities.PhaseFinished, entities.PhaseCured:
		return 100
	case entities.PhaseDrying:
		return 95
	}

	age := int(math.Floor(now.Sub(*startDate).Hours() / 24))

	if plantType == entities.TypeAutoflower {
		return min(100, round(float64(age)/autoDays*100))
	}
	if plantType == entities.TypePhotoperiod {
		switch phase {
		case entities.PhaseGermination:
			return min(10, round(float64(age)/germDays*10))
		case entities.PhaseVegetative:
			return min(50, 10+round(float64(age-germDays)/vegDays*40))
		case entities.PhaseFlowering:
			return min(90, 50+round(float64(age-germDays-vegDays)/flowerDays*40))
		}
	}
	return 0
}

func round(x float64) int { return int(math.Round(x)) }
