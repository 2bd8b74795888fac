package progress_test

import (
	"testing"
	"time"

	"growlog/entities"
	"growlog/pkg/plant/progress"
)

func daysAgo(now time.Time, d int) *time.Time {
	t := now.AddDate(0, 0, -d)
	return &t
}

func TestEstimateTerminalPhases(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, phase := range []string{entities.PhaseFinished, entities.PhaseCured} {
		for _, typ := range []string{entities.TypePhotoperiod, entities.TypeAutoflower, entities.TypeUnknown} {
			if got := progress.Estimate(phase, typ, daysAgo(now, 500), now); got != 100 {
				t.Errorf("Estimate(%s, %s) = %d, want 100", phase, typ, got)
			}
		}
	}
	if got := progress.Estimate(entities.PhaseDrying, entities.TypePhotoperiod, daysAgo(now, 100), now); got != 95 {
		t.Errorf("drying = %d, want 95", got)
	}
}

func TestEstimateMissingStartDate(t *testing.T) {
	now := time.Now()
	if got := progress.Estimate(entities.PhaseVegetative, entities.TypeAutoflower, nil, now); got != 0 {
		t.Errorf("nil start date = %d, want 0", got)
	}
}

func TestEstimateAutoflower(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		age  int
		want int
	}{
		{0, 0},
		{45, 50}, // round(45/90*100)
		{90, 100},
		{180, 100}, // capped
	}
	for _, c := range cases {
		got := progress.Estimate(entities.PhaseVegetative, entities.TypeAutoflower, daysAgo(now, c.age), now)
		if got != c.want {
			t.Errorf("autoflower age=%d: got %d, want %d", c.age, got, c.want)
		}
	}
}

func TestEstimatePhotoperiodGermination(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	prev := -1
	for age := 0; age <= 14; age++ {
		got := progress.Estimate(entities.PhaseGermination, entities.TypePhotoperiod, daysAgo(now, age), now)
		want := int(float64(age)/14*10 + 0.5)
		if got != want {
			t.Errorf("germination age=%d: got %d, want %d", age, got, want)
		}
		if got < prev {
			t.Errorf("germination progress decreased at age %d: %d -> %d", age, prev, got)
		}
		if got > 10 {
			t.Errorf("germination progress exceeded cap at age %d: %d", age, got)
		}
		prev = got
	}
	// stays capped well past the segment
	if got := progress.Estimate(entities.PhaseGermination, entities.TypePhotoperiod, daysAgo(now, 60), now); got != 10 {
		t.Errorf("germination age=60: got %d, want 10", got)
	}
}

func TestEstimatePhotoperiodSegments(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		phase string
		age   int
		want  int
	}{
		{entities.PhaseVegetative, 14, 10},  // segment start: continues from germination baseline
		{entities.PhaseVegetative, 44, 30},  // 10 + round(30/60*40)
		{entities.PhaseVegetative, 74, 50},  // cap
		{entities.PhaseVegetative, 200, 50}, // stays capped
		{entities.PhaseFlowering, 74, 50},   // segment start
		{entities.PhaseFlowering, 109, 70},  // 50 + round(35/70*40)
		{entities.PhaseFlowering, 144, 90},  // cap
	}
	for _, c := range cases {
		got := progress.Estimate(c.phase, entities.TypePhotoperiod, daysAgo(now, c.age), now)
		if got != c.want {
			t.Errorf("%s age=%d: got %d, want %d", c.phase, c.age, got, c.want)
		}
	}
}

func TestEstimateUnknownTypeOrPhase(t *testing.T) {
	now := time.Now()
	if got := progress.Estimate(entities.PhaseVegetative, entities.TypeUnknown, daysAgo(now, 30), now); got != 0 {
		t.Errorf("unknown type = %d, want 0", got)
	}
	if got := progress.Estimate("SOMETHING_ELSE", entities.TypePhotoperiod, daysAgo(now, 30), now); got != 0 {
		t.Errorf("unknown phase = %d, want 0", got)
	}
}

func TestEstimateFutureStartDate(t *testing.T) {
	// negative age flows through the arithmetic; nothing should panic and
	// the autoflower model yields a negative percentage
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, 9)
	got := progress.Estimate(entities.PhaseVegetative, entities.TypeAutoflower, &start, now)
	if got != -10 { // round(-9/90*100)
		t.Errorf("future start date = %d, want -10", got)
	}
}

func TestEstimateIsPure(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	start := daysAgo(now, 40)
	a := progress.Estimate(entities.PhaseVegetative, entities.TypePhotoperiod, start, now)
	b := progress.Estimate(entities.PhaseVegetative, entities.TypePhotoperiod, start, now)
	if a != b {
		t.Errorf("same inputs produced %d then %d", a, b)
	}
}
