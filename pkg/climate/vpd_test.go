package climate_test

import (
	"math"
	"testing"

	"growlog/pkg/climate"
)

func TestVPD(t *testing.T) {
	t.Run("regression at 24C 60%", func(t *testing.T) {
		// pins the exponential formula
		got := climate.VPD(24, 60, 0)
		if math.Abs(got-1.19) > 0.01 {
			t.Errorf("VPD(24, 60, 0) = %v, want ~1.19", got)
		}
	})

	t.Run("saturated air has zero deficit", func(t *testing.T) {
		if got := climate.VPD(25, 100, 0); got != 0 {
			t.Errorf("VPD at 100%% RH = %v, want 0", got)
		}
	})

	t.Run("deficit grows as humidity drops", func(t *testing.T) {
		prev := climate.VPD(24, 90, 0)
		for rh := 80.0; rh >= 30; rh -= 10 {
			cur := climate.VPD(24, rh, 0)
			if cur <= prev {
				t.Fatalf("VPD at RH=%v (%v) not greater than at RH=%v (%v)", rh, cur, rh+10, prev)
			}
			prev = cur
		}
	})

	t.Run("cooler leaf lowers deficit", func(t *testing.T) {
		if climate.VPD(24, 60, -2) >= climate.VPD(24, 60, 0) {
			t.Error("expected negative leaf offset to reduce VPD")
		}
	})
}

func TestDLI(t *testing.T) {
	// 600 umol over 18h: 600*3600*18/1e6 = 38.88
	if got := climate.DLI(600, 18); math.Abs(got-38.88) > 0.01 {
		t.Errorf("DLI(600, 18) = %v, want 38.88", got)
	}
	if got := climate.DLI(0, 12); got != 0 {
		t.Errorf("DLI(0, 12) = %v, want 0", got)
	}
}
