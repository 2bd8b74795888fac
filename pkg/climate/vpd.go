package climate

import "math"

// SVP returns the saturation vapor pressure in kPa at the given air
// temperature (°C), using the Tetens approximation.
func SVP(tempC float64) float64 {
	return 0.61078 * math.Exp(17.27*tempC/(tempC+237.3))
}

// VPD returns the vapor-pressure deficit in kPa for air temperature (°C),
// relative humidity (%) and an optional leaf temperature offset (°C, usually
// negative). With a zero offset this reduces to SVP(T)·(1−RH/100).
// Rounded to 2 decimal places, which is how metrics are stored.
func VPD(tempC, rh, leafOffset float64) float64 {
	vpd := SVP(tempC+leafOffset) - SVP(tempC)*rh/100
	return math.Round(vpd*100) / 100
}

// DLI returns the daily light integral in mol/m²/day for a PPFD value
// (µmol/m²/s) sustained over the given photoperiod hours.
func DLI(ppfd, hours float64) float64 {
	return math.Round(ppfd*3600*hours/1e6*100) / 100
}
