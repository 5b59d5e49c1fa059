package main

import "math"

// hueToColor converts a hue angle in degrees to a fully saturated RGB
// triple. Only the hue wheel is needed here; full color-space conversion
// lives with the hardware collaborator.
func hueToColor(hueDeg float64) [numChannels]uint8 {
	h := math.Mod(hueDeg, 360)
	if h < 0 {
		h += 360
	}
	sector := h / 60
	x := 1 - math.Abs(math.Mod(sector, 2)-1)
	var r, g, b float64
	switch int(sector) {
	case 0:
		r, g = 1, x
	case 1:
		r, g = x, 1
	case 2:
		g, b = 1, x
	case 3:
		g, b = x, 1
	case 4:
		r, b = x, 1
	default:
		r, b = 1, x
	}
	return [numChannels]uint8{uint8(r * 255), uint8(g * 255), uint8(b * 255)}
}

// temperatureFraction maps a skin temperature in Celsius onto [0, 1]
// between the cool and warm calibration points.
func temperatureFraction(tempC float64) float64 {
	f := (tempC - skinTempCoolC) / (skinTempWarmC - skinTempCoolC)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// temperatureColor ramps from cool blue to warm red as skin temperature
// rises.
func temperatureColor(tempC float64) [numChannels]uint8 {
	f := temperatureFraction(tempC)
	return hueToColor(210 * (1 - f))
}
