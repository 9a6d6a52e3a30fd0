// Package normalize converts raw gamepad readings into unit-range values
// and applies deadzone filtering.
package normalize

// Raw input ranges of an XInput-class gamepad.
const (
	MaxThumb   = 32767
	MaxTrigger = 255
)

// Axis maps a signed raw axis value onto [-1, 1].
func Axis(raw int16, max float64) float64 {
	v := float64(raw) / max
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Trigger maps an unsigned raw trigger value onto [0, 1].
func Trigger(raw uint8, max float64) float64 {
	v := float64(raw) / max
	if v > 1 {
		return 1
	}
	return v
}

// Deadzone rescales v so the band [-d, d] reads as zero and the remaining
// travel spans the full unit range. d must be a fraction in [0, 1); zero is
// the identity. The sign of v is never flipped.
func Deadzone(v, d float64) float64 {
	if d <= 0 {
		return v
	}
	if v > d {
		return (v - d) / (1 - d)
	}
	if v < -d {
		return (v + d) / (1 - d)
	}
	return 0
}

// Clamp01 limits v to the unit interval.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
