package audio

import "math"

// silentVolume is the beep gain used for a zero level. Silent is set as well.
const silentVolume = -10

func clampLevel(level float64) float64 {
	return min(max(level, 0), 1)
}

// levelToVolume maps a linear 0..1 level onto beep's base-2 gain, where 0 is
// unchanged, -1 is half and -2 a quarter.
func levelToVolume(level float64) float64 {
	switch {
	case level <= 0:
		return silentVolume
	case level >= 1:
		return 0
	default:
		return math.Log2(level)
	}
}
