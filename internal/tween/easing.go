package tween

import "math"

// Ease maps linear progress t in [0, 1] to eased progress in [0, 1].
type Ease func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// OutQuad starts fast and settles: 1 - (1-t)^2.
func OutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// InOutQuad accelerates through the first half and decelerates through the second.
//
//	t < 0.5:  2t^2
//	t >= 0.5: 1 - (-2t + 2)^2 / 2
func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}
