package math

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// Angle returns atan2(X, Y): the heading measured from +Y toward +X.
// For an XZ projection this is the orbit angle from +Z toward +X.
func (v Vec2) Angle() float32 {
	return float32(math.Atan2(float64(v.X), float64(v.Y)))
}
