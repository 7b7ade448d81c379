package math

// Box3 is an axis-aligned bounding box. The zero value is an empty box.
type Box3 struct {
	Min, Max Vec3
	valid    bool
}

// NewBox3 creates a box from two corners in any order.
func NewBox3(a, b Vec3) Box3 {
	return Box3{
		Min:   Vec3{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z)},
		Max:   Vec3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)},
		valid: true,
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return !b.valid
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extent per axis.
func (b Box3) Size() Vec3 {
	if !b.valid {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Diagonal returns the length of the box diagonal.
func (b Box3) Diagonal() float32 {
	return b.Size().Length()
}

// Translate returns the box moved by offset.
func (b Box3) Translate(offset Vec3) Box3 {
	if !b.valid {
		return b
	}
	return Box3{Min: b.Min.Add(offset), Max: b.Max.Add(offset), valid: true}
}

// Union returns the smallest box containing both boxes.
func (b Box3) Union(other Box3) Box3 {
	switch {
	case !b.valid:
		return other
	case !other.valid:
		return b
	}
	return Box3{
		Min:   Vec3{minf(b.Min.X, other.Min.X), minf(b.Min.Y, other.Min.Y), minf(b.Min.Z, other.Min.Z)},
		Max:   Vec3{maxf(b.Max.X, other.Max.X), maxf(b.Max.Y, other.Max.Y), maxf(b.Max.Z, other.Max.Z)},
		valid: true,
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
