package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Angle(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"along +Z", Vec2{0, 6}, 0},
		{"along +X", Vec2{6, 0}, math.Pi / 2},
		{"along -Z", Vec2{0, -1}, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := float64(tt.v.Angle())
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Angle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{2, 4, -6}
	if got := a.Lerp(b, 0.5); got != (Vec3{1, 2, -3}) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{0, 3, 4}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v", got)
	}
}

func TestVec3MglRoundTrip(t *testing.T) {
	v := Vec3{1.5, -2, 3}
	if got := FromMgl(v.Mgl()); got != v {
		t.Errorf("FromMgl(Mgl()) = %v, want %v", got, v)
	}
}

func TestBox3(t *testing.T) {
	var empty Box3
	if !empty.IsEmpty() {
		t.Fatal("zero Box3 should be empty")
	}

	b := NewBox3(Vec3{1, 2, 3}, Vec3{-1, 0, 1})
	if b.Min != (Vec3{-1, 0, 1}) || b.Max != (Vec3{1, 2, 3}) {
		t.Errorf("NewBox3 corners = %v %v", b.Min, b.Max)
	}
	if c := b.Center(); c != (Vec3{0, 1, 2}) {
		t.Errorf("Center() = %v", c)
	}
	if s := b.Size(); s != (Vec3{2, 2, 2}) {
		t.Errorf("Size() = %v", s)
	}

	u := empty.Union(b).Union(NewBox3(Vec3{5, 5, 5}, Vec3{4, 4, 4}))
	if u.Min != (Vec3{-1, 0, 1}) || u.Max != (Vec3{5, 5, 5}) {
		t.Errorf("Union corners = %v %v", u.Min, u.Max)
	}

	moved := b.Translate(Vec3{1, 1, 1})
	if moved.Center() != (Vec3{1, 2, 3}) {
		t.Errorf("Translate center = %v", moved.Center())
	}
}
