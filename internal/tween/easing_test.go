package tween

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	curves := map[string]Ease{
		"Linear":    Linear,
		"OutQuad":   OutQuad,
		"InOutQuad": InOutQuad,
	}
	for name, ease := range curves {
		t.Run(name, func(t *testing.T) {
			if got := ease(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %v, want 0", name, got)
			}
			if got := ease(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %v, want 1", name, got)
			}
		})
	}
}

func TestEasingMidpoints(t *testing.T) {
	tests := []struct {
		name     string
		ease     Ease
		input    float64
		expected float64
	}{
		{"OutQuad half", OutQuad, 0.5, 0.75},
		{"InOutQuad half", InOutQuad, 0.5, 0.5},
		{"InOutQuad quarter", InOutQuad, 0.25, 0.125},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ease(tt.input)
			if math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestOutQuadFasterThanLinear(t *testing.T) {
	for p := 0.1; p < 1; p += 0.1 {
		if OutQuad(p) <= Linear(p) {
			t.Errorf("OutQuad(%v) = %v should lead linear", p, OutQuad(p))
		}
	}
}
