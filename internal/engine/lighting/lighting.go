// Package lighting describes the light rig the renderer uploads to its shaders.
package lighting

import (
	"github.com/Faultbox/headset-viewer/internal/scene"
	"github.com/Faultbox/headset-viewer/pkg/math"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 4

// Directional is a light infinitely far away.
type Directional struct {
	Direction math.Vec3 // Normalized, pointing from the scene towards the light
	Color     scene.Color
	Intensity float32
}

// PointLight is a light at a position with linear falloff.
type PointLight struct {
	Position  math.Vec3
	Color     scene.Color
	Intensity float32
	Range     float32 // Distance at which the light fades out
}

// Rig is the full set of lights for a frame.
type Rig struct {
	AmbientColor     scene.Color
	AmbientIntensity float32
	Key              Directional
	Points           []PointLight
}

// DirectionalAt returns a directional light shining from position towards the origin.
func DirectionalAt(position math.Vec3, color scene.Color, intensity float32) Directional {
	dir := position.Normalize()
	if dir.Length() == 0 {
		dir = math.Vec3{Y: 1}
	}
	return Directional{Direction: dir, Color: color, Intensity: intensity}
}

// StudioRig is the product-shot lighting: soft ambient, a strong key light from
// the upper right and two fills from the left.
func StudioRig() Rig {
	return Rig{
		AmbientColor:     0xffffff,
		AmbientIntensity: 0.35,
		Key:              DirectionalAt(math.Vec3{X: 10, Y: 10, Z: 10}, 0xffffff, 0.9),
		Points: []PointLight{
			{Position: math.Vec3{X: -5, Y: 5, Z: 3}, Color: 0xffffff, Intensity: 0.15, Range: 20},
			{Position: math.Vec3{X: -5, Y: 8, Z: 5}, Color: 0xffffff, Intensity: 0.35, Range: 20},
		},
	}
}

// Packed is a rig flattened into the arrays the shader expects.
type Packed struct {
	Ambient   [3]float32
	KeyDir    [3]float32
	KeyColor  [3]float32
	Positions [MaxPointLights * 3]float32
	Colors    [MaxPointLights * 3]float32 // Pre-multiplied by intensity
	Ranges    [MaxPointLights]float32
	Count     int32
}

// Pack flattens the rig. Intensities are folded into the colours and point
// lights past MaxPointLights are dropped.
func (r Rig) Pack() Packed {
	var p Packed
	p.Ambient = scaled(r.AmbientColor, r.AmbientIntensity)
	p.KeyDir = [3]float32{r.Key.Direction.X, r.Key.Direction.Y, r.Key.Direction.Z}
	p.KeyColor = scaled(r.Key.Color, r.Key.Intensity)

	for i, l := range r.Points {
		if i >= MaxPointLights {
			break
		}
		c := scaled(l.Color, l.Intensity)
		copy(p.Positions[i*3:], []float32{l.Position.X, l.Position.Y, l.Position.Z})
		copy(p.Colors[i*3:], c[:])
		p.Ranges[i] = l.Range
		if p.Ranges[i] <= 0 {
			p.Ranges[i] = 100 // Default range
		}
		p.Count++
	}
	return p
}

func scaled(c scene.Color, intensity float32) [3]float32 {
	r, g, b := c.RGB()
	return [3]float32{r * intensity, g * intensity, b * intensity}
}
