package lighting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/headset-viewer/pkg/math"
)

func TestDirectionalAt(t *testing.T) {
	d := DirectionalAt(math.Vec3{X: 10, Y: 10, Z: 10}, 0xffffff, 1)
	assert.InDelta(t, 1, d.Direction.Length(), 1e-5)
	assert.InDelta(t, d.Direction.X, d.Direction.Y, 1e-6)

	up := DirectionalAt(math.Vec3{}, 0xffffff, 1)
	assert.Equal(t, math.Vec3{Y: 1}, up.Direction)
}

func TestPack(t *testing.T) {
	rig := Rig{
		AmbientColor:     0xff0000,
		AmbientIntensity: 0.5,
		Key:              Directional{Direction: math.Vec3{Y: 1}, Color: 0x00ff00, Intensity: 2},
		Points: []PointLight{
			{Position: math.Vec3{X: 1, Y: 2, Z: 3}, Color: 0x0000ff, Intensity: 0.25, Range: 10},
			{Position: math.Vec3{X: 4}, Color: 0xffffff, Intensity: 1},
		},
	}

	p := rig.Pack()
	assert.Equal(t, [3]float32{0.5, 0, 0}, p.Ambient)
	assert.Equal(t, [3]float32{0, 1, 0}, p.KeyDir)
	assert.Equal(t, [3]float32{0, 2, 0}, p.KeyColor)
	assert.Equal(t, int32(2), p.Count)
	assert.Equal(t, []float32{1, 2, 3}, p.Positions[0:3])
	assert.Equal(t, []float32{0, 0, 0.25}, p.Colors[0:3])
	assert.Equal(t, float32(10), p.Ranges[0])
	assert.Equal(t, float32(100), p.Ranges[1], "non-positive range falls back to the default")
}

func TestPackDropsExtraLights(t *testing.T) {
	rig := StudioRig()
	for i := 0; i < MaxPointLights+2; i++ {
		rig.Points = append(rig.Points, PointLight{Color: 0xffffff, Intensity: 1, Range: 1})
	}
	assert.Equal(t, int32(MaxPointLights), rig.Pack().Count)
}
