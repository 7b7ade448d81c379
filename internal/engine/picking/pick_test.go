package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/headset-viewer/internal/engine/camera"
	"github.com/Faultbox/headset-viewer/internal/scene"
	"github.com/Faultbox/headset-viewer/pkg/math"
)

var unitHalf = math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}

func frontCamera() *camera.Camera {
	cam := camera.NewCamera(45, 1, 0.1, 100)
	cam.Position = math.Vec3{Z: 5}
	cam.LookAt = math.Vec3{}
	return cam
}

func addBlock(s *scene.Scene, name string, pos math.Vec3, interactive bool) *scene.Part {
	p := scene.NewPart(name)
	p.Position = pos
	p.Bounds = math.NewBox3(unitHalf.Scale(-1), unitHalf)
	p.Interactive = interactive
	return s.Add(p)
}

func TestScreenToNDC(t *testing.T) {
	assert.Equal(t, math.Vec2{X: 0, Y: 0}, ScreenToNDC(400, 300, 800, 600))
	assert.Equal(t, math.Vec2{X: -1, Y: 1}, ScreenToNDC(0, 0, 800, 600))
	assert.Equal(t, math.Vec2{X: 1, Y: -1}, ScreenToNDC(800, 600, 800, 600))
}

func TestScreenToRayCenter(t *testing.T) {
	cam := frontCamera()
	ray := ScreenToRay(400, 400, 800, 800, cam.ViewProjection().Inv())

	assert.True(t, ray.Direction.ApproxEqual(math.Vec3{Z: -1}, 1e-4), "direction %v", ray.Direction)
	assert.InDelta(t, 0, ray.Origin.X, 1e-4)
	assert.InDelta(t, 0, ray.Origin.Y, 1e-4)
}

func TestIntersectBox(t *testing.T) {
	box := math.NewBox3(math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1})

	tests := []struct {
		name  string
		ray   Ray
		hit   bool
		wantT float32
	}{
		{"head on", Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: -1}}, true, 4},
		{"from inside", Ray{Origin: math.Vec3{}, Direction: math.Vec3{X: 1}}, true, 1},
		{"pointing away", Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: 1}}, false, 0},
		{"parallel miss", Ray{Origin: math.Vec3{X: 3, Z: 5}, Direction: math.Vec3{Z: -1}}, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectBox(box)
			assert.Equal(t, tt.hit, hit)
			if tt.hit {
				assert.InDelta(t, tt.wantT, got, 1e-5)
			}
		})
	}

	_, hit := Ray{Direction: math.Vec3{Z: -1}}.IntersectBox(math.Box3{})
	assert.False(t, hit, "empty box never hits")
}

func TestPickNearestInteractive(t *testing.T) {
	s := scene.New()
	back := addBlock(s, "back", math.Vec3{Z: -2}, true)
	front := addBlock(s, "front", math.Vec3{}, true)
	vp := Viewport{Width: 800, Height: 800}

	hit, ok := Pick(400, 400, vp, frontCamera(), s)
	require.True(t, ok)
	assert.Same(t, front, hit.Part)

	front.Interactive = false
	hit, ok = Pick(400, 400, vp, frontCamera(), s)
	require.True(t, ok, "non-interactive parts do not occlude")
	assert.Same(t, back, hit.Part)
}

func TestPickMiss(t *testing.T) {
	s := scene.New()
	addBlock(s, "block", math.Vec3{}, true)

	_, ok := Pick(5, 5, Viewport{Width: 800, Height: 800}, frontCamera(), s)
	assert.False(t, ok)

	_, ok = Pick(400, 400, Viewport{}, frontCamera(), s)
	assert.False(t, ok, "zero viewport")
}

func TestPickUsesCurrentViewport(t *testing.T) {
	s := scene.New()
	addBlock(s, "right", math.Vec3{X: 1.5}, true)
	cam := frontCamera()

	// Right of centre in a wide viewport; the same pixel is the centre of a narrow one.
	_, ok := Pick(820, 300, Viewport{Width: 1200, Height: 600}, cam, s)
	assert.True(t, ok)

	_, ok = Pick(820, 300, Viewport{Width: 2000, Height: 600}, cam, s)
	assert.False(t, ok)
}

func TestPickFollowsSceneRoot(t *testing.T) {
	s := scene.New()
	addBlock(s, "block", math.Vec3{}, true)
	s.Root = math.Vec3{X: 10}

	_, ok := Pick(400, 400, Viewport{Width: 800, Height: 800}, frontCamera(), s)
	assert.False(t, ok)
}
