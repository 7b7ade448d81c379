package picking

import (
	"github.com/Faultbox/headset-viewer/internal/engine/camera"
	"github.com/Faultbox/headset-viewer/internal/scene"
)

// Viewport is the drawable size in pixels.
type Viewport struct {
	Width, Height int
}

// Valid reports whether the viewport has a drawable area.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Hit is the nearest intersected part.
type Hit struct {
	Part     *scene.Part
	Distance float32
}

// Pick casts a ray from cam through the pointer position and returns the nearest
// interactive part it crosses. Non-interactive parts neither match nor occlude.
func Pick(pointerX, pointerY float32, vp Viewport, cam *camera.Camera, s *scene.Scene) (Hit, bool) {
	if !vp.Valid() {
		return Hit{}, false
	}

	view := *cam
	view.SetViewport(vp.Width, vp.Height)
	ray := ScreenToRay(pointerX, pointerY, float32(vp.Width), float32(vp.Height), view.ViewProjection().Inv())

	var best Hit
	found := false
	for _, p := range s.Parts() {
		if !p.Interactive {
			continue
		}
		t, ok := ray.IntersectBox(s.WorldBounds(p))
		if !ok {
			continue
		}
		if !found || t < best.Distance {
			best = Hit{Part: p, Distance: t}
			found = true
		}
	}
	return best, found
}
