package viewer

import (
	gomath "math"
	"time"

	"github.com/Faultbox/headset-viewer/internal/engine/camera"
	"github.com/Faultbox/headset-viewer/internal/scene"
	"github.com/Faultbox/headset-viewer/internal/tween"
	"github.com/Faultbox/headset-viewer/pkg/math"
)

const (
	propPosition = "position"
	propTarget   = "target"
)

// FocusAnimator moves the camera between the orbit and a framed part.
type FocusAnimator struct {
	scene    *scene.Scene
	cam      *camera.Camera
	controls *camera.OrbitControls
	tweens   *tween.Manager

	focusDuration   time.Duration
	returnDuration  time.Duration
	suspendDistance float32

	defaultTarget math.Vec3
	orbitRadius   float32
	orbitHeight   float32

	orbitAngle float64
}

func (f *FocusAnimator) positionKey() tween.Key {
	return tween.Key{Target: f.cam, Property: propPosition}
}

func (f *FocusAnimator) targetKey() tween.Key {
	return tween.Key{Target: f.controls, Property: propTarget}
}

// OrbitAngle returns the last recorded azimuth, atan2(x, z) of the camera position.
func (f *FocusAnimator) OrbitAngle() float64 {
	return f.orbitAngle
}

// RecordOrbitAngle stores the current camera azimuth.
func (f *FocusAnimator) RecordOrbitAngle() {
	f.orbitAngle = float64(f.cam.Position.XZ().Angle())
}

// FocusOn tweens the camera to frame p. settled runs when the camera arrives.
func (f *FocusAnimator) FocusOn(p *scene.Part, settled func()) {
	box := f.scene.WorldBounds(p)
	center := box.Center()
	distance := box.Diagonal() * 2

	if f.cam.Position.Distance(f.scene.WorldPosition(p)) > f.suspendDistance {
		f.controls.AutoRotate = false
	}

	dir := f.cam.Position.Sub(f.controls.Target).Normalize()
	if dir.Length() == 0 {
		dir = math.Vec3{Z: 1}
	}
	to := center.Add(dir.Scale(distance))

	f.controls.StopMotion()
	f.tweens.Start(f.positionKey(), tween.Spec{
		From:     f.cam.Position,
		To:       to,
		Duration: f.focusDuration,
		Ease:     tween.OutQuad,
		Apply:    f.setPosition,
		Done:     settled,
	})
	f.tweens.Start(f.targetKey(), tween.Spec{
		From:     f.controls.Target,
		To:       center,
		Duration: f.focusDuration,
		Ease:     tween.OutQuad,
		Apply:    f.setTarget,
	})
}

// ReturnToDefault tweens the camera back onto the orbit circle at the recorded
// angle and re-enables auto-rotation once there. done runs after that.
func (f *FocusAnimator) ReturnToDefault(done func()) {
	a := f.orbitAngle
	to := math.Vec3{
		X: f.orbitRadius * float32(gomath.Sin(a)),
		Y: f.orbitHeight,
		Z: f.orbitRadius * float32(gomath.Cos(a)),
	}

	f.controls.StopMotion()
	f.tweens.Start(f.targetKey(), tween.Spec{
		From:     f.controls.Target,
		To:       f.defaultTarget,
		Duration: f.returnDuration,
		Ease:     tween.InOutQuad,
		Apply:    f.setTarget,
	})
	f.tweens.Start(f.positionKey(), tween.Spec{
		From:     f.cam.Position,
		To:       to,
		Duration: f.returnDuration,
		Ease:     tween.InOutQuad,
		Apply:    f.setPosition,
		Done: func() {
			f.controls.Target = f.defaultTarget
			f.controls.Sync()
			f.RecordOrbitAngle()
			f.controls.AutoRotate = true
			if done != nil {
				done()
			}
		},
	})
}

func (f *FocusAnimator) setPosition(v math.Vec3) {
	f.cam.Position = v
	f.controls.Sync()
}

func (f *FocusAnimator) setTarget(v math.Vec3) {
	f.controls.Target = v
	f.controls.Sync()
}
