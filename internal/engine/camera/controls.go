package camera

import (
	gomath "math"

	"github.com/Faultbox/headset-viewer/pkg/math"
)

// polarEpsilon keeps the camera off the poles where the view matrix degenerates.
const polarEpsilon = 1e-4

// OrbitControls rotates and zooms a camera around a target point.
//
// Manual input accumulates rotation deltas that Update applies with damping, so the
// camera keeps gliding briefly after a drag. Tweens may write Camera.Position and
// Target directly; Sync re-derives the control state from those values.
type OrbitControls struct {
	Camera *Camera
	Target math.Vec3

	EnableDamping bool
	DampingFactor float32

	AutoRotate      bool
	AutoRotateSpeed float32 // 2.0 is one revolution every 30s

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32

	// Sensitivity
	RotateSensitivity float32
	ZoomSensitivity   float32

	deltaTheta float64
	deltaPhi   float64
	zoomScale  float64
	travel     float32

	interacting bool
	onStart     []func()
	onEnd       []func()
}

// NewOrbitControls creates controls for cam with default settings.
func NewOrbitControls(cam *Camera) *OrbitControls {
	return &OrbitControls{
		Camera:            cam,
		EnableDamping:     true,
		DampingFactor:     0.05,
		AutoRotate:        true,
		AutoRotateSpeed:   3.25,
		MinDistance:       0.1,
		MaxDistance:       50,
		MinPolar:          0,
		MaxPolar:          float32(gomath.Pi),
		RotateSensitivity: 0.005,
		ZoomSensitivity:   0.1,
		zoomScale:         1,
	}
}

// OnStart registers a listener for the start of a manual interaction.
func (c *OrbitControls) OnStart(fn func()) {
	c.onStart = append(c.onStart, fn)
}

// OnEnd registers a listener for the end of a manual interaction.
func (c *OrbitControls) OnEnd(fn func()) {
	c.onEnd = append(c.onEnd, fn)
}

// BeginInteraction marks the start of a manual drag and notifies listeners.
func (c *OrbitControls) BeginInteraction() {
	if c.interacting {
		return
	}
	c.interacting = true
	for _, fn := range c.onStart {
		fn()
	}
}

// EndInteraction marks the end of a manual drag and notifies listeners.
func (c *OrbitControls) EndInteraction() {
	if !c.interacting {
		return
	}
	c.interacting = false
	for _, fn := range c.onEnd {
		fn()
	}
}

// Interacting reports whether a manual drag is in progress.
func (c *OrbitControls) Interacting() bool {
	return c.interacting
}

// HandleDrag queues a rotation from a pointer delta in pixels.
func (c *OrbitControls) HandleDrag(deltaX, deltaY float32) {
	c.deltaTheta -= float64(deltaX * c.RotateSensitivity)
	c.deltaPhi -= float64(deltaY * c.RotateSensitivity)
}

// HandleZoom queues a dolly from a scroll wheel delta; positive zooms in.
func (c *OrbitControls) HandleZoom(delta float32) {
	c.zoomScale *= 1 - float64(delta*c.ZoomSensitivity)
	if c.zoomScale <= 0 {
		c.zoomScale = 0.01
	}
}

// StopMotion discards any pending rotation or zoom.
func (c *OrbitControls) StopMotion() {
	c.deltaTheta = 0
	c.deltaPhi = 0
	c.zoomScale = 1
}

// Moving reports whether queued rotation or zoom has not settled yet.
func (c *OrbitControls) Moving() bool {
	return gomath.Abs(c.deltaTheta) > 1e-6 || gomath.Abs(c.deltaPhi) > 1e-6 || c.zoomScale != 1
}

// AutoRotateAngle returns the rotation applied by auto-rotate over dt seconds.
func (c *OrbitControls) AutoRotateAngle(dt float64) float64 {
	return 2 * gomath.Pi / 60 * float64(c.AutoRotateSpeed) * dt
}

// Update applies queued input, damping and (when allowed) auto-rotation, then points
// the camera at the target. allowAutoRotate gates AutoRotate so the caller decides
// when idle rotation may advance.
func (c *OrbitControls) Update(dt float64, allowAutoRotate bool) {
	rotate := allowAutoRotate && c.AutoRotate && dt > 0
	if !rotate && !c.Moving() {
		c.Camera.LookAt = c.Target
		return
	}

	s := toSpherical(c.Camera.Position.Sub(c.Target))

	if rotate {
		s.theta -= c.AutoRotateAngle(dt)
	}

	before := s.offset()

	if c.EnableDamping {
		s.theta += c.deltaTheta * float64(c.DampingFactor)
		s.phi += c.deltaPhi * float64(c.DampingFactor)
	} else {
		s.theta += c.deltaTheta
		s.phi += c.deltaPhi
	}

	minPolar := gomath.Max(float64(c.MinPolar), polarEpsilon)
	maxPolar := gomath.Min(float64(c.MaxPolar), gomath.Pi-polarEpsilon)
	s.phi = gomath.Max(minPolar, gomath.Min(maxPolar, s.phi))

	s.radius *= c.zoomScale
	s.radius = gomath.Max(float64(c.MinDistance), gomath.Min(float64(c.MaxDistance), s.radius))

	after := s.offset()
	c.travel += after.Distance(before)

	c.Camera.Position = c.Target.Add(after)
	c.Camera.LookAt = c.Target

	if c.EnableDamping {
		c.deltaTheta *= 1 - float64(c.DampingFactor)
		c.deltaPhi *= 1 - float64(c.DampingFactor)
		if !c.Moving() {
			c.deltaTheta, c.deltaPhi = 0, 0
		}
	} else {
		c.deltaTheta, c.deltaPhi = 0, 0
	}
	c.zoomScale = 1
}

// Travel returns how far queued user input has moved the camera since the last
// ResetTravel. Auto-rotation and external writes are not counted.
func (c *OrbitControls) Travel() float32 {
	return c.travel
}

// ResetTravel zeroes the Travel accumulator.
func (c *OrbitControls) ResetTravel() {
	c.travel = 0
}

// Sync re-applies the control state after Camera.Position or Target were written
// externally, without advancing auto-rotation.
func (c *OrbitControls) Sync() {
	c.Update(0, false)
}
