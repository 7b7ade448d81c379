// Package viewer implements the interactive core of the headset viewer: camera
// modes, hover highlighting, focus and return animations, the exploded view and
// the idle return to orbit.
//
// A Viewer is single-threaded. The host calls the On* triggers from its input
// handling and Tick once per frame, all from the same goroutine.
package viewer

import (
	gomath "math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/headset-viewer/internal/engine/camera"
	"github.com/Faultbox/headset-viewer/internal/engine/picking"
	"github.com/Faultbox/headset-viewer/internal/scene"
	"github.com/Faultbox/headset-viewer/internal/theme"
	"github.com/Faultbox/headset-viewer/internal/tween"
	"github.com/Faultbox/headset-viewer/pkg/math"
)

// Options configures a Viewer.
type Options struct {
	Logger   *zap.Logger
	Clock    Clock
	Viewport func() picking.Viewport
	Themes   *theme.Catalog

	DragThreshold             float32
	FocusDuration             time.Duration
	ReturnDuration            time.Duration
	ExplodeDuration           time.Duration
	IdleReturnDelay           time.Duration
	AutoRotateSuspendDistance float32
	ClearRestOnCollapse       bool

	DefaultTarget math.Vec3
	OrbitRadius   float32
	OrbitHeight   float32

	HoverColor     scene.Color
	HoverIntensity float32
	FlashColor     scene.Color
	FlashDuration  time.Duration

	FloatAmplitude float32
	FloatSpeed     float32
}

// DefaultOptions returns the stock timings and colours.
func DefaultOptions() Options {
	return Options{
		DragThreshold:             0.01,
		FocusDuration:             time.Second,
		ReturnDuration:            1200 * time.Millisecond,
		ExplodeDuration:           1200 * time.Millisecond,
		IdleReturnDelay:           4 * time.Second,
		AutoRotateSuspendDistance: 1.5,
		DefaultTarget:             math.Vec3{Y: 0.5},
		OrbitRadius:               6,
		OrbitHeight:               3,
		HoverColor:                0x99bbff,
		HoverIntensity:            0.8,
		FlashColor:                0x6ca0ff,
		FlashDuration:             800 * time.Millisecond,
		FloatAmplitude:            0.05,
		FloatSpeed:                1.5,
	}
}

// Snapshot is a read-only view of the interaction state.
type Snapshot struct {
	Mode     string     `json:"mode"`
	Hovered  string     `json:"hovered,omitempty"`
	Focused  string     `json:"focused,omitempty"`
	Exploded bool       `json:"exploded"`
	Theme    string     `json:"theme,omitempty"`
	Camera   [3]float32 `json:"camera"`
	Target   [3]float32 `json:"target"`
}

// Viewer owns the interaction state for one scene.
type Viewer struct {
	opts     Options
	log      *zap.Logger
	clock    Clock
	scene    *scene.Scene
	cam      *camera.Camera
	controls *camera.OrbitControls
	tweens   *tween.Manager

	hover     *HoverTracker
	focus     *FocusAnimator
	explosion *Explosion
	idle      *IdleReturn
	flash     *clickFlash

	mode      Mode
	focused   *scene.Part
	returning bool

	downValid bool

	theme   string
	elapsed float64
}

// New wires a Viewer to the scene, camera and controls. It subscribes to the
// controls' interaction start and end signals.
func New(s *scene.Scene, cam *camera.Camera, controls *camera.OrbitControls, opts Options) *Viewer {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}
	if opts.Themes == nil {
		opts.Themes = theme.Builtin()
	}

	tweens := tween.NewManager()
	v := &Viewer{
		opts:     opts,
		log:      log,
		clock:    clock,
		scene:    s,
		cam:      cam,
		controls: controls,
		tweens:   tweens,
		hover:    NewHoverTracker(opts.HoverColor, opts.HoverIntensity),
		focus: &FocusAnimator{
			scene:           s,
			cam:             cam,
			controls:        controls,
			tweens:          tweens,
			focusDuration:   opts.FocusDuration,
			returnDuration:  opts.ReturnDuration,
			suspendDistance: opts.AutoRotateSuspendDistance,
			defaultTarget:   opts.DefaultTarget,
			orbitRadius:     opts.OrbitRadius,
			orbitHeight:     opts.OrbitHeight,
		},
		explosion: &Explosion{
			log:       log,
			scene:     s,
			tweens:    tweens,
			duration:  opts.ExplodeDuration,
			clearRest: opts.ClearRestOnCollapse,
			rest:      make(map[uuid.UUID]math.Vec3),
		},
		flash: newClickFlash(clock, opts.FlashColor, opts.FlashDuration),
		mode:  ModeOrbiting,
	}
	v.idle = NewIdleReturn(clock, func() { v.handle(event{kind: eventIdleTimeout}) })
	v.focus.RecordOrbitAngle()

	controls.OnStart(func() { v.handle(event{kind: eventDragStart}) })
	controls.OnEnd(func() { v.handle(event{kind: eventDragEnd}) })
	return v
}

func (v *Viewer) viewport() picking.Viewport {
	if v.opts.Viewport == nil {
		return picking.Viewport{}
	}
	return v.opts.Viewport()
}

func (v *Viewer) pick(x, y float32) *scene.Part {
	hit, ok := picking.Pick(x, y, v.viewport(), v.cam, v.scene)
	if !ok {
		return nil
	}
	return hit.Part
}

// OnPointerMove updates the hover highlight. It runs in every mode.
func (v *Viewer) OnPointerMove(x, y float32) {
	v.hover.Update(v.pick(x, y))
}

// OnPointerDown starts a manual interaction on the controls and resets the
// travel measured for the click tie-break.
func (v *Viewer) OnPointerDown(x, y float32) {
	v.controls.ResetTravel()
	v.downValid = true
	v.controls.BeginInteraction()
}

// OnPointerDrag forwards a pointer delta to the controls.
func (v *Viewer) OnPointerDrag(dx, dy float32) {
	v.controls.HandleDrag(dx, dy)
}

// OnWheel forwards a scroll delta to the controls.
func (v *Viewer) OnWheel(delta float32) {
	v.controls.HandleZoom(delta)
}

// OnPointerUp ends the manual interaction started by OnPointerDown.
func (v *Viewer) OnPointerUp() {
	v.controls.EndInteraction()
}

// OnClick resolves a click. While focused, a click that ends a camera drag is
// treated as navigation and ignored.
func (v *Viewer) OnClick(x, y float32) {
	// Only user-driven travel counts; focus and return tweens move the camera too.
	moved := v.downValid && v.controls.Travel() > v.opts.DragThreshold
	v.downValid = false

	if v.mode == ModeFocused && moved {
		v.log.Debug("click after camera drag ignored")
		return
	}

	p := v.pick(x, y)
	if p == nil {
		v.handle(event{kind: eventEmptyClicked})
		return
	}
	v.flash.Start(p.Appearance.Material)
	v.handle(event{kind: eventPartClicked, part: p})
}

// OnResetView collapses the exploded view and returns the camera to orbit.
func (v *Viewer) OnResetView() {
	v.explosion.ForceCollapse()
	v.handle(event{kind: eventReset})
}

// OnToggleExploded explodes or collapses the parts.
func (v *Viewer) OnToggleExploded() {
	v.explosion.Toggle()
}

// OnThemeSelect recolours the material slots. Unknown ids are logged and ignored.
func (v *Viewer) OnThemeSelect(id string) {
	t, err := v.opts.Themes.Get(id)
	if err != nil {
		v.log.Warn("theme not applied", zap.String("theme", id), zap.Error(err))
		return
	}
	v.flash.Reset()
	n := theme.Apply(t, v.scene.Materials)
	v.theme = t.ID
	v.log.Info("theme applied", zap.String("theme", t.ID), zap.Int("materials", n))
}

// Tick advances timers, animations and the controls by dt seconds.
func (v *Viewer) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	v.idle.Poll()
	v.flash.Poll()
	v.tweens.Update(time.Duration(dt * float64(time.Second)))
	v.controls.Update(dt, v.mode == ModeOrbiting)

	v.elapsed += dt
	v.scene.Root.Y = v.opts.FloatAmplitude * float32(gomath.Sin(v.elapsed*float64(v.opts.FloatSpeed)))
}

// Mode returns the current camera mode.
func (v *Viewer) Mode() Mode {
	return v.mode
}

// Hovered returns the highlighted part, or nil.
func (v *Viewer) Hovered() *scene.Part {
	return v.hover.Current()
}

// Tooltip returns the hovered part's label and whether it is visible.
func (v *Viewer) Tooltip() (string, bool) {
	return v.hover.Tooltip()
}

// Focused returns the focused part, or nil.
func (v *Viewer) Focused() *scene.Part {
	return v.focused
}

// Returning reports whether the camera is travelling back to orbit.
func (v *Viewer) Returning() bool {
	return v.returning
}

// Exploded reports the explosion toggle state.
func (v *Viewer) Exploded() bool {
	return v.explosion.Exploded()
}

// RestPosition returns a part's recorded rest position.
func (v *Viewer) RestPosition(p *scene.Part) (math.Vec3, bool) {
	return v.explosion.RestPosition(p.ID)
}

// OrbitAngle returns the recorded orbit azimuth in radians.
func (v *Viewer) OrbitAngle() float64 {
	return v.focus.OrbitAngle()
}

// IdleReturnArmed reports whether the idle return timer is pending.
func (v *Viewer) IdleReturnArmed() bool {
	return v.idle.Armed()
}

// Theme returns the id of the last applied theme.
func (v *Viewer) Theme() string {
	return v.theme
}

// Snapshot returns the current state for external observers.
func (v *Viewer) Snapshot() Snapshot {
	s := Snapshot{
		Mode:     v.mode.String(),
		Exploded: v.explosion.Exploded(),
		Theme:    v.theme,
		Camera:   [3]float32{v.cam.Position.X, v.cam.Position.Y, v.cam.Position.Z},
		Target:   [3]float32{v.controls.Target.X, v.controls.Target.Y, v.controls.Target.Z},
	}
	if name, ok := v.hover.Tooltip(); ok {
		s.Hovered = name
	}
	if v.focused != nil {
		s.Focused = v.focused.Name
	}
	return s
}
