package viewer

import (
	"go.uber.org/zap"

	"github.com/Faultbox/headset-viewer/internal/scene"
)

// Mode is the camera mode. Exactly one is active at a time.
type Mode int

const (
	// ModeOrbiting is the idle state: the camera auto-rotates.
	ModeOrbiting Mode = iota
	// ModeUserControlled means the user is dragging the camera.
	ModeUserControlled
	// ModeFocused means the camera frames a single part.
	ModeFocused
)

func (m Mode) String() string {
	switch m {
	case ModeOrbiting:
		return "orbiting"
	case ModeUserControlled:
		return "user-controlled"
	case ModeFocused:
		return "focused"
	default:
		return "unknown"
	}
}

type eventKind int

const (
	eventDragStart eventKind = iota
	eventDragEnd
	eventPartClicked
	eventEmptyClicked
	eventIdleTimeout
	eventReturnComplete
	eventReset
)

func (k eventKind) String() string {
	switch k {
	case eventDragStart:
		return "drag-start"
	case eventDragEnd:
		return "drag-end"
	case eventPartClicked:
		return "part-clicked"
	case eventEmptyClicked:
		return "empty-clicked"
	case eventIdleTimeout:
		return "idle-timeout"
	case eventReturnComplete:
		return "return-complete"
	case eventReset:
		return "reset"
	default:
		return "unknown"
	}
}

type event struct {
	kind eventKind
	part *scene.Part // set for eventPartClicked
}

// handle is the single entry point of the mode state machine. Every (mode, event)
// pair is listed; pairs without a transition are explicit no-ops.
func (v *Viewer) handle(ev event) {
	switch v.mode {
	case ModeOrbiting:
		switch ev.kind {
		case eventDragStart:
			v.idle.Cancel()
			v.setMode(ModeUserControlled)
		case eventPartClicked:
			v.beginFocus(ev.part)
		case eventReturnComplete:
			// A drag that ended mid-return already switched to orbiting.
			v.finishReturn()
		case eventDragEnd, eventEmptyClicked, eventIdleTimeout, eventReset:
		}

	case ModeUserControlled:
		switch ev.kind {
		case eventDragEnd:
			if v.focused != nil && !v.returning {
				v.idle.Arm(v.opts.IdleReturnDelay)
				v.setMode(ModeFocused)
				return
			}
			v.setMode(ModeOrbiting)
		case eventPartClicked:
			v.beginFocus(ev.part)
		case eventReturnComplete:
			v.finishReturn()
		case eventReset:
			v.beginReturn()
		case eventDragStart, eventEmptyClicked, eventIdleTimeout:
		}

	case ModeFocused:
		switch ev.kind {
		case eventDragStart:
			v.idle.Cancel()
			v.setMode(ModeUserControlled)
		case eventPartClicked:
			v.beginFocus(ev.part)
		case eventEmptyClicked, eventIdleTimeout, eventReset:
			v.beginReturn()
		case eventReturnComplete:
			v.finishReturn()
			v.setMode(ModeOrbiting)
		case eventDragEnd:
		}
	}
}

// beginFocus frames p and enters ModeFocused. Re-focusing supersedes the running
// focus or return tweens.
func (v *Viewer) beginFocus(p *scene.Part) {
	if p == nil {
		return
	}
	v.idle.Cancel()
	if v.focused == nil || v.returning {
		v.focus.RecordOrbitAngle()
	}
	v.focused = p
	v.returning = false
	v.log.Info("focusing part", zap.String("part", p.Name))
	v.focus.FocusOn(p, func() { v.focusSettled(p) })
	v.setMode(ModeFocused)
}

// focusSettled arms the idle return once the focus tween lands, unless the state
// moved on in the meantime.
func (v *Viewer) focusSettled(p *scene.Part) {
	if v.mode == ModeFocused && v.focused == p && !v.returning {
		v.idle.Arm(v.opts.IdleReturnDelay)
	}
}

// beginReturn starts the return-to-orbit transition if a part is focused.
// The mode changes only when the transition completes.
func (v *Viewer) beginReturn() {
	if v.focused == nil || v.returning {
		return
	}
	v.idle.Cancel()
	v.returning = true
	v.log.Info("returning to orbit", zap.String("from", v.focused.Name))
	v.focus.ReturnToDefault(func() { v.handle(event{kind: eventReturnComplete}) })
}

func (v *Viewer) finishReturn() {
	v.focused = nil
	v.returning = false
}

func (v *Viewer) setMode(m Mode) {
	if v.mode == m {
		return
	}
	v.log.Debug("camera mode", zap.Stringer("from", v.mode), zap.Stringer("to", m))
	v.mode = m
}
