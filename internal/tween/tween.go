// Package tween runs time-bounded interpolations of Vec3 properties.
//
// Every tween is keyed by (target, property). Starting a tween on a key that already has
// one in flight cancels the older tween, so two tweens never race on the same property.
// The manager is advanced explicitly from the frame loop; it never spawns goroutines.
package tween

import (
	"time"

	"github.com/Faultbox/headset-viewer/pkg/math"
)

// Key identifies the property a tween drives. Target must be comparable.
type Key struct {
	Target   any
	Property string
}

// Spec describes a single tween.
type Spec struct {
	From     math.Vec3
	To       math.Vec3
	Duration time.Duration
	Ease     Ease

	// Apply receives the interpolated value on every step, including the final one.
	Apply func(v math.Vec3)
	// Done runs once after the final Apply. It does not run for cancelled tweens.
	Done func()
}

// Handle refers to a started tween.
type Handle struct {
	key       Key
	spec      Spec
	elapsed   time.Duration
	cancelled bool
	finished  bool
}

// Key returns the key the tween was started with.
func (h *Handle) Key() Key {
	return h.key
}

// Active reports whether the tween is still running.
func (h *Handle) Active() bool {
	return !h.cancelled && !h.finished
}

// Manager owns all in-flight tweens.
type Manager struct {
	byKey  map[Key]*Handle
	active []*Handle
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{byKey: make(map[Key]*Handle)}
}

// Start begins a tween, superseding any tween already running on the same key.
// A non-positive duration applies the end value immediately.
func (m *Manager) Start(key Key, spec Spec) *Handle {
	m.Cancel(key)

	if spec.Ease == nil {
		spec.Ease = Linear
	}
	h := &Handle{key: key, spec: spec}

	if spec.Duration <= 0 {
		h.finished = true
		if spec.Apply != nil {
			spec.Apply(spec.To)
		}
		if spec.Done != nil {
			spec.Done()
		}
		return h
	}

	m.byKey[key] = h
	m.active = append(m.active, h)
	return h
}

// Cancel stops the tween on key, if any. The property keeps its current value.
func (m *Manager) Cancel(key Key) {
	if h, ok := m.byKey[key]; ok {
		h.cancelled = true
		delete(m.byKey, key)
	}
}

// Running reports whether a tween is in flight for key.
func (m *Manager) Running(key Key) bool {
	_, ok := m.byKey[key]
	return ok
}

// Len returns the number of tweens in flight.
func (m *Manager) Len() int {
	return len(m.byKey)
}

// Update advances every tween by dt. Done callbacks run after all tweens have stepped,
// in start order, and may start new tweens; those first advance on the next Update.
func (m *Manager) Update(dt time.Duration) {
	if len(m.active) == 0 {
		return
	}

	current := m.active
	m.active = nil

	var done []*Handle
	for _, h := range current {
		if h.cancelled {
			continue
		}
		h.elapsed += dt
		progress := float64(h.elapsed) / float64(h.spec.Duration)
		if progress >= 1 {
			progress = 1
			h.finished = true
		}
		if h.spec.Apply != nil {
			h.spec.Apply(h.spec.From.Lerp(h.spec.To, float32(h.spec.Ease(progress))))
		}
		if h.cancelled {
			continue
		}
		if h.finished {
			if m.byKey[h.key] == h {
				delete(m.byKey, h.key)
			}
			done = append(done, h)
			continue
		}
		m.active = append(m.active, h)
	}

	for _, h := range done {
		if h.spec.Done != nil {
			h.spec.Done()
		}
	}
}
