package viewer

import (
	"time"

	"github.com/Faultbox/headset-viewer/internal/scene"
)

type pendingFlash struct {
	original scene.Color
	until    time.Time
}

// clickFlash tints a clicked part's material briefly, then restores it.
type clickFlash struct {
	clock    Clock
	color    scene.Color
	duration time.Duration
	pending  map[*scene.Material]pendingFlash
}

func newClickFlash(clock Clock, color scene.Color, duration time.Duration) *clickFlash {
	return &clickFlash{
		clock:    clock,
		color:    color,
		duration: duration,
		pending:  make(map[*scene.Material]pendingFlash),
	}
}

// Start tints m. A repeat flash extends the deadline and keeps the first original.
func (f *clickFlash) Start(m *scene.Material) {
	if m == nil || f.duration <= 0 {
		return
	}
	until := f.clock.Now().Add(f.duration)
	if p, ok := f.pending[m]; ok {
		p.until = until
		f.pending[m] = p
		return
	}
	f.pending[m] = pendingFlash{original: m.Color, until: until}
	m.Color = f.color
}

// Poll restores expired flashes. A material recoloured meanwhile keeps its new colour.
func (f *clickFlash) Poll() {
	now := f.clock.Now()
	for m, p := range f.pending {
		if now.Before(p.until) {
			continue
		}
		if m.Color == f.color {
			m.Color = p.original
		}
		delete(f.pending, m)
	}
}

// Reset forgets pending flashes without restoring.
func (f *clickFlash) Reset() {
	clear(f.pending)
}
