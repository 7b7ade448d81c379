package viewer

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/headset-viewer/internal/scene"
	"github.com/Faultbox/headset-viewer/internal/tween"
	"github.com/Faultbox/headset-viewer/pkg/math"
)

// Explosion moves explodable parts out along their vectors and back.
//
// Rest positions are captured the first time a part explodes and are not
// overwritten afterwards, so toggling mid-animation never drifts the assembly.
type Explosion struct {
	log      *zap.Logger
	scene    *scene.Scene
	tweens   *tween.Manager
	duration time.Duration

	// clearRest drops a part's rest position once its collapse completes.
	clearRest bool

	rest     map[uuid.UUID]math.Vec3
	exploded bool
}

// Exploded reports whether the parts are out (or heading out).
func (e *Explosion) Exploded() bool {
	return e.exploded
}

// RestPosition returns the recorded rest position of a part.
func (e *Explosion) RestPosition(id uuid.UUID) (math.Vec3, bool) {
	p, ok := e.rest[id]
	return p, ok
}

// Toggle flips between exploded and assembled.
func (e *Explosion) Toggle() {
	if e.exploded {
		e.collapse()
		return
	}
	e.explode()
}

// ForceCollapse assembles the parts if they are exploded. Calling it again is a no-op.
func (e *Explosion) ForceCollapse() {
	if !e.exploded {
		return
	}
	e.collapse()
}

func (e *Explosion) explode() {
	e.exploded = true
	parts := e.scene.Explodable()
	e.log.Info("exploding", zap.Int("parts", len(parts)))

	for _, p := range parts {
		rest, ok := e.rest[p.ID]
		if !ok {
			rest = p.Position
			e.rest[p.ID] = rest
		}
		e.tweens.Start(partKey(p), tween.Spec{
			From:     p.Position,
			To:       rest.Add(p.ExplosionVector),
			Duration: e.duration,
			Ease:     tween.OutQuad,
			Apply:    positionSetter(p),
		})
	}
}

func (e *Explosion) collapse() {
	e.exploded = false
	parts := e.scene.Explodable()
	e.log.Info("collapsing", zap.Int("parts", len(parts)))

	for _, p := range parts {
		rest, ok := e.rest[p.ID]
		if !ok {
			e.log.Debug("no rest position, skipping", zap.String("part", p.Name))
			continue
		}
		spec := tween.Spec{
			From:     p.Position,
			To:       rest,
			Duration: e.duration,
			Ease:     tween.InOutQuad,
			Apply:    positionSetter(p),
		}
		if e.clearRest {
			id := p.ID
			spec.Done = func() { delete(e.rest, id) }
		}
		e.tweens.Start(partKey(p), spec)
	}
}

func partKey(p *scene.Part) tween.Key {
	return tween.Key{Target: p.ID, Property: propPosition}
}

func positionSetter(p *scene.Part) func(math.Vec3) {
	return func(v math.Vec3) { p.Position = v }
}
