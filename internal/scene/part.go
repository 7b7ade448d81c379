// Package scene holds the typed part registry the viewer core operates on.
//
// Parts live in a flat registry instead of a render-owned node tree. Each part carries
// its flags, explosion vector, local transform and appearance; the renderer only reads them.
package scene

import (
	"github.com/google/uuid"

	"github.com/Faultbox/headset-viewer/pkg/math"
)

// Glow is the secondary colour layered over a part's base colour.
type Glow struct {
	Color     Color
	Intensity float32
}

// Appearance is a part's surface. Glow is nil when the surface has no highlight layer.
type Appearance struct {
	Material *Material
	Glow     *Glow
}

// BaseColor returns the colour of the shared material, or black without one.
func (a Appearance) BaseColor() Color {
	if a.Material == nil {
		return 0
	}
	return a.Material.Color
}

// Part is a named, selectable piece of the product.
type Part struct {
	ID          uuid.UUID
	Name        string
	Interactive bool
	Explodable  bool

	// ExplosionVector is the exploded offset, used as-is (its length is the distance).
	ExplosionVector math.Vec3

	// Position is relative to the scene root.
	Position math.Vec3
	// Bounds is the local bounding box around Position.
	Bounds math.Box3

	Appearance Appearance
}

// NewPart creates a part with a fresh identifier.
func NewPart(name string) *Part {
	return &Part{ID: uuid.New(), Name: name}
}

// HasGlow reports whether the part supports a highlight layer.
func (p *Part) HasGlow() bool {
	return p.Appearance.Glow != nil
}
