package scene

import (
	"github.com/google/uuid"

	"github.com/Faultbox/headset-viewer/pkg/math"
)

// Scene is the flat registry of parts plus the product root offset.
type Scene struct {
	// Root offsets every part; the idle float animation moves it.
	Root math.Vec3

	Materials *Materials

	parts []*Part
	byID  map[uuid.UUID]*Part
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		Materials: NewMaterials(),
		byID:      make(map[uuid.UUID]*Part),
	}
}

// Add registers a part and returns it.
func (s *Scene) Add(p *Part) *Part {
	s.parts = append(s.parts, p)
	s.byID[p.ID] = p
	return p
}

// Parts returns all parts in registration order.
func (s *Scene) Parts() []*Part {
	return s.parts
}

// Part looks a part up by id.
func (s *Scene) Part(id uuid.UUID) (*Part, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// FindByName returns the first part with the given name.
func (s *Scene) FindByName(name string) *Part {
	for _, p := range s.parts {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Explodable returns the parts flagged explodable.
func (s *Scene) Explodable() []*Part {
	var out []*Part
	for _, p := range s.parts {
		if p.Explodable {
			out = append(out, p)
		}
	}
	return out
}

// WorldPosition returns the part position including the root offset.
func (s *Scene) WorldPosition(p *Part) math.Vec3 {
	return s.Root.Add(p.Position)
}

// WorldBounds returns the part's world-space bounding box.
func (s *Scene) WorldBounds(p *Part) math.Box3 {
	return p.Bounds.Translate(s.WorldPosition(p))
}
