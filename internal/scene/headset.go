package scene

import "github.com/Faultbox/headset-viewer/pkg/math"

// partSpec is the static placement of one headset part.
type partSpec struct {
	name     string
	slot     Slot
	position math.Vec3
	half     math.Vec3 // bounding half-extents
	explode  math.Vec3
}

var headsetParts = []partSpec{
	{"Left Ear Cup", SlotMetal, math.Vec3{X: -1}, math.Vec3{X: 0.15, Y: 0.6, Z: 0.6}, math.Vec3{X: -0.9}},
	{"Right Ear Cup", SlotMetal, math.Vec3{X: 1}, math.Vec3{X: 0.15, Y: 0.6, Z: 0.6}, math.Vec3{X: 0.9}},
	{"Left Speaker Grille", SlotInnerMetal, math.Vec3{X: -0.88}, math.Vec3{X: 0.03, Y: 0.45, Z: 0.45}, math.Vec3{X: -0.6}},
	{"Right Speaker Grille", SlotInnerMetal, math.Vec3{X: 0.88}, math.Vec3{X: 0.03, Y: 0.45, Z: 0.45}, math.Vec3{X: 0.6}},
	{"Left Ear Cushion", SlotCushion, math.Vec3{X: -0.8}, math.Vec3{X: 0.1, Y: 0.7, Z: 0.7}, math.Vec3{X: -0.35}},
	{"Right Ear Cushion", SlotCushion, math.Vec3{X: 0.8}, math.Vec3{X: 0.1, Y: 0.7, Z: 0.7}, math.Vec3{X: 0.35}},
	{"Headband Left", SlotPlastic, math.Vec3{X: -0.7, Y: 1}, math.Vec3{X: 0.4, Y: 0.4, Z: 0.1}, math.Vec3{X: -0.3, Y: 0.6}},
	{"Headband Top", SlotPlastic, math.Vec3{Y: 1.3}, math.Vec3{X: 0.5, Y: 0.1, Z: 0.1}, math.Vec3{Y: 0.9}},
	{"Headband Right", SlotPlastic, math.Vec3{X: 0.7, Y: 1}, math.Vec3{X: 0.4, Y: 0.4, Z: 0.1}, math.Vec3{X: 0.3, Y: 0.6}},
	{"Mic Boom", SlotMic, math.Vec3{X: -1.05, Y: -0.35, Z: 0.45}, math.Vec3{X: 0.04, Y: 0.04, Z: 0.35}, math.Vec3{X: -0.5, Y: -0.3, Z: 0.6}},
	{"Mic Tip", SlotMic, math.Vec3{X: -1.05, Y: -0.35, Z: 0.85}, math.Vec3{X: 0.08, Y: 0.08, Z: 0.08}, math.Vec3{X: -0.6, Y: -0.4, Z: 0.9}},
}

// NewHeadsetMaterials returns the shared headset materials at their default palette.
func NewHeadsetMaterials() map[Slot]*Material {
	return map[Slot]*Material{
		SlotMetal:      {Name: "metal", Slot: SlotMetal, Color: 0x2e3a59, Metalness: 0.9, Roughness: 0.22},
		SlotInnerMetal: {Name: "innerMetal", Slot: SlotInnerMetal, Color: 0x4c5c8a, Metalness: 0.8, Roughness: 0.3},
		SlotCushion:    {Name: "cushion", Slot: SlotCushion, Color: 0x849eb7, Metalness: 0, Roughness: 0.9},
		SlotPlastic:    {Name: "plastic", Slot: SlotPlastic, Color: 0x7b9bb9, Metalness: 0.25, Roughness: 0.6},
		SlotMic:        {Name: "mic", Slot: SlotMic, Color: 0x303c5e, Metalness: 0.2, Roughness: 0.65},
	}
}

// BuildHeadset assembles the headset: every part is interactive, explodable and
// carries a glow layer.
func BuildHeadset() *Scene {
	s := New()

	materials := NewHeadsetMaterials()
	for _, slot := range Slots {
		s.Materials.Track(materials[slot])
	}

	for _, spec := range headsetParts {
		p := NewPart(spec.name)
		p.Interactive = true
		p.Explodable = true
		p.ExplosionVector = spec.explode
		p.Position = spec.position
		p.Bounds = math.NewBox3(spec.half.Scale(-1), spec.half)
		p.Appearance = Appearance{
			Material: materials[spec.slot],
			Glow:     &Glow{},
		}
		s.Add(p)
	}
	return s
}
