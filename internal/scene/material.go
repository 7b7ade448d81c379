package scene

// Slot names a semantic colour slot shared by several parts.
type Slot string

const (
	SlotMetal      Slot = "metal"
	SlotInnerMetal Slot = "innerMetal"
	SlotCushion    Slot = "cushion"
	SlotPlastic    Slot = "plastic"
	SlotMic        Slot = "mic"
)

// Slots lists the known slots in display order.
var Slots = []Slot{SlotMetal, SlotInnerMetal, SlotCushion, SlotPlastic, SlotMic}

// Material is a shared surface definition. Parts reference materials by pointer, so a
// colour change is visible on every part using the material.
type Material struct {
	Name      string
	Slot      Slot
	Color     Color
	Metalness float32
	Roughness float32
}

// Materials tracks live material instances per slot.
type Materials struct {
	bySlot map[Slot][]*Material
}

// NewMaterials creates an empty tracker.
func NewMaterials() *Materials {
	return &Materials{bySlot: make(map[Slot][]*Material)}
}

// Track registers m under its slot. Materials without a slot are not tracked.
func (ms *Materials) Track(m *Material) *Material {
	if m.Slot != "" {
		ms.bySlot[m.Slot] = append(ms.bySlot[m.Slot], m)
	}
	return m
}

// InSlot returns the tracked materials for slot.
func (ms *Materials) InSlot(slot Slot) []*Material {
	return ms.bySlot[slot]
}

// Recolor sets the base colour of every material tracked under slot and
// returns how many were changed.
func (ms *Materials) Recolor(slot Slot, c Color) int {
	list := ms.bySlot[slot]
	for _, m := range list {
		m.Color = c
	}
	return len(list)
}
