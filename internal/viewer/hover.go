package viewer

import "github.com/Faultbox/headset-viewer/internal/scene"

const unnamedPart = "Unnamed Part"

// HoverTracker keeps at most one part highlighted.
type HoverTracker struct {
	color     scene.Color
	intensity float32

	current  *scene.Part
	saved    scene.Glow
	hasSaved bool
}

// NewHoverTracker creates a tracker that highlights with the given glow.
func NewHoverTracker(color scene.Color, intensity float32) *HoverTracker {
	return &HoverTracker{color: color, intensity: intensity}
}

// Update moves the highlight to picked (nil clears it). The previous part is
// restored before the new one is lit, so two parts never glow at once.
func (h *HoverTracker) Update(picked *scene.Part) {
	if picked == h.current {
		return
	}

	if h.current != nil && h.hasSaved && h.current.HasGlow() {
		*h.current.Appearance.Glow = h.saved
	}
	h.current = picked
	h.hasSaved = false

	if picked == nil || !picked.HasGlow() {
		return
	}
	h.saved = *picked.Appearance.Glow
	h.hasSaved = true
	*picked.Appearance.Glow = scene.Glow{Color: h.color, Intensity: h.intensity}
}

// Current returns the hovered part, or nil.
func (h *HoverTracker) Current() *scene.Part {
	return h.current
}

// Tooltip returns the label to show and whether the tooltip is visible.
func (h *HoverTracker) Tooltip() (string, bool) {
	if h.current == nil {
		return "", false
	}
	if h.current.Name == "" {
		return unnamedPart, true
	}
	return h.current.Name, true
}
