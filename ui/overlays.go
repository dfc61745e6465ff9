// Package ui draws the raylib layers around the arena: HUD text, the
// overlay toggle panel, the perf panel and the raygui debug controls.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayStarfield    OverlayID = "starfield"
	OverlayArenaFrame   OverlayID = "arena_frame"
	OverlayHitboxes     OverlayID = "hitboxes"
	OverlayShieldRadius OverlayID = "shield_radius"
	OverlayCursor       OverlayID = "cursor"
	OverlayPerf         OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32  // toggle key, 0 = none
	KeyLabel    string // shown in the controls panel
	Category    string // "visual" or "debug"
}

// OverlayRegistry holds the overlays in registration order and which of
// them are on.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{enabled: make(map[OverlayID]bool)}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds standard overlays. The starfield and the arena
// frame start enabled.
func (r *OverlayRegistry) registerDefaults() {
	// Visual overlays
	r.Register(OverlayDescriptor{
		ID:          OverlayStarfield,
		Name:        "Starfield",
		Description: "Scrolling stars behind the arena",
		Key:         rl.KeyS,
		KeyLabel:    "S",
		Category:    "visual",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayArenaFrame,
		Name:        "Arena Frame",
		Description: "Outline the 640x480 arena",
		Key:         rl.KeyF,
		KeyLabel:    "F",
		Category:    "visual",
	})

	// Debug overlays
	r.Register(OverlayDescriptor{
		ID:          OverlayHitboxes,
		Name:        "Hitboxes",
		Description: "Show ship bounding boxes by faction",
		Key:         rl.KeyB,
		KeyLabel:    "B",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayShieldRadius,
		Name:        "Shield Radius",
		Description: "Show the near-collision radius around the player",
		Key:         rl.KeyR,
		KeyLabel:    "R",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayCursor,
		Name:        "Cursor",
		Description: "Show the input cursor the player steers toward",
		Key:         rl.KeyC,
		KeyLabel:    "C",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Perf Panel",
		Description: "Show per-phase tick timing",
		Key:         rl.KeyP,
		KeyLabel:    "P",
		Category:    "debug",
	})

	r.SetEnabled(OverlayStarfield, true)
	r.SetEnabled(OverlayArenaFrame, true)
}

// Register adds an overlay, initially off. Registering an existing ID
// replaces its descriptor.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	for i := range r.descriptors {
		if r.descriptors[i].ID == desc.ID {
			r.descriptors[i] = desc
			return
		}
	}
	r.descriptors = append(r.descriptors, desc)
	r.enabled[desc.ID] = false
}

// Toggle flips an overlay and returns its new state. Unknown IDs stay off.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	on, ok := r.enabled[id]
	if !ok {
		return false
	}
	r.enabled[id] = !on
	return !on
}

// SetEnabled sets an overlay's state. Unknown IDs are ignored.
func (r *OverlayRegistry) SetEnabled(id OverlayID, on bool) {
	if _, ok := r.enabled[id]; ok {
		r.enabled[id] = on
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// HandleKeys toggles every overlay whose key pressed reports as hit.
func (r *OverlayRegistry) HandleKeys(pressed func(key int32) bool) {
	for _, desc := range r.descriptors {
		if desc.Key != 0 && pressed(desc.Key) {
			r.Toggle(desc.ID)
		}
	}
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns the distinct categories in first-seen order.
func (r *OverlayRegistry) Categories() []string {
	var cats []string
	for _, desc := range r.descriptors {
		seen := false
		for _, c := range cats {
			if c == desc.Category {
				seen = true
				break
			}
		}
		if !seen {
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// EnabledOverlays returns the active overlay IDs in registration order.
func (r *OverlayRegistry) EnabledOverlays() []OverlayID {
	var result []OverlayID
	for _, desc := range r.descriptors {
		if r.enabled[desc.ID] {
			result = append(result, desc.ID)
		}
	}
	return result
}
