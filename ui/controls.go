package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel lists the overlays by category with their toggle keys.
// Hovering a row shows its description under the list.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a hidden controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and returns the y just below it.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	pad := r.Theme.Padding
	line := r.Theme.LineHeight

	categories := overlays.Categories()
	rows := int32(len(overlays.All()) + len(categories) + 2) // title and hint
	r.DrawPanel(c.x, c.y, c.width, rows*line+pad*2+int32(len(categories))*4)

	y := c.y + pad
	rl.DrawText("Overlays", c.x+pad, y, 16, rl.White)
	y += line + 4

	mouse := rl.GetMousePosition()
	hint := "hover for details"
	for _, category := range categories {
		rl.DrawText(categoryLabel(category), c.x+pad, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += line

		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+pad, y, desc, overlays.IsEnabled(desc.ID), c.width-pad*2)
			if int32(mouse.Y) >= y && int32(mouse.Y) < y+line && int32(mouse.X) >= c.x && int32(mouse.X) < c.x+c.width {
				hint = desc.Description
			}
			y += line
		}
		y += 4
	}

	rl.DrawText(hint, c.x+pad, y, r.Theme.FontSize-2, r.Theme.LabelColor)
	return y + line
}

// drawToggle draws one overlay row: status square, name, key on the right.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	t := c.renderer.Theme

	status, name := t.BarBg, t.LabelColor
	if enabled {
		status, name = t.BarFillHigh, rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, status)
	rl.DrawText(desc.Name, x+14, y, t.FontSize, name)

	if desc.KeyLabel != "" {
		key := fmt.Sprintf("[%s]", desc.KeyLabel)
		rl.DrawText(key, x+width-rl.MeasureText(key, t.FontSize), y, t.FontSize, t.LabelColor)
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}

// DebugState is the session state the debug panel edits.
type DebugState struct {
	Paused         bool
	Autofire       bool
	StepsPerUpdate int
	MaxSteps       int
}

// DebugActions reports what the user changed this frame.
type DebugActions struct {
	TogglePause    bool
	ToggleAutofire bool
	Snapshot       bool
	StepsPerUpdate int // 0 = unchanged
}

// DebugPanel renders raygui controls for pause, autofire, snapshots and
// simulation speed.
type DebugPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewDebugPanel creates a hidden debug panel.
func NewDebugPanel(x, y, width int32) *DebugPanel {
	return &DebugPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Toggle switches panel visibility.
func (d *DebugPanel) Toggle() bool {
	d.visible = !d.visible
	return d.visible
}

// IsVisible returns whether the panel is shown.
func (d *DebugPanel) IsVisible() bool {
	return d.visible
}

// SetPosition updates the panel position.
func (d *DebugPanel) SetPosition(x, y int32) {
	d.x = x
	d.y = y
}

// Height is the panel's drawn height.
func (d *DebugPanel) Height() int32 {
	return 3*30 + 2*d.renderer.Theme.LineHeight + d.renderer.Theme.Padding*4
}

// Contains reports whether a screen point lies on the visible panel.
func (d *DebugPanel) Contains(x, y int32) bool {
	if !d.visible {
		return false
	}
	return x >= d.x && x < d.x+d.width && y >= d.y && y < d.y+d.Height()
}

// Draw renders the panel and returns the requested changes.
func (d *DebugPanel) Draw(state DebugState) DebugActions {
	var act DebugActions
	if !d.visible {
		return act
	}

	r := d.renderer
	pad := r.Theme.Padding
	r.DrawPanel(d.x, d.y, d.width, d.Height())

	x := float32(d.x + pad)
	y := float32(d.y + pad)
	half := float32(d.width-pad*3) / 2

	rl.DrawText("Debug", int32(x), int32(y), 16, rl.White)
	y += float32(r.Theme.LineHeight) + 4

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, toggleText(state.Paused, "Resume", "Pause")) {
		act.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: x + half + float32(pad), Y: y, Width: half, Height: 24}, toggleText(state.Autofire, "Manual", "Autofire")) {
		act.ToggleAutofire = true
	}
	y += 30

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: 24}, "Snapshot") {
		act.Snapshot = true
	}
	y += 30

	maxSteps := state.MaxSteps
	if maxSteps < 1 {
		maxSteps = 1
	}
	rl.DrawText(fmt.Sprintf("Steps per frame: %d", state.StepsPerUpdate), int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += float32(r.Theme.LineHeight)
	v := gui.SliderBar(
		rl.Rectangle{X: x + 20, Y: y, Width: float32(d.width-pad*2) - 60, Height: 18},
		"1", fmt.Sprintf("%d", maxSteps),
		float32(state.StepsPerUpdate), 1, float32(maxSteps),
	)
	if n := int(v + 0.5); n != state.StepsPerUpdate {
		act.StepsPerUpdate = n
	}
	return act
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
