// Package inspector shows the details of one picked object in the raylib
// frontend.
package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
)

// Panel dimensions
const (
	PanelWidth   = 260
	PanelPadding = 10
	HeaderHeight = 30
	panelHeight  = HeaderHeight + PanelPadding*2 + 20*5 + 18
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSelection   = rl.Color{R: 255, G: 255, B: 255, A: 200}
)

// pickSlack widens hit boxes so small projectiles can be clicked.
const pickSlack = 4

// Inspector manages object selection and panel rendering.
type Inspector struct {
	selected *entity.Object
	panelX   int32
	panelY   int32
}

// NewInspector creates an inspector whose panel sits at the top right.
func NewInspector(screenWidth, screenHeight int32) *Inspector {
	ins := &Inspector{}
	ins.Resize(screenWidth, screenHeight)
	return ins
}

// Resize moves the panel for a new window size.
func (ins *Inspector) Resize(screenWidth, screenHeight int32) {
	ins.panelX = screenWidth - PanelWidth - 10
	ins.panelY = screenHeight - panelHeight - 240
	if ins.panelY < 10 {
		ins.panelY = 10
	}
}

// Pick selects the object under arena point (x, y), or clears the
// selection when nothing is there.
func (ins *Inspector) Pick(reg *entity.Registry, x, y int) {
	ins.selected = reg.ObjectAt(x, y, pickSlack)
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.selected = nil
}

// Selected returns the selected object while it is still alive.
func (ins *Inspector) Selected() (*entity.Object, bool) {
	if ins.selected == nil || !ins.selected.Alive() {
		ins.selected = nil
		return nil, false
	}
	return ins.selected, true
}

// Contains reports whether a screen point lies on the open panel.
func (ins *Inspector) Contains(x, y int32) bool {
	if _, ok := ins.Selected(); !ok {
		return false
	}
	return x >= ins.panelX && x <= ins.panelX+PanelWidth && y >= ins.panelY && y <= ins.panelY+panelHeight
}

// HandleClick closes the panel when its close button is hit. It reports
// whether the click was consumed by the panel.
func (ins *Inspector) HandleClick(x, y int32) bool {
	if !ins.Contains(x, y) {
		return false
	}
	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	if x >= closeX && x <= closeX+20 && y >= closeY && y <= closeY+20 {
		ins.Deselect()
	}
	return true
}

// Draw renders the panel for the selected object. toScreen maps an arena
// box to screen space for the selection outline.
func (ins *Inspector) Draw(toScreen func(x, y, w, h int) rl.Rectangle) {
	o, ok := ins.Selected()
	if !ok {
		return
	}

	left, top := o.TopLeft()
	rl.DrawRectangleLinesEx(toScreen(left-2, top-2, o.W+4, o.H+4), 1, ColorSelection)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, panelHeight, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: panelHeight},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX := ins.panelX + PanelWidth - 25
	closeY := ins.panelY + 5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding

	y += DrawLabel(x, y, "Variant", o.Variant)
	y += DrawLabel(x, y, "Faction", o.Container().Name())
	y += DrawLabel(x, y, "Center", fmtPoint(o.X, o.Y))
	y += DrawLabel(x, y, "Box", fmtPoint(o.W, o.H))
	if o.Kind == components.KindShip {
		y += DrawLabel(x, y, "Debris", o.DebrisOnDeath)
		DrawBar(x, y, "Energy", float32(o.Energy), entity.MaxEnergy)
	}
}

func fmtPoint(a, b int) string {
	return fmt.Sprintf("(%d, %d)", a, b)
}
