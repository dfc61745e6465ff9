package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
	"github.com/pthm-cable/barrage/systems"
	"github.com/pthm-cable/barrage/ui"
)

var (
	allyBoxColor   = rl.Color{R: 80, G: 200, B: 255, A: 160}
	enemyBoxColor  = rl.Color{R: 255, G: 90, B: 90, A: 160}
	shieldColor    = rl.Color{R: 120, G: 255, B: 160, A: 90}
	cursorColor    = rl.Color{R: 255, G: 255, B: 0, A: 200}
	arenaEdgeColor = rl.Color{R: 70, G: 80, B: 90, A: 255}
)

// handleOverlayKeys checks for overlay toggle key presses.
func (g *Game) handleOverlayKeys() {
	g.overlays.HandleKeys(rl.IsKeyPressed)
}

// drawActiveOverlays renders the enabled debug overlays over the arena.
func (g *Game) drawActiveOverlays() {
	for _, id := range g.overlays.EnabledOverlays() {
		switch id {
		case ui.OverlayArenaFrame:
			g.sprites.DrawArenaFrame(arenaEdgeColor)
		case ui.OverlayHitboxes:
			g.drawHitboxes(g.Registry().Allies, allyBoxColor)
			g.drawHitboxes(g.Registry().Enemies, enemyBoxColor)
		case ui.OverlayShieldRadius:
			g.drawShieldRadius()
		case ui.OverlayCursor:
			g.drawCursor()
		// Starfield and perf are drawn in their own layers
		}
	}
}

// drawHitboxes outlines every ship box in c.
func (g *Game) drawHitboxes(c *entity.Container, color rl.Color) {
	c.Scan(func(o *entity.Object) bool {
		if !o.IsShip() {
			return true
		}
		x, y := o.TopLeft()
		if !g.camera.IsVisible(float32(x), float32(y), float32(o.W), float32(o.H)) {
			return true
		}
		sx, sy := g.camera.WorldToScreen(float32(x), float32(y))
		rl.DrawRectangleLinesEx(rl.Rectangle{
			X: sx, Y: sy,
			Width:  float32(o.W) * g.camera.Zoom,
			Height: float32(o.H) * g.camera.Zoom,
		}, 1, color)
		return true
	})
}

// drawShieldRadius draws the player's near-collision reach.
func (g *Game) drawShieldRadius() {
	reg := g.Registry()
	reg.Allies.Scan(func(o *entity.Object) bool {
		if o.Variant != components.VariantPlayer {
			return true
		}
		reach := float32(math.Hypot(float64(o.W), float64(o.H))) + systems.ShieldMargin
		sx, sy := g.camera.WorldToScreen(float32(reg.State.PlayerX), float32(reg.State.PlayerY))
		rl.DrawCircleLines(int32(sx), int32(sy), reach*g.camera.Zoom, shieldColor)
		return false
	})
}

// drawCursor marks the point the player steers toward.
func (g *Game) drawCursor() {
	in := g.Registry().Input
	sx, sy := g.camera.WorldToScreen(float32(in.CursorX), float32(in.CursorY))
	arm := 6 * g.camera.Zoom
	rl.DrawLineV(rl.Vector2{X: sx - arm, Y: sy}, rl.Vector2{X: sx + arm, Y: sy}, cursorColor)
	rl.DrawLineV(rl.Vector2{X: sx, Y: sy - arm}, rl.Vector2{X: sx, Y: sy + arm}, cursorColor)
}
