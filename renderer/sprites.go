package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/barrage/camera"
	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
)

// SpriteRenderer implements entity.Drawer with raylib primitives. Sprites
// are drawn as flat shapes scaled through the camera; no image assets are
// loaded.
type SpriteRenderer struct {
	cam *camera.Camera
}

var _ entity.Drawer = (*SpriteRenderer)(nil)

// NewSpriteRenderer creates a renderer drawing through cam.
func NewSpriteRenderer(cam *camera.Camera) *SpriteRenderer {
	return &SpriteRenderer{cam: cam}
}

var (
	shipColor    = rl.Color{R: 120, G: 200, B: 255, A: 255}
	flameColor   = rl.Color{R: 255, G: 140, B: 40, A: 255}
	ballColor    = rl.RayWhite
	chargedColor = rl.Color{R: 255, G: 220, B: 80, A: 255}
	gunshipColor = rl.Color{R: 220, G: 80, B: 80, A: 255}
	groundColor  = rl.Color{R: 120, G: 220, B: 120, A: 255}
	vortexColor  = rl.Color{R: 200, G: 120, B: 255, A: 255}
	rainColor    = rl.Color{R: 140, G: 140, B: 200, A: 255}
	rockColor    = rl.Color{R: 170, G: 140, B: 100, A: 255}
)

// DrawSprite draws sprite s with its top-left corner at arena (x, y).
func (r *SpriteRenderer) DrawSprite(s entity.Sprite, x, y int) {
	w, h := s.Size()
	if w == 0 || !r.cam.IsVisible(float32(x), float32(y), float32(w), float32(h)) {
		return
	}

	left, top := r.cam.WorldToScreen(float32(x), float32(y))
	sw, sh := float32(w)*r.cam.Zoom, float32(h)*r.cam.Zoom
	cx, cy := left+sw/2, top+sh/2

	switch s {
	case entity.SpriteShip:
		// Engine flame below the hull
		rl.DrawTriangle(
			rl.Vector2{X: cx - sw*0.12, Y: top + sh*0.85},
			rl.Vector2{X: cx, Y: top + sh},
			rl.Vector2{X: cx + sw*0.12, Y: top + sh*0.85},
			flameColor,
		)
		drawUpTriangle(cx, top, sw, sh*0.85, shipColor)

	case entity.SpriteBall:
		rl.DrawCircle(int32(cx), int32(cy), sw/2, ballColor)

	case entity.SpriteCharged0, entity.SpriteCharged1, entity.SpriteCharged2:
		rl.DrawCircle(int32(cx), int32(cy), sw/2, chargedColor)
		rl.DrawCircleLines(int32(cx), int32(cy), sw/2, rl.White)

	case entity.SpriteGunship:
		drawDownTriangle(cx, top, sw, sh, gunshipColor)

	case entity.SpriteGroundEnemy:
		rl.DrawRectangleRec(rl.Rectangle{X: left, Y: top + sh*0.3, Width: sw, Height: sh * 0.7}, groundColor)
		rl.DrawRectangleRec(rl.Rectangle{X: cx - sw*0.1, Y: top, Width: sw * 0.2, Height: sh * 0.4}, groundColor)

	case entity.SpriteVortex:
		for i := float32(1); i <= 3; i++ {
			rl.DrawEllipseLines(int32(cx), int32(cy), sw/2*i/3, sh/2*i/3, vortexColor)
		}

	case entity.SpriteRain:
		rl.DrawCircle(int32(cx-sw*0.2), int32(cy), sw*0.3, rainColor)
		rl.DrawCircle(int32(cx+sw*0.2), int32(cy), sw*0.3, rainColor)

	case entity.SpriteAsteroid:
		rl.DrawPoly(rl.Vector2{X: cx, Y: cy}, 6, sw/2+1, 0, rockColor)
	}
}

// FillBox fills an arena-space rectangle.
func (r *SpriteRenderer) FillBox(x, y, w, h int, c components.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	left, top := r.cam.WorldToScreen(float32(x), float32(y))
	sw, sh := float32(w)*r.cam.Zoom, float32(h)*r.cam.Zoom
	rl.DrawRectangleRec(rl.Rectangle{X: left, Y: top, Width: sw, Height: sh}, Color(c))
}

// Color converts a palette colour to an opaque raylib colour.
func Color(c components.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// drawUpTriangle draws an upward triangle. DrawTriangle requires
// counter-clockwise winding (top, bottom-left, bottom-right).
func drawUpTriangle(cx, top, w, h float32, color rl.Color) {
	rl.DrawTriangle(
		rl.Vector2{X: cx, Y: top},
		rl.Vector2{X: cx - w/2, Y: top + h},
		rl.Vector2{X: cx + w/2, Y: top + h},
		color,
	)
}

func drawDownTriangle(cx, top, w, h float32, color rl.Color) {
	rl.DrawTriangle(
		rl.Vector2{X: cx - w/2, Y: top},
		rl.Vector2{X: cx, Y: top + h},
		rl.Vector2{X: cx + w/2, Y: top},
		color,
	)
}

// DrawArenaFrame outlines the arena so the letterbox is visible.
func (r *SpriteRenderer) DrawArenaFrame(color rl.Color) {
	left, top := r.cam.WorldToScreen(0, 0)
	right, bottom := r.cam.WorldToScreen(components.ArenaWidth, components.ArenaHeight)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: left, Y: top, Width: right - left, Height: bottom - top}, 1, color)
}
