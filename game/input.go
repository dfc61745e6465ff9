package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/barrage/entity"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyA) {
		g.SetAutofire(!g.Autofire())
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		g.SetStepsPerUpdate(g.StepsPerUpdate() - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		g.SetStepsPerUpdate(g.StepsPerUpdate() + 1)
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyD) {
		g.debug.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF12) {
		g.SaveSnapshot()
	}

	g.handleOverlayKeys()

	g.handleCameraInput()
	g.handleInspectorInput()
}

// handleInspectorInput picks objects with the middle button, or with the
// left button while paused.
func (g *Game) handleInspectorInput() {
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && g.inspector.HandleClick(int32(mouse.X), int32(mouse.Y)) {
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		g.inspector.Deselect()
	}

	pick := rl.IsMouseButtonPressed(rl.MouseButtonMiddle) ||
		(g.paused && rl.IsMouseButtonPressed(rl.MouseButtonLeft))
	if !pick || g.debug.Contains(int32(mouse.X), int32(mouse.Y)) {
		return
	}
	x, y := g.camera.ScreenToArena(mouse.X, mouse.Y)
	g.inspector.Pick(g.Registry(), x, y)
}

// pollInput samples the mouse into an input snapshot. The cursor is mapped
// into arena coordinates; clicks over the debug panel do not fire.
func (g *Game) pollInput() entity.Input {
	if g.Autofire() {
		return g.HeadlessInput()
	}

	mouse := rl.GetMousePosition()
	x, y := g.camera.ScreenToArena(mouse.X, mouse.Y)
	in := entity.Input{CursorX: x, CursorY: y}

	if g.debug.Contains(int32(mouse.X), int32(mouse.Y)) || g.inspector.Contains(int32(mouse.X), int32(mouse.Y)) {
		return in
	}
	in.Fire = rl.IsMouseButtonDown(rl.MouseButtonLeft)
	in.AltFire = rl.IsMouseButtonDown(rl.MouseButtonRight)
	return in
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
	g.perfPanel.SetPosition(int32(w)-300, 10)
	g.debug.SetPosition(int32(w)-250, int32(h)-g.debug.Height()-40)
	g.inspector.Resize(int32(w), int32(h))
}

// handleCameraInput processes camera pan/zoom controls.
func (g *Game) handleCameraInput() {
	// Pan speed scales inversely with zoom for natural feel
	panSpeed := float32(8.0) / g.camera.Zoom

	// Arrow key panning
	if rl.IsKeyDown(rl.KeyRight) {
		g.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		g.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		g.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		g.camera.Pan(0, -panSpeed)
	}

	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		g.camera.ZoomBy(1 + wheelMove*0.1)
	}

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	// Home key to reset camera
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
