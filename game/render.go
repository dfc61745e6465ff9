package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/barrage/ui"
)

var backgroundColor = rl.Color{R: 8, G: 10, B: 20, A: 255}

const controlsLegend = "[Mouse] steer  [LMB] fire  [RMB] charged  [Space] pause  [A] autofire  [</>] speed  [Tab] overlays  [D] debug  [MMB] inspect  [F12] snapshot  [Q] quit"

// Draw renders the game state.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	if g.overlays.IsEnabled(ui.OverlayStarfield) {
		g.stars.Draw(g.camera)
	}

	// The frame recorded by the last simulated tick
	g.frame.Replay(g.sprites)

	g.drawActiveOverlays()
	g.inspector.Draw(g.arenaRect)
	g.drawUI()

	rl.EndDrawing()
	g.RecordFrame()
}

// drawUI renders the HUD and panels on top of the arena.
func (g *Game) drawUI() {
	reg := g.Registry()
	st := reg.State

	g.hud.Draw(ui.HUDData{
		Title:    g.Config().Screen.Title,
		Score:    st.Score,
		Tick:     g.Tick(),
		Allies:   reg.Allies.Len(),
		Enemies:  reg.Enemies.Len(),
		Debris:   reg.Debris.Len(),
		Ships:    g.Driver().PlayerLives(),
		Energy:   st.PlayerEnergy,
		Charge:   st.Charge,
		Speed:    g.StepsPerUpdate(),
		FPS:      rl.GetFPS(),
		Paused:   g.paused,
		Autofire: g.Autofire(),
	})
	g.hud.DrawControls(int32(g.screenWidth), int32(g.screenHeight), controlsLegend)

	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.PerfStats())
	}

	g.controls.Draw(g.overlays)

	act := g.debug.Draw(ui.DebugState{
		Paused:         g.paused,
		Autofire:       g.Autofire(),
		StepsPerUpdate: g.StepsPerUpdate(),
		MaxSteps:       g.Config().Frame.MaxSteps,
	})
	g.applyDebugActions(act)
}

// applyDebugActions applies the debug panel's requested changes.
func (g *Game) applyDebugActions(act ui.DebugActions) {
	if act.TogglePause {
		g.paused = !g.paused
	}
	if act.ToggleAutofire {
		g.SetAutofire(!g.Autofire())
	}
	if act.Snapshot {
		g.SaveSnapshot()
	}
	if act.StepsPerUpdate > 0 {
		g.SetStepsPerUpdate(act.StepsPerUpdate)
	}
}

// arenaRect maps an arena box to screen space.
func (g *Game) arenaRect(x, y, w, h int) rl.Rectangle {
	sx, sy := g.camera.WorldToScreen(float32(x), float32(y))
	return rl.Rectangle{X: sx, Y: sy, Width: float32(w) * g.camera.Zoom, Height: float32(h) * g.camera.Zoom}
}
