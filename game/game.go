// Package game is the raylib frontend: it runs a sim.Session once per
// window frame and presents the recorded draw calls through the camera.
package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/barrage/camera"
	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
	"github.com/pthm-cable/barrage/inspector"
	"github.com/pthm-cable/barrage/renderer"
	"github.com/pthm-cable/barrage/sim"
	"github.com/pthm-cable/barrage/ui"
)

// Game holds the window-side state around a session.
type Game struct {
	*sim.Session

	camera  *camera.Camera
	sprites *renderer.SpriteRenderer
	stars   *renderer.Starfield
	frame   entity.DrawList

	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	controls  *ui.ControlsPanel
	debug     *ui.DebugPanel
	overlays  *ui.OverlayRegistry
	inspector *inspector.Inspector

	paused bool

	// Window dimensions
	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game for the current window.
func NewGameWithOptions(opts sim.Options) (*Game, error) {
	s, err := sim.NewSession(opts)
	if err != nil {
		return nil, err
	}
	cfg := s.Config()

	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w <= 0 || h <= 0 {
		w, h = float32(cfg.Screen.Width), float32(cfg.Screen.Height)
	}

	cam := camera.New(w, h, components.ArenaWidth, components.ArenaHeight)
	g := &Game{
		Session:      s,
		camera:       cam,
		sprites:      renderer.NewSpriteRenderer(cam),
		stars:        renderer.NewStarfield(cfg.Background, opts.Seed),
		hud:          ui.NewHUD(),
		perfPanel:    ui.NewPerfPanel(int32(w)-300, 10),
		controls:     ui.NewControlsPanel(10, 200, 220),
		debug:        ui.NewDebugPanel(int32(w)-250, int32(h)-190, 240),
		overlays:     ui.NewOverlayRegistry(),
		inspector:    inspector.NewInspector(int32(w), int32(h)),
		screenWidth:  w,
		screenHeight: h,
	}
	return g, nil
}

// Update handles input and advances the simulation by StepsPerUpdate ticks.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	in := g.pollInput()
	for i := 0; i < g.StepsPerUpdate(); i++ {
		g.frame.Reset()
		g.Step(in, &g.frame)
		g.stars.Update()
	}
}

// Paused reports whether the simulation is halted.
func (g *Game) Paused() bool {
	return g.paused
}

// Unload releases resources.
func (g *Game) Unload() {
	g.Close()
}
