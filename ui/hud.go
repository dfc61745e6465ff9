package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/barrage/entity"
	"github.com/pthm-cable/barrage/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title    string
	Score    int
	Tick     int32
	Allies   int
	Enemies  int
	Debris   int
	Ships    int
	Energy   int
	Charge   int
	Speed    int
	FPS      int32
	Paused   bool
	Autofire bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Score: %d | Ships: %d", data.Score, data.Ships),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Allies: %d | Enemies: %d | Debris: %d", data.Allies, data.Enemies, data.Debris),
		10, 55, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS),
		10, 75, 16, rl.LightGray,
	)

	y := int32(97)
	y = h.renderer.DrawEnergyBar(10, y, "Energy", float32(data.Energy), entity.MaxEnergy, 260)
	h.renderer.DrawEnergyBar(10, y, "Charge", float32(data.Charge), entity.MaxCharge, 260)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	if data.Autofire {
		statusText += " | AUTO"
	}
	rl.DrawText(statusText, 10, y+20, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the per-phase timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	rl.DrawText("Frame Phases", x, y, 16, rl.White)
	y += 20

	rl.DrawText(
		fmt.Sprintf("Tick: %s (max %s) | %.0f t/s",
			stats.AvgTick.Round(time.Microsecond),
			stats.MaxTick.Round(time.Microsecond),
			stats.TicksPerSecond),
		x, y, 14, rl.Yellow,
	)
	y += 16

	rl.DrawText(fmt.Sprintf("Collide passes: %.2f avg, %d max", stats.AvgPasses, stats.MaxPasses), x, y, 12, rl.LightGray)
	y += 14

	for _, pt := range stats.Phases {
		name, avg, pct := pt.Name, pt.Avg, pt.Pct

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-10s %8s %5.1f%%", name, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
