package systems

import (
	"log/slog"

	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
	"github.com/pthm-cable/barrage/telemetry"
)

// HUD bar geometry.
const (
	hudBarX      = 1
	hudEnergyY   = 1
	hudChargeY   = 7
	hudBarHeight = 4
	hudBarSpan   = components.ArenaWidth - 5
)

var (
	hudEnergyColor = components.Indexed(1)
	hudChargeColor = components.Indexed(4)
)

// PhaseTimer receives the name of each frame phase as it starts and the
// number of passes collision resolution took.
type PhaseTimer interface {
	StartPhase(phase string)
	RecordPasses(n int)
}

// Driver runs one simulation tick per ProcessFrame call.
type Driver struct {
	reg      *entity.Registry
	director *Director
	timer    PhaseTimer

	playerLives int
}

// NewDriver creates a driver over r.
func NewDriver(r *entity.Registry) *Driver {
	return &Driver{reg: r, director: NewDirector(r)}
}

// SetPhaseTimer installs a timer notified at each phase boundary.
func (d *Driver) SetPhaseTimer(t PhaseTimer) {
	d.timer = t
}

// Registry returns the simulated registry.
func (d *Driver) Registry() *entity.Registry {
	return d.reg
}

// Director returns the spawn director.
func (d *Driver) Director() *Director {
	return d.director
}

// PlayerLives returns how many player ships have been spawned.
func (d *Driver) PlayerLives() int {
	return d.playerLives
}

// ProcessFrame advances the simulation by one tick and draws it to dr.
func (d *Driver) ProcessFrame(dr entity.Drawer) {
	r := d.reg

	d.phase(telemetry.PhaseUpdate)
	if r.State.PlayerPopulation == 0 {
		r.Allies.Insert(entity.NewPlayer(r))
		d.playerLives++
		slog.Info("player spawned", "tick", r.State.Ticks, "score", r.State.Score, "lives", d.playerLives)
	}

	d.phase(telemetry.PhaseDraw)
	drawBar(dr, hudEnergyY, r.State.PlayerEnergy, entity.MaxEnergy, hudEnergyColor)
	drawBar(dr, hudChargeY, r.State.Charge, entity.MaxCharge, hudChargeColor)

	d.phase(telemetry.PhaseUpdate)
	r.Allies.Update()
	r.Enemies.Update()
	r.Debris.Update()

	d.phase(telemetry.PhaseCollide)
	passes := Resolve(r.Allies, r.Enemies)
	if d.timer != nil {
		d.timer.RecordPasses(passes)
	}

	d.phase(telemetry.PhaseDraw)
	r.Enemies.Draw(dr)
	r.Allies.Draw(dr)
	r.Debris.Draw(dr)

	d.phase(telemetry.PhaseSpawn)
	if r.PlayerAlive() {
		d.director.Step()
	} else {
		slog.Info("player destroyed", "tick", r.State.Ticks, "score", r.State.Score)
	}

	r.State.Ticks++
}

func (d *Driver) phase(name string) {
	if d.timer != nil {
		d.timer.StartPhase(name)
	}
}

// drawBar draws a HUD bar proportional to value/max.
func drawBar(dr entity.Drawer, y, value, max int, c components.Color) {
	if max == 0 {
		max = 1
	}
	w := int(float64(value) * hudBarSpan / float64(max))
	if w < 0 {
		w = 0
	}
	dr.FillBox(hudBarX, y, w, hudBarHeight, c)
}
