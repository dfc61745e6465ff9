package sim

import (
	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/config"
	"github.com/pthm-cable/barrage/entity"
)

// Autopilot sweeps the cursor back and forth across the arena at row p.Y
// with the primary weapon held, and releases the charged shot once the
// charge reaches p.AltCharge of its maximum.
func Autopilot(p config.AutopilotConfig, s entity.State) entity.Input {
	period := p.Period
	if period < 1 {
		period = 1
	}
	span := components.ArenaWidth - 2*p.Margin
	if span < 0 {
		span = 0
	}
	phase := s.Ticks % (2 * period)
	if phase > period {
		phase = 2*period - phase
	}
	return entity.Input{
		CursorX: p.Margin + span*phase/period,
		CursorY: p.Y,
		Fire:    true,
		AltFire: float64(s.Charge) >= p.AltCharge*entity.MaxCharge,
	}
}
