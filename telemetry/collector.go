package telemetry

import (
	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
)

// Collector accumulates lifecycle events within tick windows and produces
// WindowStats. It implements entity.Recorder.
type Collector struct {
	windowDurationTicks int32

	// Current window tracking
	windowStartTick  int32
	windowStartScore int

	// Event counters for current window, indexed by variant
	spawns [components.NumVariants]int
	kills  [components.NumVariants]int
}

var _ entity.Recorder = (*Collector)(nil)

// NewCollector creates a collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowDurationTicks: int32(windowTicks)}
}

// RecordSpawn records an object entering a container.
func (c *Collector) RecordSpawn(v components.Variant) {
	if v < components.NumVariants {
		c.spawns[v]++
	}
}

// RecordKill records a ship destroyed by damage.
func (c *Collector) RecordKill(v components.Variant) {
	if v < components.NumVariants {
		c.kills[v]++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush samples r, produces a WindowStats and resets counters for the next
// window.
func (c *Collector) Flush(currentTick int32, r *entity.Registry) WindowStats {
	var energies []float64
	r.Enemies.Scan(func(o *entity.Object) bool {
		if o.IsShip() {
			energies = append(energies, float64(o.Energy))
		}
		return true
	})
	es := ComputeEnergyStats(energies)
	missiles := c.spawns[components.VariantStraightMissile] +
		c.spawns[components.VariantGuidedMissile] +
		c.spawns[components.VariantChargedMissile]

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Score:      r.State.Score,
		ScoreDelta: r.State.Score - c.windowStartScore,
		Allies:     r.Allies.Len(),
		Enemies:    r.Enemies.Len(),
		Debris:     r.Debris.Len(),
		GroundPop:  r.State.EnemyPopulation,
		Charge:     r.State.Charge,

		PlayerDeaths: c.kills[components.VariantPlayer],
		Asteroids:    c.spawns[components.VariantAsteroid],
		Missiles:     missiles,

		EnemyEnergyMean: es.Mean,
		EnemyEnergyStd:  es.Std,
		EnemyEnergyMax:  es.Max,
		EnemyEnergyP10:  es.P10,
		EnemyEnergyP50:  es.P50,
		EnemyEnergyP90:  es.P90,
	}

	for v := components.Variant(0); v < components.NumVariants; v++ {
		if v != components.VariantDebris {
			stats.Spawns += c.spawns[v]
		}
		stats.Kills += c.kills[v]
		if isHostile(v) {
			stats.EnemyKills += c.kills[v]
		}
		if c.spawns[v] > 0 || c.kills[v] > 0 {
			stats.Variants = append(stats.Variants, VariantCount{
				WindowEnd: currentTick,
				Variant:   v.String(),
				Spawned:   c.spawns[v],
				Killed:    c.kills[v],
			})
		}
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.windowStartScore = r.State.Score
	c.spawns = [components.NumVariants]int{}
	c.kills = [components.NumVariants]int{}

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

// isHostile reports whether a variant is a scoring enemy.
func isHostile(v components.Variant) bool {
	switch v {
	case components.VariantAsteroid, components.VariantGroundEnemy,
		components.VariantVortex, components.VariantRainCloud,
		components.VariantGunship, components.VariantTransport,
		components.VariantSaboteur:
		return true
	}
	return false
}
