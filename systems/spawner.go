package systems

import (
	"log/slog"

	"github.com/pthm-cable/barrage/entity"
)

// Spawn cadence. Each rule gets its own phase offset inside the period so at
// most one rule can fire per tick.
const (
	SpawnPeriod  = 500
	SpawnPercent = 30

	AsteroidWave     = 50
	GroundEnemyWave  = 3
	GroundEnemyLimit = 25

	MidTierScore  = 500
	HighTierScore = 5000
)

type spawnRule struct {
	name   string
	offset int
	gate   func(s *entity.State) bool
	spawn  func(r *entity.Registry)
}

var spawnRules = []spawnRule{
	{
		name:   "gunship",
		offset: 0,
		spawn: func(r *entity.Registry) {
			if r.State.Score >= MidTierScore {
				r.Enemies.Insert(entity.NewTransport(r))
			} else {
				r.Enemies.Insert(entity.NewGunship(r))
			}
		},
	},
	{
		name:   "cloud",
		offset: 100,
		spawn: func(r *entity.Registry) {
			switch {
			case r.State.Score >= HighTierScore:
				r.Enemies.Insert(entity.NewSaboteur(r))
			case r.State.Score >= MidTierScore:
				r.Enemies.Insert(entity.NewRainCloud(r))
			default:
				r.Enemies.Insert(entity.NewVortex(r))
			}
		},
	},
	{
		name:   "asteroids",
		offset: 200,
		spawn: func(r *entity.Registry) {
			for i := 0; i < AsteroidWave; i++ {
				r.Enemies.Insert(entity.NewAsteroid(r))
			}
		},
	},
	{
		name:   "vortex",
		offset: 300,
		spawn: func(r *entity.Registry) {
			r.Enemies.Insert(entity.NewVortex(r))
		},
	},
	{
		name:   "ground",
		offset: 400,
		gate: func(s *entity.State) bool {
			return s.EnemyPopulation < GroundEnemyLimit
		},
		spawn: func(r *entity.Registry) {
			for i := 0; i < GroundEnemyWave; i++ {
				r.Enemies.Insert(entity.NewGroundEnemy(r))
			}
		},
	},
}

// Director tops up the enemy side based on score and time.
type Director struct {
	reg   *entity.Registry
	waves int
}

// NewDirector creates a director feeding r's enemy container.
func NewDirector(r *entity.Registry) *Director {
	return &Director{reg: r}
}

// Step evaluates every spawn rule for the current tick.
func (d *Director) Step() {
	r := d.reg
	for _, rule := range spawnRules {
		// The gate is checked first so a closed gate never consumes randomness.
		if rule.gate != nil && !rule.gate(&r.State) {
			continue
		}
		if !r.Chance(rule.offset, SpawnPeriod, SpawnPercent) {
			continue
		}
		rule.spawn(r)
		d.waves++
		slog.Debug("spawn wave", "rule", rule.name, "tick", r.State.Ticks, "score", r.State.Score)
	}
}

// Waves returns the number of rules fired so far.
func (d *Director) Waves() int {
	return d.waves
}
