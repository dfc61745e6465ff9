package entity

import (
	"math/rand"

	"github.com/pthm-cable/barrage/components"
)

// Gameplay limits.
const (
	MaxEnergy = 1000
	MaxCharge = 1000
)

// State is the global game state shared by every object.
type State struct {
	Score            int
	Ticks            int
	EnemyPopulation  int
	PlayerPopulation int
	PlayerEnergy     int // value shown in the HUD energy bar
	Charge           int
	PlayerX, PlayerY int // last published player position
}

// Input is the player's control snapshot for the current tick.
type Input struct {
	CursorX, CursorY int
	Fire             bool
	AltFire          bool
}

// DefaultInput is the snapshot used before a frontend provides one.
func DefaultInput() Input {
	return Input{CursorX: 100, CursorY: 100}
}

// Recorder receives lifecycle events, typically for telemetry.
type Recorder interface {
	RecordSpawn(v components.Variant)
	RecordKill(v components.Variant)
}

// Registry owns the three faction containers, the shared state, the input
// snapshot and the random source. It is created once per game and never
// reset.
type Registry struct {
	Allies  *Container
	Enemies *Container
	Debris  *Container

	State State
	Input Input

	rng      *rand.Rand
	removals int
	recorder Recorder
}

// NewRegistry creates empty containers and seeds the random source.
func NewRegistry(seed int64) *Registry {
	r := &Registry{
		Input: DefaultInput(),
		rng:   rand.New(rand.NewSource(seed)),
	}
	r.Allies = newContainer("allies", r)
	r.Enemies = newContainer("enemies", r)
	r.Debris = newContainer("debris", r)
	return r
}

// SetRecorder installs a lifecycle recorder. Nil disables recording.
func (r *Registry) SetRecorder(rec Recorder) {
	r.recorder = rec
}

// Every reports whether the current tick is a multiple of n.
func (r *Registry) Every(n int) bool {
	if n <= 0 {
		return false
	}
	return r.State.Ticks%n == 0
}

// Chance fires on ticks where (Ticks+offset) is a multiple of period, and
// then only with pct percent probability. The random source is consumed only
// when the period gate is open, which keeps runs reproducible per seed.
func (r *Registry) Chance(offset, period, pct int) bool {
	if period <= 0 || (r.State.Ticks+offset)%period != 0 {
		return false
	}
	return r.Random(100) < pct
}

// Random returns a value in [0, max). Non-positive bounds yield 0.
func (r *Registry) Random(max int) int {
	if max <= 0 {
		return 0
	}
	return r.rng.Intn(max)
}

// between returns a value in [min, max).
func (r *Registry) between(min, max int) int {
	return r.Random(max-min) + min
}

// Removals returns the number of removals since the last ResetRemovals.
func (r *Registry) Removals() int {
	return r.removals
}

// ResetRemovals clears the removal counter.
func (r *Registry) ResetRemovals() {
	r.removals = 0
}

// PlayerAlive reports whether a player ship is on the field.
func (r *Registry) PlayerAlive() bool {
	return r.State.PlayerPopulation > 0
}

// ObjectAt returns the ally or enemy under (x, y), allies first. Debris is
// never picked.
func (r *Registry) ObjectAt(x, y, slack int) *Object {
	if o := r.Allies.At(x, y, slack); o != nil {
		return o
	}
	return r.Enemies.At(x, y, slack)
}

// ReleaseDebris scatters n debris particles from (x, y).
func (r *Registry) ReleaseDebris(x, y, n int) {
	for i := 0; i < n; i++ {
		r.Debris.Insert(NewDebris(x, y, r))
	}
}

func (r *Registry) recordSpawn(v components.Variant) {
	if r.recorder != nil {
		r.recorder.RecordSpawn(v)
	}
}

func (r *Registry) recordKill(v components.Variant) {
	if r.recorder != nil {
		r.recorder.RecordKill(v)
	}
}
