package entity

import (
	"math"

	"github.com/pthm-cable/barrage/components"
)

const (
	playerStep      = 20   // max cursor-follow distance per tick
	maxReload       = 1000 // reload counter cap
	fireCost        = 10
	fireMinCharge   = 20
	fireMinReload   = 5
	laserScore      = 500
	ringMinCharge   = 150
	ringMinReload   = 50
	ringCost        = 50
	regenInterval   = 10
	playerSpawnYOff = 80
)

type player struct {
	reload int
}

// NewPlayer creates the player ship at the bottom center of the arena and
// refills the charge reserve.
func NewPlayer(r *Registry) *Object {
	r.State.PlayerPopulation++
	r.State.Charge = MaxCharge
	return newShip(components.VariantPlayer, MaxEnergy, components.Body{
		X: components.ArenaWidth / 2,
		Y: components.ArenaHeight - playerSpawnYOff,
		W: 48, H: 48,
	}, &player{})
}

func (p *player) Update(o *Object, r *Registry) {
	s := &r.State
	in := r.Input

	dx := float64(in.CursorX - o.X)
	dy := float64(in.CursorY - o.Y)
	if dist := math.Hypot(dx, dy); dist > playerStep {
		o.X += int(dx * playerStep / dist)
		o.Y += int(dy * playerStep / dist)
	} else {
		o.X = in.CursorX
		o.Y = in.CursorY
	}
	o.ClampToArena()
	s.PlayerX, s.PlayerY = o.X, o.Y

	if s.Charge < MaxCharge {
		s.Charge++
	}
	if p.reload < maxReload {
		p.reload++
	}

	if in.Fire && s.Charge >= fireMinCharge && p.reload >= fireMinReload {
		p.reload = 0
		s.Charge -= fireCost
		if s.Score >= laserScore {
			o.Spawn(NewLaser(r))
		} else {
			o.Spawn(NewStraightMissile(o.X, o.Y-5, 0, -10))
		}
	}

	if s.Charge == MaxCharge && o.Energy < MaxEnergy && r.Every(regenInterval) {
		o.Energy++
	}

	if in.AltFire && s.Charge >= MaxCharge && p.reload > 0 {
		chargedBurst(o, 0, 2*math.Pi, 0.1, 0)
		s.Charge = 0
		p.reload = 0
	}
	if in.AltFire && s.Charge >= ringMinCharge && p.reload > ringMinReload {
		missileRing(o, 0.05)
		s.Charge -= ringCost
		p.reload = 0
	}

	s.PlayerEnergy = o.Energy
}

func (p *player) Draw(o *Object, d Drawer) {
	drawSprite(o, d, SpriteShip)
}

func (p *player) Destroyed(o *Object, r *Registry) {
	r.State.PlayerPopulation--
	r.State.PlayerEnergy = 0
}

// missileRing fires straight missiles at speed 10 all around o, one every
// step radians.
func missileRing(o *Object, step float64) {
	for a := 0.0; a < 2*math.Pi; a += step {
		o.Spawn(NewStraightMissile(o.X, o.Y, math.Cos(a)*10, math.Sin(a)*10))
	}
}

// chargedBurst fires charged missiles at speed 5 over the arc [from, to).
func chargedBurst(o *Object, from, to, step float64, level int) {
	for a := from; a < to; a += step {
		o.Spawn(NewChargedMissile(o.X, o.Y, math.Cos(a)*5, math.Sin(a)*5, level))
	}
}
