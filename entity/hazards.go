package entity

import (
	"math"

	"github.com/pthm-cable/barrage/components"
)

const (
	driftInterval = 10 // ticks between one-pixel drifts

	vortexEnergy     = 100
	vortexScore      = 100
	vortexPulseScore = 5000
	vortexPulseEvery = 50

	rainEnergy     = 100
	rainWeakEnergy = 10
	rainScore      = 100
	rainDropEvery  = 5   // drifts between guided drops
	rainFanEvery   = 100 // ticks between missile fans
	rainFanSpeed   = 2

	gunshipEnergy    = 10
	gunshipScore     = 20
	gunshipAimEvery  = 25
	gunshipShotSpeed = 5
)

type vortex struct{}

// NewVortex creates a vortex near the top of the arena.
func NewVortex(r *Registry) *Object {
	return newShip(components.VariantVortex, vortexEnergy, components.Body{
		X: r.Random(components.ArenaWidth-40) + 20, Y: 40, W: 64, H: 48,
	}, vortex{})
}

func (vortex) Update(o *Object, r *Registry) {
	if !r.Every(driftInterval) {
		return
	}
	if r.State.Score > vortexPulseScore && r.Every(vortexPulseEvery) {
		missileRing(o, 0.5)
	}
	o.Y++
	if o.Y > components.ArenaHeight {
		o.Remove()
	}
}

func (vortex) Draw(o *Object, d Drawer) {
	drawSprite(o, d, SpriteVortex)
}

func (vortex) Destroyed(o *Object, r *Registry) {
	if r.State.Score > vortexPulseScore {
		missileRing(o, 0.05)
	}
	r.State.Score += vortexScore
}

// rainCloud drifts down dropping homing missiles and fanning slow ones.
type rainCloud struct {
	drops int
}

// NewRainCloud creates a full-strength rain cloud near the top of the arena.
func NewRainCloud(r *Registry) *Object {
	return newShip(components.VariantRainCloud, rainEnergy, components.Body{
		X: r.Random(components.ArenaWidth-40) + 20, Y: 40, W: 20, H: 20,
	}, &rainCloud{})
}

// NewRainCloudAt creates a weak rain cloud, as dropped by a saboteur.
func NewRainCloudAt(x, y int) *Object {
	return newShip(components.VariantRainCloud, rainWeakEnergy,
		components.Body{X: x, Y: y, W: 20, H: 20}, &rainCloud{})
}

func (c *rainCloud) Update(o *Object, r *Registry) {
	if r.Every(driftInterval) {
		o.Y++
		c.drops++
		if c.drops >= rainDropEvery {
			o.Spawn(NewGuidedMissile(o.X, o.Y))
			c.drops = 0
		}
	}
	if r.Every(rainFanEvery) {
		for a := math.Pi / 4; a <= 3*math.Pi/4; a += 0.1 {
			o.Spawn(NewStraightMissile(o.X, o.Y, rainFanSpeed*math.Cos(a), rainFanSpeed*math.Sin(a)))
		}
		if o.Y+20 > components.ArenaHeight {
			o.Remove()
		}
	}
}

func (c *rainCloud) Draw(o *Object, d Drawer) {
	drawSprite(o, d, SpriteRain)
}

func (c *rainCloud) Destroyed(o *Object, r *Registry) {
	r.State.Score += rainScore
}

type gunship struct{}

// NewGunship creates a gunship at a random column near the top.
func NewGunship(r *Registry) *Object {
	return NewGunshipAt(r.Random(components.ArenaWidth-96)+48, 48)
}

// NewGunshipAt creates a gunship at (x, y).
func NewGunshipAt(x, y int) *Object {
	return newShip(components.VariantGunship, gunshipEnergy,
		components.Body{X: x, Y: y, W: 48, H: 48}, gunship{})
}

func (gunship) Update(o *Object, r *Registry) {
	if r.Every(gunshipAimEvery) {
		dx := float64(r.State.PlayerX - o.X)
		dy := float64(r.State.PlayerY - o.Y)
		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dist = 1
		}
		o.Spawn(NewStraightMissile(o.X, o.Y, dx*gunshipShotSpeed/dist, dy*gunshipShotSpeed/dist))
	}
	if r.Every(driftInterval) {
		o.Y++
		if o.Offscreen() {
			o.Remove()
		}
	}
}

func (gunship) Draw(o *Object, d Drawer) {
	drawSprite(o, d, SpriteGunship)
}

func (gunship) Destroyed(o *Object, r *Registry) {
	r.State.Score += gunshipScore
}
