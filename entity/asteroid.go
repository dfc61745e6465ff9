package entity

import (
	"math"

	"github.com/pthm-cable/barrage/components"
)

const asteroidSpeed = 200 // hundredths of a pixel per tick

type asteroid struct {
	step components.Stepper
}

// NewAsteroid creates an asteroid on a random arena edge heading inward.
func NewAsteroid(r *Registry) *Object {
	const edge = 10
	var x, y, deg int
	switch r.Random(4) {
	case 0:
		x, y = edge, r.Random(components.ArenaHeight-edge)
		deg = r.Random(90)
		if deg > 45 {
			deg += 269
		}
	case 1:
		x, y = components.ArenaWidth-edge, r.Random(components.ArenaHeight-edge)
		deg = r.between(135, 225)
	case 2:
		x, y = r.Random(components.ArenaWidth-edge), edge
		deg = r.between(45, 135)
	default:
		x, y = r.Random(components.ArenaWidth-edge), components.ArenaHeight-edge
		deg = r.between(225, 315)
	}

	rad := float64(deg) * math.Pi / 180
	o := newShip(components.VariantAsteroid, 1,
		components.Body{X: x, Y: y, W: 5, H: 5},
		&asteroid{step: components.StepperFromUnits(
			int(asteroidSpeed*math.Cos(rad)),
			int(asteroidSpeed*math.Sin(rad)),
		)})
	o.DebrisOnDeath = missileDebris
	return o
}

func (a *asteroid) Update(o *Object, r *Registry) {
	a.step.Advance(&o.Body)
	if o.Offscreen() {
		o.Remove()
	}
}

func (a *asteroid) Draw(o *Object, d Drawer) {
	drawSprite(o, d, SpriteAsteroid)
}

func (a *asteroid) Destroyed(o *Object, r *Registry) {
	r.State.Score++
}
