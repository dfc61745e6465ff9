package entity

import (
	"math"

	"github.com/pthm-cable/barrage/components"
)

const (
	missileDebris   = 10
	guidedLifetime  = 1000
	guidedDamping   = 0.99
	laserClimb      = 10
	laserTop        = 40
	maxChargedLevel = 3
)

var chargedSizes = [maxChargedLevel + 1]int{20, 18, 14, 10}

var laserColor = components.Indexed(2)

// straight moves in a fixed direction and is culled when it leaves the arena.
type straight struct {
	step components.Stepper
}

// NewStraightMissile creates a missile travelling (vx, vy) pixels per tick.
func NewStraightMissile(x, y int, vx, vy float64) *Object {
	o := newShip(components.VariantStraightMissile, 1,
		components.Body{X: x, Y: y, W: 10, H: 10},
		&straight{step: components.NewStepper(vx, vy)})
	o.DebrisOnDeath = missileDebris
	return o
}

func (m *straight) Update(o *Object, r *Registry) {
	m.step.Advance(&o.Body)
	if o.Offscreen() {
		o.Remove()
	}
}

func (m *straight) Draw(o *Object, d Drawer) {
	drawSprite(o, d, SpriteBall)
}

// charged is a straight missile that splits in two when destroyed, up to
// maxChargedLevel.
type charged struct {
	straight
	heading float64
	level   int
}

// NewChargedMissile creates a charged missile of the given level. Higher
// levels are smaller.
func NewChargedMissile(x, y int, vx, vy float64, level int) *Object {
	size := chargedSizes[min(max(level, 0), maxChargedLevel)]
	o := newShip(components.VariantChargedMissile, 1,
		components.Body{X: x, Y: y, W: size, H: size},
		&charged{
			straight: straight{step: components.NewStepper(vx, vy)},
			heading:  components.Heading(vx, vy),
			level:    level,
		})
	o.DebrisOnDeath = missileDebris
	return o
}

// Level returns the split depth of a charged missile, or -1 for any other
// object.
func Level(o *Object) int {
	if c, ok := o.behavior.(*charged); ok {
		return c.level
	}
	return -1
}

func (m *charged) Draw(o *Object, d Drawer) {
	if s, ok := ChargedSprite(m.level); ok {
		drawSprite(o, d, s)
	}
}

func (m *charged) Destroyed(o *Object, r *Registry) {
	if m.level >= maxChargedLevel {
		return
	}
	if m.heading > math.Pi {
		m.heading -= math.Pi
	} else {
		m.heading += math.Pi
	}
	o.X += int(math.Cos(m.heading) * 10)
	o.Y += int(math.Sin(m.heading) * 10)
	for _, a := range [2]float64{m.heading - 0.5, m.heading + 0.5} {
		o.Spawn(NewChargedMissile(o.X, o.Y, math.Cos(a)*5, math.Sin(a)*5, m.level+1))
	}
	o.DebrisOnDeath = 0
}

// guided pursues the last published player position with damped velocity.
type guided struct {
	vx, vy float64
	age    int
}

// NewGuidedMissile creates a homing missile at rest.
func NewGuidedMissile(x, y int) *Object {
	o := newShip(components.VariantGuidedMissile, 1,
		components.Body{X: x, Y: y, W: 10, H: 10}, &guided{})
	o.DebrisOnDeath = missileDebris
	return o
}

func (m *guided) Update(o *Object, r *Registry) {
	px, py := r.State.PlayerX, r.State.PlayerY
	dist := float64(components.Distance(float64(o.X), float64(o.Y), float64(px), float64(py)))
	if dist == 0 {
		dist = 1
	}
	m.vx = (m.vx - float64(o.X-px)/dist/5) * guidedDamping
	m.vy = (m.vy - float64(o.Y-py)/dist/5) * guidedDamping
	o.X += int(m.vx)
	o.Y += int(m.vy)

	m.age++
	if m.age > guidedLifetime {
		o.Remove()
	}
}

func (m *guided) Draw(o *Object, d Drawer) {
	drawSprite(o, d, SpriteBall)
}

func (m *guided) Destroyed(o *Object, r *Registry) {
	r.State.Score++
}

type laser struct{}

// NewLaser creates a laser beam just above the player.
func NewLaser(r *Registry) *Object {
	o := newShip(components.VariantLaser, 2,
		components.Body{X: r.State.PlayerX, Y: r.State.PlayerY - 10, W: 2, H: 50}, laser{})
	o.DebrisOnDeath = missileDebris
	return o
}

func (laser) Update(o *Object, r *Registry) {
	o.Y -= laserClimb
	o.X = r.State.PlayerX
	if o.Y < laserTop {
		// expires quietly at the top of the arena
		o.DebrisOnDeath = 0
		o.Remove()
	}
}

func (laser) Draw(o *Object, d Drawer) {
	x, y := o.TopLeft()
	d.FillBox(x, y, o.W, o.H, laserColor)
}
