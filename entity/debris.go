package entity

import (
	"math"

	"github.com/pthm-cable/barrage/components"
)

type debris struct {
	step  components.Stepper
	left  int
	color components.Color
}

// NewDebris creates one particle at (x, y) with a random heading, speed,
// lifetime and palette color.
func NewDebris(x, y int, r *Registry) *Object {
	ang := float64(r.Random(628)) / 100
	vel := float64(r.Random(100))
	step := components.StepperFromUnits(int(vel*math.Cos(ang)), int(vel*math.Sin(ang)))
	step.Exclusive = true

	return New(components.VariantDebris, components.Body{X: x, Y: y, W: 1, H: 1}, &debris{
		step:  step,
		left:  r.Random(100),
		color: components.Indexed(r.Random(256)),
	})
}

func (p *debris) Update(o *Object, r *Registry) {
	p.step.Advance(&o.Body)
	p.left--
	if p.left < 0 {
		o.Remove()
	}
}

func (p *debris) Draw(o *Object, d Drawer) {
	d.FillBox(o.X, o.Y, 1, 1, p.color)
}
