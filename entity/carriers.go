package entity

import "github.com/pthm-cable/barrage/components"

const (
	carrierEnergy = 500

	transportLaunchEvery = 50
	saboteurLaunchEvery  = 100
)

var (
	transportColor = components.RGB(100, 80, 80)
	saboteurColor  = components.RGB(80, 80, 80)
)

// carrier crosses the arena left to right, launching a child at its own
// position every period ticks.
type carrier struct {
	period int
	launch func(x, y int) *Object
	color  components.Color
}

// NewTransport creates a carrier that launches gunships.
func NewTransport(r *Registry) *Object {
	return newCarrier(r, components.VariantTransport, &carrier{
		period: transportLaunchEvery,
		launch: NewGunshipAt,
		color:  transportColor,
	})
}

// NewSaboteur creates a carrier that drops weak rain clouds.
func NewSaboteur(r *Registry) *Object {
	return newCarrier(r, components.VariantSaboteur, &carrier{
		period: saboteurLaunchEvery,
		launch: NewRainCloudAt,
		color:  saboteurColor,
	})
}

func newCarrier(r *Registry, v components.Variant, c *carrier) *Object {
	return newShip(v, carrierEnergy, components.Body{
		X: 0, Y: r.Random(components.ArenaHeight/2-40) + 40, W: 100, H: 20,
	}, c)
}

func (c *carrier) Update(o *Object, r *Registry) {
	if r.Every(c.period) {
		o.Spawn(c.launch(o.X, o.Y))
	}
	if r.Every(driftInterval) {
		o.Y++
	}
	o.X++
	if o.X > components.ArenaWidth {
		o.Remove()
	}
}

func (c *carrier) Draw(o *Object, d Drawer) {
	x, y := o.TopLeft()
	d.FillBox(x, y, o.W, o.H, c.color)
}
