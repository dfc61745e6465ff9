// Package entity holds the simulated objects, the containers that own them
// and the registry that ties the three factions to the shared game state.
package entity

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/barrage/components"
)

// DefaultDebris is the number of particles a ship leaves behind unless its
// variant says otherwise.
const DefaultDebris = 500

// Behavior is the per-variant strategy driving an object.
type Behavior interface {
	// Update advances the object by one tick. It may move the object, spawn
	// new objects into any container or remove the object itself.
	Update(o *Object, r *Registry)
	// Draw issues exactly one draw call at the object's top-left corner.
	Draw(o *Object, d Drawer)
}

// Destroyer is implemented by behaviors that react to being destroyed by
// damage. The hook runs once, before the object leaves its container.
type Destroyer interface {
	Destroyed(o *Object, r *Registry)
}

// Object is a single simulated unit: the player, a projectile, an enemy or a
// debris particle.
type Object struct {
	components.Body

	Kind    components.Kind
	Variant components.Variant

	// Ship fields. Energy below 1 destroys the ship.
	Energy        int
	DebrisOnDeath int

	behavior Behavior

	home   *Container
	handle ecs.Entity
}

// New wraps a behavior into a generic object. Variants use newShip instead.
func New(v components.Variant, body components.Body, b Behavior) *Object {
	return &Object{Body: body, Kind: components.KindGeneric, Variant: v, behavior: b}
}

func newShip(v components.Variant, energy int, body components.Body, b Behavior) *Object {
	return &Object{
		Body:          body,
		Kind:          components.KindShip,
		Variant:       v,
		Energy:        energy,
		DebrisOnDeath: DefaultDebris,
		behavior:      b,
	}
}

// IsShip reports whether the object has a hull.
func (o *Object) IsShip() bool {
	return o.Kind == components.KindShip
}

// Alive reports whether the object is currently owned by a container.
func (o *Object) Alive() bool {
	return o.home != nil && o.home.world.Alive(o.handle)
}

// Container returns the owning container, or nil once removed.
func (o *Object) Container() *Container {
	if !o.Alive() {
		return nil
	}
	return o.home
}

// Update runs one tick of the object's behavior.
func (o *Object) Update(r *Registry) {
	o.behavior.Update(o, r)
}

// Draw renders the object.
func (o *Object) Draw(d Drawer) {
	o.behavior.Draw(o, d)
}

// Remove detaches the object from its container. Calling it more than once
// is harmless.
func (o *Object) Remove() {
	if o.home != nil {
		o.home.Remove(o)
	}
}

// Spawn inserts child into the object's own container.
func (o *Object) Spawn(child *Object) {
	if o.Alive() {
		o.home.Insert(child)
	}
}

// ApplyDamage subtracts n from the ship's energy. When the energy drops
// below 1 the destroyed hook fires, the object is removed and true is
// returned. Objects without a hull and detached objects ignore damage.
func (o *Object) ApplyDamage(n int) bool {
	if !o.IsShip() || !o.Alive() {
		return false
	}
	o.Energy -= n
	if o.Energy >= 1 {
		return false
	}

	r := o.home.reg
	if d, ok := o.behavior.(Destroyer); ok {
		d.Destroyed(o, r)
	}
	r.recordKill(o.Variant)
	o.Remove()
	return true
}

// Behavior exposes the strategy, mostly for tests and inspection.
func (o *Object) Behavior() Behavior {
	return o.behavior
}
