package entity

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/barrage/components"
)

// slot is the only component stored in a container world.
type slot struct {
	obj *Object
}

// Container owns a set of objects. Each member is an entity in a private ark
// world, so handles are generation checked and a removed object can never be
// reached through a stale handle.
//
// Traversals take a snapshot of the live handles first and check each one
// again right before the visit. Objects removed during a pass are skipped,
// objects inserted during a pass wait for the next one.
type Container struct {
	name string
	reg  *Registry

	world  *ecs.World
	slots  *ecs.Map1[slot]
	filter *ecs.Filter1[slot]
	count  int
}

func newContainer(name string, reg *Registry) *Container {
	world := ecs.NewWorld()
	return &Container{
		name:   name,
		reg:    reg,
		world:  world,
		slots:  ecs.NewMap1[slot](world),
		filter: ecs.NewFilter1[slot](world),
	}
}

// Name returns the container's label.
func (c *Container) Name() string {
	return c.name
}

// Registry returns the registry the container belongs to.
func (c *Container) Registry() *Registry {
	return c.reg
}

// Len returns the number of live members.
func (c *Container) Len() int {
	return c.count
}

// Contains reports whether o is a live member of c.
func (c *Container) Contains(o *Object) bool {
	return o.home == c && c.world.Alive(o.handle)
}

// Insert takes ownership of o. An object still owned elsewhere is detached
// from its old container first, without releasing debris.
func (c *Container) Insert(o *Object) {
	if o.Alive() {
		o.home.detach(o)
	}
	o.handle = c.slots.NewEntity(&slot{obj: o})
	o.home = c
	c.count++
	c.reg.recordSpawn(o.Variant)
}

// Remove detaches o and bumps the registry removal counter. A ship removed
// while on screen scatters its debris at its center.
func (c *Container) Remove(o *Object) {
	if !c.Contains(o) {
		return
	}
	c.detach(o)
	c.reg.removals++

	if o.IsShip() && o.DebrisOnDeath > 0 && !o.Offscreen() {
		c.reg.ReleaseDebris(o.X, o.Y, o.DebrisOnDeath)
	}
}

func (c *Container) detach(o *Object) {
	c.world.RemoveEntity(o.handle)
	c.count--
}

// Update runs one tick for every member.
func (c *Container) Update() {
	c.each(func(o *Object) bool {
		o.Update(c.reg)
		return true
	})
}

// Draw renders every member.
func (c *Container) Draw(d Drawer) {
	c.each(func(o *Object) bool {
		o.Draw(d)
		return true
	})
}

// Scan visits members until fn returns false.
func (c *Container) Scan(fn func(o *Object) bool) {
	c.each(fn)
}

// Objects returns the live members in visit order.
func (c *Container) Objects() []*Object {
	out := make([]*Object, 0, c.count)
	c.each(func(o *Object) bool {
		out = append(out, o)
		return true
	})
	return out
}

// CountVariant counts the live members of one variant.
func (c *Container) CountVariant(v components.Variant) int {
	n := 0
	c.each(func(o *Object) bool {
		if o.Variant == v {
			n++
		}
		return true
	})
	return n
}

// At returns the member whose box, grown by slack on every side, contains
// (x, y). Ties go to the nearest center. It returns nil when nothing is hit.
func (c *Container) At(x, y, slack int) *Object {
	var best *Object
	bestDist := 0
	c.each(func(o *Object) bool {
		if x < o.X-o.W/2-slack || x > o.X+o.W/2+slack || y < o.Y-o.H/2-slack || y > o.Y+o.H/2+slack {
			return true
		}
		d := components.Distance(float64(x), float64(y), float64(o.X), float64(o.Y))
		if best == nil || d < bestDist {
			best, bestDist = o, d
		}
		return true
	})
	return best
}

func (c *Container) each(fn func(o *Object) bool) {
	// The world is locked while a query is open, so collect first.
	handles := make([]ecs.Entity, 0, c.count)
	query := c.filter.Query()
	for query.Next() {
		handles = append(handles, query.Entity())
	}

	for _, h := range handles {
		if !c.world.Alive(h) {
			continue
		}
		if !fn(c.slots.Get(h).obj) {
			return
		}
	}
}
