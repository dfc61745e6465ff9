package systems

import (
	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
)

// ShieldMargin widens the player proximity test used by ResolveNear.
const ShieldMargin = 40

// Clash applies mutual damage if a and b are live overlapping ships. Each
// side takes the other's energy as it was before the exchange.
func Clash(a, b *entity.Object) bool {
	if !a.IsShip() || !b.IsShip() || !a.Alive() || !b.Alive() {
		return false
	}
	if !a.Overlaps(&b.Body) {
		return false
	}
	ea := a.Energy
	a.ApplyDamage(b.Energy)
	b.ApplyDamage(ea)
	return true
}

// Resolve runs Clash over every pair from a and b. Whenever something is
// removed the scan starts over from the top of a, and it returns once a full
// pass removes nothing. The result is the number of passes.
func Resolve(a, b *entity.Container) int {
	return resolve(a, b, nil)
}

// ResolveNear is Resolve restricted to members of a whose center lies within
// their own diagonal plus a fixed margin of the last player position.
func ResolveNear(a, b *entity.Container) int {
	st := &a.Registry().State
	return resolve(a, b, func(o *entity.Object) bool {
		reach := components.Distance(0, 0, float64(o.W), float64(o.H)) + ShieldMargin
		return components.Distance(float64(o.X), float64(o.Y), float64(st.PlayerX), float64(st.PlayerY)) <= reach
	})
}

func resolve(a, b *entity.Container, keep func(o *entity.Object) bool) int {
	r := a.Registry()
	passes := 0
	for {
		passes++
		r.ResetRemovals()
		a.Scan(func(i *entity.Object) bool {
			if keep == nil || keep(i) {
				b.Scan(func(j *entity.Object) bool {
					Clash(i, j)
					return r.Removals() == 0
				})
			}
			return r.Removals() == 0
		})
		if r.Removals() == 0 {
			return passes
		}
	}
}
