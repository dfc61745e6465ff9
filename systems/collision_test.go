package systems

import (
	"testing"

	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
)

// shipAt creates a stationary missile with the given energy at (x, y).
func shipAt(x, y, energy int) *entity.Object {
	o := entity.NewStraightMissile(x, y, 0, 0)
	o.Energy = energy
	return o
}

func TestResolveScenario(t *testing.T) {
	r := entity.NewRegistry(1)
	a := shipAt(200, 200, 1)
	b := shipAt(205, 200, 5)
	r.Allies.Insert(a)
	r.Enemies.Insert(b)

	Resolve(r.Allies, r.Enemies)

	if a.Alive() {
		t.Error("A should be removed")
	}
	if !b.Alive() {
		t.Fatal("B should survive")
	}
	if b.Energy != 4 {
		t.Errorf("B energy = %d, want 4", b.Energy)
	}
	if r.Debris.Len() != a.DebrisOnDeath {
		t.Errorf("debris = %d, want %d", r.Debris.Len(), a.DebrisOnDeath)
	}
}

func TestClashSymmetry(t *testing.T) {
	tests := []struct {
		name       string
		e1, e2     int
		firstDies  bool
		secondDies bool
		secondLeft int
	}{
		{"weaker first", 1, 5, true, false, 4},
		{"equal", 3, 3, true, true, 0},
		{"stronger first", 7, 2, false, true, 0},
		{"much stronger second", 2, 1000, true, false, 998},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := entity.NewRegistry(1)
			a := shipAt(300, 300, tc.e1)
			b := shipAt(300, 300, tc.e2)
			r.Allies.Insert(a)
			r.Enemies.Insert(b)

			if !Clash(a, b) {
				t.Fatal("expected overlap")
			}
			if a.Alive() == tc.firstDies {
				t.Errorf("first alive = %v", a.Alive())
			}
			if b.Alive() == tc.secondDies {
				t.Errorf("second alive = %v", b.Alive())
			}
			if !tc.secondDies && b.Energy != tc.secondLeft {
				t.Errorf("second energy = %d, want %d", b.Energy, tc.secondLeft)
			}
		})
	}
}

func TestClashIgnoresDistantAndDead(t *testing.T) {
	r := entity.NewRegistry(1)
	a := shipAt(100, 100, 5)
	b := shipAt(400, 400, 5)
	r.Allies.Insert(a)
	r.Enemies.Insert(b)

	if Clash(a, b) {
		t.Error("distant ships should not clash")
	}

	c := shipAt(100, 100, 5)
	if Clash(a, c) {
		t.Error("detached ship should not clash")
	}
	if a.Energy != 5 {
		t.Errorf("energy changed to %d", a.Energy)
	}
}

func TestResolveRestartsUntilQuiet(t *testing.T) {
	r := entity.NewRegistry(1)

	// One strong ally sweeping through a stack of weak enemies.
	ally := shipAt(320, 240, 100)
	r.Allies.Insert(ally)
	for i := 0; i < 5; i++ {
		r.Enemies.Insert(shipAt(320, 240, 1))
	}

	passes := Resolve(r.Allies, r.Enemies)

	if r.Enemies.Len() != 0 {
		t.Errorf("%d enemies survived", r.Enemies.Len())
	}
	if ally.Energy != 95 {
		t.Errorf("ally energy = %d, want 95", ally.Energy)
	}
	// One pass per removal plus the quiet pass.
	if passes != 6 {
		t.Errorf("passes = %d, want 6", passes)
	}
}

func TestResolveQuietPass(t *testing.T) {
	r := entity.NewRegistry(1)
	r.Allies.Insert(shipAt(100, 100, 10))
	r.Enemies.Insert(shipAt(500, 400, 10))

	if passes := Resolve(r.Allies, r.Enemies); passes != 1 {
		t.Errorf("passes = %d, want 1", passes)
	}
}

func TestResolveSkipsDebris(t *testing.T) {
	r := entity.NewRegistry(1)
	ship := shipAt(320, 240, 3)
	r.Allies.Insert(ship)
	r.ReleaseDebris(320, 240, 20)

	Resolve(r.Allies, r.Debris)

	if ship.Energy != 3 {
		t.Errorf("debris damaged the ship: energy %d", ship.Energy)
	}
	if r.Debris.Len() != 20 {
		t.Errorf("debris count changed to %d", r.Debris.Len())
	}
}

func TestResolveNear(t *testing.T) {
	r := entity.NewRegistry(1)
	r.State.PlayerX, r.State.PlayerY = 100, 100

	near := shipAt(110, 100, 1)
	far := shipAt(500, 400, 1)
	r.Allies.Insert(near)
	r.Allies.Insert(far)
	r.Enemies.Insert(shipAt(110, 100, 1))
	r.Enemies.Insert(shipAt(500, 400, 1))

	ResolveNear(r.Allies, r.Enemies)

	if near.Alive() {
		t.Error("ship near the player should have clashed")
	}
	if !far.Alive() {
		t.Error("ship far from the player should be ignored")
	}
	if r.Enemies.Len() != 1 {
		t.Errorf("enemies = %d, want 1", r.Enemies.Len())
	}
}

func TestResolveChargedSplitRestarts(t *testing.T) {
	r := entity.NewRegistry(1)
	r.Allies.Insert(entity.NewChargedMissile(320, 240, 0, 0, 0))
	wall := shipAt(320, 240, 1000)
	wall.W, wall.H = 200, 200
	r.Enemies.Insert(wall)

	Resolve(r.Allies, r.Enemies)

	// Every generation spawns inside the wall, so the cascade runs down to
	// the last level within one call.
	for _, o := range r.Allies.Objects() {
		if o.Variant == components.VariantChargedMissile {
			t.Errorf("charged missile level %d survived at (%d, %d)", entity.Level(o), o.X, o.Y)
		}
	}
	if !wall.Alive() {
		t.Fatal("wall should survive")
	}
	if wall.Energy != 1000-15 {
		t.Errorf("wall energy = %d, want %d", wall.Energy, 1000-15)
	}
}
