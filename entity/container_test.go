package entity

import (
	"testing"

	"github.com/pthm-cable/barrage/components"
)

// tracer counts visits and runs an optional hook on each update.
type tracer struct {
	visits   int
	onUpdate func(o *Object, r *Registry)
}

func (p *tracer) Update(o *Object, r *Registry) {
	p.visits++
	if p.onUpdate != nil {
		p.onUpdate(o, r)
	}
}

func (p *tracer) Draw(o *Object, d Drawer) {
	drawSprite(o, d, SpriteBall)
}

func newTracer(debris int) (*Object, *tracer) {
	p := &tracer{}
	o := newShip(components.VariantStraightMissile, 1,
		components.Body{X: 320, Y: 240, W: 10, H: 10}, p)
	o.DebrisOnDeath = debris
	return o, p
}

func TestContainerInsertRemove(t *testing.T) {
	r := NewRegistry(1)
	o, _ := newTracer(0)

	r.Enemies.Insert(o)
	if r.Enemies.Len() != 1 || !r.Enemies.Contains(o) || !o.Alive() {
		t.Fatalf("expected o to be a live member after insert")
	}
	if o.Container() != r.Enemies {
		t.Error("Container() should return the owner")
	}

	r.Enemies.Remove(o)
	if r.Enemies.Len() != 0 || o.Alive() {
		t.Fatalf("expected o to be gone after remove")
	}
	if r.Removals() != 1 {
		t.Errorf("expected 1 removal, got %d", r.Removals())
	}

	// Second removal is a no-op.
	r.Enemies.Remove(o)
	o.Remove()
	if r.Enemies.Len() != 0 || r.Removals() != 1 {
		t.Errorf("repeat removal changed state: len=%d removals=%d", r.Enemies.Len(), r.Removals())
	}
}

func TestContainerRemoveForeignObject(t *testing.T) {
	r := NewRegistry(1)
	o, _ := newTracer(0)
	r.Allies.Insert(o)

	r.Enemies.Remove(o)
	if !r.Allies.Contains(o) {
		t.Error("removing through the wrong container must not detach")
	}
	if r.Removals() != 0 {
		t.Errorf("expected no removals, got %d", r.Removals())
	}
}

func TestContainerInsertMovesOwnership(t *testing.T) {
	r := NewRegistry(1)
	o, _ := newTracer(5)
	r.Allies.Insert(o)
	r.Enemies.Insert(o)

	if r.Allies.Len() != 0 || r.Allies.Contains(o) {
		t.Error("object should have left its first container")
	}
	if !r.Enemies.Contains(o) {
		t.Error("object should belong to the second container")
	}
	if r.Debris.Len() != 0 {
		t.Error("moving between containers must not release debris")
	}
}

func TestContainerRemovalDuringUpdate(t *testing.T) {
	r := NewRegistry(1)

	const n = 10
	objs := make([]*Object, n)
	tracers := make([]*tracer, n)
	for i := range objs {
		objs[i], tracers[i] = newTracer(0)
		r.Enemies.Insert(objs[i])
	}

	// Every visited object removes itself and the next object, whichever
	// order the container uses.
	for i := range tracers {
		tracers[i].onUpdate = func(o *Object, r *Registry) {
			o.Remove()
			objs[(i+1)%n].Remove()
		}
	}

	r.Enemies.Update()

	for i, p := range tracers {
		if p.visits > 1 {
			t.Errorf("object %d visited %d times", i, p.visits)
		}
	}
	// Each visit removes at most two objects, so at least n/2 visits happen,
	// and none happen after removal.
	total := 0
	for _, p := range tracers {
		total += p.visits
	}
	if total < n/2 {
		t.Errorf("expected at least %d visits, got %d", n/2, total)
	}
	if r.Enemies.Len() != 0 {
		t.Errorf("expected empty container, got %d", r.Enemies.Len())
	}
}

func TestContainerNoVisitAfterRemoval(t *testing.T) {
	r := NewRegistry(1)
	a, pa := newTracer(0)
	b, pb := newTracer(0)
	r.Enemies.Insert(a)
	r.Enemies.Insert(b)

	removedFirst := false
	hook := func(victim *Object) func(o *Object, r *Registry) {
		return func(o *Object, r *Registry) {
			if !removedFirst {
				removedFirst = true
				victim.Remove()
			}
		}
	}
	pa.onUpdate = hook(b)
	pb.onUpdate = hook(a)

	r.Enemies.Update()

	if pa.visits+pb.visits != 1 {
		t.Errorf("expected exactly one visit, got a=%d b=%d", pa.visits, pb.visits)
	}
	if r.Enemies.Len() != 1 {
		t.Errorf("expected one survivor, got %d", r.Enemies.Len())
	}
}

func TestContainerSurvivorsVisitedOnce(t *testing.T) {
	r := NewRegistry(1)

	var tracers []*tracer
	for i := 0; i < 20; i++ {
		o, p := newTracer(0)
		r.Allies.Insert(o)
		tracers = append(tracers, p)
		if i%3 == 0 {
			p.onUpdate = func(o *Object, r *Registry) { o.Remove() }
		}
	}

	r.Allies.Update()

	for i, p := range tracers {
		if p.visits != 1 {
			t.Errorf("object %d visited %d times, want 1", i, p.visits)
		}
	}
	if r.Allies.Len() != 13 {
		t.Errorf("expected 13 survivors, got %d", r.Allies.Len())
	}
}

func TestContainerInsertDuringUpdate(t *testing.T) {
	r := NewRegistry(1)
	parent, pp := newTracer(0)
	r.Enemies.Insert(parent)

	var children []*tracer
	pp.onUpdate = func(o *Object, r *Registry) {
		for i := 0; i < 3; i++ {
			c, cp := newTracer(0)
			children = append(children, cp)
			o.Spawn(c)
		}
	}

	r.Enemies.Update()

	if r.Enemies.Len() != 4 {
		t.Fatalf("expected 4 members, got %d", r.Enemies.Len())
	}
	for i, c := range children {
		if c.visits != 0 {
			t.Errorf("child %d visited during the pass that created it", i)
		}
	}

	pp.onUpdate = nil
	r.Enemies.Update()
	for i, c := range children {
		if c.visits != 1 {
			t.Errorf("child %d visits = %d on the next pass, want 1", i, c.visits)
		}
	}
}

func TestContainerReleasesDebris(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		debris int
		want   int
	}{
		{"on screen", 320, 240, 7, 7},
		{"off screen", 2, 240, 7, 0},
		{"no debris", 320, 240, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry(1)
			o, _ := newTracer(tc.debris)
			o.X, o.Y = tc.x, tc.y
			r.Enemies.Insert(o)
			r.Enemies.Remove(o)

			if got := r.Debris.Len(); got != tc.want {
				t.Errorf("debris = %d, want %d", got, tc.want)
			}
			for _, d := range r.Debris.Objects() {
				if d.X != tc.x || d.Y != tc.y {
					t.Errorf("debris at (%d, %d), want (%d, %d)", d.X, d.Y, tc.x, tc.y)
				}
			}
		})
	}
}

func TestContainerScanStops(t *testing.T) {
	r := NewRegistry(1)
	for i := 0; i < 5; i++ {
		o, _ := newTracer(0)
		r.Enemies.Insert(o)
	}

	seen := 0
	r.Enemies.Scan(func(o *Object) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("expected scan to stop after 2, got %d", seen)
	}
}

func TestContainerDraw(t *testing.T) {
	r := NewRegistry(1)
	for i := 0; i < 3; i++ {
		o, _ := newTracer(0)
		r.Enemies.Insert(o)
	}

	var dl DrawList
	r.Enemies.Draw(&dl)
	if got := dl.Sprites(SpriteBall); got != 3 {
		t.Errorf("expected 3 ball sprites, got %d", got)
	}
	for _, op := range dl.Ops {
		if op.X != 315 || op.Y != 235 {
			t.Errorf("sprite drawn at (%d, %d), want top-left (315, 235)", op.X, op.Y)
		}
	}
}

type countingRecorder struct {
	spawns [components.NumVariants]int
	kills  [components.NumVariants]int
}

func (c *countingRecorder) RecordSpawn(v components.Variant) { c.spawns[v]++ }
func (c *countingRecorder) RecordKill(v components.Variant)  { c.kills[v]++ }

func TestRecorderSeesSpawnsAndKills(t *testing.T) {
	r := NewRegistry(1)
	rec := &countingRecorder{}
	r.SetRecorder(rec)

	m := NewStraightMissile(320, 240, 0, 0)
	r.Enemies.Insert(m)
	if !m.ApplyDamage(1) {
		t.Fatal("expected missile to be destroyed")
	}

	if rec.spawns[components.VariantStraightMissile] != 1 {
		t.Errorf("missile spawns = %d, want 1", rec.spawns[components.VariantStraightMissile])
	}
	if rec.kills[components.VariantStraightMissile] != 1 {
		t.Errorf("missile kills = %d, want 1", rec.kills[components.VariantStraightMissile])
	}
	if rec.spawns[components.VariantDebris] != missileDebris {
		t.Errorf("debris spawns = %d, want %d", rec.spawns[components.VariantDebris], missileDebris)
	}
}

func TestContainerAt(t *testing.T) {
	r := NewRegistry(1)
	a, _ := newTracer(0)
	b, _ := newTracer(0)
	b.X = 328
	r.Enemies.Insert(a)
	r.Enemies.Insert(b)

	tests := []struct {
		name  string
		x, y  int
		slack int
		want  *Object
	}{
		{"centre of a", 320, 240, 0, a},
		{"overlap goes to nearest", 325, 240, 0, b},
		{"outside", 360, 240, 0, nil},
		{"slack reaches b", 340, 240, 8, b},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Enemies.At(tt.x, tt.y, tt.slack); got != tt.want {
				t.Errorf("At(%d, %d) = %p, want %p", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRegistryObjectAtSkipsDebris(t *testing.T) {
	r := NewRegistry(1)
	r.ReleaseDebris(100, 100, 3)
	if o := r.ObjectAt(100, 100, 2); o != nil {
		t.Errorf("picked debris %v", o.Variant)
	}

	ally, _ := newTracer(0)
	enemy, _ := newTracer(0)
	r.Allies.Insert(ally)
	r.Enemies.Insert(enemy)
	if got := r.ObjectAt(320, 240, 0); got != ally {
		t.Error("expected the ally to win")
	}
}
