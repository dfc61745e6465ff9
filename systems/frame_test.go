package systems

import (
	"testing"

	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
	"github.com/pthm-cable/barrage/telemetry"
)

type phaseLog struct {
	phases []string
	passes []int
}

func (p *phaseLog) StartPhase(name string) {
	p.phases = append(p.phases, name)
}

func (p *phaseLog) RecordPasses(n int) {
	p.passes = append(p.passes, n)
}

func TestProcessFrameSpawnsPlayer(t *testing.T) {
	r := entity.NewRegistry(1)
	d := NewDriver(r)

	var dl entity.DrawList
	d.ProcessFrame(&dl)

	if !r.PlayerAlive() {
		t.Fatal("expected a player after the first frame")
	}
	if got := r.Allies.CountVariant(components.VariantPlayer); got != 1 {
		t.Errorf("players = %d, want 1", got)
	}
	if r.State.Ticks != 1 {
		t.Errorf("ticks = %d, want 1", r.State.Ticks)
	}
	if d.PlayerLives() != 1 {
		t.Errorf("lives = %d, want 1", d.PlayerLives())
	}

	d.ProcessFrame(&dl)
	if d.PlayerLives() != 1 {
		t.Errorf("a second player was spawned while one was alive")
	}
}

func TestProcessFrameHUD(t *testing.T) {
	r := entity.NewRegistry(1)
	d := NewDriver(r)

	var dl entity.DrawList
	d.ProcessFrame(&dl)
	if len(dl.Ops) < 2 {
		t.Fatalf("expected HUD bars, got %d ops", len(dl.Ops))
	}

	// The energy bar lags one frame behind the player's first update.
	energy, charge := dl.Ops[0], dl.Ops[1]
	if !energy.Fill || energy.X != 1 || energy.Y != 1 || energy.H != 4 || energy.W != 0 {
		t.Errorf("unexpected energy bar %+v", energy)
	}
	if !charge.Fill || charge.Y != 7 || charge.H != 4 || charge.W != 635 {
		t.Errorf("unexpected charge bar %+v", charge)
	}

	dl.Reset()
	d.ProcessFrame(&dl)
	if dl.Ops[0].W != 635 {
		t.Errorf("energy bar width = %d, want 635", dl.Ops[0].W)
	}
}

func TestDrawBarClampsNegative(t *testing.T) {
	var dl entity.DrawList
	drawBar(&dl, 1, -50, 1000, hudEnergyColor)
	drawBar(&dl, 1, 10, 0, hudEnergyColor)

	if dl.Ops[0].W != 0 {
		t.Errorf("negative value drew width %d", dl.Ops[0].W)
	}
	if dl.Ops[1].W != 6350 {
		t.Errorf("zero max drew width %d, want 6350", dl.Ops[1].W)
	}
}

func TestProcessFrameDrawOrder(t *testing.T) {
	r := entity.NewRegistry(1)
	r.Enemies.Insert(entity.NewGunshipAt(500, 100))
	d := NewDriver(r)

	var dl entity.DrawList
	d.ProcessFrame(&dl)

	gunship, ship := -1, -1
	for i, op := range dl.Ops {
		if op.Fill {
			continue
		}
		switch op.Sprite {
		case entity.SpriteGunship:
			gunship = i
		case entity.SpriteShip:
			ship = i
		}
	}
	if gunship < 0 || ship < 0 {
		t.Fatalf("missing sprites: gunship=%d ship=%d", gunship, ship)
	}
	if gunship > ship {
		t.Error("enemies should be drawn before allies")
	}
}

func TestProcessFramePhases(t *testing.T) {
	r := entity.NewRegistry(1)
	d := NewDriver(r)
	log := &phaseLog{}
	d.SetPhaseTimer(log)

	d.ProcessFrame(entity.Discard)

	want := []string{
		telemetry.PhaseUpdate, telemetry.PhaseDraw, telemetry.PhaseUpdate,
		telemetry.PhaseCollide, telemetry.PhaseDraw, telemetry.PhaseSpawn,
	}
	if len(log.phases) != len(want) {
		t.Fatalf("phases = %v, want %v", log.phases, want)
	}
	for i := range want {
		if log.phases[i] != want[i] {
			t.Errorf("phase %d = %s, want %s", i, log.phases[i], want[i])
		}
	}
}

func TestProcessFrameReportsCollisionPasses(t *testing.T) {
	r := entity.NewRegistry(1)
	d := NewDriver(r)
	log := &phaseLog{}
	d.SetPhaseTimer(log)

	d.ProcessFrame(entity.Discard)
	if len(log.passes) != 1 || log.passes[0] != 1 {
		t.Fatalf("quiet frame passes = %v, want [1]", log.passes)
	}

	st := r.State
	r.Input = entity.Input{CursorX: st.PlayerX, CursorY: st.PlayerY}
	r.Enemies.Insert(entity.NewGunshipAt(st.PlayerX, st.PlayerY))

	d.ProcessFrame(entity.Discard)
	if len(log.passes) != 2 {
		t.Fatalf("passes reported %d times, want once per frame", len(log.passes))
	}
	if log.passes[1] < 2 {
		t.Errorf("collision frame passes = %d, want a restart after the removal", log.passes[1])
	}
}

func TestProcessFrameRespawnKeepsScore(t *testing.T) {
	r := entity.NewRegistry(1)
	d := NewDriver(r)
	d.ProcessFrame(entity.Discard)

	r.State.Score = 1234
	for _, o := range r.Allies.Objects() {
		if o.Variant == components.VariantPlayer {
			o.ApplyDamage(entity.MaxEnergy)
		}
	}
	if r.PlayerAlive() {
		t.Fatal("player should be dead")
	}

	d.ProcessFrame(entity.Discard)
	if !r.PlayerAlive() || d.PlayerLives() != 2 {
		t.Fatalf("expected a respawn, lives=%d", d.PlayerLives())
	}
	if r.State.Score != 1234 {
		t.Errorf("score = %d after respawn, want 1234", r.State.Score)
	}
}

func TestSoakInvariants(t *testing.T) {
	r := entity.NewRegistry(77)
	d := NewDriver(r)

	for i := 0; i < 3000; i++ {
		r.Input = entity.Input{
			CursorX: 100 + (i*7)%440,
			CursorY: 300 + (i*3)%150,
			Fire:    true,
			AltFire: i%400 == 399,
		}
		d.ProcessFrame(entity.Discard)

		s := r.State
		if s.Charge < 0 || s.Charge > entity.MaxCharge {
			t.Fatalf("frame %d: charge %d out of range", i, s.Charge)
		}
		if s.PlayerPopulation < 0 || s.PlayerPopulation > 1 {
			t.Fatalf("frame %d: player population %d", i, s.PlayerPopulation)
		}
		if got := r.Allies.CountVariant(components.VariantPlayer); got != s.PlayerPopulation {
			t.Fatalf("frame %d: %d players live, population says %d", i, got, s.PlayerPopulation)
		}
		if got := r.Enemies.CountVariant(components.VariantGroundEnemy); got != s.EnemyPopulation {
			t.Fatalf("frame %d: %d ground enemies live, population says %d", i, got, s.EnemyPopulation)
		}
	}
	if r.State.Ticks != 3000 {
		t.Errorf("ticks = %d, want 3000", r.State.Ticks)
	}
}
