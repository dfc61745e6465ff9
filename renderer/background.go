package renderer

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/barrage/camera"
	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/config"
)

type star struct {
	x, y  float32
	speed float32
}

// Starfield scrolls stars down the arena behind the action. Faster stars
// are brighter. It has its own random source so the simulation stream is
// untouched.
type Starfield struct {
	stars []star
	rng   *rand.Rand
	cfg   config.BackgroundConfig
}

// NewStarfield scatters cfg.StarCount stars over the arena.
func NewStarfield(cfg config.BackgroundConfig, seed int64) *Starfield {
	sf := &Starfield{
		stars: make([]star, cfg.StarCount),
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
	}
	for i := range sf.stars {
		sf.stars[i] = star{
			x:     sf.rng.Float32() * components.ArenaWidth,
			y:     sf.rng.Float32() * components.ArenaHeight,
			speed: sf.randomSpeed(),
		}
	}
	return sf
}

func (sf *Starfield) randomSpeed() float32 {
	return float32(sf.cfg.MinSpeed + sf.rng.Float64()*(sf.cfg.MaxSpeed-sf.cfg.MinSpeed))
}

// Update advances the stars by one tick, respawning those that leave the
// bottom edge at the top with a new column and speed.
func (sf *Starfield) Update() {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.y += s.speed
		if s.y >= components.ArenaHeight {
			s.y -= components.ArenaHeight
			s.x = sf.rng.Float32() * components.ArenaWidth
			s.speed = sf.randomSpeed()
		}
	}
}

// Draw renders the stars through cam.
func (sf *Starfield) Draw(cam *camera.Camera) {
	span := float32(sf.cfg.MaxSpeed - sf.cfg.MinSpeed)
	for _, s := range sf.stars {
		if !cam.IsVisible(s.x, s.y, 1, 1) {
			continue
		}
		b := float32(1)
		if span > 0 {
			b = (s.speed - float32(sf.cfg.MinSpeed)) / span
		}
		v := uint8(80 + b*175)
		sx, sy := cam.WorldToScreen(s.x, s.y)
		size := cam.Zoom * (0.5 + b)
		rl.DrawRectangleV(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: size, Y: size}, rl.Color{R: v, G: v, B: v, A: 255})
	}
}
