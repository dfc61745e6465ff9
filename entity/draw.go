package entity

import "github.com/pthm-cable/barrage/components"

// Sprite identifies one of the fixed images the simulation draws.
type Sprite uint8

const (
	SpriteShip Sprite = iota
	SpriteBall
	SpriteCharged0
	SpriteCharged1
	SpriteCharged2
	SpriteGunship
	SpriteGroundEnemy
	SpriteVortex
	SpriteRain
	SpriteAsteroid

	NumSprites
)

var spriteSizes = [NumSprites][2]int{
	SpriteShip:        {48, 48},
	SpriteBall:        {10, 10},
	SpriteCharged0:    {20, 20},
	SpriteCharged1:    {18, 18},
	SpriteCharged2:    {14, 14},
	SpriteGunship:     {48, 48},
	SpriteGroundEnemy: {20, 20},
	SpriteVortex:      {64, 48},
	SpriteRain:        {20, 20},
	SpriteAsteroid:    {5, 5},
}

var spriteNames = [NumSprites]string{
	SpriteShip:        "ship",
	SpriteBall:        "ball",
	SpriteCharged0:    "charged0",
	SpriteCharged1:    "charged1",
	SpriteCharged2:    "charged2",
	SpriteGunship:     "gunship",
	SpriteGroundEnemy: "ground_enemy",
	SpriteVortex:      "vortex",
	SpriteRain:        "rain",
	SpriteAsteroid:    "asteroid",
}

// Size returns the sprite's width and height in arena units.
func (s Sprite) Size() (int, int) {
	if s >= NumSprites {
		return 0, 0
	}
	return spriteSizes[s][0], spriteSizes[s][1]
}

func (s Sprite) String() string {
	if s >= NumSprites {
		return "unknown"
	}
	return spriteNames[s]
}

// ChargedSprite returns the sprite for a charged missile level. The last
// level reuses the plain ball; levels outside 0..3 have no sprite.
func ChargedSprite(level int) (Sprite, bool) {
	switch level {
	case 0:
		return SpriteCharged0, true
	case 1:
		return SpriteCharged1, true
	case 2:
		return SpriteCharged2, true
	case 3:
		return SpriteBall, true
	}
	return 0, false
}

// Drawer is the presentation collaborator. Coordinates are top-left corners
// in arena units.
type Drawer interface {
	DrawSprite(s Sprite, x, y int)
	FillBox(x, y, w, h int, c components.Color)
}

// Discard is a Drawer that draws nothing.
var Discard Drawer = discard{}

type discard struct{}

func (discard) DrawSprite(Sprite, int, int)                   {}
func (discard) FillBox(int, int, int, int, components.Color) {}

// DrawOp is one recorded draw call.
type DrawOp struct {
	Fill   bool
	Sprite Sprite
	X, Y   int
	W, H   int
	Color  components.Color
}

// DrawList records draw calls so a frame can be simulated in one place and
// presented in another.
type DrawList struct {
	Ops []DrawOp
}

func (l *DrawList) DrawSprite(s Sprite, x, y int) {
	w, h := s.Size()
	l.Ops = append(l.Ops, DrawOp{Sprite: s, X: x, Y: y, W: w, H: h})
}

func (l *DrawList) FillBox(x, y, w, h int, c components.Color) {
	l.Ops = append(l.Ops, DrawOp{Fill: true, X: x, Y: y, W: w, H: h, Color: c})
}

// Reset empties the list, keeping its storage.
func (l *DrawList) Reset() {
	l.Ops = l.Ops[:0]
}

// Replay sends every recorded call to d in order.
func (l *DrawList) Replay(d Drawer) {
	for _, op := range l.Ops {
		if op.Fill {
			d.FillBox(op.X, op.Y, op.W, op.H, op.Color)
		} else {
			d.DrawSprite(op.Sprite, op.X, op.Y)
		}
	}
}

// Sprites counts recorded sprite calls of one kind.
func (l *DrawList) Sprites(s Sprite) int {
	n := 0
	for _, op := range l.Ops {
		if !op.Fill && op.Sprite == s {
			n++
		}
	}
	return n
}

func drawSprite(o *Object, d Drawer, s Sprite) {
	x, y := o.TopLeft()
	d.DrawSprite(s, x, y)
}
