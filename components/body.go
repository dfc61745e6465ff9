package components

// Arena dimensions in logical units. Every coordinate in the simulation lives
// in this space regardless of the window size.
const (
	ArenaWidth  = 640
	ArenaHeight = 480
)

// Body holds the geometric center and box size of an entity.
type Body struct {
	X, Y int // center
	W, H int // box width/height
}

// TopLeft returns the corner used by the draw primitives.
func (b *Body) TopLeft() (int, int) {
	return b.X - b.W/2, b.Y - b.H/2
}

// ClampToArena pushes the center back so the half-box stays inside the arena.
func (b *Body) ClampToArena() {
	if b.X-b.W/2 < 0 {
		b.X = b.W / 2
	}
	if b.Y-b.H/2 < 0 {
		b.Y = b.H / 2
	}
	if b.X+b.W/2 > ArenaWidth {
		b.X = ArenaWidth - b.W/2
	}
	if b.Y+b.H/2 > ArenaHeight {
		b.Y = ArenaHeight - b.H/2
	}
}

// Offscreen reports whether the center is closer than one full box to any
// arena edge. The margin is the whole box, not half of it, so entities are
// culled slightly before they actually leave the arena.
func (b *Body) Offscreen() bool {
	return b.X-b.W < 0 || b.X+b.W > ArenaWidth ||
		b.Y-b.H < 0 || b.Y+b.H > ArenaHeight
}

// Overlaps is the axis-aligned box test used for collisions. The X axis
// counts touching edges as a hit while the Y axis does not.
func (b *Body) Overlaps(o *Body) bool {
	dx := abs(b.X-o.X) - b.W/2 - o.W/2
	dy := abs(b.Y-o.Y) - b.H/2 - o.H/2
	return dx <= 0 && dy < 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
