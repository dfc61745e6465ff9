package components

import "math"

// Sign returns -1, 0 or 1.
func Sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Distance is the truncated euclidean distance between two points.
// Axis-aligned offsets skip the square root.
func Distance(x1, y1, x2, y2 float64) int {
	dx := math.Abs(x1 - x2)
	dy := math.Abs(y1 - y2)
	if dx == 0 {
		return int(dy)
	}
	if dy == 0 {
		return int(dx)
	}
	return int(math.Sqrt(dx*dx + dy*dy))
}

// Heading returns the angle of the vector (x, y) in radians, in the range
// [-pi/2, 3pi/2). A zero vector has heading 0.
func Heading(x, y float64) float64 {
	d := math.Sqrt(x*x + y*y)
	if d == 0 {
		return 0
	}
	if x < 0 {
		return math.Asin(-y/d) + math.Pi
	}
	return math.Asin(y / d)
}

// Stepper moves a body by sub-pixel amounts without floating point drift.
// Dir holds hundredths of a pixel per tick, Rem accumulates them and every
// whole hundred moves the body one pixel along Inc.
type Stepper struct {
	DirX, DirY int
	IncX, IncY int
	RemX, RemY int

	// Exclusive moves only once the remainder exceeds 100 instead of
	// reaching it. Debris uses it.
	Exclusive bool
}

// NewStepper builds a stepper for a velocity in pixels per tick.
func NewStepper(vx, vy float64) Stepper {
	return StepperFromUnits(int(vx*100), int(vy*100))
}

// StepperFromUnits builds a stepper from hundredths of a pixel per tick.
func StepperFromUnits(dx, dy int) Stepper {
	return Stepper{
		DirX: abs(dx),
		DirY: abs(dy),
		IncX: Sign(dx),
		IncY: Sign(dy),
	}
}

// Advance moves b by one tick worth of motion.
func (s *Stepper) Advance(b *Body) {
	s.RemX += s.DirX
	s.RemY += s.DirY
	for s.due(s.RemX) {
		s.RemX -= 100
		b.X += s.IncX
	}
	for s.due(s.RemY) {
		s.RemY -= 100
		b.Y += s.IncY
	}
}

func (s *Stepper) due(rem int) bool {
	if s.Exclusive {
		return rem > 100
	}
	return rem >= 100
}
