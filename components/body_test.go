package components

import "testing"

func TestClampToArena(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"inside", 320, 240},
		{"left", -50, 240},
		{"right", 900, 240},
		{"top", 320, -10},
		{"bottom", 320, 1000},
		{"corner", -100, -100},
		{"far corner", 5000, 5000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := Body{X: tc.x, Y: tc.y, W: 48, H: 48}
			b.ClampToArena()

			left, top := b.TopLeft()
			if left < 0 || top < 0 {
				t.Errorf("box top-left (%d, %d) outside arena", left, top)
			}
			if left+b.W > ArenaWidth || top+b.H > ArenaHeight {
				t.Errorf("box bottom-right (%d, %d) outside arena", left+b.W, top+b.H)
			}
		})
	}
}

func TestClampLeavesInsideUntouched(t *testing.T) {
	b := Body{X: 320, Y: 400, W: 48, H: 48}
	b.ClampToArena()
	if b.X != 320 || b.Y != 400 {
		t.Errorf("expected (320, 400), got (%d, %d)", b.X, b.Y)
	}
}

func TestOffscreenNeverFiresInsideMargin(t *testing.T) {
	sizes := [][2]int{{5, 5}, {10, 10}, {20, 20}, {48, 48}, {100, 20}, {2, 50}}
	for _, s := range sizes {
		w, h := s[0], s[1]
		for x := w; x <= ArenaWidth-w; x += 7 {
			for y := h; y <= ArenaHeight-h; y += 7 {
				b := Body{X: x, Y: y, W: w, H: h}
				if b.Offscreen() {
					t.Fatalf("Offscreen fired for %dx%d at (%d, %d)", w, h, x, y)
				}
			}
		}
	}
}

func TestOffscreenOutside(t *testing.T) {
	tests := []struct {
		name string
		b    Body
	}{
		{"past left", Body{X: -20, Y: 240, W: 10, H: 10}},
		{"past right", Body{X: 700, Y: 240, W: 10, H: 10}},
		{"above", Body{X: 320, Y: -1, W: 10, H: 10}},
		{"below", Body{X: 320, Y: 481, W: 10, H: 10}},
		{"inside margin", Body{X: 5, Y: 240, W: 10, H: 10}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.b.Offscreen() {
				t.Errorf("expected %+v to be offscreen", tc.b)
			}
		})
	}
}

func TestOverlapsBoundaries(t *testing.T) {
	a := Body{X: 100, Y: 100, W: 10, H: 10}

	tests := []struct {
		name string
		b    Body
		want bool
	}{
		{"same spot", Body{X: 100, Y: 100, W: 10, H: 10}, true},
		{"touching on x", Body{X: 110, Y: 100, W: 10, H: 10}, true},
		{"touching on y", Body{X: 100, Y: 110, W: 10, H: 10}, false},
		{"apart on x", Body{X: 111, Y: 100, W: 10, H: 10}, false},
		{"overlap on y", Body{X: 100, Y: 109, W: 10, H: 10}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(&tc.b); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
			if got := tc.b.Overlaps(&a); got != tc.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStepperSubPixel(t *testing.T) {
	b := Body{X: 0, Y: 0}
	s := NewStepper(0.5, -0.25)

	for i := 0; i < 4; i++ {
		s.Advance(&b)
	}
	if b.X != 2 || b.Y != -1 {
		t.Errorf("after 4 ticks expected (2, -1), got (%d, %d)", b.X, b.Y)
	}
}

func TestStepperExclusiveThreshold(t *testing.T) {
	b := Body{}
	s := StepperFromUnits(100, 0)
	s.Exclusive = true

	s.Advance(&b)
	if b.X != 0 {
		t.Errorf("exclusive stepper moved on exactly 100: x=%d", b.X)
	}
	s.Advance(&b)
	if b.X != 1 {
		t.Errorf("expected x=1 after second tick, got %d", b.X)
	}
}

func TestDistance(t *testing.T) {
	if d := Distance(0, 0, 3, 4); d != 5 {
		t.Errorf("Distance(0,0,3,4) = %d, want 5", d)
	}
	if d := Distance(10, 0, 10, 7.9); d != 7 {
		t.Errorf("axis-aligned distance = %d, want 7", d)
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		x, y, want float64
	}{
		{1, 0, 0},
		{0, 0, 0},
		{-1, 0, 3.14159265},
		{0, 1, 1.57079633},
	}
	for _, tc := range tests {
		got := Heading(tc.x, tc.y)
		if diff := got - tc.want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("Heading(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestIndexedPalette(t *testing.T) {
	if c := Indexed(0); c != (Color{}) {
		t.Errorf("index 0 should be black, got %+v", c)
	}
	if c := Indexed(15); c != RGB(255, 255, 255) {
		t.Errorf("index 15 should be white, got %+v", c)
	}
	if Indexed(256+4) != Indexed(4) {
		t.Error("palette index should wrap modulo 256")
	}
}
