package components

// Color is an opaque RGB colour handed to the draw primitives.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// vga16 is the classic 16-colour VGA table used for the low palette indices.
var vga16 = [16]Color{
	{0, 0, 0}, {0, 0, 170}, {0, 170, 0}, {0, 170, 170},
	{170, 0, 0}, {170, 0, 170}, {170, 85, 0}, {170, 170, 170},
	{85, 85, 85}, {85, 85, 255}, {85, 255, 85}, {85, 255, 255},
	{255, 85, 85}, {255, 85, 255}, {255, 255, 85}, {255, 255, 255},
}

// Indexed maps a 256-entry palette index to a colour: 0-15 VGA, 16-231 a
// 6x6x6 cube, 232-255 a grey ramp. Indices wrap modulo 256.
func Indexed(i int) Color {
	i &= 0xff
	switch {
	case i < 16:
		return vga16[i]
	case i < 232:
		i -= 16
		return Color{R: cube(i / 36), G: cube((i / 6) % 6), B: cube(i % 6)}
	default:
		v := uint8(8 + (i-232)*10)
		return Color{R: v, G: v, B: v}
	}
}

func cube(n int) uint8 {
	if n == 0 {
		return 0
	}
	return uint8(55 + n*40)
}
