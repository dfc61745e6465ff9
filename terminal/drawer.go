// Package terminal presents the arena in a terminal through tcell and feeds
// mouse and keyboard input back into the simulation.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/barrage/components"
	"github.com/pthm-cable/barrage/entity"
)

// Half-block glyphs used for boxes thinner than a cell.
const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
	dot       = '·'
)

type spriteGlyph struct {
	r     rune
	color components.Color
}

var spriteGlyphs = [entity.NumSprites]spriteGlyph{
	entity.SpriteShip:        {'A', components.RGB(120, 200, 255)},
	entity.SpriteBall:        {'o', components.RGB(255, 255, 255)},
	entity.SpriteCharged0:    {'O', components.RGB(255, 220, 80)},
	entity.SpriteCharged1:    {'0', components.RGB(255, 180, 60)},
	entity.SpriteCharged2:    {'o', components.RGB(255, 140, 40)},
	entity.SpriteGunship:     {'W', components.RGB(220, 80, 80)},
	entity.SpriteGroundEnemy: {'M', components.RGB(120, 220, 120)},
	entity.SpriteVortex:      {'@', components.RGB(200, 120, 255)},
	entity.SpriteRain:        {'%', components.RGB(140, 140, 200)},
	entity.SpriteAsteroid:    {'*', components.RGB(170, 140, 100)},
}

// Drawer implements entity.Drawer on a tcell screen. Each cell covers
// cellW×cellH arena units.
type Drawer struct {
	screen       tcell.Screen
	cellW, cellH int
}

var _ entity.Drawer = (*Drawer)(nil)

// NewDrawer creates a drawer over screen.
func NewDrawer(screen tcell.Screen, cellW, cellH int) *Drawer {
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	return &Drawer{screen: screen, cellW: cellW, cellH: cellH}
}

// Cols returns the number of columns the arena occupies.
func (d *Drawer) Cols() int {
	return components.ArenaWidth / d.cellW
}

// Rows returns the number of rows the arena occupies.
func (d *Drawer) Rows() int {
	return components.ArenaHeight / d.cellH
}

// ToArena returns the arena point at the centre of cell (col, row).
func (d *Drawer) ToArena(col, row int) (x, y int) {
	return col*d.cellW + d.cellW/2, row*d.cellH + d.cellH/2
}

// DrawSprite fills the cells under the sprite's box with its glyph.
func (d *Drawer) DrawSprite(s entity.Sprite, x, y int) {
	if s >= entity.NumSprites {
		return
	}
	w, h := s.Size()
	g := spriteGlyphs[s]
	style := tcell.StyleDefault.Foreground(tcellColor(g.color))
	d.eachCell(x, y, w, h, func(col, row int) {
		d.screen.SetContent(col, row, g.r, nil, style)
	})
}

// FillBox paints a box. Boxes thinner than half a cell use half blocks,
// and two half blocks in the same cell share it.
func (d *Drawer) FillBox(x, y, w, h int, c components.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	color := tcellColor(c)

	if w == 1 && h == 1 {
		d.setCell(floorDiv(x, d.cellW), floorDiv(y, d.cellH), dot, tcell.StyleDefault.Foreground(color))
		return
	}

	if h*2 > d.cellH {
		style := tcell.StyleDefault.Foreground(color)
		d.eachCell(x, y, w, h, func(col, row int) {
			d.setCell(col, row, fullBlock, style)
		})
		return
	}

	half := rune(upperHalf)
	if mid := y + h/2; mid-floorDiv(mid, d.cellH)*d.cellH >= d.cellH/2 {
		half = lowerHalf
	}
	d.eachCell(x, y, w, h, func(col, row int) {
		d.setHalf(col, row, half, color)
	})
}

// setHalf draws one half block, keeping the opposite half if the cell
// already holds one.
func (d *Drawer) setHalf(col, row int, half rune, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(color)
	cur, _, curStyle, _ := d.screen.GetContent(col, row)
	if (cur == upperHalf || cur == lowerHalf) && cur != half {
		fg, _, _ := curStyle.Decompose()
		style = style.Background(fg)
	}
	d.setCell(col, row, half, style)
}

func (d *Drawer) setCell(col, row int, r rune, style tcell.Style) {
	cols, rows := d.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	d.screen.SetContent(col, row, r, nil, style)
}

// eachCell visits the in-arena cells covered by the box.
func (d *Drawer) eachCell(x, y, w, h int, fn func(col, row int)) {
	c0, r0 := floorDiv(x, d.cellW), floorDiv(y, d.cellH)
	c1, r1 := floorDiv(x+w-1, d.cellW), floorDiv(y+h-1, d.cellH)
	cols, rows := d.screen.Size()
	for row := max(r0, 0); row <= r1 && row < rows; row++ {
		for col := max(c0, 0); col <= c1 && col < cols; col++ {
			fn(col, row)
		}
	}
}

// DrawText writes s starting at (col, row).
func (d *Drawer) DrawText(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		d.setCell(col, row, r, style)
		col++
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func tcellColor(c components.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
