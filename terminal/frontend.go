package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/barrage/entity"
)

// Session is the part of a running game the terminal drives.
type Session interface {
	Step(in entity.Input, d entity.Drawer)
	HeadlessInput() entity.Input
	Registry() *entity.Registry
	Autofire() bool
	SetAutofire(on bool)
	Tick() int32
}

// Frontend runs a session on a tcell screen at a fixed tick interval.
type Frontend struct {
	screen   tcell.Screen
	drawer   *Drawer
	session  Session
	interval time.Duration

	input    entity.Input
	holdFire bool // keyboard fire latch; terminals report no key releases
	altPulse bool
	paused   bool
}

// NewFrontend creates a frontend. The screen must already be initialized.
func NewFrontend(screen tcell.Screen, s Session, interval time.Duration, cellW, cellH int) *Frontend {
	if interval <= 0 {
		interval = 30 * time.Millisecond
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Frontend{
		screen:   screen,
		drawer:   NewDrawer(screen, cellW, cellH),
		session:  s,
		interval: interval,
		input:    entity.DefaultInput(),
	}
}

// Input returns the input that the next tick will use.
func (f *Frontend) Input() entity.Input {
	if f.session.Autofire() {
		return f.session.HeadlessInput()
	}
	in := f.input
	in.Fire = in.Fire || f.holdFire
	in.AltFire = in.AltFire || f.altPulse
	return in
}

// Paused reports whether ticking is suspended.
func (f *Frontend) Paused() bool {
	return f.paused
}

// Run ticks the session until the user quits or ctx is done. Events are
// read on a separate goroutine; the session is only touched here.
func (f *Frontend) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Frame()
		}
	}
}

// Frame runs one tick and presents it.
func (f *Frontend) Frame() {
	if f.paused {
		f.drawStatus()
		f.screen.Show()
		return
	}
	f.screen.Clear()
	f.session.Step(f.Input(), f.drawer)
	f.altPulse = false
	f.drawStatus()
	f.screen.Show()
}

// HandleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)

	case *tcell.EventMouse:
		col, row := ev.Position()
		f.input.CursorX, f.input.CursorY = f.drawer.ToArena(col, row)
		buttons := ev.Buttons()
		f.input.Fire = buttons&tcell.Button1 != 0
		f.input.AltFire = buttons&tcell.Button2 != 0

	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		f.moveCursor(-1, 0)
	case tcell.KeyRight:
		f.moveCursor(1, 0)
	case tcell.KeyUp:
		f.moveCursor(0, -1)
	case tcell.KeyDown:
		f.moveCursor(0, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			f.paused = !f.paused
		case 'f':
			f.holdFire = !f.holdFire
		case 'x':
			f.altPulse = true
		case 'a':
			f.session.SetAutofire(!f.session.Autofire())
		}
	}
	return true
}

// moveCursor shifts the cursor by whole cells from where it is, keeping it
// between the centres of the edge cells.
func (f *Frontend) moveCursor(dc, dr int) {
	cw, ch := f.drawer.cellW, f.drawer.cellH
	x := f.input.CursorX + dc*cw
	y := f.input.CursorY + dr*ch
	f.input.CursorX = min(max(x, cw/2), (f.drawer.Cols()-1)*cw+cw/2)
	f.input.CursorY = min(max(y, ch/2), (f.drawer.Rows()-1)*ch+ch/2)
}

// drawStatus writes the score line below the arena.
func (f *Frontend) drawStatus() {
	st := f.session.Registry().State
	line := fmt.Sprintf(" score %d  tick %d  energy %d  charge %d ",
		st.Score, f.session.Tick(), st.PlayerEnergy, st.Charge)
	switch {
	case f.paused:
		line += " PAUSED"
	case f.session.Autofire():
		line += " AUTO"
	case f.holdFire:
		line += " FIRE"
	}
	f.drawer.DrawText(0, f.drawer.Rows(), line, tcell.StyleDefault.Reverse(true))
}
