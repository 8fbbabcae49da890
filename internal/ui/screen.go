// Package ui draws the forest, its characters and planned paths to a
// terminal using tcell.
package ui

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Screen is the terminal Canvas. It also turns mouse clicks into screen
// cells and posts clock pulses so the event loop wakes without input.
type Screen struct {
	tty  tcell.Screen
	once sync.Once
}

var _ Canvas = (*Screen)(nil)

// NewScreen opens the terminal with the mouse enabled and the cursor hidden.
func NewScreen() (*Screen, error) {
	tty, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tty.Init(); err != nil {
		return nil, err
	}
	tty.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	tty.EnableMouse()
	tty.HideCursor()
	tty.Clear()
	return &Screen{tty: tty}, nil
}

// Close restores the terminal. Further calls do nothing.
func (s *Screen) Close() {
	s.once.Do(s.tty.Fini)
}

// PollEvent blocks for the next event. It returns nil once the screen is
// closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.tty.PollEvent()
}

// Pulse posts an EventInterrupt carrying the wall time every interval
// until ctx is done. A full event queue drops the pulse; the receiver
// measures elapsed time itself.
func (s *Screen) Pulse(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			_ = s.tty.PostEvent(tcell.NewEventInterrupt(now))
		}
	}
}

// Click reports the screen cell of a primary-button press.
func Click(ev *tcell.EventMouse) (x, y int, ok bool) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return 0, 0, false
	}
	x, y = ev.Position()
	return x, y, true
}

func (s *Screen) Clear() { s.tty.Clear() }

func (s *Screen) Show() { s.tty.Show() }

// Sync repaints every cell, used after a resize.
func (s *Screen) Sync() { s.tty.Sync() }

func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.tty.SetContent(x, y, r, nil, style)
}

func (s *Screen) Size() (width, height int) { return s.tty.Size() }
