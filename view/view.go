// Package view draws a classified grid.Grid on a terminal screen and lets the
// user pan around it.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/safemaze/grid"
	"github.com/katalvlaran/safemaze/region"
)

// Palette maps each cell kind to its glyph style.
type Palette struct {
	Wall, Free, Base, Safe tcell.Style
	Status                 tcell.Style
}

// DefaultPalette returns the colors used by the safemaze viewer.
func DefaultPalette() Palette {
	return Palette{
		Wall:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		Free:   tcell.StyleDefault.Foreground(tcell.ColorRed),
		Base:   tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Safe:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Status: tcell.StyleDefault.Reverse(true),
	}
}

func (p Palette) style(k grid.Kind) tcell.Style {
	switch k {
	case grid.Wall:
		return p.Wall
	case grid.Base:
		return p.Base
	case grid.Safe:
		return p.Safe
	}
	return p.Free
}

// glyph is what a cell looks like on screen. Free cells show a dot so that
// they stand apart from blank screen.
func glyph(k grid.Kind) rune {
	switch k {
	case grid.Wall:
		return '█'
	case grid.Free:
		return '·'
	}
	return k.Rune()
}

// action is a user command decoded from a key.
type action int

const (
	actNone action = iota
	actQuit
	actUp
	actDown
	actLeft
	actRight
)

// keyAction decodes a key press. Arrows and hjkl pan; q, Esc and Ctrl-C quit.
func keyAction(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyUp:
		return actUp
	case tcell.KeyDown:
		return actDown
	case tcell.KeyLeft:
		return actLeft
	case tcell.KeyRight:
		return actRight
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actQuit
		case 'k':
			return actUp
		case 'j':
			return actDown
		case 'h':
			return actLeft
		case 'l':
			return actRight
		}
	}
	return actNone
}

// Viewer shows one grid on one screen.
type Viewer struct {
	screen  tcell.Screen
	grid    *grid.Grid
	palette Palette
	summary region.Summary

	// top-left grid cell shown at the screen origin
	offRow, offCol int
}

// New creates a Viewer. The screen must already be initialized.
func New(s tcell.Screen, g *grid.Grid, p Palette) *Viewer {
	return &Viewer{
		screen:  s,
		grid:    g,
		palette: p,
		summary: region.Summarize(g),
	}
}

// Draw paints the visible part of the grid and the status line.
// The last screen row is reserved for the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	rows := h - 1
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			c := v.grid.Cell(grid.Position{Row: v.offRow + y, Col: v.offCol + x})
			if c == nil {
				continue
			}
			v.screen.SetContent(x, y, glyph(c.Kind()), nil, v.palette.style(c.Kind()))
		}
	}
	if h > 0 {
		v.drawStatus(w, h-1)
	}
}

func (v *Viewer) drawStatus(w, y int) {
	s := v.summary
	line := fmt.Sprintf(" %d×%d  safe %d  free %d  unreachable %d  bases %d  [arrows/hjkl pan, q quit]",
		v.grid.Width(), v.grid.Height(), s.Safe, s.Free, s.Unreachable, s.Bases)
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, v.palette.Status)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, v.palette.Status)
	}
}

// pan moves the viewport, keeping it within the grid.
func (v *Viewer) pan(dRow, dCol int) {
	w, h := v.screen.Size()
	v.offRow = clamp(v.offRow+dRow, 0, max(0, v.grid.Height()-(h-1)))
	v.offCol = clamp(v.offCol+dCol, 0, max(0, v.grid.Width()-w))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// HandleEvent applies one screen event and reports whether the viewer should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.apply(keyAction(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		v.pan(0, 0)
		v.screen.Sync()
	}
	return false
}

func (v *Viewer) apply(a action) bool {
	switch a {
	case actQuit:
		return true
	case actUp:
		v.pan(-1, 0)
	case actDown:
		v.pan(1, 0)
	case actLeft:
		v.pan(0, -1)
	case actRight:
		v.pan(0, 1)
	}
	return false
}

// Run draws and processes events until the user quits or the screen closes.
// It does not finalize the screen.
func (v *Viewer) Run() {
	for {
		v.Draw()
		v.screen.Show()
		ev := v.screen.PollEvent()
		if ev == nil || v.HandleEvent(ev) {
			return
		}
	}
}
