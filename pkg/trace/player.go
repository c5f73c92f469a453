// pkg/trace/player.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package trace

import (
	"time"

	"github.com/mmp/imgui-fltk/pkg/fltk"
)

// Player stands in for both FLTK and the bound window while a trace is
// replayed: Event* calls answer from the most recent event record, and the
// clock and geometry come from the most recent frame record. It satisfies
// platform.Toolkit and platform.Window.
type Player struct {
	Start time.Time

	event Record
	frame Record

	// Cursors lists every cursor the backend applied to the window.
	Cursors []fltk.Cursor
	// Copied lists every string the backend put on the clipboard.
	Copied []string
}

func NewPlayer(start time.Time) *Player {
	return &Player{Start: start}
}

// Apply makes rec the current event or frame.
func (p *Player) Apply(rec Record) {
	switch rec.Kind {
	case KindEvent:
		p.event = rec
	case KindFrame:
		p.frame = rec
	}
}

// Frame returns the current frame record.
func (p *Player) Frame() Record { return p.frame }

func (p *Player) EventX() int              { return p.event.X }
func (p *Player) EventY() int              { return p.event.Y }
func (p *Player) EventDX() int             { return p.event.DX }
func (p *Player) EventDY() int             { return p.event.DY }
func (p *Player) EventButton() fltk.Button { return p.event.Button }
func (p *Player) EventKey() fltk.Key       { return p.event.Key }
func (p *Player) EventState() fltk.State   { return p.event.State }
func (p *Player) EventText() string        { return p.event.Text }

func (p *Player) Now() time.Time { return p.Start.Add(p.frame.Elapsed) }

func (p *Player) Copy(text string, dest fltk.ClipboardDest) {
	if dest == fltk.Clipboard {
		p.Copied = append(p.Copied, text)
	}
}

func (p *Player) W() int      { return p.frame.W }
func (p *Player) H() int      { return p.frame.H }
func (p *Player) PixelW() int { return p.frame.PixelW }
func (p *Player) PixelH() int { return p.frame.PixelH }

func (p *Player) SetCursor(c fltk.Cursor) { p.Cursors = append(p.Cursors, c) }

// RawHandle is always 0; there is no native window behind a replay.
func (p *Player) RawHandle() uintptr { return 0 }
