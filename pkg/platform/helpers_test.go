// pkg/platform/helpers_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"testing"
	"time"

	"github.com/mmp/imgui-fltk/pkg/fltk"
	"github.com/mmp/imgui-fltk/pkg/ui"

	"github.com/stretchr/testify/require"
)

// fakeToolkit stands in for FLTK: tests set the fields describing the
// "current" event before calling into the backend.
type fakeToolkit struct {
	x, y, dx, dy int
	button       fltk.Button
	key          fltk.Key
	state        fltk.State
	text         string

	now time.Time

	copied []string
	dests  []fltk.ClipboardDest
}

func (f *fakeToolkit) EventX() int              { return f.x }
func (f *fakeToolkit) EventY() int              { return f.y }
func (f *fakeToolkit) EventDX() int             { return f.dx }
func (f *fakeToolkit) EventDY() int             { return f.dy }
func (f *fakeToolkit) EventButton() fltk.Button { return f.button }
func (f *fakeToolkit) EventKey() fltk.Key       { return f.key }
func (f *fakeToolkit) EventState() fltk.State   { return f.state }
func (f *fakeToolkit) EventText() string        { return f.text }
func (f *fakeToolkit) Now() time.Time           { return f.now }

func (f *fakeToolkit) Copy(text string, dest fltk.ClipboardDest) {
	f.copied = append(f.copied, text)
	f.dests = append(f.dests, dest)
}

type fakeWindow struct {
	w, h, pw, ph int
	handle       uintptr
	cursors      []fltk.Cursor
}

func (f *fakeWindow) W() int                  { return f.w }
func (f *fakeWindow) H() int                  { return f.h }
func (f *fakeWindow) PixelW() int             { return f.pw }
func (f *fakeWindow) PixelH() int             { return f.ph }
func (f *fakeWindow) RawHandle() uintptr      { return f.handle }
func (f *fakeWindow) SetCursor(c fltk.Cursor) { f.cursors = append(f.cursors, c) }

type fixture struct {
	reg *Registry[string]
	b   *Backend
	io  *ui.Recorder
	tk  *fakeToolkit
	win *fakeWindow
}

var testEpoch = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newFixtureWithConfig(t *testing.T, config Config) *fixture {
	t.Helper()
	f := &fixture{
		reg: NewRegistry[string](config, nil),
		io:  ui.NewRecorder(),
		tk:  &fakeToolkit{now: testEpoch},
		win: &fakeWindow{w: 800, h: 600, pw: 1600, ph: 1200, handle: 0x1234},
	}
	b, ok := f.reg.InitForOpenGL("main", f.io, f.tk, f.win)
	require.True(t, ok)
	require.NotNil(t, b)
	f.b = b
	return f
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithConfig(t, DefaultConfig())
}

// process dispatches ev and returns what the backend emitted for it.
func (f *fixture) process(ev fltk.Event) (bool, []fltk.Event, []ui.Event) {
	handled, synth := f.b.ProcessEvent(ev)
	return handled, synth, f.io.Drain()
}

func modEvents(ctrl, shift, alt, super bool) []ui.Event {
	return []ui.Event{
		{Kind: ui.KeyEvent, Key: ui.ModCtrl, Down: ctrl},
		{Kind: ui.KeyEvent, Key: ui.ModShift, Down: shift},
		{Kind: ui.KeyEvent, Key: ui.ModAlt, Down: alt},
		{Kind: ui.KeyEvent, Key: ui.ModSuper, Down: super},
	}
}
