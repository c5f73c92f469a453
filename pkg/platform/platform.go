// pkg/platform/platform.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package platform is an FLTK platform backend for Dear ImGui. It
// translates the events FLTK delivers to a window into the UI library's
// input queue, and once per frame it forwards display metrics and timing
// and applies the cursor the UI library asks for.
//
// Typical use from a window's handle() override:
//
//	func (w *glWindow) handle(ev fltk.Event) bool {
//		return platform.HandleEvent(w.backend, ev, w.defaultHandle)
//	}
//
// and in the render loop, after the renderer's NewFrame and before the UI
// library's:
//
//	w.backend.NewFrame()
package platform

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mmp/imgui-fltk/pkg/fltk"
)

// Toolkit is the part of FLTK the backend reads event details from and
// whose services it calls. The Event* methods describe the event currently
// being handled, as Fl::event_x() and friends do.
type Toolkit interface {
	EventX() int
	EventY() int
	EventDX() int
	EventDY() int
	EventButton() fltk.Button
	EventKey() fltk.Key
	EventState() fltk.State
	EventText() string

	// Now returns a monotonic time sample.
	Now() time.Time
	// Copy puts text into the given clipboard buffer.
	Copy(text string, dest fltk.ClipboardDest)
}

// Window is the native window the backend is bound to.
type Window interface {
	// W and H return the size in FLTK (logical) units.
	W() int
	H() int
	// PixelW and PixelH return the size of the drawable in pixels.
	PixelW() int
	PixelH() int
	SetCursor(c fltk.Cursor)
	// RawHandle returns the native window handle (fl_xid()), or 0 if it
	// isn't available.
	RawHandle() uintptr
}

// Config holds the backend settings shared by every backend a Registry
// creates.
type Config struct {
	// NominalFrameRate gives the delta time reported for the first frame,
	// before there is a previous frame to measure from.
	NominalFrameRate float64 `toml:"nominal_frame_rate"`
	// PasteOnCtrlV turns the release of Ctrl+V into a synthesized paste
	// event for the window.
	PasteOnCtrlV bool `toml:"paste_on_ctrl_v"`
	// UnfocusOnKeyRelease makes every key release also synthesize an
	// unfocus event for the window. Some FLTK integrations relied on this
	// to drop keyboard focus; it is off by default since key and focus
	// transitions are otherwise independent.
	UnfocusOnKeyRelease bool `toml:"unfocus_on_key_release"`
	// BackendName is reported to the UI library as the platform backend.
	BackendName string `toml:"backend_name"`
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		NominalFrameRate: 60,
		PasteOnCtrlV:     true,
		BackendName:      "imgui_impl_fltk",
	}
}

// Validate reports every setting in c that the backend can't use.
func (c Config) Validate() error {
	var errs []error
	if !validFrameRate(c.NominalFrameRate) {
		errs = append(errs, fmt.Errorf("nominal_frame_rate: %g: must be positive", c.NominalFrameRate))
	}
	if c.BackendName == "" {
		errs = append(errs, errors.New("backend_name: must not be empty"))
	}
	return errors.Join(errs...)
}

func validFrameRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 1)
}

// withDefaults replaces the settings Validate rejects with their defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if !validFrameRate(c.NominalFrameRate) {
		c.NominalFrameRate = d.NominalFrameRate
	}
	if c.BackendName == "" {
		c.BackendName = d.BackendName
	}
	return c
}

func (c Config) nominalDeltaTime() float32 {
	return float32(1 / c.NominalFrameRate)
}
