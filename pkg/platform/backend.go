// pkg/platform/backend.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"fmt"
	"time"

	"github.com/mmp/imgui-fltk/pkg/fltk"
	"github.com/mmp/imgui-fltk/pkg/log"
	"github.com/mmp/imgui-fltk/pkg/ui"
)

const backendCapabilities = ui.BackendFlagsHasMouseCursors | ui.BackendFlagsHasSetMousePos

// Backend is the per-context state of the FLTK backend. It is created by
// Registry.InitForOpenGL and must only be used from the thread running the
// FLTK event loop.
type Backend struct {
	lg     *log.Logger
	config Config

	io      ui.IO
	toolkit Toolkit
	window  Window

	lastFrameTime time.Time
	haveFrameTime bool

	// Bit i is set while mouse button i (0 left, 1 right, 2 middle) is down.
	mouseButtonsDown uint8

	cursors    CursorTable
	lastCursor fltk.Cursor

	// If non-zero, the frame at which the pointer is reported as having
	// left the window, unless a button is held.
	pendingLeaveFrame int

	clipboardText string
	capabilities  ui.BackendFlags
	attached      bool
}

// MouseButtonsDown returns the bitmask of currently pressed buttons.
func (b *Backend) MouseButtonsDown() uint8 { return b.mouseButtonsDown }

// PendingLeaveFrame returns the frame at which a deferred leave will be
// reported, or 0 if none is pending.
func (b *Backend) PendingLeaveFrame() int { return b.pendingLeaveFrame }

func (b *Backend) Config() Config { return b.config }

func (b *Backend) mustBeAttached(op string) {
	if b == nil || !b.attached {
		panic(fmt.Sprintf("platform: %s called without an initialized backend. Did you call InitForOpenGL()?", op))
	}
}

// clipboard bridges the UI library's clipboard calls to FLTK. FLTK's
// clipboard is event driven: pasted text only arrives with an FL_PASTE
// event, so GetClipboard is only meaningful while one is being handled.
type clipboard struct {
	b *Backend
}

func (c clipboard) GetClipboard() string {
	// Keep our own reference so the text outlives the event.
	c.b.clipboardText = c.b.toolkit.EventText()
	return c.b.clipboardText
}

func (c clipboard) SetClipboard(text string) {
	c.b.toolkit.Copy(text, fltk.Clipboard)
}

// Registry associates UI contexts with their backends. The key type is up
// to the caller; a pointer to the UI context works well. The zero value is
// an empty registry using DefaultConfig.
type Registry[K comparable] struct {
	lg       *log.Logger
	config   Config
	backends map[K]*Backend
}

// NewRegistry returns a registry whose backends use config. A zero Config
// means DefaultConfig; settings that fail Validate fall back to their
// defaults when a backend is initialized.
func NewRegistry[K comparable](config Config, lg *log.Logger) *Registry[K] {
	return &Registry[K]{
		lg:       lg,
		config:   config,
		backends: make(map[K]*Backend),
	}
}

// InitForOpenGL attaches a new backend for window to the UI context ctx.
// Initializing a context that already has a backend is a programming
// error and panics. It returns false if any of the collaborators is
// missing.
func (r *Registry[K]) InitForOpenGL(ctx K, io ui.IO, toolkit Toolkit, window Window) (*Backend, bool) {
	if _, ok := r.backends[ctx]; ok {
		r.lg.Errorf("%v: platform backend already initialized", ctx)
		panic("platform: already initialized a platform backend for this context")
	}
	if io == nil || toolkit == nil || window == nil {
		r.lg.Errorf("%v: InitForOpenGL needs a UI IO, a toolkit and a window", ctx)
		return nil, false
	}

	config := r.config
	if config == (Config{}) {
		config = DefaultConfig()
	} else if err := config.Validate(); err != nil {
		r.lg.Warnf("%v: %v; using defaults for those settings", ctx, err)
		config = config.withDefaults()
	}

	b := &Backend{
		lg:            r.lg,
		config:        config,
		io:            io,
		toolkit:       toolkit,
		window:        window,
		lastFrameTime: toolkit.Now(),
		cursors:       DefaultCursorTable(),
		capabilities:  backendCapabilities,
		attached:      true,
	}

	io.SetBackendPlatformName(b.config.BackendName)
	io.SetBackendFlags(io.BackendFlags() | b.capabilities)
	io.SetClipboardHandler(clipboard{b: b})
	if h := window.RawHandle(); h != 0 {
		io.SetPlatformHandle(h)
	}

	if r.backends == nil {
		r.backends = make(map[K]*Backend)
	}
	r.backends[ctx] = b
	r.lg.Infof("%v: initialized %s platform backend", ctx, b.config.BackendName)
	return b, true
}

// Shutdown detaches and tears down the backend for ctx, which must exist.
func (r *Registry[K]) Shutdown(ctx K) {
	b, ok := r.backends[ctx]
	if !ok {
		r.lg.Errorf("%v: no platform backend to shut down", ctx)
		panic("platform: no platform backend to shutdown, or already shutdown?")
	}

	b.io.SetBackendPlatformName("")
	b.io.SetBackendFlags(b.io.BackendFlags() &^ (b.capabilities | ui.BackendFlagsHasGamepad))
	b.io.SetClipboardHandler(nil)
	if b.lastCursor != fltk.CursorDefault {
		b.window.SetCursor(fltk.CursorDefault)
		b.lastCursor = fltk.CursorDefault
	}
	b.capabilities = 0
	b.attached = false

	delete(r.backends, ctx)
	r.lg.Infof("%v: shut down platform backend", ctx)
}

// Get returns the backend attached to ctx; it panics if there is none.
func (r *Registry[K]) Get(ctx K) *Backend {
	b, ok := r.backends[ctx]
	if !ok {
		panic(fmt.Sprintf("platform: %v has no platform backend. Did you call InitForOpenGL()?", ctx))
	}
	return b
}

// Lookup is like Get but reports a missing backend instead of panicking.
func (r *Registry[K]) Lookup(ctx K) (*Backend, bool) {
	b, ok := r.backends[ctx]
	return b, ok
}
