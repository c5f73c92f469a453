// pkg/ui/recorder.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/brunoga/deep"
)

type EventKind int

const (
	KeyEvent EventKind = iota
	MousePosEvent
	MouseButtonEvent
	MouseWheelEvent
	MouseSourceEvent
	FocusEvent
	TextEvent
)

var eventKindNames = [...]string{"Key", "MousePos", "MouseButton", "MouseWheel", "MouseSource", "Focus", "Text"}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one entry of the UI library's input queue. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind   EventKind
	Key    Key
	Down   bool // key/button pressed, or focus gained
	X, Y   float32
	Button int
	Source MouseSource
	Text   string
}

func (e Event) String() string {
	switch e.Kind {
	case KeyEvent:
		return fmt.Sprintf("Key(%s, down=%v)", e.Key, e.Down)
	case MousePosEvent:
		if e.X == -math.MaxFloat32 && e.Y == -math.MaxFloat32 {
			return "MousePos(absent)"
		}
		return fmt.Sprintf("MousePos(%g, %g)", e.X, e.Y)
	case MouseButtonEvent:
		return fmt.Sprintf("MouseButton(%d, down=%v)", e.Button, e.Down)
	case MouseWheelEvent:
		return fmt.Sprintf("MouseWheel(%g, %g)", e.X, e.Y)
	case MouseSourceEvent:
		return fmt.Sprintf("MouseSource(%s)", e.Source)
	case FocusEvent:
		return fmt.Sprintf("Focus(%v)", e.Down)
	case TextEvent:
		return "Text(" + strconv.Quote(e.Text) + ")"
	default:
		return e.Kind.String()
	}
}

// FrameState is what a backend writes into the UI library besides the
// event queue.
type FrameState struct {
	DisplaySize      [2]float32
	FramebufferScale [2]float32
	DeltaTime        float32
	Events           []Event
}

// Recorder is an IO that keeps everything it is given in memory. The
// exported query fields are what the backend sees when it asks the UI
// library for its state.
type Recorder struct {
	FrameState

	Frame      int
	Config     ConfigFlags
	DrawCursor bool
	Cursor     MouseCursor

	Backend        BackendFlags
	PlatformName   string
	Clipboard      ClipboardHandler
	PlatformHandle uintptr
}

var _ IO = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{FrameState: FrameState{FramebufferScale: [2]float32{1, 1}}}
}

func (r *Recorder) push(e Event) { r.Events = append(r.Events, e) }

func (r *Recorder) AddKeyEvent(key Key, down bool) {
	r.push(Event{Kind: KeyEvent, Key: key, Down: down})
}

func (r *Recorder) AddMousePosEvent(x, y float32) {
	r.push(Event{Kind: MousePosEvent, X: x, Y: y})
}

func (r *Recorder) AddMouseButtonEvent(button int, down bool) {
	r.push(Event{Kind: MouseButtonEvent, Button: button, Down: down})
}

func (r *Recorder) AddMouseWheelEvent(x, y float32) {
	r.push(Event{Kind: MouseWheelEvent, X: x, Y: y})
}

func (r *Recorder) AddMouseSourceEvent(source MouseSource) {
	r.push(Event{Kind: MouseSourceEvent, Source: source})
}

func (r *Recorder) AddFocusEvent(focused bool) {
	r.push(Event{Kind: FocusEvent, Down: focused})
}

func (r *Recorder) AddInputCharactersUTF8(text string) {
	r.push(Event{Kind: TextEvent, Text: text})
}

func (r *Recorder) SetDisplaySize(w, h float32)             { r.DisplaySize = [2]float32{w, h} }
func (r *Recorder) SetDisplayFramebufferScale(x, y float32) { r.FramebufferScale = [2]float32{x, y} }
func (r *Recorder) SetDeltaTime(dt float32)                 { r.DeltaTime = dt }

func (r *Recorder) FrameCount() int            { return r.Frame }
func (r *Recorder) ConfigFlags() ConfigFlags   { return r.Config }
func (r *Recorder) MouseDrawCursor() bool      { return r.DrawCursor }
func (r *Recorder) MouseCursor() MouseCursor   { return r.Cursor }
func (r *Recorder) BackendFlags() BackendFlags { return r.Backend }

func (r *Recorder) SetBackendFlags(flags BackendFlags)     { r.Backend = flags }
func (r *Recorder) SetBackendPlatformName(name string)     { r.PlatformName = name }
func (r *Recorder) SetClipboardHandler(h ClipboardHandler) { r.Clipboard = h }
func (r *Recorder) SetPlatformHandle(h uintptr)            { r.PlatformHandle = h }

// Drain returns the queued events and empties the queue.
func (r *Recorder) Drain() []Event {
	ev := r.Events
	r.Events = nil
	return ev
}

// Snapshot returns an independent copy of the recorded frame state.
func (r *Recorder) Snapshot() FrameState {
	return deep.MustCopy(r.FrameState)
}
