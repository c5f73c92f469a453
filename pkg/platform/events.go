// pkg/platform/events.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"github.com/mmp/imgui-fltk/pkg/fltk"
	"github.com/mmp/imgui-fltk/pkg/ui"
)

var fltkButtonIndex = map[fltk.Button]int{
	fltk.LeftMouse:   0,
	fltk.RightMouse:  1,
	fltk.MiddleMouse: 2,
}

// ProcessEvent translates one FLTK event into UI input events. It returns
// whether the event was used, along with any events that should be
// delivered to the window afterwards (in order) as if FLTK had sent them.
// The caller still runs FLTK's own handling for ev; see HandleEvent.
func (b *Backend) ProcessEvent(ev fltk.Event) (handled bool, synth []fltk.Event) {
	b.mustBeAttached("ProcessEvent")
	io, tk := b.io, b.toolkit

	switch ev {
	case fltk.Drag, fltk.Move:
		io.AddMouseSourceEvent(ui.MouseSourceMouse)
		io.AddMousePosEvent(float32(tk.EventX()), float32(tk.EventY()))
		return true, nil

	case fltk.MouseWheel:
		// FLTK reports positive deltas for scrolling down/right; the UI
		// library wants positive for up/left.
		io.AddMouseSourceEvent(ui.MouseSourceMouse)
		io.AddMouseWheelEvent(-float32(tk.EventDX()), -float32(tk.EventDY()))
		return true, nil

	case fltk.Push, fltk.Release:
		button, ok := fltkButtonIndex[tk.EventButton()]
		if !ok {
			b.lg.Debugf("ignoring mouse button %d", tk.EventButton())
			return false, nil
		}
		down := ev == fltk.Push
		io.AddMouseSourceEvent(ui.MouseSourceMouse)
		io.AddMouseButtonEvent(button, down)
		if down {
			b.mouseButtonsDown |= 1 << button
		} else {
			b.mouseButtonsDown &^= 1 << button
		}
		return true, nil

	case fltk.Paste:
		if text := tk.EventText(); text != "" {
			io.AddInputCharactersUTF8(text)
		}
		return true, nil

	case fltk.KeyUp:
		code, state := tk.EventKey(), tk.EventState()
		b.keyEvent(code, state, false)

		if b.config.UnfocusOnKeyRelease {
			synth = append(synth, fltk.Unfocus)
		}
		if b.config.PasteOnCtrlV && code == 'v' && state&fltk.StateModifiers == fltk.StateCtrl {
			synth = append(synth, fltk.Paste)
		}
		return true, synth

	case fltk.KeyDown:
		// Text goes ahead of the key so that widgets see the character
		// before any shortcut handling triggered by the key.
		if text := tk.EventText(); text != "" {
			io.AddInputCharactersUTF8(text)
		}
		b.keyEvent(tk.EventKey(), tk.EventState(), true)
		return true, nil

	case fltk.Enter:
		b.pendingLeaveFrame = 0
		return true, nil

	case fltk.Leave:
		// Leave/enter pairs show up while dragging across FLTK's internal
		// boundaries; reporting the pointer as gone is deferred a frame so
		// that a following enter can cancel it.
		b.pendingLeaveFrame = io.FrameCount() + 1
		return true, nil

	case fltk.Focus, fltk.Unfocus:
		io.AddFocusEvent(ev == fltk.Focus)
		return true, nil
	}

	return false, nil
}

func (b *Backend) keyEvent(code fltk.Key, state fltk.State, down bool) {
	updateKeyModifiers(b.io, state)
	if key := KeycodeToKey(code); key != ui.KeyNone {
		b.io.AddKeyEvent(key, down)
	} else {
		b.lg.Debugf("no key mapping for FLTK key %s", code)
	}
}

// HandleEvent runs the complete handling of ev for a window: FLTK's own
// handling (fallback, typically the window base class's handle()) and the
// backend's, followed by the same for each event the backend synthesizes.
// It returns whether either handler used ev.
func HandleEvent(b *Backend, ev fltk.Event, fallback func(fltk.Event) bool) bool {
	queue := []fltk.Event{ev}
	result := false
	for i := 0; i < len(queue); i++ {
		var handled bool
		if fallback != nil {
			handled = fallback(queue[i])
		}
		ours, synth := b.ProcessEvent(queue[i])
		if i == 0 {
			result = handled || ours
		}
		queue = append(queue, synth...)
	}
	return result
}
