// pkg/imguiio/imguiio.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package imguiio implements ui.IO on top of a live Dear ImGui context via
// cimgui-go, so that the FLTK platform backend can drive a real UI.
package imguiio

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/mmp/imgui-fltk/pkg/ui"
)

// IO forwards to the imgui.IO of the context that was current when it was
// created.
type IO struct {
	io *imgui.IO
}

var _ ui.IO = (*IO)(nil)

// Current returns an IO for the current ImGui context; imgui.CreateContext
// must already have been called.
func Current() *IO {
	return &IO{io: imgui.CurrentIO()}
}

func (i *IO) AddKeyEvent(key ui.Key, down bool) {
	if k, ok := imguiKeys[key]; ok {
		i.io.AddKeyEvent(k, down)
	}
}

func (i *IO) AddMousePosEvent(x, y float32) { i.io.AddMousePosEvent(x, y) }

func (i *IO) AddMouseButtonEvent(button int, down bool) {
	i.io.AddMouseButtonEvent(int32(button), down)
}

func (i *IO) AddMouseWheelEvent(x, y float32) { i.io.AddMouseWheelEvent(x, y) }

func (i *IO) AddMouseSourceEvent(source ui.MouseSource) {
	switch source {
	case ui.MouseSourceTouchScreen:
		i.io.AddMouseSourceEvent(imgui.MouseSourceTouchScreen)
	case ui.MouseSourcePen:
		i.io.AddMouseSourceEvent(imgui.MouseSourcePen)
	default:
		i.io.AddMouseSourceEvent(imgui.MouseSourceMouse)
	}
}

func (i *IO) AddFocusEvent(focused bool) { i.io.AddFocusEvent(focused) }

func (i *IO) AddInputCharactersUTF8(text string) { i.io.AddInputCharactersUTF8(text) }

func (i *IO) SetDisplaySize(w, h float32) { i.io.SetDisplaySize(imgui.Vec2{X: w, Y: h}) }

func (i *IO) SetDisplayFramebufferScale(x, y float32) {
	i.io.SetDisplayFramebufferScale(imgui.Vec2{X: x, Y: y})
}

func (i *IO) SetDeltaTime(dt float32) { i.io.SetDeltaTime(dt) }

func (i *IO) FrameCount() int { return int(imgui.FrameCount()) }

func (i *IO) ConfigFlags() ui.ConfigFlags {
	f := i.io.ConfigFlags()
	var flags ui.ConfigFlags
	if f&imgui.ConfigFlagsNavEnableKeyboard != 0 {
		flags |= ui.ConfigFlagsNavEnableKeyboard
	}
	if f&imgui.ConfigFlagsNavEnableGamepad != 0 {
		flags |= ui.ConfigFlagsNavEnableGamepad
	}
	if f&imgui.ConfigFlagsNoMouse != 0 {
		flags |= ui.ConfigFlagsNoMouse
	}
	if f&imgui.ConfigFlagsNoMouseCursorChange != 0 {
		flags |= ui.ConfigFlagsNoMouseCursorChange
	}
	return flags
}

func (i *IO) MouseDrawCursor() bool { return i.io.MouseDrawCursor() }

func (i *IO) MouseCursor() ui.MouseCursor {
	switch c := imgui.CurrentMouseCursor(); c {
	case imgui.MouseCursorNone:
		return ui.MouseCursorNone
	case imgui.MouseCursorArrow:
		return ui.MouseCursorArrow
	case imgui.MouseCursorTextInput:
		return ui.MouseCursorTextInput
	case imgui.MouseCursorResizeAll:
		return ui.MouseCursorResizeAll
	case imgui.MouseCursorResizeNS:
		return ui.MouseCursorResizeNS
	case imgui.MouseCursorResizeEW:
		return ui.MouseCursorResizeEW
	case imgui.MouseCursorResizeNESW:
		return ui.MouseCursorResizeNESW
	case imgui.MouseCursorResizeNWSE:
		return ui.MouseCursorResizeNWSE
	case imgui.MouseCursorHand:
		return ui.MouseCursorHand
	case imgui.MouseCursorNotAllowed:
		return ui.MouseCursorNotAllowed
	default:
		// Wait and Progress share their values with ours.
		return ui.MouseCursor(c)
	}
}

var backendFlagBits = []struct {
	ui    ui.BackendFlags
	imgui imgui.BackendFlags
}{
	{ui.BackendFlagsHasGamepad, imgui.BackendFlagsHasGamepad},
	{ui.BackendFlagsHasMouseCursors, imgui.BackendFlagsHasMouseCursors},
	{ui.BackendFlagsHasSetMousePos, imgui.BackendFlagsHasSetMousePos},
}

func (i *IO) BackendFlags() ui.BackendFlags {
	f := i.io.BackendFlags()
	var flags ui.BackendFlags
	for _, b := range backendFlagBits {
		if f&b.imgui != 0 {
			flags |= b.ui
		}
	}
	return flags
}

// SetBackendFlags only touches the flags ui.BackendFlags knows about;
// renderer flags set by other backends are preserved.
func (i *IO) SetBackendFlags(flags ui.BackendFlags) {
	f := i.io.BackendFlags()
	for _, b := range backendFlagBits {
		if flags&b.ui != 0 {
			f |= b.imgui
		} else {
			f &^= b.imgui
		}
	}
	i.io.SetBackendFlags(f)
}

func (i *IO) SetBackendPlatformName(name string) { i.io.SetBackendPlatformName(name) }

func (i *IO) SetClipboardHandler(h ui.ClipboardHandler) {
	imgui.CurrentPlatformIO().SetClipboardHandler(clipboard{h: h})
}

func (i *IO) SetPlatformHandle(h uintptr) {
	imgui.MainViewport().SetPlatformHandleRaw(h)
}

// clipboard adapts a ui.ClipboardHandler to cimgui-go's. A nil handler
// behaves as an empty clipboard, since ImGui may still call in after the
// backend has been shut down.
type clipboard struct {
	h ui.ClipboardHandler
}

func (c clipboard) GetClipboard() string {
	if c.h == nil {
		return ""
	}
	return c.h.GetClipboard()
}

func (c clipboard) SetClipboard(text string) {
	if c.h != nil {
		c.h.SetClipboard(text)
	}
}
