// pkg/ui/io.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package ui describes the parts of the immediate-mode UI library that a
// platform backend talks to: the per-frame input injection calls, the
// per-frame queries, and the small enumerations they use. The package is
// free of cgo so that backends can be exercised without a live UI context;
// see pkg/imguiio for the Dear ImGui implementation of IO.
package ui

import "fmt"

// MouseCursor is the cursor shape the UI library wants displayed.
type MouseCursor int

const (
	MouseCursorNone MouseCursor = iota - 1
	MouseCursorArrow
	MouseCursorTextInput
	MouseCursorResizeAll
	MouseCursorResizeNS
	MouseCursorResizeEW
	MouseCursorResizeNESW
	MouseCursorResizeNWSE
	MouseCursorHand
	MouseCursorWait
	MouseCursorProgress
	MouseCursorNotAllowed
	MouseCursorCount
)

var mouseCursorNames = [...]string{
	"Arrow", "TextInput", "ResizeAll", "ResizeNS", "ResizeEW", "ResizeNESW",
	"ResizeNWSE", "Hand", "Wait", "Progress", "NotAllowed",
}

func (c MouseCursor) String() string {
	if c == MouseCursorNone {
		return "None"
	}
	if c >= 0 && c < MouseCursorCount {
		return mouseCursorNames[c]
	}
	return fmt.Sprintf("MouseCursor(%d)", int(c))
}

// MouseSource identifies the kind of device behind mouse events.
type MouseSource int

const (
	MouseSourceMouse MouseSource = iota
	MouseSourceTouchScreen
	MouseSourcePen
)

func (s MouseSource) String() string {
	switch s {
	case MouseSourceMouse:
		return "Mouse"
	case MouseSourceTouchScreen:
		return "TouchScreen"
	case MouseSourcePen:
		return "Pen"
	default:
		return fmt.Sprintf("MouseSource(%d)", int(s))
	}
}

// ConfigFlags are set by the application on the UI library.
type ConfigFlags int

const (
	ConfigFlagsNavEnableKeyboard   ConfigFlags = 1 << 0
	ConfigFlagsNavEnableGamepad    ConfigFlags = 1 << 1
	ConfigFlagsNoMouse             ConfigFlags = 1 << 4
	ConfigFlagsNoMouseCursorChange ConfigFlags = 1 << 5
)

// BackendFlags are declared by backends to advertise optional services.
type BackendFlags int

const (
	BackendFlagsHasGamepad      BackendFlags = 1 << 0
	BackendFlagsHasMouseCursors BackendFlags = 1 << 1
	BackendFlagsHasSetMousePos  BackendFlags = 1 << 2
)

// ClipboardHandler is installed by the backend so that the UI library can
// read and write the native clipboard.
type ClipboardHandler interface {
	GetClipboard() string
	SetClipboard(text string)
}

// IO is the input and query surface of a single UI context.
type IO interface {
	AddKeyEvent(key Key, down bool)
	AddMousePosEvent(x, y float32)
	AddMouseButtonEvent(button int, down bool)
	AddMouseWheelEvent(x, y float32)
	AddMouseSourceEvent(source MouseSource)
	AddFocusEvent(focused bool)
	AddInputCharactersUTF8(text string)

	SetDisplaySize(w, h float32)
	SetDisplayFramebufferScale(x, y float32)
	SetDeltaTime(dt float32)

	// FrameCount is the UI library's frame counter; it advances when the
	// library starts a new frame, after the backend's frame prolog.
	FrameCount() int
	ConfigFlags() ConfigFlags
	// MouseDrawCursor reports whether the UI library renders the cursor
	// itself.
	MouseDrawCursor() bool
	MouseCursor() MouseCursor

	BackendFlags() BackendFlags
	SetBackendFlags(flags BackendFlags)
	SetBackendPlatformName(name string)
	// SetClipboardHandler installs h; nil removes the current handler.
	SetClipboardHandler(h ClipboardHandler)
	// SetPlatformHandle records the native window handle of the main
	// viewport.
	SetPlatformHandle(h uintptr)
}
