// pkg/platform/cursor.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"github.com/mmp/imgui-fltk/pkg/fltk"
	"github.com/mmp/imgui-fltk/pkg/ui"
)

// CursorTable gives the FLTK cursor for each UI cursor shape. A zero entry
// (fltk.CursorDefault) means the shape has no FLTK counterpart.
type CursorTable [ui.MouseCursorCount]fltk.Cursor

func DefaultCursorTable() CursorTable {
	var t CursorTable
	t[ui.MouseCursorArrow] = fltk.CursorArrow
	t[ui.MouseCursorTextInput] = fltk.CursorInsert
	t[ui.MouseCursorResizeAll] = fltk.CursorCross
	t[ui.MouseCursorResizeNS] = fltk.CursorNS
	t[ui.MouseCursorResizeEW] = fltk.CursorWE
	t[ui.MouseCursorResizeNESW] = fltk.CursorNESW
	t[ui.MouseCursorResizeNWSE] = fltk.CursorNWSE
	t[ui.MouseCursorHand] = fltk.CursorHand
	t[ui.MouseCursorWait] = fltk.CursorWait
	t[ui.MouseCursorProgress] = fltk.CursorWait
	// FLTK has no "not allowed" cursor.
	t[ui.MouseCursorNotAllowed] = fltk.CursorWait
	return t
}

// Lookup returns the FLTK cursor for c, falling back to the arrow for
// shapes the table doesn't cover.
func (t CursorTable) Lookup(c ui.MouseCursor) fltk.Cursor {
	if c >= 0 && c < ui.MouseCursorCount && t[c] != fltk.CursorDefault {
		return t[c]
	}
	return t[ui.MouseCursorArrow]
}

// updateMouseCursor applies the cursor the UI library wants for this
// frame. Setting the cursor is expensive on some platforms, so the window
// is only touched when the cursor actually changes.
func (b *Backend) updateMouseCursor() {
	if b.io.ConfigFlags()&ui.ConfigFlagsNoMouseCursorChange != 0 {
		return
	}

	var cursor fltk.Cursor
	if shape := b.io.MouseCursor(); b.io.MouseDrawCursor() || shape == ui.MouseCursorNone {
		// Hide the OS cursor if the UI draws its own or wants none.
		cursor = fltk.CursorNone
	} else {
		cursor = b.cursors.Lookup(shape)
	}

	if cursor != b.lastCursor {
		b.window.SetCursor(cursor)
		b.lastCursor = cursor
	}
}
