// pkg/platform/keymap_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"testing"

	"github.com/mmp/imgui-fltk/pkg/fltk"
	"github.com/mmp/imgui-fltk/pkg/ui"

	"github.com/stretchr/testify/assert"
)

func TestKeycodeToKey(t *testing.T) {
	tests := []struct {
		code fltk.Key
		want ui.Key
	}{
		{fltk.KeyTab, ui.KeyTab},
		{fltk.KeyLeft, ui.KeyLeftArrow},
		{fltk.KeyRight, ui.KeyRightArrow},
		{fltk.KeyUpArrow, ui.KeyUpArrow},
		{fltk.KeyDownArrow, ui.KeyDownArrow},
		{fltk.KeyPageDown, ui.KeyPageDown},
		{fltk.KeyBackSpace, ui.KeyBackspace},
		{fltk.KeyDelete, ui.KeyDelete},
		{fltk.KeyEnter, ui.KeyEnter},
		{' ', ui.KeySpace},
		{'`', ui.KeyGraveAccent},
		{'\\', ui.KeyBackslash},
		{fltk.KeyCapsLock, ui.KeyCapsLock},
		{fltk.KeyNumLock, ui.KeyNumLock},
		{fltk.KeyScrollLock, ui.KeyScrollLock},
		{fltk.KeyPrint, ui.KeyPrintScreen},
		{'0', ui.Key0},
		{'9', ui.Key9},
		{'a', ui.KeyA},
		{'v', ui.KeyV},
		{'z', ui.KeyZ},
		{'V', ui.KeyV},
		{'Q', ui.KeyQ},
		{fltk.KeyF + 1, ui.KeyF1},
		{fltk.KeyF + 12, ui.KeyF12},
		{fltk.KeyF + 24, ui.KeyF24},
		{fltk.KeyKP + '0', ui.KeyKeypad0},
		{fltk.KeyKP + '7', ui.KeyKeypad7},
		{fltk.KeyKP + '+', ui.KeyKeypadAdd},
		{fltk.KeyKPEnter, ui.KeyKeypadEnter},
		{fltk.KeyControlL, ui.KeyLeftCtrl},
		{fltk.KeyControlR, ui.KeyRightCtrl},
		{fltk.KeyShiftL, ui.KeyLeftShift},
		{fltk.KeyShiftR, ui.KeyRightShift},
		{fltk.KeyAltL, ui.KeyLeftAlt},
		{fltk.KeyAltR, ui.KeyRightAlt},
		{fltk.KeyMetaL, ui.KeyLeftSuper},
		{fltk.KeyMetaR, ui.KeyRightSuper},
		{fltk.KeyMenu, ui.KeyMenu},
		{fltk.KeyBack, ui.KeyAppBack},
		{fltk.KeyForward, ui.KeyAppForward},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, KeycodeToKey(tc.code), "FLTK key %s", tc.code)
	}
}

func TestKeycodeToKeyUnmapped(t *testing.T) {
	for _, code := range []fltk.Key{0, '!', '@', fltk.KeyF + 25, fltk.KeyHelp, fltk.KeyMute, fltk.KeyIsoKey, 0x10000} {
		assert.Equal(t, ui.KeyNone, KeycodeToKey(code), "FLTK key %s", code)
	}
}

func TestKeycodeTableIsInjective(t *testing.T) {
	seen := make(map[ui.Key]fltk.Key)
	for code, key := range fltkKeyToKey {
		if prev, ok := seen[key]; ok {
			t.Errorf("%s and %s both map to %s", prev, code, key)
		}
		seen[key] = code
		assert.True(t, key.IsNamed(), "%s maps to %s", code, key)
	}
	// Every named key except the ones FLTK can't produce has a source.
	for k := ui.KeyTab; k < ui.KeyNamedEnd; k++ {
		if _, ok := seen[k]; !ok {
			t.Errorf("%s has no FLTK key code", k)
		}
	}
}

func TestModifiersFromState(t *testing.T) {
	noise := []fltk.State{0, fltk.StateCapsLock | fltk.StateNumLock, fltk.StateButton1 | fltk.StateScrollLock}
	for mask := 0; mask < 16; mask++ {
		var state fltk.State
		want := Modifiers{
			Ctrl:  mask&1 != 0,
			Shift: mask&2 != 0,
			Alt:   mask&4 != 0,
			Super: mask&8 != 0,
		}
		if want.Ctrl {
			state |= fltk.StateCtrl
		}
		if want.Shift {
			state |= fltk.StateShift
		}
		if want.Alt {
			state |= fltk.StateAlt
		}
		if want.Super {
			state |= fltk.StateMeta
		}
		for _, n := range noise {
			assert.Equal(t, want, ModifiersFromState(state|n), "state 0x%x", state|n)
		}
	}

	assert.Equal(t, Modifiers{Ctrl: true}, ModifiersFromState(fltk.StateCtrl))
}

func TestUpdateKeyModifiersOrder(t *testing.T) {
	r := ui.NewRecorder()
	updateKeyModifiers(r, fltk.StateShift|fltk.StateMeta)
	assert.Equal(t, modEvents(false, true, false, true), r.Drain())
}
