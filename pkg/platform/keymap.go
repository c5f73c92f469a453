// pkg/platform/keymap.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package platform

import (
	"github.com/mmp/imgui-fltk/pkg/fltk"
	"github.com/mmp/imgui-fltk/pkg/ui"
)

// fltkKeyToKey holds every FLTK key code the backend knows about. Letters
// are stored under their lower-case code, which is what Fl::event_key()
// reports for them.
var fltkKeyToKey = map[fltk.Key]ui.Key{
	fltk.KeyTab:        ui.KeyTab,
	fltk.KeyLeft:       ui.KeyLeftArrow,
	fltk.KeyRight:      ui.KeyRightArrow,
	fltk.KeyUpArrow:    ui.KeyUpArrow,
	fltk.KeyDownArrow:  ui.KeyDownArrow,
	fltk.KeyPageUp:     ui.KeyPageUp,
	fltk.KeyPageDown:   ui.KeyPageDown,
	fltk.KeyHome:       ui.KeyHome,
	fltk.KeyEnd:        ui.KeyEnd,
	fltk.KeyInsert:     ui.KeyInsert,
	fltk.KeyDelete:     ui.KeyDelete,
	fltk.KeyBackSpace:  ui.KeyBackspace,
	' ':                ui.KeySpace,
	fltk.KeyEnter:      ui.KeyEnter,
	fltk.KeyEscape:     ui.KeyEscape,
	'\'':               ui.KeyApostrophe,
	',':                ui.KeyComma,
	'-':                ui.KeyMinus,
	'.':                ui.KeyPeriod,
	'/':                ui.KeySlash,
	';':                ui.KeySemicolon,
	'=':                ui.KeyEqual,
	'[':                ui.KeyLeftBracket,
	'\\':               ui.KeyBackslash,
	']':                ui.KeyRightBracket,
	'`':                ui.KeyGraveAccent,
	fltk.KeyCapsLock:   ui.KeyCapsLock,
	fltk.KeyScrollLock: ui.KeyScrollLock,
	fltk.KeyNumLock:    ui.KeyNumLock,
	fltk.KeyPrint:      ui.KeyPrintScreen,
	fltk.KeyPause:      ui.KeyPause,
	fltk.KeyControlL:   ui.KeyLeftCtrl,
	fltk.KeyShiftL:     ui.KeyLeftShift,
	fltk.KeyAltL:       ui.KeyLeftAlt,
	fltk.KeyMetaL:      ui.KeyLeftSuper,
	fltk.KeyControlR:   ui.KeyRightCtrl,
	fltk.KeyShiftR:     ui.KeyRightShift,
	fltk.KeyAltR:       ui.KeyRightAlt,
	fltk.KeyMetaR:      ui.KeyRightSuper,
	fltk.KeyMenu:       ui.KeyMenu,
	fltk.KeyBack:       ui.KeyAppBack,
	fltk.KeyForward:    ui.KeyAppForward,

	fltk.KeyKP + '.': ui.KeyKeypadDecimal,
	fltk.KeyKP + '/': ui.KeyKeypadDivide,
	fltk.KeyKP + '*': ui.KeyKeypadMultiply,
	fltk.KeyKP + '-': ui.KeyKeypadSubtract,
	fltk.KeyKP + '+': ui.KeyKeypadAdd,
	fltk.KeyKP + '=': ui.KeyKeypadEqual,
	fltk.KeyKPEnter:  ui.KeyKeypadEnter,
}

func init() {
	for i := 0; i < 10; i++ {
		fltkKeyToKey[fltk.Key('0'+i)] = ui.Key0 + ui.Key(i)
		fltkKeyToKey[fltk.KeyKP+fltk.Key('0'+i)] = ui.KeyKeypad0 + ui.Key(i)
	}
	for i := 0; i < 26; i++ {
		fltkKeyToKey[fltk.Key('a'+i)] = ui.KeyA + ui.Key(i)
	}
	for i := 1; i <= 24; i++ {
		fltkKeyToKey[fltk.KeyF+fltk.Key(i)] = ui.KeyF1 + ui.Key(i-1)
	}
}

// KeycodeToKey returns the UI key for an FLTK key code, or ui.KeyNone if
// there is no corresponding key. Upper-case letter codes are treated the
// same as lower-case ones.
func KeycodeToKey(code fltk.Key) ui.Key {
	if code >= 'A' && code <= 'Z' {
		code += 'a' - 'A'
	}
	if k, ok := fltkKeyToKey[code]; ok {
		return k
	}
	return ui.KeyNone
}

// Modifiers is the modifier-key state carried by an FLTK event.
type Modifiers struct {
	Ctrl, Shift, Alt, Super bool
}

// ModifiersFromState tests each modifier bit of an Fl::event_state() value
// independently. Super follows FL_META (the Windows/Command key) rather
// than FL_COMMAND, which is an alias for FL_CTRL everywhere but macOS.
func ModifiersFromState(state fltk.State) Modifiers {
	return Modifiers{
		Ctrl:  state&fltk.StateCtrl != 0,
		Shift: state&fltk.StateShift != 0,
		Alt:   state&fltk.StateAlt != 0,
		Super: state&fltk.StateMeta != 0,
	}
}

// updateKeyModifiers must run before the key event it accompanies so the
// UI library sees modifier state consistent with that key.
func updateKeyModifiers(io ui.IO, state fltk.State) {
	m := ModifiersFromState(state)
	io.AddKeyEvent(ui.ModCtrl, m.Ctrl)
	io.AddKeyEvent(ui.ModShift, m.Shift)
	io.AddKeyEvent(ui.ModAlt, m.Alt)
	io.AddKeyEvent(ui.ModSuper, m.Super)
}
