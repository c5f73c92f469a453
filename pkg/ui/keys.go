// pkg/ui/keys.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ui

import "fmt"

// Key identifies a keyboard key or a modifier as seen by the UI library.
// Named keys are laid out in the same order and with the same values as
// ImGuiKey so that they read the same in a debugger.
type Key int

const (
	KeyNone Key = 0

	KeyTab Key = iota + 511
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyLeftCtrl
	KeyLeftShift
	KeyLeftAlt
	KeyLeftSuper
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightSuper
	KeyMenu
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadSubtract
	KeyKeypadAdd
	KeyKeypadEnter
	KeyKeypadEqual
	KeyAppBack
	KeyAppForward
	KeyNamedEnd
)

// Modifier keys. These are reported through AddKeyEvent like any other
// key, but describe state rather than a physical key.
const (
	ModCtrl  Key = 1 << 12
	ModShift Key = 1 << 13
	ModAlt   Key = 1 << 14
	ModSuper Key = 1 << 15
)

var keyNames = map[Key]string{
	KeyNone: "None", KeyTab: "Tab", KeyLeftArrow: "LeftArrow",
	KeyRightArrow: "RightArrow", KeyUpArrow: "UpArrow", KeyDownArrow: "DownArrow",
	KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyHome: "Home", KeyEnd: "End",
	KeyInsert: "Insert", KeyDelete: "Delete", KeyBackspace: "Backspace",
	KeySpace: "Space", KeyEnter: "Enter", KeyEscape: "Escape",
	KeyLeftCtrl: "LeftCtrl", KeyLeftShift: "LeftShift", KeyLeftAlt: "LeftAlt",
	KeyLeftSuper: "LeftSuper", KeyRightCtrl: "RightCtrl",
	KeyRightShift: "RightShift", KeyRightAlt: "RightAlt",
	KeyRightSuper: "RightSuper", KeyMenu: "Menu",
	KeyApostrophe: "Apostrophe", KeyComma: "Comma", KeyMinus: "Minus",
	KeyPeriod: "Period", KeySlash: "Slash", KeySemicolon: "Semicolon",
	KeyEqual: "Equal", KeyLeftBracket: "LeftBracket", KeyBackslash: "Backslash",
	KeyRightBracket: "RightBracket", KeyGraveAccent: "GraveAccent",
	KeyCapsLock: "CapsLock", KeyScrollLock: "ScrollLock", KeyNumLock: "NumLock",
	KeyPrintScreen: "PrintScreen", KeyPause: "Pause",
	KeyKeypadDecimal: "KeypadDecimal", KeyKeypadDivide: "KeypadDivide",
	KeyKeypadMultiply: "KeypadMultiply", KeyKeypadSubtract: "KeypadSubtract",
	KeyKeypadAdd: "KeypadAdd", KeyKeypadEnter: "KeypadEnter",
	KeyKeypadEqual: "KeypadEqual", KeyAppBack: "AppBack",
	KeyAppForward: "AppForward",
	ModCtrl:       "ModCtrl", ModShift: "ModShift", ModAlt: "ModAlt", ModSuper: "ModSuper",
}

func (k Key) String() string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + k - Key0))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + k - KeyA))
	case k >= KeyF1 && k <= KeyF24:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	case k >= KeyKeypad0 && k <= KeyKeypad9:
		return fmt.Sprintf("Keypad%d", int(k-KeyKeypad0))
	}
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// IsNamed reports whether k is one of the named keys (not None, not a
// modifier).
func (k Key) IsNamed() bool {
	return k >= KeyTab && k < KeyNamedEnd
}
