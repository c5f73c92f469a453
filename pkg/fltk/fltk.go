// pkg/fltk/fltk.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package fltk holds the FLTK 1.4 values that the platform backend reads
// from and writes to the toolkit: event codes, key codes, event state bits,
// mouse buttons, cursors and clipboard destinations. The numeric values
// match FL/Enumerations.H so that they can be passed straight through a
// binding.
package fltk

import "fmt"

// Event is an FLTK event code, as passed to Fl_Widget::handle().
type Event int

const (
	NoEvent Event = iota
	Push
	Release
	Enter
	Leave
	Drag
	Focus
	Unfocus
	KeyDown
	KeyUp
	Close
	Move
	Shortcut
	Deactivate
	Activate
	Hide
	Show
	Paste
	SelectionClear
	MouseWheel
	DNDEnter
	DNDDrag
	DNDLeave
	DNDRelease
	ScreenConfigurationChanged
	Fullscreen
	ZoomGesture
	ZoomEvent
)

var eventNames = [...]string{
	"NO_EVENT", "PUSH", "RELEASE", "ENTER", "LEAVE", "DRAG", "FOCUS",
	"UNFOCUS", "KEYDOWN", "KEYUP", "CLOSE", "MOVE", "SHORTCUT", "DEACTIVATE",
	"ACTIVATE", "HIDE", "SHOW", "PASTE", "SELECTIONCLEAR", "MOUSEWHEEL",
	"DND_ENTER", "DND_DRAG", "DND_LEAVE", "DND_RELEASE",
	"SCREEN_CONFIGURATION_CHANGED", "FULLSCREEN", "ZOOM_GESTURE", "ZOOM_EVENT",
}

func (e Event) String() string {
	if e >= 0 && int(e) < len(eventNames) {
		return "FL_" + eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Key is the value returned by Fl::event_key(). Printable keys use their
// unshifted ASCII code; everything else lives in the 0xef00-0xffff range.
type Key int

const (
	KeyButton     Key = 0xfee8
	KeyBackSpace  Key = 0xff08
	KeyTab        Key = 0xff09
	KeyIsoKey     Key = 0xff0c
	KeyEnter      Key = 0xff0d
	KeyPause      Key = 0xff13
	KeyScrollLock Key = 0xff14
	KeyEscape     Key = 0xff1b
	KeyHome       Key = 0xff50
	KeyLeft       Key = 0xff51
	KeyUpArrow    Key = 0xff52 // FL_Up
	KeyRight      Key = 0xff53
	KeyDownArrow  Key = 0xff54 // FL_Down
	KeyPageUp     Key = 0xff55
	KeyPageDown   Key = 0xff56
	KeyEnd        Key = 0xff57
	KeyPrint      Key = 0xff61
	KeyInsert     Key = 0xff63
	KeyMenu       Key = 0xff67
	KeyHelp       Key = 0xff68
	KeyNumLock    Key = 0xff7f
	KeyKP         Key = 0xff80 // KeyKP + '0' .. KeyKP + '9', KeyKP + '*', ...
	KeyKPEnter    Key = 0xff8d
	KeyKPLast     Key = 0xffbd
	KeyF          Key = 0xffbd // KeyF + n is function key n
	KeyFLast      Key = 0xffe0
	KeyShiftL     Key = 0xffe1
	KeyShiftR     Key = 0xffe2
	KeyControlL   Key = 0xffe3
	KeyControlR   Key = 0xffe4
	KeyCapsLock   Key = 0xffe5
	KeyMetaL      Key = 0xffe7
	KeyMetaR      Key = 0xffe8
	KeyAltL       Key = 0xffe9
	KeyAltR       Key = 0xffea
	KeyDelete     Key = 0xffff

	KeyVolumeDown Key = 0xef11
	KeyMute       Key = 0xef12
	KeyVolumeUp   Key = 0xef13
	KeyMediaPlay  Key = 0xef14
	KeyMediaStop  Key = 0xef15
	KeyMediaPrev  Key = 0xef16
	KeyMediaNext  Key = 0xef17
	KeyHomePage   Key = 0xef18
	KeyMail       Key = 0xef19
	KeySearch     Key = 0xef1b
	KeyBack       Key = 0xef26
	KeyForward    Key = 0xef27
	KeyStop       Key = 0xef28
	KeyRefresh    Key = 0xef29
	KeySleep      Key = 0xef2f
	KeyFavorites  Key = 0xef30
)

func (k Key) String() string {
	switch {
	case k > ' ' && k < 0x7f:
		return fmt.Sprintf("'%c'", rune(k))
	case k == ' ':
		return "Space"
	case k > KeyKP && k <= KeyKPLast && k != KeyKPEnter:
		return fmt.Sprintf("KP+'%c'", rune(k-KeyKP))
	case k > KeyF && k <= KeyFLast:
		return fmt.Sprintf("F%d", int(k-KeyF))
	}
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(0x%x)", int(k))
}

var keyNames = map[Key]string{
	KeyButton: "Button", KeyBackSpace: "BackSpace", KeyTab: "Tab",
	KeyIsoKey: "Iso_Key", KeyEnter: "Enter", KeyPause: "Pause",
	KeyScrollLock: "Scroll_Lock", KeyEscape: "Escape", KeyHome: "Home",
	KeyLeft: "Left", KeyUpArrow: "Up", KeyRight: "Right", KeyDownArrow: "Down",
	KeyPageUp: "Page_Up", KeyPageDown: "Page_Down", KeyEnd: "End",
	KeyPrint: "Print", KeyInsert: "Insert", KeyMenu: "Menu", KeyHelp: "Help",
	KeyNumLock: "Num_Lock", KeyKPEnter: "KP_Enter", KeyShiftL: "Shift_L",
	KeyShiftR: "Shift_R", KeyControlL: "Control_L", KeyControlR: "Control_R",
	KeyCapsLock: "Caps_Lock", KeyMetaL: "Meta_L", KeyMetaR: "Meta_R",
	KeyAltL: "Alt_L", KeyAltR: "Alt_R", KeyDelete: "Delete",
	KeyVolumeDown: "Volume_Down", KeyMute: "Volume_Mute",
	KeyVolumeUp: "Volume_Up", KeyMediaPlay: "Media_Play",
	KeyMediaStop: "Media_Stop", KeyMediaPrev: "Media_Prev",
	KeyMediaNext: "Media_Next", KeyHomePage: "Home_Page", KeyMail: "Mail",
	KeySearch: "Search", KeyBack: "Back", KeyForward: "Forward",
	KeyStop: "Stop", KeyRefresh: "Refresh", KeySleep: "Sleep",
	KeyFavorites: "Favorites",
}

// State is the bitmask returned by Fl::event_state().
type State uint32

const (
	StateShift      State = 0x00010000
	StateCapsLock   State = 0x00020000
	StateCtrl       State = 0x00040000
	StateAlt        State = 0x00080000
	StateNumLock    State = 0x00100000
	StateMeta       State = 0x00400000
	StateScrollLock State = 0x00800000
	StateButton1    State = 0x01000000
	StateButton2    State = 0x02000000
	StateButton3    State = 0x04000000

	// StateModifiers are the bits that correspond to held modifier keys,
	// as opposed to lock state and mouse buttons.
	StateModifiers = StateShift | StateCtrl | StateAlt | StateMeta
)

// Button is the value returned by Fl::event_button().
type Button int

const (
	LeftMouse    Button = 1
	MiddleMouse  Button = 2
	RightMouse   Button = 3
	BackMouse    Button = 4
	ForwardMouse Button = 5
)

// Cursor is an Fl_Cursor value.
type Cursor int

const (
	CursorDefault Cursor = 0
	CursorArrow   Cursor = 35
	CursorCross   Cursor = 66
	CursorWait    Cursor = 76
	CursorInsert  Cursor = 77
	CursorHand    Cursor = 31
	CursorHelp    Cursor = 47
	CursorMove    Cursor = 27
	CursorNS      Cursor = 78
	CursorWE      Cursor = 79
	CursorNWSE    Cursor = 80
	CursorNESW    Cursor = 81
	CursorN       Cursor = 70
	CursorNE      Cursor = 69
	CursorE       Cursor = 49
	CursorSE      Cursor = 8
	CursorS       Cursor = 9
	CursorSW      Cursor = 7
	CursorW       Cursor = 36
	CursorNW      Cursor = 68
	CursorNone    Cursor = 255
)

// ClipboardDest selects the target buffer of Fl::copy().
type ClipboardDest int

const (
	Selection ClipboardDest = 0
	Clipboard ClipboardDest = 1
)
