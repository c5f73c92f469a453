// pkg/imguiio/keys.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package imguiio

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/mmp/imgui-fltk/pkg/ui"
)

var imguiKeys = map[ui.Key]imgui.Key{
	ui.KeyTab:            imgui.KeyTab,
	ui.KeyLeftArrow:      imgui.KeyLeftArrow,
	ui.KeyRightArrow:     imgui.KeyRightArrow,
	ui.KeyUpArrow:        imgui.KeyUpArrow,
	ui.KeyDownArrow:      imgui.KeyDownArrow,
	ui.KeyPageUp:         imgui.KeyPageUp,
	ui.KeyPageDown:       imgui.KeyPageDown,
	ui.KeyHome:           imgui.KeyHome,
	ui.KeyEnd:            imgui.KeyEnd,
	ui.KeyInsert:         imgui.KeyInsert,
	ui.KeyDelete:         imgui.KeyDelete,
	ui.KeyBackspace:      imgui.KeyBackspace,
	ui.KeySpace:          imgui.KeySpace,
	ui.KeyEnter:          imgui.KeyEnter,
	ui.KeyEscape:         imgui.KeyEscape,
	ui.KeyLeftCtrl:       imgui.KeyLeftCtrl,
	ui.KeyLeftShift:      imgui.KeyLeftShift,
	ui.KeyLeftAlt:        imgui.KeyLeftAlt,
	ui.KeyLeftSuper:      imgui.KeyLeftSuper,
	ui.KeyRightCtrl:      imgui.KeyRightCtrl,
	ui.KeyRightShift:     imgui.KeyRightShift,
	ui.KeyRightAlt:       imgui.KeyRightAlt,
	ui.KeyRightSuper:     imgui.KeyRightSuper,
	ui.KeyMenu:           imgui.KeyMenu,
	ui.Key0:              imgui.Key0,
	ui.Key1:              imgui.Key1,
	ui.Key2:              imgui.Key2,
	ui.Key3:              imgui.Key3,
	ui.Key4:              imgui.Key4,
	ui.Key5:              imgui.Key5,
	ui.Key6:              imgui.Key6,
	ui.Key7:              imgui.Key7,
	ui.Key8:              imgui.Key8,
	ui.Key9:              imgui.Key9,
	ui.KeyA:              imgui.KeyA,
	ui.KeyB:              imgui.KeyB,
	ui.KeyC:              imgui.KeyC,
	ui.KeyD:              imgui.KeyD,
	ui.KeyE:              imgui.KeyE,
	ui.KeyF:              imgui.KeyF,
	ui.KeyG:              imgui.KeyG,
	ui.KeyH:              imgui.KeyH,
	ui.KeyI:              imgui.KeyI,
	ui.KeyJ:              imgui.KeyJ,
	ui.KeyK:              imgui.KeyK,
	ui.KeyL:              imgui.KeyL,
	ui.KeyM:              imgui.KeyM,
	ui.KeyN:              imgui.KeyN,
	ui.KeyO:              imgui.KeyO,
	ui.KeyP:              imgui.KeyP,
	ui.KeyQ:              imgui.KeyQ,
	ui.KeyR:              imgui.KeyR,
	ui.KeyS:              imgui.KeyS,
	ui.KeyT:              imgui.KeyT,
	ui.KeyU:              imgui.KeyU,
	ui.KeyV:              imgui.KeyV,
	ui.KeyW:              imgui.KeyW,
	ui.KeyX:              imgui.KeyX,
	ui.KeyY:              imgui.KeyY,
	ui.KeyZ:              imgui.KeyZ,
	ui.KeyF1:             imgui.KeyF1,
	ui.KeyF2:             imgui.KeyF2,
	ui.KeyF3:             imgui.KeyF3,
	ui.KeyF4:             imgui.KeyF4,
	ui.KeyF5:             imgui.KeyF5,
	ui.KeyF6:             imgui.KeyF6,
	ui.KeyF7:             imgui.KeyF7,
	ui.KeyF8:             imgui.KeyF8,
	ui.KeyF9:             imgui.KeyF9,
	ui.KeyF10:            imgui.KeyF10,
	ui.KeyF11:            imgui.KeyF11,
	ui.KeyF12:            imgui.KeyF12,
	ui.KeyF13:            imgui.KeyF13,
	ui.KeyF14:            imgui.KeyF14,
	ui.KeyF15:            imgui.KeyF15,
	ui.KeyF16:            imgui.KeyF16,
	ui.KeyF17:            imgui.KeyF17,
	ui.KeyF18:            imgui.KeyF18,
	ui.KeyF19:            imgui.KeyF19,
	ui.KeyF20:            imgui.KeyF20,
	ui.KeyF21:            imgui.KeyF21,
	ui.KeyF22:            imgui.KeyF22,
	ui.KeyF23:            imgui.KeyF23,
	ui.KeyF24:            imgui.KeyF24,
	ui.KeyApostrophe:     imgui.KeyApostrophe,
	ui.KeyComma:          imgui.KeyComma,
	ui.KeyMinus:          imgui.KeyMinus,
	ui.KeyPeriod:         imgui.KeyPeriod,
	ui.KeySlash:          imgui.KeySlash,
	ui.KeySemicolon:      imgui.KeySemicolon,
	ui.KeyEqual:          imgui.KeyEqual,
	ui.KeyLeftBracket:    imgui.KeyLeftBracket,
	ui.KeyBackslash:      imgui.KeyBackslash,
	ui.KeyRightBracket:   imgui.KeyRightBracket,
	ui.KeyGraveAccent:    imgui.KeyGraveAccent,
	ui.KeyCapsLock:       imgui.KeyCapsLock,
	ui.KeyScrollLock:     imgui.KeyScrollLock,
	ui.KeyNumLock:        imgui.KeyNumLock,
	ui.KeyPrintScreen:    imgui.KeyPrintScreen,
	ui.KeyPause:          imgui.KeyPause,
	ui.KeyKeypad0:        imgui.KeyKeypad0,
	ui.KeyKeypad1:        imgui.KeyKeypad1,
	ui.KeyKeypad2:        imgui.KeyKeypad2,
	ui.KeyKeypad3:        imgui.KeyKeypad3,
	ui.KeyKeypad4:        imgui.KeyKeypad4,
	ui.KeyKeypad5:        imgui.KeyKeypad5,
	ui.KeyKeypad6:        imgui.KeyKeypad6,
	ui.KeyKeypad7:        imgui.KeyKeypad7,
	ui.KeyKeypad8:        imgui.KeyKeypad8,
	ui.KeyKeypad9:        imgui.KeyKeypad9,
	ui.KeyKeypadDecimal:  imgui.KeyKeypadDecimal,
	ui.KeyKeypadDivide:   imgui.KeyKeypadDivide,
	ui.KeyKeypadMultiply: imgui.KeyKeypadMultiply,
	ui.KeyKeypadSubtract: imgui.KeyKeypadSubtract,
	ui.KeyKeypadAdd:      imgui.KeyKeypadAdd,
	ui.KeyKeypadEnter:    imgui.KeyKeypadEnter,
	ui.KeyKeypadEqual:    imgui.KeyKeypadEqual,
	ui.KeyAppBack:        imgui.KeyAppBack,
	ui.KeyAppForward:     imgui.KeyAppForward,

	ui.ModCtrl:  imgui.ModCtrl,
	ui.ModShift: imgui.ModShift,
	ui.ModAlt:   imgui.ModAlt,
	ui.ModSuper: imgui.ModSuper,
}
