// pkg/ui/recorder_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderQueue(t *testing.T) {
	r := NewRecorder()
	r.AddMouseSourceEvent(MouseSourceMouse)
	r.AddMousePosEvent(3, 4)
	r.AddKeyEvent(KeyA, true)

	ev := r.Drain()
	require.Len(t, ev, 3)
	assert.Equal(t, Event{Kind: MouseSourceEvent, Source: MouseSourceMouse}, ev[0])
	assert.Equal(t, Event{Kind: MousePosEvent, X: 3, Y: 4}, ev[1])
	assert.Equal(t, Event{Kind: KeyEvent, Key: KeyA, Down: true}, ev[2])
	assert.Empty(t, r.Events)
}

func TestRecorderSnapshotIsIndependent(t *testing.T) {
	r := NewRecorder()
	r.SetDisplaySize(640, 480)
	r.AddInputCharactersUTF8("hi")

	snap := r.Snapshot()
	r.Events[0].Text = "changed"
	r.SetDisplaySize(1, 1)

	assert.Equal(t, "hi", snap.Events[0].Text)
	assert.Equal(t, [2]float32{640, 480}, snap.DisplaySize)
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: KeyEvent, Key: KeyV, Down: true}, "Key(V, down=true)"},
		{Event{Kind: KeyEvent, Key: ModCtrl}, "Key(ModCtrl, down=false)"},
		{Event{Kind: MousePosEvent, X: -math.MaxFloat32, Y: -math.MaxFloat32}, "MousePos(absent)"},
		{Event{Kind: MouseWheelEvent, X: 0, Y: -1}, "MouseWheel(0, -1)"},
		{Event{Kind: TextEvent, Text: "a\n"}, `Text("a\n")`},
		{Event{Kind: FocusEvent, Down: false}, "Focus(false)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.ev.String())
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Tab", KeyTab.String())
	assert.Equal(t, "7", Key7.String())
	assert.Equal(t, "Q", KeyQ.String())
	assert.Equal(t, "F24", KeyF24.String())
	assert.Equal(t, "Keypad3", KeyKeypad3.String())
	assert.Equal(t, "AppForward", KeyAppForward.String())
	assert.Equal(t, 512, int(KeyTab))
	assert.True(t, KeyAppForward.IsNamed())
	assert.False(t, ModShift.IsNamed())
}
