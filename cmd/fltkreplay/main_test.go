// cmd/fltkreplay/main_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/iancoleman/orderedmap"

	"github.com/mmp/imgui-fltk/pkg/fltk"
	"github.com/mmp/imgui-fltk/pkg/log"
	"github.com/mmp/imgui-fltk/pkg/trace"
	"github.com/mmp/imgui-fltk/pkg/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, unknown, err := loadConfig("")
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, defaultConfig(), config)
	assert.Equal(t, 60.0, config.Backend.NominalFrameRate)
	assert.True(t, config.Backend.PasteOnCtrlV)
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeFile(t, "replay.toml", `
log_level = "debug"
colour = "blue"

[backend]
nominal_frame_rate = 120
unfocus_on_key_release = true

[ui]
mouse_draw_cursor = true
`)
	config, unknown, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 120.0, config.Backend.NominalFrameRate)
	assert.True(t, config.Backend.UnfocusOnKeyRelease)
	assert.True(t, config.Backend.PasteOnCtrlV, "unset keys keep their defaults")
	assert.Equal(t, "imgui_impl_fltk", config.Backend.BackendName)
	assert.True(t, config.UI.MouseDrawCursor)
	assert.False(t, config.UI.NoMouseCursorChange)
	assert.Equal(t, []string{"colour"}, unknown)
}

func TestLoadConfigErrors(t *testing.T) {
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, _, err = loadConfig(writeFile(t, "bad.toml", "log_level = \n"))
	assert.Error(t, err)

	_, _, err = loadConfig(writeFile(t, "rate.toml", "[backend]\nnominal_frame_rate = 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nominal_frame_rate")
}

func replayRecords() []trace.Record {
	return []trace.Record{
		{Kind: trace.KindFrame, W: 640, H: 480, PixelW: 1280, PixelH: 960},
		{Kind: trace.KindEvent, Event: fltk.Move, X: 10, Y: 20},
		{Kind: trace.KindEvent, Event: fltk.Push, X: 10, Y: 20, Button: fltk.LeftMouse},
		{Kind: trace.KindEvent, Event: fltk.KeyDown, Key: 'v', State: fltk.StateCtrl},
		{Kind: trace.KindEvent, Event: fltk.KeyUp, Key: 'v', State: fltk.StateCtrl},
		{Kind: trace.KindEvent, Event: fltk.Hide},
		{Kind: trace.KindFrame, Elapsed: 16 * time.Millisecond, W: 640, H: 480, PixelW: 1280, PixelH: 960,
			Cursor: ui.MouseCursorHand},
		{Kind: trace.KindEvent, Event: fltk.Release, X: 10, Y: 20, Button: fltk.LeftMouse},
	}
}

func writeTrace(t *testing.T, recs []trace.Record) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, trace.WriteAll(&buf, recs))
	return writeFile(t, "input.trace", buf.String())
}

func TestReplay(t *testing.T) {
	lg := log.NewWriter(io.Discard, slog.LevelWarn)
	r, err := newReplayer(defaultConfig(), io.Discard, lg)
	require.NoError(t, err)

	var out strings.Builder
	r.w = &out
	r.run(replayRecords())
	r.close()

	text := out.String()
	assert.Contains(t, text, "frame 0: dt=0.0167 display=640x480 scale=2x2\n")
	assert.Contains(t, text, "frame 1: dt=0.0160 display=640x480 scale=2x2\n")
	assert.Contains(t, text, "  synthesized FL_PASTE\n")
	assert.Contains(t, text, "  MousePos(10, 20)\n")
	assert.Contains(t, text, "  Key(V, down=true)\n")
	assert.True(t, strings.HasSuffix(text, "after last frame:\n  MouseSource(Mouse)\n  MouseButton(0, down=false)\n"),
		"events after the last frame are still reported: %s", text)

	assert.Equal(t, 2, r.frames)
	assert.Equal(t, 1, r.unhandled)
	assert.Equal(t, 1, r.synthesized)
	assert.Equal(t, []fltk.Cursor{fltk.CursorArrow, fltk.CursorHand, fltk.CursorDefault}, r.player.Cursors)
}

func TestReplaySummary(t *testing.T) {
	path := writeTrace(t, replayRecords())
	lg := log.NewWriter(io.Discard, slog.LevelWarn)

	var out bytes.Buffer
	require.NoError(t, replayFile(path, defaultConfig(), replayOptions{Summary: true}, &out, lg))

	text := out.String()
	start := strings.Index(text, "{")
	require.GreaterOrEqual(t, start, 0)

	summary := orderedmap.New()
	require.NoError(t, json.Unmarshal([]byte(text[start:]), summary))
	assert.Equal(t, []string{"frames", "unhandled", "synthesized", "cursor_changes", "events"}, summary.Keys())

	frames, _ := summary.Get("frames")
	assert.Equal(t, 2.0, frames)

	ev, ok := summary.Get("events")
	require.True(t, ok)
	var events *orderedmap.OrderedMap
	switch m := ev.(type) {
	case orderedmap.OrderedMap:
		events = &m
	case *orderedmap.OrderedMap:
		events = m
	default:
		t.Fatalf("events: unexpected type %T", ev)
	}
	assert.Equal(t, []string{"MouseSource", "MousePos", "MouseButton", "Key"}, events.Keys())
	keys, _ := events.Get("Key")
	// Four modifiers plus the key itself, on both press and release.
	assert.Equal(t, 10.0, keys)
}

func TestReplayDumpGoesToOutput(t *testing.T) {
	path := writeTrace(t, replayRecords())
	lg := log.NewWriter(io.Discard, slog.LevelWarn)

	var out bytes.Buffer
	require.NoError(t, replayFile(path, defaultConfig(), replayOptions{Dump: true}, &out, lg))

	text := out.String()
	assert.Contains(t, text, "frame 1:")
	assert.Contains(t, text, "FramebufferScale")
	assert.Contains(t, text, "DeltaTime")
}

func TestReplayNoCursorChange(t *testing.T) {
	config := defaultConfig()
	config.UI.NoMouseCursorChange = true
	r, err := newReplayer(config, io.Discard, nil)
	require.NoError(t, err)
	r.run(replayRecords())
	r.close()

	assert.Empty(t, r.player.Cursors)
}

func TestReplayFileErrors(t *testing.T) {
	lg := log.NewWriter(io.Discard, slog.LevelWarn)
	err := replayFile(filepath.Join(t.TempDir(), "missing.trace"), defaultConfig(), replayOptions{}, io.Discard, lg)
	assert.Error(t, err)

	path := writeFile(t, "garbage.trace", "not a trace")
	err = replayFile(path, defaultConfig(), replayOptions{}, io.Discard, lg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestEncodeJSON(t *testing.T) {
	js, err := json.Marshal(replayRecords())
	require.NoError(t, err)
	in := writeFile(t, "records.json", string(js))
	out := filepath.Join(t.TempDir(), "out.trace")

	require.NoError(t, encodeJSON(in, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	recs, err := trace.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, replayRecords(), recs)

	assert.Error(t, encodeJSON(in, ""))
	assert.Error(t, encodeJSON(writeFile(t, "bad.json", "{"), out))
}
