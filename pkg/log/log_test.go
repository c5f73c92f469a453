// pkg/log/log_test.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilLoggerIsSafe(t *testing.T) {
	var lg *Logger
	assert.NotPanics(t, func() {
		lg.Debugf("x %d", 1)
		lg.Infof("x %d", 1)
		lg.Warnf("x %d", 1)
		lg.Errorf("x %d", 1)
		lg.Info("x", "k", 1)
	})
}

func TestWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWriter(&buf, slog.LevelInfo)

	lg.Debugf("hidden %d", 1)
	lg.Infof("shown %d", 2)
	lg.Warnf("warned %s", "three")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "warned three")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New("loud", "")
	require.Error(t, err)
}

func TestNewFileOutput(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	lg, err := New("debug", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "imgui-fltk.slog"), lg.LogFile)

	lg.Infof("hello %s", "file")

	data, err := os.ReadFile(lg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
