// cmd/fltkreplay/config.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/mmp/imgui-fltk/pkg/platform"
)

type Config struct {
	LogLevel string `toml:"log_level"`
	LogDir   string `toml:"log_dir"`

	Backend platform.Config `toml:"backend"`
	UI      UIConfig        `toml:"ui"`
}

// UIConfig describes the UI library settings the replay pretends to have.
type UIConfig struct {
	NoMouseCursorChange bool `toml:"no_mouse_cursor_change"`
	MouseDrawCursor     bool `toml:"mouse_draw_cursor"`
}

func defaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Backend:  platform.DefaultConfig(),
	}
}

// loadConfig overlays the TOML file at path, if any, on the defaults. Keys
// the file sets that aren't understood are returned so the caller can warn
// about them.
func loadConfig(path string) (Config, []string, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil, nil
	}

	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return config, nil, fmt.Errorf("%s: %w", path, err)
	}
	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}

	if err := config.Backend.Validate(); err != nil {
		return config, unknown, fmt.Errorf("%s: %w", path, err)
	}
	return config, unknown, nil
}
