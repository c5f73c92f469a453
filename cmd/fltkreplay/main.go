// cmd/fltkreplay/main.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// fltkreplay runs a recorded trace of FLTK events through the FLTK
// platform backend and prints the Dear ImGui input events it produces,
// frame by frame.
//
// Usage:
//
//	fltkreplay [-config file.toml] [-summary] [-dump] trace
//	fltkreplay -encode records.json -o trace
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goforj/godump"

	"github.com/mmp/imgui-fltk/pkg/log"
	"github.com/mmp/imgui-fltk/pkg/trace"
)

var (
	configFile = flag.String("config", "", "TOML configuration file")
	summary    = flag.Bool("summary", false, "print a JSON summary after the replay")
	dump       = flag.Bool("dump", false, "dump the final UI frame state")
	encode     = flag.String("encode", "", "convert a JSON array of trace records to a binary trace (see -o)")
	output     = flag.String("o", "", "output file for -encode")
)

func main() {
	flag.Parse()

	config, unknown, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lg, err := log.New(config.LogLevel, config.LogDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, k := range unknown {
		lg.Warnf("%s: unknown configuration key %q", *configFile, k)
	}

	if *encode != "" {
		if err := encodeJSON(*encode, *output); err != nil {
			lg.Errorf("%v", err)
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: fltkreplay [flags] trace")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := replayOptions{Summary: *summary, Dump: *dump}
	if err := replayFile(flag.Arg(0), config, opts, os.Stdout, lg); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type replayOptions struct {
	Summary bool
	Dump    bool
}

func replayFile(path string, config Config, opts replayOptions, w io.Writer, lg *log.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	recs, err := trace.ReadAll(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	lg.Infof("%s: replaying %d records", path, len(recs))

	r, err := newReplayer(config, w, lg)
	if err != nil {
		return err
	}
	defer r.close()

	r.run(recs)

	if opts.Dump {
		godump.Fdump(w, r.io.Snapshot())
	}
	if opts.Summary {
		b, err := json.MarshalIndent(r.summary(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(b))
	}
	return nil
}

func encodeJSON(in, out string) error {
	if out == "" {
		return fmt.Errorf("-encode requires -o")
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	var recs []trace.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := trace.WriteAll(f, recs); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", out, err)
	}
	return f.Close()
}
