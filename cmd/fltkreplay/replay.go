// cmd/fltkreplay/replay.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/iancoleman/orderedmap"

	"github.com/mmp/imgui-fltk/pkg/fltk"
	"github.com/mmp/imgui-fltk/pkg/log"
	"github.com/mmp/imgui-fltk/pkg/platform"
	"github.com/mmp/imgui-fltk/pkg/trace"
	"github.com/mmp/imgui-fltk/pkg/ui"
)

// replayer feeds trace records through a backend the way an FLTK window
// and render loop would, writing the UI input queue for each frame to w.
type replayer struct {
	lg       *log.Logger
	w        io.Writer
	registry *platform.Registry[string]
	backend  *platform.Backend
	io       *ui.Recorder
	player   *trace.Player

	// Whether the configuration always asks for a software cursor.
	drawCursor bool

	frames      int
	unhandled   int
	synthesized int
	// Counts of each ui.EventKind emitted, in the order first seen.
	counts *orderedmap.OrderedMap
}

const contextName = "replay"

func newReplayer(config Config, w io.Writer, lg *log.Logger) (*replayer, error) {
	r := &replayer{
		lg:       lg,
		w:        w,
		registry: platform.NewRegistry[string](config.Backend, lg),
		io:       ui.NewRecorder(),
		player:   trace.NewPlayer(time.Now()),
		counts:   orderedmap.New(),
	}
	if config.UI.NoMouseCursorChange {
		r.io.Config |= ui.ConfigFlagsNoMouseCursorChange
	}
	r.drawCursor = config.UI.MouseDrawCursor
	r.io.DrawCursor = r.drawCursor

	b, ok := r.registry.InitForOpenGL(contextName, r.io, r.player, r.player)
	if !ok {
		return nil, fmt.Errorf("unable to initialize platform backend")
	}
	r.backend = b
	return r, nil
}

func (r *replayer) close() {
	r.registry.Shutdown(contextName)
}

func (r *replayer) apply(rec trace.Record) {
	r.player.Apply(rec)

	switch rec.Kind {
	case trace.KindEvent:
		handled := platform.HandleEvent(r.backend, rec.Event, func(ev fltk.Event) bool {
			if ev != rec.Event {
				r.synthesized++
				fmt.Fprintf(r.w, "  synthesized %s\n", ev)
			}
			// There's no FLTK widget behind the replay to handle anything.
			return false
		})
		if !handled {
			r.unhandled++
			r.lg.Debugf("%s: not handled by the backend", rec.Event)
		}

	case trace.KindFrame:
		r.io.Cursor = rec.Cursor
		r.io.DrawCursor = r.drawCursor || rec.DrawCursor
		r.backend.NewFrame()

		fmt.Fprintf(r.w, "frame %d: dt=%.4f display=%gx%g scale=%gx%g\n", r.io.Frame, r.io.DeltaTime,
			r.io.DisplaySize[0], r.io.DisplaySize[1], r.io.FramebufferScale[0], r.io.FramebufferScale[1])
		r.flush()

		// The UI library advances its frame counter in its own NewFrame.
		r.io.Frame++
		r.frames++

	default:
		r.lg.Warnf("%s: unknown trace record kind", rec.Kind)
	}
}

// flush prints and counts the queued UI events.
func (r *replayer) flush() {
	for _, ev := range r.io.Drain() {
		fmt.Fprintf(r.w, "  %s\n", ev)
		k := ev.Kind.String()
		n, _ := r.counts.Get(k)
		c, _ := n.(int)
		r.counts.Set(k, c+1)
	}
}

func (r *replayer) run(recs []trace.Record) {
	for _, rec := range recs {
		r.apply(rec)
	}
	if len(r.io.Events) > 0 {
		fmt.Fprintln(r.w, "after last frame:")
		r.flush()
	}
}

func (r *replayer) summary() *orderedmap.OrderedMap {
	s := orderedmap.New()
	s.Set("frames", r.frames)
	s.Set("unhandled", r.unhandled)
	s.Set("synthesized", r.synthesized)
	s.Set("cursor_changes", len(r.player.Cursors))
	s.Set("events", r.counts)
	return s
}
