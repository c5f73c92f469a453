// pkg/trace/trace.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package trace stores sequences of FLTK events and frame boundaries so
// that the platform backend's translation can be replayed and inspected
// away from a live window. A trace is a zstd-compressed stream of msgpack
// values: a Header followed by Records.
package trace

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mmp/imgui-fltk/pkg/fltk"
	"github.com/mmp/imgui-fltk/pkg/ui"
)

const (
	Magic   = "fltk-trace"
	Version = 1
)

type Header struct {
	Magic   string `msgpack:"magic"`
	Version int    `msgpack:"version"`
}

type Kind uint8

const (
	// KindEvent records an FLTK event along with what Fl::event_*()
	// returned while it was being handled.
	KindEvent Kind = iota
	// KindFrame marks the start of a rendered frame: window geometry,
	// the clock, and the cursor the UI wanted.
	KindFrame
)

func (k Kind) String() string {
	switch k {
	case KindEvent:
		return "event"
	case KindFrame:
		return "frame"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type Record struct {
	Kind Kind `msgpack:"k" json:"kind"`

	Event  fltk.Event  `msgpack:"e,omitempty" json:"event,omitempty"`
	X      int         `msgpack:"x,omitempty" json:"x,omitempty"`
	Y      int         `msgpack:"y,omitempty" json:"y,omitempty"`
	DX     int         `msgpack:"dx,omitempty" json:"dx,omitempty"`
	DY     int         `msgpack:"dy,omitempty" json:"dy,omitempty"`
	Button fltk.Button `msgpack:"b,omitempty" json:"button,omitempty"`
	Key    fltk.Key    `msgpack:"key,omitempty" json:"key,omitempty"`
	State  fltk.State  `msgpack:"s,omitempty" json:"state,omitempty"`
	Text   string      `msgpack:"t,omitempty" json:"text,omitempty"`

	// Elapsed is the time since the start of the trace.
	Elapsed    time.Duration  `msgpack:"el,omitempty" json:"elapsed,omitempty"`
	W          int            `msgpack:"w,omitempty" json:"w,omitempty"`
	H          int            `msgpack:"h,omitempty" json:"h,omitempty"`
	PixelW     int            `msgpack:"pw,omitempty" json:"pixel_w,omitempty"`
	PixelH     int            `msgpack:"ph,omitempty" json:"pixel_h,omitempty"`
	Cursor     ui.MouseCursor `msgpack:"c,omitempty" json:"cursor,omitempty"`
	DrawCursor bool           `msgpack:"dc,omitempty" json:"draw_cursor,omitempty"`
}

func (r Record) String() string {
	if r.Kind == KindFrame {
		return fmt.Sprintf("frame @%s %dx%d (%dx%d px) cursor=%s", r.Elapsed, r.W, r.H, r.PixelW, r.PixelH, r.Cursor)
	}
	return r.Event.String()
}

// Writer appends records to a trace.
type Writer struct {
	zw  *zstd.Encoder
	enc *msgpack.Encoder
}

func NewWriter(w io.Writer) (*Writer, error) {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	tw := &Writer{zw: zw, enc: msgpack.NewEncoder(zw)}
	if err := tw.enc.Encode(Header{Magic: Magic, Version: Version}); err != nil {
		zw.Close()
		return nil, fmt.Errorf("trace: writing header: %w", err)
	}
	return tw, nil
}

func (w *Writer) Write(r Record) error {
	if err := w.enc.Encode(&r); err != nil {
		return fmt.Errorf("trace: writing %s record: %w", r.Kind, err)
	}
	return nil
}

// Close flushes the stream; it does not close the underlying writer.
func (w *Writer) Close() error {
	return w.zw.Close()
}

// Reader reads records back from a trace.
type Reader struct {
	zr  *zstd.Decoder
	dec *msgpack.Decoder
}

var ErrNotTrace = errors.New("trace: not an FLTK event trace")

func NewReader(r io.Reader) (*Reader, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	tr := &Reader{zr: zr, dec: msgpack.NewDecoder(zr)}

	var h Header
	if err := tr.dec.Decode(&h); err != nil {
		zr.Close()
		return nil, fmt.Errorf("%w: %v", ErrNotTrace, err)
	}
	if h.Magic != Magic {
		zr.Close()
		return nil, ErrNotTrace
	}
	if h.Version != Version {
		zr.Close()
		return nil, fmt.Errorf("trace: unsupported version %d", h.Version)
	}
	return tr, nil
}

// Next returns the next record, or io.EOF once the trace is exhausted.
func (r *Reader) Next() (Record, error) {
	var rec Record
	if err := r.dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("trace: %w", err)
	}
	return rec, nil
}

func (r *Reader) Close() {
	r.zr.Close()
}

// ReadAll reads a complete trace.
func ReadAll(rd io.Reader) ([]Record, error) {
	r, err := NewReader(rd)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var recs []Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return recs, nil
		} else if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// WriteAll writes a complete trace.
func WriteAll(w io.Writer, recs []Record) error {
	tw, err := NewWriter(w)
	if err != nil {
		return err
	}
	for _, r := range recs {
		if err := tw.Write(r); err != nil {
			tw.Close()
			return err
		}
	}
	return tw.Close()
}
