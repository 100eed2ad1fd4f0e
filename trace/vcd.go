// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package trace

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// vcd identifier codes for the two monitored wires.
const (
	idRstN  = "!"
	idCount = "\""
)

// A VCD is a Sink that writes a value change dump of the monitored wires,
// readable by common waveform viewers. The dump covers what the monitor
// sees (rstn and count); it is a trace artifact, not a full netlist
// capture.
type VCD struct {
	w        *bufio.Writer
	scope    string
	width    uint
	started  bool
	lastTime uint64
	lastRstN bool
	lastBin  string
}

// NewVCD returns a VCD writer for a count bus of the given width, dumping
// under the given scope name. The header is written on the first sample.
//
func NewVCD(w io.Writer, scope string, width uint) *VCD {
	return &VCD{w: bufio.NewWriter(w), scope: scope, width: width}
}

func (v *VCD) header(first Sample) {
	fmt.Fprintf(v.w, "$timescale 1ns $end\n")
	fmt.Fprintf(v.w, "$scope module %s $end\n", v.scope)
	fmt.Fprintf(v.w, "$var wire 1 %s rst_n $end\n", idRstN)
	fmt.Fprintf(v.w, "$var wire %d %s count [%d:0] $end\n", v.width, idCount, v.width-1)
	fmt.Fprintf(v.w, "$upscope $end\n")
	fmt.Fprintf(v.w, "$enddefinitions $end\n")
	fmt.Fprintf(v.w, "#%d\n", uint64(first.Time))
	fmt.Fprintf(v.w, "$dumpvars\n")
	v.scalar(first.RstN)
	v.vector(first.Count.Bin())
	fmt.Fprintf(v.w, "$end\n")
	v.lastTime = uint64(first.Time)
	v.lastRstN = first.RstN
	v.lastBin = first.Count.Bin()
	v.started = true
}

func (v *VCD) scalar(rstn bool) {
	if rstn {
		fmt.Fprintf(v.w, "1%s\n", idRstN)
	} else {
		fmt.Fprintf(v.w, "0%s\n", idRstN)
	}
}

func (v *VCD) vector(bin string) {
	fmt.Fprintf(v.w, "b%s %s\n", bin, idCount)
}

// Emit implements Sink.
func (v *VCD) Emit(s Sample) {
	if !v.started {
		v.header(s)
		return
	}
	if t := uint64(s.Time); t != v.lastTime {
		fmt.Fprintf(v.w, "#%d\n", t)
		v.lastTime = t
	}
	if s.RstN != v.lastRstN {
		v.scalar(s.RstN)
		v.lastRstN = s.RstN
	}
	if bin := s.Count.Bin(); bin != v.lastBin {
		v.vector(bin)
		v.lastBin = bin
	}
}

// Close flushes buffered output.
//
func (v *VCD) Close() error {
	return errors.Wrap(v.w.Flush(), "flush vcd")
}
