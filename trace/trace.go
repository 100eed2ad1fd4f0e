// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package trace provides observation sinks for a running simulation.
//
// Sinks are injected into the testbench driver and receive one Sample per
// observed signal change. They never feed back into the simulation.
//
package trace

import (
	log "github.com/inconshreveable/log15"

	"github.com/hwflow/hwflow"
	"github.com/hwflow/hwflow/logic"
)

// A Sample is one observed state of the monitored wires.
type Sample struct {
	Time hwflow.Time
	// RstN is the wire-level reset value: low means the counter is held
	// in reset.
	RstN  bool
	Count logic.Bits
}

// A Sink receives samples. Sinks that buffer output also implement
// io.Closer; the run harness closes them after the simulation stops.
type Sink interface {
	Emit(Sample)
}

// A Recorder is a Sink that keeps every sample in memory.
type Recorder struct {
	Samples []Sample
}

// Emit implements Sink.
func (r *Recorder) Emit(s Sample) {
	r.Samples = append(r.Samples, s)
}

// Counts returns the recorded count values, one per sample.
//
func (r *Recorder) Counts() []logic.Bits {
	out := make([]logic.Bits, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Count
	}
	return out
}

// CountFloats returns the recorded count values as float64, the form the
// metrics package consumes.
//
func (r *Recorder) CountFloats() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = float64(s.Count.Uint())
	}
	return out
}

type multi []Sink

// Multi returns a Sink that fans out each sample to all of sinks, in order.
//
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}

func (m multi) Emit(s Sample) {
	for _, snk := range m {
		snk.Emit(s)
	}
}

type logSink struct {
	l log.Logger
}

// Logger returns a Sink that writes one log record per sample, the
// monitor line of the simulation:
//
//	t=220 rstn=0 count=0000
//
func Logger(l log.Logger) Sink {
	return &logSink{l: l}
}

func (s *logSink) Emit(smp Sample) {
	rstn := "0"
	if smp.RstN {
		rstn = "1"
	}
	s.l.Info("monitor", "t", uint64(smp.Time), "rstn", rstn, "count", smp.Count.Bin())
}
