// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package hwflow

import (
	"github.com/hwflow/hwflow/logic"
)

// A Signal is a named single-bit wire. Each signal has exactly one writer;
// the kernel does not enforce this, the single-writer discipline is part of
// the contract between components.
//
// Set applies immediately at the current instant and fires watchers
// synchronously. Writing the current value again is a no-op.
//
type Signal struct {
	sim      *Simulator
	name     string
	val      bool
	watchers []func(t Time, v bool)
}

// NewSignal creates a signal with the given initial value.
//
func (s *Simulator) NewSignal(name string, init bool) *Signal {
	return &Signal{sim: s, name: name, val: init}
}

// Name returns the signal name.
func (sg *Signal) Name() string { return sg.name }

// Get returns the current value.
func (sg *Signal) Get() bool { return sg.val }

// Set updates the signal value. Watchers fire at the current simulated
// instant, after the value is updated, and only on an actual change.
//
func (sg *Signal) Set(v bool) {
	if v == sg.val {
		return
	}
	sg.val = v
	t := sg.sim.Now()
	for _, fn := range sg.watchers {
		fn(t, v)
	}
}

// Watch registers fn to run on every value change.
//
func (sg *Signal) Watch(fn func(t Time, v bool)) {
	sg.watchers = append(sg.watchers, fn)
}

// OnRise registers fn to run on every low to high transition.
//
func (sg *Signal) OnRise(fn func(t Time)) {
	sg.Watch(func(t Time, v bool) {
		if v {
			fn(t)
		}
	})
}

// OnFall registers fn to run on every high to low transition.
//
func (sg *Signal) OnFall(fn func(t Time)) {
	sg.Watch(func(t Time, v bool) {
		if !v {
			fn(t)
		}
	})
}

// A Bus is a named fixed-width wire carrying a logic.Bits value. Same
// single-writer and watcher semantics as Signal.
//
type Bus struct {
	sim      *Simulator
	name     string
	val      logic.Bits
	watchers []func(t Time, v logic.Bits)
}

// NewBus creates a bus holding init. The bus width is fixed to init's width.
//
func (s *Simulator) NewBus(name string, init logic.Bits) *Bus {
	return &Bus{sim: s, name: name, val: init}
}

// Name returns the bus name.
func (b *Bus) Name() string { return b.name }

// Width returns the bus width in bits.
func (b *Bus) Width() uint { return b.val.Width() }

// Get returns the current value.
func (b *Bus) Get() logic.Bits { return b.val }

// Set updates the bus value. It panics if v's width differs from the bus
// width; mixed-width wiring is a programming error, not a runtime condition.
//
func (b *Bus) Set(v logic.Bits) {
	if v.Width() != b.val.Width() {
		panic("bus " + b.name + ": width mismatch")
	}
	if v.Eq(b.val) {
		return
	}
	b.val = v
	t := b.sim.Now()
	for _, fn := range b.watchers {
		fn(t, v)
	}
}

// Watch registers fn to run on every value change.
//
func (b *Bus) Watch(fn func(t Time, v logic.Bits)) {
	b.watchers = append(b.watchers, fn)
}
