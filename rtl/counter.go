// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package rtl provides the clocked components mounted into a simulation.
//
package rtl

import (
	"github.com/hwflow/hwflow"
	"github.com/hwflow/hwflow/logic"
)

// Next is the counter transition function.
//
//	Next(n, false) = (n+1) mod 2^width
//	Next(n, true)  = 0
//
// It is total: any in-range state maps to an in-range state.
//
func Next(cur logic.Bits, reset bool) logic.Bits {
	if reset {
		return logic.MustBits(cur.Width(), 0)
	}
	return cur.Inc()
}

// A Counter is a synchronous up-counter with an asynchronous active-low
// reset.
//
//	Inputs: clk, rstn
//	Output: count
//	Function: on rising clk, count(t) = count(t-1) + 1 mod 2^width;
//	          while rstn is low, count = 0, applied the instant rstn falls.
//
type Counter struct {
	count *hwflow.Bus
}

// Mount wires a counter between clk, rstn and count. The counter becomes
// the sole writer of count.
//
// Reset is handled as its own event, not folded into the clock tick: the
// falling edge of rstn clears count immediately, at whatever clock phase it
// occurs, and clock edges arriving while rstn is low re-apply the cleared
// state.
//
func Mount(clk, rstn *hwflow.Signal, count *hwflow.Bus) *Counter {
	c := &Counter{count: count}
	clk.OnRise(func(hwflow.Time) {
		c.count.Set(Next(c.count.Get(), !rstn.Get()))
	})
	rstn.OnFall(func(hwflow.Time) {
		c.count.Set(Next(c.count.Get(), true))
	})
	return c
}

// State returns the current count.
//
func (c *Counter) State() logic.Bits { return c.count.Get() }
