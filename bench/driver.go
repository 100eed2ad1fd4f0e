// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package bench drives a mounted counter through a scripted stimulus and
// observes it.
//
// The driver owns the clock and reset wires, the counter owns the count
// bus, and an injected trace.Sink receives one record per observed change.
//
package bench

import (
	"github.com/pkg/errors"

	"github.com/hwflow/hwflow"
	"github.com/hwflow/hwflow/logic"
	"github.com/hwflow/hwflow/rtl"
	"github.com/hwflow/hwflow/trace"
)

// Config holds the scenario knobs: clock period, reset-assert durations and
// run lengths, all in clock cycles except Period.
type Config struct {
	// Counter width in bits.
	Width uint
	// Full clock period, in time units. Must be even; the clock toggles
	// every half period.
	Period hwflow.Time
	// First reset hold, in clock cycles.
	ResetCycles uint
	// First free-running stretch, in clock cycles.
	RunCycles uint
	// Second reset hold, in clock cycles.
	ResetCycles2 uint
	// Second free-running stretch, in clock cycles. The scenario halts at
	// its end.
	RunCycles2 uint
}

// DefaultConfig returns the shipped scenario: a 4-bit counter on a
// 10-unit clock, reset 2 cycles, run 20, reset 2, run 10.
//
func DefaultConfig() Config {
	return Config{
		Width:        4,
		Period:       10,
		ResetCycles:  2,
		RunCycles:    20,
		ResetCycles2: 2,
		RunCycles2:   10,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if _, err := logic.New(c.Width); err != nil {
		return err
	}
	if c.Period == 0 || c.Period%2 != 0 {
		return errors.Errorf("clock period %d: must be even and non-zero", c.Period)
	}
	if c.ResetCycles == 0 || c.RunCycles == 0 || c.ResetCycles2 == 0 || c.RunCycles2 == 0 {
		return errors.New("all cycle counts must be non-zero")
	}
	return nil
}

// ExpectedFinal returns the count the scenario ends on when the counter
// behaves: the last reset clears it, then RunCycles2 edges advance it.
//
func (c Config) ExpectedFinal() logic.Bits {
	return logic.MustBits(c.Width, 0).AddWrap(uint64(c.RunCycles2))
}

// A Driver wires a counter to driver-owned clock and reset wires and runs
// the scripted scenario against it.
type Driver struct {
	cfg   Config
	sim   *hwflow.Simulator
	clk   *hwflow.Signal
	rstn  *hwflow.Signal
	count *hwflow.Bus

	sink trace.Sink
	last trace.Sample
	seen bool
}

// NewDriver builds a simulator, mounts a counter and schedules the
// scenario. sink may be nil, in which case nothing is observed.
//
// The count register starts from an arbitrary pattern; the reset assertion
// at t=0 is what first makes it deterministic.
//
func NewDriver(cfg Config, sink trace.Sink) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "bad driver config")
	}

	sim := hwflow.New()
	d := &Driver{
		cfg:  cfg,
		sim:  sim,
		clk:  sim.NewSignal("clk", false),
		rstn: sim.NewSignal("rst_n", true),
		sink: sink,
	}

	seed := uint64(0x5555555555555555)
	if cfg.Width < logic.MaxWidth {
		seed &= uint64(1)<<cfg.Width - 1
	}
	d.count = sim.NewBus("count", logic.MustBits(cfg.Width, seed))

	rtl.Mount(d.clk, d.rstn, d.count)

	if sink != nil {
		d.rstn.Watch(func(t hwflow.Time, _ bool) { d.observe(t) })
		d.count.Watch(func(t hwflow.Time, _ logic.Bits) { d.observe(t) })
	}

	// free-running clock, starts low, toggles every half period
	if err := sim.Every(cfg.Period/2, func() { d.clk.Set(!d.clk.Get()) }); err != nil {
		return nil, err
	}

	// reset script, offsets from scenario start
	cycles := func(n uint) hwflow.Time { return hwflow.Time(n) * cfg.Period }
	t1 := cycles(cfg.ResetCycles)
	t2 := t1 + cycles(cfg.RunCycles)
	t3 := t2 + cycles(cfg.ResetCycles2)
	t4 := t3 + cycles(cfg.RunCycles2)
	sim.Schedule(0, func() { d.rstn.Set(false) })
	sim.Schedule(t1, func() { d.rstn.Set(true) })
	sim.Schedule(t2, func() { d.rstn.Set(false) })
	sim.Schedule(t3, func() { d.rstn.Set(true) })
	sim.Schedule(t4, sim.Halt)

	return d, nil
}

// observe emits the current state of the monitored wires. A reset edge that
// also clears the count fires both watchers at the same instant; identical
// back-to-back samples are collapsed into one record.
func (d *Driver) observe(t hwflow.Time) {
	s := trace.Sample{Time: t, RstN: d.rstn.Get(), Count: d.count.Get()}
	if d.seen && s == d.last {
		return
	}
	d.last, d.seen = s, true
	d.sink.Emit(s)
}

// Sim returns the driver's simulator.
func (d *Driver) Sim() *hwflow.Simulator { return d.sim }

// Count returns the current counter state.
func (d *Driver) Count() logic.Bits { return d.count.Get() }

// Run plays the scenario to its halt and returns the final count and the
// stop time.
//
func (d *Driver) Run() (logic.Bits, hwflow.Time) {
	stop := d.sim.Run()
	return d.count.Get(), stop
}
