// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package bench

import (
	"fmt"
	"io"

	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/hwflow/hwflow"
	"github.com/hwflow/hwflow/logic"
	"github.com/hwflow/hwflow/trace"
)

// AssertionError reports an observed count that differs from the expected
// count at a given simulated time.
type AssertionError struct {
	Time hwflow.Time
	Want logic.Bits
	Got  logic.Bits
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("t=%d: expected count %s, got %s", uint64(e.Time), e.Want.Bin(), e.Got.Bin())
}

// A Task runs one scenario with optional hooks around the simulation:
// PreSim prepares stimulus, PostSim checks results. Both default to the
// standard behavior for the self-stimulating counter bench: no stimulus
// preparation, final count checked against Config.ExpectedFinal.
type Task struct {
	Name    string
	Config  Config
	Sink    trace.Sink
	PreSim  func(*Task) error
	PostSim func(*Task) error
	Log     log.Logger

	// Results, valid after Run.
	Passed  bool
	Final   logic.Bits
	Stopped hwflow.Time
}

// Run executes pre-sim, the simulation and post-sim. Passed is set iff all
// three stages succeeded.
//
func (t *Task) Run() error {
	t.Passed = false
	if t.Log == nil {
		t.Log = log.New("task", t.Name)
	}
	if t.Config == (Config{}) {
		t.Config = DefaultConfig()
	}
	if err := t.Config.Validate(); err != nil {
		return errors.Wrapf(err, "task %s", t.Name)
	}

	if t.PreSim != nil {
		if err := t.PreSim(t); err != nil {
			return errors.Wrapf(err, "task %s: pre-sim", t.Name)
		}
	} else {
		t.Log.Info("pre-sim: no external stimulus files needed")
	}

	d, err := NewDriver(t.Config, t.Sink)
	if err != nil {
		return errors.Wrapf(err, "task %s", t.Name)
	}
	t.Log.Info("running simulation", "period", uint64(t.Config.Period), "width", t.Config.Width)
	t.Final, t.Stopped = d.Run()
	t.Log.Info("simulation stopped", "t", uint64(t.Stopped), "count", t.Final.Bin())

	if c, ok := t.Sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return errors.Wrapf(err, "task %s: close sink", t.Name)
		}
	}

	if t.PostSim != nil {
		if err := t.PostSim(t); err != nil {
			return errors.Wrapf(err, "task %s: post-sim", t.Name)
		}
	} else if want := t.Config.ExpectedFinal(); !t.Final.Eq(want) {
		return errors.Wrapf(&AssertionError{Time: t.Stopped, Want: want, Got: t.Final}, "task %s", t.Name)
	}

	t.Passed = true
	t.Log.Info("task passed")
	return nil
}
