// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwflow runs the counter simulation scenario with a configurable
// clock period, reset-assert durations and run lengths, and reports
// pass/fail through its exit code.
package main

import (
	"fmt"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hwflow/hwflow/bench"
	"github.com/hwflow/hwflow/logic"
	"github.com/hwflow/hwflow/memfile"
	"github.com/hwflow/hwflow/metrics"
	"github.com/hwflow/hwflow/trace"
)

func main() {
	v, err := getViper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "couldn't get config: %s\n", err)
		os.Exit(1)
	}
	if err := run(v); err != nil {
		log.Error("simulation failed", "err", err)
		os.Exit(1)
	}
}

func run(v *viper.Viper) error {
	cfg := benchConfig(v)

	rec := &trace.Recorder{}
	sinks := []trace.Sink{rec}
	if !v.GetBool(quietKey) {
		sinks = append(sinks, trace.Logger(log.New("module", "monitor")))
	}

	var vcd *trace.VCD
	var vcdFile *os.File
	if path := v.GetString(vcdKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "create vcd file")
		}
		vcdFile = f
		vcd = trace.NewVCD(f, "counter_tb", cfg.Width)
		sinks = append(sinks, vcd)
	}

	task := &bench.Task{
		Name:   "CounterFunctionalityTest",
		Config: cfg,
		Sink:   trace.Multi(sinks...),
	}
	if expected := v.GetString(expectedKey); expected != "" {
		task.PostSim = func(t *bench.Task) error {
			return checkExpected(expected, cfg.Width, rec)
		}
	}

	err := task.Run()

	if vcd != nil {
		if cerr := vcd.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if cerr := vcdFile.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return err
	}

	if out := v.GetString(outKey); out != "" {
		if err := memfile.WriteHex(out, rec.Counts(), 8); err != nil {
			return err
		}
		log.Info("observed counts written", "path", out, "words", len(rec.Samples))
	}
	return nil
}

// checkExpected compares the recorded count stream against a reference
// .mem file.
func checkExpected(path string, width uint, rec *trace.Recorder) error {
	want, err := memfile.ReadHex(path, width)
	if err != nil {
		return err
	}
	ref := make([]float64, len(want))
	for i, b := range want {
		ref[i] = float64(b.Uint())
	}
	rep, err := metrics.NewMatcher().Match(ref, rec.CountFloats())
	if err != nil {
		return errors.Wrap(err, "match observed counts")
	}
	if !rep.IsMatch() {
		m := rep.Mismatches[0]
		return errors.Errorf("%d of %d observed counts differ, first at sample %d: expected %s, got %s",
			rep.MismatchCount(), rep.Total,
			m.Index,
			logic.MustBits(width, uint64(m.Reference)).Bin(),
			logic.MustBits(width, uint64(m.Test)).Bin())
	}
	log.Info("observed counts match reference", "words", rep.Total)
	return nil
}
