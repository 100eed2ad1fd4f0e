// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hwflow/hwflow"
	"github.com/hwflow/hwflow/bench"
)

const (
	periodKey       = "period"
	widthKey        = "width"
	resetCyclesKey  = "reset-cycles"
	runCyclesKey    = "run-cycles"
	reset2CyclesKey = "reset-cycles-2"
	run2CyclesKey   = "run-cycles-2"
	vcdKey          = "vcd"
	outKey          = "out"
	expectedKey     = "expected"
	quietKey        = "quiet"
)

func buildFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("hwflow", flag.ContinueOnError)

	def := bench.DefaultConfig()
	fs.Uint64(periodKey, uint64(def.Period), "full clock period in time units, must be even")
	fs.Uint(widthKey, def.Width, "counter width in bits")
	fs.Uint(resetCyclesKey, def.ResetCycles, "clock cycles to hold the first reset")
	fs.Uint(runCyclesKey, def.RunCycles, "clock cycles to run after the first reset")
	fs.Uint(reset2CyclesKey, def.ResetCycles2, "clock cycles to hold the second reset")
	fs.Uint(run2CyclesKey, def.RunCycles2, "clock cycles to run after the second reset")
	fs.String(vcdKey, "", "write a waveform dump to this file")
	fs.String(outKey, "", "write observed counts to this .mem file, hex format")
	fs.String(expectedKey, "", "check observed counts against this .mem file, hex format")
	fs.Bool(quietKey, false, "suppress the per-change monitor log")

	return fs
}

// getViper returns the viper environment for the host binary.
func getViper() (*viper.Viper, error) {
	v := viper.New()

	fs := buildFlagSet()
	pflag.CommandLine.AddGoFlagSet(fs)
	pflag.Parse()
	if err := v.BindPFlags(pflag.CommandLine); err != nil {
		return nil, err
	}

	return v, nil
}

func benchConfig(v *viper.Viper) bench.Config {
	return bench.Config{
		Width:        v.GetUint(widthKey),
		Period:       hwflow.Time(v.GetUint64(periodKey)),
		ResetCycles:  v.GetUint(resetCyclesKey),
		RunCycles:    v.GetUint(runCyclesKey),
		ResetCycles2: v.GetUint(reset2CyclesKey),
		RunCycles2:   v.GetUint(run2CyclesKey),
	}
}
