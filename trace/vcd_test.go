// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package trace_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hwflow/hwflow/trace"
)

func TestVCD(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	v := trace.NewVCD(&buf, "counter_tb", 4)

	v.Emit(sample(0, false, 0))
	v.Emit(sample(20, true, 0))
	v.Emit(sample(25, true, 1))
	v.Emit(sample(35, true, 2))
	assert.NoError(v.Close())

	out := buf.String()

	// header
	assert.Contains(out, "$timescale 1ns $end")
	assert.Contains(out, "$scope module counter_tb $end")
	assert.Contains(out, "rst_n $end")
	assert.Contains(out, "count [3:0] $end")
	assert.Contains(out, "$enddefinitions $end")

	// initial dump at t=0
	assert.Contains(out, "$dumpvars")
	assert.Contains(out, "0!")
	assert.Contains(out, "b0000 \"")

	// subsequent changes carry timestamps
	assert.Contains(out, "#20")
	assert.Contains(out, "1!")
	assert.Contains(out, "#25")
	assert.Contains(out, "b0001 \"")
	assert.Contains(out, "#35")
	assert.Contains(out, "b0010 \"")

	// at t=20 only rst_n changed, the count vector is not re-dumped
	at20 := out[strings.Index(out, "#20"):strings.Index(out, "#25")]
	assert.NotContains(at20, "b0000")
}
