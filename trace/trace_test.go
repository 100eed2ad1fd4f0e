// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package trace_test

import (
	"testing"

	log "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"

	"github.com/hwflow/hwflow"
	"github.com/hwflow/hwflow/logic"
	"github.com/hwflow/hwflow/trace"
)

func sample(t uint64, rstn bool, count uint64) trace.Sample {
	return trace.Sample{Time: hwflow.Time(t), RstN: rstn, Count: logic.MustBits(4, count)}
}

func TestRecorder(t *testing.T) {
	assert := assert.New(t)

	rec := &trace.Recorder{}
	rec.Emit(sample(0, false, 0))
	rec.Emit(sample(25, true, 1))
	rec.Emit(sample(35, true, 2))

	assert.Len(rec.Samples, 3)

	counts := rec.Counts()
	assert.Len(counts, 3)
	assert.Equal(uint64(2), counts[2].Uint())

	assert.Equal([]float64{0, 1, 2}, rec.CountFloats())
}

func TestMulti(t *testing.T) {
	assert := assert.New(t)

	a, b := &trace.Recorder{}, &trace.Recorder{}
	m := trace.Multi(a, b)
	m.Emit(sample(5, true, 3))

	assert.Len(a.Samples, 1)
	assert.Len(b.Samples, 1)
	assert.Equal(a.Samples[0], b.Samples[0])
}

func TestLogger(t *testing.T) {
	var records []*log.Record
	l := log.New()
	l.SetHandler(log.FuncHandler(func(r *log.Record) error {
		records = append(records, r)
		return nil
	}))

	s := trace.Logger(l)
	s.Emit(sample(220, false, 0))
	s.Emit(sample(335, true, 10))

	assert := assert.New(t)
	assert.Len(records, 2)
	// ctx is a flat key/value list
	assert.Contains(records[1].Ctx, "count")
	assert.Contains(records[1].Ctx, "1010")
	assert.Contains(records[0].Ctx, "rstn")
	assert.Contains(records[0].Ctx, "0")
}
