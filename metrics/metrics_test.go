// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hwflow/hwflow/metrics"
)

var (
	ref  = []float64{1, 2, 4}
	test = []float64{1, 2, 5}
)

func TestMRED(t *testing.T) {
	assert := assert.New(t)

	c := metrics.NewCalculator()
	v, err := c.MRED(ref, test)
	assert.NoError(err)
	assert.InDelta(0.25, v, 1e-12)

	v, err = c.MRED(ref, ref)
	assert.NoError(err)
	assert.Zero(v)
}

func TestNMED(t *testing.T) {
	assert := assert.New(t)

	v, err := metrics.NewCalculator().NMED(ref, test)
	assert.NoError(err)
	assert.InDelta(1.0/7.0, v, 1e-12)
}

func TestSNR(t *testing.T) {
	assert := assert.New(t)

	v, err := metrics.NewCalculator().SNR(ref, test)
	assert.NoError(err)
	// 10*log10(7 / (1/3))
	assert.InDelta(13.2222, v, 1e-3)
}

func TestPSNR(t *testing.T) {
	assert := assert.New(t)

	c := metrics.NewCalculator()
	v, err := c.PSNR(ref, test, 0)
	assert.NoError(err)
	// 20*log10(4 / sqrt(1/3))
	assert.InDelta(16.8124, v, 1e-3)

	v2, err := c.PSNR(ref, test, 8)
	assert.NoError(err)
	assert.Greater(v2, v)
}

func TestValidation(t *testing.T) {
	assert := assert.New(t)

	c := metrics.NewCalculator()
	_, err := c.MRED([]float64{1}, []float64{1, 2})
	assert.Error(err)
	_, err = c.NMED(nil, nil)
	assert.Error(err)
	_, err = metrics.NewMatcher().Match([]float64{1}, nil)
	assert.Error(err)
}

func TestMatcher(t *testing.T) {
	assert := assert.New(t)

	rep, err := metrics.NewMatcher().Match(ref, ref)
	assert.NoError(err)
	assert.True(rep.IsMatch())
	assert.Equal(3, rep.Matches)
	assert.Zero(rep.MismatchCount())

	rep, err = metrics.NewMatcher().Match(ref, test)
	assert.NoError(err)
	assert.False(rep.IsMatch())
	assert.Equal(1, rep.MismatchCount())
	assert.Equal(2, rep.Mismatches[0].Index)
	assert.InDelta(1.0, rep.Mismatches[0].Error, 1e-12)
}

func TestMatcherTruncation(t *testing.T) {
	assert := assert.New(t)

	m := metrics.Matcher{Tolerance: metrics.DefaultTolerance, MaxMismatches: 1}
	rep, err := m.Match([]float64{1, 2, 3}, []float64{0, 0, 0})
	assert.NoError(err)
	assert.Equal(3, rep.MismatchCount())
	assert.Len(rep.Mismatches, 1)
	assert.Equal(2, rep.Truncated)
}
