// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package metrics computes signal quality metrics and element-wise matches
// between a reference data stream and a test data stream, for post-sim
// result checking.
//
package metrics

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultTolerance is the numeric comparison tolerance used when none is
// given.
const DefaultTolerance = 1e-10

// A Calculator computes error metrics between reference and test data.
type Calculator struct {
	// Tolerance guards divisions: denominators smaller than it in
	// magnitude are clamped to it.
	Tolerance float64
}

// NewCalculator returns a Calculator with the default tolerance.
func NewCalculator() Calculator {
	return Calculator{Tolerance: DefaultTolerance}
}

func (c Calculator) validate(ref, test []float64) error {
	if len(ref) != len(test) {
		return errors.Errorf("reference and test lengths do not match: %d vs %d", len(ref), len(test))
	}
	if len(ref) == 0 {
		return errors.New("input data cannot be empty")
	}
	return nil
}

func (c Calculator) clamp(d float64) float64 {
	if math.Abs(d) < c.Tolerance {
		return c.Tolerance
	}
	return d
}

// MRED returns the maximum relative error distance:
//
//	MRED = max(|ref - test| / |ref|)
//
func (c Calculator) MRED(ref, test []float64) (float64, error) {
	if err := c.validate(ref, test); err != nil {
		return 0, err
	}
	var max float64
	for i := range ref {
		rel := math.Abs(ref[i]-test[i]) / c.clamp(math.Abs(ref[i]))
		if rel > max {
			max = rel
		}
	}
	return max, nil
}

// NMED returns the normalized mean error distance:
//
//	NMED = mean(|ref - test|) / mean(|ref|)
//
func (c Calculator) NMED(ref, test []float64) (float64, error) {
	if err := c.validate(ref, test); err != nil {
		return 0, err
	}
	var errSum, refSum float64
	for i := range ref {
		errSum += math.Abs(ref[i] - test[i])
		refSum += math.Abs(ref[i])
	}
	n := float64(len(ref))
	return (errSum / n) / c.clamp(refSum/n), nil
}

// SNR returns the signal-to-noise ratio in dB:
//
//	SNR = 10*log10(mean(ref^2) / mean((ref-test)^2))
//
func (c Calculator) SNR(ref, test []float64) (float64, error) {
	if err := c.validate(ref, test); err != nil {
		return 0, err
	}
	var sig, noise float64
	for i := range ref {
		sig += ref[i] * ref[i]
		d := ref[i] - test[i]
		noise += d * d
	}
	n := float64(len(ref))
	return 10 * math.Log10((sig/n)/c.clamp(noise/n)), nil
}

// PSNR returns the peak signal-to-noise ratio in dB against maxValue. A
// maxValue <= 0 means "use the largest |ref| value".
//
//	PSNR = 20*log10(maxValue / sqrt(mean((ref-test)^2)))
//
func (c Calculator) PSNR(ref, test []float64, maxValue float64) (float64, error) {
	if err := c.validate(ref, test); err != nil {
		return 0, err
	}
	if maxValue <= 0 {
		for _, r := range ref {
			if a := math.Abs(r); a > maxValue {
				maxValue = a
			}
		}
	}
	var mse float64
	for i := range ref {
		d := ref[i] - test[i]
		mse += d * d
	}
	mse = c.clamp(mse / float64(len(ref)))
	return 20 * math.Log10(maxValue/math.Sqrt(mse)), nil
}

// A Mismatch is one differing element in a match report.
type Mismatch struct {
	Index     int
	Reference float64
	Test      float64
	Error     float64
}

// A Report summarizes an element-wise comparison.
type Report struct {
	Total      int
	Matches    int
	Mismatches []Mismatch
	// Truncated is the number of mismatches beyond the matcher's cap that
	// are counted but not listed.
	Truncated int
}

// IsMatch reports a perfect element-wise match.
func (r Report) IsMatch() bool { return r.Matches == r.Total }

// MismatchCount returns the total number of differing elements, listed or
// not.
func (r Report) MismatchCount() int { return len(r.Mismatches) + r.Truncated }

// A Matcher compares data streams element-wise.
type Matcher struct {
	// Tolerance below which two elements count as equal.
	Tolerance float64
	// MaxMismatches caps how many mismatches a Report lists in detail.
	MaxMismatches int
}

// NewMatcher returns a Matcher with the default tolerance, listing at most
// 100 mismatches.
func NewMatcher() Matcher {
	return Matcher{Tolerance: DefaultTolerance, MaxMismatches: 100}
}

// Match compares ref and test and returns a detailed report.
//
func (m Matcher) Match(ref, test []float64) (Report, error) {
	if err := (Calculator{Tolerance: m.Tolerance}).validate(ref, test); err != nil {
		return Report{}, err
	}
	r := Report{Total: len(ref)}
	for i := range ref {
		d := math.Abs(ref[i] - test[i])
		if d <= m.Tolerance {
			r.Matches++
			continue
		}
		if len(r.Mismatches) < m.MaxMismatches {
			r.Mismatches = append(r.Mismatches, Mismatch{Index: i, Reference: ref[i], Test: test[i], Error: d})
		} else {
			r.Truncated++
		}
	}
	return r, nil
}
