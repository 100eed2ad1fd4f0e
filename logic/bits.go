// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logic provides fixed-width unsigned bit vectors, the value domain
// carried by simulation buses.
//
package logic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxWidth is the widest supported vector.
const MaxWidth = 64

// Bits is an unsigned value of a fixed bit width. The zero Bits is invalid;
// use New or FromUint. Bits is a value type: operations return new values
// and never mutate the receiver.
type Bits struct {
	width uint
	val   uint64
}

func mask(width uint) uint64 {
	if width >= MaxWidth {
		return ^uint64(0)
	}
	return 1<<width - 1
}

func checkWidth(width uint) error {
	if width == 0 || width > MaxWidth {
		return errors.Errorf("invalid bit width %d", width)
	}
	return nil
}

// New returns a zero value of the given width.
//
func New(width uint) (Bits, error) {
	if err := checkWidth(width); err != nil {
		return Bits{}, err
	}
	return Bits{width: width}, nil
}

// FromUint returns v as a width-bit vector. v must fit in width bits.
//
func FromUint(width uint, v uint64) (Bits, error) {
	if err := checkWidth(width); err != nil {
		return Bits{}, err
	}
	if v&^mask(width) != 0 {
		return Bits{}, errors.Errorf("value %d does not fit in %d bits", v, width)
	}
	return Bits{width: width, val: v}, nil
}

// MustBits is FromUint for statically known values; it panics on error.
//
func MustBits(width uint, v uint64) Bits {
	b, err := FromUint(width, v)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the width in bits.
func (b Bits) Width() uint { return b.width }

// Uint returns the value as an unsigned integer.
func (b Bits) Uint() uint64 { return b.val }

// Bit returns bit i (0 is the least significant). i must be < Width.
func (b Bits) Bit(i uint) bool {
	if i >= b.width {
		panic(fmt.Sprintf("bit %d out of range for width %d", i, b.width))
	}
	return b.val&(1<<i) != 0
}

// Eq reports whether o has the same width and value.
func (b Bits) Eq(o Bits) bool { return b.width == o.width && b.val == o.val }

// Inc returns b+1 with wraparound: all ones increments to zero.
//
func (b Bits) Inc() Bits { return b.AddWrap(1) }

// AddWrap returns b+delta modulo 2^width.
//
func (b Bits) AddWrap(delta uint64) Bits {
	return Bits{width: b.width, val: (b.val + delta) & mask(b.width)}
}

// Bin returns the value as a zero-padded binary string, most significant bit
// first, e.g. "1010" for a 4-bit ten.
//
func (b Bits) Bin() string {
	return fmt.Sprintf("%0*b", b.width, b.val)
}

// Hex returns the value as a zero-padded hexadecimal string.
//
func (b Bits) Hex() string {
	return fmt.Sprintf("%0*x", (b.width+3)/4, b.val)
}

func (b Bits) String() string {
	return strconv.Itoa(int(b.width)) + "'b" + b.Bin()
}

// ParseBin parses s as a width-bit binary vector. Underscores are ignored,
// as in Verilog literals.
//
func ParseBin(width uint, s string) (Bits, error) {
	return parse(width, s, 2)
}

// ParseHex parses s as a width-bit hexadecimal vector.
//
func ParseHex(width uint, s string) (Bits, error) {
	return parse(width, s, 16)
}

func parse(width uint, s string, base int) (Bits, error) {
	if err := checkWidth(width); err != nil {
		return Bits{}, err
	}
	t := strings.ReplaceAll(s, "_", "")
	if t == "" {
		return Bits{}, errors.Errorf("empty base-%d literal %q", base, s)
	}
	v, err := strconv.ParseUint(t, base, 64)
	if err != nil {
		return Bits{}, errors.Wrapf(err, "parse base-%d literal %q", base, s)
	}
	if v&^mask(width) != 0 {
		return Bits{}, errors.Errorf("literal %q does not fit in %d bits", s, width)
	}
	return Bits{width: width, val: v}, nil
}
