// Copyright 2026 The hwflow Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hwflow/hwflow/logic"
)

func TestNew(t *testing.T) {
	assert := assert.New(t)

	b, err := logic.New(4)
	assert.NoError(err)
	assert.Equal(uint(4), b.Width())
	assert.Equal(uint64(0), b.Uint())

	_, err = logic.New(0)
	assert.Error(err)
	_, err = logic.New(65)
	assert.Error(err)

	_, err = logic.New(64)
	assert.NoError(err)
}

func TestFromUint(t *testing.T) {
	assert := assert.New(t)

	b, err := logic.FromUint(4, 15)
	assert.NoError(err)
	assert.Equal(uint64(15), b.Uint())

	_, err = logic.FromUint(4, 16)
	assert.Error(err)

	assert.Panics(func() { logic.MustBits(4, 16) })
}

func TestIncWraparound(t *testing.T) {
	assert := assert.New(t)

	for n := uint64(0); n < 16; n++ {
		next := logic.MustBits(4, n).Inc()
		assert.Equal((n+1)%16, next.Uint(), "n=%d", n)
	}
	assert.Equal(uint64(0), logic.MustBits(4, 15).Inc().Uint())

	// full width wrap
	all := logic.MustBits(64, ^uint64(0))
	assert.Equal(uint64(0), all.Inc().Uint())
}

func TestAddWrap(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(4), logic.MustBits(4, 0).AddWrap(20).Uint())
	assert.Equal(uint64(10), logic.MustBits(4, 0).AddWrap(10).Uint())
}

func TestFormatting(t *testing.T) {
	assert := assert.New(t)

	ten := logic.MustBits(4, 10)
	assert.Equal("1010", ten.Bin())
	assert.Equal("a", ten.Hex())
	assert.Equal("4'b1010", ten.String())

	assert.Equal("00000001", logic.MustBits(8, 1).Bin())
	assert.Equal("01", logic.MustBits(8, 1).Hex())
}

func TestBit(t *testing.T) {
	assert := assert.New(t)

	ten := logic.MustBits(4, 10) // 1010
	assert.False(ten.Bit(0))
	assert.True(ten.Bit(1))
	assert.False(ten.Bit(2))
	assert.True(ten.Bit(3))
	assert.Panics(func() { ten.Bit(4) })
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	b, err := logic.ParseBin(4, "1010")
	assert.NoError(err)
	assert.Equal(uint64(10), b.Uint())

	b, err = logic.ParseBin(8, "1010_0101")
	assert.NoError(err)
	assert.Equal(uint64(0xa5), b.Uint())

	b, err = logic.ParseHex(8, "ff")
	assert.NoError(err)
	assert.Equal(uint64(255), b.Uint())

	_, err = logic.ParseBin(4, "10102")
	assert.Error(err)
	_, err = logic.ParseHex(4, "ff") // does not fit
	assert.Error(err)
	_, err = logic.ParseBin(4, "")
	assert.Error(err)
	_, err = logic.ParseHex(4, "xz")
	assert.Error(err)
}

func TestEq(t *testing.T) {
	assert := assert.New(t)

	assert.True(logic.MustBits(4, 10).Eq(logic.MustBits(4, 10)))
	assert.False(logic.MustBits(4, 10).Eq(logic.MustBits(4, 11)))
	// same value, different width
	assert.False(logic.MustBits(4, 10).Eq(logic.MustBits(8, 10)))
}
