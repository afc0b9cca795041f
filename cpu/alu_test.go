package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd8HalfCarryAndCarry(t *testing.T) {
	res, z, n, h, cy := add8(0x0F, 0x01)
	assert.Equal(t, byte(0x10), res)
	assert.False(t, z)
	assert.False(t, n)
	assert.True(t, h)
	assert.False(t, cy)

	res, z, n, h, cy = add8(0xFF, 0x01)
	assert.Equal(t, byte(0x00), res)
	assert.True(t, z)
	assert.False(t, n)
	assert.True(t, h)
	assert.True(t, cy)
}

func TestSub8BorrowFlags(t *testing.T) {
	res, z, n, h, cy := sub8(0x10, 0x01)
	assert.Equal(t, byte(0x0F), res)
	assert.False(t, z)
	assert.True(t, n)
	assert.True(t, h)
	assert.False(t, cy)

	res, z, n, h, cy = sub8(0x00, 0x01)
	assert.Equal(t, byte(0xFF), res)
	assert.False(t, z)
	assert.True(t, n)
	assert.True(t, h)
	assert.True(t, cy)
}

func TestAnd8AlwaysSetsHalfCarry(t *testing.T) {
	res, z, n, h, cy := and8(0xF0, 0x0F)
	assert.Equal(t, byte(0x00), res)
	assert.True(t, z)
	assert.False(t, n)
	assert.True(t, h)
	assert.False(t, cy)
}

func TestXorOrClearHalfCarryAndCarry(t *testing.T) {
	res, _, _, h, cy := xor8(0xFF, 0xFF)
	assert.Equal(t, byte(0x00), res)
	assert.False(t, h)
	assert.False(t, cy)

	res, _, _, h, cy = or8(0x0F, 0xF0)
	assert.Equal(t, byte(0xFF), res)
	assert.False(t, h)
	assert.False(t, cy)
}

func TestIncDecLeaveCarryToCaller(t *testing.T) {
	res, z, n, h := inc8(0x0F)
	assert.Equal(t, byte(0x10), res)
	assert.False(t, z)
	assert.False(t, n)
	assert.True(t, h)

	res, z, n, h = dec8(0x10)
	assert.Equal(t, byte(0x0F), res)
	assert.False(t, z)
	assert.True(t, n)
	assert.True(t, h)
}

func TestAdd16HalfCarryOnBit11(t *testing.T) {
	res, h, cy := add16(0x0FFF, 0x0001)
	assert.Equal(t, uint16(0x1000), res)
	assert.True(t, h)
	assert.False(t, cy)

	res, h, cy = add16(0xFFFF, 0x0001)
	assert.Equal(t, uint16(0x0000), res)
	assert.True(t, h)
	assert.True(t, cy)
}

func TestAddSPSignedNegativeDisplacement(t *testing.T) {
	res, _, _ := addSPSigned(0xFFF8, -8)
	assert.Equal(t, uint16(0xFFF0), res)
}

func TestRotateShiftKernels(t *testing.T) {
	res, cy := rlc(0x80)
	assert.Equal(t, byte(0x01), res)
	assert.True(t, cy)

	res, cy = rrc(0x01)
	assert.Equal(t, byte(0x80), res)
	assert.True(t, cy)

	res, cy = sra(0x81)
	assert.Equal(t, byte(0xC0), res, "SRA must preserve the sign bit")
	assert.True(t, cy)

	res, cy = srl(0x81)
	assert.Equal(t, byte(0x40), res, "SRL must clear bit 7 regardless of its input")
	assert.True(t, cy)

	assert.Equal(t, byte(0x21), swap(0x12))
}
