package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmgcore/cartridge"
	"dmgcore/mem"
)

func newBareCpu(t *testing.T) *Cpu {
	cart, err := cartridge.FromBytes(make([]byte, 0x100))
	require.NoError(t, err)
	return New(mem.New(cart))
}

func TestR8IndexOrderMatchesBCDEHLHLA(t *testing.T) {
	c := newBareCpu(t)
	c.HL = 0xC050
	c.setR8(0, 0x01) // B
	c.setR8(1, 0x02) // C
	c.setR8(2, 0x03) // D
	c.setR8(3, 0x04) // E
	c.setR8(4, 0xC0) // H
	c.setR8(5, 0x50) // L
	c.setR8(6, 0x99) // (HL)
	c.setR8(7, 0x07) // A

	assert.Equal(t, byte(0x01), c.getR8(0))
	assert.Equal(t, byte(0x02), c.getR8(1))
	assert.Equal(t, byte(0x03), c.getR8(2))
	assert.Equal(t, byte(0x04), c.getR8(3))
	assert.Equal(t, byte(0x99), c.Bus.Read(c.HL, false))
	assert.Equal(t, byte(0x07), c.getR8(7))
}

func TestR16IndexOrderMatchesBCDEHLSP(t *testing.T) {
	c := newBareCpu(t)
	c.setR16(0, 0x1111)
	c.setR16(1, 0x2222)
	c.setR16(2, 0x3333)
	c.setR16(3, 0x4444)

	assert.Equal(t, uint16(0x1111), c.BC)
	assert.Equal(t, uint16(0x2222), c.DE)
	assert.Equal(t, uint16(0x3333), c.HL)
	assert.Equal(t, uint16(0x4444), c.SP)
}

func TestR16StackIndexOrderMatchesBCDEHLAFAndMasksF(t *testing.T) {
	c := newBareCpu(t)
	c.setR16Stack(0, 0x1111) // BC
	c.setR16Stack(1, 0x2222) // DE
	c.setR16Stack(2, 0x3333) // HL
	c.setR16Stack(3, 0xBEEF) // AF
	assert.Equal(t, uint16(0x1111), c.BC)
	assert.Equal(t, uint16(0x2222), c.DE)
	assert.Equal(t, uint16(0x3333), c.HL)
	assert.Equal(t, uint16(0xBEE0), c.AF, "POP AF must clear F's low nibble")
}

func TestCondTrueOrderMatchesNZZNCC(t *testing.T) {
	c := newBareCpu(t)
	c.setFlags(true, false, false, true) // Z=1, C=1
	assert.False(t, c.condTrue(0), "NZ")
	assert.True(t, c.condTrue(1), "Z")
	assert.False(t, c.condTrue(2), "NC")
	assert.True(t, c.condTrue(3), "C")
}

func TestFetch16IsLittleEndian(t *testing.T) {
	c := newBareCpu(t)
	c.Bus.Write(0xC010, 0xCD)
	c.Bus.Write(0xC011, 0xAB)
	c.PC = 0xC010
	assert.Equal(t, uint16(0xABCD), c.fetch16())
	assert.Equal(t, uint16(0xC012), c.PC)
}

func TestPush16Pop16RoundTrip(t *testing.T) {
	c := newBareCpu(t)
	c.SP = 0xC080
	c.push16(0x1234)
	assert.Equal(t, uint16(0xC07E), c.SP)
	assert.Equal(t, uint16(0x1234), c.pop16())
	assert.Equal(t, uint16(0xC080), c.SP)
}

func TestJumpRelativePositiveAndNegative(t *testing.T) {
	c := newBareCpu(t)
	c.PC = 0x0010
	c.jumpRelative(5)
	assert.Equal(t, uint16(0x0015), c.PC)

	c.jumpRelative(-10)
	assert.Equal(t, uint16(0x000B), c.PC)
}

func TestBitResSet(t *testing.T) {
	c := newBareCpu(t)
	c.SetB(0b0000_0000)
	c.set(3, 0) // SET 3,B
	assert.Equal(t, byte(0b0000_1000), c.B())

	c.bit(3, 0) // BIT 3,B
	assert.True(t, c.FlagZ() == false)
	assert.True(t, c.FlagH())

	c.res(3, 0) // RES 3,B
	assert.Equal(t, byte(0x00), c.B())

	c.bit(3, 0)
	assert.True(t, c.FlagZ())
}
