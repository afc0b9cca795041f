package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEightBitAccessorsDeriveFromPairs(t *testing.T) {
	c := &Cpu{}
	c.SetA(0xAB)
	c.SetF(0xF0)
	assert.Equal(t, uint16(0xABF0), c.AF)
	assert.Equal(t, byte(0xAB), c.A())
	assert.Equal(t, byte(0xF0), c.F())

	c.SetB(0x11)
	c.SetC(0x22)
	assert.Equal(t, uint16(0x1122), c.BC)

	c.SetD(0x33)
	c.SetE(0x44)
	assert.Equal(t, uint16(0x3344), c.DE)

	c.SetH(0x55)
	c.SetL(0x66)
	assert.Equal(t, uint16(0x5566), c.HL)
}

func TestSetFMasksLowNibble(t *testing.T) {
	c := &Cpu{}
	c.SetF(0xFF)
	assert.Equal(t, byte(0xF0), c.F(), "F's low nibble must always read back as zero")
}

func TestFlagAccessorsRoundTrip(t *testing.T) {
	c := &Cpu{}
	c.setFlags(true, false, true, false)
	assert.True(t, c.FlagZ())
	assert.False(t, c.FlagN())
	assert.True(t, c.FlagH())
	assert.False(t, c.FlagC())

	c.SetFlagN(true)
	assert.True(t, c.FlagN())
	assert.True(t, c.FlagZ(), "setting N must not disturb the other flags")
}
