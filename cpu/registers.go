package cpu

import "dmgcore/mask"

// Flag bit positions within F, expressed in the mask package's 1-indexed
// (MSB-first) convention: F's top nibble is ZNHC, the low nibble is always
// zero.
const (
	flagZ = mask.I1
	flagN = mask.I2
	flagH = mask.I3
	flagC = mask.I4
)

// A returns the high byte of AF.
func (c *Cpu) A() byte { return byte(c.AF >> 8) }

// SetA sets the high byte of AF.
func (c *Cpu) SetA(v byte) { c.AF = uint16(v)<<8 | c.AF&0x00FF }

// F returns the low byte of AF. The low nibble is always zero; hardware
// never lets garbage accumulate there even though pushes/pops move all 8
// bits, so SetF masks it off too.
func (c *Cpu) F() byte { return byte(c.AF & 0x00F0) }

// SetF sets the low byte of AF, clearing the unused low nibble.
func (c *Cpu) SetF(v byte) { c.AF = c.AF&0xFF00 | uint16(v&0xF0) }

func (c *Cpu) B() byte      { return byte(c.BC >> 8) }
func (c *Cpu) SetB(v byte)  { c.BC = uint16(v)<<8 | c.BC&0x00FF }
func (c *Cpu) C() byte      { return byte(c.BC & 0x00FF) }
func (c *Cpu) SetC(v byte)  { c.BC = c.BC&0xFF00 | uint16(v) }
func (c *Cpu) D() byte      { return byte(c.DE >> 8) }
func (c *Cpu) SetD(v byte)  { c.DE = uint16(v)<<8 | c.DE&0x00FF }
func (c *Cpu) E() byte      { return byte(c.DE & 0x00FF) }
func (c *Cpu) SetE(v byte)  { c.DE = c.DE&0xFF00 | uint16(v) }
func (c *Cpu) H() byte      { return byte(c.HL >> 8) }
func (c *Cpu) SetH(v byte)  { c.HL = uint16(v)<<8 | c.HL&0x00FF }
func (c *Cpu) L() byte      { return byte(c.HL & 0x00FF) }
func (c *Cpu) SetL(v byte)  { c.HL = c.HL&0xFF00 | uint16(v) }

// FlagZ reports the Zero flag.
func (c *Cpu) FlagZ() bool { return mask.IsSet(c.F(), flagZ) }

// FlagN reports the Subtract flag.
func (c *Cpu) FlagN() bool { return mask.IsSet(c.F(), flagN) }

// FlagH reports the Half-Carry flag.
func (c *Cpu) FlagH() bool { return mask.IsSet(c.F(), flagH) }

// FlagC reports the Carry flag.
func (c *Cpu) FlagC() bool { return mask.IsSet(c.F(), flagC) }

func (c *Cpu) SetFlagZ(v bool) { c.SetF(mask.SetBool(c.F(), flagZ, v)) }
func (c *Cpu) SetFlagN(v bool) { c.SetF(mask.SetBool(c.F(), flagN, v)) }
func (c *Cpu) SetFlagH(v bool) { c.SetF(mask.SetBool(c.F(), flagH, v)) }
func (c *Cpu) SetFlagC(v bool) { c.SetF(mask.SetBool(c.F(), flagC, v)) }

// setFlags writes all four flags in one call, the shape every ALU
// instruction uses after computing its result.
func (c *Cpu) setFlags(z, n, h, cy bool) {
	var f byte
	f = mask.SetBool(f, flagZ, z)
	f = mask.SetBool(f, flagN, n)
	f = mask.SetBool(f, flagH, h)
	f = mask.SetBool(f, flagC, cy)
	c.SetF(f)
}
