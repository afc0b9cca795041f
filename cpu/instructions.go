package cpu

import "dmgcore/mask"

// Shared helpers used by both the unprefixed and CB-prefixed dispatch
// tables: register-index decoding, memory fetch/push/pop, and condition
// evaluation. Keeping these in one place means the two tables only ever
// differ in which opcode byte selects which operation, never in how an
// operand or a stack slot is located.

// r8 index order, used throughout the unprefixed ISA and the whole of the
// CB page: B C D E H L (HL) A.
func (c *Cpu) getR8(i byte) byte {
	switch i {
	case 0:
		return c.B()
	case 1:
		return c.C()
	case 2:
		return c.D()
	case 3:
		return c.E()
	case 4:
		return c.H()
	case 5:
		return c.L()
	case 6:
		return c.Bus.Read(c.HL, false)
	default:
		return c.A()
	}
}

func (c *Cpu) setR8(i byte, v byte) {
	switch i {
	case 0:
		c.SetB(v)
	case 1:
		c.SetC(v)
	case 2:
		c.SetD(v)
	case 3:
		c.SetE(v)
	case 4:
		c.SetH(v)
	case 5:
		c.SetL(v)
	case 6:
		c.Bus.Write(c.HL, v)
	default:
		c.SetA(v)
	}
}

// r16 index order for LD rr,d16 / INC rr / DEC rr / ADD HL,rr: BC DE HL SP.
func (c *Cpu) getR16(i byte) uint16 {
	switch i {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	default:
		return c.SP
	}
}

func (c *Cpu) setR16(i byte, v uint16) {
	switch i {
	case 0:
		c.BC = v
	case 1:
		c.DE = v
	case 2:
		c.HL = v
	default:
		c.SP = v
	}
}

// r16 index order for PUSH/POP: BC DE HL AF.
func (c *Cpu) getR16Stack(i byte) uint16 {
	switch i {
	case 0:
		return c.BC
	case 1:
		return c.DE
	case 2:
		return c.HL
	default:
		return c.AF
	}
}

func (c *Cpu) setR16Stack(i byte, v uint16) {
	switch i {
	case 0:
		c.BC = v
	case 1:
		c.DE = v
	case 2:
		c.HL = v
	default:
		c.AF = v & 0xFFF0 // F's low nibble is always zero, even via POP AF
	}
}

// Condition index order for JR/JP/CALL/RET cc: NZ Z NC C.
func (c *Cpu) condTrue(i byte) bool {
	switch i {
	case 0:
		return !c.FlagZ()
	case 1:
		return c.FlagZ()
	case 2:
		return !c.FlagC()
	default:
		return c.FlagC()
	}
}

func (c *Cpu) fetch8() byte {
	v := c.Bus.Read(c.PC, false)
	c.PC++
	return v
}

func (c *Cpu) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// push16 writes the high byte to SP-1 and the low byte to SP-2, the order
// real hardware uses, leaving SP decremented by 2.
func (c *Cpu) push16(v uint16) {
	c.SP--
	c.Bus.Write(c.SP, byte(v>>8))
	c.SP--
	c.Bus.Write(c.SP, byte(v))
}

func (c *Cpu) pop16() uint16 {
	lo := c.Bus.Read(c.SP, false)
	c.SP++
	hi := c.Bus.Read(c.SP, false)
	c.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// jumpRelative applies a signed 8-bit displacement to PC. e is cast to
// int8 by the caller, right where it is fetched, so the sign extension
// happens exactly once, in exactly one place.
func (c *Cpu) jumpRelative(e int8) {
	c.PC = uint16(int32(c.PC) + int32(e))
}

// aluKernel is the shape shared by add8/sub8/and8/xor8/or8: an operation on
// the accumulator and an operand byte that produces a result and all four
// flags. adc8 and sbc8 take the carry as a third input and are called
// directly instead.
type aluKernel func(a, b byte) (res byte, z, n, h, cy bool)

func (c *Cpu) applyALU(kernel aluKernel, operand byte) {
	res, z, n, h, cy := kernel(c.A(), operand)
	c.SetA(res)
	c.setFlags(z, n, h, cy)
}

func (c *Cpu) cp(operand byte) {
	z, n, h, cy := cp8(c.A(), operand)
	c.setFlags(z, n, h, cy)
}

func (c *Cpu) incR8(i byte) {
	v := c.getR8(i)
	res, z, n, h := inc8(v)
	c.setR8(i, res)
	c.setFlags(z, n, h, c.FlagC())
}

func (c *Cpu) decR8(i byte) {
	v := c.getR8(i)
	res, z, n, h := dec8(v)
	c.setR8(i, res)
	c.setFlags(z, n, h, c.FlagC())
}

func (c *Cpu) addHL(rr uint16) {
	res, h, cy := add16(c.HL, rr)
	c.HL = res
	c.setFlags(c.FlagZ(), false, h, cy)
}

// rotShiftKernel is the shape shared by the CB-page rotate/shift families.
type rotShiftKernel func(v byte) (res byte, cy bool)

func (c *Cpu) applyRotShift(kernel rotShiftKernel, i byte) {
	v := c.getR8(i)
	res, cy := kernel(v)
	c.setR8(i, res)
	c.setFlags(res == 0, false, false, cy)
}

func (c *Cpu) applySwap(i byte) {
	v := c.getR8(i)
	res := swap(v)
	c.setR8(i, res)
	c.setFlags(res == 0, false, false, false)
}

func (c *Cpu) bit(n byte, i byte) {
	v := c.getR8(i)
	c.setFlags(mask.Bit(v, n) == 0, false, true, c.FlagC())
}

func (c *Cpu) res(n byte, i byte) {
	v := c.getR8(i)
	c.setR8(i, v&^(1<<n))
}

func (c *Cpu) set(n byte, i byte) {
	v := c.getR8(i)
	c.setR8(i, v|(1<<n))
}
