package cpu

// An Opcode describes one entry of the unprefixed instruction set: its
// mnemonic (used only for debugging/error messages), and Exec, which
// performs the fetch of any immediate operand, the operation itself, and
// returns the number of clock cycles actually taken -- a variable count
// for the conditional control-transfer instructions.
//
// The table is addressed directly by opcode byte ([256]Opcode) rather
// than through a map, so an undefined opcode is a recognizable zero value
// (nil Exec) instead of a silent miss indistinguishable from a legitimate
// but absent key.
type Opcode struct {
	Name   string
	Length byte
	Exec   func(c *Cpu) int
}

var opcodes [256]Opcode

func op(name string, length byte, exec func(c *Cpu) int) Opcode {
	return Opcode{Name: name, Length: length, Exec: exec}
}

func init() {
	opcodes[0x00] = op("NOP", 1, func(c *Cpu) int { return 4 })

	opcodes[0x10] = op("STOP", 2, func(c *Cpu) int {
		c.fetch8() // STOP is followed by a padding byte on real hardware
		c.Stopped = true
		return 4
	})

	opcodes[0x76] = op("HALT", 1, func(c *Cpu) int {
		c.Halted = true
		return 4
	})

	opcodes[0xF3] = op("DI", 1, func(c *Cpu) int { c.IME = false; c.imeScheduled = false; return 4 })
	opcodes[0xFB] = op("EI", 1, func(c *Cpu) int { c.imeScheduled = true; return 4 })

	opcodes[0x27] = op("DAA", 1, func(c *Cpu) int {
		res, z, cy := daa(c.A(), c.FlagN(), c.FlagH(), c.FlagC())
		c.SetA(res)
		c.setFlags(z, c.FlagN(), false, cy)
		return 4
	})
	opcodes[0x2F] = op("CPL", 1, func(c *Cpu) int {
		c.SetA(c.A() ^ 0xFF)
		c.setFlags(c.FlagZ(), true, true, c.FlagC())
		return 4
	})
	opcodes[0x37] = op("SCF", 1, func(c *Cpu) int {
		c.setFlags(c.FlagZ(), false, false, true)
		return 4
	})
	opcodes[0x3F] = op("CCF", 1, func(c *Cpu) int {
		c.setFlags(c.FlagZ(), false, false, !c.FlagC())
		return 4
	})

	opcodes[0x07] = op("RLCA", 1, func(c *Cpu) int {
		res, cy := rlc(c.A())
		c.SetA(res)
		c.setFlags(false, false, false, cy)
		return 4
	})
	opcodes[0x0F] = op("RRCA", 1, func(c *Cpu) int {
		res, cy := rrc(c.A())
		c.SetA(res)
		c.setFlags(false, false, false, cy)
		return 4
	})
	opcodes[0x17] = op("RLA", 1, func(c *Cpu) int {
		res, cy := rl(c.A(), c.FlagC())
		c.SetA(res)
		c.setFlags(false, false, false, cy)
		return 4
	})
	opcodes[0x1F] = op("RRA", 1, func(c *Cpu) int {
		res, cy := rr(c.A(), c.FlagC())
		c.SetA(res)
		c.setFlags(false, false, false, cy)
		return 4
	})

	// LD rr,d16 / INC rr / DEC rr / ADD HL,rr: one opcode per r16 slot,
	// 0x01/0x11/0x21/0x31 stepping by 0x10.
	r16Names := [4]string{"BC", "DE", "HL", "SP"}
	for i := byte(0); i < 4; i++ {
		i := i
		base := 0x01 + i*0x10
		opcodes[base] = op("LD "+r16Names[i]+",d16", 3, func(c *Cpu) int {
			c.setR16(i, c.fetch16())
			return 12
		})
		opcodes[base+0x02] = op("INC "+r16Names[i], 1, func(c *Cpu) int {
			c.setR16(i, c.getR16(i)+1)
			return 8
		})
		opcodes[base+0x0A] = op("DEC "+r16Names[i], 1, func(c *Cpu) int {
			c.setR16(i, c.getR16(i)-1)
			return 8
		})
		opcodes[0x09+i*0x10] = op("ADD HL,"+r16Names[i], 1, func(c *Cpu) int {
			c.addHL(c.getR16(i))
			return 8
		})
	}

	// INC r8 / DEC r8 / LD r8,d8: opcode = base + n*8, n is the r8 index.
	r8Names := [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	for n := byte(0); n < 8; n++ {
		n := n
		cycles := 4
		if n == 6 {
			cycles = 12
		}
		opcodes[0x04+n*8] = op("INC "+r8Names[n], 1, func(c *Cpu) int {
			c.incR8(n)
			return cycles
		})
		opcodes[0x05+n*8] = op("DEC "+r8Names[n], 1, func(c *Cpu) int {
			c.decR8(n)
			return cycles
		})
		ldCycles := 8
		if n == 6 {
			ldCycles = 12
		}
		opcodes[0x06+n*8] = op("LD "+r8Names[n]+",d8", 2, func(c *Cpu) int {
			c.setR8(n, c.fetch8())
			return ldCycles
		})
	}

	opcodes[0x02] = op("LD (BC),A", 1, func(c *Cpu) int { c.Bus.Write(c.BC, c.A()); return 8 })
	opcodes[0x12] = op("LD (DE),A", 1, func(c *Cpu) int { c.Bus.Write(c.DE, c.A()); return 8 })
	opcodes[0x22] = op("LD (HL+),A", 1, func(c *Cpu) int { c.Bus.Write(c.HL, c.A()); c.HL++; return 8 })
	opcodes[0x32] = op("LD (HL-),A", 1, func(c *Cpu) int { c.Bus.Write(c.HL, c.A()); c.HL--; return 8 })

	opcodes[0x0A] = op("LD A,(BC)", 1, func(c *Cpu) int { c.SetA(c.Bus.Read(c.BC, false)); return 8 })
	opcodes[0x1A] = op("LD A,(DE)", 1, func(c *Cpu) int { c.SetA(c.Bus.Read(c.DE, false)); return 8 })
	opcodes[0x2A] = op("LD A,(HL+)", 1, func(c *Cpu) int { c.SetA(c.Bus.Read(c.HL, false)); c.HL++; return 8 })
	opcodes[0x3A] = op("LD A,(HL-)", 1, func(c *Cpu) int { c.SetA(c.Bus.Read(c.HL, false)); c.HL--; return 8 })

	opcodes[0x08] = op("LD (a16),SP", 3, func(c *Cpu) int {
		addr := c.fetch16()
		c.Bus.Write16(addr, c.SP)
		return 20
	})

	// LD r8,r8: the 0x40-0x7F block, minus 0x76 (HALT).
	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			opcodeByte := 0x40 + dst*8 + src
			if opcodeByte == 0x76 {
				continue
			}
			dst, src := dst, src
			cycles := byte(4)
			if dst == 6 || src == 6 {
				cycles = 8
			}
			opcodes[opcodeByte] = op("LD "+r8Names[dst]+","+r8Names[src], 1, func(c *Cpu) int {
				c.setR8(dst, c.getR8(src))
				return int(cycles)
			})
		}
	}

	// ALU A,r8: the 0x80-0xBF block, 8 families of 8 operands each.
	type aluFamily struct {
		name   string
		kernel aluKernel
		useCP  bool
		useC   bool // ADC/SBC read the carry flag as an extra input
	}
	families := [8]aluFamily{
		{"ADD", func(a, b byte) (byte, bool, bool, bool, bool) { return add8(a, b) }, false, false},
		{"ADC", nil, false, true},
		{"SUB", func(a, b byte) (byte, bool, bool, bool, bool) { return sub8(a, b) }, false, false},
		{"SBC", nil, false, true},
		{"AND", func(a, b byte) (byte, bool, bool, bool, bool) { return and8(a, b) }, false, false},
		{"XOR", func(a, b byte) (byte, bool, bool, bool, bool) { return xor8(a, b) }, false, false},
		{"OR", func(a, b byte) (byte, bool, bool, bool, bool) { return or8(a, b) }, false, false},
		{"CP", nil, true, false},
	}
	for f := byte(0); f < 8; f++ {
		for n := byte(0); n < 8; n++ {
			f, n := f, n
			fam := families[f]
			cycles := 4
			if n == 6 {
				cycles = 8
			}
			name := fam.name + " A," + r8Names[n]
			var exec func(c *Cpu) int
			switch {
			case fam.useCP:
				exec = func(c *Cpu) int { c.cp(c.getR8(n)); return cycles }
			case fam.useC && fam.name == "ADC":
				exec = func(c *Cpu) int {
					operand := c.getR8(n)
					res, z, nf, h, cy := adc8(c.A(), operand, c.FlagC())
					c.SetA(res)
					c.setFlags(z, nf, h, cy)
					return cycles
				}
			case fam.useC:
				exec = func(c *Cpu) int {
					operand := c.getR8(n)
					res, z, nf, h, cy := sbc8(c.A(), operand, c.FlagC())
					c.SetA(res)
					c.setFlags(z, nf, h, cy)
					return cycles
				}
			default:
				exec = func(c *Cpu) int { c.applyALU(fam.kernel, c.getR8(n)); return cycles }
			}
			opcodes[0x80+f*8+n] = op(name, 1, exec)
		}
	}

	// ALU A,d8: the immediate-operand counterparts at 0xC6/0xCE/... stepping
	// by 8, in the same family order as the 0x80 block.
	immByOpcode := [8]byte{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}
	for f := byte(0); f < 8; f++ {
		f := f
		fam := families[f]
		name := fam.name + " A,d8"
		var exec func(c *Cpu) int
		switch {
		case fam.useCP:
			exec = func(c *Cpu) int { c.cp(c.fetch8()); return 8 }
		case fam.name == "ADC":
			exec = func(c *Cpu) int {
				operand := c.fetch8()
				res, z, nf, h, cy := adc8(c.A(), operand, c.FlagC())
				c.SetA(res)
				c.setFlags(z, nf, h, cy)
				return 8
			}
		case fam.useC:
			exec = func(c *Cpu) int {
				operand := c.fetch8()
				res, z, nf, h, cy := sbc8(c.A(), operand, c.FlagC())
				c.SetA(res)
				c.setFlags(z, nf, h, cy)
				return 8
			}
		default:
			exec = func(c *Cpu) int { c.applyALU(fam.kernel, c.fetch8()); return 8 }
		}
		opcodes[immByOpcode[f]] = op(name, 2, exec)
	}

	// PUSH/POP rr: BC DE HL AF, 0xC1/0xD1/0xE1/0xF1 and 0xC5/0xD5/0xE5/0xF5.
	stackNames := [4]string{"BC", "DE", "HL", "AF"}
	for i := byte(0); i < 4; i++ {
		i := i
		opcodes[0xC1+i*0x10] = op("POP "+stackNames[i], 1, func(c *Cpu) int {
			c.setR16Stack(i, c.pop16())
			return 12
		})
		opcodes[0xC5+i*0x10] = op("PUSH "+stackNames[i], 1, func(c *Cpu) int {
			c.push16(c.getR16Stack(i))
			return 16
		})
	}

	// RST n: 8 fixed vectors, 0xC7 stepping by 8.
	for i := byte(0); i < 8; i++ {
		vector := uint16(i) * 8
		opcodes[0xC7+i*8] = op("RST", 1, func(c *Cpu) int {
			c.push16(c.PC)
			c.PC = vector
			return 16
		})
	}

	// JR/JP/CALL/RET cc: NZ Z NC C, stepping by 8 from their respective
	// unconditional-family base.
	ccNames := [4]string{"NZ", "Z", "NC", "C"}
	for i := byte(0); i < 4; i++ {
		i := i
		opcodes[0x20+i*8] = op("JR "+ccNames[i]+",e8", 2, func(c *Cpu) int {
			e := int8(c.fetch8())
			if c.condTrue(i) {
				c.jumpRelative(e)
				return 12
			}
			return 8
		})
		opcodes[0xC2+i*8] = op("JP "+ccNames[i]+",a16", 3, func(c *Cpu) int {
			addr := c.fetch16()
			if c.condTrue(i) {
				c.PC = addr
				return 16
			}
			return 12
		})
		opcodes[0xC4+i*8] = op("CALL "+ccNames[i]+",a16", 3, func(c *Cpu) int {
			addr := c.fetch16()
			if c.condTrue(i) {
				c.push16(c.PC)
				c.PC = addr
				return 24
			}
			return 12
		})
		opcodes[0xC0+i*8] = op("RET "+ccNames[i], 1, func(c *Cpu) int {
			if c.condTrue(i) {
				c.PC = c.pop16()
				return 20
			}
			return 8
		})
	}

	opcodes[0x18] = op("JR e8", 2, func(c *Cpu) int {
		e := int8(c.fetch8())
		c.jumpRelative(e)
		return 12
	})
	opcodes[0xC3] = op("JP a16", 3, func(c *Cpu) int { c.PC = c.fetch16(); return 16 })
	opcodes[0xE9] = op("JP (HL)", 1, func(c *Cpu) int { c.PC = c.HL; return 4 })
	opcodes[0xCD] = op("CALL a16", 3, func(c *Cpu) int {
		addr := c.fetch16()
		c.push16(c.PC)
		c.PC = addr
		return 24
	})
	opcodes[0xC9] = op("RET", 1, func(c *Cpu) int { c.PC = c.pop16(); return 16 })
	opcodes[0xD9] = op("RETI", 1, func(c *Cpu) int {
		c.PC = c.pop16()
		c.IME = true
		c.imeScheduled = false
		return 16
	})

	opcodes[0xE0] = op("LDH (a8),A", 2, func(c *Cpu) int {
		addr := 0xFF00 + uint16(c.fetch8())
		c.Bus.Write(addr, c.A())
		return 12
	})
	opcodes[0xF0] = op("LDH A,(a8)", 2, func(c *Cpu) int {
		addr := 0xFF00 + uint16(c.fetch8())
		c.SetA(c.Bus.Read(addr, false))
		return 12
	})
	opcodes[0xE2] = op("LD (C),A", 1, func(c *Cpu) int {
		c.Bus.Write(0xFF00+uint16(c.C()), c.A())
		return 8
	})
	opcodes[0xF2] = op("LD A,(C)", 1, func(c *Cpu) int {
		c.SetA(c.Bus.Read(0xFF00+uint16(c.C()), false))
		return 8
	})
	opcodes[0xEA] = op("LD (a16),A", 3, func(c *Cpu) int {
		c.Bus.Write(c.fetch16(), c.A())
		return 16
	})
	opcodes[0xFA] = op("LD A,(a16)", 3, func(c *Cpu) int {
		c.SetA(c.Bus.Read(c.fetch16(), false))
		return 16
	})

	opcodes[0xE8] = op("ADD SP,e8", 2, func(c *Cpu) int {
		e := int8(c.fetch8())
		res, h, cy := addSPSigned(c.SP, e)
		c.SP = res
		c.setFlags(false, false, h, cy)
		return 16
	})
	opcodes[0xF8] = op("LD HL,SP+e8", 2, func(c *Cpu) int {
		e := int8(c.fetch8())
		res, h, cy := addSPSigned(c.SP, e)
		c.HL = res
		c.setFlags(false, false, h, cy)
		return 12
	})
	opcodes[0xF9] = op("LD SP,HL", 1, func(c *Cpu) int { c.SP = c.HL; return 8 })

	opcodes[0xCB] = op("PREFIX CB", 1, func(c *Cpu) int {
		panic("cpu: 0xCB must be intercepted by Tick before dispatch")
	})
}
