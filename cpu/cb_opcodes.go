package cpu

// CBOpcode mirrors Opcode but for the 0xCB-prefixed page. It has no Length
// field: every CB instruction is 2 bytes (the 0xCB byte plus this one), and
// Tick fetches both bytes itself before indexing this table.
type CBOpcode struct {
	Name string
	Exec func(c *Cpu) int
}

var cbOpcodes [256]CBOpcode

func cbop(name string, exec func(c *Cpu) int) CBOpcode {
	return CBOpcode{Name: name, Exec: exec}
}

// Every byte of the CB page decomposes as group*0x40 + y*8 + r: group
// selects the operation family, r selects the r8 operand (the same B C D
// E H L (HL) A order as the unprefixed page), and y means different
// things per group -- one of 8 rotate/shift kernels in group 0, or the bit
// index n in groups 1-3 (BIT/RES/SET).
func init() {
	r8Names := [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

	for r := byte(0); r < 8; r++ {
		r := r
		cycles := 8
		if r == 6 {
			cycles = 16
		}
		bitCycles := 8
		if r == 6 {
			bitCycles = 12
		}

		cbOpcodes[0x00+r] = cbop("RLC "+r8Names[r], func(c *Cpu) int { c.applyRotShift(rlc, r); return cycles })
		cbOpcodes[0x08+r] = cbop("RRC "+r8Names[r], func(c *Cpu) int { c.applyRotShift(rrc, r); return cycles })
		cbOpcodes[0x10+r] = cbop("RL "+r8Names[r], func(c *Cpu) int {
			c.applyRotShift(func(v byte) (byte, bool) { return rl(v, c.FlagC()) }, r)
			return cycles
		})
		cbOpcodes[0x18+r] = cbop("RR "+r8Names[r], func(c *Cpu) int {
			c.applyRotShift(func(v byte) (byte, bool) { return rr(v, c.FlagC()) }, r)
			return cycles
		})
		cbOpcodes[0x20+r] = cbop("SLA "+r8Names[r], func(c *Cpu) int { c.applyRotShift(sla, r); return cycles })
		cbOpcodes[0x28+r] = cbop("SRA "+r8Names[r], func(c *Cpu) int { c.applyRotShift(sra, r); return cycles })
		cbOpcodes[0x30+r] = cbop("SWAP "+r8Names[r], func(c *Cpu) int { c.applySwap(r); return cycles })
		cbOpcodes[0x38+r] = cbop("SRL "+r8Names[r], func(c *Cpu) int { c.applyRotShift(srl, r); return cycles })

		for n := byte(0); n < 8; n++ {
			n := n
			cbOpcodes[0x40+n*8+r] = cbop("BIT", func(c *Cpu) int { c.bit(n, r); return bitCycles })
			cbOpcodes[0x80+n*8+r] = cbop("RES", func(c *Cpu) int { c.res(n, r); return cycles })
			cbOpcodes[0xC0+n*8+r] = cbop("SET", func(c *Cpu) int { c.set(n, r); return cycles })
		}
	}
}
