// Package cpu implements the Sharp LR35902, the 8-bit CPU at the heart of
// the handheld console this module emulates.
package cpu

import "dmgcore/mem"

// Interrupt Enable/Flag bit positions, highest to lowest priority.
const (
	intVBlank = iota
	intLCDSTAT
	intTimer
	intSerial
	intJoypad
)

const ifAddr = 0xFF0F

// Cpu holds the full LR35902 register file and the handful of latches
// (IME, the EI delay, HALT/STOP) that aren't addressable memory but still
// participate in instruction execution. It has no memory of its own; every
// read and write is routed through Bus.
type Cpu struct {
	Bus *mem.Bus

	AF, BC, DE, HL, SP, PC uint16

	// IME gates whether a pending, enabled interrupt is actually
	// serviced. EI does not set it immediately -- it schedules IME to
	// become true after the instruction that follows EI, which
	// imeScheduled tracks.
	IME          bool
	imeScheduled bool

	Halted  bool
	Stopped bool
}

// New returns a Cpu wired to bus, in the power-on state: every register
// zero except SP = 0xFFFE, PC = 0x0000 and IME cleared. No boot ROM is run.
func New(bus *mem.Bus) *Cpu {
	return &Cpu{
		Bus: bus,
		SP:  0xFFFE,
		PC:  0x0000,
	}
}

// Tick runs one step of the fetch/decode/execute cycle and returns the
// number of clock cycles it took. A pending, enabled interrupt is
// serviced in place of the next instruction; HALT holds PC in place,
// consuming 4 cycles per tick, until an interrupt becomes pending.
func (c *Cpu) Tick() (int, error) {
	if serviced, cycles := c.ServiceInterrupts(); serviced {
		return cycles, nil
	}

	if c.Halted {
		return 4, nil
	}

	scheduled := c.imeScheduled
	pc := c.PC
	b := c.fetch8()

	var cycles int
	if b == 0xCB {
		cbByte := c.fetch8()
		entry := cbOpcodes[cbByte]
		if entry.Exec == nil {
			return 0, &DecodeError{PC: pc, Op: b, CBOp: cbByte, IsCB: true}
		}
		cycles = entry.Exec(c)
	} else {
		entry := opcodes[b]
		if entry.Exec == nil {
			return 0, &DecodeError{PC: pc, Op: b}
		}
		cycles = entry.Exec(c)
	}

	if scheduled {
		c.IME = true
		c.imeScheduled = false
	}
	return cycles, nil
}

// ServiceInterrupts checks IE & IF for a pending interrupt and, if IME is
// set, dispatches the highest-priority one: pushes PC, jumps to its
// vector (0x40 + bit*8), clears IME and the serviced IF bit, and reports
// the 20 cycles that takes. A pending interrupt always clears Halted, even
// when IME is false and the interrupt itself is not serviced, since on
// real hardware HALT exits on any pending-and-enabled interrupt
// regardless of IME.
func (c *Cpu) ServiceInterrupts() (serviced bool, cycles int) {
	ifVal := c.Bus.Read(ifAddr, false)
	pending := c.Bus.IE & ifVal & 0x1F
	if pending == 0 {
		return false, 0
	}
	c.Halted = false
	if !c.IME {
		return false, 0
	}

	for bit := byte(0); bit < 5; bit++ {
		if pending&(1<<bit) == 0 {
			continue
		}
		c.IME = false
		c.imeScheduled = false
		c.Bus.Write(ifAddr, ifVal&^(1<<bit))
		c.push16(c.PC)
		c.PC = 0x40 + uint16(bit)*8
		return true, 20
	}
	return false, 0
}
