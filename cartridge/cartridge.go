// Package cartridge models the minimal cartridge collaborator the CPU core
// talks to through the memory bus: a flat ROM image split into bank 0 and a
// single fixed bank N, plus a fixed-size block of cartridge RAM.
//
// Multi-bank switching is explicitly out of scope (see spec.md Non-goals);
// HandleBankWrite exists as the seam a bank controller would occupy.
package cartridge

import (
	"errors"
	"fmt"
	"os"
)

const (
	// BankSize is the size of one 16 KiB ROM bank (bank 0 or bank N).
	BankSize = 0x4000
	// Capacity is the default ROM capacity of the minimal cartridge model:
	// bank 0 + bank N, no switching.
	Capacity = BankSize * 2
	// RAMSize is the size of the cartridge RAM region (0xA000-0xBFFF).
	RAMSize = 0x2000
)

// ErrROMTooLarge is returned by Load/FromBytes when the supplied image
// exceeds Capacity.
var ErrROMTooLarge = errors.New("cartridge: ROM too large")

// Cartridge owns the ROM and RAM backing storage behind the cart-facing
// regions of the memory map.
type Cartridge struct {
	rom [Capacity]byte
	ram [RAMSize]byte
}

// Load reads a ROM image from path and fails if it exceeds Capacity.
func Load(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: read %s: %w", path, err)
	}
	return FromBytes(data)
}

// FromBytes builds a Cartridge from an in-memory ROM image, zero-padding a
// short image up to Capacity so bus reads never run past the backing array.
func FromBytes(data []byte) (*Cartridge, error) {
	if len(data) > Capacity {
		return nil, fmt.Errorf("%w: %d bytes, capacity %d", ErrROMTooLarge, len(data), Capacity)
	}
	c := &Cartridge{}
	copy(c.rom[:], data)
	return c, nil
}

// ReadROM0 reads a byte from bank 0 (0x0000-0x3FFF), addr relative to 0.
func (c *Cartridge) ReadROM0(addr uint16) byte { return c.rom[addr] }

// ReadROMN reads a byte from bank N (0x4000-0x7FFF), addr relative to 0x4000.
func (c *Cartridge) ReadROMN(addr uint16) byte { return c.rom[BankSize+addr] }

// HandleBankWrite is the seam a real bank controller would intercept to
// switch banks or enable RAM. The minimal cartridge model has no banking
// logic, so writes into the ROM address range are simply discarded here —
// they must never reach rom's backing storage.
func (c *Cartridge) HandleBankWrite(addr uint16, val byte) {
	_, _ = addr, val
}

// ReadRAM reads a byte from cartridge RAM, offset relative to 0xA000.
func (c *Cartridge) ReadRAM(offset uint16) byte { return c.ram[offset] }

// WriteRAM writes a byte to cartridge RAM, offset relative to 0xA000.
func (c *Cartridge) WriteRAM(offset uint16, val byte) { c.ram[offset] = val }
