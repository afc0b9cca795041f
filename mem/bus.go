// Package mem is the central (global) object that connects the CPU to every
// other 'hardware' component through a single flat 64 KiB address space.
//
// Unlike the NES's split CPU/PPU buses, the LR35902 address space is a
// single linear map: a Bus routes each address to the backing region that
// owns it (ROM, VRAM, cart RAM, WRAM, OAM, I/O, HRAM, IE) rather than
// indexing one giant array directly, since several regions (ROM, the WRAM
// echo) must NOT behave like plain flat storage.
package mem

import "dmgcore/cartridge"

// Address map, per the LR35902 memory model:
//
//	0x0000-0x3FFF  cartridge ROM bank 0
//	0x4000-0x7FFF  cartridge ROM bank N
//	0x8000-0x9FFF  VRAM
//	0xA000-0xBFFF  cartridge RAM
//	0xC000-0xDFFF  WRAM
//	0xE000-0xFDFF  WRAM echo (mirror of 0xC000-0xDDFF)
//	0xFE00-0xFE9F  OAM
//	0xFEA0-0xFEFF  unusable, reads as 0xFF, writes discarded
//	0xFF00-0xFF7F  I/O registers
//	0xFF80-0xFFFE  HRAM
//	0xFFFF         IE (interrupt enable)
const (
	vramStart  = 0x8000
	cartRAMLo  = 0xA000
	cartRAMHi  = 0xBFFF
	wramStart  = 0xC000
	wramEnd    = 0xDFFF
	echoStart  = 0xE000
	echoEnd    = 0xFDFF
	oamStart   = 0xFE00
	oamEnd     = 0xFE9F
	deadLo     = 0xFEA0
	deadHi     = 0xFEFF
	ioStart    = 0xFF00
	ioEnd      = 0xFF7F
	hramStart  = 0xFF80
	hramEnd    = 0xFFFE
	ieAddr     = 0xFFFF
	romBankEnd = 0x7FFF
)

// Bus owns every RAM-backed region of the address space and a reference to
// the Cartridge supplying ROM and cart RAM. It never allocates ROM storage
// itself; the Cartridge does.
type Bus struct {
	Cart *cartridge.Cartridge

	VRAM [0x2000]byte
	WRAM [0x2000]byte
	OAM  [0xA0]byte
	IO   [0x80]byte
	HRAM [0x7F]byte
	IE   byte
}

// New wires a Bus to the given Cartridge. The cartridge is never nil in
// practice; a Bus with a nil Cart will panic on the first ROM access, which
// is preferable to silently reading zeros.
func New(cart *cartridge.Cartridge) *Bus {
	return &Bus{Cart: cart}
}

// Read returns the byte at addr. readonly is accepted for parity with
// debugger callers that must not trigger read side effects; the current
// memory model has none, so it is otherwise unused.
func (b *Bus) Read(addr uint16, readonly bool) byte {
	_ = readonly
	switch {
	case addr <= romBankEnd:
		return b.readROM(addr)
	case addr < cartRAMLo: // 0x8000-0x9FFF
		return b.VRAM[addr-vramStart]
	case addr <= cartRAMHi: // 0xA000-0xBFFF
		return b.Cart.ReadRAM(addr - cartRAMLo)
	case addr <= wramEnd: // 0xC000-0xDFFF
		return b.WRAM[addr-wramStart]
	case addr <= echoEnd: // 0xE000-0xFDFF, mirrors 0xC000-0xDDFF
		return b.WRAM[addr-echoStart]
	case addr <= oamEnd: // 0xFE00-0xFE9F
		return b.OAM[addr-oamStart]
	case addr <= deadHi: // 0xFEA0-0xFEFF, unusable
		return 0xFF
	case addr <= ioEnd: // 0xFF00-0xFF7F
		return b.IO[addr-ioStart]
	case addr <= hramEnd: // 0xFF80-0xFFFE
		return b.HRAM[addr-hramStart]
	default: // 0xFFFF
		return b.IE
	}
}

// Write stores data at addr, routing it to the owning region. Writes into
// the WRAM echo land in real WRAM (0xC000-0xDDFF), never in a separate
// echo buffer, so that a write through either alias is visible through the
// other. Writes into the unusable gap (0xFEA0-0xFEFF) are discarded.
func (b *Bus) Write(addr uint16, data byte) {
	switch {
	case addr <= romBankEnd:
		b.Cart.HandleBankWrite(addr, data)
	case addr < cartRAMLo: // 0x8000-0x9FFF
		b.VRAM[addr-vramStart] = data
	case addr <= cartRAMHi: // 0xA000-0xBFFF
		b.Cart.WriteRAM(addr-cartRAMLo, data)
	case addr <= wramEnd: // 0xC000-0xDFFF
		b.WRAM[addr-wramStart] = data
	case addr <= echoEnd: // 0xE000-0xFDFF, mirrors 0xC000-0xDDFF
		b.WRAM[addr-echoStart] = data
	case addr <= oamEnd: // 0xFE00-0xFE9F
		b.OAM[addr-oamStart] = data
	case addr <= deadHi: // 0xFEA0-0xFEFF, discarded
		return
	case addr <= ioEnd: // 0xFF00-0xFF7F
		b.IO[addr-ioStart] = data
	case addr <= hramEnd: // 0xFF80-0xFFFE
		b.HRAM[addr-hramStart] = data
	default: // 0xFFFF
		b.IE = data
	}
}

func (b *Bus) readROM(addr uint16) byte {
	if addr < 0x4000 {
		return b.Cart.ReadROM0(addr)
	}
	return b.Cart.ReadROMN(addr - 0x4000)
}

// Read16 and Write16 read/write a little-endian 16-bit value, the native
// word order of the LR35902 (low byte at the lower address).
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read(addr, false))
	hi := uint16(b.Read(addr+1, false))
	return lo | hi<<8
}

func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write(addr, byte(v))
	b.Write(addr+1, byte(v>>8))
}
