// This file is part of the C64 chip ensemble.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"github.com/c64ensemble/c64/curated"
	"github.com/c64ensemble/c64/hardware/memory/cartridge"
)

// page identifies which of the sixteen 4 KiB windows in the address space an
// address falls in. The processor port and the cartridge's GAME/EXROM lines
// only ever change what each page maps to, never how many pages there are,
// so the lookup tables below are always exactly sixteen entries long.
type page int

const (
	pageRAM page = iota
	pageBasic
	pageCartLo
	pageCartHi
	pageCharacter
	pageIO
	pageKernal
)

// IO is the set of chips mapped into $D000-$DFFF when CHAREN is set and the
// processor port isn't hiding the I/O page behind RAM.
type IO interface {
	// VIC-II occupies $D000-$D3FF (mirrored to $D3FF).
	VICRead(address uint16) (uint8, error)
	VICWrite(address uint16, value uint8) error
	VICPeek(address uint16) (uint8, error)

	// SID occupies $D400-$D7FF (mirrored).
	SIDRead(address uint16) (uint8, error)
	SIDWrite(address uint16, value uint8) error
	SIDPeek(address uint16) (uint8, error)

	// Color RAM's low nibble occupies $D800-$DBFF.
	ColorRead(address uint16) (uint8, error)
	ColorWrite(address uint16, value uint8) error

	// CIA1 occupies $DC00-$DCFF (mirrored).
	CIA1Read(address uint16) (uint8, error)
	CIA1Write(address uint16, value uint8) error
	CIA1Peek(address uint16) (uint8, error)

	// CIA2 occupies $DD00-$DDFF (mirrored).
	CIA2Read(address uint16) (uint8, error)
	CIA2Write(address uint16, value uint8) error
	CIA2Peek(address uint16) (uint8, error)
}

// Memory is the C64's 64 KiB address space: 64 KiB of RAM, the Basic,
// Character and Kernal ROMs, the expansion port and the I/O page, arbitrated
// by the sixteen-entry peek/poke lookup tables that mirror the 8701/PLA's
// behavior.
type Memory struct {
	ram       [65536]byte
	colorRAM  [1024]byte
	basicROM  [8192]byte
	charROM   [4096]byte
	kernalROM [8192]byte

	io IO

	cart cartridge.CartMapper

	// port is the CPU's own memory-mapped I/O at $0000/$0001: the data
	// direction register and the output latch for the six processor port
	// lines. Only the low three bits (LORAM, HIRAM, CHAREN) affect memory
	// mapping; the rest drive the datasette.
	portDDR    uint8
	portOutput uint8

	// readTable/writeTable classify every one of the sixteen 4 KiB pages so
	// Read/Write/Peek/Poke never have to re-derive banking state on every
	// access. They are rebuilt by updateBanking whenever the processor port
	// or the cartridge's GAME/EXROM lines change.
	readTable  [16]page
	writeTable [16]page
	ultimax    bool
}

// NewMemory constructs a Memory with all ROM images loaded and the
// processor port at its power-on default (everything mapped in).
func NewMemory(basic, char, kernal []byte) (*Memory, error) {
	mem := &Memory{
		portDDR:    0x2f,
		portOutput: 0x37,
	}
	if len(basic) != len(mem.basicROM) {
		return nil, curated.Errorf("memory: basic ROM wrong size (%d)", len(basic))
	}
	if len(char) != len(mem.charROM) {
		return nil, curated.Errorf("memory: character ROM wrong size (%d)", len(char))
	}
	if len(kernal) != len(mem.kernalROM) {
		return nil, curated.Errorf("memory: kernal ROM wrong size (%d)", len(kernal))
	}
	copy(mem.basicROM[:], basic)
	copy(mem.charROM[:], char)
	copy(mem.kernalROM[:], kernal)
	mem.updateBanking()
	return mem, nil
}

// AttachIO wires the VIC-II/SID/CIA1/CIA2 chip set into the $D000-$DFFF
// window. Called once during machine construction.
func (mem *Memory) AttachIO(io IO) {
	mem.io = io
}

// AttachCartridge inserts a CartMapper into the expansion port and
// recomputes the banking tables from its GAME/EXROM lines. Passing nil
// removes the cartridge, restoring plain RAM/ROM/IO banking.
func (mem *Memory) AttachCartridge(cart cartridge.CartMapper) {
	mem.cart = cart
	mem.updateBanking()
}

// loram/hiram/charen decode the processor port output latch, masked by the
// data direction register: an input-configured pin floats and reads back as
// whatever was last driven, but for banking purposes we only care about
// pins configured as outputs and actually drivable, so unset DDR bits fall
// back to the chip's pull-up default of 1.
func (mem *Memory) portBit(bit uint8) bool {
	if mem.portDDR&bit == 0 {
		return true
	}
	return mem.portOutput&bit != 0
}

func (mem *Memory) loram() bool  { return mem.portBit(0x01) }
func (mem *Memory) hiram() bool  { return mem.portBit(0x02) }
func (mem *Memory) charen() bool { return mem.portBit(0x04) }

// updateBanking rebuilds the sixteen-entry read/write lookup tables. It
// must be called after any write to $0000/$0001 and after the cartridge's
// GAME/EXROM lines change.
func (mem *Memory) updateBanking() {
	game, exrom := true, true
	if mem.cart != nil {
		game, exrom = mem.cart.GAME(), mem.cart.EXROM()
	}
	mem.ultimax = !game && exrom

	loram, hiram, charen := mem.loram(), mem.hiram(), mem.charen()

	for p := 0; p < 16; p++ {
		addr := uint16(p) * 0x1000
		mem.readTable[p] = pageRAM
		mem.writeTable[p] = pageRAM

		switch {
		case mem.ultimax:
			switch {
			case addr < 0x1000:
				mem.readTable[p] = pageRAM
			case addr >= 0x8000 && addr < 0xa000:
				mem.readTable[p] = pageCartLo
			case addr >= 0xd000 && addr < 0xe000:
				mem.readTable[p] = pageIO
			case addr >= 0xe000:
				mem.readTable[p] = pageCartHi
			default:
				mem.readTable[p] = pageRAM
			}
			mem.writeTable[p] = pageRAM

		case addr >= 0xe000:
			if hiram {
				mem.readTable[p] = pageKernal
			}
		case addr >= 0xd000 && addr < 0xe000:
			if charen && (hiram || loram) {
				mem.readTable[p] = pageIO
			} else if !charen && (hiram || loram) {
				mem.readTable[p] = pageCharacter
			}
		case addr >= 0xa000 && addr < 0xc000:
			if hiram && loram && !exrom {
				mem.readTable[p] = pageCartHi
			} else if hiram && loram {
				mem.readTable[p] = pageBasic
			}
		case addr >= 0x8000 && addr < 0xa000:
			if !exrom {
				mem.readTable[p] = pageCartLo
			}
		}
	}
}

// rawRead reads address from the region p names; Read picks p from the
// read table.
func (mem *Memory) rawRead(p page, address uint16) (uint8, error) {
	switch p {
	case pageRAM:
		return mem.ram[address], nil
	case pageBasic:
		return mem.basicROM[address-0xa000], nil
	case pageCharacter:
		return mem.charROM[address-0xd000], nil
	case pageKernal:
		return mem.kernalROM[address-0xe000], nil
	case pageCartLo, pageCartHi:
		if mem.cart == nil {
			return mem.ram[address], nil
		}
		if v, ok := mem.cart.Peek(address); ok {
			return v, nil
		}
		return mem.ram[address], nil
	case pageIO:
		return mem.readIO(address)
	}
	return 0, curated.Errorf(AddressError, address)
}

func (mem *Memory) readIO(address uint16) (uint8, error) {
	switch {
	case address < 0xd400:
		if mem.io != nil {
			return mem.io.VICRead(address)
		}
	case address < 0xd800:
		if mem.io != nil {
			return mem.io.SIDRead(address)
		}
	case address < 0xdc00:
		if mem.io != nil {
			return mem.io.ColorRead(address)
		}
		return mem.colorRAM[address-0xd800] & 0x0f, nil
	case address < 0xdd00:
		if mem.io != nil {
			return mem.io.CIA1Read(address)
		}
	case address < 0xde00:
		if mem.io != nil {
			return mem.io.CIA2Read(address)
		}
	case address < 0xdf00:
		if mem.cart != nil {
			if v, ok := mem.cart.PeekIO1(address); ok {
				return v, nil
			}
		}
	default:
		if mem.cart != nil {
			if v, ok := mem.cart.PeekIO2(address); ok {
				return v, nil
			}
		}
	}
	return 0, nil
}

// Read implements Bus. Reading $0000/$0001 returns the DDR and output
// latch rather than falling through to the lookup table.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address == 0x0000 {
		return mem.portDDR, nil
	}
	if address == 0x0001 {
		return mem.portOutput, nil
	}
	p := mem.readTable[address>>12]
	return mem.rawRead(p, address)
}

// Peek is Read without side effects (colour RAM excepted, which has none).
func (mem *Memory) Peek(address uint16) (uint8, error) {
	if address > 0x0001 && mem.readTable[address>>12] == pageIO && mem.io != nil {
		switch {
		case address < 0xd400:
			return mem.io.VICPeek(address)
		case address < 0xd800:
			return mem.io.SIDPeek(address)
		case address < 0xdc00:
			return mem.io.ColorRead(address)
		case address < 0xdd00:
			return mem.io.CIA1Peek(address)
		case address < 0xde00:
			return mem.io.CIA2Peek(address)
		}
	}
	return mem.Read(address)
}

// Write implements Bus.
func (mem *Memory) Write(address uint16, value uint8) error {
	if address == 0x0000 {
		mem.portDDR = value
		mem.updateBanking()
		return nil
	}
	if address == 0x0001 {
		mem.portOutput = value
		mem.updateBanking()
		return nil
	}

	// RAM is always writable underneath ROM and cartridge banks, per the
	// 6510's real bus behaviour: a ROM/cartridge mapping only affects what
	// is read back, never what a write lands on, except in the ROML/ROMH
	// windows of a cartridge that claims the write for on-board RAM.
	if mem.readTable[address>>12] == pageCartLo || mem.readTable[address>>12] == pageCartHi {
		if mem.cart != nil && mem.cart.Poke(address, value) {
			return nil
		}
	}
	if mem.readTable[address>>12] == pageIO {
		return mem.writeIO(address, value)
	}

	mem.ram[address] = value
	return nil
}

func (mem *Memory) writeIO(address uint16, value uint8) error {
	switch {
	case address < 0xd400:
		if mem.io != nil {
			return mem.io.VICWrite(address, value)
		}
	case address < 0xd800:
		if mem.io != nil {
			return mem.io.SIDWrite(address, value)
		}
	case address < 0xdc00:
		if mem.io != nil {
			return mem.io.ColorWrite(address, value)
		}
		mem.colorRAM[address-0xd800] = value & 0x0f
		return nil
	case address < 0xdd00:
		if mem.io != nil {
			return mem.io.CIA1Write(address, value)
		}
	case address < 0xde00:
		if mem.io != nil {
			return mem.io.CIA2Write(address, value)
		}
	case address < 0xdf00:
		if mem.cart != nil {
			mem.cart.PokeIO1(address, value)
			mem.updateBanking()
		}
	default:
		if mem.cart != nil {
			mem.cart.PokeIO2(address, value)
			mem.updateBanking()
		}
	}
	return nil
}

// Poke writes directly to RAM, whatever the read table maps over the
// address, bypassing the processor port and I/O side effects that Write
// triggers. Used by the
// debugger and by disk/tape loaders populating memory before a RUN.
func (mem *Memory) Poke(address uint16, value uint8) error {
	mem.ram[address] = value
	return nil
}

// SeedRAM re-initialises RAM the way the 6510's power-on/reset behaviour
// does: real 6510 RAM comes up in a repeating 0x00,0x00,0xff,0xff pattern
// set by the chip's internal pull-ups, not all zero. When randomise is
// true and rnd is non-nil, each byte is drawn from rnd instead, modelling
// a machine whose RAM cells power up in less predictable states.
func (mem *Memory) SeedRAM(randomise bool, rnd func() uint8) {
	for i := range mem.ram {
		if randomise && rnd != nil {
			mem.ram[i] = rnd()
			continue
		}
		if i%4 < 2 {
			mem.ram[i] = 0x00
		} else {
			mem.ram[i] = 0xff
		}
	}
}

// ColorRAM exposes the raw nibble-wide colour RAM to the VIC-II package,
// which reads it directly rather than through the CPU's I/O window.
func (mem *Memory) ColorRAM() *[1024]byte {
	return &mem.colorRAM
}

// RAM exposes the flat 64 KiB backing array, used by the VIC-II for
// character/bitmap/sprite DMA and by the snapshot package.
func (mem *Memory) RAM() *[65536]byte {
	return &mem.ram
}

// CharROM exposes the character generator ROM, which the VIC-II reads
// directly (bypassing CPU-side banking entirely) whenever its own bank
// select puts $1000-$1FFF over the character generator, per the C64's
// hardwired VIC address decode.
func (mem *Memory) CharROM() *[4096]byte {
	return &mem.charROM
}
