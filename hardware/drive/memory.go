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

package drive

import "github.com/c64ensemble/c64/curated"

// AddressError mirrors the main memory package's sentinel for addresses
// with no defined effect.
const AddressError = "drive: address error (%v)"

// Memory is the VC1541's own 6502 address space: 2KiB of RAM at
// $0000-$07FF (mirrored at $0800 and $1000), VIA1 at $1800-$1BFF, VIA2 at
// $1C00-$1FFF, and a 16KiB ROM filling $C000-$FFFF.
type Memory struct {
	ram  [2048]byte
	rom  [16384]byte
	via1 *VIA
	via2 *VIA
}

// NewMemory builds a drive memory space around the two VIAs and the
// supplied 16KiB ROM image (the 1541's DOS, usually loaded from a file
// such as dos1541).
func NewMemory(rom []byte, via1, via2 *VIA) (*Memory, error) {
	if len(rom) != 16384 {
		return nil, curated.Errorf(AddressError, "ROM must be exactly 16384 bytes")
	}
	m := &Memory{via1: via1, via2: via2}
	copy(m.rom[:], rom)
	return m, nil
}

func (m *Memory) decode(address uint16) (region byte, offset uint16) {
	switch {
	case address >= 0x1800 && address < 0x1c00:
		return '1', address & 0x0f
	case address >= 0x1c00 && address < 0x2000:
		return '2', address & 0x0f
	case address < 0x2000:
		return 'r', address & 0x07ff
	case address >= 0xc000:
		return 'R', address - 0xc000
	}
	return 0, 0
}

func (m *Memory) Read(address uint16) (uint8, error) {
	region, offset := m.decode(address)
	switch region {
	case 'r':
		return m.ram[offset], nil
	case '1':
		return m.via1.Read(uint8(offset)), nil
	case '2':
		return m.via2.Read(uint8(offset)), nil
	case 'R':
		return m.rom[offset], nil
	}
	return 0, curated.Errorf(AddressError, address)
}

func (m *Memory) Write(address uint16, value uint8) error {
	region, offset := m.decode(address)
	switch region {
	case 'r':
		m.ram[offset] = value
	case '1':
		m.via1.Write(uint8(offset), value)
	case '2':
		m.via2.Write(uint8(offset), value)
	case 'R':
		// ROM: writes have no effect.
	default:
		return curated.Errorf(AddressError, address)
	}
	return nil
}

// Peek/Poke are side-effect-free variants used by snapshot tooling; VIA
// register reads are not idempotent (several clear interrupt flags) so
// Peek returns the raw output latch state instead of routing through
// VIA.Read.
func (m *Memory) Peek(address uint16) (uint8, error) {
	region, offset := m.decode(address)
	switch region {
	case 'r':
		return m.ram[offset], nil
	case '1':
		return m.via1.OutputA(), nil
	case '2':
		return m.via2.OutputA(), nil
	case 'R':
		return m.rom[offset], nil
	}
	return 0, curated.Errorf(AddressError, address)
}

func (m *Memory) Poke(address uint16, value uint8) error {
	region, _ := m.decode(address)
	if region == 'r' {
		return m.Write(address, value)
	}
	return nil
}
