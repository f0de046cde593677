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

// Package memory implements the C64 64 KiB address space: RAM, the Basic,
// Character and Kernal ROMs, the color RAM nybbles, the I/O page, and the
// sixteen-entry peek/poke lookup tables the PLA-equivalent logic recomputes
// whenever the processor port, or the expansion port's GAME/EXROM lines,
// change.
package memory

// AddressError is the sentinel pattern returned (wrapped) when an access
// falls on an address that is legal to issue but has no defined effect at
// the moment of access. A write to a ROM-mapped page is not such an access
// for the C64's Memory: it lands in the RAM underneath. Bus.Read and
// Bus.Write never fail for any other reason: every address in 0-0xffff has
// -some- defined behavior once the lookup tables are built.
const AddressError = "memory: address error (%v)"

// Bus is the interface the CPU (and the VIC-II's DMA accesses) use to read
// and write the address space. Both the C64's main Memory and the VC1541's
// drive-side Memory implement it.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error

	// Peek and Poke are Read/Write without side effects, used by snapshot
	// inspection and debugging tools.
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
