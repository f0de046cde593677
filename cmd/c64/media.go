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

package main

import (
	"fmt"

	"github.com/c64ensemble/c64/cartridgeloader"
	"github.com/c64ensemble/c64/hardware"
	"github.com/c64ensemble/c64/hardware/drive"
)

// attachMedia fetches path and attaches it to the machine according to its
// file extension: a CRT goes into the expansion port, a D64 into drive 0
// (which must already be attached, i.e. a drive ROM must have been part
// of the ROM set), and a PRG or T64 is poked directly into RAM as if it
// had just been loaded from tape or disk, ready for the user to RUN.
func attachMedia(c *hardware.C64, path string) error {
	if path == "" {
		return nil
	}

	loader := cartridgeloader.NewLoader(path)
	if err := loader.Load(); err != nil {
		return err
	}

	switch loader.Kind() {
	case cartridgeloader.KindCartridge:
		cart, err := loader.Cartridge()
		if err != nil {
			return err
		}
		return c.AttachCartridge(cart)

	case cartridgeloader.KindDisk:
		d := c.Drive(0)
		if d == nil {
			return fmt.Errorf("media: %s is a disk image but no drive is attached (missing 1541.rom)", path)
		}
		disk, err := drive.LoadD64(loader.Data, loader.ShortName())
		if err != nil {
			return err
		}
		d.Insert(disk)
		return nil

	case cartridgeloader.KindProgram, cartridgeloader.KindTape:
		addr, data, err := loader.Program()
		if err != nil {
			return err
		}
		return pokeProgram(c, addr, data)

	default:
		return fmt.Errorf("media: %s: unrecognised file extension", path)
	}
}

// pokeProgram writes data into RAM starting at addr, the way a real
// LOAD"",8,1 leaves the machine positioned for RUN, and nudges BASIC's own
// variables-start pointers so a subsequent RUN or LIST sees exactly this
// program instead of whatever was resident before.
func pokeProgram(c *hardware.C64, addr uint16, data []byte) error {
	for i, b := range data {
		if err := c.Mem.Poke(addr+uint16(i), b); err != nil {
			return err
		}
	}

	if addr != 0x0801 {
		return nil
	}
	end := addr + uint16(len(data))
	for _, ptr := range [...]uint16{0x2d, 0x2f, 0x31} {
		if err := c.Mem.Poke(ptr, uint8(end)); err != nil {
			return err
		}
		if err := c.Mem.Poke(ptr+1, uint8(end>>8)); err != nil {
			return err
		}
	}
	return nil
}
