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

package hardware

import "github.com/c64ensemble/c64/hardware/iec"

// This file implements memory.IO on *C64, routing the $D000-$DFFF window
// to the VIC-II, SID, colour RAM and the two CIAs. CIA1 and CIA2 accesses
// also drive the peripherals wired to their ports: CIA1's before every
// access, since the keyboard/joystick readback depends on what the
// kernal has just driven onto its own port A; CIA2's after every write,
// since the IEC bus and the VIC bank only change in response to the
// computer's own output.

// VICRead/VICWrite/VICPeek delegate straight through; VIC-II already
// implements the full $D000-$D3FF register decode itself.
func (c *C64) VICRead(address uint16) (uint8, error)  { return c.VIC.VICRead(address) }
func (c *C64) VICWrite(address uint16, v uint8) error { return c.VIC.VICWrite(address, v) }
func (c *C64) VICPeek(address uint16) (uint8, error)  { return c.VIC.VICPeek(address) }

// SIDRead/SIDWrite/SIDPeek. SID registers are write-only except for the
// four read-back registers (POTX, POTY, oscillator 3, envelope 3), none
// of which have read side effects, so Peek is just Read.
func (c *C64) SIDRead(address uint16) (uint8, error) {
	return c.SID.Read(uint8(address & 0x1f)), nil
}
func (c *C64) SIDWrite(address uint16, v uint8) error {
	c.SID.Write(uint8(address&0x1f), v)
	return nil
}
func (c *C64) SIDPeek(address uint16) (uint8, error) {
	return c.SID.Read(uint8(address & 0x1f)), nil
}

// ColorRead/ColorWrite. Colour RAM is four bits wide; the top nibble
// floats. By default this emulation models the floating nibble as all
// set, the common real-hardware behaviour; if RandomPins is enabled in
// preferences it returns noise instead, for programs that need shaking
// out of an accidental dependency on the floating value.
func (c *C64) ColorRead(address uint16) (uint8, error) {
	v := c.Mem.ColorRAM()[address&0x03ff]
	if c.Env != nil {
		if noisy, _ := c.Env.Prefs.RandomPins.Get().(bool); noisy {
			return v | uint8(c.Env.Random.Intn(16))<<4, nil
		}
	}
	return v | 0xf0, nil
}
func (c *C64) ColorWrite(address uint16, v uint8) error {
	c.Mem.ColorRAM()[address&0x03ff] = v & 0x0f
	return nil
}

// CIA1Read/CIA1Write/CIA1Peek. CIA1 port A is the keyboard row select
// (and joystick 2 direction/fire, wired-AND onto the same pins); port B
// is the column readback (wired-AND with joystick 1).
func (c *C64) CIA1Read(address uint16) (uint8, error) {
	c.syncCIA1Ports()
	v := c.CIA1.Read(uint8(address & 0x0f))
	c.updateIRQ()
	return v, nil
}
func (c *C64) CIA1Write(address uint16, v uint8) error {
	c.CIA1.Write(uint8(address&0x0f), v)
	c.syncCIA1Ports()
	c.updateIRQ()
	return nil
}
func (c *C64) CIA1Peek(address uint16) (uint8, error) {
	c.syncCIA1Ports()
	return c.CIA1.Peek(uint8(address & 0x0f)), nil
}

// syncCIA1Ports feeds the keyboard matrix and both joysticks' current
// state into CIA1's input latches, using whatever row-select the kernal
// has most recently driven onto port A.
func (c *C64) syncCIA1Ports() {
	c.CIA1.SetInputA(c.Joystick2.PortBits())
	cols := c.Keyboard.ColumnsFor(c.CIA1.PortA()) & c.Joystick1.PortBits()
	c.CIA1.SetInputB(cols)
}

// CIA2Read/CIA2Write/CIA2Peek. CIA2 port A drives the VIC bank select
// and the IEC bus lines; port B is the user port, unused here.
func (c *C64) CIA2Read(address uint16) (uint8, error) {
	v := c.CIA2.Read(uint8(address & 0x0f))
	c.CPU.SetNMI(c.CIA2.IRQ())
	return v, nil
}
func (c *C64) CIA2Write(address uint16, v uint8) error {
	c.CIA2.Write(uint8(address&0x0f), v)
	c.syncCIA2Ports()
	c.CPU.SetNMI(c.CIA2.IRQ())
	return nil
}
func (c *C64) CIA2Peek(address uint16) (uint8, error) {
	return c.CIA2.Peek(uint8(address & 0x0f)), nil
}

// syncCIA2Ports recomputes the VIC bank and the IEC bus's driven levels
// from CIA2 port A's current output, per the real chip's PRA pinout:
// bits 0-1 VIC bank (active-high, inverted onto the bank number), bit 3
// ATN OUT, bit 4 CLK OUT, bit 5 DATA OUT (all active low), bits 6-7 CLK
// IN/DATA IN (active high, read back from the bus).
func (c *C64) syncCIA2Ports() {
	pa := c.CIA2.PortA()
	c.VIC.SetBank(pa)

	c.cia2Device.Drive(iec.ATN, pa&0x08 == 0)
	c.cia2Device.Drive(iec.CLK, pa&0x10 == 0)
	c.cia2Device.Drive(iec.DATA, pa&0x20 == 0)

	var in uint8
	if c.cia2Device.Read(iec.CLK) {
		in |= 0x40
	}
	if c.cia2Device.Read(iec.DATA) {
		in |= 0x80
	}
	c.CIA2.SetInputA(in)
}
