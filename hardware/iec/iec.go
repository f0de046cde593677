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

// Package iec implements the three-line serial bus (ATN, CLK, DATA)
// connecting the C64's CIA2 to one or more VC1541 drives' VIA1. Every
// line is open-collector, wired-OR: a line reads low if any device on
// the bus is pulling it low, and high only when every device has
// released it.
package iec

// Line identifies one of the bus's three signal wires.
type Line int

const (
	ATN Line = iota
	CLK
	DATA
	numLines
)

// Bus is the shared wired-OR bus state. The machine package owns one Bus
// and gives every device (the computer's CIA2, each drive's VIA1) a
// Device handle to drive it through.
type Bus struct {
	drivers []*Device
	levels  [numLines]bool // computed levels, true = high (released)
	dirty   bool
}

// Device is one participant's view of the bus: the lines it is currently
// pulling low, and the bus it reads combined levels back from.
type Device struct {
	bus     *Bus
	pulling [numLines]bool
}

// New constructs an empty bus.
func New() *Bus {
	b := &Bus{}
	for i := range b.levels {
		b.levels[i] = true
	}
	return b
}

// Attach registers a new device on the bus, returning its handle.
func (b *Bus) Attach() *Device {
	d := &Device{bus: b}
	b.drivers = append(b.drivers, d)
	return d
}

// recompute ORs every attached device's pull-down state onto each line: a
// line is low (false) if any device pulls it low.
func (b *Bus) recompute() {
	if !b.dirty {
		return
	}
	for l := 0; l < int(numLines); l++ {
		high := true
		for _, d := range b.drivers {
			if d.pulling[l] {
				high = false
				break
			}
		}
		b.levels[l] = high
	}
	b.dirty = false
}

// Level reports the bus's current combined level for line: true means
// released (pulled up to +5V by the bus's own pull-up resistors), false
// means at least one device is pulling it low.
func (b *Bus) Level(line Line) bool {
	b.recompute()
	return b.levels[line]
}

// Drive sets or releases this device's pull-down on a line. Calling Drive
// with asserted=true pulls the line low; asserted=false releases it,
// letting the bus float high unless another device is still pulling it
// down.
func (d *Device) Drive(line Line, asserted bool) {
	if d.pulling[line] == asserted {
		return
	}
	d.pulling[line] = asserted
	d.bus.dirty = true
}

// Read reports the bus's combined level for line, as this device would
// see it on its own input pin (including its own pull-down, since a
// device that is itself pulling a line low reads that line as low too).
func (d *Device) Read(line Line) bool {
	return d.bus.Level(line)
}
