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

// Package cia implements the MOS 6526 Complex Interface Adapter. Both CIA1
// (keyboard matrix, joystick ports, IRQ line) and CIA2 (serial/IEC bus,
// user port, VIC-II bank select, NMI line) are the same chip wired
// differently, so a single CIA type serves both — the machine package
// decides what its ports connect to.
package cia

// Register offsets within the chip's sixteen-byte page (mirrored every 16
// bytes across its 256-byte I/O window).
const (
	RegPRA = 0x0
	RegPRB = 0x1
	RegDDRA = 0x2
	RegDDRB = 0x3
	RegTALo = 0x4
	RegTAHi = 0x5
	RegTBLo = 0x6
	RegTBHi = 0x7
	RegTODTenths = 0x8
	RegTODSeconds = 0x9
	RegTODMinutes = 0xa
	RegTODHours = 0xb
	RegSDR = 0xc
	RegICR = 0xd
	RegCRA = 0xe
	RegCRB = 0xf
)

// Interrupt flag/mask bits within ICR.
const (
	IntTA  uint8 = 1 << 0
	IntTB  uint8 = 1 << 1
	IntTOD uint8 = 1 << 2
	IntSDR uint8 = 1 << 3
	IntFLG uint8 = 1 << 4
	IntSet uint8 = 1 << 7 // written to ICR to set (vs clear) the masked bits
)

// Ports is the pair of GPIO lines the rest of the machine reads and drives
// through this CIA. Port A and B outputs are ANDed with the DDR before
// being handed to the caller; port inputs are latched every cycle via
// SetPortA/SetPortB.
type Ports struct {
	inA, inB   uint8
	outA, outB uint8
}

// CIA is one 6526 instance.
type CIA struct {
	ports Ports

	ddrA, ddrB uint8

	timerA, timerB           uint16
	latchA, latchB           uint16
	timerARunning, timerBRunning bool
	timerAOneShot, timerBOneShot bool

	// timerBCountsTA makes timer B decrement once per timer-A underflow
	// instead of once per cycle, used by the kernal's jiffy clock and by
	// several disk fast-loaders for microsecond-accurate delays.
	timerBCountsTA bool

	tod     todClock
	todAlarm todClock
	todLatched bool
	todLatchedValue todClock
	todRunning bool

	sdr        uint8
	sdrBits    int
	sdrLoaded  bool

	icrData uint8
	icrMask uint8

	// ca1/ca2/cb1/cb2 model the four edge-triggered control lines. CIA2
	// wires CA2 to the IEC ATN line's own edge, and CIA1's are unused in a
	// stock machine but modelled for completeness.
	ca1, ca2, cb1, cb2 bool
	pcr                uint8

	// taPulse/tbPulse track the PB6/PB7 toggle output some CRA/CRB modes
	// route timer underflows to instead of a one-cycle pulse.
	taPulse, tbPulse bool

	irq bool
}

// todClock is the BCD time-of-day counter: tenths, seconds, minutes, hours
// with bit 7 of hours as AM/PM.
type todClock struct {
	tenths, seconds, minutes, hours uint8
}

// New constructs a CIA with all timers stopped and no interrupts masked.
func New() *CIA {
	return &CIA{ddrA: 0, ddrB: 0}
}

// Reset restores power-on defaults: both ports as inputs, timers stopped,
// ICR mask cleared.
func (c *CIA) Reset() {
	c.ddrA, c.ddrB = 0, 0
	c.ports.outA, c.ports.outB = 0, 0
	c.timerA, c.timerB = 0xffff, 0xffff
	c.latchA, c.latchB = 0xffff, 0xffff
	c.timerARunning, c.timerBRunning = false, false
	c.timerAOneShot, c.timerBOneShot = false, false
	c.timerBCountsTA = false
	c.icrData, c.icrMask = 0, 0
	c.irq = false
	c.tod = todClock{}
	c.todAlarm = todClock{}
	c.todRunning = true
	c.sdrBits = 0
}

// SetInputA/SetInputB feed the chip's port pins from outside (the keyboard
// matrix column driver for CIA1's port B, the IEC bus lines for CIA2's
// port A).
func (c *CIA) SetInputA(v uint8) { c.ports.inA = v }
func (c *CIA) SetInputB(v uint8) { c.ports.inB = v }

// PortA/PortB report the pin state the outside world sees: driven bits
// come from the output latch, floating (input-configured) bits come from
// whatever was last fed in via SetInputA/SetInputB.
func (c *CIA) PortA() uint8 {
	return (c.ports.outA & c.ddrA) | (c.ports.inA &^ c.ddrA)
}

func (c *CIA) PortB() uint8 {
	pb := (c.ports.outB & c.ddrB) | (c.ports.inB &^ c.ddrB)
	if c.pcr&0x02 != 0 {
		pb = setBit(pb, 6, c.timerAPulse())
	}
	if c.pcr&0x08 != 0 {
		pb = setBit(pb, 7, c.timerBPulse())
	}
	return pb
}

func setBit(v uint8, bit uint, set bool) uint8 {
	if set {
		return v | 1<<bit
	}
	return v &^ (1 << bit)
}

// timerAPulse/timerBPulse report the PB6/PB7 toggle-on-underflow output,
// tracked as part of the timer's own state in tick.go.
func (c *CIA) timerAPulse() bool { return c.taPulse }
func (c *CIA) timerBPulse() bool { return c.tbPulse }

// IRQ reports whether this CIA currently has the machine's IRQ (CIA1) or
// NMI (CIA2) line asserted: any unmasked interrupt source with its flag
// still set in icrData.
func (c *CIA) IRQ() bool {
	return c.irq
}

// SetCA1/SetCA2 drive the two CIA1-side (or CIA2-side) control lines,
// latching edges according to the PCR's configured polarity.
func (c *CIA) SetCA1(level bool) { c.edge(&c.ca1, level, c.pcr&0x04 != 0, IntFLG) }
func (c *CIA) SetCA2(level bool) {
	if c.pcr&0x08 == 0 {
		// CA2 configured as input: same edge-latch behaviour as CA1.
		c.edge(&c.ca2, level, c.pcr&0x02 != 0, 0)
	} else {
		c.ca2 = level
	}
}

func (c *CIA) edge(line *bool, level, risingTriggers bool, flag uint8) {
	prev := *line
	*line = level
	triggered := (risingTriggers && !prev && level) || (!risingTriggers && prev && !level)
	if triggered && flag != 0 {
		c.setInterrupt(flag)
	}
}
