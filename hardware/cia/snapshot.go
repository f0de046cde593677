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

package cia

import (
	"encoding/binary"

	"github.com/c64ensemble/c64/curated"
)

// Snapshot encodes the port latches and DDRs, both timers and their
// latches and modes, the live and alarm TOD clocks, SDR, ICR data and mask,
// the control and handshake lines and the IRQ line, in a fixed field order.
// The PB6/PB7 toggle outputs, the TOD read latch, the serial shift state
// and the port input pins are not encoded.
func (c *CIA) Snapshot() []byte {
	buf := make([]byte, 32)
	buf[0] = c.ports.outA
	buf[1] = c.ports.outB
	buf[2] = c.ddrA
	buf[3] = c.ddrB
	binary.LittleEndian.PutUint16(buf[4:], c.timerA)
	binary.LittleEndian.PutUint16(buf[6:], c.timerB)
	binary.LittleEndian.PutUint16(buf[8:], c.latchA)
	binary.LittleEndian.PutUint16(buf[10:], c.latchB)
	buf[12] = boolByte(c.timerARunning)
	buf[13] = boolByte(c.timerBRunning)
	buf[14] = boolByte(c.timerAOneShot)
	buf[15] = boolByte(c.timerBOneShot)
	buf[16] = boolByte(c.timerBCountsTA)
	buf[17] = c.tod.tenths
	buf[18] = c.tod.seconds
	buf[19] = c.tod.minutes
	buf[20] = c.tod.hours
	buf[21] = c.todAlarm.tenths
	buf[22] = c.todAlarm.seconds
	buf[23] = c.todAlarm.minutes
	buf[24] = c.todAlarm.hours
	buf[25] = c.sdr
	buf[26] = c.icrData
	buf[27] = c.icrMask
	buf[28] = c.pcr
	buf[29] = boolByte(c.ca1) | boolByte(c.ca2)<<1 | boolByte(c.cb1)<<2 | boolByte(c.cb2)<<3
	buf[30] = boolByte(c.irq)
	buf[31] = boolByte(c.todRunning)
	return buf
}

// Restore reverses Snapshot.
func (c *CIA) Restore(data []byte) error {
	if len(data) < 32 {
		return curated.Errorf("cia: truncated snapshot (%d bytes)", len(data))
	}
	c.ports.outA = data[0]
	c.ports.outB = data[1]
	c.ddrA = data[2]
	c.ddrB = data[3]
	c.timerA = binary.LittleEndian.Uint16(data[4:])
	c.timerB = binary.LittleEndian.Uint16(data[6:])
	c.latchA = binary.LittleEndian.Uint16(data[8:])
	c.latchB = binary.LittleEndian.Uint16(data[10:])
	c.timerARunning = data[12] != 0
	c.timerBRunning = data[13] != 0
	c.timerAOneShot = data[14] != 0
	c.timerBOneShot = data[15] != 0
	c.timerBCountsTA = data[16] != 0
	c.tod = todClock{data[17], data[18], data[19], data[20]}
	c.todAlarm = todClock{data[21], data[22], data[23], data[24]}
	c.sdr = data[25]
	c.icrData = data[26]
	c.icrMask = data[27]
	c.pcr = data[28]
	c.ca1 = data[29]&0x01 != 0
	c.ca2 = data[29]&0x02 != 0
	c.cb1 = data[29]&0x04 != 0
	c.cb2 = data[29]&0x08 != 0
	c.irq = data[30] != 0
	c.todRunning = data[31] != 0
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
