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

// Tick advances the chip by one PHI2 cycle: decrementing timer A always
// (unless stopped), and decrementing timer B unless it is configured to
// only count timer A underflows. The scheduler calls Tick once per CPU
// cycle for each of the machine's two CIAs; the time-of-day clock runs
// on a much slower cadence and is advanced separately, by TickTOD.
func (c *CIA) Tick() {
	underflowA := false
	if c.timerARunning && c.timerA > 0 {
		c.timerA--
		if c.timerA == 0 {
			underflowA = true
		}
	}

	if underflowA {
		c.taPulse = !c.taPulse
		c.setInterrupt(IntTA)
		if c.timerAOneShot {
			c.timerARunning = false
			c.timerA = c.latchA
		} else {
			c.timerA = c.latchA
		}
	}

	if c.timerBCountsTA {
		if underflowA {
			c.stepTimerB()
		}
	} else if c.timerBRunning && c.timerB > 0 {
		c.timerB--
		if c.timerB == 0 {
			c.timerBUnderflow()
		}
	}
}

func (c *CIA) stepTimerB() {
	if !c.timerBRunning {
		return
	}
	c.timerB--
	if c.timerB == 0 {
		c.timerBUnderflow()
	}
}

func (c *CIA) timerBUnderflow() {
	c.tbPulse = !c.tbPulse
	c.setInterrupt(IntTB)
	if c.timerBOneShot {
		c.timerBRunning = false
	}
	c.timerB = c.latchB
}

// TickTOD advances the BCD time-of-day clock by one tenth of a second.
// The machine package calls this from its end-of-frame hook, once every
// five (PAL, 50 Hz) or six (NTSC, 60 Hz) frames, matching the power-line
// frequency the CRA TOD-rate bit selects TickTOD to run at regardless of
// which CRA a given CIA happens to be configured with — both CIAs share
// the same line-frequency source on real hardware.
func (c *CIA) TickTOD() {
	if !c.todRunning {
		return
	}
	c.tod.tenths++
	if c.tod.tenths == 10 {
		c.tod.tenths = 0
		bcdIncrement(&c.tod.seconds, 0x59)
		if c.tod.seconds == 0 {
			bcdIncrement(&c.tod.minutes, 0x59)
			if c.tod.minutes == 0 {
				c.incrementHours()
			}
		}
	}
	if c.tod == c.todAlarm {
		c.setInterrupt(IntTOD)
	}
}

// bcdIncrement increments a BCD-encoded field, wrapping to zero once it
// passes max (also BCD-encoded).
func bcdIncrement(field *uint8, max uint8) {
	lo := *field & 0x0f
	hi := *field >> 4
	lo++
	if lo == 10 {
		lo = 0
		hi++
	}
	*field = hi<<4 | lo
	if *field > max {
		*field = 0
	}
}

// incrementHours wraps 12-BCD with the AM/PM flag in bit 7, matching the
// 6526's actual 1-12 (never 0) hour representation.
func (c *CIA) incrementHours() {
	h := c.tod.hours & 0x1f
	pm := c.tod.hours & 0x80
	lo := h & 0x0f
	hi := h >> 4
	lo++
	if lo == 10 {
		lo = 0
		hi++
	}
	h = hi<<4 | lo
	if h == 0x12 {
		pm ^= 0x80
	}
	if h > 0x12 {
		h = 0x01
	}
	c.tod.hours = h | pm
}
