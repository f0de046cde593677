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

import "testing"

// loadTimerA writes a 16-bit latch value and starts timer A, mirroring
// the sequence a kernal IRQ setup routine performs: low byte, high byte
// (which also force-loads the counter while stopped), then a control
// register write with the start bit set.
func loadTimerA(c *CIA, value uint16, oneShot bool) {
	c.Write(RegTALo, uint8(value))
	c.Write(RegTAHi, uint8(value>>8))
	cra := uint8(0x01) // start
	if oneShot {
		cra |= 0x08
	}
	c.Write(RegCRA, cra)
}

func TestTimerAUnderflowRaisesIRQ(t *testing.T) {
	c := New()
	c.Write(RegICR, IntSet|IntTA) // unmask timer A interrupt

	loadTimerA(c, 3, false)

	for i := 0; i < 3; i++ {
		if c.IRQ() {
			t.Fatalf("IRQ raised early, after %d of 3 ticks", i)
		}
		c.Tick()
	}

	if !c.IRQ() {
		t.Fatal("expected IRQ after timer A underflow")
	}

	icr := c.Read(RegICR)
	if icr&IntTA == 0 {
		t.Fatalf("ICR read did not report timer A flag: %#02x", icr)
	}
	// Reading ICR clears it and drops IRQ if nothing else is pending.
	if c.IRQ() {
		t.Fatal("IRQ still asserted after ICR read cleared the flag")
	}
}

func TestTimerAOneShotStopsAfterUnderflow(t *testing.T) {
	c := New()
	loadTimerA(c, 1, true)

	c.Tick() // underflow, reloads from latch, but one-shot clears the run bit

	if c.timerARunning {
		t.Fatal("one-shot timer A kept running past its first underflow")
	}
	if c.timerA != c.latchA {
		t.Fatalf("timer A did not reload from latch: got %d, want %d", c.timerA, c.latchA)
	}
}

func TestTimerBCountsTimerAUnderflows(t *testing.T) {
	c := New()
	c.Write(RegTBLo, 2)
	c.Write(RegTBHi, 0)
	c.Write(RegCRB, 0x01|0x40) // start, count timer-A-underflow mode
	loadTimerA(c, 1, false)

	// Each tick underflows timer A (reloaded to 1 every time), so timer B
	// should decrement once per tick rather than once per cycle.
	c.Tick()
	if c.timerB != 1 {
		t.Fatalf("timer B after first timer-A underflow: got %d, want 1", c.timerB)
	}
	c.Tick()
	if c.timerB != c.latchB {
		t.Fatalf("timer B after underflowing: got %d, want reloaded latch value %d", c.timerB, c.latchB)
	}
}

func TestSetCA1EdgeSetsFLG(t *testing.T) {
	c := New()
	c.Write(RegICR, IntSet|IntFLG)

	// PCR defaults to 0, which selects the negative (falling) edge for
	// CA1, matching a real 6526 out of reset.
	c.SetCA1(true)
	c.SetCA1(false)

	if !c.IRQ() {
		t.Fatal("expected FLAG interrupt on CA1 falling edge")
	}
}
