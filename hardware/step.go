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

// Step executes exactly one CPU instruction (or interrupt-acknowledge
// sequence), advancing every other chip in lockstep, one bus cycle at a
// time, through cycleCallback.
func (c *C64) Step() error {
	return c.CPU.ExecuteInstruction(c.cycleCallback)
}

// cycleCallback is invoked once per main-side bus cycle from inside
// CPU.ExecuteInstruction, mirroring the order real silicon uses: VIC-II
// first, since it can steal the bus away from the CPU on a badline or
// during sprite DMA; both CIAs next, since their timer underflows and
// serial ports must be visible to the CPU access that is about to
// complete; then any attached, powered-on drives are paced against the
// main clock by cycle debt, since the 1541's own CPU only ever executes
// whole instructions at a time.
//
// The CPU's own memory access has already happened by the time this
// callback fires (Mem.Read/Write, then cycleCallback), so a badline's
// bus-stealing is modelled by running extra phantom low-phase cycles
// here, before the CPU's next real access, rather than by literally
// stalling the CPU mid-cycle. This keeps VIC-II's cycle budget for a
// frame exact even though it shifts exactly which CPU cycle a badline
// steals by a small amount.
func (c *C64) cycleCallback() error {
	c.tickLowPhase()
	for !c.VIC.BusAvailable() {
		c.cycleCount++
		c.tickLowPhase()
	}

	if err := c.advanceDrives(); err != nil {
		return err
	}

	c.cycleCount++

	if frame := c.VIC.Frame(); frame != c.lastFrame {
		c.lastFrame = frame
		c.endOfFrame()
	}
	return nil
}

// tickLowPhase advances VIC-II, both CIAs, the SID and any cartridge with
// its own cycle counter by one cycle and recomputes the CPU's interrupt
// lines from the CIAs' outputs. The SID
// runs off the same PHI2 line as everything else, so it is ticked here
// rather than once per instruction, including on the phantom cycles a
// badline or sprite DMA steals from the CPU: those cycles still happen on
// real silicon and still advance the SID's oscillators.
func (c *C64) tickLowPhase() {
	c.VIC.Tick()
	c.CIA1.Tick()
	c.updateIRQ()
	c.CIA2.Tick()
	c.syncCIA2Ports()
	c.CPU.SetNMI(c.CIA2.IRQ())
	c.SID.Tick()
	if t, ok := c.cart.(interface{ Tick() }); ok {
		t.Tick()
	}
}

// advanceDrives pays down each powered-on drive's cycle debt against the
// main clock. A drive's own CPU runs at very close to the main clock
// (1 MHz vs the main side's 0.985/1.023 MHz), so one
// unit of debt per main cycle keeps the two in step without needing a
// fractional clock divider.
func (c *C64) advanceDrives() error {
	for _, s := range c.drives {
		if !s.powerOn {
			continue
		}
		s.debt++
		for s.debt > 0 {
			n, err := s.drive.RunInstruction()
			if err != nil {
				return err
			}
			if n <= 0 {
				break
			}
			s.debt -= n
		}
	}
	return nil
}
