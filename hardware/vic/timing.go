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

package vic

// badlineWindowFirst/Last bound the rasterlines a badline can ever occur
// on, regardless of YSCROLL match: real silicon only asserts BA in this
// range even if the low three raster bits happen to match outside it.
const (
	badlineWindowFirst = 0x30
	badlineWindowLast  = 0xf7
)

// cyclesThisLine returns how many bus cycles the current rasterline
// takes. Only the oldest NTSC model (6567R56A) varies line length within
// a frame, alternating 64/65 to keep its colour subcarrier phase-locked;
// every other model is fixed.
func (v *VIC) cyclesThisLine() int {
	n := v.spec.CyclesPerLine
	if v.spec.LongLines && v.rasterY%2 == 1 {
		n++
	}
	return n
}

// Tick advances the VIC-II by exactly one bus cycle: it runs the current
// cycle's dispatch function, then steps the cycle/rasterline/frame
// counters.
func (v *VIC) Tick() {
	if fn := v.dispatch[v.cycle]; fn != nil {
		fn(v)
	}

	v.cycle++
	if v.cycle > v.cyclesThisLine() {
		v.cycle = 1
		v.endOfLine()
	}
}

// BusAvailable reports whether the CPU may use the bus on the cycle the
// VIC is currently at. It is false for the 40 c-access cycles of a
// badline and for the two cycles each active sprite's DMA consumes.
func (v *VIC) BusAvailable() bool {
	if v.badLine && v.cycle >= 15 && v.cycle <= 54 {
		return false
	}
	return !v.spriteDMACycle(v.cycle)
}

func (v *VIC) endOfLine() {
	// sample the badline-enable latch at the end of raster line 0x30
	if v.rasterY == badlineWindowFirst && v.denSet() {
		v.badLineEnableLatch = true
	}

	v.rasterY++
	if v.rasterY >= v.spec.LinesPerFrame {
		v.rasterY = 0
		v.badLineEnableLatch = false
		v.displayState = false
		v.endOfFrame()
	}

	v.badLine = v.badLineEnableLatch &&
		v.rasterY >= badlineWindowFirst && v.rasterY <= badlineWindowLast &&
		v.rasterY&0x07 == v.yscroll()

	if v.badLine {
		v.displayState = true
		v.rc = 0
	} else if v.displayState {
		v.rc = (v.rc + 1) & 0x07
	}

	if v.rasterY == 0 {
		v.vcbase = 0
	}

	if v.rasterCompare == uint16(v.rasterY) {
		v.raiseIRQ(IRQRaster)
	}

	v.startOfLineSpriteDMA()
}

func (v *VIC) endOfFrame() {
	v.current = 1 - v.current
	v.frameCount++
}
