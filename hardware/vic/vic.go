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

// Package vic implements the VIC-II video controller: the raster beam
// generator, its per-cycle bus-access function table, badline stalls,
// sprite DMA and collision, the eight display modes, and the
// double-buffered frame it hands to the GUI.
package vic

import "github.com/c64ensemble/c64/hardware/clocks"

// FrameWidth is the frame buffer's pixel width: the 40-column, 320-pixel
// display window plus 24 pixels of border on the left and 74 on the right
// (the padding lets border
// sprites and horizontal scroll render without clipping).
const FrameWidth = 418

// Bus is the memory the VIC-II reads for its own DMA, entirely independent
// of (and often concurrent with, on real hardware) the CPU's own view of
// the address space.
type Bus interface {
	RAM() *[65536]byte
	ColorRAM() *[1024]byte
	CharROM() *[4096]byte
}

// CPU is the subset of the main CPU the VIC-II drives directly: the
// raster/collision interrupts assert its IRQ line. Badline and sprite DMA
// cycle-stealing is reported instead through BusAvailable, which the
// machine's own cycle callback consults after each CPU bus access: every
// stolen cycle is run as an extra tick of the other chips before the CPU's
// next bus access, which may be inside the same instruction. The CPU is
// not held on the particular read or write cycle that real hardware would
// stall.
type CPU interface {
	SetIRQ(bool)
}

// VIC is one VIC-II instance.
type VIC struct {
	Registers

	spec clocks.Spec
	mem  Bus
	cpu  CPU

	dispatch [66]func(*VIC)

	rasterY    int
	cycle      int // 1-based cycle within the current line, matches the datasheet's numbering
	frameCount uint64

	badLine            bool
	badLineEnableLatch bool // DEN sampled at the end of raster line 0x30; badlines can only occur if this was set this frame
	displayState       bool // true from the first badline of the frame until the frame ends

	vcbase uint16 // video counter latch, reloaded at the start of every character row
	rc     uint8  // row counter 0-7

	videoMatrixLine [40]uint8 // this line's fetched character/color-index bytes (c-access)
	colorLine       [40]uint8

	buffers [2][]uint32 // two planar RGBA frame buffers
	current int         // index into buffers currently being drawn
}

// New constructs a VIC-II wired to mem for DMA and cpu for interrupts and
// cycle-stealing, using spec's timing (PAL or NTSC).
func New(spec clocks.Spec, mem Bus, cpu CPU) *VIC {
	v := &VIC{spec: spec, mem: mem, cpu: cpu, cycle: 1}
	v.buffers[0] = make([]uint32, FrameWidth*spec.LinesPerFrame)
	v.buffers[1] = make([]uint32, FrameWidth*spec.LinesPerFrame)
	v.buildDispatch()
	return v
}

// Reset returns every register to its power-on state.
func (v *VIC) Reset() {
	v.Registers = Registers{}
	v.rasterY = 0
	v.cycle = 1
	v.badLine = false
	v.displayState = false
	v.vcbase = 0
	v.rc = 0
}

// SetBank sets the 16 KiB window of the address space the VIC reads its
// own DMA from, driven by CIA2 port A bits 0-1 (inverted: value 3 selects
// bank 0 at $0000).
func (v *VIC) SetBank(ciaPA uint8) {
	sel := ^ciaPA & 0x03
	v.bank = uint16(sel) * 0x4000
}

// FrameBuffer returns the buffer NOT currently being drawn into: the one
// safe for the GUI to read.
func (v *VIC) FrameBuffer() []uint32 {
	return v.buffers[1-v.current]
}

// Frame reports the number of completed frames, for pacing and status
// display.
func (v *VIC) Frame() uint64 { return v.frameCount }

// RasterLine reports the current rasterline, a snapshot-quality value that
// callers outside the executor goroutine may read racily per spec.
func (v *VIC) RasterLine() int { return v.rasterY }

func (v *VIC) charROMVisible() bool {
	// The character generator ROM is wired into the address decode only
	// for VIC banks 0 and 2 (bank base $0000 or $8000), at $1000-$1FFF
	// relative to the bank.
	return v.bank == 0x0000 || v.bank == 0x8000
}

// readVideo performs one VIC DMA read relative to the current bank,
// transparently substituting the character ROM where the hardware wires
// it in instead of RAM.
func (v *VIC) readVideo(address uint16) uint8 {
	rel := address - v.bank
	if v.charROMVisible() && rel >= 0x1000 && rel < 0x2000 {
		return v.mem.CharROM()[rel-0x1000]
	}
	return v.mem.RAM()[address]
}
