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

// Package drive implements the VC1541 disk drive: its own 6502, two 6522
// VIAs (one facing the serial bus, one facing the read/write head), and a
// GCR-encoded disk model.
package drive

import (
	"encoding/binary"

	"github.com/c64ensemble/c64/curated"
	"github.com/c64ensemble/c64/hardware/cpu"
	"github.com/c64ensemble/c64/hardware/iec"
)

// densityCyclesPerByte approximates the four GCR speed zones' bit-cell
// timings as a whole number of 1MHz drive cycles per encoded byte. Real
// hardware varies this continuously with an analog oscillator; this
// table is close enough to reproduce zone-dependent read/write timing
// without modelling the oscillator itself.
var densityCyclesPerByte = [4]int{16, 15, 14, 13}

// Drive is one VC1541 unit: its 6502, RAM/ROM/VIA address space, the two
// VIAs, and the disk currently in the drive (if any).
type Drive struct {
	Mem  *Memory
	CPU  *cpu.CPU
	VIA1 *VIA // faces the IEC bus
	VIA2 *VIA // faces the read/write head, motor, LED

	iecDevice *iec.Device

	disk         *Disk
	halftrack    int
	lastPhase    uint8
	motorOn      bool
	ledOn        bool
	bytePos      int
	bitIndex     int // 0-7, next bit of track[bytePos] the head is over, MSB first
	cycleCounter int // Bresenham-style accumulator distributing densityCyclesPerByte across 8 bits
	syncRun      bool

	// readShift is the UF4 read shift register: the most recent 10 bits
	// read from the disk, MSB-first. All ten bits set marks SYNC, per a
	// real 1541's hardware SYNC detector.
	readShift uint16

	// readByteReg is the last 8 bits shifted in, independent of the
	// storage array's own byte alignment: SYNC can (and does) leave the
	// byte-ready framing out of phase with track[]'s byte boundaries, so
	// the assembled byte handed to VIA2 port A comes from this register
	// rather than from re-reading track[bytePos] directly.
	readByteReg uint8

	// byteReadyCounter mirrors UF4's own bit counter: it advances once per
	// bit clocked through the shift registers and wraps mod 8, raising
	// byte-ready (CA1) each time it reaches 7, and is held at 0 for as
	// long as SYNC is asserted so the next real byte after a sync mark
	// starts counting from bit 0.
	byteReadyCounter int

	// writeShiftReg holds the byte latched from VIA2's port A at the start
	// of a write, shifted out to the disk one bit per bit-cell.
	writeShiftReg uint8

	instrCycles int // bus cycles consumed by the instruction currently in RunInstruction
}

// New builds a drive around the given ROM image, wired onto iecBus. No
// disk is inserted; call Insert to mount one.
func New(rom []byte, iecBus *iec.Bus) (*Drive, error) {
	d := &Drive{
		VIA1:      &VIA{},
		VIA2:      &VIA{},
		halftrack: 35, // track 18, the directory track, is the drive's home position
	}
	d.iecDevice = iecBus.Attach()

	mem, err := NewMemory(rom, d.VIA1, d.VIA2)
	if err != nil {
		return nil, curated.Errorf("drive: %v", err)
	}
	d.Mem = mem
	d.CPU = cpu.NewCPU(mem, nil)

	return d, nil
}

// Insert mounts a disk image. Eject removes whatever is currently
// mounted (a no-op if the drive is empty).
func (d *Drive) Insert(disk *Disk) { d.disk = disk }
func (d *Drive) Eject()            { d.disk = nil }
func (d *Drive) Disk() *Disk       { return d.disk }

// Reset pulls the drive's own RESET line: both VIAs' interrupt flags are
// cleared and the drive's CPU is reset. AttachDrive calls it; the C64's
// own Reset does not.
func (d *Drive) Reset() error {
	d.VIA1.Write(RegIFR, 0x7f)
	d.VIA2.Write(RegIFR, 0x7f)
	return d.CPU.Reset()
}

// RunInstruction executes one drive-CPU instruction, ticking both VIAs
// and the disk head once per bus cycle the instruction takes, and reports
// how many drive cycles that instruction consumed so the machine's own
// scheduler can keep the drive's 1MHz clock in step with the main side's.
func (d *Drive) RunInstruction() (int, error) {
	d.instrCycles = 0
	err := d.CPU.ExecuteInstruction(d.cycleCallback)
	return d.instrCycles, err
}

// cycleCallback is invoked once per drive bus cycle from inside
// CPU.ExecuteInstruction, mirroring the main CPU's own cycle-callback
// contract.
func (d *Drive) cycleCallback() error {
	d.instrCycles++
	d.VIA1.Tick()
	d.VIA2.Tick()
	d.syncIEC()
	d.syncHead()
	return nil
}

// syncIEC reflects VIA1's port A onto the shared IEC bus and the bus's
// combined levels back onto VIA1's inputs. This is a simplified,
// non-electrical model of the 1541's open-collector line drivers: DATA
// is pulled low whenever the drive is explicitly driving it out, or is
// acknowledging an asserted ATN.
func (d *Drive) syncIEC() {
	atnIn := d.iecDevice.Read(iec.ATN)
	clkIn := d.iecDevice.Read(iec.CLK)
	dataIn := d.iecDevice.Read(iec.DATA)

	pa := d.VIA1.OutputA()
	dataOut := pa&0x02 != 0
	clkOut := pa&0x08 != 0
	atnAck := pa&0x10 != 0

	d.VIA1.SetInputA(0, dataIn)
	d.VIA1.SetInputA(2, clkIn)
	d.VIA1.SetInputA(7, atnIn)
	d.VIA1.SetCA1(atnIn)

	d.iecDevice.Drive(iec.DATA, dataOut || (atnAck && !atnIn))
	d.iecDevice.Drive(iec.CLK, clkOut)
}

// syncHead advances the read/write head's position according to VIA2's
// stepper-motor output bits, and clocks the UF4 read/write shift
// registers one bit per bit-cell while the spindle motor is running,
// raising the byte-ready interrupt (CA1) every eighth bit exactly as the
// real 1541's UF4 counter does.
//
// The four CPU-cycle phases the real UF4 divides each bit-cell into
// (F. Kontros' phase 0/1/2/3 breakdown) are collapsed into a single
// end-of-bit-cell action here rather than modeled as separate sub-steps;
// SYNC detection and the mod-8 byte-ready count, the two behaviors that
// depend on bit- rather than byte-granularity, are exact.
func (d *Drive) syncHead() {
	pb := d.VIA2.OutputB()

	d.motorOn = pb&0x04 != 0
	d.ledOn = pb&0x08 != 0

	phase := pb & 0x03
	if phase != d.lastPhase {
		switch (int(phase) - int(d.lastPhase) + 4) % 4 {
		case 1:
			d.stepHead(1)
		case 3:
			d.stepHead(-1)
		}
		d.lastPhase = phase
	}

	protected := d.disk != nil && d.disk.WriteProtect()
	d.VIA2.SetInputB(4, !protected)

	if !d.motorOn || d.disk == nil {
		d.VIA2.SetInputB(7, true)
		return
	}

	track := d.disk.TrackBitstream(d.halftrack)
	if len(track) == 0 {
		return
	}

	// Distribute densityCyclesPerByte[zone] drive cycles over the byte's 8
	// bits as evenly as a Bresenham accumulator allows, since the zone
	// tables are specified per byte rather than per bit.
	density := (pb >> 5) & 0x03
	d.cycleCounter += 8
	if d.cycleCounter < densityCyclesPerByte[density] {
		return
	}
	d.cycleCounter -= densityCyclesPerByte[density]

	writing := d.VIA2.ca2 // write mode while VIA2's CA2 level is true; nothing in this package sets CA2

	current := track[d.bytePos]
	bitMask := uint8(1) << (7 - uint(d.bitIndex))

	if writing && !protected {
		if d.byteReadyCounter == 0 {
			d.writeShiftReg = d.VIA2.OutputA()
		}
		outBit := d.writeShiftReg&0x80 != 0
		d.writeShiftReg <<= 1
		if outBit {
			track[d.bytePos] |= bitMask
		} else {
			track[d.bytePos] &^= bitMask
		}
		d.disk.gcrCache[d.halftrack] = track
		d.readShift = 0
	} else {
		bit := current&bitMask != 0
		d.readShift <<= 1
		d.readByteReg <<= 1
		if bit {
			d.readShift |= 1
			d.readByteReg |= 1
		}
		d.readShift &= 0x3ff
	}

	d.bitIndex++
	if d.bitIndex == 8 {
		d.bitIndex = 0
		d.bytePos = (d.bytePos + 1) % len(track)
	}

	sync := !writing && d.readShift == 0x3ff
	d.VIA2.SetInputB(7, !sync)

	if sync {
		d.syncRun = true
		d.byteReadyCounter = 0
		return
	}
	d.syncRun = false

	d.byteReadyCounter = (d.byteReadyCounter + 1) % 8
	if d.byteReadyCounter != 0 {
		return
	}

	if !writing {
		for bit := uint8(0); bit < 8; bit++ {
			d.VIA2.SetInputA(bit, d.readByteReg&(1<<bit) != 0)
		}
	}

	d.VIA2.SetCA1(true)
	d.VIA2.SetCA1(false)
}

func (d *Drive) stepHead(dir int) {
	d.halftrack += dir
	if d.halftrack < 1 {
		d.halftrack = 1
	}
	if d.halftrack > 70 {
		d.halftrack = 70
	}
	d.bytePos = 0
}

// Track reports the physical track number (1-35) the head currently
// occupies, for status displays.
func (d *Drive) Track() int  { return (d.halftrack + 1) / 2 }
func (d *Drive) LED() bool   { return d.ledOn }
func (d *Drive) Motor() bool { return d.motorOn }

// Snapshot/Restore persist the drive's own state; the mounted disk image
// is snapshotted separately by the caller since it can be large and is
// often shared read-only across save states.
func (d *Drive) Snapshot() []byte {
	buf := make([]byte, 14)
	binary.LittleEndian.PutUint16(buf[0:], uint16(d.halftrack))
	buf[2] = d.lastPhase
	buf[3] = boolByte(d.motorOn) | boolByte(d.ledOn)<<1 | boolByte(d.syncRun)<<2
	binary.LittleEndian.PutUint16(buf[4:], uint16(d.bytePos))
	binary.LittleEndian.PutUint16(buf[6:], uint16(d.cycleCounter))
	buf[8] = uint8(d.bitIndex)
	binary.LittleEndian.PutUint16(buf[9:], d.readShift)
	buf[11] = d.readByteReg
	buf[12] = uint8(d.byteReadyCounter)
	buf[13] = d.writeShiftReg

	out := append([]byte{}, buf...)
	out = append(out, d.CPU.Snapshot()...)
	out = append(out, d.VIA1.Snapshot()...)
	out = append(out, d.VIA2.Snapshot()...)
	out = append(out, d.Mem.ram[:]...)
	return out
}

func (d *Drive) Restore(data []byte) error {
	if len(data) < 14 {
		return curated.Errorf("drive: truncated snapshot")
	}
	d.halftrack = int(binary.LittleEndian.Uint16(data[0:]))
	d.lastPhase = data[2]
	d.motorOn = data[3]&0x01 != 0
	d.ledOn = data[3]&0x02 != 0
	d.syncRun = data[3]&0x04 != 0
	d.bytePos = int(binary.LittleEndian.Uint16(data[4:]))
	d.cycleCounter = int(binary.LittleEndian.Uint16(data[6:]))
	d.bitIndex = int(data[8])
	d.readShift = binary.LittleEndian.Uint16(data[9:])
	d.readByteReg = data[11]
	d.byteReadyCounter = int(data[12])
	d.writeShiftReg = data[13]

	rest := data[14:]
	const cpuLen = 12
	const viaLen = 20
	if len(rest) < cpuLen+2*viaLen+len(d.Mem.ram) {
		return curated.Errorf("drive: truncated snapshot")
	}
	if err := d.CPU.Restore(rest[:cpuLen]); err != nil {
		return err
	}
	rest = rest[cpuLen:]
	d.VIA1.Restore(rest[:viaLen])
	rest = rest[viaLen:]
	d.VIA2.Restore(rest[:viaLen])
	rest = rest[viaLen:]
	copy(d.Mem.ram[:], rest)
	return nil
}
