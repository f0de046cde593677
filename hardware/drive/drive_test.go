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

package drive

import (
	"testing"

	"github.com/c64ensemble/c64/hardware/iec"
)

func newTestDrive(t *testing.T) *Drive {
	t.Helper()
	d, err := New(make([]byte, 16384), iec.New())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestSyncHeadDetectsSyncMark(t *testing.T) {
	d := newTestDrive(t)

	blank := make([]byte, d64Size35)
	disk, err := LoadD64(blank, "test")
	if err != nil {
		t.Fatalf("LoadD64: %v", err)
	}
	d.Insert(disk)
	d.halftrack = 1 // track 1, formatted with real GCR headers

	track := disk.TrackBitstream(1)
	if len(track) == 0 {
		t.Fatal("expected a non-empty encoded track 1")
	}
	if track[0] != 0xff {
		t.Fatalf("expected track 1 to begin with a SYNC run of 0xff bytes, got %#02x", track[0])
	}

	d.VIA2.portB = 0x04 // motor on, head reading, density zone 0

	sawSync := false
	for i := 0; i < 400; i++ {
		d.syncHead()
		if d.syncRun {
			sawSync = true
			break
		}
	}
	if !sawSync {
		t.Fatal("syncHead never detected the SYNC mark at the start of track 1")
	}
}

func TestSyncHeadByteReadyEveryEighthBit(t *testing.T) {
	d := newTestDrive(t)

	blank := make([]byte, d64Size35)
	disk, err := LoadD64(blank, "test")
	if err != nil {
		t.Fatalf("LoadD64: %v", err)
	}
	d.Insert(disk)
	d.halftrack = 1
	disk.TrackBitstream(1) // force GCR encoding before spinning

	d.VIA2.portB = 0x04

	// Each byte-ready pulse is a same-call rising-then-falling transition
	// on CA1, so it can't be observed as a level change between calls; the
	// VIA's own IFR latches it instead, exactly as the drive's ROM detects
	// a byte being ready via its CA1 interrupt flag.
	for i := 0; i < 4000; i++ {
		d.syncHead()
	}

	if d.VIA2.ifr&IntCA1 == 0 {
		t.Fatal("expected VIA2's IFR to latch a CA1 byte-ready pulse while reading a formatted track")
	}
}

func TestSyncHeadNoMotorLeavesHeadStationary(t *testing.T) {
	d := newTestDrive(t)

	blank := make([]byte, d64Size35)
	disk, err := LoadD64(blank, "test")
	if err != nil {
		t.Fatalf("LoadD64: %v", err)
	}
	d.Insert(disk)
	d.halftrack = 1

	d.VIA2.portB = 0x00 // motor off
	for i := 0; i < 100; i++ {
		d.syncHead()
	}

	if d.bytePos != 0 || d.bitIndex != 0 {
		t.Fatalf("head advanced with motor off: bytePos=%d bitIndex=%d", d.bytePos, d.bitIndex)
	}
}

func TestStepHeadTracksPhaseChanges(t *testing.T) {
	d := newTestDrive(t)
	start := d.halftrack

	d.VIA2.portB = 0x04 | 0x01 // motor on, phase 1
	d.syncHead()

	if d.halftrack != start+1 {
		t.Fatalf("expected phase 0->1 transition to step the head out by one halftrack: got %d, want %d", d.halftrack, start+1)
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	d := newTestDrive(t)
	blank := make([]byte, d64Size35)
	disk, err := LoadD64(blank, "test")
	if err != nil {
		t.Fatalf("LoadD64: %v", err)
	}
	d.Insert(disk)
	d.halftrack = 5
	d.bytePos = 42
	d.bitIndex = 3
	d.readShift = 0x155
	d.readByteReg = 0xa5
	d.byteReadyCounter = 6
	d.writeShiftReg = 0x3c

	data := d.Snapshot()

	restored := newTestDrive(t)
	restored.Insert(disk)
	if err := restored.Restore(data); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.halftrack != d.halftrack ||
		restored.bytePos != d.bytePos ||
		restored.bitIndex != d.bitIndex ||
		restored.readShift != d.readShift ||
		restored.readByteReg != d.readByteReg ||
		restored.byteReadyCounter != d.byteReadyCounter ||
		restored.writeShiftReg != d.writeShiftReg {
		t.Fatalf("restored state mismatch: got %+v, want fields from %+v", restored, d)
	}
}
