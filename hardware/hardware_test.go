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

package hardware_test

import (
	"testing"

	"github.com/c64ensemble/c64/emulation"
	"github.com/c64ensemble/c64/hardware"
	"github.com/c64ensemble/c64/hardware/cia"
	"github.com/c64ensemble/c64/hardware/clocks"
)

// blankROMs builds a minimal, synthetic ROM set: every byte is a NOP
// (0xea) except for a tight JMP-to-self loop at $e000 and the three
// interrupt vectors at the top of the address space, all of which point
// back at that loop. It boots to a stable, infinitely-running machine
// without needing real BASIC/KERNAL/CHARGEN images on disk, which is all
// a scheduler-level test or benchmark needs from the ROMs.
func blankROMs() hardware.ROMs {
	kernal := make([]byte, 8192)
	for i := range kernal {
		kernal[i] = 0xea // NOP
	}
	// JMP $e000, looping forever.
	kernal[0] = 0x4c
	kernal[1] = 0x00
	kernal[2] = 0xe0

	setVector := func(addr uint16) {
		off := addr - 0xe000
		kernal[off] = 0x00
		kernal[off+1] = 0xe0
	}
	setVector(0xfffa) // NMI
	setVector(0xfffc) // RESET
	setVector(0xfffe) // IRQ/BRK

	basic := make([]byte, 8192)
	for i := range basic {
		basic[i] = 0xea
	}
	char := make([]byte, 4096)

	return hardware.ROMs{Basic: basic, Kernal: kernal, Char: char}
}

func newTestMachine(t *testing.T) *hardware.C64 {
	t.Helper()
	c, err := hardware.New(clocks.Specs[clocks.PAL], blankROMs())
	if err != nil {
		t.Fatalf("hardware.New: %v", err)
	}
	c.SetWarp(true) // tests drive frames directly; real-time pacing would only slow them down
	return c
}

func TestNewRejectsWrongSizedROMs(t *testing.T) {
	_, err := hardware.New(clocks.Specs[clocks.PAL], hardware.ROMs{
		Basic:  []byte{0x00},
		Kernal: make([]byte, 8192),
		Char:   make([]byte, 4096),
	})
	if err == nil {
		t.Fatal("expected an error for a short BASIC ROM, got nil")
	}
}

func TestRunForFrameCountAdvancesFrameCounter(t *testing.T) {
	c := newTestMachine(t)

	start := c.VIC.Frame()
	const frames = 5
	if err := c.RunForFrameCount(frames, nil); err != nil {
		t.Fatalf("RunForFrameCount: %v", err)
	}
	if got := c.VIC.Frame() - start; got != frames {
		t.Fatalf("expected %d frames to elapse, got %d", frames, got)
	}
	if c.CPU.Killed {
		t.Fatal("CPU unexpectedly halted (KIL) executing a NOP/JMP loop")
	}
}

func TestEndOfFrameAdvancesCIATOD(t *testing.T) {
	c := newTestMachine(t)

	// PAL ties TOD to the 50 Hz line frequency, so one tenth of a second
	// elapses every five frames.
	const framesPerTenth = 5
	if err := c.RunForFrameCount(framesPerTenth, nil); err != nil {
		t.Fatalf("RunForFrameCount: %v", err)
	}
	if got := c.CIA1.Read(cia.RegTODTenths); got != 1 {
		t.Fatalf("CIA1 TOD tenths after %d frames = %d, want 1", framesPerTenth, got)
	}
	if got := c.CIA2.Read(cia.RegTODTenths); got != 1 {
		t.Fatalf("CIA2 TOD tenths after %d frames = %d, want 1", framesPerTenth, got)
	}
}

func TestEndOfFrameTicksSID(t *testing.T) {
	c := newTestMachine(t)

	if err := c.RunForFrameCount(1, nil); err != nil {
		t.Fatalf("RunForFrameCount: %v", err)
	}

	buf := make([]int16, 4096)
	if n := c.SID.ReadSamples(buf); n == 0 {
		t.Fatal("expected SID.Tick to have filled the ring buffer with at least one sample after a frame of emulation")
	}
}

func TestRunHonoursEndingState(t *testing.T) {
	c := newTestMachine(t)

	calls := 0
	err := c.Run(func() (emulation.State, error) {
		calls++
		if calls >= 1000 {
			return emulation.Ending, nil
		}
		return emulation.Running, nil
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 1000 {
		t.Fatalf("expected exactly 1000 continueCheck calls, got %d", calls)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := newTestMachine(t)
	if err := c.RunForFrameCount(2, nil); err != nil {
		t.Fatalf("RunForFrameCount: %v", err)
	}

	data := c.Snapshot()

	restored := newTestMachine(t)
	if err := restored.Restore(data); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.VIC.Frame() != c.VIC.Frame() {
		t.Fatalf("frame count mismatch after restore: got %d, want %d", restored.VIC.Frame(), c.VIC.Frame())
	}
	if restored.CPU.PC != c.CPU.PC {
		t.Fatalf("PC mismatch after restore: got %#04x, want %#04x", restored.CPU.PC, c.CPU.PC)
	}
}

func BenchmarkRunForFrameCount(b *testing.B) {
	c, err := hardware.New(clocks.Specs[clocks.PAL], blankROMs())
	if err != nil {
		b.Fatalf("hardware.New: %v", err)
	}
	c.SetWarp(true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.RunForFrameCount(1, nil); err != nil {
			b.Fatalf("RunForFrameCount: %v", err)
		}
	}
}
