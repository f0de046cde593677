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

package cpu

import "testing"

// flatBus is a trivial 64 KiB memory.Bus implementation with no banking,
// enough to drive the 6510 core through its addressing modes and opcodes
// in isolation from the rest of the machine.
type flatBus struct {
	ram [65536]byte
}

func (b *flatBus) Read(address uint16) (uint8, error)  { return b.ram[address], nil }
func (b *flatBus) Write(address uint16, v uint8) error  { b.ram[address] = v; return nil }
func (b *flatBus) Peek(address uint16) (uint8, error)   { return b.ram[address], nil }
func (b *flatBus) Poke(address uint16, v uint8) error   { b.ram[address] = v; return nil }

func newTestCPU(t *testing.T, program []byte) (*CPU, *flatBus) {
	t.Helper()
	bus := &flatBus{}
	copy(bus.ram[0x0200:], program)
	bus.ram[0xfffc] = 0x00
	bus.ram[0xfffd] = 0x02

	c := NewCPU(bus, nil)
	if err := c.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return c, bus
}

func noCycle() error { return nil }

func step(t *testing.T, c *CPU) {
	t.Helper()
	if err := c.ExecuteInstruction(noCycle); err != nil {
		t.Fatalf("ExecuteInstruction at PC=%#04x: %v", c.PC, err)
	}
}

func TestLDAImmediateSetsZeroAndNegativeFlags(t *testing.T) {
	c, _ := newTestCPU(t, []byte{0xa9, 0x00}) // LDA #$00
	step(t, c)
	if c.A != 0 {
		t.Fatalf("A = %#02x, want 0", c.A)
	}
	if c.Status&flagZ == 0 {
		t.Fatal("expected Z flag set after loading zero")
	}

	c2, _ := newTestCPU(t, []byte{0xa9, 0x80}) // LDA #$80
	step(t, c2)
	if c2.Status&flagN == 0 {
		t.Fatal("expected N flag set after loading a negative value")
	}
}

func TestADCSetsCarryAndOverflow(t *testing.T) {
	c, _ := newTestCPU(t, []byte{
		0xa9, 0x7f, // LDA #$7f
		0x69, 0x01, // ADC #$01
	})
	step(t, c) // LDA
	step(t, c) // ADC

	if c.A != 0x80 {
		t.Fatalf("A = %#02x, want 0x80", c.A)
	}
	if c.Status&flagV == 0 {
		t.Fatal("expected V flag set: 0x7f+0x01 overflows a signed byte")
	}
	if c.Status&flagC != 0 {
		t.Fatal("did not expect C flag set: 0x7f+0x01 does not overflow unsigned")
	}
	if c.Status&flagN == 0 {
		t.Fatal("expected N flag set: result 0x80 is negative")
	}
}

func TestBranchTakenSkipsOverInstruction(t *testing.T) {
	c, _ := newTestCPU(t, []byte{
		0xa9, 0x00, // LDA #$00
		0xf0, 0x02, // BEQ +2
		0xa9, 0xff, // (skipped) LDA #$ff
		0xa9, 0x11, // LDA #$11
	})
	step(t, c) // LDA #$00, sets Z
	step(t, c) // BEQ, taken
	step(t, c) // lands on LDA #$11
	if c.A != 0x11 {
		t.Fatalf("A = %#02x, want 0x11 (branch should have skipped the LDA #$ff)", c.A)
	}
}

func TestJSRThenRTSRoundTrips(t *testing.T) {
	c, _ := newTestCPU(t, []byte{
		0x20, 0x00, 0x03, // JSR $0300
	})
	step(t, c)
	if c.PC != 0x0300 {
		t.Fatalf("PC after JSR = %#04x, want 0x0300", c.PC)
	}

	c.Mem.Write(0x0300, 0x60) // RTS
	step(t, c)
	if c.PC != 0x0203 {
		t.Fatalf("PC after RTS = %#04x, want 0x0203 (instruction after the JSR)", c.PC)
	}
}

func TestStackPushPullRoundTrips(t *testing.T) {
	c, _ := newTestCPU(t, []byte{
		0xa9, 0x42, // LDA #$42
		0x48,       // PHA
		0xa9, 0x00, // LDA #$00
		0x68, // PLA
	})
	step(t, c)
	step(t, c)
	step(t, c)
	step(t, c)
	if c.A != 0x42 {
		t.Fatalf("A after PLA = %#02x, want 0x42", c.A)
	}
}

func TestCompareSetsCarryWhenRegisterIsGreaterOrEqual(t *testing.T) {
	c, _ := newTestCPU(t, []byte{
		0xa9, 0x10, // LDA #$10
		0xc9, 0x05, // CMP #$05
	})
	step(t, c)
	step(t, c)
	if c.Status&flagC == 0 {
		t.Fatal("expected C flag set: 0x10 >= 0x05")
	}
	if c.Status&flagZ != 0 {
		t.Fatal("did not expect Z flag: operands are not equal")
	}
}

func TestIndexedAbsoluteAddressing(t *testing.T) {
	c, bus := newTestCPU(t, []byte{
		0xa2, 0x02, // LDX #$02
		0xbd, 0x00, 0x03, // LDA $0300,X
	})
	bus.ram[0x0302] = 0x99
	step(t, c)
	step(t, c)
	if c.A != 0x99 {
		t.Fatalf("A = %#02x, want 0x99 from LDA $0300,X with X=2", c.A)
	}
}

func TestBRKPushesStatusWithBSetAndSetsInterruptDisable(t *testing.T) {
	c, bus := newTestCPU(t, []byte{0x00}) // BRK
	bus.ram[0xfffe] = 0x00
	bus.ram[0xffff] = 0x04
	step(t, c)

	if c.PC != 0x0400 {
		t.Fatalf("PC after BRK = %#04x, want 0x0400 (IRQ/BRK vector)", c.PC)
	}
	if c.Status&flagI == 0 {
		t.Fatal("expected I flag set after BRK")
	}

	pushedStatus := bus.ram[0x0100+int(c.SP)+1]
	if pushedStatus&flagB == 0 {
		t.Fatal("expected the pushed status byte to have B set for a software BRK")
	}
}
