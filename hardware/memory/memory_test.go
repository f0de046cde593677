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

package memory

import "testing"

func newTestMemory(t *testing.T) *Memory {
	t.Helper()
	basic := make([]byte, 8192)
	for i := range basic {
		basic[i] = 0xa0 // distinct from RAM/kernal fill so bank checks can't false-positive
	}
	kernal := make([]byte, 8192)
	for i := range kernal {
		kernal[i] = 0xe0
	}
	char := make([]byte, 4096)

	mem, err := NewMemory(basic, char, kernal)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	return mem
}

func TestNewMemoryRejectsWrongSizes(t *testing.T) {
	if _, err := NewMemory(make([]byte, 1), make([]byte, 4096), make([]byte, 8192)); err == nil {
		t.Fatal("expected an error for a short BASIC ROM")
	}
	if _, err := NewMemory(make([]byte, 8192), make([]byte, 1), make([]byte, 8192)); err == nil {
		t.Fatal("expected an error for a short character ROM")
	}
	if _, err := NewMemory(make([]byte, 8192), make([]byte, 4096), make([]byte, 1)); err == nil {
		t.Fatal("expected an error for a short KERNAL ROM")
	}
}

// TestPowerOnMapsBasicAndKernal is a regression test for the no-cartridge
// banking default: with the power-on processor port value (loram=hiram=1)
// and no cartridge attached, GAME and EXROM must both read as high
// (undriven expansion port lines pulled up), which is what routes
// $A000-$BFFF to BASIC instead of falling through to Ultimax cartridge-hi
// mapping and, since no cartridge exists, straight through to open RAM.
func TestPowerOnMapsBasicAndKernal(t *testing.T) {
	mem := newTestMemory(t)

	b, err := mem.Read(0xa000)
	if err != nil {
		t.Fatalf("Read($A000): %v", err)
	}
	if b != 0xa0 {
		t.Fatalf("BASIC ROM not mapped at $A000 on power-on: got %#02x, want %#02x", b, 0xa0)
	}

	k, err := mem.Read(0xe000)
	if err != nil {
		t.Fatalf("Read($E000): %v", err)
	}
	if k != 0xe0 {
		t.Fatalf("KERNAL ROM not mapped at $E000 on power-on: got %#02x, want %#02x", k, 0xe0)
	}
}

// TestLoramOutBanksInRAM confirms that dropping LORAM (bit 0 of $01) while
// HIRAM stays set switches $A000-$BFFF from BASIC to RAM, the classic
// "bank out BASIC" trick every C64 machine-code program relies on.
func TestLoramOutBanksInRAM(t *testing.T) {
	mem := newTestMemory(t)

	if err := mem.Write(0x0001, 0x36); err != nil { // clear LORAM, keep HIRAM
		t.Fatalf("Write($01): %v", err)
	}
	if err := mem.Write(0xa000, 0x42); err != nil {
		t.Fatalf("Write($A000): %v", err)
	}
	b, err := mem.Read(0xa000)
	if err != nil {
		t.Fatalf("Read($A000): %v", err)
	}
	if b != 0x42 {
		t.Fatalf("expected RAM at $A000 with LORAM out, got %#02x", b)
	}
}

func TestSeedRAMDeterministicChequerboard(t *testing.T) {
	mem := newTestMemory(t)
	mem.SeedRAM(false, nil)

	for i := 0; i < 16; i++ {
		want := uint8(0x00)
		if i%4 >= 2 {
			want = 0xff
		}
		if mem.ram[i] != want {
			t.Fatalf("ram[%d] = %#02x, want %#02x", i, mem.ram[i], want)
		}
	}
}

func TestSeedRAMRandomised(t *testing.T) {
	mem := newTestMemory(t)
	next := uint8(0)
	mem.SeedRAM(true, func() uint8 {
		next++
		return next
	})

	if mem.ram[0] != 1 || mem.ram[1] != 2 || mem.ram[2] != 3 {
		t.Fatalf("randomised fill did not consult rnd in order: got %#02x %#02x %#02x", mem.ram[0], mem.ram[1], mem.ram[2])
	}
}

func TestPokeBypassesBanking(t *testing.T) {
	mem := newTestMemory(t)
	// $A000 currently maps to BASIC ROM; Poke must still land in the
	// underlying RAM array regardless, since loaders use it to stage a
	// program's bytes ahead of a RUN.
	if err := mem.Poke(0xa000, 0x99); err != nil {
		t.Fatalf("Poke: %v", err)
	}
	if mem.ram[0xa000] != 0x99 {
		t.Fatalf("Poke did not write through to RAM: got %#02x", mem.ram[0xa000])
	}
}
