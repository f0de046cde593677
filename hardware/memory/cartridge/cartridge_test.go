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

package cartridge

import "testing"

func TestNewRejectsUnsupportedVariant(t *testing.T) {
	_, err := New(Variant(9999), nil, true, true)
	if err == nil {
		t.Fatal("expected an error for an unsupported cartridge variant")
	}
}

func TestNormal8KReadsROML(t *testing.T) {
	chip := Chip{Bank: 0, Address: 0x8000, Data: make([]byte, 0x2000)}
	chip.Data[0] = 0xaa
	chip.Data[0x1fff] = 0xbb

	cart, err := New(NORMAL, []Chip{chip}, true, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v, ok := cart.Peek(0x8000); !ok || v != 0xaa {
		t.Fatalf("Peek($8000) = %#02x, %v; want 0xaa, true", v, ok)
	}
	if v, ok := cart.Peek(0x9fff); !ok || v != 0xbb {
		t.Fatalf("Peek($9FFF) = %#02x, %v; want 0xbb, true", v, ok)
	}
	if _, ok := cart.Peek(0xa000); ok {
		t.Fatal("an 8K NORMAL cartridge should not answer for $A000 (no ROMH chip)")
	}
	if !cart.GAME() || cart.EXROM() {
		t.Fatalf("expected GAME=1 EXROM=0 for an 8K NORMAL cart, got GAME=%v EXROM=%v", cart.GAME(), cart.EXROM())
	}
}

func TestNormal16KMapsBothWindows(t *testing.T) {
	lo := Chip{Bank: 0, Address: 0x8000, Data: make([]byte, 0x2000)}
	hi := Chip{Bank: 1, Address: 0xa000, Data: make([]byte, 0x2000)}
	hi.Data[0] = 0x77

	cart, err := New(NORMAL, []Chip{lo, hi}, true, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v, ok := cart.Peek(0xa000); !ok || v != 0x77 {
		t.Fatalf("Peek($A000) = %#02x, %v; want 0x77, true", v, ok)
	}
}

func TestMagicDeskBankSwitchAndDisable(t *testing.T) {
	chips := []Chip{
		{Bank: 0, Data: append([]byte{0x01}, make([]byte, 0x1fff)...)},
		{Bank: 1, Data: append([]byte{0x02}, make([]byte, 0x1fff)...)},
	}
	cart, err := New(MAGIC_DESK, chips, true, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v, ok := cart.Peek(0x8000); !ok || v != 0x01 {
		t.Fatalf("bank 0: Peek($8000) = %#02x, %v; want 0x01, true", v, ok)
	}

	if !cart.PokeIO1(0xde00, 0x01) {
		t.Fatal("PokeIO1($DE00) should be handled by MAGIC_DESK")
	}
	if v, ok := cart.Peek(0x8000); !ok || v != 0x02 {
		t.Fatalf("bank 1: Peek($8000) = %#02x, %v; want 0x02, true", v, ok)
	}

	cart.PokeIO1(0xde00, 0x80) // set the disable bit
	if _, ok := cart.Peek(0x8000); ok {
		t.Fatal("expected Peek to fail once MAGIC_DESK's disable bit is set")
	}
	if !cart.EXROM() {
		t.Fatal("expected EXROM to follow the disable bit once set")
	}
}

func TestOceanBankSwitchViaDE00(t *testing.T) {
	chips := []Chip{
		{Bank: 0, Data: append([]byte{0x10}, make([]byte, 0x1fff)...)},
		{Bank: 5, Data: append([]byte{0x50}, make([]byte, 0x1fff)...)},
	}
	cart, err := New(OCEAN, chips, true, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v, ok := cart.Peek(0x8000); !ok || v != 0x10 {
		t.Fatalf("bank 0: Peek($8000) = %#02x, %v; want 0x10, true", v, ok)
	}

	if !cart.PokeIO1(0xde00, 0x05) {
		t.Fatal("PokeIO1($DE00) should be handled by OCEAN")
	}
	if v, ok := cart.Peek(0x8000); !ok || v != 0x50 {
		t.Fatalf("bank 5: Peek($8000) = %#02x, %v; want 0x50, true", v, ok)
	}

	cart.Reset()
	if v, ok := cart.Peek(0x8000); !ok || v != 0x10 {
		t.Fatalf("after Reset: Peek($8000) = %#02x, %v; want bank to return to 0", v, ok)
	}
}

func TestEpyxFastloadDecaysVisibilityAfterTicks(t *testing.T) {
	chip := Chip{Bank: 0, Data: append([]byte{0xee}, make([]byte, 0x1fff)...)}
	cart, err := New(EPYX_FASTLOAD, []Chip{chip}, true, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v, ok := cart.Peek(0x8000); !ok || v != 0xee {
		t.Fatalf("Peek($8000) = %#02x, %v; want 0xee, true", v, ok)
	}

	ticker, ok := cart.(interface{ Tick() })
	if !ok {
		t.Fatal("EPYX_FASTLOAD must implement Tick()")
	}
	for i := 0; i < 512; i++ {
		ticker.Tick()
	}
	if _, ok := cart.Peek(0x8000); ok {
		t.Fatal("expected ROM to become invisible once the decay counter reaches zero with no I/O-1 access")
	}

	// a fresh read of $DE00/$DF00 resets the decay timer and restores visibility
	cart.PeekIO1(0xde00)
	if v, ok := cart.Peek(0x8000); !ok || v != 0xee {
		t.Fatalf("after PeekIO1: Peek($8000) = %#02x, %v; want 0xee, true", v, ok)
	}
}

func TestZaxxonBankFollowsReadAddress(t *testing.T) {
	bank0 := Chip{Bank: 0, Data: make([]byte, 0x2000)}
	bank0.Data[0] = 0xa0
	bank1 := Chip{Bank: 1, Data: make([]byte, 0x2000)}
	bank1.Data[0] = 0xb1
	bank2 := Chip{Bank: 2, Data: make([]byte, 0x2000)}
	bank2.Data[0] = 0xb2

	cart, err := New(ZAXXON, []Chip{bank0, bank1, bank2}, false, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if v, ok := cart.Peek(0x8000); !ok || v != 0xb1 {
		t.Fatalf("reading below $9000 should select bank 1: got %#02x, %v; want 0xb1, true", v, ok)
	}
	if v, ok := cart.Peek(0x9000); !ok || v != 0xb2 {
		t.Fatalf("reading $9000-$9FFF should select bank 2: got %#02x, %v; want 0xb2, true", v, ok)
	}
	if v, ok := cart.Peek(0xa000); !ok || v != 0xa0 {
		t.Fatalf("$A000-$BFFF is always fixed bank 0: got %#02x, %v; want 0xa0, true", v, ok)
	}
}

func TestGeoRAMBankedPages(t *testing.T) {
	cart, err := New(GEORAM, nil, true, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	cart.PokeIO2(0xdf00, 2) // select bank 2
	cart.PokeIO2(0xdf01, 3) // select page 3 within that bank
	if !cart.PokeIO1(0xde05, 0x42) {
		t.Fatal("PokeIO1 should be handled by GEORAM")
	}

	v, ok := cart.PeekIO1(0xde05)
	if !ok || v != 0x42 {
		t.Fatalf("PeekIO1($DE05) = %#02x, %v; want 0x42, true", v, ok)
	}

	// switching away and back to the same bank/page should still see the write
	cart.PokeIO2(0xdf00, 0)
	cart.PokeIO2(0xdf00, 2)
	v, ok = cart.PeekIO1(0xde05)
	if !ok || v != 0x42 {
		t.Fatalf("after switching banks and back, PeekIO1($DE05) = %#02x, %v; want 0x42, true", v, ok)
	}
}

func TestMagicDeskSnapshotRoundTrip(t *testing.T) {
	chips := []Chip{{Bank: 3, Data: make([]byte, 0x2000)}}
	cart, err := New(MAGIC_DESK, chips, true, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cart.PokeIO1(0xde00, 0x03)

	data := cart.Snapshot()

	restored, err := New(MAGIC_DESK, chips, true, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := restored.Restore(data); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.(*magicDesk).bank != 3 {
		t.Fatalf("bank not restored: got %d, want 3", restored.(*magicDesk).bank)
	}
}
