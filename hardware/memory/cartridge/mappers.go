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

// bankOf finds the ROM chip that owns the given bank number, or nil.
func bankOf(chips []Chip, bank int) *Chip {
	for i := range chips {
		if chips[i].Bank == bank {
			return &chips[i]
		}
	}
	return nil
}

// romlPeek reads the chip byte at address-base, reporting false when that
// offset falls outside data.
func romlPeek(data []byte, address uint16, base uint16) (uint8, bool) {
	off := int(address - base)
	if off < 0 || off >= len(data) {
		return 0, false
	}
	return data[off], true
}

// --- NORMAL: fixed ROM, no bank switching, GAME/EXROM fixed at attach time.

type normal struct {
	chips []Chip
	game  bool
	exrom bool
}

func newNormal(chips []Chip, game, exrom bool) *normal {
	return &normal{chips: chips, game: game, exrom: exrom}
}

func (c *normal) Variant() Variant { return NORMAL }

func (c *normal) Peek(address uint16) (uint8, bool) {
	if address < 0xa000 {
		if chip := bankOf(c.chips, 0); chip != nil {
			return romlPeek(chip.Data, address, 0x8000)
		}
		return 0, false
	}
	if chip := bankOf(c.chips, 0); chip != nil && len(chip.Data) > 0x2000 {
		return romlPeek(chip.Data, address, 0x8000)
	}
	if chip := bankOf(c.chips, 1); chip != nil {
		base := uint16(0xa000)
		if !c.game {
			base = 0xe000
		}
		return romlPeek(chip.Data, address, base)
	}
	return 0, false
}

func (c *normal) Poke(uint16, uint8) bool             { return false }
func (c *normal) PeekIO1(uint16) (uint8, bool)        { return 0, false }
func (c *normal) PokeIO1(uint16, uint8) bool          { return false }
func (c *normal) PeekIO2(uint16) (uint8, bool)        { return 0, false }
func (c *normal) PokeIO2(uint16, uint8) bool          { return false }
func (c *normal) GAME() bool                          { return c.game }
func (c *normal) EXROM() bool                         { return c.exrom }
func (c *normal) Freeze()                             {}
func (c *normal) Reset()                              {}
func (c *normal) Snapshot() []byte                    { return nil }
func (c *normal) Restore(data []byte) error           { return nil }

// --- ACTION_REPLAY: 32 KiB in four 8 KiB banks, freeze button, on-board 8 KiB RAM.

type actionReplay struct {
	chips  []Chip
	ram    [0x2000]byte
	bank   uint8
	ramOn  bool
	exrom  bool
	game   bool
	frozen bool
}

func newActionReplay(chips []Chip) *actionReplay {
	return &actionReplay{chips: chips, exrom: false, game: true}
}

func (c *actionReplay) Variant() Variant { return ACTION_REPLAY }

func (c *actionReplay) Peek(address uint16) (uint8, bool) {
	if c.ramOn {
		return c.ram[address&0x1fff], true
	}
	if chip := bankOf(c.chips, int(c.bank)); chip != nil {
		return romlPeek(chip.Data, address, 0x8000)
	}
	return 0, false
}

func (c *actionReplay) Poke(address uint16, value uint8) bool {
	if c.ramOn {
		c.ram[address&0x1fff] = value
		return true
	}
	return false
}

func (c *actionReplay) PeekIO1(uint16) (uint8, bool) { return 0, false }

// PokeIO1 writes the control register: bits 0-1 select the bank, bit 2
// maps the on-board RAM in place of ROM, and bit 3 releases EXROM (high).
// GAME stays high and the other bits are ignored.
func (c *actionReplay) PokeIO1(address uint16, value uint8) bool {
	c.bank = value & 0x03
	c.ramOn = value&0x04 != 0
	if value&0x08 != 0 {
		c.exrom = true
		c.game = true
	} else {
		c.exrom = false
		c.game = true
	}
	c.frozen = false
	return true
}

func (c *actionReplay) PeekIO2(address uint16) (uint8, bool) {
	return c.ram[0x1f00+(address&0xff)], true
}

func (c *actionReplay) PokeIO2(address uint16, value uint8) bool {
	c.ram[0x1f00+(address&0xff)] = value
	return true
}

func (c *actionReplay) GAME() bool  { return c.game }
func (c *actionReplay) EXROM() bool { return c.exrom }

// Freeze asserts NMI (handled by the expansion port) and forces the
// cartridge into its RAM+ROM-visible frozen configuration.
func (c *actionReplay) Freeze() {
	c.frozen = true
	c.exrom = false
	c.game = false
	c.ramOn = false
	c.bank = 0
}

func (c *actionReplay) Reset() {
	c.bank = 0
	c.ramOn = false
	c.exrom = false
	c.game = true
	c.frozen = false
}

func (c *actionReplay) Snapshot() []byte {
	buf := make([]byte, 0x2000+2)
	copy(buf, c.ram[:])
	buf[0x2000] = c.bank
	if c.ramOn {
		buf[0x2001] = 1
	}
	return buf
}

func (c *actionReplay) Restore(data []byte) error {
	if len(data) < 0x2001 {
		return nil
	}
	copy(c.ram[:], data[:0x2000])
	c.bank = data[0x2000]
	c.ramOn = data[0x2001] != 0
	return nil
}

// --- KCS_POWER: writes to $DE00/$DE01 set GAME/EXROM, 128 B RAM at $DF80.

type kcsPower struct {
	chips []Chip
	ram   [128]byte
	game  bool
	exrom bool
}

func newKCSPower(chips []Chip) *kcsPower {
	return &kcsPower{chips: chips, game: true, exrom: false}
}

func (c *kcsPower) Variant() Variant { return KCS_POWER }

func (c *kcsPower) Peek(address uint16) (uint8, bool) {
	bank := 0
	if address >= 0xa000 {
		bank = 1
	}
	if chip := bankOf(c.chips, bank); chip != nil {
		base := uint16(0x8000)
		if bank == 1 {
			base = 0xa000
		}
		return romlPeek(chip.Data, address, base)
	}
	return 0, false
}

func (c *kcsPower) Poke(uint16, uint8) bool { return false }

func (c *kcsPower) PeekIO1(address uint16) (uint8, bool) {
	if address == 0xde00 {
		c.game, c.exrom = true, false
	} else if address == 0xde01 {
		c.game, c.exrom = false, true
	}
	return 0, true
}

func (c *kcsPower) PokeIO1(address uint16, value uint8) bool {
	if address == 0xde00 {
		c.game, c.exrom = true, false
	} else if address == 0xde01 {
		c.game, c.exrom = false, true
	}
	return true
}

func (c *kcsPower) PeekIO2(address uint16) (uint8, bool) {
	if address >= 0xdf80 && address < 0xdf80+128 {
		return c.ram[address-0xdf80], true
	}
	return 0, false
}

func (c *kcsPower) PokeIO2(address uint16, value uint8) bool {
	if address >= 0xdf80 && address < 0xdf80+128 {
		c.ram[address-0xdf80] = value
		return true
	}
	return false
}

func (c *kcsPower) GAME() bool                { return c.game }
func (c *kcsPower) EXROM() bool               { return c.exrom }
func (c *kcsPower) Freeze()                   {}
func (c *kcsPower) Reset()                    { c.game, c.exrom = true, false }
func (c *kcsPower) Snapshot() []byte          { return append([]byte{}, c.ram[:]...) }
func (c *kcsPower) Restore(data []byte) error { copy(c.ram[:], data); return nil }

// --- FINAL_CART_3: 64 KiB in four 16 KiB banks, one control register at $DFFF.

type finalCartridge3 struct {
	chips  []Chip
	bank   uint8
	hidden bool
	game   bool
	exrom  bool
}

func newFinalCartridge3(chips []Chip) *finalCartridge3 {
	return &finalCartridge3{chips: chips, game: false, exrom: false}
}

func (c *finalCartridge3) Variant() Variant { return FINAL_CART_3 }

func (c *finalCartridge3) Peek(address uint16) (uint8, bool) {
	if c.hidden {
		return 0, false
	}
	chip := bankOf(c.chips, int(c.bank))
	if chip == nil {
		return 0, false
	}
	if address < 0xa000 {
		return romlPeek(chip.Data, address, 0x8000)
	}
	return romlPeek(chip.Data, address, 0xa000-0x2000)
}

func (c *finalCartridge3) Poke(uint16, uint8) bool      { return false }
func (c *finalCartridge3) PeekIO1(uint16) (uint8, bool) { return 0, false }
func (c *finalCartridge3) PokeIO1(uint16, uint8) bool   { return false }
func (c *finalCartridge3) PeekIO2(uint16) (uint8, bool) { return 0, false }

// PokeIO2 at $DFFF: bits 0-1 select bank, bit 5 hides the cartridge
// (software-controlled EXROM), bit 6 sets GAME.
func (c *finalCartridge3) PokeIO2(address uint16, value uint8) bool {
	if address != 0xdfff {
		return false
	}
	c.bank = value & 0x03
	c.hidden = value&0x20 != 0
	c.game = value&0x40 != 0
	c.exrom = c.hidden
	return true
}

func (c *finalCartridge3) GAME() bool  { return c.game }
func (c *finalCartridge3) EXROM() bool { return c.exrom }

// Freeze un-hides the cartridge and selects bank 0, as the real hardware's
// freeze button forces a re-visible NORMAL-like configuration for the
// freezer routine to run from.
func (c *finalCartridge3) Freeze() {
	c.hidden = false
	c.bank = 0
	c.game = false
	c.exrom = false
}

func (c *finalCartridge3) Reset()                    { c.hidden = false; c.bank = 0 }
func (c *finalCartridge3) Snapshot() []byte          { return []byte{c.bank, boolByte(c.hidden)} }
func (c *finalCartridge3) Restore(data []byte) error {
	if len(data) < 2 {
		return nil
	}
	c.bank = data[0]
	c.hidden = data[1] != 0
	return nil
}

// --- SIMONS_BASIC: a write to $DE00 selects 8 KiB visibility, a write to
// $DF00 selects 16 KiB.

type simonsBasic struct {
	chips  []Chip
	sixteen bool
}

func newSimonsBasic(chips []Chip) *simonsBasic { return &simonsBasic{chips: chips, sixteen: true} }

func (c *simonsBasic) Variant() Variant { return SIMONS_BASIC }

func (c *simonsBasic) Peek(address uint16) (uint8, bool) {
	if address < 0xa000 {
		if chip := bankOf(c.chips, 0); chip != nil {
			return romlPeek(chip.Data, address, 0x8000)
		}
		return 0, false
	}
	if !c.sixteen {
		return 0, false
	}
	if chip := bankOf(c.chips, 1); chip != nil {
		return romlPeek(chip.Data, address, 0xa000)
	}
	return 0, false
}

func (c *simonsBasic) Poke(uint16, uint8) bool { return false }
func (c *simonsBasic) PeekIO1(uint16) (uint8, bool) { return 0, false }

func (c *simonsBasic) PokeIO1(address uint16, value uint8) bool {
	if address == 0xde00 {
		c.sixteen = false
		return true
	}
	return false
}

func (c *simonsBasic) PeekIO2(uint16) (uint8, bool) { return 0, false }

func (c *simonsBasic) PokeIO2(address uint16, value uint8) bool {
	if address == 0xdf00 {
		c.sixteen = true
		return true
	}
	return false
}

func (c *simonsBasic) GAME() bool                { return false }
func (c *simonsBasic) EXROM() bool               { return false }
func (c *simonsBasic) Freeze()                   {}
func (c *simonsBasic) Reset()                    { c.sixteen = true }
func (c *simonsBasic) Snapshot() []byte          { return []byte{boolByte(c.sixteen)} }
func (c *simonsBasic) Restore(data []byte) error { if len(data) > 0 { c.sixteen = data[0] != 0 }; return nil }

// --- OCEAN: low 6 bits of a write to $DE00 select an 8 KiB bank, up to 64 banks.

type ocean struct {
	chips []Chip
	bank  uint8
}

func newOcean(chips []Chip) *ocean { return &ocean{chips: chips} }

func (c *ocean) Variant() Variant { return OCEAN }

func (c *ocean) Peek(address uint16) (uint8, bool) {
	chip := bankOf(c.chips, int(c.bank))
	if chip == nil {
		return 0, false
	}
	base := uint16(0x8000)
	if address >= 0xa000 {
		base = 0xa000
	}
	return romlPeek(chip.Data, address, base)
}

func (c *ocean) Poke(uint16, uint8) bool      { return false }
func (c *ocean) PeekIO1(uint16) (uint8, bool) { return 0, false }

func (c *ocean) PokeIO1(address uint16, value uint8) bool {
	if address == 0xde00 {
		c.bank = value & 0x3f
		return true
	}
	return false
}

func (c *ocean) PeekIO2(uint16) (uint8, bool)  { return 0, false }
func (c *ocean) PokeIO2(uint16, uint8) bool    { return false }
func (c *ocean) GAME() bool                    { return true }
func (c *ocean) EXROM() bool                   { return false }
func (c *ocean) Freeze()                       {}
func (c *ocean) Reset()                        { c.bank = 0 }
func (c *ocean) Snapshot() []byte              { return []byte{c.bank} }
func (c *ocean) Restore(data []byte) error     { if len(data) > 0 { c.bank = data[0] }; return nil }

// --- FUNPLAY: writes to $DE00 encode the bank with bits rearranged.

type funPlay struct {
	chips []Chip
	bank  uint8
}

func newFunPlay(chips []Chip) *funPlay { return &funPlay{chips: chips} }

func (c *funPlay) Variant() Variant { return FUNPLAY }

func (c *funPlay) Peek(address uint16) (uint8, bool) {
	chip := bankOf(c.chips, int(c.bank))
	if chip == nil {
		return 0, false
	}
	return romlPeek(chip.Data, address, 0x8000)
}

func (c *funPlay) Poke(uint16, uint8) bool      { return false }
func (c *funPlay) PeekIO1(uint16) (uint8, bool) { return 0, false }

func (c *funPlay) PokeIO1(address uint16, value uint8) bool {
	if address != 0xde00 {
		return false
	}
	if value == 0x86 {
		c.bank = 0
		return true
	}
	// b2 b1 b0 <- bits 5 4 3 of the written value; b3 is always clear.
	c.bank = (value >> 3) & 0x07
	return true
}

func (c *funPlay) PeekIO2(uint16) (uint8, bool) { return 0, false }
func (c *funPlay) PokeIO2(uint16, uint8) bool   { return false }
func (c *funPlay) GAME() bool                   { return true }
func (c *funPlay) EXROM() bool                  { return false }
func (c *funPlay) Freeze()                      {}
func (c *funPlay) Reset()                       { c.bank = 0 }
func (c *funPlay) Snapshot() []byte             { return []byte{c.bank} }
func (c *funPlay) Restore(data []byte) error    { if len(data) > 0 { c.bank = data[0] }; return nil }

// --- EPYX_FASTLOAD: 8 KiB ROM, EXROM held low by an RC timer that decays
// after ~512 CPU cycles of no I/O-1 access, approximated here as a cycle
// counter driven by explicit Tick() calls from the hardware package's
// cycle loop.

type epyxFastload struct {
	chips   []Chip
	decay   int
	visible bool
}

func newEpyxFastload(chips []Chip) *epyxFastload {
	return &epyxFastload{chips: chips, visible: true, decay: 512}
}

func (c *epyxFastload) Variant() Variant { return EPYX_FASTLOAD }

func (c *epyxFastload) Peek(address uint16) (uint8, bool) {
	if !c.visible {
		return 0, false
	}
	chip := bankOf(c.chips, 0)
	if chip == nil {
		return 0, false
	}
	return romlPeek(chip.Data, address, 0x8000)
}

func (c *epyxFastload) Poke(uint16, uint8) bool { return false }

func (c *epyxFastload) PeekIO1(uint16) (uint8, bool) {
	c.decay = 512
	c.visible = true
	return 0, true
}

func (c *epyxFastload) PokeIO1(uint16, uint8) bool { return false }
func (c *epyxFastload) PeekIO2(uint16) (uint8, bool) { return 0, false }
func (c *epyxFastload) PokeIO2(uint16, uint8) bool   { return false }
func (c *epyxFastload) GAME() bool                   { return true }
func (c *epyxFastload) EXROM() bool                  { return false }
func (c *epyxFastload) Freeze()                      {}
func (c *epyxFastload) Reset()                       { c.decay = 512; c.visible = true }
func (c *epyxFastload) Snapshot() []byte             { return []byte{boolByte(c.visible)} }
func (c *epyxFastload) Restore(data []byte) error {
	if len(data) > 0 {
		c.visible = data[0] != 0
	}
	return nil
}

// Tick decrements the decay counter; the hardware package's cycle loop calls
// this once per CPU cycle while this variant is attached.
func (c *epyxFastload) Tick() {
	if c.decay > 0 {
		c.decay--
		if c.decay == 0 {
			c.visible = false
		}
	}
}

// --- ZAXXON: bank implied by which half of $8000-$9FFF was last read.

type zaxxon struct {
	chips []Chip
	bank  int
}

func newZaxxon(chips []Chip) *zaxxon { return &zaxxon{chips: chips, bank: 1} }

func (c *zaxxon) Variant() Variant { return ZAXXON }

func (c *zaxxon) Peek(address uint16) (uint8, bool) {
	if address < 0x9000 {
		c.bank = 1
	} else if address < 0xa000 {
		c.bank = 2
	}
	chip := bankOf(c.chips, c.bank)
	if chip == nil {
		return 0, false
	}
	if address < 0xa000 {
		return romlPeek(chip.Data, address, 0x8000+uint16(0x1000*((c.bank-1)%2)))
	}
	if chip := bankOf(c.chips, 0); chip != nil {
		return romlPeek(chip.Data, address, 0xa000)
	}
	return 0, false
}

func (c *zaxxon) Poke(uint16, uint8) bool           { return false }
func (c *zaxxon) PeekIO1(uint16) (uint8, bool)      { return 0, false }
func (c *zaxxon) PokeIO1(uint16, uint8) bool        { return false }
func (c *zaxxon) PeekIO2(uint16) (uint8, bool)      { return 0, false }
func (c *zaxxon) PokeIO2(uint16, uint8) bool        { return false }
func (c *zaxxon) GAME() bool                        { return false }
func (c *zaxxon) EXROM() bool                       { return false }
func (c *zaxxon) Freeze()                           {}
func (c *zaxxon) Reset()                            { c.bank = 1 }
func (c *zaxxon) Snapshot() []byte                  { return []byte{byte(c.bank)} }
func (c *zaxxon) Restore(data []byte) error         { if len(data) > 0 { c.bank = int(data[0]) }; return nil }

// --- MAGIC_DESK: bit 7 of $DE00 disables the cartridge, low nibble selects bank.

type magicDesk struct {
	chips    []Chip
	bank     uint8
	disabled bool
}

func newMagicDesk(chips []Chip) *magicDesk { return &magicDesk{chips: chips} }

func (c *magicDesk) Variant() Variant { return MAGIC_DESK }

func (c *magicDesk) Peek(address uint16) (uint8, bool) {
	if c.disabled {
		return 0, false
	}
	chip := bankOf(c.chips, int(c.bank))
	if chip == nil {
		return 0, false
	}
	return romlPeek(chip.Data, address, 0x8000)
}

func (c *magicDesk) Poke(uint16, uint8) bool      { return false }
func (c *magicDesk) PeekIO1(uint16) (uint8, bool) { return 0, false }

func (c *magicDesk) PokeIO1(address uint16, value uint8) bool {
	if address != 0xde00 {
		return false
	}
	c.disabled = value&0x80 != 0
	c.bank = value & 0x0f
	return true
}

func (c *magicDesk) PeekIO2(uint16) (uint8, bool) { return 0, false }
func (c *magicDesk) PokeIO2(uint16, uint8) bool   { return false }
func (c *magicDesk) GAME() bool                   { return true }
func (c *magicDesk) EXROM() bool                  { return c.disabled }
func (c *magicDesk) Freeze()                      {}
func (c *magicDesk) Reset()                       { c.bank = 0; c.disabled = false }
func (c *magicDesk) Snapshot() []byte             { return []byte{c.bank, boolByte(c.disabled)} }
func (c *magicDesk) Restore(data []byte) error {
	if len(data) < 2 {
		return nil
	}
	c.bank = data[0]
	c.disabled = data[1] != 0
	return nil
}

// --- COMAL80: $DE00 selects one of 4 banks and one of 3 configurations via bits 5-7.

type comal80 struct {
	chips  []Chip
	bank   uint8
	config uint8
}

func newComal80(chips []Chip) *comal80 { return &comal80{chips: chips} }

func (c *comal80) Variant() Variant { return COMAL80 }

func (c *comal80) Peek(address uint16) (uint8, bool) {
	if c.config == 2 {
		return 0, false
	}
	bank := int(c.bank)
	if address >= 0xa000 {
		if c.config != 0 {
			return 0, false
		}
		bank += 4
	}
	chip := bankOf(c.chips, bank)
	if chip == nil {
		return 0, false
	}
	base := uint16(0x8000)
	if address >= 0xa000 {
		base = 0xa000
	}
	return romlPeek(chip.Data, address, base)
}

func (c *comal80) Poke(uint16, uint8) bool      { return false }
func (c *comal80) PeekIO1(uint16) (uint8, bool) { return 0, false }

func (c *comal80) PokeIO1(address uint16, value uint8) bool {
	if address != 0xde00 {
		return false
	}
	c.bank = value & 0x03
	c.config = (value >> 5) & 0x03
	return true
}

func (c *comal80) PeekIO2(uint16) (uint8, bool) { return 0, false }
func (c *comal80) PokeIO2(uint16, uint8) bool   { return false }
func (c *comal80) GAME() bool                   { return c.config != 0 }
func (c *comal80) EXROM() bool                  { return c.config == 2 }
func (c *comal80) Freeze()                      {}
func (c *comal80) Reset()                       { c.bank = 0; c.config = 0 }
func (c *comal80) Snapshot() []byte             { return []byte{c.bank, c.config} }
func (c *comal80) Restore(data []byte) error {
	if len(data) < 2 {
		return nil
	}
	c.bank, c.config = data[0], data[1]
	return nil
}

// --- GEORAM: 512 KiB battery-backed RAM paged into $DE00-$DEFF via two
// I/O-2 latches selecting a 16 KiB bank and a 256 B page within it.

type geoRAM struct {
	ram  [512 * 1024]byte
	bank uint8
	page uint8
}

func newGeoRAM() *geoRAM { return &geoRAM{} }

func (c *geoRAM) Variant() Variant { return GEORAM }

func (c *geoRAM) Peek(uint16) (uint8, bool) { return 0, false }
func (c *geoRAM) Poke(uint16, uint8) bool   { return false }

func (c *geoRAM) offset() int {
	return int(c.bank)*0x4000 + int(c.page)*0x100
}

func (c *geoRAM) PeekIO1(address uint16) (uint8, bool) {
	off := c.offset() + int(address&0xff)
	if off >= len(c.ram) {
		return 0, true
	}
	return c.ram[off], true
}

func (c *geoRAM) PokeIO1(address uint16, value uint8) bool {
	off := c.offset() + int(address&0xff)
	if off < len(c.ram) {
		c.ram[off] = value
	}
	return true
}

func (c *geoRAM) PeekIO2(uint16) (uint8, bool) { return 0, false }

func (c *geoRAM) PokeIO2(address uint16, value uint8) bool {
	switch address & 0xff {
	case 0:
		c.bank = value
	case 1:
		c.page = value & 0x3f
	default:
		return false
	}
	return true
}

func (c *geoRAM) GAME() bool                   { return true }
func (c *geoRAM) EXROM() bool                  { return true }
func (c *geoRAM) Freeze()                      {}
func (c *geoRAM) Reset()                       { c.bank, c.page = 0, 0 }
func (c *geoRAM) Snapshot() []byte             { return append([]byte{c.bank, c.page}, c.ram[:]...) }
func (c *geoRAM) Restore(data []byte) error {
	if len(data) < 2 {
		return nil
	}
	c.bank, c.page = data[0], data[1]
	if len(data) > 2 {
		copy(c.ram[:], data[2:])
	}
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
