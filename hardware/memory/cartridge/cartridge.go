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

// Package cartridge implements the expansion-port contract and its variant
// cartridge types (CartMapper implementations, one per hardware behavior).
// Variants are a closed, compile-time-known set, so they are represented as
// a tagged union of concrete types behind a narrow interface rather than as
// an open plugin registry — this also keeps snapshot serialization simple,
// per the teacher's own cartridge-mapper design.
package cartridge

import "github.com/c64ensemble/c64/curated"

// Unsupported is the curated sentinel pattern returned when a CRT header
// names a hardware type this package has no CartMapper for.
const Unsupported = "cartridge: unsupported variant (%v)"

// FileError is the curated sentinel pattern returned when a CRT image is
// truncated or fails its internal consistency checks.
const FileError = "cartridge: malformed image (%v)"

// Variant identifies a cartridge hardware type by its number in the CRT
// format's "hardware type" field. New builds a CartMapper for twelve of the
// values below and reports Unsupported for the others.
type Variant uint16

const (
	NORMAL        Variant = 0
	ACTION_REPLAY Variant = 1
	KCS_POWER     Variant = 2
	FINAL_CART_3  Variant = 3
	SIMONS_BASIC  Variant = 4
	OCEAN         Variant = 5
	FUNPLAY       Variant = 7
	SUPER_GAMES   Variant = 8
	ATOMIC_POWER  Variant = 9
	EPYX_FASTLOAD Variant = 10
	WESTERMANN    Variant = 11
	REX_UTILITY   Variant = 12
	ZAXXON        Variant = 19
	MAGIC_DESK    Variant = 21
	COMAL80       Variant = 22
	STRUCTURED    Variant = 23
	GEORAM        Variant = 60
	STARDOS       Variant = 66
)

// Chip is one ROM image packed into a CRT file: a bank of EPROM mapped at a
// fixed load address.
type Chip struct {
	Bank    int
	Address uint16
	Data    []byte
}

// CartMapper is the contract every cartridge variant satisfies. The
// expansion port holds exactly one CartMapper at a time and forwards every
// bus access that falls within $8000-$9FFF (ROML), $A000-$BFFF/$E000-$FFFF
// (ROMH), $DE00-$DEFF (I/O-1) and $DF00-$DFFF (I/O-2) to it.
type CartMapper interface {
	// Variant reports the concrete hardware type, used for labelling and
	// for picking the right snapshot layout.
	Variant() Variant

	// Peek/Poke service the ROML/ROMH windows.
	Peek(address uint16) (uint8, bool)
	Poke(address uint16, value uint8) bool

	// PeekIO1/PokeIO1 and PeekIO2/PokeIO2 service $DE00-$DEFF and
	// $DF00-$DFFF, the two I/O windows most bank-switching and on-board RAM
	// variants use as their control register.
	PeekIO1(address uint16) (uint8, bool)
	PokeIO1(address uint16, value uint8) bool
	PeekIO2(address uint16) (uint8, bool)
	PokeIO2(address uint16, value uint8) bool

	// GAME and EXROM report the cartridge's open-collector output lines.
	// Ultimax mode is !GAME && EXROM.
	GAME() bool
	EXROM() bool

	// Freeze is called when the expansion port's FREEZE button is
	// asserted. Most variants ignore it; Action Replay and Final
	// Cartridge III flip their internal banking state.
	Freeze()

	// Reset restores the variant's power-on bank/register state without
	// detaching it.
	Reset()

	// Snapshot/Restore persist the variant's private state.
	Snapshot() []byte
	Restore(data []byte) error
}

// New constructs the CartMapper for variant from the ROM chips found in a
// parsed CRT image. gameLine/exromLine are the header's own GAME/EXROM
// fields, consulted by variants (eg. NORMAL) whose lines never change.
func New(variant Variant, chips []Chip, gameLine, exromLine bool) (CartMapper, error) {
	switch variant {
	case NORMAL:
		return newNormal(chips, gameLine, exromLine), nil
	case ACTION_REPLAY:
		return newActionReplay(chips), nil
	case KCS_POWER:
		return newKCSPower(chips), nil
	case FINAL_CART_3:
		return newFinalCartridge3(chips), nil
	case SIMONS_BASIC:
		return newSimonsBasic(chips), nil
	case OCEAN:
		return newOcean(chips), nil
	case FUNPLAY:
		return newFunPlay(chips), nil
	case EPYX_FASTLOAD:
		return newEpyxFastload(chips), nil
	case ZAXXON:
		return newZaxxon(chips), nil
	case MAGIC_DESK:
		return newMagicDesk(chips), nil
	case COMAL80:
		return newComal80(chips), nil
	case GEORAM:
		return newGeoRAM(), nil
	}

	return nil, curated.Errorf(Unsupported, variant)
}
