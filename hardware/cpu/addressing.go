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

type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndexedIndirect // (zp,X)
	modeIndirectIndexed // (zp),Y
	modeRelative
)

// resolveRead fetches the operand address and value for a read-only
// instruction, applying the one-cycle page-crossing penalty that indexed
// absolute and (zp),Y addressing incur when the index carries into the
// high byte. Write and read-modify-write instructions use resolveAddress
// instead, which always pays the worst-case cycle count.
func (cpu *CPU) resolveRead(mode addrMode, cycleCallback func() error) (uint16, uint8, error) {
	switch mode {
	case modeImmediate:
		address := cpu.PC
		v, err := cpu.read8BitPC(cycleCallback)
		return address, v, err

	case modeZeroPage:
		zp, err := cpu.read8BitPC(cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		v, err := cpu.read8Bit(uint16(zp), cycleCallback)
		return uint16(zp), v, err

	case modeZeroPageX:
		zp, err := cpu.read8BitPC(cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		if err := cycleCallback(); err != nil {
			return 0, 0, err
		}
		address := uint16(zp + cpu.X)
		v, err := cpu.read8Bit(address, cycleCallback)
		return address, v, err

	case modeZeroPageY:
		zp, err := cpu.read8BitPC(cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		if err := cycleCallback(); err != nil {
			return 0, 0, err
		}
		address := uint16(zp + cpu.Y)
		v, err := cpu.read8Bit(address, cycleCallback)
		return address, v, err

	case modeAbsolute:
		address, err := cpu.read16BitPC(cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		v, err := cpu.read8Bit(address, cycleCallback)
		return address, v, err

	case modeAbsoluteX:
		base, err := cpu.read16BitPC(cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		address := base + uint16(cpu.X)
		if pageOf(base) != pageOf(address) {
			if err := cycleCallback(); err != nil {
				return 0, 0, err
			}
		}
		v, err := cpu.read8Bit(address, cycleCallback)
		return address, v, err

	case modeAbsoluteY:
		base, err := cpu.read16BitPC(cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		address := base + uint16(cpu.Y)
		if pageOf(base) != pageOf(address) {
			if err := cycleCallback(); err != nil {
				return 0, 0, err
			}
		}
		v, err := cpu.read8Bit(address, cycleCallback)
		return address, v, err

	case modeIndexedIndirect:
		zp, err := cpu.read8BitPC(cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		if err := cycleCallback(); err != nil {
			return 0, 0, err
		}
		lo, err := cpu.read8Bit(uint16(zp+cpu.X), cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		hi, err := cpu.read8Bit(uint16(zp+cpu.X+1), cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		address := uint16(hi)<<8 | uint16(lo)
		v, err := cpu.read8Bit(address, cycleCallback)
		return address, v, err

	case modeIndirectIndexed:
		zp, err := cpu.read8BitPC(cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		lo, err := cpu.read8Bit(uint16(zp), cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		hi, err := cpu.read8Bit(uint16(zp+1), cycleCallback)
		if err != nil {
			return 0, 0, err
		}
		base := uint16(hi)<<8 | uint16(lo)
		address := base + uint16(cpu.Y)
		if pageOf(base) != pageOf(address) {
			if err := cycleCallback(); err != nil {
				return 0, 0, err
			}
		}
		v, err := cpu.read8Bit(address, cycleCallback)
		return address, v, err
	}

	return 0, 0, cpu.unimplemented(0)
}

// resolveAddress computes the effective address for a write or
// read-modify-write instruction without reading through it, always
// consuming the addressing mode's worst-case cycle count.
func (cpu *CPU) resolveAddress(mode addrMode, cycleCallback func() error) (uint16, error) {
	switch mode {
	case modeZeroPage:
		zp, err := cpu.read8BitPC(cycleCallback)
		return uint16(zp), err

	case modeZeroPageX:
		zp, err := cpu.read8BitPC(cycleCallback)
		if err != nil {
			return 0, err
		}
		if err := cycleCallback(); err != nil {
			return 0, err
		}
		return uint16(zp + cpu.X), nil

	case modeZeroPageY:
		zp, err := cpu.read8BitPC(cycleCallback)
		if err != nil {
			return 0, err
		}
		if err := cycleCallback(); err != nil {
			return 0, err
		}
		return uint16(zp + cpu.Y), nil

	case modeAbsolute:
		return cpu.read16BitPC(cycleCallback)

	case modeAbsoluteX:
		base, err := cpu.read16BitPC(cycleCallback)
		if err != nil {
			return 0, err
		}
		if err := cycleCallback(); err != nil {
			return 0, err
		}
		return base + uint16(cpu.X), nil

	case modeAbsoluteY:
		base, err := cpu.read16BitPC(cycleCallback)
		if err != nil {
			return 0, err
		}
		if err := cycleCallback(); err != nil {
			return 0, err
		}
		return base + uint16(cpu.Y), nil

	case modeIndexedIndirect:
		zp, err := cpu.read8BitPC(cycleCallback)
		if err != nil {
			return 0, err
		}
		if err := cycleCallback(); err != nil {
			return 0, err
		}
		lo, err := cpu.read8Bit(uint16(zp+cpu.X), cycleCallback)
		if err != nil {
			return 0, err
		}
		hi, err := cpu.read8Bit(uint16(zp+cpu.X+1), cycleCallback)
		if err != nil {
			return 0, err
		}
		return uint16(hi)<<8 | uint16(lo), nil

	case modeIndirectIndexed:
		zp, err := cpu.read8BitPC(cycleCallback)
		if err != nil {
			return 0, err
		}
		lo, err := cpu.read8Bit(uint16(zp), cycleCallback)
		if err != nil {
			return 0, err
		}
		hi, err := cpu.read8Bit(uint16(zp+1), cycleCallback)
		if err != nil {
			return 0, err
		}
		base := uint16(hi)<<8 | uint16(lo)
		if err := cycleCallback(); err != nil {
			return 0, err
		}
		return base + uint16(cpu.Y), nil
	}

	return 0, cpu.unimplemented(0)
}

func pageOf(address uint16) uint16 {
	return address & 0xff00
}

func (cpu *CPU) read16Bit(address uint16, cycleCallback func() error) (uint16, error) {
	lo, err := cpu.read8Bit(address, cycleCallback)
	if err != nil {
		return 0, err
	}
	hi, err := cpu.read8Bit(address+1, cycleCallback)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (cpu *CPU) read16BitPC(cycleCallback func() error) (uint16, error) {
	lo, err := cpu.read8BitPC(cycleCallback)
	if err != nil {
		return 0, err
	}
	hi, err := cpu.read8BitPC(cycleCallback)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// readIndirectBuggy implements the 6502/6510's well-known JMP ($xxFF) bug:
// when the indirect pointer's low byte is $FF, the high byte is fetched
// from the start of the same page rather than the next page.
func (cpu *CPU) readIndirectBuggy(pointer uint16, cycleCallback func() error) (uint16, error) {
	lo, err := cpu.read8Bit(pointer, cycleCallback)
	if err != nil {
		return 0, err
	}
	hiAddr := pointer + 1
	if pointer&0x00ff == 0x00ff {
		hiAddr = pointer & 0xff00
	}
	hi, err := cpu.read8Bit(hiAddr, cycleCallback)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
