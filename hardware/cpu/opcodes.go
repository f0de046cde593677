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

// opcodeDef names one of the 256 opcode values: its mnemonic (used only to
// dispatch execution — it never appears in user-facing output) and its
// addressing mode. Every value is populated, including the documented
// illegal opcodes a lot of loaders and copy-protection schemes rely on.
type opcodeDef struct {
	mnemonic string
	mode     addrMode
}

var opcodeTable [256]opcodeDef

func op(code uint8, mnemonic string, mode addrMode) {
	opcodeTable[code] = opcodeDef{mnemonic: mnemonic, mode: mode}
}

func init() {
	op(0x00, "BRK", modeImplied)
	op(0x01, "ORA", modeIndexedIndirect)
	op(0x02, "KIL", modeImplied)
	op(0x03, "SLO", modeIndexedIndirect)
	op(0x04, "NOP", modeZeroPage)
	op(0x05, "ORA", modeZeroPage)
	op(0x06, "ASL", modeZeroPage)
	op(0x07, "SLO", modeZeroPage)
	op(0x08, "PHP", modeImplied)
	op(0x09, "ORA", modeImmediate)
	op(0x0a, "ASL", modeAccumulator)
	op(0x0b, "ANC", modeImmediate)
	op(0x0c, "NOP", modeAbsolute)
	op(0x0d, "ORA", modeAbsolute)
	op(0x0e, "ASL", modeAbsolute)
	op(0x0f, "SLO", modeAbsolute)

	op(0x10, "BPL", modeRelative)
	op(0x11, "ORA", modeIndirectIndexed)
	op(0x12, "KIL", modeImplied)
	op(0x13, "SLO", modeIndirectIndexed)
	op(0x14, "NOP", modeZeroPageX)
	op(0x15, "ORA", modeZeroPageX)
	op(0x16, "ASL", modeZeroPageX)
	op(0x17, "SLO", modeZeroPageX)
	op(0x18, "CLC", modeImplied)
	op(0x19, "ORA", modeAbsoluteY)
	op(0x1a, "NOP", modeImplied)
	op(0x1b, "SLO", modeAbsoluteY)
	op(0x1c, "NOP", modeAbsoluteX)
	op(0x1d, "ORA", modeAbsoluteX)
	op(0x1e, "ASL", modeAbsoluteX)
	op(0x1f, "SLO", modeAbsoluteX)

	op(0x20, "JSR", modeAbsolute)
	op(0x21, "AND", modeIndexedIndirect)
	op(0x22, "KIL", modeImplied)
	op(0x23, "RLA", modeIndexedIndirect)
	op(0x24, "BIT", modeZeroPage)
	op(0x25, "AND", modeZeroPage)
	op(0x26, "ROL", modeZeroPage)
	op(0x27, "RLA", modeZeroPage)
	op(0x28, "PLP", modeImplied)
	op(0x29, "AND", modeImmediate)
	op(0x2a, "ROL", modeAccumulator)
	op(0x2b, "ANC", modeImmediate)
	op(0x2c, "BIT", modeAbsolute)
	op(0x2d, "AND", modeAbsolute)
	op(0x2e, "ROL", modeAbsolute)
	op(0x2f, "RLA", modeAbsolute)

	op(0x30, "BMI", modeRelative)
	op(0x31, "AND", modeIndirectIndexed)
	op(0x32, "KIL", modeImplied)
	op(0x33, "RLA", modeIndirectIndexed)
	op(0x34, "NOP", modeZeroPageX)
	op(0x35, "AND", modeZeroPageX)
	op(0x36, "ROL", modeZeroPageX)
	op(0x37, "RLA", modeZeroPageX)
	op(0x38, "SEC", modeImplied)
	op(0x39, "AND", modeAbsoluteY)
	op(0x3a, "NOP", modeImplied)
	op(0x3b, "RLA", modeAbsoluteY)
	op(0x3c, "NOP", modeAbsoluteX)
	op(0x3d, "AND", modeAbsoluteX)
	op(0x3e, "ROL", modeAbsoluteX)
	op(0x3f, "RLA", modeAbsoluteX)

	op(0x40, "RTI", modeImplied)
	op(0x41, "EOR", modeIndexedIndirect)
	op(0x42, "KIL", modeImplied)
	op(0x43, "SRE", modeIndexedIndirect)
	op(0x44, "NOP", modeZeroPage)
	op(0x45, "EOR", modeZeroPage)
	op(0x46, "LSR", modeZeroPage)
	op(0x47, "SRE", modeZeroPage)
	op(0x48, "PHA", modeImplied)
	op(0x49, "EOR", modeImmediate)
	op(0x4a, "LSR", modeAccumulator)
	op(0x4b, "ALR", modeImmediate)
	op(0x4c, "JMP", modeAbsolute)
	op(0x4d, "EOR", modeAbsolute)
	op(0x4e, "LSR", modeAbsolute)
	op(0x4f, "SRE", modeAbsolute)

	op(0x50, "BVC", modeRelative)
	op(0x51, "EOR", modeIndirectIndexed)
	op(0x52, "KIL", modeImplied)
	op(0x53, "SRE", modeIndirectIndexed)
	op(0x54, "NOP", modeZeroPageX)
	op(0x55, "EOR", modeZeroPageX)
	op(0x56, "LSR", modeZeroPageX)
	op(0x57, "SRE", modeZeroPageX)
	op(0x58, "CLI", modeImplied)
	op(0x59, "EOR", modeAbsoluteY)
	op(0x5a, "NOP", modeImplied)
	op(0x5b, "SRE", modeAbsoluteY)
	op(0x5c, "NOP", modeAbsoluteX)
	op(0x5d, "EOR", modeAbsoluteX)
	op(0x5e, "LSR", modeAbsoluteX)
	op(0x5f, "SRE", modeAbsoluteX)

	op(0x60, "RTS", modeImplied)
	op(0x61, "ADC", modeIndexedIndirect)
	op(0x62, "KIL", modeImplied)
	op(0x63, "RRA", modeIndexedIndirect)
	op(0x64, "NOP", modeZeroPage)
	op(0x65, "ADC", modeZeroPage)
	op(0x66, "ROR", modeZeroPage)
	op(0x67, "RRA", modeZeroPage)
	op(0x68, "PLA", modeImplied)
	op(0x69, "ADC", modeImmediate)
	op(0x6a, "ROR", modeAccumulator)
	op(0x6b, "ARR", modeImmediate)
	op(0x6c, "JMP", modeIndirect)
	op(0x6d, "ADC", modeAbsolute)
	op(0x6e, "ROR", modeAbsolute)
	op(0x6f, "RRA", modeAbsolute)

	op(0x70, "BVS", modeRelative)
	op(0x71, "ADC", modeIndirectIndexed)
	op(0x72, "KIL", modeImplied)
	op(0x73, "RRA", modeIndirectIndexed)
	op(0x74, "NOP", modeZeroPageX)
	op(0x75, "ADC", modeZeroPageX)
	op(0x76, "ROR", modeZeroPageX)
	op(0x77, "RRA", modeZeroPageX)
	op(0x78, "SEI", modeImplied)
	op(0x79, "ADC", modeAbsoluteY)
	op(0x7a, "NOP", modeImplied)
	op(0x7b, "RRA", modeAbsoluteY)
	op(0x7c, "NOP", modeAbsoluteX)
	op(0x7d, "ADC", modeAbsoluteX)
	op(0x7e, "ROR", modeAbsoluteX)
	op(0x7f, "RRA", modeAbsoluteX)

	op(0x80, "NOP", modeImmediate)
	op(0x81, "STA", modeIndexedIndirect)
	op(0x82, "NOP", modeImmediate)
	op(0x83, "SAX", modeIndexedIndirect)
	op(0x84, "STY", modeZeroPage)
	op(0x85, "STA", modeZeroPage)
	op(0x86, "STX", modeZeroPage)
	op(0x87, "SAX", modeZeroPage)
	op(0x88, "DEY", modeImplied)
	op(0x89, "NOP", modeImmediate)
	op(0x8a, "TXA", modeImplied)
	op(0x8b, "XAA", modeImmediate)
	op(0x8c, "STY", modeAbsolute)
	op(0x8d, "STA", modeAbsolute)
	op(0x8e, "STX", modeAbsolute)
	op(0x8f, "SAX", modeAbsolute)

	op(0x90, "BCC", modeRelative)
	op(0x91, "STA", modeIndirectIndexed)
	op(0x92, "KIL", modeImplied)
	op(0x93, "AHX", modeIndirectIndexed)
	op(0x94, "STY", modeZeroPageX)
	op(0x95, "STA", modeZeroPageX)
	op(0x96, "STX", modeZeroPageY)
	op(0x97, "SAX", modeZeroPageY)
	op(0x98, "TYA", modeImplied)
	op(0x99, "STA", modeAbsoluteY)
	op(0x9a, "TXS", modeImplied)
	op(0x9b, "TAS", modeAbsoluteY)
	op(0x9c, "SHY", modeAbsoluteX)
	op(0x9d, "STA", modeAbsoluteX)
	op(0x9e, "SHX", modeAbsoluteY)
	op(0x9f, "AHX", modeAbsoluteY)

	op(0xa0, "LDY", modeImmediate)
	op(0xa1, "LDA", modeIndexedIndirect)
	op(0xa2, "LDX", modeImmediate)
	op(0xa3, "LAX", modeIndexedIndirect)
	op(0xa4, "LDY", modeZeroPage)
	op(0xa5, "LDA", modeZeroPage)
	op(0xa6, "LDX", modeZeroPage)
	op(0xa7, "LAX", modeZeroPage)
	op(0xa8, "TAY", modeImplied)
	op(0xa9, "LDA", modeImmediate)
	op(0xaa, "TAX", modeImplied)
	op(0xab, "LAX", modeImmediate)
	op(0xac, "LDY", modeAbsolute)
	op(0xad, "LDA", modeAbsolute)
	op(0xae, "LDX", modeAbsolute)
	op(0xaf, "LAX", modeAbsolute)

	op(0xb0, "BCS", modeRelative)
	op(0xb1, "LDA", modeIndirectIndexed)
	op(0xb2, "KIL", modeImplied)
	op(0xb3, "LAX", modeIndirectIndexed)
	op(0xb4, "LDY", modeZeroPageX)
	op(0xb5, "LDA", modeZeroPageX)
	op(0xb6, "LDX", modeZeroPageY)
	op(0xb7, "LAX", modeZeroPageY)
	op(0xb8, "CLV", modeImplied)
	op(0xb9, "LDA", modeAbsoluteY)
	op(0xba, "TSX", modeImplied)
	op(0xbb, "LAS", modeAbsoluteY)
	op(0xbc, "LDY", modeAbsoluteX)
	op(0xbd, "LDA", modeAbsoluteX)
	op(0xbe, "LDX", modeAbsoluteY)
	op(0xbf, "LAX", modeAbsoluteY)

	op(0xc0, "CPY", modeImmediate)
	op(0xc1, "CMP", modeIndexedIndirect)
	op(0xc2, "NOP", modeImmediate)
	op(0xc3, "DCP", modeIndexedIndirect)
	op(0xc4, "CPY", modeZeroPage)
	op(0xc5, "CMP", modeZeroPage)
	op(0xc6, "DEC", modeZeroPage)
	op(0xc7, "DCP", modeZeroPage)
	op(0xc8, "INY", modeImplied)
	op(0xc9, "CMP", modeImmediate)
	op(0xca, "DEX", modeImplied)
	op(0xcb, "AXS", modeImmediate)
	op(0xcc, "CPY", modeAbsolute)
	op(0xcd, "CMP", modeAbsolute)
	op(0xce, "DEC", modeAbsolute)
	op(0xcf, "DCP", modeAbsolute)

	op(0xd0, "BNE", modeRelative)
	op(0xd1, "CMP", modeIndirectIndexed)
	op(0xd2, "KIL", modeImplied)
	op(0xd3, "DCP", modeIndirectIndexed)
	op(0xd4, "NOP", modeZeroPageX)
	op(0xd5, "CMP", modeZeroPageX)
	op(0xd6, "DEC", modeZeroPageX)
	op(0xd7, "DCP", modeZeroPageX)
	op(0xd8, "CLD", modeImplied)
	op(0xd9, "CMP", modeAbsoluteY)
	op(0xda, "NOP", modeImplied)
	op(0xdb, "DCP", modeAbsoluteY)
	op(0xdc, "NOP", modeAbsoluteX)
	op(0xdd, "CMP", modeAbsoluteX)
	op(0xde, "DEC", modeAbsoluteX)
	op(0xdf, "DCP", modeAbsoluteX)

	op(0xe0, "CPX", modeImmediate)
	op(0xe1, "SBC", modeIndexedIndirect)
	op(0xe2, "NOP", modeImmediate)
	op(0xe3, "ISC", modeIndexedIndirect)
	op(0xe4, "CPX", modeZeroPage)
	op(0xe5, "SBC", modeZeroPage)
	op(0xe6, "INC", modeZeroPage)
	op(0xe7, "ISC", modeZeroPage)
	op(0xe8, "INX", modeImplied)
	op(0xe9, "SBC", modeImmediate)
	op(0xea, "NOP", modeImplied)
	op(0xeb, "SBC", modeImmediate)
	op(0xec, "CPX", modeAbsolute)
	op(0xed, "SBC", modeAbsolute)
	op(0xee, "INC", modeAbsolute)
	op(0xef, "ISC", modeAbsolute)

	op(0xf0, "BEQ", modeRelative)
	op(0xf1, "SBC", modeIndirectIndexed)
	op(0xf2, "KIL", modeImplied)
	op(0xf3, "ISC", modeIndirectIndexed)
	op(0xf4, "NOP", modeZeroPageX)
	op(0xf5, "SBC", modeZeroPageX)
	op(0xf6, "INC", modeZeroPageX)
	op(0xf7, "ISC", modeZeroPageX)
	op(0xf8, "SED", modeImplied)
	op(0xf9, "SBC", modeAbsoluteY)
	op(0xfa, "NOP", modeImplied)
	op(0xfb, "ISC", modeAbsoluteY)
	op(0xfc, "NOP", modeAbsoluteX)
	op(0xfd, "SBC", modeAbsoluteX)
	op(0xfe, "INC", modeAbsoluteX)
	op(0xff, "ISC", modeAbsoluteX)
}
