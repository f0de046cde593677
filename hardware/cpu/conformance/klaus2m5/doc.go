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

// Package klaus2m5 runs the 6502/6510 functional tests created and
// maintained by Klaus Dormann.
//
// https://github.com/Klaus2m5/6502_65C02_functional_tests
//
// The test sources are assembled with the as65 assembler:
//
//	as65 -pmnu <test file>.a65
//
// The resulting binaries are not checked into this module (they are large
// and their licence is separate from this project's); place them in the
// following layout relative to this package's directory to exercise them:
//
//	functional_test/6502_functional_test.bin
//	decimal_mode/6502_decimal_test.bin
//
// functional_test covers every addressing mode and every documented opcode
// against every flag combination, entered directly at $0400 (the test is
// built with ROM_vectors disabled, so the reset vector is never consulted).
// decimal_mode exhaustively checks ADC/SBC decimal-mode arithmetic, built
// with check_n and check_z both enabled.
//
// Both tests signal completion by jumping to themselves in an infinite
// loop; there is no universal success address across every possible build
// configuration, so TestFunctional and TestDecimal only assert that a trap
// is reached within budget and log where, leaving confirmation that it is
// the *expected* trap (as opposed to a wrong-but-stable address reached by
// a CPU bug) to the person who assembled the binary and is reading the log.
package klaus2m5
