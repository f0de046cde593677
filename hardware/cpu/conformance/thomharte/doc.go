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

// Package thomharte runs the 6502 single-step tests created and maintained
// by Thom Harte.
//
// https://github.com/SingleStepTests/65x02
//
// Each JSON file in the 6502/v1 directory covers one opcode and lists
// thousands of individual {initial state, final state, per-cycle bus trace}
// triples. The vectors are not checked into this module; add whichever
// opcode files you want exercised to a 6502/v1 directory next to this
// package to run TestThomHarte against them.
package thomharte
