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

// Package hardware is the root of the emulation: the C64 type owns the
// memory bus, the CPU, VIC-II, both CIAs, SID, the cartridge slot, the
// IEC bus and its attached drives, and drives them all forward one main
// bus cycle at a time in the exact half-cycle order real silicon
// requires: VIC, then both CIAs, then the IEC bus recompute, then the
// CPU's own microstep, then the drives.
package hardware
