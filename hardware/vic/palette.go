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

package vic

// colorRGBA is the 6569/6567's fixed 16-entry palette, opaque RGBA8888,
// using the widely reproduced "Pepto" measured values rather than any
// one VICE/UAE derivative's guess.
var colorRGBA = [16]uint32{
	0x000000ff, 0xffffffff, 0x813338ff, 0x75cec8ff,
	0x8e3c97ff, 0x56ac4dff, 0x2e2c9bff, 0xedf171ff,
	0x8e5029ff, 0x553800ff, 0xc46c71ff, 0x4a4a4aff,
	0x7b7b7bff, 0xa9ff9fff, 0x706deaff, 0xb2b2b2ff,
}
