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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// The Random type's Intn() seeds a fresh generator from the machine cycle
// count reported by its Clock (zero for a nil Clock) plus a base seed taken
// from the wall-clock time at program start, so within one run the same
// cycle count always gives the same number.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true: the base seed is then left out. This is useful for testing
// purposes.
package random
