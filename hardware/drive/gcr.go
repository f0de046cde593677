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

package drive

// gcrEncodeTable maps each 4-bit nibble to its 5-bit group-coded
// recording pattern: no more than two consecutive zero bits, which is
// what lets the drive's data separator recover a bit clock from the flux
// transitions alone.
var gcrEncodeTable = [16]uint8{
	0x0a, 0x0b, 0x12, 0x13, 0x0e, 0x0f, 0x16, 0x17,
	0x09, 0x19, 0x1a, 0x1b, 0x0d, 0x1d, 0x1e, 0x15,
}

// gcrDecodeTable inverts gcrEncodeTable; entries for the sixteen bit patterns
// that never appear in valid GCR data are 0xff.
var gcrDecodeTable [32]uint8

func init() {
	for i := range gcrDecodeTable {
		gcrDecodeTable[i] = 0xff
	}
	for nibble, code := range gcrEncodeTable {
		gcrDecodeTable[code] = uint8(nibble)
	}
}

// encodeGCR packs four data bytes into five GCR bytes (each data byte's
// two nibbles become two 5-bit groups; five bytes worth of bits are
// filled by eight nibbles from four input bytes).
func encodeGCR(data [4]byte) [5]byte {
	var out [5]byte
	var bits uint64
	nbits := uint(0)

	push := func(v uint8, n uint) {
		bits = bits<<n | uint64(v)
		nbits += n
	}

	for _, b := range data {
		push(gcrEncodeTable[b>>4], 5)
		push(gcrEncodeTable[b&0x0f], 5)
	}

	// nbits is 40; drain 5 bytes' worth, most-significant-first.
	for i := 4; i >= 0; i-- {
		out[i] = uint8(bits)
		bits >>= 8
	}
	_ = nbits
	return out
}

// decodeGCR reverses encodeGCR. ok is false if any 5-bit group in data
// does not correspond to a valid nibble encoding (a genuine read error on
// real hardware).
func decodeGCR(data [5]byte) (out [4]byte, ok bool) {
	var bits uint64
	for _, b := range data {
		bits = bits<<8 | uint64(b)
	}

	groups := [8]uint8{}
	for i := 7; i >= 0; i-- {
		groups[i] = uint8(bits & 0x1f)
		bits >>= 5
	}

	ok = true
	var nibbles [8]uint8
	for i, g := range groups {
		n := gcrDecodeTable[g]
		if n == 0xff {
			ok = false
		}
		nibbles[i] = n
	}

	for i := 0; i < 4; i++ {
		out[i] = nibbles[i*2]<<4 | nibbles[i*2+1]
	}
	return out, ok
}
