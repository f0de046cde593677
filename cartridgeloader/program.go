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

package cartridgeloader

import (
	"encoding/binary"

	"github.com/c64ensemble/c64/curated"
)

// ProgramError is the curated sentinel pattern for malformed PRG/T64 data.
const ProgramError = "cartridgeloader: malformed program (%v)"

// Program extracts a PRG-style load address and byte payload from a loaded
// PRG or T64 image, ready to be poked directly into RAM ahead of a RUN.
// Load() must have been called first.
func (cl Loader) Program() (loadAddress uint16, data []byte, err error) {
	switch cl.Kind() {
	case KindProgram:
		return programFromPRG(cl.Data)
	case KindTape:
		return programFromT64(cl.Data)
	}
	return 0, nil, curated.Errorf(ProgramError, "not a PRG or T64 file")
}

// programFromPRG treats the first two bytes as the little-endian load
// address, per the format every C64 disk/tape PRG file uses.
func programFromPRG(data []byte) (uint16, []byte, error) {
	if len(data) < 2 {
		return 0, nil, curated.Errorf(ProgramError, "truncated PRG file")
	}
	return binary.LittleEndian.Uint16(data[0:2]), data[2:], nil
}

// programFromT64 extracts the first program entry from a T64 tape image.
// T64 files can hold more than one entry; only the first is loaded here,
// matching how a real datasette only ever presents the next file in
// sequence.
func programFromT64(data []byte) (uint16, []byte, error) {
	const headerLen = 64
	const entryLen = 32
	if len(data) < headerLen+entryLen || string(data[0:3]) != "C64" {
		return 0, nil, curated.Errorf(ProgramError, "missing T64 signature")
	}

	maxEntries := int(binary.LittleEndian.Uint16(data[36:38]))
	for i := 0; i < maxEntries; i++ {
		off := headerLen + i*entryLen
		if off+entryLen > len(data) {
			break
		}
		entry := data[off : off+entryLen]

		entryType := entry[0]
		fileType := entry[1]
		if entryType == 0 || fileType != 1 {
			continue
		}

		start := binary.LittleEndian.Uint16(entry[2:4])
		end := binary.LittleEndian.Uint16(entry[4:6])
		fileOffset := binary.LittleEndian.Uint32(entry[8:12])

		size := int(end) - int(start)
		if size <= 0 || int(fileOffset)+size > len(data) {
			continue
		}
		return start, append([]byte(nil), data[fileOffset:int(fileOffset)+size]...), nil
	}

	return 0, nil, curated.Errorf(ProgramError, "no program entry found")
}
