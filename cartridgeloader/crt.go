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
	"github.com/c64ensemble/c64/hardware/memory/cartridge"
)

const crtSignature = "C64 CARTRIDGE   "

// Cartridge parses a loaded CRT image into a CartMapper ready to attach to
// the expansion port. Load() must have been called first.
func (cl Loader) Cartridge() (cartridge.CartMapper, error) {
	data := cl.Data
	if len(data) < 0x40 || string(data[0:16]) != crtSignature {
		return nil, curated.Errorf(cartridge.FileError, "missing CRT signature")
	}

	headerLen := binary.BigEndian.Uint32(data[16:20])
	if int(headerLen) > len(data) {
		return nil, curated.Errorf(cartridge.FileError, "header length exceeds file size")
	}
	hardwareType := binary.BigEndian.Uint16(data[22:24])

	// The header records each line's level: 0x00 means the cartridge pulls
	// the line low (asserted), any other value leaves it high. cartridge.New
	// takes the levels as booleans, true meaning high.
	exromLine := data[24] != 0x00
	gameLine := data[25] != 0x00

	chips, err := parseChipPackets(data[headerLen:])
	if err != nil {
		return nil, err
	}

	return cartridge.New(cartridge.Variant(hardwareType), chips, gameLine, exromLine)
}

func parseChipPackets(data []byte) ([]cartridge.Chip, error) {
	var chips []cartridge.Chip

	for len(data) > 0 {
		if len(data) < 16 || string(data[0:4]) != "CHIP" {
			return nil, curated.Errorf(cartridge.FileError, "malformed CHIP packet")
		}

		packetLen := binary.BigEndian.Uint32(data[4:8])
		bank := binary.BigEndian.Uint16(data[10:12])
		loadAddress := binary.BigEndian.Uint16(data[12:14])
		imageSize := binary.BigEndian.Uint16(data[14:16])

		if len(data) < 16+int(imageSize) {
			return nil, curated.Errorf(cartridge.FileError, "truncated CHIP packet")
		}

		chips = append(chips, cartridge.Chip{
			Bank:    int(bank),
			Address: loadAddress,
			Data:    append([]byte(nil), data[16:16+int(imageSize)]...),
		})

		if packetLen == 0 || int(packetLen) > len(data) {
			break
		}
		data = data[packetLen:]
	}

	if len(chips) == 0 {
		return nil, curated.Errorf(cartridge.FileError, "no CHIP packets found")
	}
	return chips, nil
}
