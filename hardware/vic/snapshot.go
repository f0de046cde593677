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

import (
	"encoding/binary"

	"github.com/c64ensemble/c64/curated"
)

const spriteSnapshotLen = 14

func (s *sprite) snapshot() []byte {
	buf := make([]byte, spriteSnapshotLen)
	binary.LittleEndian.PutUint16(buf[0:], uint16(s.x))
	buf[2] = uint8(s.y)
	buf[3] = boolByte(s.xMSB) | boolByte(s.enabled)<<1 | boolByte(s.priority)<<2 |
		boolByte(s.multicolor)<<3 | boolByte(s.expandX)<<4 | boolByte(s.expandY)<<5 |
		boolByte(s.dmaActive)<<6 | boolByte(s.displayActive)<<7
	buf[4] = s.color
	binary.LittleEndian.PutUint16(buf[5:], s.dataPointer)
	buf[7] = s.mcBase
	binary.LittleEndian.PutUint32(buf[8:], s.shiftReg)
	return buf
}

func (s *sprite) restore(data []byte) {
	s.x = int(binary.LittleEndian.Uint16(data[0:]))
	s.y = int(data[2])
	flags := data[3]
	s.xMSB = flags&0x01 != 0
	s.enabled = flags&0x02 != 0
	s.priority = flags&0x04 != 0
	s.multicolor = flags&0x08 != 0
	s.expandX = flags&0x10 != 0
	s.expandY = flags&0x20 != 0
	s.dmaActive = flags&0x40 != 0
	s.displayActive = flags&0x80 != 0
	s.color = data[4]
	s.dataPointer = binary.LittleEndian.Uint16(data[5:])
	s.mcBase = data[7]
	s.shiftReg = binary.LittleEndian.Uint32(data[8:])
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Snapshot serialises every register and the raster-position state
// needed to resume mid-frame. The frame buffers themselves are not
// included: a restored snapshot redraws its first frame from scratch.
const vicHeaderLen = 36

func (v *VIC) Snapshot() []byte {
	buf := make([]byte, vicHeaderLen)
	buf[0], buf[1] = v.control1, v.control2
	binary.LittleEndian.PutUint16(buf[2:], v.rasterCompare)
	buf[4] = v.memoryPointers
	buf[5], buf[6] = v.irqStatus, v.irqMask
	buf[7], buf[8] = v.spriteSpriteCollision, v.spriteDataCollision
	buf[9] = v.borderColor
	copy(buf[10:14], v.background[:])
	copy(buf[14:16], v.spriteMulticolor[:])
	buf[16], buf[17] = v.lightPenX, v.lightPenY
	binary.LittleEndian.PutUint16(buf[18:], v.bank)
	binary.LittleEndian.PutUint16(buf[20:], uint16(v.rasterY))
	buf[22] = uint8(v.cycle)
	buf[23] = boolByte(v.badLine) | boolByte(v.badLineEnableLatch)<<1 | boolByte(v.displayState)<<2
	binary.LittleEndian.PutUint16(buf[24:], v.vcbase)
	buf[26] = v.rc
	binary.LittleEndian.PutUint64(buf[28:], v.frameCount)

	out := append([]byte{}, buf...)
	for i := range v.sprites {
		out = append(out, v.sprites[i].snapshot()...)
	}
	return out
}

// Restore reverses Snapshot.
func (v *VIC) Restore(data []byte) error {
	if len(data) < vicHeaderLen+8*spriteSnapshotLen {
		return curated.Errorf("vic: truncated snapshot")
	}
	v.control1, v.control2 = data[0], data[1]
	v.rasterCompare = binary.LittleEndian.Uint16(data[2:])
	v.memoryPointers = data[4]
	v.irqStatus, v.irqMask = data[5], data[6]
	v.spriteSpriteCollision, v.spriteDataCollision = data[7], data[8]
	v.borderColor = data[9]
	copy(v.background[:], data[10:14])
	copy(v.spriteMulticolor[:], data[14:16])
	v.lightPenX, v.lightPenY = data[16], data[17]
	v.bank = binary.LittleEndian.Uint16(data[18:])
	v.rasterY = int(binary.LittleEndian.Uint16(data[20:]))
	v.cycle = int(data[22])
	flags := data[23]
	v.badLine = flags&0x01 != 0
	v.badLineEnableLatch = flags&0x02 != 0
	v.displayState = flags&0x04 != 0
	v.vcbase = binary.LittleEndian.Uint16(data[24:])
	v.rc = data[26]
	v.frameCount = binary.LittleEndian.Uint64(data[28:])

	rest := data[vicHeaderLen:]
	for i := range v.sprites {
		v.sprites[i].restore(rest[i*spriteSnapshotLen : (i+1)*spriteSnapshotLen])
	}
	return nil
}
