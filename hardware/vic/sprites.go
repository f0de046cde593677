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

// spriteDMACycleStart is the first cycle of the window sprite DMA runs
// in: the real chip interleaves individual sprite pointer/data fetches
// across cycles 55-65 and 1-11, but this emulation fetches every active
// sprite's three data bytes in one pass at cycle 55 and only reproduces
// the aggregate bus-cycle cost that fetch would have taken, not its
// exact per-cycle placement.
const spriteDMACycleStart = 55

func (v *VIC) activeSpriteCount() int {
	n := 0
	for i := range v.sprites {
		if v.sprites[i].dmaActive {
			n++
		}
	}
	return n
}

func (v *VIC) spriteDMACycle(cycle int) bool {
	n := v.activeSpriteCount()
	if n == 0 {
		return false
	}
	end := spriteDMACycleStart + 2*n - 1
	if cycle >= spriteDMACycleStart && cycle <= end {
		return true
	}
	wrapEnd := end - v.cyclesThisLine()
	return wrapEnd > 0 && cycle <= wrapEnd
}

// startOfLineSpriteDMA re-evaluates each sprite's Y-range activation for
// the line that has just started, per the real chip's per-line DMA
// enable check (sprite Y compares against the full rasterY value plus
// its own 21-scanline height). Y-expand's real effect — repeating each
// fetched row for two rasterlines via the UI17 expand flip-flop — is not
// modelled: expandY is tracked and snapshotted but has no rendering
// effect yet, so Y-expanded sprites play through their 21 data rows in
// 21 lines instead of 42. X-expand is fully modelled in spritePixel.
func (v *VIC) startOfLineSpriteDMA() {
	for i := range v.sprites {
		s := &v.sprites[i]
		if !s.enabled {
			s.dmaActive = false
			s.displayActive = false
			continue
		}
		height := 21
		if s.y <= v.rasterY && v.rasterY < s.y+height {
			if !s.dmaActive {
				s.mcBase = 0
			}
			s.dmaActive = true
		} else if s.mcBase >= 63 {
			s.dmaActive = false
			s.displayActive = false
		}
	}
}

// fetchSpriteData performs the aggregate sprite DMA fetch for this line,
// called from cycle 55's dispatch entry.
func (v *VIC) fetchSpriteData() {
	pointerBase := v.videoMatrixBase() + 0x3f8
	for i := range v.sprites {
		s := &v.sprites[i]
		if !s.dmaActive {
			continue
		}
		s.dataPointer = v.bank + uint16(v.readVideo(pointerBase+uint16(i)))*64
		b0 := v.readVideo(s.dataPointer + uint16(s.mcBase))
		b1 := v.readVideo(s.dataPointer + uint16(s.mcBase) + 1)
		b2 := v.readVideo(s.dataPointer + uint16(s.mcBase) + 2)
		s.shiftReg = uint32(b0)<<16 | uint32(b1)<<8 | uint32(b2)
		s.mcBase += 3
		s.displayActive = true
	}
}

// spritePixel returns the colour a sprite contributes at absolute pixel
// column x on the current line, and whether any sprite is opaque there
// (used for sprite-sprite and sprite-data collision). Sprites are
// checked in priority order, 0 highest.
func (v *VIC) spritePixel(x int) (color uint32, opaque bool, spriteIndex int, background bool) {
	var hit uint8
	found := -1
	var col uint32
	var bg bool

	for i := 0; i < 8; i++ {
		s := &v.sprites[i]
		if !s.displayActive {
			continue
		}
		width := 24
		if s.expandX {
			width = 48
		}
		if x < s.x || x >= s.x+width {
			continue
		}
		bit := (x - s.x)
		if s.expandX {
			bit /= 2
		}

		var c uint32
		var opaquePixel bool
		if s.multicolor {
			pair := (s.shiftReg >> uint(22-2*(bit/2))) & 0x03
			switch pair {
			case 0:
				opaquePixel = false
			case 1:
				c = colorRGBA[v.spriteMulticolor[0]]
				opaquePixel = true
			case 2:
				c = colorRGBA[s.color]
				opaquePixel = true
			case 3:
				c = colorRGBA[v.spriteMulticolor[1]]
				opaquePixel = true
			}
		} else {
			b := (s.shiftReg >> uint(23-bit)) & 1
			opaquePixel = b != 0
			c = colorRGBA[s.color]
		}

		if opaquePixel {
			hit |= 1 << i
			if found == -1 {
				found = i
				col = c
				bg = s.priority
			}
		}
	}

	if found == -1 {
		return 0, false, -1, false
	}

	if hit&(hit-1) != 0 && v.denSet() {
		v.spriteSpriteCollision |= hit
		v.raiseIRQ(IRQSpriteSprite)
	}

	return col, true, found, bg
}
