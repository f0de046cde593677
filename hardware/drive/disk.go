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

import "github.com/c64ensemble/c64/curated"

// FileError is the curated sentinel pattern for a malformed D64 image.
const FileError = "drive: malformed disk image (%v)"

// sectorsPerTrack is the 1541's four speed-zone sector layout, indexed by
// track number 1-35.
var sectorsPerTrack = [36]int{
	0,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21,
	19, 19, 19, 19, 19, 19, 19,
	18, 18, 18, 18, 18, 18,
	17, 17, 17, 17, 17,
}

// d64TrackOffset returns the byte offset of a track's first sector within
// a standard 35-track, no-error-info D64 image.
func d64TrackOffset(track int) int {
	offset := 0
	for t := 1; t < track; t++ {
		offset += sectorsPerTrack[t] * 256
	}
	return offset
}

const d64Size35 = 174848

// Disk holds a mounted disk image: the raw 256-byte sectors decoded from
// D64, and a lazily-built GCR bitstream per halftrack that the read head
// actually consumes.
type Disk struct {
	label        string
	writeProtect bool

	sectors [36][]byte // sectors[track][sector*256:...], track 1-35

	gcrCache map[int][]byte // halftrack number -> encoded bitstream
}

// LoadD64 parses a standard 35-track D64 image (174848 bytes, no error
// info block).
func LoadD64(data []byte, label string) (*Disk, error) {
	if len(data) < d64Size35 {
		return nil, curated.Errorf(FileError, "too short")
	}
	d := &Disk{label: label, gcrCache: make(map[int][]byte)}
	for track := 1; track <= 35; track++ {
		n := sectorsPerTrack[track] * 256
		off := d64TrackOffset(track)
		d.sectors[track] = append([]byte{}, data[off:off+n]...)
	}
	return d, nil
}

// SaveD64 serialises the disk's sectors back into D64 byte order.
func (d *Disk) SaveD64() []byte {
	out := make([]byte, 0, d64Size35)
	for track := 1; track <= 35; track++ {
		out = append(out, d.sectors[track]...)
	}
	return out
}

func (d *Disk) SetWriteProtect(v bool) { d.writeProtect = v }
func (d *Disk) WriteProtect() bool     { return d.writeProtect }
func (d *Disk) Label() string          { return d.label }

// sector returns the raw 256-byte sector contents, or nil for a track or
// sector outside the disk's layout.
func (d *Disk) sector(track, sector int) []byte {
	if track < 1 || track > 35 {
		return nil
	}
	n := sectorsPerTrack[track]
	if sector < 0 || sector >= n {
		return nil
	}
	return d.sectors[track][sector*256 : sector*256+256]
}

func (d *Disk) diskID() [2]byte {
	// BAM sector 18/0, offset 0xa2/0xa3 in the standard 1541 DOS layout.
	bam := d.sector(18, 0)
	if bam == nil || len(bam) < 0xa4 {
		return [2]byte{'0', '0'}
	}
	return [2]byte{bam[0xa2], bam[0xa3]}
}

// TrackBitstream returns the GCR-encoded bytes the read head sees across
// one full revolution of the given halftrack (1-70; odd numbers are the
// 35 physical tracks a stock 1541 head visits, even numbers the
// half-track positions software copy-protection schemes rely on landing
// between).
func (d *Disk) TrackBitstream(halftrack int) []byte {
	if cached, ok := d.gcrCache[halftrack]; ok {
		return cached
	}

	track := (halftrack + 1) / 2
	var out []byte
	if track >= 1 && track <= 35 && halftrack%2 == 1 {
		id := d.diskID()
		for s := 0; s < sectorsPerTrack[track]; s++ {
			out = append(out, encodeSector(track, s, id, d.sector(track, s))...)
		}
	} else {
		// even half-tracks and out-of-range tracks read back as
		// unformatted (unsynced) flux, modelled as a run of zero bytes
		// long enough that no SYNC mark is ever found there.
		out = make([]byte, 6250)
	}

	d.gcrCache[halftrack] = out
	return out
}

// encodeSector builds one sector's on-disk byte sequence: a header block
// (SYNC, header ID $08, checksum, sector/track, disk ID, gap) followed by
// a data block (SYNC, data ID $07, 256 data bytes, checksum, off byte,
// gap), exactly as the 1541 DOS's own GCR formatter lays it out.
func encodeSector(track, sector int, id [2]byte, data []byte) []byte {
	var out []byte

	pushSync := func() {
		out = append(out, 0xff, 0xff, 0xff, 0xff, 0xff)
	}
	pushGCR := func(b ...byte) {
		var buf [4]byte
		for len(b) > 0 {
			n := copy(buf[:], b)
			for i := n; i < 4; i++ {
				buf[i] = 0x00
			}
			enc := encodeGCR(buf)
			out = append(out, enc[:]...)
			b = b[n:]
		}
	}

	checksum := func(bs ...byte) byte {
		var c byte
		for _, b := range bs {
			c ^= b
		}
		return c
	}

	pushSync()
	hdrChecksum := checksum(byte(sector), byte(track), id[1], id[0])
	pushGCR(0x08, hdrChecksum, byte(sector), byte(track))
	pushGCR(id[1], id[0], 0x0f, 0x0f)
	out = append(out, make([]byte, 9)...) // header gap

	pushSync()
	if data == nil {
		data = make([]byte, 256)
	}
	dataChecksum := checksum(data...)
	block := append([]byte{0x07}, data...)
	block = append(block, dataChecksum, 0x00, 0x00)
	pushGCR(block...)
	out = append(out, make([]byte, 8)...) // inter-sector gap

	return out
}
