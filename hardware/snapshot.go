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

package hardware

import (
	"encoding/binary"

	"github.com/c64ensemble/c64/curated"
)

// Snapshot encodes the whole machine: every chip's own Snapshot, the
// cartridge's (if one is attached) and every attached drive's, prefixed
// with the monotonic cycle count and the VIC-side IRQ latch that aren't
// owned by any single chip. Disk images and ROM contents are not
// included; a caller that wants a fully self-contained save state is
// responsible for keeping the loaded ROMs/media alongside this blob.
func (c *C64) Snapshot() []byte {
	var buf []byte

	head := make([]byte, 9)
	binary.LittleEndian.PutUint64(head, c.cycleCount)
	head[8] = boolByte(c.vicIRQ)
	buf = append(buf, head...)

	buf = append(buf, lengthPrefixed(c.CPU.Snapshot())...)
	buf = append(buf, lengthPrefixed(c.Mem.Snapshot())...)
	buf = append(buf, lengthPrefixed(c.VIC.Snapshot())...)
	buf = append(buf, lengthPrefixed(c.CIA1.Snapshot())...)
	buf = append(buf, lengthPrefixed(c.CIA2.Snapshot())...)
	buf = append(buf, lengthPrefixed(c.SID.Snapshot())...)

	if c.cart != nil {
		buf = append(buf, lengthPrefixed(c.cart.Snapshot())...)
	} else {
		buf = append(buf, lengthPrefixed(nil)...)
	}

	buf = append(buf, byte(len(c.drives)))
	for _, s := range c.drives {
		buf = append(buf, boolByte(s.powerOn))
		buf = append(buf, lengthPrefixed(s.drive.Snapshot())...)
	}

	return buf
}

// Restore reverses Snapshot. The set of attached drives and cartridge
// must already match what was true when the snapshot was taken; Restore
// only rewrites their internal state, it does not attach or detach
// anything.
func (c *C64) Restore(data []byte) error {
	if len(data) < 9 {
		return curated.Errorf("hardware: truncated snapshot")
	}
	c.cycleCount = binary.LittleEndian.Uint64(data)
	c.vicIRQ = data[8] != 0
	data = data[9:]

	var chunk []byte
	var err error

	if chunk, data, err = takeChunk(data); err != nil {
		return err
	}
	if err := c.CPU.Restore(chunk); err != nil {
		return err
	}

	if chunk, data, err = takeChunk(data); err != nil {
		return err
	}
	if err := c.Mem.Restore(chunk); err != nil {
		return err
	}

	if chunk, data, err = takeChunk(data); err != nil {
		return err
	}
	if err := c.VIC.Restore(chunk); err != nil {
		return err
	}

	if chunk, data, err = takeChunk(data); err != nil {
		return err
	}
	if err := c.CIA1.Restore(chunk); err != nil {
		return err
	}

	if chunk, data, err = takeChunk(data); err != nil {
		return err
	}
	if err := c.CIA2.Restore(chunk); err != nil {
		return err
	}

	if chunk, data, err = takeChunk(data); err != nil {
		return err
	}
	if err := c.SID.Restore(chunk); err != nil {
		return err
	}

	if chunk, data, err = takeChunk(data); err != nil {
		return err
	}
	if c.cart != nil && len(chunk) > 0 {
		if err := c.cart.Restore(chunk); err != nil {
			return err
		}
	}

	if len(data) < 1 {
		return curated.Errorf("hardware: truncated snapshot")
	}
	n := int(data[0])
	data = data[1:]
	if n != len(c.drives) {
		return curated.Errorf("hardware: snapshot has %d drives, machine has %d", n, len(c.drives))
	}
	for _, s := range c.drives {
		if len(data) < 1 {
			return curated.Errorf("hardware: truncated snapshot")
		}
		s.powerOn = data[0] != 0
		data = data[1:]
		if chunk, data, err = takeChunk(data); err != nil {
			return err
		}
		if err := s.drive.Restore(chunk); err != nil {
			return err
		}
	}

	c.updateIRQ()
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func lengthPrefixed(b []byte) []byte {
	out := make([]byte, 4+len(b))
	binary.LittleEndian.PutUint32(out, uint32(len(b)))
	copy(out[4:], b)
	return out
}

func takeChunk(data []byte) (chunk, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, curated.Errorf("hardware: truncated snapshot")
	}
	n := binary.LittleEndian.Uint32(data)
	data = data[4:]
	if uint32(len(data)) < n {
		return nil, nil, curated.Errorf("hardware: truncated snapshot")
	}
	return data[:n], data[n:], nil
}
