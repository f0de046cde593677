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

package sid

import "sync/atomic"

// ringBuffer is a lock-free single-producer/single-consumer queue of
// rendered samples: Tick (the scheduler's goroutine) is the only writer,
// ReadSamples is the only reader. Capacity
// is fixed at a little over a third of a second, generous enough that a
// momentary stall in the audio callback never blocks the scheduler.
const ringCapacity = 1 << 14 // 16384, power of two for cheap wraparound

type ringBuffer struct {
	buf        [ringCapacity]int16
	writeIndex uint32
	readIndex  uint32
}

func (r *ringBuffer) push(sample int16) {
	w := atomic.LoadUint32(&r.writeIndex)
	read := atomic.LoadUint32(&r.readIndex)
	if w-read >= ringCapacity {
		// consumer has fallen behind by a full buffer; drop the oldest
		// sample rather than block the scheduler.
		atomic.AddUint32(&r.readIndex, 1)
	}
	r.buf[w&(ringCapacity-1)] = sample
	atomic.StoreUint32(&r.writeIndex, w+1)
}

func (r *ringBuffer) pop(out []int16) int {
	read := atomic.LoadUint32(&r.readIndex)
	w := atomic.LoadUint32(&r.writeIndex)
	n := int(w - read)
	if n > len(out) {
		n = len(out)
	}
	for i := 0; i < n; i++ {
		out[i] = r.buf[(read+uint32(i))&(ringCapacity-1)]
	}
	atomic.StoreUint32(&r.readIndex, read+uint32(n))
	return n
}
