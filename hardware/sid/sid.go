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

// Package sid implements the MOS 6581/8580 Sound Interface Device: three
// oscillator/envelope/waveform voices feeding a shared multimode filter,
// resampled from the machine's ~1MHz clock down to a fixed output rate
// into a lock-free ring buffer the audio sink drains from.
package sid

// SampleFreq is the fixed output sample rate every rendered voice is
// resampled down to, matching the rate gui/sdlaudio opens its output
// device at.
const SampleFreq = 44100

// Registers mirrors the 29-byte SID register file at $D400-$D41C, kept
// around for peek-back (several registers are write-only on real
// hardware and read as the last value latched on the bus, modelled here
// as simply readable).
type Registers [29]uint8

// SID is one 6581/8580 instance.
type SID struct {
	regs Registers

	voice [3]voice

	filter filter

	// clockAccum implements the fractional resampling ratio
	// between the machine's PHI2 rate and SampleFreq without drifting: a
	// fixed-point accumulator carries the remainder from one Tick to the
	// next.
	clockHz     int
	clockAccum  int
	ring        ringBuffer
}

// New constructs a SID clocked at clockHz (differs between PAL and NTSC
// machines).
func New(clockHz int) *SID {
	s := &SID{clockHz: clockHz}
	s.filter.init()
	return s
}

// Read services a CPU access to one of the 29 registers (or a mirrored
// address within the $D400-$D7FF page).
func (s *SID) Read(reg uint8) uint8 {
	switch reg {
	case 0x19, 0x1a: // POTX/POTY paddle inputs, unconnected here.
		return 0xff
	case 0x1b: // OSC3, the upper 8 bits of voice 3's oscillator.
		return uint8(s.voice[2].accumulator >> 16)
	case 0x1c: // ENV3, voice 3's envelope output.
		return s.voice[2].envelopeOutput()
	}
	if reg&0x1f >= 29 {
		return 0xff
	}
	return s.regs[reg&0x1f]
}

// Write services a CPU access to one of the 29 registers.
func (s *SID) Write(reg uint8, v uint8) {
	reg &= 0x1f
	if reg >= 29 {
		return
	}
	s.regs[reg] = v

	switch {
	case reg < 21:
		voiceNum := reg / 7
		s.voice[voiceNum].writeRegister(reg%7, v)
	case reg == 21:
		s.filter.cutoffLo = v
	case reg == 22:
		s.filter.cutoffHi = v
	case reg == 23:
		s.filter.resonanceRoute = v
	case reg == 24:
		s.filter.modeVolume = v
	}
}

// Tick advances every voice and the filter by one PHI2 cycle, feeding a
// resampled point into the output ring buffer whenever the fractional
// accumulator carries.
func (s *SID) Tick() {
	for i := range s.voice {
		s.voice[i].tick(s.voice[(i+2)%3].waveOutput())
	}

	s.clockAccum += SampleFreq
	if s.clockAccum >= s.clockHz {
		s.clockAccum -= s.clockHz
		s.ring.push(s.mix())
	}
}

// mix combines the three voices through the filter's routing (any subset
// may be filtered) and applies the master volume, matching the 6581's own
// non-linear-in-practice-but-modelled-as-linear-here summing amplifier.
func (s *SID) mix() int16 {
	var filtered, unfiltered int32

	for i := 0; i < 3; i++ {
		v := int32(s.voice[i].output())
		if s.filter.routes(i) {
			filtered += v
		} else {
			unfiltered += v
		}
	}

	filtered = s.filter.apply(filtered)
	volume := int32(s.filter.modeVolume & 0x0f)
	sample := (filtered + unfiltered) * volume / 15 / 3
	if sample > 32767 {
		sample = 32767
	} else if sample < -32768 {
		sample = -32768
	}
	return int16(sample)
}

// ReadSamples drains up to len(out) rendered samples into out, returning
// the number actually written. cmd/c64 calls it once per frame, from its
// continueCheck callback, to feed the WAV writer.
func (s *SID) ReadSamples(out []int16) int {
	return s.ring.pop(out)
}

// Snapshot/Restore persist register and voice/filter state; the ring
// buffer's in-flight samples are not persisted, since resuming from a
// snapshot naturally resumes audio generation from silence.
func (s *SID) Snapshot() []byte {
	buf := make([]byte, 0, 29+3*voiceStateSize+filterStateSize)
	buf = append(buf, s.regs[:]...)
	for i := range s.voice {
		buf = append(buf, s.voice[i].snapshot()...)
	}
	buf = append(buf, s.filter.snapshot()...)
	return buf
}

func (s *SID) Restore(data []byte) error {
	if len(data) < 29+3*voiceStateSize+filterStateSize {
		return errTruncated
	}
	copy(s.regs[:], data[:29])
	off := 29
	for i := range s.voice {
		s.voice[i].restore(data[off : off+voiceStateSize])
		off += voiceStateSize
	}
	s.filter.restore(data[off:])
	return nil
}
