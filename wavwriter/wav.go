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

// Package wavwriter captures a SID's output samples to a mono 16-bit WAV
// file, used by cmd/c64's -wav flag.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/c64ensemble/c64/hardware/sid"
	"github.com/c64ensemble/c64/logger"
)

// WavWriter encodes SID samples to disk as they arrive.
type WavWriter struct {
	filename string
	file     *os.File
	enc      *wav.Encoder
}

// New creates filename and prepares it to receive SID samples via Write.
func New(filename string) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)

	const bitDepth = 16
	const numChannels = 1
	const pcmFormat = 1

	return &WavWriter{
		filename: filename,
		file:     f,
		enc:      wav.NewEncoder(f, sid.SampleFreq, bitDepth, numChannels, pcmFormat),
	}, nil
}

// Write appends a batch of samples, as returned by SID.ReadSamples, to the
// file.
func (w *WavWriter) Write(samples []int16) error {
	if len(samples) == 0 {
		return nil
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{SampleRate: sid.SampleFreq, NumChannels: 1},
		Data:           data,
		SourceBitDepth: 16,
	}
	return w.enc.Write(buf)
}

// Close flushes the WAV header and closes the underlying file. The
// WavWriter must not be used again afterwards.
func (w *WavWriter) Close() error {
	if err := w.enc.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
