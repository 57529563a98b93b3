// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when mixing ends. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/soundload"
	"github.com/youpy/go-wav"
)

// SampleRate of the WAV file. The rate is chosen so that each cycle of the
// virtual machine is a whole number of samples.
const SampleRate = 24000

// SamplesPerCycle is the number of samples written for every call to
// SetTone().
const SamplesPerCycle = SampleRate / timers.TickRate

// the value of silence in 8bit unsigned audio and the amplitude of the tone
const (
	silence   = 128
	amplitude = 64
)

// WavWriter implements the hardware.AudioMixer interface.
type WavWriter struct {
	filename string
	tone     *soundload.Tone
	buffer   []wav.Sample
	scratch  []float32
}

// New is the preferred method of initialisation for the WavWriter type. The
// tone will be a square wave of the specified frequency.
func New(filename string, freq float64) (*WavWriter, error) {
	tone, err := soundload.NewSquareTone(freq, SampleRate)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}
	return NewWithTone(filename, tone), nil
}

// NewWithTone creates a WavWriter that will use the tone for the audio
// output. The tone must have been created with the SampleRate of this package.
func NewWithTone(filename string, tone *soundload.Tone) *WavWriter {
	return &WavWriter{
		filename: filename,
		tone:     tone,
		buffer:   make([]wav.Sample, 0),
		scratch:  make([]float32, SamplesPerCycle),
	}
}

// SetTone implements the hardware.AudioMixer interface.
func (aw *WavWriter) SetTone(active bool) error {
	if !active {
		for i := 0; i < SamplesPerCycle; i++ {
			w := wav.Sample{}
			w.Values[0] = silence
			aw.buffer = append(aw.buffer, w)
		}
		return nil
	}

	aw.tone.Fill(aw.scratch)
	for _, v := range aw.scratch {
		w := wav.Sample{}
		w.Values[0] = silence + int(v*amplitude)
		aw.buffer = append(aw.buffer, w)
	}

	return nil
}

// EndMixing implements the hardware.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 1, uint32(SampleRate), 8)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
