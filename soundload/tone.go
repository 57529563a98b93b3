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

package soundload

import (
	"math"

	"github.com/jetsetilly/gopher8/curated"
)

// Tone is a looping source of audio samples at a fixed sample rate.
type Tone struct {
	data []float32
	pos  int
}

// NewSquareTone creates a tone that is a square wave of the specified
// frequency.
func NewSquareTone(freq float64, sampleRate int) (*Tone, error) {
	if freq <= 0 || sampleRate <= 0 {
		return nil, curated.Errorf("soundload: tone: invalid frequency (%.2fHz at %dHz)", freq, sampleRate)
	}

	period := int(math.Round(float64(sampleRate) / freq))
	if period < 2 {
		return nil, curated.Errorf("soundload: tone: frequency too high (%.2fHz at %dHz)", freq, sampleRate)
	}

	t := &Tone{data: make([]float32, period)}
	for i := range t.data {
		if i < period/2 {
			t.data[i] = 1.0
		} else {
			t.data[i] = -1.0
		}
	}

	return t, nil
}

// NewSampleTone creates a tone from a loaded sample. The sample is resampled
// to the specified sample rate.
func NewSampleTone(s Sample, sampleRate int) (*Tone, error) {
	if len(s.Data) == 0 || s.SampleRate <= 0 || sampleRate <= 0 {
		return nil, curated.Errorf(EmptySample)
	}

	n := int(float64(len(s.Data)) * float64(sampleRate) / s.SampleRate)
	if n < 1 {
		n = 1
	}

	// nearest neighbour resampling is good enough for a tone
	t := &Tone{data: make([]float32, n)}
	step := s.SampleRate / float64(sampleRate)
	for i := range t.data {
		j := int(float64(i) * step)
		if j >= len(s.Data) {
			j = len(s.Data) - 1
		}
		t.data[i] = s.Data[j]
	}

	return t, nil
}

// Len returns the length of one loop of the tone.
func (t *Tone) Len() int {
	return len(t.data)
}

// Fill the buffer with the next samples of the tone.
func (t *Tone) Fill(buf []float32) {
	for i := range buf {
		buf[i] = t.data[t.pos]
		t.pos++
		if t.pos >= len(t.data) {
			t.pos = 0
		}
	}
}

// Reset the tone to the start of the loop.
func (t *Tone) Reset() {
	t.pos = 0
}
