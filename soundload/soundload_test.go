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

package soundload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/soundload"
	"github.com/jetsetilly/gopher8/test"
)

// writeWAV creates a 16bit WAV file with the sample values in the first
// channel and silence in any other channels
func writeWAV(t *testing.T, fn string, rate int, chans int, values []int) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	data := make([]int, 0, len(values)*chans)
	for _, v := range values {
		data = append(data, v)
		for c := 1; c < chans; c++ {
			data = append(data, 0)
		}
	}

	enc := wav.NewEncoder(f, rate, 16, chans, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: chans,
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
}

func TestLoadWAV(t *testing.T) {
	values := []int{0, 16384, -16384, 32767, -32768, 0, 8192, -8192}

	for _, chans := range []int{1, 2} {
		fn := filepath.Join(t.TempDir(), "tone.wav")
		writeWAV(t, fn, 8000, chans, values)

		s, err := soundload.Load(fn)
		test.DemandSuccess(t, err, chans)
		test.ExpectEquality(t, s.SampleRate, 8000.0, chans)
		test.DemandEquality(t, len(s.Data), len(values), chans)
		test.ExpectEquality(t, s.Data[1], float32(0.5), chans)
		test.ExpectEquality(t, s.Data[2], float32(-0.5), chans)
		test.ExpectEquality(t, s.Data[4], float32(-1.0), chans)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := soundload.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "tone.ogg")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{0x00}, 0o644))
	_, err = soundload.Load(fn)
	test.ExpectSuccess(t, curated.Is(err, soundload.UnsupportedFormat))

	fn = filepath.Join(t.TempDir(), "bad.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a wav file"), 0o644))
	_, err = soundload.Load(fn)
	test.ExpectFailure(t, err)
}

func TestSquareTone(t *testing.T) {
	_, err := soundload.NewSquareTone(0, 48000)
	test.ExpectFailure(t, err)
	_, err = soundload.NewSquareTone(40000, 48000)
	test.ExpectFailure(t, err)

	tone, err := soundload.NewSquareTone(1000, 8000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tone.Len(), 8)

	buf := make([]float32, 12)
	tone.Fill(buf)
	expected := []float32{1, 1, 1, 1, -1, -1, -1, -1, 1, 1, 1, 1}
	for i := range buf {
		test.ExpectEquality(t, buf[i], expected[i], i)
	}

	// the tone continues from where it left off
	tone.Fill(buf[:1])
	test.ExpectEquality(t, buf[0], float32(-1))

	tone.Reset()
	tone.Fill(buf[:1])
	test.ExpectEquality(t, buf[0], float32(1))
}

func TestSampleTone(t *testing.T) {
	s := soundload.Sample{
		Data:       []float32{0.1, 0.2, 0.3, 0.4},
		SampleRate: 4000,
	}

	// upsampling doubles the number of samples
	tone, err := soundload.NewSampleTone(s, 8000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tone.Len(), 8)

	buf := make([]float32, 8)
	tone.Fill(buf)
	test.ExpectEquality(t, buf[0], float32(0.1))
	test.ExpectEquality(t, buf[1], float32(0.1))
	test.ExpectEquality(t, buf[2], float32(0.2))
	test.ExpectEquality(t, buf[7], float32(0.4))

	_, err = soundload.NewSampleTone(soundload.Sample{}, 8000)
	test.ExpectFailure(t, err)
}
