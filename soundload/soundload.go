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
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// Sentinel error patterns.
const (
	UnsupportedFormat = "soundload: unsupported file format (%s)"
	EmptySample       = "soundload: sample contains no data"
)

// Sample is mono audio data. Values are in the range -1.0 to 1.0.
type Sample struct {
	Data       []float32
	SampleRate float64

	// total time of the sample in seconds
	TotalTime float64
}

// Load the audio data from a WAV or MP3 file. The format is decided by the
// file extension. Stereo files are reduced to mono by taking the first
// channel.
func Load(filename string) (Sample, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Sample{}, curated.Errorf("soundload: %v", err)
	}

	var s Sample

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wav":
		s, err = decodeWAV(bytes.NewReader(data))
	case ".mp3":
		s, err = decodeMP3(bytes.NewReader(data))
	default:
		return Sample{}, curated.Errorf(UnsupportedFormat, ext)
	}

	if err != nil {
		return Sample{}, curated.Errorf("soundload: %v", err)
	}

	if len(s.Data) == 0 {
		return Sample{}, curated.Errorf(EmptySample)
	}

	logger.Logf(logger.Allow, "soundload", "%s: %.0fHz, %.02fs", filepath.Base(filename), s.SampleRate, s.TotalTime)

	return s, nil
}

func decodeWAV(r io.ReadSeeker) (Sample, error) {
	var s Sample

	dec := wav.NewDecoder(r)
	if dec == nil {
		return s, curated.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return s, curated.Errorf("wav: not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return s, curated.Errorf("wav: %v", err)
	}

	// the float buffer is normalised according to the bit depth of the file
	floatBuf := buf.AsFloat32Buffer()

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	// copy first channel only of data stream
	s.Data = make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		s.Data = append(s.Data, floatBuf.Data[i])
	}

	s.SampleRate = float64(dec.SampleRate)

	dur, err := dec.Duration()
	if err != nil {
		return s, curated.Errorf("wav: %v", err)
	}
	s.TotalTime = dur.Seconds()

	return s, nil
}

func decodeMP3(r io.Reader) (Sample, error) {
	var s Sample

	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return s, curated.Errorf("mp3: %v", err)
	}

	// the decoded stream is always 16bit little endian with two channels.
	// a sample therefore consists of four bytes and the first two bytes are
	// the left channel
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			s.Data = append(s.Data, float32(v)/32768.0)
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return s, curated.Errorf("mp3: %v", err)
		}
	}

	s.SampleRate = float64(dec.SampleRate())
	if s.SampleRate > 0 {
		s.TotalTime = float64(len(s.Data)) / s.SampleRate
	}

	return s, nil
}
