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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024

// the buffer is chained by keeping the previous digest value at the head of
// the buffer
const audioBufferStart = sha1.Size

// Audio is an implementation of the hardware.AudioMixer interface that
// computes a chained hash of the tone state.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements the Digest interface. Tone states that have not yet been
// flushed do not contribute to the hash.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = audioBufferStart
}

// SetTone implements the hardware.AudioMixer interface.
func (dig *Audio) SetTone(active bool) error {
	if active {
		dig.buffer[dig.bufferCt] = 1
	} else {
		dig.buffer[dig.bufferCt] = 0
	}

	dig.bufferCt++

	if dig.bufferCt >= audioBufferLength {
		return dig.flush()
	}

	return nil
}

func (dig *Audio) flush() error {
	// unused parts of the buffer are zeroed so that a partial buffer is
	// hashed consistently
	for i := dig.bufferCt; i < len(dig.buffer); i++ {
		dig.buffer[i] = 0
	}

	dig.digest = sha1.Sum(dig.buffer)
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: audio: %v", "digest error while flushing audio stream")
	}
	dig.bufferCt = audioBufferStart

	return nil
}

// EndMixing implements the hardware.AudioMixer interface. Any tone states
// that have not yet contributed to the hash are flushed.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt == audioBufferStart {
		return nil
	}
	return dig.flush()
}
