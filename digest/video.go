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
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
)

// Video is an implementation of the hardware.Display interface that computes
// a chained hash of every presented frame.
type Video struct {
	digest [sha1.Size]byte

	// pixels has room at the head of the array for the previous digest
	pixels []byte

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+framebuffer.Width*framebuffer.Height),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames that have contributed to the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Present implements the hardware.Display interface.
func (dig *Video) Present(fb *framebuffer.Framebuffer) error {
	// chain fingerprints by copying the value of the last fingerprint
	// to the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: video: %v", "digest error during present")
	}

	px := fb.Pixels()
	for i, p := range px {
		if p {
			dig.pixels[n+i] = 1
		} else {
			dig.pixels[n+i] = 0
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}
