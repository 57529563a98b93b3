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

// Package framebuffer implements the 64x32 monochrome display memory of the
// virtual machine.
//
// Sprites are drawn with DrawSprite(). Each byte of a sprite is one row of
// eight pixels, most significant bit on the left. Pixels are combined with
// the existing contents of the framebuffer with an exclusive-or. The starting
// coordinates wrap around the edges of the framebuffer but the sprite itself
// is clipped.
package framebuffer

import (
	"strings"
)

// Dimensions of the framebuffer.
const (
	Width  = 64
	Height = 32
)

// Framebuffer is the display memory.
type Framebuffer struct {
	pixels [Width * Height]bool
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// String returns the framebuffer as text, one line per row. Lit pixels are
// represented by '#' and unlit pixels by '.'.
func (fb *Framebuffer) String() string {
	s := strings.Builder{}
	s.Grow((Width + 1) * Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if fb.pixels[y*Width+x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Clear turns off every pixel.
func (fb *Framebuffer) Clear() {
	fb.pixels = [Width * Height]bool{}
}

// Pixel returns true if the pixel at x, y is lit. Coordinates outside of the
// framebuffer are never lit.
func (fb *Framebuffer) Pixel(x int, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return fb.pixels[y*Width+x]
}

// Pixels returns a copy of every pixel in the framebuffer. The pixel at x, y
// is at index y*Width+x.
func (fb *Framebuffer) Pixels() [Width * Height]bool {
	return fb.pixels
}

// Lit returns the number of lit pixels.
func (fb *Framebuffer) Lit() int {
	n := 0
	for _, p := range fb.pixels {
		if p {
			n++
		}
	}
	return n
}

// DrawSprite draws the sprite with its top-left corner at x, y. Returns true
// if any lit pixel was turned off by the sprite.
func (fb *Framebuffer) DrawSprite(x uint8, y uint8, sprite []uint8) bool {
	ox := int(x) % Width
	oy := int(y) % Height

	var collision bool

	for r, b := range sprite {
		py := oy + r
		if py >= Height {
			break
		}

		for c := 0; c < 8; c++ {
			px := ox + c
			if px >= Width {
				break
			}

			if b&(0x80>>c) == 0 {
				continue
			}

			i := py*Width + px
			if fb.pixels[i] {
				collision = true
			}
			fb.pixels[i] = !fb.pixels[i]
		}
	}

	return collision
}
