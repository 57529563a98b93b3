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

package framebuffer_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/test"
)

// the glyph for zero
var zero = []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

func TestDrawTwice(t *testing.T) {
	fb := framebuffer.NewFramebuffer()

	collision := fb.DrawSprite(0, 0, zero)
	test.ExpectFailure(t, collision)
	test.ExpectEquality(t, fb.Lit(), 14)
	test.ExpectSuccess(t, fb.Pixel(0, 0))
	test.ExpectSuccess(t, fb.Pixel(3, 0))
	test.ExpectFailure(t, fb.Pixel(4, 0))
	test.ExpectFailure(t, fb.Pixel(1, 1))

	// drawing the same sprite in the same place restores the framebuffer and
	// reports a collision
	collision = fb.DrawSprite(0, 0, zero)
	test.ExpectSuccess(t, collision)
	test.ExpectEquality(t, fb.Lit(), 0)
}

func TestDrawTwiceEverywhere(t *testing.T) {
	sprite := []uint8{0xff, 0x81, 0xa5, 0x81, 0xff, 0x00, 0x3c}

	for x := 0; x < 256; x += 7 {
		for y := 0; y < 256; y += 5 {
			fb := framebuffer.NewFramebuffer()
			fb.DrawSprite(10, 10, zero)
			before := fb.Pixels()

			fb.DrawSprite(uint8(x), uint8(y), sprite)
			fb.DrawSprite(uint8(x), uint8(y), sprite)
			test.ExpectEquality(t, fb.Pixels(), before, x, y)
		}
	}
}

func TestWrapAndClip(t *testing.T) {
	fb := framebuffer.NewFramebuffer()

	// starting coordinates wrap
	fb.DrawSprite(framebuffer.Width+2, framebuffer.Height+3, []uint8{0x80})
	test.ExpectSuccess(t, fb.Pixel(2, 3))
	test.ExpectEquality(t, fb.Lit(), 1)

	// but the sprite is clipped at the right and bottom edges
	fb.Clear()
	fb.DrawSprite(60, 30, []uint8{0xff, 0xff, 0xff, 0xff})
	test.ExpectEquality(t, fb.Lit(), 8)
	test.ExpectSuccess(t, fb.Pixel(63, 31))
	test.ExpectFailure(t, fb.Pixel(0, 30))
	test.ExpectFailure(t, fb.Pixel(0, 0))

	// coordinates outside of the framebuffer are never lit
	test.ExpectFailure(t, fb.Pixel(-1, 0))
	test.ExpectFailure(t, fb.Pixel(framebuffer.Width, 0))
}

func TestString(t *testing.T) {
	fb := framebuffer.NewFramebuffer()
	fb.DrawSprite(0, 0, []uint8{0xc0})

	s := strings.Split(fb.String(), "\n")
	test.DemandEquality(t, len(s), framebuffer.Height+1)
	test.ExpectEquality(t, s[0], "##"+strings.Repeat(".", framebuffer.Width-2))
	test.ExpectEquality(t, s[1], strings.Repeat(".", framebuffer.Width))

	fb.Clear()
	test.ExpectEquality(t, fb.Lit(), 0)
}
