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

package termplay

import (
	"io"
	"strings"

	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
)

// half-block characters. each character covers two rows of the framebuffer
const (
	blockNone   = ' '
	blockTop    = '▀'
	blockBottom = '▄'
	blockFull   = '█'
)

// render the pixels to the writer, followed by the status line. the cursor is
// moved to the home position first so that the previous frame is
// overwritten. lines are terminated with a carriage return and a line feed
// because output processing is disabled in raw mode
func render(w io.Writer, pixels *[framebuffer.Width * framebuffer.Height]bool, status string) error {
	s := strings.Builder{}
	s.Grow((framebuffer.Width*3 + 2) * (framebuffer.Height/2 + 1))

	s.WriteString(easyterm.CursorHome)

	for y := 0; y < framebuffer.Height; y += 2 {
		for x := 0; x < framebuffer.Width; x++ {
			top := pixels[y*framebuffer.Width+x]
			bottom := pixels[(y+1)*framebuffer.Width+x]
			switch {
			case top && bottom:
				s.WriteRune(blockFull)
			case top:
				s.WriteRune(blockTop)
			case bottom:
				s.WriteRune(blockBottom)
			default:
				s.WriteRune(blockNone)
			}
		}
		s.WriteString("\r\n")
	}

	// pad status line to width of the framebuffer to remove any previous
	// status line that was longer
	if len(status) < framebuffer.Width {
		status += strings.Repeat(" ", framebuffer.Width-len(status))
	}
	s.WriteString(easyterm.InversePen)
	s.WriteString(status)
	s.WriteString(easyterm.ResetPen)
	s.WriteString("\r\n")

	_, err := io.WriteString(w, s.String())
	return err
}
