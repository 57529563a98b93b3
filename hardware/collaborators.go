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

package hardware

import (
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/userinput"
)

// Input is the source of keypad state and run state control signals. It is
// polled once at the start of every cycle.
type Input interface {
	PollInput() (userinput.Snapshot, error)
}

// Display is a sink for the framebuffer. Present() is called at most once per
// cycle. The framebuffer must not be retained after Present() returns.
type Display interface {
	Present(fb *framebuffer.Framebuffer) error
}

// AudioMixer is a sink for the tone state. SetTone() is called once per cycle
// and EndMixing() is called when the VM stops running.
type AudioMixer interface {
	SetTone(active bool) error
	EndMixing() error
}

// Limiter paces the cycles of the Run() function.
type Limiter interface {
	Wait()
}
