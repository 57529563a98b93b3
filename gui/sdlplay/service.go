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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// loop until there are no more events to retrieve. queued events should
	// all be serviced before the next cycle of the emulation
	empty := false
	for !empty {
		// check for SDL events. timing out straight away if there's nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		// close window
		case *sdl.QuitEvent:
			scr.queue.Push(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			mod := userinput.KeyModNone

			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = userinput.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = userinput.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = userinput.KeyModCtrl
			}

			switch ev.Type {
			case sdl.KEYDOWN, sdl.KEYUP:
				scr.queue.Push(userinput.EventKeyboard{
					Key:    sdl.GetKeyName(ev.Keysym.Sym),
					Down:   ev.Type == sdl.KEYDOWN,
					Mod:    mod,
					Repeat: ev.Repeat != 0,
				})
			}

		case nil:
			// if we have a nil value then the WaitEvent has timed out
			// and we can say that the event queue is empty
			empty = true
		}
	}

	// run any outstanding service functions
	select {
	case f := <-scr.service:
		f()
	default:
	}

	scr.logError(scr.render())
	scr.logError(scr.aud.service())
}
