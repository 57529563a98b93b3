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

package userinput

import (
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// keyMap maps the name of a keyboard key to the keypad key.
var keyMap = map[string]uint8{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// KeypadKey returns the keypad key for the named keyboard key.
func KeypadKey(key string) (uint8, bool) {
	k, ok := keyMap[key]
	return k, ok
}

// Controllers keeps track of the keys that are held down and any pending
// control signal.
type Controllers struct {
	keys    [keypad.NumKeys]bool
	control govern.Control

	// whether or not the last event was consumed
	LastKeyHandled bool
}

// HandleUserInput updates the state of the controllers with the event.
// Returns true if the event was consumed.
func (c *Controllers) HandleUserInput(ev Event) bool {
	switch ev := ev.(type) {
	case EventQuit:
		c.control = govern.Quit
		c.LastKeyHandled = true
	case EventKeyboard:
		c.LastKeyHandled = c.keyboard(ev)
	default:
		c.LastKeyHandled = false
	}
	return c.LastKeyHandled
}

func (c *Controllers) keyboard(ev EventKeyboard) bool {
	if ev.Repeat {
		return false
	}

	if ev.Mod != KeyModNone {
		return false
	}

	if k, ok := keyMap[ev.Key]; ok {
		c.keys[k] = ev.Down
		return true
	}

	if !ev.Down {
		return false
	}

	switch ev.Key {
	case "Escape":
		// quit takes priority over a pending pause toggle
		c.control = govern.Quit
	case "P":
		if c.control == govern.NoControl {
			c.control = govern.TogglePause
		}
	default:
		return false
	}

	return true
}

// Snapshot returns the current state of the controllers. Any pending control
// signal is cleared.
func (c *Controllers) Snapshot() Snapshot {
	s := Snapshot{
		Keys:    c.keys,
		Control: c.control,
	}
	if c.control != govern.Quit {
		c.control = govern.NoControl
	}
	return s
}

// ReleaseAll releases every key.
func (c *Controllers) ReleaseAll() {
	c.keys = [keypad.NumKeys]bool{}
}
