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

// KeyMod identifies the modifier keys held down during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// Event is the interface for all user input events.
type Event interface{}

// EventKeyboard is sent by the GUI when a key is pressed or released. The
// Key field is the name of the key as reported by the GUI. Single character
// keys are upper case.
type EventKeyboard struct {
	Key    string
	Down   bool
	Mod    KeyMod
	Repeat bool
}

// EventQuit is sent by the GUI when the window is closed.
type EventQuit struct{}
