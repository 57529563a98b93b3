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

// Package keypad implements the sixteen key hexadecimal keypad.
//
// The state of the keys is changed by the input source between cycles with
// the Apply() function. The CPU only reads the state of the keys, with the
// exception of the bookkeeping required by the wait-for-key instruction.
//
// A key that is already held down when a wait begins cannot satisfy the wait.
// The key must be released and pressed again.
package keypad

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad is the state of the sixteen keys.
type Keypad struct {
	keys [NumKeys]bool

	// keys that were held down when a wait began and which have not yet been
	// released
	held [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k := 0; k < NumKeys; k++ {
		if kp.keys[k] {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteString("-")
		}
	}
	return s.String()
}

// Reset releases all keys.
func (kp *Keypad) Reset() {
	kp.keys = [NumKeys]bool{}
	kp.held = [NumKeys]bool{}
}

// Apply a new keypad state.
func (kp *Keypad) Apply(keys [NumKeys]bool) {
	kp.keys = keys
	for k := range kp.held {
		if !kp.keys[k] {
			kp.held[k] = false
		}
	}
}

// Press a single key. Only the lower nibble of key is used.
func (kp *Keypad) Press(key uint8) {
	kp.keys[key&0x0f] = true
}

// Release a single key. Only the lower nibble of key is used.
func (kp *Keypad) Release(key uint8) {
	kp.keys[key&0x0f] = false
	kp.held[key&0x0f] = false
}

// State returns a copy of the current state of all keys.
func (kp *Keypad) State() [NumKeys]bool {
	return kp.keys
}

// IsPressed returns true if the key is down. Only the lower nibble of key is
// used.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.keys[key&0x0f]
}

// BeginWait notes the keys that are currently pressed. These keys will not
// be returned by NewlyPressed() until they have been released.
func (kp *Keypad) BeginWait() {
	kp.held = kp.keys
}

// EndWait forgets the keys noted by BeginWait().
func (kp *Keypad) EndWait() {
	kp.held = [NumKeys]bool{}
}

// NewlyPressed returns the lowest numbered key that is pressed and which was
// not held down when the wait began.
func (kp *Keypad) NewlyPressed() (uint8, bool) {
	for k := range kp.keys {
		if kp.keys[k] && !kp.held[k] {
			return uint8(k), true
		}
	}
	return 0, false
}
