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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestPressRelease(t *testing.T) {
	kp := keypad.NewKeypad()
	test.ExpectEquality(t, kp.String(), "----------------")

	kp.Press(0x0a)
	test.ExpectSuccess(t, kp.IsPressed(0x0a))
	test.ExpectFailure(t, kp.IsPressed(0x0b))

	// only the lower nibble is used
	test.ExpectSuccess(t, kp.IsPressed(0xfa))
	test.ExpectEquality(t, kp.String(), "----------A-----")

	kp.Release(0x0a)
	test.ExpectFailure(t, kp.IsPressed(0x0a))

	var keys [keypad.NumKeys]bool
	keys[0] = true
	keys[0xf] = true
	kp.Apply(keys)
	test.ExpectEquality(t, kp.String(), "0--------------F")
	test.ExpectEquality(t, kp.State(), keys)

	kp.Reset()
	test.ExpectEquality(t, kp.String(), "----------------")
}

func TestWait(t *testing.T) {
	kp := keypad.NewKeypad()

	// key 5 is held when the wait begins
	var keys [keypad.NumKeys]bool
	keys[5] = true
	kp.Apply(keys)
	kp.BeginWait()

	_, ok := kp.NewlyPressed()
	test.ExpectFailure(t, ok)

	// still held
	kp.Apply(keys)
	_, ok = kp.NewlyPressed()
	test.ExpectFailure(t, ok)

	// released
	keys[5] = false
	kp.Apply(keys)
	_, ok = kp.NewlyPressed()
	test.ExpectFailure(t, ok)

	// pressed again
	keys[5] = true
	kp.Apply(keys)
	k, ok := kp.NewlyPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 5)
	kp.EndWait()
}

func TestWaitDifferentKey(t *testing.T) {
	kp := keypad.NewKeypad()

	var keys [keypad.NumKeys]bool
	keys[5] = true
	kp.Apply(keys)
	kp.BeginWait()

	// a different key satisfies the wait even while the first key is held
	keys[9] = true
	kp.Apply(keys)
	k, ok := kp.NewlyPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 9)
	kp.EndWait()

	// after the wait has ended the held key is no longer special
	k, ok = kp.NewlyPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, 5)
}
