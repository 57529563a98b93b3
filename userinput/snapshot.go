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
	"strings"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/keypad"
)

// Snapshot is the state of the user input at the start of a cycle.
type Snapshot struct {
	// the state of all sixteen keys
	Keys [keypad.NumKeys]bool

	// control signal to be applied to the run state
	Control govern.Control
}

func (s Snapshot) String() string {
	b := strings.Builder{}
	for k, d := range s.Keys {
		if d {
			b.WriteByte("0123456789ABCDEF"[k])
		} else {
			b.WriteByte('-')
		}
	}
	if s.Control != govern.NoControl {
		b.WriteString(" ")
		b.WriteString(s.Control.String())
	}
	return b.String()
}
