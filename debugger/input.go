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

package debugger

import (
	"sync"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/userinput"
)

// debugInput is the input source used by the VM while it is under the control
// of the debugger. keys pressed with the PRESS command are combined with the
// keys reported by the input source of the GUI, if there is one.
type debugInput struct {
	crit    sync.Mutex
	source  hardware.Input
	pressed [keypad.NumKeys]bool
}

// PollInput implements the hardware.Input interface.
func (inp *debugInput) PollInput() (userinput.Snapshot, error) {
	var snp userinput.Snapshot

	if inp.source != nil {
		var err error
		snp, err = inp.source.PollInput()
		if err != nil {
			return snp, err
		}
	}

	inp.crit.Lock()
	defer inp.crit.Unlock()

	for k, p := range inp.pressed {
		snp.Keys[k] = snp.Keys[k] || p
	}

	return snp, nil
}

func (inp *debugInput) press(key uint8) {
	inp.crit.Lock()
	defer inp.crit.Unlock()
	inp.pressed[key&0x0f] = true
}

func (inp *debugInput) release(key uint8) {
	inp.crit.Lock()
	defer inp.crit.Unlock()
	inp.pressed[key&0x0f] = false
}

func (inp *debugInput) releaseAll() {
	inp.crit.Lock()
	defer inp.crit.Unlock()
	inp.pressed = [keypad.NumKeys]bool{}
}
