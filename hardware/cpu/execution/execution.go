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

// Package execution describes the result of executing a single instruction.
//
// The Effects field of the Result type is the set of signals raised by the
// instruction for the benefit of the scheduler. An instruction that halts
// execution does not raise a signal. Instead, the CPU returns an error of the
// faults.Fault type.
package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Effect is a bit set of the signals raised by an instruction.
type Effect uint8

// List of valid Effect bits.
const (
	// the framebuffer has been changed (or should be presented regardless)
	RedrawRequested Effect = 1 << iota

	// the sound timer has been written to
	SoundStateChanged

	// the instruction is waiting for a key to be pressed. the register
	// that will receive the key is in the WaitRegister field of the Result
	AwaitingKeypress
)

// Has returns true if all the bits in e are set.
func (eff Effect) Has(e Effect) bool {
	return eff&e == e
}

func (eff Effect) String() string {
	s := make([]string, 0, 3)
	if eff.Has(RedrawRequested) {
		s = append(s, "redraw")
	}
	if eff.Has(SoundStateChanged) {
		s = append(s, "sound")
	}
	if eff.Has(AwaitingKeypress) {
		s = append(s, "await key")
	}
	return strings.Join(s, "|")
}

// Result records the execution of a single instruction.
type Result struct {
	// the address of the instruction
	Address uint16

	Opcode    instructions.Opcode
	Operation instructions.Operation

	Effects Effect

	// the register that will receive the key when AwaitingKeypress is set
	WaitRegister uint8
}

func (r Result) String() string {
	s := fmt.Sprintf("%03x %s %s", r.Address, r.Opcode, r.Operation)
	if r.Effects != 0 {
		s = fmt.Sprintf("%s [%s]", s, r.Effects)
	}
	return s
}
