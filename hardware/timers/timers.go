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

// Package timers implements the delay and sound timers of the virtual
// machine.
//
// Both timers count down to zero at 60Hz. The Tick() function is called once
// per cycle by the scheduler, regardless of how many instructions were
// executed during the cycle. Values are only ever increased by the
// instructions that set the timers.
package timers

import "fmt"

// TickRate is the number of times per second the timers are decremented.
const TickRate = 60

// Timers is the delay timer and sound timer.
type Timers struct {
	Delay uint8
	Sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

func (tmr *Timers) String() string {
	return fmt.Sprintf("DT=%02x ST=%02x", tmr.Delay, tmr.Sound)
}

// Reset both timers to zero.
func (tmr *Timers) Reset() {
	tmr.Delay = 0
	tmr.Sound = 0
}

// Tick decrements each timer that is not already zero.
func (tmr *Timers) Tick() {
	if tmr.Delay > 0 {
		tmr.Delay--
	}
	if tmr.Sound > 0 {
		tmr.Sound--
	}
}

// ToneActive returns true while the sound timer is non-zero.
func (tmr *Timers) ToneActive() bool {
	return tmr.Sound > 0
}
