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

package govern

// State indicates the emulation's run state.
type State int

// List of possible emulation states.
const (
	Running State = iota
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Stopped:
		return "Stopped"
	}
	return ""
}

// Control is a signal from the input source that changes the run state.
type Control int

// List of possible control signals.
const (
	NoControl Control = iota
	Quit
	TogglePause
)

func (c Control) String() string {
	switch c {
	case Quit:
		return "Quit"
	case TogglePause:
		return "TogglePause"
	}
	return ""
}

// Apply returns the new state after the control signal has been applied to
// the current state.
func (s State) Apply(c Control) State {
	if s == Stopped {
		return Stopped
	}

	switch c {
	case Quit:
		return Stopped
	case TogglePause:
		if s == Paused {
			return Running
		}
		return Paused
	}

	return s
}
