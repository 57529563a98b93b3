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

// Package userinput translates the keyboard events sent by a GUI into the
// state of the hexadecimal keypad and the run state control signals.
//
// The sixteen keys are mapped onto the left hand side of a QWERTY keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// The Escape key ends the emulation and the P key toggles the paused state.
//
// The Queue type collects events from a GUI and implements the input source
// used by the hardware scheduler. The Script type is an input source that
// plays back a predefined sequence of snapshots, one per cycle.
package userinput
