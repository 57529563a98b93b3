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

// Package termplay implements the gui.GUI interface for a posix terminal.
//
// The framebuffer is drawn with half-block characters, giving one terminal
// row for every two rows of the framebuffer. The tone is represented by the
// terminal bell, which is rung whenever the tone starts.
//
// Terminals do not report key releases. A key is held down from the moment
// it is read from the terminal until no repeat of that key has been seen
// for the duration set by the termplay.holdms preference.
package termplay
