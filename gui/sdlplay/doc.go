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

// Package sdlplay implements the gui.GUI interface with SDL.
//
// SDL requires that most of its functions are called from the main thread.
// The Present(), SetTone() and SetFeature() functions can be called from any
// goroutine. The effects of those functions are applied to the window and to
// the audio device the next time Service() is called from the main thread.
package sdlplay
