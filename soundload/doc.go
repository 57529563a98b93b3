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

// Package soundload loads audio samples from WAV and MP3 files, and provides
// the Tone type which is a looping source of audio samples.
//
// A tone can be created from a loaded sample or from a simple square wave of
// a given frequency. The tone is used by the audio outputs of the emulator to
// render the state of the sound timer as audible sound.
package soundload
