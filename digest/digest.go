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

// Package digest is used to create mathematical hashes of the output of the
// virtual machine. The hashes are chained so that the final value depends on
// every frame (or tone state) in the order in which they were produced.
//
// The Video type implements the hardware.Display interface and the Audio type
// implements the hardware.AudioMixer interface. Both types implement the
// Digest interface.
//
// Useful for checking that the output of a program has not changed between
// versions of the emulator. Note that the digest of a program that uses
// random numbers is only reproducible if the random number generator has
// been normalised.
package digest

// Digest implementations compute a hash of the output of the virtual machine.
type Digest interface {
	Hash() string
	ResetDigest()
}
