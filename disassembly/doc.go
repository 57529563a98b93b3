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

// Package disassembly produces a readable listing of CHIP-8 programs.
//
// Disassembly is linear. Every pair of bytes from the origin is decoded as an
// instruction word, with no attempt to follow the flow of the program. Data
// stored in the program area will therefore be shown as instructions, which
// may well be Unrecognised.
//
// For quick disassemblies of a ROM file the FromROM() function can be used.
// The debugger will find it more useful to disassemble from the memory of a
// running VM with FromMemory(). Entries of a disassembly are marked as
// executed with the Executed() function.
package disassembly
