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

// Package memory implements the 4KB address space of the virtual machine.
//
// The bottom of memory contains the glyph table for the hexadecimal digits 0
// to F. Each glyph is five bytes long and is placed at FontOffset. Programs
// are loaded at EntryOffset, which is also where execution begins.
//
// Addresses are 12 bits wide. The CPU's Read() and Write() functions ignore
// the upper four bits of the address so that address arithmetic that strays
// past the top of memory wraps around to the bottom. The debugging functions
// Peek() and Poke() do not wrap and return an error for addresses outside of
// memory.
package memory
