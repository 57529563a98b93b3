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

// Package instructions decodes the 16 bit instruction words of the virtual
// machine.
//
// Decode() splits an instruction word into its constituent fields. It never
// fails: the Operation() function of the returned Opcode maps the word onto
// the closed set of operations understood by the CPU, with the Unrecognised
// operation for every word that does not match a definition.
//
// The Definitions list describes every recognised operation, including the
// pattern used to match it and the mnemonic used by the disassembler.
package instructions
