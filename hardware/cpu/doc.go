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

// Package cpu implements the registers, call stack and instruction executor
// of the virtual machine.
//
// The ExecuteInstruction() function fetches, decodes and executes a single
// instruction. The program counter is advanced past the instruction before
// the instruction itself is executed, so the program counter seen by the
// control flow instructions is the address of the next instruction.
//
// Instructions that fail return an error of type faults.Fault. When this
// happens the program counter is restored to the address of the faulting
// instruction and no other part of the machine is changed.
//
// The wait-for-key instruction (FX0A) does not block. Instead, the CPU is put
// into the Waiting state and the instruction's effects indicate that a
// keypress is awaited. The scheduler resolves the wait with ResolveWait() when
// a new keypress is observed.
package cpu
