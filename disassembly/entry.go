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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every pair of bytes is a valid
// instruction. Executed entries have been seen by the CPU.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// the address of the first byte of the instruction
	Address uint16

	// the decoded instruction word. for a single trailing byte in a ROM the
	// instruction word is the byte in the high position
	Opcode    instructions.Opcode
	Operation instructions.Operation

	// string representations of the entry. Operator is the mnemonic of the
	// operation, or a directive for data
	Bytecode string
	Operator string
	Operand  string
}

// newEntry decodes the instruction word at the address.
func newEntry(address uint16, word uint16) Entry {
	op := instructions.Decode(word)
	e := Entry{
		Address:   address,
		Opcode:    op,
		Operation: op.Operation(),
		Bytecode:  fmt.Sprintf("%02x %02x", uint8(word>>8), uint8(word)),
	}
	e.Operator, e.Operand = Format(op)
	return e
}

// newDataEntry represents a single byte that does not form an instruction.
func newDataEntry(address uint16, data uint8) Entry {
	return Entry{
		Address:   address,
		Opcode:    instructions.Decode(uint16(data) << 8),
		Operation: instructions.Unrecognised,
		Bytecode:  fmt.Sprintf("%02x   ", data),
		Operator:  "DB",
		Operand:   fmt.Sprintf("$%02x", data),
	}
}

func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("$%04x %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("$%04x %-4s %s", e.Address, e.Operator, e.Operand)
}
