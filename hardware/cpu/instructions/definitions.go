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

package instructions

import "fmt"

// Category describes the general effect of an operation.
type Category int

// List of valid Category values.
const (
	Flow Category = iota
	Arithmetic
	Memory
	Display
	Timer
	Input
)

func (c Category) String() string {
	switch c {
	case Flow:
		return "flow"
	case Arithmetic:
		return "arithmetic"
	case Memory:
		return "memory"
	case Display:
		return "display"
	case Timer:
		return "timer"
	case Input:
		return "input"
	}
	return "unknown category"
}

// Definition describes a single operation.
type Definition struct {
	Operation Operation

	// the mnemonic used by the disassembler. more than one operation can share
	// a mnemonic, the operands differentiate them
	Mnemonic string

	// the conventional pattern of the instruction word. hexadecimal digits
	// are fixed, the letters X, Y and N are variable fields
	Pattern string

	// an instruction word matches the definition if (word & Mask) == Value
	Mask  uint16
	Value uint16

	Category Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s %s (%s)", defn.Pattern, defn.Mnemonic, defn.Category)
}

// Matches returns true if the instruction word matches the definition's
// pattern.
func (defn Definition) Matches(word uint16) bool {
	return word&defn.Mask == defn.Value
}

// Definitions is the list of every recognised operation, in the same order
// as the Operation type.
var Definitions = []Definition{
	{Operation: SYS, Mnemonic: "SYS", Pattern: "0NNN", Mask: 0xf000, Value: 0x0000, Category: Flow},
	{Operation: CLS, Mnemonic: "CLS", Pattern: "00E0", Mask: 0xffff, Value: 0x00e0, Category: Display},
	{Operation: RET, Mnemonic: "RET", Pattern: "00EE", Mask: 0xffff, Value: 0x00ee, Category: Flow},
	{Operation: JP, Mnemonic: "JP", Pattern: "1NNN", Mask: 0xf000, Value: 0x1000, Category: Flow},
	{Operation: CALL, Mnemonic: "CALL", Pattern: "2NNN", Mask: 0xf000, Value: 0x2000, Category: Flow},
	{Operation: SE, Mnemonic: "SE", Pattern: "3XNN", Mask: 0xf000, Value: 0x3000, Category: Flow},
	{Operation: SNE, Mnemonic: "SNE", Pattern: "4XNN", Mask: 0xf000, Value: 0x4000, Category: Flow},
	{Operation: SEV, Mnemonic: "SE", Pattern: "5XY0", Mask: 0xf00f, Value: 0x5000, Category: Flow},
	{Operation: LD, Mnemonic: "LD", Pattern: "6XNN", Mask: 0xf000, Value: 0x6000, Category: Arithmetic},
	{Operation: ADD, Mnemonic: "ADD", Pattern: "7XNN", Mask: 0xf000, Value: 0x7000, Category: Arithmetic},
	{Operation: LDV, Mnemonic: "LD", Pattern: "8XY0", Mask: 0xf00f, Value: 0x8000, Category: Arithmetic},
	{Operation: OR, Mnemonic: "OR", Pattern: "8XY1", Mask: 0xf00f, Value: 0x8001, Category: Arithmetic},
	{Operation: AND, Mnemonic: "AND", Pattern: "8XY2", Mask: 0xf00f, Value: 0x8002, Category: Arithmetic},
	{Operation: XOR, Mnemonic: "XOR", Pattern: "8XY3", Mask: 0xf00f, Value: 0x8003, Category: Arithmetic},
	{Operation: ADDV, Mnemonic: "ADD", Pattern: "8XY4", Mask: 0xf00f, Value: 0x8004, Category: Arithmetic},
	{Operation: SUB, Mnemonic: "SUB", Pattern: "8XY5", Mask: 0xf00f, Value: 0x8005, Category: Arithmetic},
	{Operation: SHR, Mnemonic: "SHR", Pattern: "8XY6", Mask: 0xf00f, Value: 0x8006, Category: Arithmetic},
	{Operation: SUBN, Mnemonic: "SUBN", Pattern: "8XY7", Mask: 0xf00f, Value: 0x8007, Category: Arithmetic},
	{Operation: SHL, Mnemonic: "SHL", Pattern: "8XYE", Mask: 0xf00f, Value: 0x800e, Category: Arithmetic},
	{Operation: SNEV, Mnemonic: "SNE", Pattern: "9XY0", Mask: 0xf00f, Value: 0x9000, Category: Flow},
	{Operation: LDI, Mnemonic: "LD", Pattern: "ANNN", Mask: 0xf000, Value: 0xa000, Category: Memory},
	{Operation: JPV0, Mnemonic: "JP", Pattern: "BNNN", Mask: 0xf000, Value: 0xb000, Category: Flow},
	{Operation: RND, Mnemonic: "RND", Pattern: "CXNN", Mask: 0xf000, Value: 0xc000, Category: Arithmetic},
	{Operation: DRW, Mnemonic: "DRW", Pattern: "DXYN", Mask: 0xf000, Value: 0xd000, Category: Display},
	{Operation: SKP, Mnemonic: "SKP", Pattern: "EX9E", Mask: 0xf0ff, Value: 0xe09e, Category: Input},
	{Operation: SKNP, Mnemonic: "SKNP", Pattern: "EXA1", Mask: 0xf0ff, Value: 0xe0a1, Category: Input},
	{Operation: LDVDT, Mnemonic: "LD", Pattern: "FX07", Mask: 0xf0ff, Value: 0xf007, Category: Timer},
	{Operation: LDK, Mnemonic: "LD", Pattern: "FX0A", Mask: 0xf0ff, Value: 0xf00a, Category: Input},
	{Operation: LDDT, Mnemonic: "LD", Pattern: "FX15", Mask: 0xf0ff, Value: 0xf015, Category: Timer},
	{Operation: LDST, Mnemonic: "LD", Pattern: "FX18", Mask: 0xf0ff, Value: 0xf018, Category: Timer},
	{Operation: ADDI, Mnemonic: "ADD", Pattern: "FX1E", Mask: 0xf0ff, Value: 0xf01e, Category: Memory},
	{Operation: LDF, Mnemonic: "LD", Pattern: "FX29", Mask: 0xf0ff, Value: 0xf029, Category: Memory},
	{Operation: LDB, Mnemonic: "LD", Pattern: "FX33", Mask: 0xf0ff, Value: 0xf033, Category: Memory},
	{Operation: STR, Mnemonic: "LD", Pattern: "FX55", Mask: 0xf0ff, Value: 0xf055, Category: Memory},
	{Operation: LDR, Mnemonic: "LD", Pattern: "FX65", Mask: 0xf0ff, Value: 0xf065, Category: Memory},
}

// Lookup returns the definition for the operation. Returns false if the
// operation is Unrecognised.
func Lookup(op Operation) (Definition, bool) {
	if op <= Unrecognised || op >= NumOperations {
		return Definition{}, false
	}
	return Definitions[op-1], true
}
