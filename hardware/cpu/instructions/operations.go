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

// Operation is the closed set of operations understood by the CPU.
type Operation int

// List of valid Operation values. The comment next to each operation is the
// pattern of the instruction words that decode to that operation.
const (
	Unrecognised Operation = iota

	SYS  // 0NNN
	CLS  // 00E0
	RET  // 00EE
	JP   // 1NNN
	CALL // 2NNN
	SE   // 3XNN
	SNE  // 4XNN
	SEV  // 5XY0
	LD   // 6XNN
	ADD  // 7XNN
	LDV  // 8XY0
	OR   // 8XY1
	AND  // 8XY2
	XOR  // 8XY3
	ADDV // 8XY4
	SUB  // 8XY5
	SHR  // 8XY6
	SUBN // 8XY7
	SHL  // 8XYE
	SNEV // 9XY0
	LDI  // ANNN
	JPV0 // BNNN
	RND  // CXNN
	DRW  // DXYN
	SKP  // EX9E
	SKNP // EXA1

	LDVDT // FX07
	LDK   // FX0A
	LDDT  // FX15
	LDST  // FX18
	ADDI  // FX1E
	LDF   // FX29
	LDB   // FX33
	STR   // FX55
	LDR   // FX65

	// the number of operations including Unrecognised
	NumOperations
)

func (op Operation) String() string {
	if defn, ok := Lookup(op); ok {
		return defn.Pattern
	}
	return "unrecognised"
}
