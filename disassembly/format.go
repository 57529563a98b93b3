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

// operator used for instruction words that do not decode to a recognised
// operation.
const unrecognisedOperator = "???"

// Format returns the operator and operand strings for the opcode. The
// operator is the mnemonic of the operation. Registers are shown as V0 to
// VF and immediate values are shown in hexadecimal with a $ prefix.
func Format(op instructions.Opcode) (string, string) {
	operation := op.Operation()

	defn, ok := instructions.Lookup(operation)
	if !ok {
		return unrecognisedOperator, fmt.Sprintf("$%04x", op.Word)
	}

	vx := fmt.Sprintf("V%X", op.X)
	vy := fmt.Sprintf("V%X", op.Y)
	nn := fmt.Sprintf("$%02x", op.NN)
	nnn := fmt.Sprintf("$%03x", op.NNN)

	var operand string

	switch operation {
	case instructions.CLS, instructions.RET:
	case instructions.SYS, instructions.JP, instructions.CALL:
		operand = nnn
	case instructions.SE, instructions.SNE, instructions.LD, instructions.ADD, instructions.RND:
		operand = fmt.Sprintf("%s, %s", vx, nn)
	case instructions.LDI:
		operand = fmt.Sprintf("I, %s", nnn)
	case instructions.JPV0:
		operand = fmt.Sprintf("V0, %s", nnn)
	case instructions.DRW:
		operand = fmt.Sprintf("%s, %s, %d", vx, vy, op.N)
	case instructions.SKP, instructions.SKNP:
		operand = vx
	case instructions.LDVDT:
		operand = fmt.Sprintf("%s, DT", vx)
	case instructions.LDK:
		operand = fmt.Sprintf("%s, K", vx)
	case instructions.LDDT:
		operand = fmt.Sprintf("DT, %s", vx)
	case instructions.LDST:
		operand = fmt.Sprintf("ST, %s", vx)
	case instructions.ADDI:
		operand = fmt.Sprintf("I, %s", vx)
	case instructions.LDF:
		operand = fmt.Sprintf("F, %s", vx)
	case instructions.LDB:
		operand = fmt.Sprintf("B, %s", vx)
	case instructions.STR:
		operand = fmt.Sprintf("[I], %s", vx)
	case instructions.LDR:
		operand = fmt.Sprintf("%s, [I]", vx)
	default:
		// the remaining operations take two registers
		operand = fmt.Sprintf("%s, %s", vx, vy)
	}

	return defn.Mnemonic, operand
}
