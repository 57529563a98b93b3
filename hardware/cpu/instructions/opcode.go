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

// Opcode is a decoded instruction word. The fields are named after the
// hexadecimal digits used in the conventional instruction patterns. For
// example, the instruction word 0x8ab4 matches the pattern 8XY4, giving an X
// field of 0xa and a Y field of 0xb.
type Opcode struct {
	Word uint16

	// the upper nibble of the instruction word
	Family uint8

	X   uint8
	Y   uint8
	N   uint8
	NN  uint8
	NNN uint16
}

// Fetch assembles an instruction word from two bytes. Instruction words are
// stored big-endian.
func Fetch(hi uint8, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Decode splits an instruction word into its fields.
func Decode(word uint16) Opcode {
	return Opcode{
		Word:   word,
		Family: uint8(word >> 12),
		X:      uint8(word>>8) & 0x0f,
		Y:      uint8(word>>4) & 0x0f,
		N:      uint8(word) & 0x0f,
		NN:     uint8(word),
		NNN:    word & 0x0fff,
	}
}

func (op Opcode) String() string {
	return fmt.Sprintf("%04x", op.Word)
}

// Operation returns the operation for the opcode.
func (op Opcode) Operation() Operation {
	switch op.Family {
	case 0x0:
		switch op.Word {
		case 0x00e0:
			return CLS
		case 0x00ee:
			return RET
		}
		return SYS
	case 0x1:
		return JP
	case 0x2:
		return CALL
	case 0x3:
		return SE
	case 0x4:
		return SNE
	case 0x5:
		if op.N == 0x0 {
			return SEV
		}
	case 0x6:
		return LD
	case 0x7:
		return ADD
	case 0x8:
		switch op.N {
		case 0x0:
			return LDV
		case 0x1:
			return OR
		case 0x2:
			return AND
		case 0x3:
			return XOR
		case 0x4:
			return ADDV
		case 0x5:
			return SUB
		case 0x6:
			return SHR
		case 0x7:
			return SUBN
		case 0xe:
			return SHL
		}
	case 0x9:
		if op.N == 0x0 {
			return SNEV
		}
	case 0xa:
		return LDI
	case 0xb:
		return JPV0
	case 0xc:
		return RND
	case 0xd:
		return DRW
	case 0xe:
		switch op.NN {
		case 0x9e:
			return SKP
		case 0xa1:
			return SKNP
		}
	case 0xf:
		switch op.NN {
		case 0x07:
			return LDVDT
		case 0x0a:
			return LDK
		case 0x15:
			return LDDT
		case 0x18:
			return LDST
		case 0x1e:
			return ADDI
		case 0x29:
			return LDF
		case 0x33:
			return LDB
		case 0x55:
			return STR
		case 0x65:
			return LDR
		}
	}

	return Unrecognised
}
