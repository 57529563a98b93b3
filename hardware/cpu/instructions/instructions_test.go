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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestFetch(t *testing.T) {
	test.ExpectEquality(t, instructions.Fetch(0xd1, 0x25), 0xd125)
	test.ExpectEquality(t, instructions.Fetch(0x00, 0xe0), 0x00e0)
}

func TestDecode(t *testing.T) {
	op := instructions.Decode(0xd125)
	test.ExpectEquality(t, op.Word, 0xd125)
	test.ExpectEquality(t, op.Family, 0xd)
	test.ExpectEquality(t, op.X, 0x1)
	test.ExpectEquality(t, op.Y, 0x2)
	test.ExpectEquality(t, op.N, 0x5)
	test.ExpectEquality(t, op.NN, 0x25)
	test.ExpectEquality(t, op.NNN, 0x125)
	test.ExpectEquality(t, op.String(), "d125")
}

func TestOperations(t *testing.T) {
	var tests = []struct {
		word uint16
		op   instructions.Operation
	}{
		{0x0123, instructions.SYS},
		{0x00e0, instructions.CLS},
		{0x00ee, instructions.RET},
		{0x1234, instructions.JP},
		{0x2345, instructions.CALL},
		{0x3a12, instructions.SE},
		{0x4a12, instructions.SNE},
		{0x5ab0, instructions.SEV},
		{0x6a12, instructions.LD},
		{0x7a12, instructions.ADD},
		{0x8ab0, instructions.LDV},
		{0x8ab1, instructions.OR},
		{0x8ab2, instructions.AND},
		{0x8ab3, instructions.XOR},
		{0x8ab4, instructions.ADDV},
		{0x8ab5, instructions.SUB},
		{0x8ab6, instructions.SHR},
		{0x8ab7, instructions.SUBN},
		{0x8abe, instructions.SHL},
		{0x9ab0, instructions.SNEV},
		{0xa123, instructions.LDI},
		{0xb123, instructions.JPV0},
		{0xca12, instructions.RND},
		{0xdab5, instructions.DRW},
		{0xea9e, instructions.SKP},
		{0xeaa1, instructions.SKNP},
		{0xfa07, instructions.LDVDT},
		{0xfa0a, instructions.LDK},
		{0xfa15, instructions.LDDT},
		{0xfa18, instructions.LDST},
		{0xfa1e, instructions.ADDI},
		{0xfa29, instructions.LDF},
		{0xfa33, instructions.LDB},
		{0xfa55, instructions.STR},
		{0xfa65, instructions.LDR},

		// words that do not match any definition
		{0x5ab1, instructions.Unrecognised},
		{0x8ab8, instructions.Unrecognised},
		{0x8abf, instructions.Unrecognised},
		{0x9ab1, instructions.Unrecognised},
		{0xea00, instructions.Unrecognised},
		{0xeaff, instructions.Unrecognised},
		{0xfa00, instructions.Unrecognised},
		{0xffff, instructions.Unrecognised},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, instructions.Decode(tt.word).Operation(), tt.op, tt.word)
	}
}

// every operation must have a definition and the definition must match every
// word that decodes to that operation
func TestDefinitions(t *testing.T) {
	test.DemandEquality(t, len(instructions.Definitions), int(instructions.NumOperations)-1)

	for i, defn := range instructions.Definitions {
		test.ExpectEquality(t, defn.Operation, instructions.Operation(i+1))
		d, ok := instructions.Lookup(defn.Operation)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, d.Pattern, defn.Pattern)
	}

	_, ok := instructions.Lookup(instructions.Unrecognised)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, instructions.Unrecognised.String(), "unrecognised")
	test.ExpectEquality(t, instructions.ADDV.String(), "8XY4")

	for w := 0; w <= 0xffff; w++ {
		op := instructions.Decode(uint16(w)).Operation()
		if op == instructions.Unrecognised {
			continue
		}
		defn, ok := instructions.Lookup(op)
		if !test.ExpectSuccess(t, ok, w) {
			return
		}
		if !test.ExpectSuccess(t, defn.Matches(uint16(w)), w) {
			return
		}
	}
}
