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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestFormat(t *testing.T) {
	var tests = []struct {
		word     uint16
		operator string
		operand  string
	}{
		{0x00e0, "CLS", ""},
		{0x00ee, "RET", ""},
		{0x0123, "SYS", "$123"},
		{0x1234, "JP", "$234"},
		{0x2345, "CALL", "$345"},
		{0x3a12, "SE", "VA, $12"},
		{0x5ab0, "SE", "VA, VB"},
		{0x6a0f, "LD", "VA, $0f"},
		{0x8ab4, "ADD", "VA, VB"},
		{0x8abe, "SHL", "VA, VB"},
		{0xa123, "LD", "I, $123"},
		{0xb123, "JP", "V0, $123"},
		{0xc1ff, "RND", "V1, $ff"},
		{0xd125, "DRW", "V1, V2, 5"},
		{0xe39e, "SKP", "V3"},
		{0xf307, "LD", "V3, DT"},
		{0xf30a, "LD", "V3, K"},
		{0xf315, "LD", "DT, V3"},
		{0xf318, "LD", "ST, V3"},
		{0xf31e, "ADD", "I, V3"},
		{0xf329, "LD", "F, V3"},
		{0xf333, "LD", "B, V3"},
		{0xf355, "LD", "[I], V3"},
		{0xf365, "LD", "V3, [I]"},
		{0xffff, "???", "$ffff"},
	}

	for _, tt := range tests {
		operator, operand := disassembly.Format(instructions.Decode(tt.word))
		test.ExpectEquality(t, operator, tt.operator, tt.word)
		test.ExpectEquality(t, operand, tt.operand, tt.word)
	}
}

func TestFromROM(t *testing.T) {
	dsm, err := disassembly.FromROM([]byte{0x00, 0xe0, 0x12, 0x00, 0xff})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Origin, memory.EntryOffset)
	test.DemandEquality(t, len(dsm.Entries), 3)

	test.ExpectEquality(t, dsm.Entries[0].Address, 0x200)
	test.ExpectEquality(t, dsm.Entries[0].Operation, instructions.CLS)
	test.ExpectEquality(t, dsm.Entries[1].Address, 0x202)
	test.ExpectEquality(t, dsm.Entries[1].String(), "$0202 JP   $200")

	// trailing byte
	test.ExpectEquality(t, dsm.Entries[2].Address, 0x204)
	test.ExpectEquality(t, dsm.Entries[2].Operator, "DB")
	test.ExpectEquality(t, dsm.Entries[2].Operand, "$ff")

	b := &strings.Builder{}
	test.ExpectSuccess(t, dsm.Write(b, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectEquality(t, b.String(), "$0200 00 e0  CLS\n$0202 12 00  JP   $200\n$0204 ff     DB   $ff\n")
}

func TestFromROMErrors(t *testing.T) {
	_, err := disassembly.FromROM([]byte{})
	test.ExpectSuccess(t, curated.Has(err, memory.EmptyProgram))

	_, err = disassembly.FromROM(make([]byte, memory.MaxProgramSize+1))
	test.ExpectSuccess(t, curated.Has(err, memory.ROMTooLarge))
}

func TestFromMemory(t *testing.T) {
	mem := memory.NewMemory()
	test.DemandSuccess(t, mem.LoadProgram([]byte{0x60, 0x01, 0x70, 0x01, 0x12, 0x02}))

	dsm := disassembly.FromMemory(mem, 0x200, 3)
	test.DemandEquality(t, len(dsm.Entries), 3)
	test.ExpectEquality(t, dsm.Entries[0].String(), "$0200 LD   V0, $01")
	test.ExpectEquality(t, dsm.Entries[1].String(), "$0202 ADD  V0, $01")
	test.ExpectEquality(t, dsm.Entries[2].String(), "$0204 JP   $202")

	// addresses wrap around the end of memory
	dsm = disassembly.FromMemory(mem, memory.Size-2, 2)
	test.ExpectEquality(t, dsm.Entries[0].Address, memory.Size-2)
	test.ExpectEquality(t, dsm.Entries[1].Address, 0x000)
}

func TestExecuted(t *testing.T) {
	dsm, err := disassembly.FromROM([]byte{0x60, 0x01, 0x12, 0x00})
	test.DemandSuccess(t, err)

	dsm.Executed(execution.Result{Address: 0x202, Opcode: instructions.Decode(0x1200)})
	test.ExpectEquality(t, dsm.Entries[0].Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, dsm.Entries[1].Level, disassembly.EntryLevelExecuted)

	// instruction word differs from the disassembly
	dsm.Executed(execution.Result{Address: 0x200, Opcode: instructions.Decode(0x00e0)})
	test.ExpectEquality(t, dsm.Entries[0].Operation, instructions.CLS)
	test.ExpectEquality(t, dsm.Entries[0].Level, disassembly.EntryLevelExecuted)

	// outside of the disassembly
	dsm.Executed(execution.Result{Address: 0x300})
	_, err = dsm.Get(0x300)
	test.ExpectFailure(t, err)
	_, err = dsm.Get(0x201)
	test.ExpectFailure(t, err)

	b := &strings.Builder{}
	test.ExpectSuccess(t, dsm.Write(b, disassembly.WriteAttr{Executed: true}))
	test.ExpectEquality(t, b.String(), "* $0200 CLS\n* $0202 JP   $200\n")
}

func TestGrep(t *testing.T) {
	dsm, err := disassembly.FromROM([]byte{0x60, 0x01, 0x70, 0x01, 0xa2, 0x00, 0x12, 0x02})
	test.DemandSuccess(t, err)

	b := &strings.Builder{}
	n, err := dsm.Grep(b, disassembly.GrepOperator, "ld", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)

	b.Reset()
	n, _ = dsm.Grep(b, disassembly.GrepOperand, "I,", true)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, b.String(), "$0204 LD   I, $200\n")

	n, _ = dsm.Grep(b, disassembly.GrepAll, "$0206", true)
	test.ExpectEquality(t, n, 1)
}
