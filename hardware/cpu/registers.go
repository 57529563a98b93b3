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

package cpu

import (
	"fmt"
	"strings"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// VF is the index of the flags register. The flags register is written to by
// the arithmetic and draw instructions.
const VF = 0xf

// Registers is the register file of the CPU.
type Registers struct {
	V  [NumRegisters]uint8
	I  uint16
	PC uint16
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%03x I=%03x", r.PC, r.I))
	for i, v := range r.V {
		s.WriteString(fmt.Sprintf(" V%X=%02x", i, v))
	}
	return s.String()
}
