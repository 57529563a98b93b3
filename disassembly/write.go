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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool

	// mark executed entries with an asterisk
	Executed bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for i := range dsm.Entries {
		if err := WriteEntry(output, attr, &dsm.Entries[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single entry to io.Writer.
func WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	if attr.Executed {
		if e.Level == EntryLevelExecuted {
			s.WriteString("* ")
		} else {
			s.WriteString("  ")
		}
	}

	s.WriteString(fmt.Sprintf("$%04x ", e.Address))

	if attr.ByteCode {
		s.WriteString(e.Bytecode)
		s.WriteString("  ")
	}

	if e.Operand == "" {
		s.WriteString(e.Operator)
	} else {
		s.WriteString(fmt.Sprintf("%-4s %s", e.Operator, e.Operand))
	}
	s.WriteString("\n")

	_, err := io.WriteString(output, s.String())
	return err
}
