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
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepOperator GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string. Matching
// entries are written to the output. Returns the number of matches.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) (int, error) {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	matches := 0

	for i := range dsm.Entries {
		e := &dsm.Entries[i]

		line := &strings.Builder{}
		_ = WriteEntry(line, WriteAttr{}, e)

		var s string
		switch scope {
		case GrepOperator:
			s = e.Operator
		case GrepOperand:
			s = e.Operand
		case GrepAll:
			s = line.String()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			matches++
			if _, err := io.WriteString(output, line.String()); err != nil {
				return matches, err
			}
		}
	}

	return matches, nil
}
