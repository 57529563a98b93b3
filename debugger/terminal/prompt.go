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

package terminal

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/govern"
)

// Prompt specifies the prompt text and the run state of the VM.
type Prompt struct {
	// the content. usually the disassembly of the next instruction
	Content string

	State govern.State
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	if p.State != govern.Paused {
		s.WriteString(fmt.Sprintf(" (%s)", p.State))
	}
	s.WriteString(" ] >> ")
	return s.String()
}
