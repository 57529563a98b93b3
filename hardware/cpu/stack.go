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

// StackDepth is the maximum number of return addresses on the call stack.
const StackDepth = 16

// Stack is the call stack. Only the CALL and RET instructions use the stack.
type Stack struct {
	entries [StackDepth]uint16
	depth   int
}

func (s *Stack) String() string {
	if s.depth == 0 {
		return "empty"
	}
	e := make([]string, 0, s.depth)
	for _, a := range s.Entries() {
		e = append(e, fmt.Sprintf("%03x", a))
	}
	return strings.Join(e, " ")
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.entries = [StackDepth]uint16{}
	s.depth = 0
}

// Push an address onto the stack. Returns false if the stack is full, in
// which case the stack is unchanged.
func (s *Stack) Push(address uint16) bool {
	if s.depth >= StackDepth {
		return false
	}
	s.entries[s.depth] = address
	s.depth++
	return true
}

// Pop an address from the stack. Returns false if the stack is empty.
func (s *Stack) Pop() (uint16, bool) {
	if s.depth == 0 {
		return 0, false
	}
	s.depth--
	return s.entries[s.depth], true
}

// Depth returns the number of addresses on the stack.
func (s *Stack) Depth() int {
	return s.depth
}

// Entries returns a copy of the addresses on the stack, oldest first.
func (s *Stack) Entries() []uint16 {
	e := make([]uint16, s.depth)
	copy(e, s.entries[:s.depth])
	return e
}
