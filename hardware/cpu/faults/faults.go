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

// Package faults records the conditions that halt the execution of a
// program.
//
// A Fault is returned as an error by the CPU. Every fault is also recorded in
// the Faults log so that the debugger can list them after the event.
package faults

import (
	"fmt"
	"strings"
)

// Category classifies the fault.
type Category string

// List of valid fault categories.
const (
	StackOverflow      Category = "stack overflow"
	StackUnderflow     Category = "stack underflow"
	UnrecognisedOpcode Category = "unrecognised opcode"
)

// Fault is an execution error. It records the address and instruction word
// of the faulting instruction.
type Fault struct {
	Category Category
	Address  uint16
	Opcode   uint16
}

// Error implements the go language error interface.
func (f Fault) Error() string {
	return fmt.Sprintf("%s: %04x at %03x", f.Category, f.Opcode, f.Address)
}

// Entry is a single record in the fault log.
type Entry struct {
	Fault Fault

	// the number of times the fault has occurred at the same address with
	// the same opcode
	Count int
}

func (e Entry) String() string {
	if e.Count > 1 {
		return fmt.Sprintf("%s (x%d)", e.Fault, e.Count)
	}
	return e.Fault.Error()
}

// Faults is a log of the faults that have occurred.
type Faults struct {
	entries map[string]*Entry
	order   []string
}

// NewFaults is the preferred method of initialisation for the Faults type.
func NewFaults() Faults {
	return Faults{
		entries: make(map[string]*Entry),
	}
}

// Clear removes all entries from the log.
func (flt *Faults) Clear() {
	flt.entries = make(map[string]*Entry)
	flt.order = flt.order[:0]
}

// Add a fault to the log.
func (flt *Faults) Add(f Fault) {
	key := f.Error()
	if e, ok := flt.entries[key]; ok {
		e.Count++
		return
	}
	flt.entries[key] = &Entry{Fault: f, Count: 1}
	flt.order = append(flt.order, key)
}

// Len returns the number of distinct faults in the log.
func (flt Faults) Len() int {
	return len(flt.order)
}

// Entries returns a copy of the log entries in the order they were first
// added.
func (flt Faults) Entries() []Entry {
	l := make([]Entry, 0, len(flt.order))
	for _, k := range flt.order {
		l = append(l, *flt.entries[k])
	}
	return l
}

func (flt Faults) String() string {
	s := strings.Builder{}
	for _, e := range flt.Entries() {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return s.String()
}
