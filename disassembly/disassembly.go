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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Sentinal errors.
const (
	NoSuchAddress = "disassembly: no such address (%#04x)"
)

// Memory is the part of the memory system used by the disassembler.
type Memory interface {
	Read(address uint16) uint8
}

// Disassembly is a linear disassembly of a range of memory.
type Disassembly struct {
	// the address of the first entry
	Origin uint16

	// entries in address order. every entry is two bytes long except for a
	// trailing data entry
	Entries []Entry
}

// FromROM disassembles ROM data as it would be placed in memory. The origin
// of the disassembly is the program entry point.
func FromROM(data []byte) (*Disassembly, error) {
	if len(data) == 0 {
		return nil, curated.Errorf("disassembly: %v", curated.Errorf(memory.EmptyProgram))
	}
	if len(data) > memory.MaxProgramSize {
		return nil, curated.Errorf("disassembly: %v", curated.Errorf(memory.ROMTooLarge, len(data), memory.MaxProgramSize))
	}

	dsm := &Disassembly{
		Origin:  memory.EntryOffset,
		Entries: make([]Entry, 0, (len(data)+1)/2),
	}

	address := uint16(memory.EntryOffset)
	for i := 0; i < len(data); i += 2 {
		if i+1 >= len(data) {
			dsm.Entries = append(dsm.Entries, newDataEntry(address, data[i]))
			break
		}
		dsm.Entries = append(dsm.Entries, newEntry(address, instructions.Fetch(data[i], data[i+1])))
		address += 2
	}

	return dsm, nil
}

// FromMemory disassembles count instructions starting at the origin. Addresses
// wrap around the end of memory.
func FromMemory(mem Memory, origin uint16, count int) *Disassembly {
	origin &= memory.AddressMask

	dsm := &Disassembly{
		Origin:  origin,
		Entries: make([]Entry, 0, count),
	}

	address := origin
	for i := 0; i < count; i++ {
		word := instructions.Fetch(mem.Read(address), mem.Read((address+1)&memory.AddressMask))
		dsm.Entries = append(dsm.Entries, newEntry(address, word))
		address = (address + 2) & memory.AddressMask
	}

	return dsm
}

// Get returns the entry at the address. Only addresses that start an entry
// are found.
func (dsm *Disassembly) Get(address uint16) (*Entry, error) {
	if address < dsm.Origin || (address-dsm.Origin)%2 != 0 {
		return nil, curated.Errorf(NoSuchAddress, address)
	}
	i := int(address-dsm.Origin) / 2
	if i >= len(dsm.Entries) {
		return nil, curated.Errorf(NoSuchAddress, address)
	}
	return &dsm.Entries[i], nil
}

// Executed marks the entry for the executed instruction. Results for
// addresses outside of the disassembly are ignored. If the instruction word
// has changed since the disassembly was made (self-modifying code) the entry
// is decoded again.
func (dsm *Disassembly) Executed(result execution.Result) {
	e, err := dsm.Get(result.Address)
	if err != nil {
		return
	}
	if e.Opcode.Word != result.Opcode.Word {
		*e = newEntry(result.Address, result.Opcode.Word)
	}
	e.Level = EntryLevelExecuted
}
