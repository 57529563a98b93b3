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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Memory layout.
const (
	Size        = 4096
	FontOffset  = 0x000
	EntryOffset = 0x200

	// the mask applied to addresses by Read() and Write()
	AddressMask = Size - 1
)

// MaxProgramSize is the largest program that can be loaded into memory.
const MaxProgramSize = Size - EntryOffset

// Sentinel error patterns.
const (
	ROMTooLarge  = "memory: rom too large (%d bytes, max %d bytes)"
	OutOfRange   = "memory: address out of range (%#04x)"
	EmptyProgram = "memory: empty program"
)

// Memory is the entire address space of the virtual machine.
type Memory struct {
	RAM [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font is loaded as part of the initialisation.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	return fmt.Sprintf("%d bytes", len(mem.RAM))
}

// Reset clears memory and loads the font.
func (mem *Memory) Reset() {
	for i := range mem.RAM {
		mem.RAM[i] = 0
	}
	copy(mem.RAM[FontOffset:], font[:])
}

// LoadProgram copies the program data into memory at EntryOffset. The
// contents of memory are not changed if the program does not fit.
func (mem *Memory) LoadProgram(data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf(EmptyProgram)
	}
	if len(data) > MaxProgramSize {
		return curated.Errorf(ROMTooLarge, len(data), MaxProgramSize)
	}
	copy(mem.RAM[EntryOffset:], data)
	return nil
}

// Read implements the CPU's view of memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.RAM[address&AddressMask]
}

// Write implements the CPU's view of memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.RAM[address&AddressMask] = data
}

// Peek returns the value at address without wrapping the address.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	if address >= Size {
		return 0, curated.Errorf(OutOfRange, address)
	}
	return mem.RAM[address], nil
}

// Poke sets the value at address without wrapping the address.
func (mem *Memory) Poke(address uint16, data uint8) error {
	if address >= Size {
		return curated.Errorf(OutOfRange, address)
	}
	mem.RAM[address] = data
	return nil
}

// Dump returns a hex dump of the memory range, sixteen bytes per line. The
// range is clipped to the top of memory.
func (mem *Memory) Dump(address uint16, length int) string {
	s := strings.Builder{}
	for i := 0; i < length; i++ {
		a := int(address) + i
		if a >= Size {
			break
		}
		if i%16 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%03x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", mem.RAM[a]))
	}
	return s.String()
}
