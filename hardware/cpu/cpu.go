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

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/faults"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are wrapped by the implementation as required.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// CPU implements the instruction set of the virtual machine. The CPU has
// direct access to the framebuffer, timers and keypad.
type CPU struct {
	instance *instance.Instance

	Registers
	Stack Stack

	mem Memory
	fb  *framebuffer.Framebuffer
	tmr *timers.Timers
	kp  *keypad.Keypad

	// the CPU is waiting for a keypress to be stored in WaitRegister. the
	// program counter points to the waiting instruction
	Waiting      bool
	WaitRegister uint8

	// the result of the most recently completed instruction
	LastResult execution.Result

	// every fault raised since the last reset
	Faults faults.Faults

	// the number of instructions executed since the last reset
	count uint64
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(instance *instance.Instance, mem Memory, fb *framebuffer.Framebuffer, tmr *timers.Timers, kp *keypad.Keypad) *CPU {
	mc := &CPU{
		instance: instance,
		mem:      mem,
		fb:       fb,
		tmr:      tmr,
		kp:       kp,
		Faults:   faults.NewFaults(),
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s SP=%d", mc.Registers, mc.Stack.Depth())
}

// Reset reinitialises the registers and the stack. The program counter is
// set to the program entry point.
func (mc *CPU) Reset() {
	mc.Registers = Registers{PC: memory.EntryOffset}
	mc.Stack.Reset()
	mc.Waiting = false
	mc.WaitRegister = 0
	mc.LastResult = execution.Result{}
	mc.Faults.Clear()
	mc.count = 0
}

// Count returns the number of instructions executed since the last reset.
func (mc *CPU) Count() uint64 {
	return mc.count
}

// ResolveWait completes a wait-for-key instruction. The key is stored in the
// waiting register and the program counter is advanced past the instruction.
// Does nothing if the CPU is not waiting.
func (mc *CPU) ResolveWait(key uint8) {
	if !mc.Waiting {
		return
	}
	mc.V[mc.WaitRegister] = key & 0x0f
	mc.Waiting = false
	mc.PC = (mc.PC + 2) & memory.AddressMask
	mc.kp.EndWait()
}
