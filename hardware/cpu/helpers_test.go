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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timers"
)

// mockMem is a simple implementation of the cpu.Memory interface. addresses
// wrap in the same way as the real memory implementation
type mockMem struct {
	internal [memory.Size]uint8
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address&memory.AddressMask]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address&memory.AddressMask] = data
}

// put instruction words into memory starting at origin. returns the address
// following the last instruction
func (mem *mockMem) putInstructions(origin uint16, words ...uint16) uint16 {
	for _, w := range words {
		mem.Write(origin, uint8(w>>8))
		mem.Write(origin+1, uint8(w))
		origin += 2
	}
	return origin
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.Read(address); d != value {
		t.Errorf("memory assertion failed (%v  - wanted %v at address %04x", d, value, address)
	}
}

// the instruction count of the CPU is used as the clock for the random
// number generator
type clock struct {
	mc *cpu.CPU
}

func (c *clock) Count() uint64 {
	if c.mc == nil {
		return 0
	}
	return c.mc.Count()
}

// harness bundles the CPU with the parts of the machine it has access to
type harness struct {
	mc  *cpu.CPU
	mem *mockMem
	fb  *framebuffer.Framebuffer
	tmr *timers.Timers
	kp  *keypad.Keypad
	ins *instance.Instance
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	clk := &clock{}
	ins, err := instance.NewInstance(clk, nil)
	if err != nil {
		t.Fatalf("error creating instance: %v", err)
	}
	ins.Label = instance.Testing
	ins.Normalise()

	h := &harness{
		mem: &mockMem{},
		fb:  framebuffer.NewFramebuffer(),
		tmr: timers.NewTimers(),
		kp:  keypad.NewKeypad(),
		ins: ins,
	}
	h.mc = cpu.NewCPU(ins, h.mem, h.fb, h.tmr, h.kp)
	clk.mc = h.mc

	return h
}

// load instructions at the entry point and reset the CPU
func (h *harness) load(words ...uint16) {
	h.mc.Reset()
	h.mem.putInstructions(memory.EntryOffset, words...)
}

// execute a single instruction. the test fails immediately on error
func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	res, err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	return res
}
