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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/faults"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
)

// VM is the main container for the emulated components of the virtual
// machine.
type VM struct {
	Instance *instance.Instance

	CPU         *cpu.CPU
	Mem         *memory.Memory
	Framebuffer *framebuffer.Framebuffer
	Timers      *timers.Timers
	Keypad      *keypad.Keypad

	// the current run state. begins as Stopped until a program is attached
	State govern.State

	// the fault that caused the VM to stop. nil if the VM has not stopped
	// because of a fault
	Halted *faults.Fault

	// the program currently attached
	ROM romloader.Loader

	// InstructionHook is called after every instruction executed by Cycle().
	// If the function returns true the remainder of the batch is abandoned and
	// the VM is paused
	InstructionHook func(res execution.Result) bool

	input    Input
	displays []Display
	mixers   []AudioMixer
	limiter  Limiter

	// the present policy is decided when the VM is created and does not
	// change for the life of the VM
	presentAlways bool

	// the number of cycles since the program was attached
	cycles uint64
}

// NewVM creates a new VM and everything associated with the hardware. It is
// used for all aspects of emulation: debugging sessions, headless running and
// regular play.
//
// The prefs argument can be nil, in which case a new preferences instance is
// created.
func NewVM(prefs *preferences.Preferences) (*VM, error) {
	vm := &VM{
		State: govern.Stopped,
	}

	var err error

	vm.Instance, err = instance.NewInstance(vm, prefs)
	if err != nil {
		return nil, curated.Errorf("vm: %v", err)
	}

	vm.Mem = memory.NewMemory()
	vm.Framebuffer = framebuffer.NewFramebuffer()
	vm.Timers = timers.NewTimers()
	vm.Keypad = keypad.NewKeypad()
	vm.CPU = cpu.NewCPU(vm.Instance, vm.Mem, vm.Framebuffer, vm.Timers, vm.Keypad)

	vm.presentAlways = vm.Instance.Prefs.PresentAlways.Get().(bool)

	return vm, nil
}

func (vm *VM) String() string {
	return fmt.Sprintf("%s %s [%s]", vm.CPU, vm.Timers, vm.State)
}

// Count implements the random.Clock interface.
func (vm *VM) Count() uint64 {
	if vm.CPU == nil {
		return 0
	}
	return vm.CPU.Count()
}

// Cycles returns the number of cycles since the program was attached.
func (vm *VM) Cycles() uint64 {
	return vm.cycles
}

// PresentAlways returns true if the framebuffer is presented on every cycle
// rather than only when a redraw has been requested.
func (vm *VM) PresentAlways() bool {
	return vm.presentAlways
}

// AttachROM loads the program data and attaches it to the VM. The VM is reset
// and the run state is set to Running.
//
// The VM is not changed if the program cannot be loaded or if it does not fit
// in memory.
func (vm *VM) AttachROM(cl romloader.Loader) error {
	if err := cl.Load(); err != nil {
		return curated.Errorf("vm: %v", err)
	}

	mem := memory.NewMemory()
	if err := mem.LoadProgram(cl.Data); err != nil {
		return curated.Errorf("vm: %v", err)
	}

	vm.ROM = cl
	vm.reset()
	*vm.Mem = *mem

	logger.Logf(vm.Instance, "vm", "attached %s (%d bytes, sha1 %s)", cl.ShortName(), len(cl.Data), cl.Hash)

	return nil
}

// Reset the VM to the state it was in immediately after the program was
// attached. The program is reloaded into memory.
func (vm *VM) Reset() error {
	if !vm.ROM.HasLoaded() {
		return curated.Errorf("vm: no program attached")
	}

	vm.reset()
	vm.Mem.Reset()
	return vm.Mem.LoadProgram(vm.ROM.Data)
}

func (vm *VM) reset() {
	vm.CPU.Reset()
	vm.Framebuffer.Clear()
	vm.Timers.Reset()
	vm.Keypad.Reset()
	vm.State = govern.Running
	vm.Halted = nil
	vm.cycles = 0
}

// AttachInput sets the input source that is polled at the start of every
// cycle. A nil input source means that the keypad and the run state are only
// changed directly.
func (vm *VM) AttachInput(input Input) {
	vm.input = input
}

// AddDisplay adds a display to the list of displays that will be presented
// with the framebuffer.
func (vm *VM) AddDisplay(d Display) {
	vm.displays = append(vm.displays, d)
}

// AddAudioMixer adds a mixer to the list of mixers that will receive the tone
// state.
func (vm *VM) AddAudioMixer(m AudioMixer) {
	vm.mixers = append(vm.mixers, m)
}

// SetLimiter sets the limiter used to pace the Run() function. A nil limiter
// means that Run() runs as quickly as possible.
func (vm *VM) SetLimiter(lim Limiter) {
	vm.limiter = lim
}
