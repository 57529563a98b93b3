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
	"errors"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/faults"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// Cycle runs one scheduling cycle of the VM.
//
// The input source is polled and the keypad state and the run state are
// updated. If the VM is running then a batch of instructions is executed and
// the timers are ticked once. The tone state is sent to every audio mixer
// and the framebuffer is presented to every display, according to the
// present policy.
//
// Execution faults are not returned as errors. Errors returned by Cycle() are
// errors from the input source, the displays or the audio mixers.
func (vm *VM) Cycle() error {
	if vm.State == govern.Stopped {
		return nil
	}

	if vm.input != nil {
		snp, err := vm.input.PollInput()
		if err != nil {
			return curated.Errorf("vm: %v", err)
		}
		vm.Keypad.Apply(snp.Keys)
		vm.State = vm.State.Apply(snp.Control)
	}

	if vm.State == govern.Stopped {
		return vm.setTone(false)
	}

	vm.cycles++

	var redraw bool

	if vm.State == govern.Running {
		redraw = vm.runBatch()

		if vm.State == govern.Stopped {
			// a fault has halted the VM. the framebuffer is presented one
			// final time if a redraw was requested before the fault
			if err := vm.setTone(false); err != nil {
				return err
			}
			if redraw || vm.presentAlways {
				return vm.present()
			}
			return nil
		}

		// a breakpoint can pause the VM part way through a batch. the timers
		// are only ticked for a full cycle
		if vm.State == govern.Running {
			vm.Timers.Tick()
		}
	}

	if err := vm.setTone(vm.State == govern.Running && vm.Timers.ToneActive()); err != nil {
		return err
	}

	if redraw || vm.presentAlways {
		return vm.present()
	}

	return nil
}

// runBatch executes up to InstructionsPerCycle instructions. Returns true if
// any instruction requested a redraw.
func (vm *VM) runBatch() bool {
	// a pending key wait consumes the entire batch unless a key has been
	// pressed since the wait began
	if vm.CPU.Waiting {
		k, ok := vm.Keypad.NewlyPressed()
		if !ok {
			return false
		}
		vm.CPU.ResolveWait(k)
	}

	ipc := vm.Instance.Prefs.InstructionsPerCycle.Get().(int)
	redraw := false

	for i := 0; i < ipc; i++ {
		res, err := vm.CPU.ExecuteInstruction()
		if err != nil {
			if vm.handleFault(err) {
				return redraw
			}
			continue
		}

		if res.Effects.Has(execution.RedrawRequested) {
			redraw = true
		}

		if res.Effects.Has(execution.AwaitingKeypress) {
			break
		}

		if vm.InstructionHook != nil && vm.InstructionHook(res) {
			vm.State = govern.Paused
			break
		}
	}

	return redraw
}

// handleFault applies the fault policy. Returns true if the VM has stopped.
func (vm *VM) handleFault(err error) bool {
	var flt faults.Fault
	if !errors.As(err, &flt) {
		// the CPU only returns faults. anything else is unexpected and is
		// treated as a fault at the current address
		flt = faults.Fault{Category: faults.Category(err.Error()), Address: vm.CPU.PC}
	}

	if vm.Instance.Prefs.HaltOnFault.Get().(bool) {
		vm.State = govern.Stopped
		vm.Halted = &flt
		logger.Logf(vm.Instance, "vm", "halted: %v", flt)
		return true
	}

	vm.CPU.PC = (flt.Address + 2) & memory.AddressMask
	logger.Logf(vm.Instance, "vm", "skipped: %v", flt)

	return false
}

func (vm *VM) setTone(active bool) error {
	for _, m := range vm.mixers {
		if err := m.SetTone(active); err != nil {
			return curated.Errorf("vm: %v", err)
		}
	}
	return nil
}

func (vm *VM) present() error {
	for _, d := range vm.displays {
		if err := d.Present(vm.Framebuffer); err != nil {
			return curated.Errorf("vm: %v", err)
		}
	}
	return nil
}

// Step executes a single instruction, regardless of the run state. The timers
// are not ticked and the displays are not presented.
//
// If the CPU is waiting for a keypress then the wait is resolved if a key has
// been pressed since the wait began. Otherwise the result has the
// AwaitingKeypress effect and nothing is executed.
//
// Execution faults are returned as errors and the fault policy is not
// applied.
func (vm *VM) Step() (execution.Result, error) {
	if vm.CPU.Waiting {
		if k, ok := vm.Keypad.NewlyPressed(); ok {
			vm.CPU.ResolveWait(k)
		}
	}
	return vm.CPU.ExecuteInstruction()
}

// Run sets the emulation running until the run state is Stopped. The cycles
// are paced by the limiter, if one has been set.
//
// The continueCheck function is called after every cycle and can be nil. If
// it returns the Stopped state then the VM is stopped.
//
// If the VM stopped because of a fault then the fault is returned, wrapped in
// a curated error. Audio mixing is ended before the function returns.
func (vm *VM) Run(continueCheck func() (govern.State, error)) error {
	defer vm.endMixing()

	for vm.State != govern.Stopped {
		if vm.limiter != nil {
			vm.limiter.Wait()
		}

		if err := vm.Cycle(); err != nil {
			return err
		}

		if continueCheck != nil {
			state, err := continueCheck()
			if err != nil {
				return err
			}
			if state == govern.Stopped {
				vm.State = govern.Stopped
			}
		}
	}

	if vm.Halted != nil {
		return curated.Errorf("vm: %v", *vm.Halted)
	}

	return nil
}

// RunForCycles is a convenience function that runs the VM for the specified
// number of cycles, or until the VM stops.
func (vm *VM) RunForCycles(numCycles uint64) error {
	if numCycles == 0 {
		return nil
	}
	target := vm.cycles + numCycles
	return vm.Run(func() (govern.State, error) {
		if vm.cycles >= target {
			return govern.Stopped, nil
		}
		return vm.State, nil
	})
}

func (vm *VM) endMixing() {
	for _, m := range vm.mixers {
		if err := m.EndMixing(); err != nil {
			logger.Log(vm.Instance, "vm", err)
		}
	}
}
