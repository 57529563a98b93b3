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

package debugger

import (
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// default values for optional command arguments.
const (
	defaultDisasmCount = 10
	defaultMemCount    = 64
)

// processTokens runs the command described by the tokens.
func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	command, _ := tokens.Get()
	command = strings.ToUpper(command)

	if _, ok := usage[command]; !ok {
		return curated.Errorf("%s is not a debugging command (try HELP)", command)
	}

	switch command {
	case cmdHelp:
		keyword, ok := tokens.Get()
		if !ok {
			dbg.printLine(terminal.StyleHelp, helpList())
			return nil
		}
		keyword = strings.ToUpper(keyword)
		if _, ok := help[keyword]; !ok {
			return curated.Errorf("no help for %s", keyword)
		}
		dbg.printLine(terminal.StyleHelp, help[keyword])
		dbg.printLine(terminal.StyleHelp, "  Usage: %s", usage[keyword])

	case cmdQuit:
		dbg.running = false

	case cmdStep:
		n, err := count(tokens, 1)
		if err != nil {
			return err
		}
		return dbg.step(n)

	case cmdCycle:
		n, err := count(tokens, 1)
		if err != nil {
			return err
		}
		return dbg.cycle(n)

	case cmdRun:
		return dbg.run()

	case cmdReset:
		if err := dbg.vm.Reset(); err != nil {
			return err
		}
		dbg.input.releaseAll()
		dbg.disassemble()
		dbg.setState(govern.Paused)
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdBreak:
		address, ok, err := tokens.GetAddress()
		if err != nil {
			return err
		}
		if !ok {
			dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())
			return nil
		}
		if err := dbg.breakpoints.add(address); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at $%03x", address&memory.AddressMask)

	case cmdClear:
		address, ok, err := tokens.GetAddress()
		if err != nil {
			return err
		}
		if !ok {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		if err := dbg.breakpoints.drop(address); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint at $%03x cleared", address&memory.AddressMask)

	case cmdRegs:
		dbg.printLine(terminal.StyleFeedback, dbg.vm.CPU.String())
		if dbg.vm.CPU.Waiting {
			dbg.printLine(terminal.StyleFeedback, "waiting for key (V%X)", dbg.vm.CPU.WaitRegister)
		}

	case cmdStack:
		dbg.printLine(terminal.StyleFeedback, dbg.vm.CPU.Stack.String())

	case cmdTimers:
		dbg.printLine(terminal.StyleFeedback, dbg.vm.Timers.String())

	case cmdKeys:
		dbg.printLine(terminal.StyleFeedback, dbg.vm.Keypad.String())

	case cmdMem:
		address, ok, err := tokens.GetAddress()
		if err != nil {
			return err
		}
		if !ok {
			return curated.Errorf("%s requires an address", cmdMem)
		}
		n, err := count(tokens, defaultMemCount)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, dbg.vm.Mem.Dump(address&memory.AddressMask, n))

	case cmdDisasm:
		address, ok, err := tokens.GetAddress()
		if err != nil {
			return err
		}
		if !ok {
			address = dbg.vm.CPU.PC
		}
		n, err := count(tokens, defaultDisasmCount)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, dbg.disasm(address, n))

	case cmdGrep:
		search := tokens.Remainder()
		tokens.End()
		if search == "" {
			return curated.Errorf("%s requires search text", cmdGrep)
		}
		s := &strings.Builder{}
		matches, err := dbg.dsm.Grep(s, disassembly.GrepAll, search, false)
		if err != nil {
			return err
		}
		if matches == 0 {
			dbg.printLine(terminal.StyleFeedback, "%s not found in disassembly", search)
			return nil
		}
		dbg.printLine(terminal.StyleFeedback, s.String())

	case cmdPress:
		key, err := keypadKey(tokens)
		if err != nil {
			return err
		}
		dbg.input.press(key)
		dbg.vm.Keypad.Press(key)

	case cmdRelease:
		s, ok := tokens.Peek()
		if ok && strings.ToUpper(s) == "ALL" {
			dbg.input.releaseAll()
			for k := uint8(0); k <= 0x0f; k++ {
				dbg.vm.Keypad.Release(k)
			}
			return nil
		}
		key, err := keypadKey(tokens)
		if err != nil {
			return err
		}
		dbg.input.release(key)
		dbg.vm.Keypad.Release(key)

	case cmdFaults:
		if dbg.vm.Halted != nil {
			dbg.printLine(terminal.StyleFeedback, "halted: %v", *dbg.vm.Halted)
		}
		if dbg.vm.CPU.Faults.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "no faults")
			return nil
		}
		dbg.printLine(terminal.StyleFeedback, dbg.vm.CPU.Faults.String())

	case cmdMemviz:
		filename, ok := tokens.Get()
		if !ok {
			return curated.Errorf("%s requires a filename", cmdMemviz)
		}
		f, err := os.Create(filename)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, &dbg.vm.CPU.Registers, &dbg.vm.CPU.Stack, dbg.vm.Timers, dbg.vm.Keypad)
		dbg.printLine(terminal.StyleFeedback, "memviz written to %s", filename)

	case cmdPrefs:
		if err := dbg.processPrefs(tokens); err != nil {
			return err
		}
	}

	if !tokens.IsEnd() {
		return curated.Errorf("unexpected arguments for %s: %s", command, tokens.Remainder())
	}

	return nil
}

// count returns the next token as a positive count. the default value is
// returned if there are no more tokens.
func count(tokens *commandline.Tokens, def int) (int, error) {
	n, ok, err := tokens.GetInt(32)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	if n <= 0 {
		return 0, curated.Errorf("count must be greater than zero")
	}
	return n, nil
}

// keypadKey returns the next token as a keypad key.
func keypadKey(tokens *commandline.Tokens) (uint8, error) {
	s, ok := tokens.Get()
	if !ok {
		return 0, curated.Errorf("keypad key required (0 to F)")
	}
	k, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 8)
	if err != nil || k > 0x0f {
		return 0, curated.Errorf("not a keypad key: %s", s)
	}
	return uint8(k), nil
}

// step executes n instructions. stepping stops early if the CPU begins
// waiting for a keypress.
func (dbg *Debugger) step(n int) error {
	for i := 0; i < n; i++ {
		before := dbg.vm.CPU.Count()

		res, err := dbg.vm.Step()
		if err != nil {
			return curated.Errorf("step: %v", err)
		}

		// nothing is executed while the CPU is waiting for a key
		if dbg.vm.CPU.Count() == before {
			dbg.printLine(terminal.StyleFeedback, "waiting for key (V%X)", res.WaitRegister)
			return nil
		}

		dbg.dsm.Executed(res)
		dbg.printLine(terminal.StyleCPUStep, dbg.entryAt(res.Address).String())

		if res.Effects.Has(execution.AwaitingKeypress) {
			dbg.printLine(terminal.StyleFeedback, "waiting for key (V%X)", res.WaitRegister)
			return nil
		}
	}
	return nil
}

// cycle runs n scheduling cycles of the VM without pacing.
func (dbg *Debugger) cycle(n int) error {
	if dbg.vm.State == govern.Stopped {
		return curated.Errorf("cycle: emulation has stopped (try RESET)")
	}

	dbg.vm.State = govern.Running

	var i int
	for i = 0; i < n && dbg.vm.State == govern.Running; i++ {
		if err := dbg.vm.Cycle(); err != nil {
			return err
		}
	}

	return dbg.halted(i)
}

// run the VM until a breakpoint is reached, the VM is stopped or an interrupt
// signal is received. cycles are paced by the limiter.
func (dbg *Debugger) run() error {
	if dbg.vm.State == govern.Stopped {
		return curated.Errorf("run: emulation has stopped (try RESET)")
	}

	// drain stale interrupts
	select {
	case <-dbg.interrupt:
	default:
	}

	dbg.setState(govern.Running)

	var i int
	for dbg.vm.State == govern.Running {
		select {
		case <-dbg.interrupt:
			dbg.printLine(terminal.StyleFeedback, "interrupted")
			dbg.vm.State = govern.Paused
			continue
		default:
		}

		if dbg.limiter != nil {
			dbg.limiter.Wait()
		}

		if err := dbg.vm.Cycle(); err != nil {
			return err
		}
		i++
	}

	return dbg.halted(i)
}

// halted reports the reason the VM is no longer running. the VM is set to
// Paused unless it has stopped.
func (dbg *Debugger) halted(cycles int) error {
	defer dbg.updateGUI()

	// the tone is silenced while the VM is not running
	if dbg.gui != nil {
		if err := dbg.gui.SetTone(false); err != nil {
			return err
		}
	}

	switch dbg.vm.State {
	case govern.Stopped:
		if dbg.vm.Halted != nil {
			return curated.Errorf("halted: %v", *dbg.vm.Halted)
		}
		dbg.printLine(terminal.StyleFeedback, "emulation stopped after %d cycles", cycles)
		dbg.running = false
		return nil
	case govern.Running:
		dbg.vm.State = govern.Paused
	}

	if dbg.breakpoints.check(dbg.vm.CPU.PC) {
		dbg.printLine(terminal.StyleFeedback, "break at $%03x after %d cycles", dbg.vm.CPU.PC, cycles)
	} else {
		dbg.printLine(terminal.StyleFeedback, "paused after %d cycles", cycles)
	}

	return nil
}

// disasm returns the disassembly of n instructions from the address.
func (dbg *Debugger) disasm(address uint16, n int) string {
	s := &strings.Builder{}
	attr := disassembly.WriteAttr{ByteCode: true, Executed: true}
	for i := 0; i < n; i++ {
		e := dbg.entryAt(address)
		_ = disassembly.WriteEntry(s, attr, e)
		address = (address + 2) & memory.AddressMask
	}
	return s.String()
}
