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
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// Debugger is the basic debugging frontend for the emulation. In order to be
// kind to code that accesses the debugger from a different goroutine (ie. a
// GUI), we try not to reinitialise anything once it has been initialised.
type Debugger struct {
	vm   *hardware.VM
	term terminal.Terminal

	// the GUI is optional
	gui gui.GUI

	input *debugInput

	// disassembly of the program area of memory. instructions are marked as
	// they are executed
	dsm *disassembly.Disassembly

	breakpoints breakpoints

	// preferences that can be changed with the PREFS command
	prefs *preferences

	// the limiter paces the RUN command. can be nil
	limiter hardware.Limiter

	// interrupt signals end the RUN command
	interrupt chan os.Signal

	// the debugger continues to read commands while running is true
	running bool
}

// NewDebugger creates a new debugger for the VM. The VM must have a program
// attached.
//
// The input source is usually the event queue of the GUI and can be nil. The
// GUI can also be nil.
func NewDebugger(vm *hardware.VM, term terminal.Terminal, g gui.GUI, input hardware.Input, limiter hardware.Limiter) (*Debugger, error) {
	if !vm.ROM.HasLoaded() {
		return nil, curated.Errorf("debugger: no program attached")
	}

	dbg := &Debugger{
		vm:        vm,
		term:      term,
		gui:       g,
		input:     &debugInput{source: input},
		limiter:   limiter,
		interrupt: make(chan os.Signal, 1),
	}

	dbg.prefs = newPreferences(dbg)

	dbg.disassemble()
	vm.InstructionHook = dbg.instructionHook
	vm.AttachInput(dbg.input)

	if g != nil {
		vm.AddDisplay(g)
		vm.AddAudioMixer(g)
	}

	dbg.setState(govern.Paused)

	return dbg, nil
}

// disassemble the program area of memory.
func (dbg *Debugger) disassemble() {
	dbg.dsm = disassembly.FromMemory(dbg.vm.Mem, memory.EntryOffset, (len(dbg.vm.ROM.Data)+1)/2)
}

// instructionHook is called by the VM after every instruction during the CYCLE
// and RUN commands.
func (dbg *Debugger) instructionHook(res execution.Result) bool {
	dbg.dsm.Executed(res)
	return dbg.breakpoints.check(dbg.vm.CPU.PC)
}

// setState changes the run state of the VM and forwards it to the GUI.
func (dbg *Debugger) setState(state govern.State) {
	dbg.vm.State = state
	dbg.updateGUI()
}

func (dbg *Debugger) updateGUI() {
	if dbg.gui == nil {
		return
	}
	if err := dbg.gui.SetFeature(gui.ReqState, dbg.vm.State); err != nil {
		logger.Log(logger.Allow, "debugger", err)
	}
}

// Start the debugger. Commands are read from the terminal until the QUIT
// command is issued or until the input is exhausted.
func (dbg *Debugger) Start() error {
	if err := dbg.term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	signal.Notify(dbg.interrupt, os.Interrupt)
	defer signal.Stop(dbg.interrupt)

	if dbg.gui != nil {
		if err := dbg.gui.SetFeature(gui.ReqSetTitle, dbg.vm.ROM.ShortName()); err != nil {
			logger.Log(logger.Allow, "debugger", err)
		}
		if err := dbg.gui.SetFeature(gui.ReqSetVisibility, true); err != nil {
			logger.Log(logger.Allow, "debugger", err)
		}
		dbg.updateGUI()
	}

	dbg.running = true
	for dbg.running {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		if err := dbg.parseInput(input); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// prompt shows the instruction at the program counter.
func (dbg *Debugger) prompt() terminal.Prompt {
	return terminal.Prompt{
		Content: dbg.entryAt(dbg.vm.CPU.PC).String(),
		State:   dbg.vm.State,
	}
}

// entryAt returns the disassembly entry for the address. addresses outside of
// the program area are disassembled as required.
func (dbg *Debugger) entryAt(address uint16) *disassembly.Entry {
	e, err := dbg.dsm.Get(address)
	if err == nil {
		word := instructions.Fetch(dbg.vm.Mem.Read(address), dbg.vm.Mem.Read((address+1)&memory.AddressMask))
		if e.Opcode.Word == word {
			return e
		}
	}
	return &disassembly.FromMemory(dbg.vm.Mem, address, 1).Entries[0]
}

// parseInput tokenises the input and processes the command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := commandline.TokeniseInput(input)
	if tokens.Remaining() == 0 {
		return nil
	}
	dbg.term.TermPrintLine(terminal.StyleEcho, tokens.String())
	return dbg.processTokens(tokens)
}
