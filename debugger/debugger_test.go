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

package debugger_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// mockTerm supplies a fixed list of commands to the debugger and records
// everything that is printed.
type mockTerm struct {
	inp    []string
	output []string
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermRead(_ terminal.Prompt) (string, error) {
	if len(trm.inp) == 0 {
		return "", io.EOF
	}
	s := trm.inp[0]
	trm.inp = trm.inp[1:]
	return s, nil
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	trm.output = append(trm.output, s)
}

// cmpOutput checks that the output of the debugger matches the expected
// lines exactly.
func (trm *mockTerm) cmpOutput(t *testing.T, expected ...string) {
	t.Helper()
	if !test.ExpectEquality(t, len(trm.output), len(expected)) {
		for _, s := range trm.output {
			t.Log(s)
		}
		return
	}
	for i := range expected {
		test.ExpectEquality(t, trm.output[i], expected[i])
	}
}

// newDebugger creates a VM with the program attached and a debugger that
// will run the commands.
func newDebugger(t *testing.T, words []uint16, commands ...string) (*debugger.Debugger, *hardware.VM, *mockTerm) {
	t.Helper()

	vm, err := hardware.NewVM(nil)
	test.DemandSuccess(t, err)
	vm.Instance.Label = instance.Testing

	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = append(data, uint8(w>>8), uint8(w))
	}
	test.DemandSuccess(t, vm.AttachROM(romloader.NewLoaderFromData("test", data)))

	trm := &mockTerm{inp: commands}
	dbg, err := debugger.NewDebugger(vm, trm, nil, nil, nil)
	test.DemandSuccess(t, err)

	return dbg, vm, trm
}

var countingProgram = []uint16{
	0x6a05, // LD VA, $05
	0x7a01, // ADD VA, $01
	0x1200, // JP $200
}

func TestNoProgram(t *testing.T) {
	vm, err := hardware.NewVM(nil)
	test.DemandSuccess(t, err)
	_, err = debugger.NewDebugger(vm, &mockTerm{}, nil, nil, nil)
	test.ExpectFailure(t, err)
}

func TestStep(t *testing.T) {
	dbg, vm, trm := newDebugger(t, countingProgram,
		"step", "STEP 2", "regs", "QUIT", "regs")
	test.ExpectSuccess(t, dbg.Start())

	// the final REGS command is never run
	trm.cmpOutput(t,
		"$0200 LD   VA, $05",
		"$0202 ADD  VA, $01",
		"$0204 JP   $200",
		"PC=200 I=000 V0=00 V1=00 V2=00 V3=00 V4=00 V5=00 V6=00 V7=00 V8=00 V9=00 VA=06 VB=00 VC=00 VD=00 VE=00 VF=00 SP=0",
	)

	// stepping does not tick the timers or change the run state
	test.ExpectEquality(t, vm.Cycles(), 0)
	test.ExpectEquality(t, vm.Timers.Delay, 0)
}

func TestDisasm(t *testing.T) {
	dbg, _, trm := newDebugger(t, countingProgram,
		"STEP", "DISASM 200 3", "DISASM", "GREP add", "GREP cls")
	test.ExpectSuccess(t, dbg.Start())

	trm.cmpOutput(t,
		"$0200 LD   VA, $05",
		"* $0200 6a 05  LD   VA, $05",
		"  $0202 7a 01  ADD  VA, $01",
		"  $0204 12 00  JP   $200",

		// the default disassembly begins at the program counter and extends
		// beyond the end of the program
		"  $0202 7a 01  ADD  VA, $01",
		"  $0204 12 00  JP   $200",
		"  $0206 00 00  SYS  $000",
		"  $0208 00 00  SYS  $000",
		"  $020a 00 00  SYS  $000",
		"  $020c 00 00  SYS  $000",
		"  $020e 00 00  SYS  $000",
		"  $0210 00 00  SYS  $000",
		"  $0212 00 00  SYS  $000",
		"  $0214 00 00  SYS  $000",

		"$0202 ADD  VA, $01",
		"cls not found in disassembly",
	)
}

func TestBreakpoints(t *testing.T) {
	program := []uint16{
		0x6000, // LD V0, $00
		0x7001, // ADD V0, $01
		0x1202, // JP $202
	}

	dbg, vm, trm := newDebugger(t, program,
		"BREAK 300", "BREAK $204", "BREAK 204", "BREAK",
		"RUN", "RUN", "CLEAR 300", "CLEAR 300", "CLEAR", "BREAK")
	test.ExpectSuccess(t, dbg.Start())

	trm.cmpOutput(t,
		"breakpoint added at $300",
		"breakpoint added at $204",
		"break: already exists ($204)",
		" 0: $204",
		" 1: $300",
		"break at $204 after 1 cycles",
		"break at $204 after 1 cycles",
		"breakpoint at $300 cleared",
		"break: no breakpoint at $300",
		"breakpoints cleared",
		"no breakpoints",
	)

	test.ExpectEquality(t, vm.CPU.V[0], 2)
	test.ExpectEquality(t, vm.CPU.PC, 0x204)
}

func TestCycle(t *testing.T) {
	program := []uint16{
		0x6a3c, // LD VA, $3c
		0xfa15, // LD DT, VA
		0x1204, // JP $204
	}

	dbg, vm, trm := newDebugger(t, program, "CYCLE", "TIMERS", "CYCLE 4", "TIMERS")
	test.ExpectSuccess(t, dbg.Start())

	trm.cmpOutput(t,
		"paused after 1 cycles",
		"DT=3b ST=00",
		"paused after 4 cycles",
		"DT=37 ST=00",
	)

	test.ExpectEquality(t, vm.Cycles(), 5)
}

func TestFaults(t *testing.T) {
	program := []uint16{
		0x00ee, // RET
	}

	dbg, _, trm := newDebugger(t, program,
		"FAULTS", "STEP", "CYCLE", "FAULTS", "RUN", "RESET", "FAULTS")
	test.ExpectSuccess(t, dbg.Start())

	trm.cmpOutput(t,
		"no faults",
		"step: stack underflow: 00ee at 200",
		"halted: stack underflow: 00ee at 200",
		"halted: stack underflow: 00ee at 200",
		"stack underflow: 00ee at 200 (x2)",
		"run: emulation has stopped (try RESET)",
		"machine reset",
		"no faults",
	)
}

func TestWaitForKey(t *testing.T) {
	program := []uint16{
		0xf50a, // LD V5, K
		0x1202, // JP $202
	}

	dbg, vm, trm := newDebugger(t, program,
		"STEP", "STEP", "PRESS 7", "KEYS", "STEP", "RELEASE 7", "PRESS a", "KEYS", "RELEASE ALL", "KEYS")
	test.ExpectSuccess(t, dbg.Start())

	trm.cmpOutput(t,
		"$0200 LD   V5, K",
		"waiting for key (V5)",
		"waiting for key (V5)",
		"-------7--------",
		"$0202 JP   $202",
		"----------A-----",
		"----------------",
	)

	test.ExpectEquality(t, vm.CPU.V[5], 7)
	test.ExpectEquality(t, vm.CPU.Waiting, false)
}

func TestMemory(t *testing.T) {
	dbg, _, trm := newDebugger(t, countingProgram, "MEM 200 6", "MEM", "MEM 200 0", "STACK")
	test.ExpectSuccess(t, dbg.Start())

	trm.cmpOutput(t,
		"200: 6a 05 7a 01 12 00",
		"MEM requires an address",
		"count must be greater than zero",
		"empty",
	)
}

func TestCommandErrors(t *testing.T) {
	dbg, _, trm := newDebugger(t, countingProgram,
		"", "FOO", "PRESS 10", "PRESS", "STEP x", "REGS now", "HELP FOO")
	test.ExpectSuccess(t, dbg.Start())

	trm.cmpOutput(t,
		"FOO is not a debugging command (try HELP)",
		"not a keypad key: 10",
		"keypad key required (0 to F)",
		"not a valid number: x",
		"PC=200 I=000 V0=00 V1=00 V2=00 V3=00 V4=00 V5=00 V6=00 V7=00 V8=00 V9=00 VA=00 VB=00 VC=00 VD=00 VE=00 VF=00 SP=0",
		"unexpected arguments for REGS: now",
		"no help for FOO",
	)
}

func TestHelp(t *testing.T) {
	dbg, _, trm := newDebugger(t, countingProgram, "HELP", "HELP step")
	test.ExpectSuccess(t, dbg.Start())

	test.DemandEquality(t, len(trm.output), 5)
	test.ExpectSuccess(t, strings.HasPrefix(trm.output[0], "BREAK"))
	test.ExpectSuccess(t, strings.Contains(trm.output[2], "TIMERS"))
	test.ExpectEquality(t, trm.output[3], "Execute one or more instructions. Timers are not ticked")
	test.ExpectEquality(t, trm.output[4], "  Usage: STEP [n]")
}

func TestMemviz(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "vm.dot")

	dbg, _, trm := newDebugger(t, countingProgram, "MEMVIZ "+filename)
	test.ExpectSuccess(t, dbg.Start())
	trm.cmpOutput(t, "memviz written to "+filename)

	data, err := os.ReadFile(filename)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

// chdirTemp changes the working directory to a temporary directory for the
// duration of the test. the preferences file is found relative to the working
// directory.
func chdirTemp(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	return dir
}

func TestPrefs(t *testing.T) {
	dir := chdirTemp(t)

	dbg, vm, trm := newDebugger(t, countingProgram,
		"PREFS LOAD",
		"PREFS SET quirks.jumpvx TRUE",
		"PREFS SET hardware.ipc 0",
		"PREFS SET hardware.foo 1",
		"PREFS SET hardware.ipc",
		"PREFS SAVE",
		"PREFS SET hardware.ipc 20",
		"PREFS LOAD",
		"PREFS RESTORE",
		"prefs",
	)
	test.ExpectSuccess(t, dbg.Start())

	trm.cmpOutput(t,
		"prefs: no preferences file to load",
		"quirks.jumpvx set to TRUE",
		"prefs: preferences: instructions per cycle must be between 1 and 1000",
		"prefs: invalid key (hardware.foo)",
		"PREFS SET requires a value for hardware.ipc",
		"preferences saved",
		"hardware.ipc set to 20",
		"preferences loaded",
		"unknown PREFS option: RESTORE",
		"hardware.haltonfault :: true",
		"hardware.ipc :: 10",
		"hardware.presentalways :: true",
		"quirks.jumpvx :: true",
		"quirks.loadstore :: false",
		"quirks.shiftvy :: false",
		"quirks.vfreset :: false",
	)

	test.ExpectEquality(t, vm.Instance.Prefs.InstructionsPerCycle.Get(), prefs.Value(10))
	test.ExpectEquality(t, vm.Instance.Prefs.Quirks.JumpVX.Get(), prefs.Value(true))

	data, err := os.ReadFile(filepath.Join(dir, ".gopher8", "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "quirks.jumpvx :: true"))
}
