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
	"fmt"
	"sort"
	"strings"
)

// debugger keywords.
const (
	cmdBreak   = "BREAK"
	cmdClear   = "CLEAR"
	cmdCycle   = "CYCLE"
	cmdDisasm  = "DISASM"
	cmdFaults  = "FAULTS"
	cmdGrep    = "GREP"
	cmdHelp    = "HELP"
	cmdKeys    = "KEYS"
	cmdMem     = "MEM"
	cmdMemviz  = "MEMVIZ"
	cmdPrefs   = "PREFS"
	cmdPress   = "PRESS"
	cmdQuit    = "QUIT"
	cmdRegs    = "REGS"
	cmdRelease = "RELEASE"
	cmdReset   = "RESET"
	cmdRun     = "RUN"
	cmdStack   = "STACK"
	cmdStep    = "STEP"
	cmdTimers  = "TIMERS"
)

// usage strings for the commands. the key is the command keyword.
var usage = map[string]string{
	cmdBreak:   "BREAK [address]",
	cmdClear:   "CLEAR [address]",
	cmdCycle:   "CYCLE [n]",
	cmdDisasm:  "DISASM [address] [n]",
	cmdFaults:  "FAULTS",
	cmdGrep:    "GREP <text>",
	cmdHelp:    "HELP [command]",
	cmdKeys:    "KEYS",
	cmdMem:     "MEM <address> [n]",
	cmdMemviz:  "MEMVIZ <file>",
	cmdPrefs:   "PREFS [SAVE|LOAD|SET <key> <value>]",
	cmdPress:   "PRESS <key>",
	cmdQuit:    "QUIT",
	cmdRegs:    "REGS",
	cmdRelease: "RELEASE <key|ALL>",
	cmdReset:   "RESET",
	cmdRun:     "RUN",
	cmdStack:   "STACK",
	cmdStep:    "STEP [n]",
	cmdTimers:  "TIMERS",
}

var help = map[string]string{
	cmdBreak:   "Halt the RUN command when the program counter reaches the address. Lists breakpoints if no address is given",
	cmdClear:   "Remove the breakpoint at the address. Removes all breakpoints if no address is given",
	cmdCycle:   "Run the VM for one or more scheduling cycles, without pacing. Timers are ticked once per cycle",
	cmdDisasm:  "Disassemble memory. Defaults to ten instructions from the program counter. Executed instructions are marked with an asterisk",
	cmdFaults:  "List the faults raised since the last reset",
	cmdGrep:    "Search the program disassembly for the text",
	cmdHelp:    "Lists commands and provides help for individual debugger commands",
	cmdKeys:    "Display the state of the keypad",
	cmdMem:     "Display memory from the address. Displays 64 bytes if no count is given",
	cmdMemviz:  "Write a graphviz dot file of the CPU registers, stack, timers and keypad",
	cmdPrefs:   "List the preference values. SAVE and LOAD use the preferences file. SET changes a value for the current session",
	cmdPress:   "Press a keypad key (0 to F). The key stays pressed until it is released",
	cmdQuit:    "Exits the debugger",
	cmdRegs:    "Display the CPU registers",
	cmdRelease: "Release a keypad key (0 to F) or ALL keys",
	cmdReset:   "Reset the VM to the state it was in when the program was loaded",
	cmdRun:     "Run the VM until a breakpoint is reached, the P key is pressed or an interrupt is received",
	cmdStack:   "Display the call stack",
	cmdStep:    "Execute one or more instructions. Timers are not ticked",
	cmdTimers:  "Display the delay and sound timers",
}

// helpList returns the list of all commands, in alphabetical order.
func helpList() string {
	keys := make([]string, 0, len(usage))
	for k := range usage {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for i, k := range keys {
		if i > 0 {
			if i%8 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		if (i+1)%8 == 0 || i == len(keys)-1 {
			s.WriteString(k)
		} else {
			s.WriteString(fmt.Sprintf("%-8s", k))
		}
	}
	return s.String()
}
