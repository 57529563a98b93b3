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

// Package debugger implements a reaction-based debugger for the virtual
// machine. Commands are read from a terminal.Terminal implementation and the
// results are written back to the same terminal.
//
// The debugger takes control of the run state of the VM. The VM begins in the
// Paused state and instructions are only executed in response to the STEP,
// CYCLE and RUN commands. While the RUN command is in effect the input source
// and any attached GUI work as they do during normal play. RUN ends on a
// breakpoint, when the P key is pressed, when the VM stops or on receipt of an
// interrupt signal (ctrl-c).
//
// The HELP command lists all available commands.
package debugger
