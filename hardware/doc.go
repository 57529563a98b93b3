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

// Package hardware is the base package for the emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The VM type is the root of the emulation and contains references to all
// the sub-systems. From here, the emulation can either be started to run
// continuously with the Run() function (with an optional callback to check
// for continuation); or it can be advanced one cycle at a time with Cycle(),
// or one instruction at a time with Step().
//
// A cycle consists of polling the attached input source, executing a batch of
// instructions, ticking the timers once and presenting the framebuffer to the
// attached displays. The number of instructions in a batch is set by the
// hardware.ipc preference. When the Run() function is paced by a limiter, the
// cycles run at the TickRate of the timers package.
//
// Execution faults either stop the VM or are skipped, depending on the
// hardware.haltonfault preference. When the VM has stopped because of a fault
// the Halted field records the fault.
package hardware
