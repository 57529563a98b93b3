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

// Package curated provides an error type whose format pattern is also its
// identity.
//
// Errors are created with Errorf(), which takes a pattern and values in the
// same way as fmt.Errorf(). Patterns that callers need to test for are
// exported as constants by the package that raises them. For example, the
// memory package raises ROMTooLarge when a program does not fit:
//
//	err := mem.LoadProgram(data)
//	if curated.Is(err, memory.ROMTooLarge) {
//		...
//	}
//
// Is() only compares the outermost pattern. Has() searches the values of the
// error, and the values of those errors, for the pattern:
//
//	err := curated.Errorf("vm: %v", curated.Errorf(memory.ROMTooLarge, 4000, 3584))
//	curated.Is(err, memory.ROMTooLarge)  // false
//	curated.Has(err, memory.ROMTooLarge) // true
//
// IsAny() is true for any error created by Errorf().
//
// An error chain is a series of parts separated by ": ". When the message is
// produced, adjacent parts that are the same are collapsed. A function can
// therefore wrap an error with its own prefix without checking whether the
// prefix is already present:
//
//	curated.Errorf("memory: %v", curated.Errorf("memory: rom too large"))
//
// produces "memory: rom too large".
//
// Unwrap() returns the first error in the values, so that errors.As() can
// recover a structured error from the chain. The scheduler recovers the CPU
// fault in this way.
package curated
