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

//go:build windows

package easyterm

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8/curated"
)

// Geometry contains the dimensions of a terminal.
type Geometry struct {
	Rows int
	Cols int
	X    int
	Y    int
}

// Terminal is not supported on windows. Initialise() will always fail.
type Terminal struct {
	input  *os.File
	output *os.File
}

// Initialise always returns an error on windows.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return curated.Errorf("easyterm: terminal modes are not supported on windows")
}

// CleanUp does nothing on windows.
func (pt *Terminal) CleanUp() {}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	if pt.output != nil {
		pt.output.WriteString(fmt.Sprintf(s, a...))
	}
}

// Input returns the input file of the terminal.
func (pt *Terminal) Input() *os.File {
	return pt.input
}

// Output returns the output file of the terminal.
func (pt *Terminal) Output() *os.File {
	return pt.output
}

// Geometry returns the zero value on windows.
func (pt *Terminal) Geometry() Geometry {
	return Geometry{}
}

// UpdateGeometry does nothing on windows.
func (pt *Terminal) UpdateGeometry() error {
	return nil
}

// CanonicalMode does nothing on windows.
func (pt *Terminal) CanonicalMode() {}

// RawMode does nothing on windows.
func (pt *Terminal) RawMode() {}

// CBreakMode does nothing on windows.
func (pt *Terminal) CBreakMode() {}

// Flush does nothing on windows.
func (pt *Terminal) Flush() error {
	return nil
}
