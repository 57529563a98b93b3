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

// Package modalflag wraps the flag package of the standard library and adds
// the concept of program modes. Each mode can have its own set of flags and
// its own arguments.
//
// Arguments are supplied with NewArgs() and then parsed in layers with
// Parse(). Before each layer the sub-modes that are valid at that point are
// specified with AddSubModes(). The first sub-mode is the default and is
// selected when the first non-flag argument is not a recognised sub-mode. For
// example, the gopher8 command line:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "DISASM")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		display := md.AddString("display", "SDL", "display type")
//		...
//	}
//
// Sub-mode comparisons are case insensitive and sub-modes are always reported
// in upper case. The path of modes found by successive calls to Parse() is
// returned by Path(), with each mode separated by a slash.
//
// Help is requested with the -help flag, in which case Parse() prints the
// available flags and sub-modes to the Output writer and returns ParseHelp.
package modalflag
