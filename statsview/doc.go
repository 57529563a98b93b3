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

// Package statsview offers an optional HTTP server with runtime statistics of
// the running emulator. The server is only available when the program is
// built with the statsview build tag:
//
//	go build -tags statsview
//
// The server is started with the -statsview flag on the command line. After
// launch, the graphical statistics are viewable at:
//
//	localhost:12800/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12800/debug/pprof/
//
// The Available() function reports whether the server has been compiled in.
package statsview
