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

// Package romloader is used to specify the program data that is to be attached
// to the virtual machine.
//
// Program data can be loaded from a local file or from a URL with the http or
// https scheme. After loading the SHA1 hash of the data is available in the
// Hash field. If the Hash field is set before loading then the hash of the
// loaded data must match or the load will fail.
package romloader
