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

package prefs

import "fmt"

// Group is implemented by the collections of preference values belonging to a
// single package. The String() function lists the values in the same format as
// the preferences file.
type Group interface {
	fmt.Stringer
	Load() error
	Save() error

	// Set returns false if the key is not part of the group
	Set(key string, value Value) (bool, error)
}
