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

package curated

import (
	"fmt"
	"strings"
)

// the separator between the parts of an error chain.
const partSeparator = ": "

// curated errors are formatted only when Error() is called. the pattern is
// retained so that the error can be identified by Is() and Has().
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is a format string in the
// manner of fmt.Sprintf() and also serves as the identity of the error. For
// that reason patterns that are tested for should be declared as constants.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. Adjacent parts of the error chain
// that are identical are reduced to a single part.
func (c curated) Error() string {
	parts := strings.Split(fmt.Sprintf(c.pattern, c.values...), partSeparator)

	chain := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(chain) > 0 && chain[len(chain)-1] == p {
			continue
		}
		chain = append(chain, p)
	}

	return strings.Join(chain, partSeparator)
}

// Unwrap returns the first value that is an error, or nil if there are no
// error values. This allows errors.Is() and errors.As() to see into curated
// errors.
func (c curated) Unwrap() error {
	for _, v := range c.values {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

// IsAny returns true if the error was created by Errorf().
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is returns true if the error was created by Errorf() with the pattern.
// Errors further down the chain are not considered.
func Is(err error, pattern string) bool {
	c, ok := err.(curated)
	return ok && c.pattern == pattern
}

// Has returns true if the error, or any curated error in its values, was
// created with the pattern.
func Has(err error, pattern string) bool {
	c, ok := err.(curated)
	if !ok {
		return false
	}

	if c.pattern == pattern {
		return true
	}

	for _, v := range c.values {
		if err, ok := v.(error); ok && Has(err, pattern) {
			return true
		}
	}

	return false
}
