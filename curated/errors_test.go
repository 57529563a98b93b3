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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))

	// IsAny should return true for these errors also
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.IsAny(f))
}

func TestPlainErrors(t *testing.T) {
	// test plain errors that haven't been formatted with our errors package
	e := errors.New("test error: plain")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Has(e, testError))

	// a curated error wrapping a plain error can be unwrapped with the
	// standard library
	f := curated.Errorf(testError, e)
	test.ExpectSuccess(t, errors.Is(f, e))
	test.ExpectEquality(t, f.Error(), "test error: plain")
}

type structured struct {
	value int
}

func (s structured) Error() string {
	return "structured"
}

func TestUnwrapAs(t *testing.T) {
	e := curated.Errorf("outer: %v", curated.Errorf("inner: %v", structured{value: 10}))

	var s structured
	test.DemandSuccess(t, errors.As(e, &s))
	test.ExpectEquality(t, s.value, 10)

	// no error values
	f := curated.Errorf("no error values: %d", 10)
	test.ExpectEquality(t, errors.Unwrap(f), nil)
}

const tooLarge = "rom too large (%d bytes)"

func TestNestedPatterns(t *testing.T) {
	inner := curated.Errorf(tooLarge, 4000)
	e := curated.Errorf("vm: %v", curated.Errorf("memory: %v", inner))
	test.ExpectEquality(t, e.Error(), "vm: memory: rom too large (4000 bytes)")
	test.ExpectFailure(t, curated.Is(e, tooLarge))
	test.ExpectSuccess(t, curated.Has(e, tooLarge))

	// a prefix that is already present is not repeated
	f := curated.Errorf("memory: %v", curated.Errorf("memory: %v", inner))
	test.ExpectEquality(t, f.Error(), "memory: rom too large (4000 bytes)")

	// a plain error between curated errors hides the patterns beneath it
	g := curated.Errorf("vm: %v", errors.Join(inner))
	test.ExpectFailure(t, curated.Has(g, tooLarge))
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, tooLarge))
}
