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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

type clock struct {
	count uint64
}

func (c *clock) Count() uint64 {
	return c.count
}

func TestRandom(t *testing.T) {
	ca := &clock{}
	cb := &clock{}
	a := random.NewRandom(ca)
	b := random.NewRandom(cb)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		ca.count = uint64(i)
		cb.count = uint64(i)
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
		test.ExpectEquality(t, a.Byte(), b.Byte())
	}
}

func TestSameClock(t *testing.T) {
	c := &clock{count: 100}
	a := random.NewRandom(c)

	// same clock value produces the same number
	test.ExpectEquality(t, a.Byte(), a.Byte())
}
