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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = time.Now().UnixNano()
}

// Clock implementations return a value that changes as the emulation
// advances. The virtual machine's instruction count is the obvious candidate.
type Clock interface {
	Count() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation. The same clock value will always produce the same number for the
// lifetime of the program.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for instances where random numbers must be predictable between
	// runs of the program, such as tests and the headless digest mode
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(int64(rnd.clock.Count())))
	}
	return rand.New(rand.NewSource(baseSeed + int64(rnd.clock.Count())))
}

// Intn returns a random number in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Byte returns a random 8 bit value.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand().Intn(256))
}
