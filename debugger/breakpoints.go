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

package debugger

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// breakpoints is an ordered set of addresses at which the RUN command halts.
type breakpoints struct {
	addresses []uint16
}

func (bp breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, a := range bp.addresses {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("% 2d: $%03x", i, a))
	}
	return s.String()
}

// add a breakpoint. it is an error to add a breakpoint that already exists.
func (bp *breakpoints) add(address uint16) error {
	address &= memory.AddressMask
	i := sort.Search(len(bp.addresses), func(i int) bool { return bp.addresses[i] >= address })
	if i < len(bp.addresses) && bp.addresses[i] == address {
		return curated.Errorf("break: already exists ($%03x)", address)
	}
	bp.addresses = append(bp.addresses, 0)
	copy(bp.addresses[i+1:], bp.addresses[i:])
	bp.addresses[i] = address
	return nil
}

// drop a breakpoint. it is an error to drop a breakpoint that does not exist.
func (bp *breakpoints) drop(address uint16) error {
	address &= memory.AddressMask
	for i, a := range bp.addresses {
		if a == address {
			bp.addresses = append(bp.addresses[:i], bp.addresses[i+1:]...)
			return nil
		}
	}
	return curated.Errorf("break: no breakpoint at $%03x", address)
}

func (bp *breakpoints) clear() {
	bp.addresses = bp.addresses[:0]
}

// check returns true if there is a breakpoint at the address.
func (bp breakpoints) check(address uint16) bool {
	i := sort.Search(len(bp.addresses), func(i int) bool { return bp.addresses[i] >= address })
	return i < len(bp.addresses) && bp.addresses[i] == address
}
