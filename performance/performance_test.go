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

package performance_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,Mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)
	test.ExpectEquality(t, p.String(), "CPU,MEM")

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)
	test.ExpectEquality(t, p.String(), "NONE")

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.String(), "CPU,MEM,TRACE")

	_, err = performance.ParseProfile("cpu,gpu")
	test.ExpectFailure(t, err)
}

func TestCalcRate(t *testing.T) {
	cps, accuracy := performance.CalcRate(120, 2.0)
	test.ExpectEquality(t, cps, 60.0)
	test.ExpectEquality(t, accuracy, 100.0)

	cps, accuracy = performance.CalcRate(120, 0)
	test.ExpectEquality(t, cps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestRunProfiler(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("performance check takes more than a second")
	}

	// JP $200
	rom := romloader.NewLoaderFromData("loop", []byte{0x12, 0x00})

	tw := &test.Writer{}
	err := performance.Check(tw, performance.ProfileNone, rom, nil, true, "100ms")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "cycles in 0.10 seconds"))

	err = performance.Check(tw, performance.ProfileNone, rom, nil, true, "soon")
	test.ExpectFailure(t, err)
}
