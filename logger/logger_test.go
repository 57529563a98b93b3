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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", errors.New("this is another test"))
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	logger.Tail(tw, 2)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatAndPermission(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Logf(logger.Allow, "cpu", "unrecognised opcode %04x", 0x5001)
	logger.Logf(logger.Allow, "cpu", "unrecognised opcode %04x", 0x5001)
	logger.Log(deny{}, "cpu", "this should not be logged")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "cpu: unrecognised opcode 5001 (repeat x2)\n")

	// echo
	echo := &test.Writer{}
	logger.SetEcho(echo)
	logger.Log(logger.Allow, "echo", 100)
	logger.SetEcho(nil)
	logger.Log(logger.Allow, "echo", "not echoed")
	test.ExpectEquality(t, echo.String(), "echo: 100\n")
}

func TestMaximumEntries(t *testing.T) {
	logger.Clear()

	// the ring writer is exactly the size of one echoed entry
	ring, err := test.NewRingWriter(len("cpu: 000\n"))
	test.DemandSuccess(t, err)
	logger.SetEcho(ring)
	defer logger.SetEcho(nil)

	for i := 0; i < 300; i++ {
		logger.Logf(logger.Allow, "cpu", "%03d", i)
	}
	test.ExpectEquality(t, ring.String(), "cpu: 299\n")

	tw := &test.Writer{}
	logger.Write(tw)
	lines := strings.Split(strings.TrimSpace(tw.String()), "\n")
	test.ExpectEquality(t, len(lines), 256)
	test.ExpectEquality(t, lines[0], "cpu: 044")

	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "cpu: 299\n")
}
