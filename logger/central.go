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

package logger

import (
	"fmt"
	"io"
)

// only allowing one central log for the entire application. there's no need to
// allow more than one log.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Permission is implemented by anything that makes log requests and which
// might need to be silenced. The hardware instance type implements it so that
// a VM created by a test does not fill the central log.
//
// A nil Permission never allows logging.
type Permission interface {
	AllowLogging() bool
}

type allowAlways bool

func (a allowAlways) AllowLogging() bool {
	return bool(a)
}

// Allow is the Permission to use when the log entry should always be made.
var Allow Permission = allowAlways(true)

// Log adds an entry to the central logger. The detail argument can be of any
// type but a string, an error or a fmt.Stringer is most useful.
func Log(perm Permission, tag string, detail any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}

	switch d := detail.(type) {
	case string:
		central.log(tag, d)
	case error:
		central.log(tag, d.Error())
	case fmt.Stringer:
		central.log(tag, d.String())
	default:
		central.log(tag, fmt.Sprintf("%v", d))
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	if perm == nil || !perm.AllowLogging() {
		return
	}
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from central logger.
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho prints new log entries to io.Writer as they are added. A nil
// io.Writer stops the echo.
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
