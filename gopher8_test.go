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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/test"
)

// writeROM creates a ROM file in a temporary directory.
func writeROM(t *testing.T, data ...byte) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o644))
	return filename
}

// modes parses the top level of the arguments in the same way as launch().
func modes(t *testing.T, tw *test.Writer, args ...string) *modalflag.Modes {
	t.Helper()
	md := &modalflag.Modes{Output: tw}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DISASM", "PERFORMANCE")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	return md
}

func TestDisasmMode(t *testing.T) {
	rom := writeROM(t, 0x00, 0xe0, 0x12, 0x02)

	tw := &test.Writer{}
	md := modes(t, tw, "disasm", rom)
	test.ExpectEquality(t, md.Mode(), "DISASM")
	test.ExpectSuccess(t, disasm(md))
	test.ExpectEquality(t, tw.String(), "$0200 00 e0  CLS\n$0202 12 02  JP   $202\n")

	tw.Clear()
	md = modes(t, tw, "disasm", "-bytecode=false", rom)
	test.ExpectSuccess(t, disasm(md))
	test.ExpectEquality(t, tw.String(), "$0200 CLS\n$0202 JP   $202\n")
}

func TestHeadlessRun(t *testing.T) {
	rom := writeROM(t, 0x00, 0xe0, 0x12, 0x02)

	tw := &test.Writer{}
	md := modes(t, tw, "-display", "NONE", "-fpscap=false", "-cycles", "10", rom)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectSuccess(t, run(md, nil, nil))

	lines := strings.Split(strings.TrimSpace(tw.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "video: "))
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "(10 frames)"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "audio: "))

	// the digest is the same for every run of the same program
	first := tw.String()
	tw.Clear()
	md = modes(t, tw, "run", "-display", "NONE", "-fpscap=false", "-cycles", "10", rom)
	test.ExpectSuccess(t, run(md, nil, nil))
	test.ExpectEquality(t, tw.String(), first)
}

func TestHeadlessInterrupt(t *testing.T) {
	rom := writeROM(t, 0x12, 0x00)
	wav := filepath.Join(t.TempDir(), "tone.wav")

	// the program never ends and there is no cycle limit
	interrupt := make(chan os.Signal, 1)
	interrupt <- os.Interrupt

	tw := &test.Writer{}
	md := modes(t, tw, "run", "-display", "NONE", "-fpscap=false", "-wav", wav, rom)
	test.ExpectSuccess(t, run(md, nil, interrupt))

	lines := strings.Split(strings.TrimSpace(tw.String()), "\n")
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "(1 frames)"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "audio: "))

	// the wav file is only written when the mixers are ended
	info, err := os.Stat(wav)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.Size() > 44)
}

func TestHeadlessFault(t *testing.T) {
	// RET with an empty stack
	rom := writeROM(t, 0x00, 0xee)

	tw := &test.Writer{}
	md := modes(t, tw, "run", "-display", "NONE", "-fpscap=false", rom)
	err := run(md, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, curated.Is(err, usageError))

	// the digest is printed even though the program halted
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "video: "))
}

func TestUsageErrors(t *testing.T) {
	tw := &test.Writer{}

	md := modes(t, tw, "run", "-display", "NONE")
	err := run(md, nil, nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, usageError))

	md = modes(t, tw, "run", "-display", "NONE", "a.ch8", "b.ch8")
	err = run(md, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, usageError))

	rom := writeROM(t, 0x12, 0x00)
	md = modes(t, tw, "run", "-display", "VGA", "-fpscap=false", rom)
	err = run(md, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, usageError))

	md = modes(t, tw, "run", "-display", "TERM", "-scale", "3", "-fpscap=false", rom)
	err = run(md, nil, nil)
	test.ExpectSuccess(t, curated.Is(err, usageError))

	md = modes(t, tw, "debug", "-display", "TERM", "-fpscap=false", rom)
	err = debug(md, nil)
	test.ExpectSuccess(t, curated.Is(err, usageError))

	md = modes(t, tw, "disasm", "-nosuchflag", rom)
	err = disasm(md)
	test.ExpectSuccess(t, curated.Is(err, usageError))

	md = modes(t, tw, "disasm", filepath.Join(t.TempDir(), "missing.ch8"))
	err = disasm(md)
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, curated.Is(err, usageError))
}
