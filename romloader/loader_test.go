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

package romloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// a short but otherwise meaningless program
var program = []byte{0x00, 0xe0, 0x12}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, program, 0o644))

	cl := romloader.NewLoader(fn)
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.ShortName(), "test")

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, string(cl.Data), string(program))
	test.ExpectEquality(t, len(cl.Hash), 40)

	// a hash that matches the data
	ok := romloader.NewLoader(fn)
	ok.Hash = cl.Hash
	test.ExpectSuccess(t, ok.Load())

	// a hash that does not match
	bad := romloader.NewLoader(fn)
	bad.Hash = "0000000000000000000000000000000000000000"
	err := bad.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedHash))
	test.ExpectFailure(t, bad.HasLoaded())
}

func TestLoadErrors(t *testing.T) {
	missing := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	test.ExpectFailure(t, missing.Load())

	fn := filepath.Join(t.TempDir(), "empty.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{}, 0o644))
	empty := romloader.NewLoader(fn)
	test.ExpectSuccess(t, curated.Is(empty.Load(), romloader.NoData))

	ftp := romloader.NewLoader("ftp://example.com/test.ch8")
	test.ExpectSuccess(t, curated.Is(ftp.Load(), romloader.UnsupportedScheme))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/test.ch8" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(program)
	}))
	defer srv.Close()

	cl := romloader.NewLoader(srv.URL + "/test.ch8")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, string(cl.Data), string(program))

	nf := romloader.NewLoader(srv.URL + "/missing.ch8")
	test.ExpectFailure(t, nf.Load())
}

func TestFromData(t *testing.T) {
	cl := romloader.NewLoaderFromData("inline", program)
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Hash), 40)

	// the loader keeps its own copy of the data
	program[0] = 0xff
	test.ExpectEquality(t, cl.Data[0], uint8(0x00))
	program[0] = 0x00
}
