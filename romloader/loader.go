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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinel error patterns.
const (
	UnsupportedScheme = "romloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "romloader: unexpected hash value (%s)"
	NoData            = "romloader: no data in %s"
)

// FileExtensions is the list of file extensions that are commonly used for
// program files. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader specifies the program data to be attached to the virtual machine.
type Loader struct {
	// filename or URL of the program to load
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// NewLoaderFromData creates a loader for data that is already in memory. The
// name argument is used only for presentation.
func NewLoaderFromData(name string, data []byte) Loader {
	cl := Loader{
		Filename: name,
		Data:     make([]byte, len(data)),
	}
	copy(cl.Data, data)
	cl.Hash = fmt.Sprintf("%x", sha1.Sum(cl.Data))
	return cl
}

// ShortName returns the filename without the path and without the file
// extension.
func (cl Loader) ShortName() string {
	name := filepath.Base(cl.Filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the program data. Filenames with a URL scheme of http or https are
// fetched over the network. Calling Load() on a loader that has already
// loaded is not an error and the data is not loaded again.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && len(u.Scheme) > 1 {
		// a single letter scheme is a windows drive letter
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	if len(data) == 0 {
		return curated.Errorf(NoData, cl.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}
