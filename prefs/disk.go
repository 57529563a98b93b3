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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// KeySep is the separator between key and value in a preferences file.
const KeySep = " :: "

// Sentinel error patterns.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	InvalidKey    = "prefs: invalid key (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
	InvalidFormat = "prefs: invalid prefs file (%s)"
)

// Disk represents preference values as stored on disk. Values from more than
// one Disk instance can be stored in the same file. Entries in the file that
// do not belong to the Disk instance are preserved when the Disk is saved.
type Disk struct {
	path    string
	entries map[string]pref
}

func (dsk Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: empty path")
	}

	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n") || strings.Contains(key, "::") {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// Set the value of the preference with the key. Returns false if the key is
// not part of this Disk instance.
func (dsk *Disk) Set(key string, value Value) (bool, error) {
	p, ok := dsk.entries[key]
	if !ok {
		return false, nil
	}
	if err := p.Set(value); err != nil {
		return true, curated.Errorf("prefs: %v", err)
	}
	return true, nil
}

// sorted list of keys.
func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// read the prefs file into a map of key/value strings. returns the NoPrefsFile
// error if the file does not exist.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the boilerplate warning
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidFormat, dsk.path)
	}

	vals := make(map[string]string)
	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), KeySep, 2)
		if len(kv) != 2 {
			continue
		}
		vals[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return vals, nil
}

// Save current preference values to disk. The values for keys that do not
// belong to this Disk instance but which are present in the file are kept.
func (dsk *Disk) Save() error {
	vals, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return curated.Errorf("prefs: %v", err)
		}
		vals = make(map[string]string)
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, vals[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values on the top of the command line
// stack take priority over values in the file. The NoPrefsFile error is
// returned if the file does not exist but the command line values are still
// applied.
//
// If saveOnFail is true then the file will be created if it does not exist.
func (dsk *Disk) Load(saveOnFail bool) error {
	vals, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	for k, v := range vals {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	for _, k := range dsk.keys() {
		if ok, v := GetCommandLinePref(k); ok {
			if err := dsk.entries[k].Set(v); err != nil {
				return curated.Errorf("prefs: %v", err)
			}
		}
	}

	if err != nil && saveOnFail {
		return dsk.Save()
	}

	return err
}

// Reset all preference values to their zero value. Note that the hook
// functions of the individual values may cause the value to be something
// other than the zero value.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}
