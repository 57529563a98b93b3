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

package termplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences for the terminal GUI.
type Preferences struct {
	dsk *prefs.Disk

	// the number of milliseconds a key is held for after it was last read
	// from the terminal. should be longer than the key repeat delay of the
	// terminal
	HoldMS prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.HoldMS.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return curated.Errorf("termplay: hold time must be greater than zero")
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	err = p.dsk.Add("termplay.holdms", &p.HoldMS)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	err = p.dsk.Load(false)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("termplay: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.HoldMS.Set(150)
}

// Load terminal preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current terminal preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Set the preference value with the key. Returns false if the key is not a
// termplay preference.
func (p *Preferences) Set(key string, value prefs.Value) (bool, error) {
	return p.dsk.Set(key, value)
}

// Preferences implements the gui.PreferencesGUI interface.
func (tp *TermPlay) Preferences() prefs.Group {
	return tp.Prefs
}
