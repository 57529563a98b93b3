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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// limits for the Scale value.
const (
	MinScale = 1
	MaxScale = 40
)

// Preferences for the SDL GUI.
type Preferences struct {
	dsk *prefs.Disk

	// the size of each framebuffer pixel in the window
	Scale prefs.Int

	// the frequency of the square wave tone. not used if ToneSample is set
	ToneFreq prefs.Float

	// the path to a WAV or MP3 file to use as the tone. the sample is looped
	// for as long as the tone is active
	ToneSample prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Scale.SetHookPre(func(v prefs.Value) error {
		s := v.(int)
		if s < MinScale || s > MaxScale {
			return curated.Errorf("sdlplay: scale must be between %d and %d", MinScale, MaxScale)
		}
		return nil
	})

	p.ToneFreq.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return curated.Errorf("sdlplay: tone frequency must be greater than zero")
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = p.dsk.Add("sdlplay.scale", &p.Scale)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = p.dsk.Add("sdlplay.tonefreq", &p.ToneFreq)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}
	err = p.dsk.Add("sdlplay.tonesample", &p.ToneSample)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = p.dsk.Load(false)
	if err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("sdlplay: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.Scale.Set(10)
	_ = p.ToneFreq.Set(440.0)
	_ = p.ToneSample.Set("")
}

// Load SDL preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current SDL preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Set the preference value with the key. Returns false if the key is not a
// sdlplay preference.
func (p *Preferences) Set(key string, value prefs.Value) (bool, error) {
	return p.dsk.Set(key, value)
}

// Preferences implements the gui.PreferencesGUI interface.
func (scr *SdlPlay) Preferences() prefs.Group {
	return scr.Prefs
}
