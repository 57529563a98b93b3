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
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/prefs"
)

// preferences collates the preference groups that can be changed from the
// debugger. the hardware preferences are always present and the GUI
// preferences are present if the GUI has any.
type preferences struct {
	groups []prefs.Group
}

func newPreferences(dbg *Debugger) *preferences {
	p := &preferences{
		groups: []prefs.Group{dbg.vm.Instance.Prefs},
	}
	if g, ok := dbg.gui.(gui.PreferencesGUI); ok {
		p.groups = append(p.groups, g.Preferences())
	}
	return p
}

func (p *preferences) String() string {
	s := strings.Builder{}
	for _, g := range p.groups {
		s.WriteString(g.String())
	}
	return s.String()
}

func (p *preferences) load() error {
	for _, g := range p.groups {
		if err := g.Load(); err != nil {
			return err
		}
	}
	return nil
}

func (p *preferences) save() error {
	for _, g := range p.groups {
		if err := g.Save(); err != nil {
			return err
		}
	}
	return nil
}

func (p *preferences) set(key string, value string) error {
	for _, g := range p.groups {
		ok, err := g.Set(key, value)
		if ok {
			return err
		}
	}
	return curated.Errorf(prefs.InvalidKey, key)
}

// processPrefs handles the arguments of the PREFS command.
func (dbg *Debugger) processPrefs(tokens *commandline.Tokens) error {
	option, ok := tokens.Get()
	if !ok {
		dbg.printLine(terminal.StyleFeedback, dbg.prefs.String())
		return nil
	}

	switch strings.ToUpper(option) {
	case "SAVE":
		if err := dbg.prefs.save(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
		dbg.printLine(terminal.StyleFeedback, "preferences saved")

	case "LOAD":
		if err := dbg.prefs.load(); err != nil {
			if curated.Is(err, prefs.NoPrefsFile) {
				return curated.Errorf("prefs: no preferences file to load")
			}
			return curated.Errorf("prefs: %v", err)
		}
		dbg.printLine(terminal.StyleFeedback, "preferences loaded")

	case "SET":
		key, ok := tokens.Get()
		if !ok {
			return curated.Errorf("%s SET requires a key and a value", cmdPrefs)
		}
		if tokens.IsEnd() {
			return curated.Errorf("%s SET requires a value for %s", cmdPrefs, key)
		}
		value := tokens.Remainder()
		tokens.End()
		if err := dbg.prefs.set(strings.ToLower(key), value); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%s set to %s", strings.ToLower(key), value)

	default:
		return curated.Errorf("unknown %s option: %s", cmdPrefs, option)
	}

	return nil
}
