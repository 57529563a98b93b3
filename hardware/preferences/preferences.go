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

// Package preferences contains the preference values that affect the
// behaviour of the emulated hardware.
package preferences

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// limits for the InstructionsPerCycle value.
const (
	MinInstructionsPerCycle = 1
	MaxInstructionsPerCycle = 1000
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the number of instructions executed in every 60Hz cycle. the default of
	// 10 gives an effective instruction rate of 600 instructions per second
	InstructionsPerCycle prefs.Int

	// stop the virtual machine when an execution fault occurs. if false then
	// the faulting instruction is skipped
	HaltOnFault prefs.Bool

	// present the framebuffer to the display on every cycle. if false then
	// the display is only presented when a redraw was requested by an
	// instruction
	PresentAlways prefs.Bool

	// the instruction set quirks that differ between implementations of the
	// virtual machine
	Quirks Quirks
}

// Quirks are the instruction set behaviours that differ between historical
// implementations.
type Quirks struct {
	// 8XY6 and 8XYE shift VY rather than VX (the result is stored in VX)
	ShiftVY prefs.Bool

	// FX55 and FX65 leave the I register incremented by X+1
	LoadStore prefs.Bool

	// BNNN jumps to XNN+VX rather than NNN+V0
	JumpVX prefs.Bool

	// 8XY1, 8XY2 and 8XY3 reset VF to zero
	VFReset prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file and from the top of the
// command line stack.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.InstructionsPerCycle.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < MinInstructionsPerCycle || n > MaxInstructionsPerCycle {
			return curated.Errorf("preferences: instructions per cycle must be between %d and %d",
				MinInstructionsPerCycle, MaxInstructionsPerCycle)
		}
		return nil
	})

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Add("hardware.ipc", &p.InstructionsPerCycle)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("hardware.haltonfault", &p.HaltOnFault)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("hardware.presentalways", &p.PresentAlways)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("quirks.shiftvy", &p.Quirks.ShiftVY)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("quirks.loadstore", &p.Quirks.LoadStore)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("quirks.jumpvx", &p.Quirks.JumpVX)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}
	err = p.dsk.Add("quirks.vfreset", &p.Quirks.VFReset)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.InstructionsPerCycle.Set(10)
	_ = p.HaltOnFault.Set(true)
	_ = p.PresentAlways.Set(true)
	_ = p.Quirks.ShiftVY.Set(false)
	_ = p.Quirks.LoadStore.Set(false)
	_ = p.Quirks.JumpVX.Set(false)
	_ = p.Quirks.VFReset.Set(false)
}

// Load hardware preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Set the preference value with the key. Returns false if the key is not a
// hardware preference.
func (p *Preferences) Set(key string, value prefs.Value) (bool, error) {
	return p.dsk.Set(key, value)
}
