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

// Package instance defines those parts of the emulation that might change from
// instance to instance of the VM type, but is not actually the VM itself.
//
// Particularly useful when running more than one instance of the emulation in
// the same process.
package instance

import (
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/random"
)

// Label indicates the context of the instance.
type Label string

// List of valid Label values.
const (
	Main    Label = ""
	Testing Label = "testing"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the VM type, but is not actually the VM
// itself.
type Instance struct {
	Label Label

	Random *random.Random

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance type.
//
// The prefs argument can be nil and a new prefs instance will be created.
// Providing a non-nil value allows the preferences of more than one VM
// instance to be synchronised.
func NewInstance(clock random.Clock, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(clock),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// testing and for the digest of headless runs, where the results must be the
// same for every run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}

// AllowLogging implements the logger.Permission interface. Testing instances
// are not allowed to add entries to the central log.
func (ins *Instance) AllowLogging() bool {
	return ins.Label != Testing
}
