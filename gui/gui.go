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

// Package gui defines the contract between the emulation and the visual user
// interfaces. Implementations of the GUI interface can be found in the
// sdlplay and termplay sub-packages.
//
// A GUI is both a hardware.Display and a hardware.AudioMixer. Input from the
// GUI is sent to a userinput.Queue, which is attached to the VM as the
// hardware.Input.
package gui

import (
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/prefs"
)

// GUI defines the operations that can be performed on visual user interfaces.
type GUI interface {
	hardware.Display
	hardware.AudioMixer

	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// PreferencesGUI is implemented by GUIs that have their own preference values.
type PreferencesGUI interface {
	Preferences() prefs.Group
}

// Sentinal error returned if GUI does no support requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)
