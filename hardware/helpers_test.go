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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/instance"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

// rom creates a loader for a program made from instruction words.
func rom(words ...uint16) romloader.Loader {
	data := make([]byte, 0, len(words)*2)
	for _, w := range words {
		data = append(data, uint8(w>>8), uint8(w))
	}
	return romloader.NewLoaderFromData("test", data)
}

// newVM creates a VM suitable for testing and attaches the program. the
// preferences are set to their default values except for the number of
// instructions per cycle.
func newVM(t *testing.T, ipc int, words ...uint16) *hardware.VM {
	t.Helper()
	return newVMWithPrefs(t, nil, ipc, words...)
}

func newVMWithPrefs(t *testing.T, prefs *preferences.Preferences, ipc int, words ...uint16) *hardware.VM {
	t.Helper()

	vm, err := hardware.NewVM(prefs)
	test.DemandSuccess(t, err)

	vm.Instance.Label = instance.Testing
	vm.Instance.Random.ZeroSeed = true
	test.DemandSuccess(t, vm.Instance.Prefs.InstructionsPerCycle.Set(ipc))

	test.DemandSuccess(t, vm.AttachROM(rom(words...)))

	return vm
}

// display counts the number of times the framebuffer has been presented.
type display struct {
	presents int
	last     string
}

func (d *display) Present(fb *framebuffer.Framebuffer) error {
	d.presents++
	d.last = fb.String()
	return nil
}

// mixer records every tone state it receives.
type mixer struct {
	tones []bool
	ended bool
}

func (m *mixer) SetTone(active bool) error {
	m.tones = append(m.tones, active)
	return nil
}

func (m *mixer) EndMixing() error {
	m.ended = true
	return nil
}

// cycle runs the specified number of cycles. the test fails immediately on
// error
func cycle(t *testing.T, vm *hardware.VM, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, vm.Cycle())
	}
}
