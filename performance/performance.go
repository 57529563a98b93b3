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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/romloader"
)

// the time allowed for the emulation to settle before measurement begins
const leadTime = time.Second

// Check the performance of the emulator using the supplied program.
//
// Emulation will run for the specified duration and will create a cpu
// profile, a memory profile, a trace (or a combination of those) as defined by
// the Profile argument. If uncapped is false then the cycles are paced at the
// timer tick rate and the result shows how accurately the rate is kept.
func Check(output io.Writer, profile Profile, rom romloader.Loader, prefs *preferences.Preferences, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	vm, err := hardware.NewVM(prefs)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if err := vm.AttachROM(rom); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	if !uncapped {
		lim, err := limiter.NewFPSLimiter(timers.TickRate)
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer lim.Close()
		vm.SetLimiter(lim)
	}

	var startCycle uint64

	runner := func() error {
		// the lead time puts false on the channel. the end of the measurement
		// period puts true on the channel
		timerChan := make(chan bool, 1)
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		return vm.Run(func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Stopped, nil
				}
				startCycle = vm.Cycles()
			default:
			}
			return govern.Running, nil
		})
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numCycles := vm.Cycles() - startCycle
	cps, accuracy := CalcRate(numCycles, dur.Seconds())
	io.WriteString(output, fmt.Sprintf("%.2f cps (%d cycles in %.2f seconds) %.1f%%\n", cps, numCycles, dur.Seconds(), accuracy))

	return nil
}
