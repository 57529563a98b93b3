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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Close()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		runCycle()
//	}
//
// If the work between calls to Wait() takes longer than the period of the
// limiter then the overrun is logged and the next Wait() returns as soon as
// the next tick arrives. Missed ticks are dropped and there is never a burst of
// catch-up ticks.
package limiter

import (
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	crit            sync.Mutex
	framesPerSecond int
	secondsPerFrame time.Duration

	ticker *time.Ticker

	// the time the previous call to Wait() returned
	last time.Time

	// the number of periods in which the work took longer than the period
	overruns int
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf("limiter: frames per second must be positive (%d)", framesPerSecond)
	}

	lim := &FpsLimiter{}
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	lim.ticker = time.NewTicker(lim.secondsPerFrame)

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: frames per second must be positive (%d)", framesPerSecond)
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Second / time.Duration(framesPerSecond)
	lim.ticker.Reset(lim.secondsPerFrame)

	return nil
}

// Limit returns the current frames per second.
func (lim *FpsLimiter) Limit() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	lim.checkOverrun()
	<-lim.ticker.C
	lim.crit.Lock()
	lim.last = time.Now()
	lim.crit.Unlock()
}

func (lim *FpsLimiter) checkOverrun() {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	if lim.last.IsZero() {
		return
	}

	if d := time.Since(lim.last); d > lim.secondsPerFrame {
		lim.overruns++
		logger.Logf(logger.Allow, "limiter", "period overrun by %v", d-lim.secondsPerFrame)
	}
}

// Overruns returns the number of periods in which the work between calls to
// Wait() took longer than the period.
func (lim *FpsLimiter) Overruns() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.overruns
}

// Close stops the limiter. The limiter should not be used after Close() has
// been called.
func (lim *FpsLimiter) Close() {
	lim.ticker.Stop()
}
