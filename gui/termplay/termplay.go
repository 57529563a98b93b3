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
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// TermPlay is a terminal implementation of the gui.GUI interface.
type TermPlay struct {
	term  easyterm.Terminal
	queue *userinput.Queue
	keys  *holder

	Prefs *Preferences

	// the output is only redrawn when the contents of the framebuffer or the
	// status line have changed
	crit   sync.Mutex
	pixels [framebuffer.Width * framebuffer.Height]bool
	drawn  bool
	title  string
	state  govern.State
	tone   bool

	// closed when the GUI is destroyed
	done chan bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type. Key events are sent to the queue.
func NewTermPlay(queue *userinput.Queue) (*TermPlay, error) {
	tp := &TermPlay{
		queue: queue,
		title: "Gopher8",
		state: govern.Running,
		done:  make(chan bool),
	}

	var err error

	tp.Prefs, err = newPreferences()
	if err != nil {
		return nil, err
	}

	err = tp.term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return nil, curated.Errorf("termplay: %v", err)
	}

	geom := tp.term.Geometry()
	if geom.Cols < framebuffer.Width || geom.Rows < framebuffer.Height/2+1 {
		logger.Logf(logger.Allow, "termplay", "terminal is smaller than display (%dx%d)", geom.Cols, geom.Rows)
	}

	hold := time.Duration(tp.Prefs.HoldMS.Get().(int)) * time.Millisecond
	tp.keys = newHolder(hold, queue.Push)

	tp.term.RawMode()
	tp.term.Print("%s%s", easyterm.HideCursor, easyterm.ClearScreen)

	go tp.readInput()

	return tp, nil
}

// readInput runs until the input file is closed or the GUI is destroyed.
func (tp *TermPlay) readInput() {
	b := make([]byte, 32)
	for {
		n, err := tp.term.Input().Read(b)

		select {
		case <-tp.done:
			return
		default:
		}

		if err != nil {
			if err != io.EOF {
				logger.Log(logger.Allow, "termplay", err)
			}
			return
		}

		keys, quit := decodeKeys(b[:n])
		if quit {
			tp.queue.Push(userinput.EventQuit{})
		}
		for _, k := range keys {
			tp.keys.press(k)
		}
	}
}

// Present implements the hardware.Display interface.
func (tp *TermPlay) Present(fb *framebuffer.Framebuffer) error {
	pixels := fb.Pixels()

	tp.crit.Lock()
	defer tp.crit.Unlock()

	if tp.drawn && pixels == tp.pixels {
		return nil
	}
	tp.pixels = pixels

	return tp.draw()
}

// draw must be called with the critical section locked.
func (tp *TermPlay) draw() error {
	tp.drawn = true
	status := fmt.Sprintf("%s [%s]", tp.title, tp.state)
	if err := render(tp.term.Output(), &tp.pixels, status); err != nil {
		return curated.Errorf("termplay: %v", err)
	}
	return nil
}

// SetTone implements the hardware.AudioMixer interface. The terminal bell is
// rung when the tone starts.
func (tp *TermPlay) SetTone(active bool) error {
	tp.crit.Lock()
	defer tp.crit.Unlock()

	if active && !tp.tone {
		tp.term.Print(easyterm.Bell)
	}
	tp.tone = active

	return nil
}

// EndMixing implements the hardware.AudioMixer interface.
func (tp *TermPlay) EndMixing() error {
	return tp.SetTone(false)
}

// SetFeature implements the gui.GUI interface.
func (tp *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (err error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf("termplay: %v: %v", request, r)
		}
	}()

	tp.crit.Lock()
	defer tp.crit.Unlock()

	switch request {
	case gui.ReqSetTitle:
		tp.title = fmt.Sprintf("Gopher8 - %s", args[0].(string))
		if tp.drawn {
			return tp.draw()
		}

	case gui.ReqState:
		tp.state = args[0].(govern.State)
		if tp.drawn {
			return tp.draw()
		}

	case gui.ReqSetVisibility:
		// the terminal is always visible

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}

// Service implements the GuiCreator interface. The terminal GUI does not need
// to do anything on the main thread.
func (tp *TermPlay) Service() {
}

// Destroy implements the GuiCreator interface. The terminal is returned to
// canonical mode.
func (tp *TermPlay) Destroy(_ io.Writer) {
	close(tp.done)
	tp.keys.releaseAll()
	tp.term.Print("%s%s\r\n", easyterm.ResetPen, easyterm.ShowCursor)
	tp.term.CleanUp()
}
