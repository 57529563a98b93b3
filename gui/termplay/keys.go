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
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/userinput"
)

// decodeKeys converts bytes read from a terminal in raw mode to key names.
// The key names are the same as those used by the SDL GUI. Bytes that do not
// represent a key of interest are ignored. The quit return value is true if
// the interrupt character was seen.
func decodeKeys(b []byte) (keys []string, quit bool) {
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == easyterm.KeyInterrupt:
			quit = true
		case c == easyterm.KeyEsc:
			// a cursor sequence is ignored entirely. an escape character
			// on its own is the escape key
			if i+1 < len(b) && b[i+1] == easyterm.EscCursor {
				i += 2
				continue
			}
			keys = append(keys, "Escape")
		case c >= 'a' && c <= 'z':
			keys = append(keys, string(rune(c-'a'+'A')))
		case c >= 'A' && c <= 'Z':
			keys = append(keys, string(rune(c)))
		case c >= '0' && c <= '9':
			keys = append(keys, string(rune(c)))
		}
	}
	return keys, quit
}

// holder turns key presses into press and release events. a key is released
// when it has not been pressed for the hold duration.
type holder struct {
	crit sync.Mutex
	hold time.Duration
	held map[string]*heldKey
	push func(userinput.Event) bool
}

type heldKey struct {
	timer *time.Timer
}

func newHolder(hold time.Duration, push func(userinput.Event) bool) *holder {
	return &holder{
		hold: hold,
		held: make(map[string]*heldKey),
		push: push,
	}
}

// press the key. a key that is already held has its release time extended and
// no new event is sent
func (h *holder) press(key string) {
	h.crit.Lock()
	defer h.crit.Unlock()

	if k, ok := h.held[key]; ok {
		if k.timer.Stop() {
			k.timer.Reset(h.hold)
			return
		}
	}

	h.push(userinput.EventKeyboard{Key: key, Down: true})

	k := &heldKey{}
	k.timer = time.AfterFunc(h.hold, func() {
		h.release(key, k)
	})
	h.held[key] = k
}

// release the key if it is still held by the same press
func (h *holder) release(key string, k *heldKey) {
	h.crit.Lock()
	defer h.crit.Unlock()

	if h.held[key] != k {
		return
	}

	delete(h.held, key)
	h.push(userinput.EventKeyboard{Key: key, Down: false})
}

// releaseAll stops all timers without sending release events.
func (h *holder) releaseAll() {
	h.crit.Lock()
	defer h.crit.Unlock()
	for key, k := range h.held {
		k.timer.Stop()
		delete(h.held, key)
	}
}
