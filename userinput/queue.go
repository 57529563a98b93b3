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

package userinput

import "sync"

// QueueSize is the number of events that can be waiting in the queue.
const QueueSize = 256

// Queue collects events from a GUI. Events are sent to the channel returned by
// Events() from any goroutine and are consumed by PollInput().
type Queue struct {
	events chan Event

	crit        sync.Mutex
	controllers Controllers
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue() *Queue {
	return &Queue{
		events: make(chan Event, QueueSize),
	}
}

// Events returns the channel to which events should be sent.
func (q *Queue) Events() chan<- Event {
	return q.events
}

// Push an event onto the queue without blocking. Returns false if the queue
// is full and the event has been dropped.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.events <- ev:
		return true
	default:
		return false
	}
}

// PollInput drains the queue of pending events and returns the resulting
// state of the controllers. The function never blocks.
func (q *Queue) PollInput() (Snapshot, error) {
	q.crit.Lock()
	defer q.crit.Unlock()

	for {
		select {
		case ev := <-q.events:
			q.controllers.HandleUserInput(ev)
		default:
			return q.controllers.Snapshot(), nil
		}
	}
}
