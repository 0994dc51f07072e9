// This file is part of a8input.
//
// a8input is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// a8input is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with a8input.  If not, see <https://www.gnu.org/licenses/>.

package userinput

import "github.com/jetsetilly/a8input/logger"

// Queue is a buffered list of events that can be pushed from any goroutine and
// drained by the input subsystem.
type Queue struct {
	events chan Event
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(size int) *Queue {
	return &Queue{
		events: make(chan Event, size),
	}
}

// Push adds an event to the queue. The event is dropped if the queue is full.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.events <- ev:
		return true
	default:
		logger.Logf(logger.Allow, "userinput", "dropped %T event", ev)
		return false
	}
}

// Drain returns all events in the queue. It never blocks.
func (q *Queue) Drain() []Event {
	var evs []Event
	for {
		select {
		case ev := <-q.events:
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}
