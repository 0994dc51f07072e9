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

package terminal_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/a8input/terminal"
	"github.com/jetsetilly/a8input/test"
	"github.com/jetsetilly/a8input/userinput"
)

// pollUntilQuit polls the host until it returns an EventQuit. The result is
// the concatenation of every poll.
func pollUntilQuit(t *testing.T, h *terminal.Host) []userinput.Event {
	t.Helper()

	var events []userinput.Event
	for i := 0; i < 1000; i++ {
		evs := h.PollEvents()
		events = append(events, evs...)
		for _, ev := range evs {
			if _, ok := ev.(userinput.EventQuit); ok {
				return events
			}
		}
		time.Sleep(time.Millisecond)
	}

	t.Fatalf("no quit event")
	return nil
}

func TestHost(t *testing.T) {
	h := terminal.NewHost(strings.NewReader("ab\x1b[A"))
	test.ExpectEquality(t, h.NumGamepads(), 0)
	_, err := h.OpenGamepad(0)
	test.ExpectFailure(t, err)

	events := pollUntilQuit(t, h)

	expected := []userinput.Event{
		userinput.EventKeyboard{Key: userinput.KeyA, Rune: 'a', Down: true},
		userinput.EventKeyboard{Key: userinput.KeyA},
		userinput.EventKeyboard{Key: userinput.KeyB, Rune: 'b', Down: true},
		userinput.EventKeyboard{Key: userinput.KeyB},
		userinput.EventKeyboard{Key: userinput.KeyUp, Down: true},
		userinput.EventKeyboard{Key: userinput.KeyUp},
		userinput.EventQuit{},
	}

	if !test.ExpectEquality(t, len(events), len(expected)) {
		return
	}
	for i := range events {
		test.ExpectEquality(t, events[i], expected[i], i)
	}

	// nothing more once quit has been delivered
	test.ExpectEquality(t, len(h.PollEvents()), 0)
}

func TestHostOnePressPerPoll(t *testing.T) {
	h := terminal.NewHost(strings.NewReader("xy"))

	// wait for both keystrokes to arrive before the first poll
	time.Sleep(50 * time.Millisecond)

	evs := h.PollEvents()
	if test.ExpectEquality(t, len(evs), 1) {
		test.ExpectEquality(t, evs[0], userinput.Event(userinput.EventKeyboard{Key: userinput.KeyX, Rune: 'x', Down: true}))
	}

	evs = h.PollEvents()
	if test.ExpectEquality(t, len(evs), 2) {
		test.ExpectEquality(t, evs[0], userinput.Event(userinput.EventKeyboard{Key: userinput.KeyX}))
		test.ExpectEquality(t, evs[1], userinput.Event(userinput.EventKeyboard{Key: userinput.KeyY, Rune: 'y', Down: true}))
	}
}
