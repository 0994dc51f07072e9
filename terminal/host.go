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

package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/input"
	"github.com/jetsetilly/a8input/logger"
	"github.com/jetsetilly/a8input/terminal/easyterm"
	"github.com/jetsetilly/a8input/userinput"
)

// size of the queue between the reading goroutine and the poller
const queueSize = 64

// Host implements the userinput.Host interface.
type Host struct {
	term  *easyterm.Terminal
	queue *userinput.Queue

	// keystrokes not yet delivered to the poller
	pending []userinput.Event

	// the key pressed during the previous poll. it will be released during
	// the next poll
	held userinput.EventKeyboard

	// status line is only printed when it changes
	status string
}

// Create a new host for the terminal. Reading from the input file begins immediately.
func Create(inputFile, outputFile *os.File) (*Host, error) {
	term := &easyterm.Terminal{}
	if err := term.Initialise(inputFile, outputFile); err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	term.CBreakMode()

	h := NewHost(inputFile)
	h.term = term

	return h, nil
}

// NewHost creates a host that reads keystrokes from any reader. The host has
// no status line.
func NewHost(r io.Reader) *Host {
	return &Host{
		queue: Listen(r),
	}
}

// Listen starts a goroutine that decodes the reader into keyboard events.
// An EventQuit is pushed when the reader reaches the end of its input. Each
// keystroke is pushed as a key press only.
func Listen(r io.Reader) *userinput.Queue {
	q := userinput.NewQueue(queueSize)

	go func() {
		var dec Decoder
		buf := make([]byte, 32)
		for {
			n, err := r.Read(buf)
			for _, k := range dec.Decode(buf[:n]) {
				q.Push(userinput.EventKeyboard{
					Key:  k.Key,
					Mod:  k.Mod,
					Rune: k.Rune,
					Down: true,
				})
			}
			if err != nil {
				if err != io.EOF {
					logger.Logf(logger.Allow, "terminal", "%v", err)
				}
				q.Push(userinput.EventQuit{})
				return
			}
		}
	}()

	return q
}

// CleanUp returns the terminal to its normal state.
func (h *Host) CleanUp() {
	if h.term == nil {
		return
	}
	h.term.Print("\n")
	h.term.CleanUp()
}

// PollEvents implements the userinput.Host interface.
func (h *Host) PollEvents() []userinput.Event {
	h.pending = append(h.pending, h.queue.Drain()...)

	var events []userinput.Event

	if h.held.Down {
		h.held.Down = false
		h.held.Rune = 0
		events = append(events, h.held)
	}

	for len(h.pending) > 0 {
		ev := h.pending[0]
		h.pending = h.pending[1:]
		events = append(events, ev)

		if kb, ok := ev.(userinput.EventKeyboard); ok {
			h.held = kb
			break
		}
	}

	return events
}

// NumGamepads implements the userinput.Host interface.
func (h *Host) NumGamepads() int {
	return 0
}

// OpenGamepad implements the userinput.Host interface.
func (h *Host) OpenGamepad(idx int) (userinput.Gamepad, error) {
	return nil, curated.Errorf("terminal: no gamepads")
}

// Arbitrated implements the input.Observer interface. The frame is shown on
// the terminal's status line.
func (h *Host) Arbitrated(f input.Frame) {
	if h.term == nil {
		return
	}

	s := f.String()
	if s == h.status {
		return
	}
	h.status = s

	if cols := h.term.Columns(); cols > 0 && len(s) >= cols {
		s = s[:cols-1]
	}
	h.term.Print("\r%s\033[K", strings.TrimSpace(s))
}
