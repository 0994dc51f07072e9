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

package monitor

import (
	"time"

	"github.com/jetsetilly/a8input/input"
	"github.com/jetsetilly/a8input/keyboard"
)

// FrameState is the JSON representation of an input.Frame.
type FrameState struct {
	Key      string   `json:"key"`
	KeyCode  int      `json:"keyCode"`
	Ports    [4]uint8 `json:"ports"`
	Triggers [4]uint8 `json:"triggers"`
	Console  uint8    `json:"console"`
	Action   string   `json:"action,omitempty"`
	Adjust   int      `json:"adjust,omitempty"`
	Menu     string   `json:"menu,omitempty"`
}

// NewFrameState converts an input.Frame.
func NewFrameState(f input.Frame) *FrameState {
	st := &FrameState{
		Key:      f.Key.String(),
		KeyCode:  int(f.Key),
		Ports:    f.Ports,
		Triggers: f.Triggers,
		Console:  f.Console,
		Adjust:   f.Adjust,
	}
	if f.Action != keyboard.ActionNone {
		st.Action = f.Action.String()
	}
	if f.Menu != keyboard.MenuNone {
		st.Menu = f.Menu.String()
	}
	return st
}

// Message is sent from the server to the client.
type Message struct {
	// "full" or "frame"
	Type string `json:"type"`

	// sequence number for ordering
	Seq int64 `json:"seq"`

	// unix timestamp in milliseconds
	Timestamp int64 `json:"timestamp"`

	// number of frames arbitrated since the monitor started
	Frames int64 `json:"frames"`

	Frame *FrameState `json:"frame"`
}

// list of valid Message.Type values
const (
	MessageFull  = "full"
	MessageFrame = "frame"
)

func newMessage(typ string, seq int64, frames int64, f input.Frame) *Message {
	return &Message{
		Type:      typ,
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Frames:    frames,
		Frame:     NewFrameState(f),
	}
}
