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

package input

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/a8input/keyboard"
	"github.com/jetsetilly/a8input/vkey"
)

// NumPorts is the number of joystick ports.
const NumPorts = 4

// Frame is the emulated input for a single frame.
type Frame struct {
	// vkey.None if no key is pressed
	Key vkey.Code

	// active-low stick nibbles
	Ports [NumPorts]uint8

	// vkey.TriggerPressed or vkey.TriggerReleased
	Triggers [NumPorts]uint8

	// active-low console key bits
	Console uint8

	// chord action requested by the keyboard. actions that are handled by
	// the input subsystem are not reported
	Action keyboard.Action
	Adjust int

	// the menu to open if Key is vkey.UI
	Menu keyboard.Menu
}

// NewFrame returns a frame with no input.
func NewFrame() Frame {
	f := Frame{
		Key:     vkey.None,
		Console: vkey.ConsoleNone,
	}
	for i := range f.Ports {
		f.Ports[i] = vkey.StickCentre
		f.Triggers[i] = vkey.TriggerReleased
	}
	return f
}

// Port returns the stick nibble for port n. Returns vkey.StickCentre for
// out of range values.
func (f Frame) Port(n int) uint8 {
	if n < 0 || n >= NumPorts {
		return vkey.StickCentre
	}
	return f.Ports[n]
}

// Trigger returns the trigger value for port n. Returns
// vkey.TriggerReleased for out of range values.
func (f Frame) Trigger(n int) uint8 {
	if n < 0 || n >= NumPorts {
		return vkey.TriggerReleased
	}
	return f.Triggers[n]
}

// PortRegister returns the value of the PIA port register n. Register 0
// holds ports 0 and 1 and register 1 holds ports 2 and 3. The lower numbered
// port is in the lower nibble. Other registers read as 0xff.
func (f Frame) PortRegister(n int) uint8 {
	switch n {
	case 0:
		return f.Ports[1]<<4 | f.Ports[0]&0x0f
	case 1:
		return f.Ports[3]<<4 | f.Ports[2]&0x0f
	}
	return 0xff
}

// TriggerLine returns the value of the GTIA trigger line n. Lines without a
// port read as vkey.TriggerReleased.
func (f Frame) TriggerLine(n int) uint8 {
	return f.Trigger(n)
}

func (f Frame) String() string {
	s := &strings.Builder{}
	if f.Key == vkey.None {
		s.WriteString("key: none")
	} else {
		fmt.Fprintf(s, "key: %s", f.Key)
	}
	for i := range f.Ports {
		fmt.Fprintf(s, " p%d: %x", i, f.Ports[i])
		if f.Triggers[i] == vkey.TriggerPressed {
			s.WriteString("*")
		}
	}
	fmt.Fprintf(s, " consol: %d", f.Console)
	if f.Action != keyboard.ActionNone {
		fmt.Fprintf(s, " action: %s", f.Action)
	}
	return s.String()
}
