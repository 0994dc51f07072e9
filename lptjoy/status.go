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

package lptjoy

import (
	"fmt"

	"github.com/jetsetilly/a8input/vkey"
)

// Sentinal error patterns.
const (
	OpenFailed   = "lptjoy: cannot open %s: %v"
	StatusFailed = "lptjoy: %s: %v"
	Unsupported  = "lptjoy: parallel port joysticks are not supported on this platform"
)

// Status is the value of the parallel port status register.
type Status int

// status lines used by the joystick. the direction lines are inverted before
// being tested
const (
	lineTrigger = 0x08
	lineUp      = 0x10
	lineDown    = 0x20
	lineRight   = 0x40
	lineLeft    = 0x80

	invertMask = 0x78
)

// Stick returns the stick nibble for the status. Opposing directions are
// not possible. Right has priority over left and up has priority over down.
func (s Status) Stick() uint8 {
	v := s ^ invertMask

	n := vkey.StickCentre
	switch {
	case v&lineRight == lineRight:
		n &= vkey.StickRight
	case v&lineLeft == lineLeft:
		n &= vkey.StickLeft
	}
	switch {
	case v&lineUp == lineUp:
		n &= vkey.StickForward
	case v&lineDown == lineDown:
		n &= vkey.StickBack
	}
	return n
}

// Trigger returns the trigger value for the status. The trigger line is not
// inverted.
func (s Status) Trigger() uint8 {
	if s&lineTrigger == lineTrigger {
		return vkey.TriggerReleased
	}
	return vkey.TriggerPressed
}

func (s Status) String() string {
	return fmt.Sprintf("%#02x", int(s))
}
