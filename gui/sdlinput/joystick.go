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

package sdlinput

import (
	"github.com/jetsetilly/a8input/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// joystick implements the userinput.Gamepad interface.
type joystick struct {
	joy *sdl.Joystick
}

func (j *joystick) Name() string {
	return j.joy.Name()
}

func (j *joystick) NumButtons() int {
	return j.joy.NumButtons()
}

func (j *joystick) Sample() userinput.GamepadSample {
	var s userinput.GamepadSample

	if j.joy.NumAxes() >= 2 {
		s.X = j.joy.Axis(0)
		s.Y = j.joy.Axis(1)
	}

	// SDL hat bits are the same as the userinput bits
	if j.joy.NumHats() > 0 {
		s.Hat = userinput.HatDirection(j.joy.Hat(0))
	}

	n := j.joy.NumButtons()
	if n > userinput.MaxButtons {
		n = userinput.MaxButtons
	}
	for i := 0; i < n; i++ {
		if j.joy.Button(i) != 0 {
			s.Buttons |= 1 << i
		}
	}

	return s
}

func (j *joystick) Close() error {
	j.joy.Close()
	return nil
}
