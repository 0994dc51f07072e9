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

// HatDirection is the state of a gamepad's hat (or dpad). Diagonals are
// formed by ORing two directions.
type HatDirection uint8

// List of valid HatDirection bits.
const (
	HatCentre HatDirection = 0x00
	HatUp     HatDirection = 0x01
	HatRight  HatDirection = 0x02
	HatDown   HatDirection = 0x04
	HatLeft   HatDirection = 0x08
)

// MaxButtons is the maximum number of physical buttons read from a gamepad.
const MaxButtons = 16

// GamepadSample is the state of a gamepad at the moment it was sampled. X and
// Y are the first two analogue axes. Bit n of Buttons is set if physical
// button n is held.
type GamepadSample struct {
	X       int16
	Y       int16
	Hat     HatDirection
	Buttons uint32
}

// Gamepad is an opened gamepad device.
type Gamepad interface {
	Name() string
	NumButtons() int
	Sample() GamepadSample
	Close() error
}

// Host is the source of raw input. PollEvents() returns the events that have
// arrived since the previous call.
type Host interface {
	PollEvents() []Event
	NumGamepads() int
	OpenGamepad(idx int) (Gamepad, error)
}
