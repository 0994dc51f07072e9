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

// Package input arbitrates between the input devices of the host and
// produces a single Frame of emulated input for every emulated video frame.
//
// The devices are the keyboard (including the keyboard joysticks), up to
// four gamepads and up to two joysticks on a parallel port. A Subsystem is
// created with NewSubsystem() and the devices of a host are found with
// Enumerate(). The Arbitrate() function should then be called once per frame.
//
// Arbitration follows these rules:
//
//	The key code is the key from the keyboard. If no key is pressed on the
//	keyboard then the key is the key from the first gamepad that has one.
//
//	The console keys are the keys held on the keyboard combined with the
//	console buttons held on every gamepad.
//
//	The stick for ports 0 and 1 start with the keyboard joysticks (swapped
//	if the ports are swapped) and are combined with the parallel port
//	joystick for that port. If there is no parallel port joystick the
//	gamepad with the same number is used instead. Ports 2 and 3 take the
//	stick from gamepads 2 and 3.
//
//	Triggers are formed in the same way except that the gamepad trigger is
//	always combined with the trigger for the port, even if a parallel port
//	joystick is present.
//
// The values in a Frame are active-low, in the same way as the Atari
// hardware: a stick nibble of 0x0f is centred and a trigger of 1 is
// released. The query functions of the Subsystem, KeyCode(), Port(),
// Trigger(), etc. all refer to the most recent call to Arbitrate().
//
// The Subsystem is not safe for concurrent use. Frames can be passed to
// another goroutine with an Observer.
package input
