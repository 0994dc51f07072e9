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

// Package vkey defines the virtual key codes, console key bits and joystick
// nibble values delivered to the emulation core.
//
// A virtual key code is the keyboard matrix code of the Atari 8-bit keyboard
// with the shift and control modifiers in bits 6 and 7. Negative codes are
// requests to the emulator itself rather than key presses, for example a
// warm start or a request to open the menu. None indicates that no key is
// pressed.
//
// The 5200 console uses its own set of codes for the keypad on the
// controller. These are found in the codes with the Key5200 prefix.
//
// Console keys and joystick directions are active low. A clear bit means the
// key is pressed or the stick is deflected in that direction.
package vkey
