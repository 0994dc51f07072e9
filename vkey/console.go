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

package vkey

// Console key bits. The console value is active low so a pressed key clears
// its bit.
const (
	ConsoleStart  uint8 = 0x01
	ConsoleSelect uint8 = 0x02
	ConsoleOption uint8 = 0x04

	// ConsoleNone is the value when no console keys are pressed.
	ConsoleNone uint8 = 0x07
)

// Joystick nibble values. A port value is the AND of these values for each
// of the deflected directions.
const (
	StickCentre  uint8 = 0x0f
	StickForward uint8 = 0x0e
	StickBack    uint8 = 0x0d
	StickLeft    uint8 = 0x0b
	StickRight   uint8 = 0x07

	// StickMask covers the four direction bits of a single port.
	StickMask uint8 = 0x0f
)

// Trigger values.
const (
	TriggerPressed  uint8 = 0
	TriggerReleased uint8 = 1
)
