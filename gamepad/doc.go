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

// Package gamepad turns samples from a physical gamepad into the state of an
// emulated joystick.
//
// The analogue stick is discretised into one of nine positions by Classify().
// In square mode each axis is compared against the deadzone with a small
// amount of hysteresis. In radial mode the stick is centred while it is
// inside a circle of radius deadzone and is otherwise assigned to the nearest
// of eight 45° sectors.
//
// Each of the sixteen physical buttons is assigned a Function. A second bank
// of functions is used while a button assigned FunctionSpecialHold is held.
// Hold and toggle functions drive the fire button and the console keys.
// Other functions produce virtual key codes, one per frame, through
// Pad.Key().
//
// Autofire is a square wave with a period of twice the configured number of
// frames. A fire button held while autofire is active cancels the fire for
// the frames in which autofire would be firing.
package gamepad
