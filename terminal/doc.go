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

// Package terminal is a host for the input subsystem that reads the keyboard
// from a posix terminal. It has no gamepads.
//
// A terminal only reports that a key has been typed so every keystroke is
// presented to the input subsystem as a key press followed by a key release
// on the next poll. Keystrokes that arrive together are delivered one per
// poll so that none are lost.
package terminal
