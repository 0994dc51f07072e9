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

// Package userinput describes input from the real hardware that the user of
// the emulator is holding. It is the translation layer between a host
// implementation (SDL, a terminal) and the input subsystem. As such the
// package attempts to hide the details of the host while keeping the input
// subsystem free of host types.
//
// Key values use the SDL2 keycode numbering. Printable keys are their
// lower-case ASCII value and other keys are the scancode ORed with
// ScancodeMask. A host that is not SDL must translate into this numbering.
//
// Hosts that read input on another goroutine should push events into a Queue
// and drain it from PollEvents().
package userinput
