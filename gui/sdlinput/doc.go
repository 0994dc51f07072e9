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

// Package sdlinput is the SDL host for the input subsystem. It owns the
// window (needed for keyboard focus) and the joystick devices, and converts
// SDL events into userinput events.
//
// SDL must be driven from the main thread. Create() locks the calling
// goroutine to its OS thread and every method must be called from that
// goroutine.
package sdlinput
