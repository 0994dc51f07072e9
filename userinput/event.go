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

// Event describes any user input event that the input subsystem understands.
type Event interface{}

// EventQuit is sent when the host window has been closed.
type EventQuit struct{}

// EventKeyboard is a key transition. Rune is the code-point produced by the
// key with the modifiers applied, or zero if there is none.
type EventKeyboard struct {
	Key  Key
	Mod  KeyMod
	Rune rune
	Down bool
}
