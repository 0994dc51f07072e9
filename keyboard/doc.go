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

// Package keyboard translates host key transitions into virtual key codes.
//
// The Translator is given the events that have arrived since the previous
// frame and returns a single Result. The most recent key event decides the
// key code, so only one key is reported per frame.
//
// The rules are evaluated in the following order. The first rule that
// produces a result ends the translation.
//
//   - chords of the chord key (left alt by default) and another key
//   - the bound system keys (reset, exit, menu, monitor, help, break,
//     screenshot and turbo)
//   - keys bound to an enabled keyboard joystick, which are swallowed
//   - the 5200 keypad, when emulating the 5200
//   - keys without a printable representation (cursor keys, return, etc.)
//   - the CX85 keypad, when enabled
//   - control and a digit or punctuation key
//   - the code-point of the key
//
// The console keys (start, select and option) are sampled from the held keys
// on every frame regardless of the key code.
package keyboard
