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

package easyterm

// list of ASCII codes for non-alphanumeric characters
const (
	KeyBackspaceCtrlH = 8
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscCursor = '['
	EscSS3    = 'O'
)

// list of ASCII code for characters that can end an EscCursor or EscSS3
// sequence
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorHome     = 'H'
	CursorEnd      = 'F'
	CursorTilde    = '~'
)

// list of ASCII code for characters that end an EscSS3 sequence for the
// first four function keys
const (
	SS3F1 = 'P'
	SS3F2 = 'Q'
	SS3F3 = 'R'
	SS3F4 = 'S'
)

// list of parameter values preceding CursorTilde
const (
	TildeHome     = 1
	TildeInsert   = 2
	TildeDelete   = 3
	TildeEnd      = 4
	TildePageUp   = 5
	TildePageDown = 6
	TildeHomeAlt  = 7
	TildeEndAlt   = 8
	TildeF5       = 15
	TildeF6       = 17
	TildeF7       = 18
	TildeF8       = 19
	TildeF9       = 20
	TildeF10      = 21
	TildeF11      = 23
	TildeF12      = 24
)

// the modifier parameter of a CSI sequence is one plus the sum of these bits
const (
	ModShift = 1
	ModAlt   = 2
	ModCtrl  = 4
)
