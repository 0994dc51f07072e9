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

import "fmt"

// Code is a virtual key code.
type Code int

// Modifier bits.
const (
	Shift Code = 0x40
	Ctrl  Code = 0x80
)

// Special codes. These are never ORed with the modifier bits.
const (
	None                Code = -1
	Warmstart           Code = -2
	Coldstart           Code = -3
	Exit                Code = -4
	Break               Code = -5
	UI                  Code = -7
	Screenshot          Code = -8
	ScreenshotInterlace Code = -9
	Start               Code = -10
	Select              Code = -11
	Option              Code = -12
	PBIBlackBoxMenu     Code = -13
	Turbo               Code = -31
	TurboStart          Code = -32
	TurboStop           Code = -33
	Keyboard            Code = -34
)

// CX85 numeric keypad codes.
const (
	CX85_1 Code = -14 - iota
	CX85_2
	CX85_3
	CX85_4
	CX85_5
	CX85_6
	CX85_7
	CX85_8
	CX85_9
	CX85_0
	CX85_Period
	CX85_Minus
	CX85_PlusEnter
	CX85_Escape
	CX85_No
	CX85_Delete
	CX85_Yes
)

// Unmodified key codes.
const (
	L          Code = 0x00
	J          Code = 0x01
	Semicolon  Code = 0x02
	F1         Code = 0x03
	F2         Code = 0x04
	K          Code = 0x05
	Plus       Code = 0x06
	Asterisk   Code = 0x07
	O          Code = 0x08
	P          Code = 0x0a
	U          Code = 0x0b
	Return     Code = 0x0c
	I          Code = 0x0d
	Minus      Code = 0x0e
	Equal      Code = 0x0f
	V          Code = 0x10
	Help       Code = 0x11
	C          Code = 0x12
	F3         Code = 0x13
	F4         Code = 0x14
	B          Code = 0x15
	X          Code = 0x16
	Z          Code = 0x17
	Key4       Code = 0x18
	Key3       Code = 0x1a
	Key6       Code = 0x1b
	Escape     Code = 0x1c
	Key5       Code = 0x1d
	Key2       Code = 0x1e
	Key1       Code = 0x1f
	Comma      Code = 0x20
	Space      Code = 0x21
	FullStop   Code = 0x22
	N          Code = 0x23
	M          Code = 0x25
	Slash      Code = 0x26
	Atari      Code = 0x27
	R          Code = 0x28
	E          Code = 0x2a
	Y          Code = 0x2b
	Tab        Code = 0x2c
	T          Code = 0x2d
	W          Code = 0x2e
	Q          Code = 0x2f
	Key9       Code = 0x30
	Key0       Code = 0x32
	Key7       Code = 0x33
	Backspace  Code = 0x34
	Key8       Code = 0x35
	Less       Code = 0x36
	Greater    Code = 0x37
	F          Code = 0x38
	H          Code = 0x39
	D          Code = 0x3a
	CapsToggle Code = 0x3c
	G          Code = 0x3d
	S          Code = 0x3e
	A          Code = 0x3f
	CapsLock   Code = 0x7c
)

// Codes that require a modifier.
const (
	Up           = Ctrl | Minus
	Down         = Ctrl | Equal
	Left         = Ctrl | Plus
	Right        = Ctrl | Asterisk
	Clear        = Shift | Less
	InsertChar   = Ctrl | Greater
	InsertLine   = Shift | Greater
	DeleteChar   = Ctrl | Backspace
	DeleteLine   = Shift | Backspace
	Exclamation  = Shift | Key1
	DoubleQuote  = Shift | Key2
	Hash         = Shift | Key3
	Dollar       = Shift | Key4
	Percent      = Shift | Key5
	Ampersand    = Shift | Key6
	Quote        = Shift | Key7
	At           = Shift | Key8
	ParenLeft    = Shift | Key9
	ParenRight   = Shift | Key0
	Underscore   = Shift | Minus
	Bar          = Shift | Equal
	Colon        = Shift | Semicolon
	Backslash    = Shift | Plus
	Circumflex   = Shift | Asterisk
	BracketLeft  = Shift | Comma
	BracketRight = Shift | FullStop
	Question     = Shift | Slash
)

// 5200 controller keypad codes.
const (
	Key5200Start    Code = 0x39
	Key5200Pause    Code = 0x31
	Key5200Reset    Code = 0x29
	Key5200_0       Code = 0x25
	Key5200_1       Code = 0x3f
	Key5200_2       Code = 0x3d
	Key5200_3       Code = 0x3b
	Key5200_4       Code = 0x37
	Key5200_5       Code = 0x35
	Key5200_6       Code = 0x33
	Key5200_7       Code = 0x2f
	Key5200_8       Code = 0x2d
	Key5200_9       Code = 0x2b
	Key5200Hash     Code = 0x23
	Key5200Asterisk Code = 0x27
)

var specialNames = map[Code]string{
	None:                "NONE",
	Warmstart:           "WARMSTART",
	Coldstart:           "COLDSTART",
	Exit:                "EXIT",
	Break:               "BREAK",
	UI:                  "UI",
	Screenshot:          "SCREENSHOT",
	ScreenshotInterlace: "SCREENSHOT_INTERLACE",
	Start:               "START",
	Select:              "SELECT",
	Option:              "OPTION",
	PBIBlackBoxMenu:     "PBI_BB_MENU",
	Turbo:               "TURBO",
	TurboStart:          "TURBO_START",
	TurboStop:           "TURBO_STOP",
	Keyboard:            "KEYB",
}

// IsSpecial returns true if the code is a request to the emulator rather
// than a key press.
func (c Code) IsSpecial() bool {
	return c < 0
}

// IsCX85 returns true if the code is one of the CX85 keypad codes.
func (c Code) IsCX85() bool {
	return c <= CX85_1 && c >= CX85_Yes
}

func (c Code) String() string {
	if s, ok := specialNames[c]; ok {
		return s
	}
	if c.IsCX85() {
		return fmt.Sprintf("CX85_%d", int(CX85_1-c)+1)
	}
	if c < 0 {
		return fmt.Sprintf("SPECIAL(%d)", int(c))
	}

	s := fmt.Sprintf("%#x", int(c&^(Shift|Ctrl)))
	if c&Shift == Shift {
		s = "SHFT+" + s
	}
	if c&Ctrl == Ctrl {
		s = "CTRL+" + s
	}
	return s
}
