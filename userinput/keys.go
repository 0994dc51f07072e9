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

import "fmt"

// Key identifies a key on the host keyboard.
type Key int32

// ScancodeMask is ORed with a scancode to form the Key for keys that do not
// have a printable representation.
const ScancodeMask = 1 << 30

func fromScancode(sc int32) Key {
	return Key(sc | ScancodeMask)
}

// KeyNone is the zero Key. No host key has this value.
const KeyNone Key = 0

// Printable keys.
const (
	KeyBackspace    Key = 8
	KeyTab          Key = 9
	KeyReturn       Key = 13
	KeyEscape       Key = 27
	KeySpace        Key = ' '
	KeyQuote        Key = '\''
	KeyComma        Key = ','
	KeyMinus        Key = '-'
	KeyPeriod       Key = '.'
	KeySlash        Key = '/'
	Key0            Key = '0'
	Key1            Key = '1'
	Key2            Key = '2'
	Key3            Key = '3'
	Key4            Key = '4'
	Key5            Key = '5'
	Key6            Key = '6'
	Key7            Key = '7'
	Key8            Key = '8'
	Key9            Key = '9'
	KeySemicolon    Key = ';'
	KeyEquals       Key = '='
	KeyLeftBracket  Key = '['
	KeyBackslash    Key = '\\'
	KeyRightBracket Key = ']'
	KeyBackquote    Key = '`'
	KeyA            Key = 'a'
	KeyB            Key = 'b'
	KeyC            Key = 'c'
	KeyD            Key = 'd'
	KeyE            Key = 'e'
	KeyF            Key = 'f'
	KeyG            Key = 'g'
	KeyH            Key = 'h'
	KeyI            Key = 'i'
	KeyJ            Key = 'j'
	KeyK            Key = 'k'
	KeyL            Key = 'l'
	KeyM            Key = 'm'
	KeyN            Key = 'n'
	KeyO            Key = 'o'
	KeyP            Key = 'p'
	KeyQ            Key = 'q'
	KeyR            Key = 'r'
	KeyS            Key = 's'
	KeyT            Key = 't'
	KeyU            Key = 'u'
	KeyV            Key = 'v'
	KeyW            Key = 'w'
	KeyX            Key = 'x'
	KeyY            Key = 'y'
	KeyZ            Key = 'z'
	KeyDelete       Key = 127
)

// Non-printable keys.
var (
	KeyCapsLock   = fromScancode(57)
	KeyF1         = fromScancode(58)
	KeyF2         = fromScancode(59)
	KeyF3         = fromScancode(60)
	KeyF4         = fromScancode(61)
	KeyF5         = fromScancode(62)
	KeyF6         = fromScancode(63)
	KeyF7         = fromScancode(64)
	KeyF8         = fromScancode(65)
	KeyF9         = fromScancode(66)
	KeyF10        = fromScancode(67)
	KeyF11        = fromScancode(68)
	KeyF12        = fromScancode(69)
	KeyPause      = fromScancode(72)
	KeyInsert     = fromScancode(73)
	KeyHome       = fromScancode(74)
	KeyPageUp     = fromScancode(75)
	KeyEnd        = fromScancode(77)
	KeyPageDown   = fromScancode(78)
	KeyRight      = fromScancode(79)
	KeyLeft       = fromScancode(80)
	KeyDown       = fromScancode(81)
	KeyUp         = fromScancode(82)
	KeyKPDivide   = fromScancode(84)
	KeyKPMultiply = fromScancode(85)
	KeyKPMinus    = fromScancode(86)
	KeyKPPlus     = fromScancode(87)
	KeyKPEnter    = fromScancode(88)
	KeyKP1        = fromScancode(89)
	KeyKP2        = fromScancode(90)
	KeyKP3        = fromScancode(91)
	KeyKP4        = fromScancode(92)
	KeyKP5        = fromScancode(93)
	KeyKP6        = fromScancode(94)
	KeyKP7        = fromScancode(95)
	KeyKP8        = fromScancode(96)
	KeyKP9        = fromScancode(97)
	KeyKP0        = fromScancode(98)
	KeyKPPeriod   = fromScancode(99)
	KeyLCtrl      = fromScancode(224)
	KeyLShift     = fromScancode(225)
	KeyLAlt       = fromScancode(226)
	KeyLGui       = fromScancode(227)
	KeyRCtrl      = fromScancode(228)
	KeyRShift     = fromScancode(229)
	KeyRAlt       = fromScancode(230)
	KeyRGui       = fromScancode(231)
)

var keyNames = map[Key]string{
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeyReturn:     "Return",
	KeyEscape:     "Escape",
	KeySpace:      "Space",
	KeyDelete:     "Delete",
	KeyCapsLock:   "CapsLock",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
	KeyPause:      "Pause",
	KeyInsert:     "Insert",
	KeyHome:       "Home",
	KeyPageUp:     "PageUp",
	KeyEnd:        "End",
	KeyPageDown:   "PageDown",
	KeyRight:      "Right",
	KeyLeft:       "Left",
	KeyDown:       "Down",
	KeyUp:         "Up",
	KeyKPDivide:   "Keypad /",
	KeyKPMultiply: "Keypad *",
	KeyKPMinus:    "Keypad -",
	KeyKPPlus:     "Keypad +",
	KeyKPEnter:    "Keypad Enter",
	KeyKP1:        "Keypad 1",
	KeyKP2:        "Keypad 2",
	KeyKP3:        "Keypad 3",
	KeyKP4:        "Keypad 4",
	KeyKP5:        "Keypad 5",
	KeyKP6:        "Keypad 6",
	KeyKP7:        "Keypad 7",
	KeyKP8:        "Keypad 8",
	KeyKP9:        "Keypad 9",
	KeyKP0:        "Keypad 0",
	KeyKPPeriod:   "Keypad .",
	KeyLCtrl:      "Left Ctrl",
	KeyLShift:     "Left Shift",
	KeyLAlt:       "Left Alt",
	KeyLGui:       "Left GUI",
	KeyRCtrl:      "Right Ctrl",
	KeyRShift:     "Right Shift",
	KeyRAlt:       "Right Alt",
	KeyRGui:       "Right GUI",
}

func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	if k > ' ' && k < 127 {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int32(k))
}

// KeyMod is the state of the modifier keys at the time of a keyboard event.
type KeyMod uint16

// List of valid KeyMod bits.
const (
	KeyModNone   KeyMod = 0x0000
	KeyModLShift KeyMod = 0x0001
	KeyModRShift KeyMod = 0x0002
	KeyModLCtrl  KeyMod = 0x0040
	KeyModRCtrl  KeyMod = 0x0080
	KeyModLAlt   KeyMod = 0x0100
	KeyModRAlt   KeyMod = 0x0200
	KeyModLGui   KeyMod = 0x0400
	KeyModRGui   KeyMod = 0x0800
	KeyModCaps   KeyMod = 0x2000

	KeyModShift = KeyModLShift | KeyModRShift
	KeyModCtrl  = KeyModLCtrl | KeyModRCtrl
	KeyModAlt   = KeyModLAlt | KeyModRAlt
)

// maximum scancode for a valid Key
const maxScancode = 512

// Valid returns true if the value is in the range of valid Key values.
func (k Key) Valid() bool {
	if k&ScancodeMask == ScancodeMask {
		sc := k &^ ScancodeMask
		return sc > 0 && sc < maxScancode
	}
	return k > 0 && k < ScancodeMask
}
