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

package terminal

import (
	"unicode/utf8"

	"github.com/jetsetilly/a8input/terminal/easyterm"
	"github.com/jetsetilly/a8input/userinput"
)

// Keystroke is a single key decoded from the terminal's byte stream. A
// terminal reports key presses but never key releases.
type Keystroke struct {
	Key  userinput.Key
	Mod  userinput.KeyMod
	Rune rune
}

// base key for the shifted punctuation of a US keyboard
var unshifted = map[byte]userinput.Key{
	'!': userinput.Key1,
	'@': userinput.Key2,
	'#': userinput.Key3,
	'$': userinput.Key4,
	'%': userinput.Key5,
	'^': userinput.Key6,
	'&': userinput.Key7,
	'*': userinput.Key8,
	'(': userinput.Key9,
	')': userinput.Key0,
	'_': userinput.KeyMinus,
	'+': userinput.KeyEquals,
	'{': userinput.KeyLeftBracket,
	'}': userinput.KeyRightBracket,
	'|': userinput.KeyBackslash,
	':': userinput.KeySemicolon,
	'"': userinput.KeyQuote,
	'<': userinput.KeyComma,
	'>': userinput.KeyPeriod,
	'?': userinput.KeySlash,
	'~': userinput.KeyBackquote,
}

var cursorKeys = map[byte]userinput.Key{
	easyterm.CursorUp:       userinput.KeyUp,
	easyterm.CursorDown:     userinput.KeyDown,
	easyterm.CursorForward:  userinput.KeyRight,
	easyterm.CursorBackward: userinput.KeyLeft,
	easyterm.CursorHome:     userinput.KeyHome,
	easyterm.CursorEnd:      userinput.KeyEnd,
}

var ss3Keys = map[byte]userinput.Key{
	easyterm.SS3F1: userinput.KeyF1,
	easyterm.SS3F2: userinput.KeyF2,
	easyterm.SS3F3: userinput.KeyF3,
	easyterm.SS3F4: userinput.KeyF4,
}

var tildeKeys = map[int]userinput.Key{
	easyterm.TildeHome:     userinput.KeyHome,
	easyterm.TildeInsert:   userinput.KeyInsert,
	easyterm.TildeDelete:   userinput.KeyDelete,
	easyterm.TildeEnd:      userinput.KeyEnd,
	easyterm.TildePageUp:   userinput.KeyPageUp,
	easyterm.TildePageDown: userinput.KeyPageDown,
	easyterm.TildeHomeAlt:  userinput.KeyHome,
	easyterm.TildeEndAlt:   userinput.KeyEnd,
	easyterm.TildeF5:       userinput.KeyF5,
	easyterm.TildeF6:       userinput.KeyF6,
	easyterm.TildeF7:       userinput.KeyF7,
	easyterm.TildeF8:       userinput.KeyF8,
	easyterm.TildeF9:       userinput.KeyF9,
	easyterm.TildeF10:      userinput.KeyF10,
	easyterm.TildeF11:      userinput.KeyF11,
	easyterm.TildeF12:      userinput.KeyF12,
}

// Decoder converts the bytes read from a terminal in cbreak mode into
// keystrokes. Escape sequences that are split across calls to Decode() are
// reassembled. A lone escape byte at the end of the input is the escape key.
type Decoder struct {
	pending []byte
}

// Decode the bytes and return the keystrokes they complete.
func (d *Decoder) Decode(p []byte) []Keystroke {
	buf := append(d.pending, p...)
	d.pending = nil

	var keys []Keystroke
	for i := 0; i < len(buf); {
		if buf[i] != easyterm.KeyEsc {
			k, n := decodeByte(buf[i:])
			if k.Key != userinput.KeyNone {
				keys = append(keys, k)
			}
			i += n
			continue
		}

		k, n, ok := decodeEscape(buf[i:])
		if !ok {
			d.pending = append(d.pending, buf[i:]...)
			break
		}
		if k.Key != userinput.KeyNone {
			keys = append(keys, k)
		}
		i += n
	}

	return keys
}

// decodeByte decodes the keystroke at the start of the buffer. Returns the
// number of bytes consumed.
func decodeByte(buf []byte) (Keystroke, int) {
	b := buf[0]

	switch b {
	case easyterm.KeyBackspace, easyterm.KeyBackspaceCtrlH:
		return Keystroke{Key: userinput.KeyBackspace}, 1
	case easyterm.KeyTab:
		return Keystroke{Key: userinput.KeyTab}, 1
	case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
		return Keystroke{Key: userinput.KeyReturn}, 1
	}

	switch {
	case b >= 1 && b <= 26:
		return Keystroke{
			Key:  userinput.KeyA + userinput.Key(b-1),
			Mod:  userinput.KeyModLCtrl,
			Rune: rune(b),
		}, 1

	case b >= 'A' && b <= 'Z':
		return Keystroke{
			Key:  userinput.Key(b - 'A' + 'a'),
			Mod:  userinput.KeyModLShift,
			Rune: rune(b),
		}, 1

	case b >= ' ' && b < 127:
		if k, ok := unshifted[b]; ok {
			return Keystroke{Key: k, Mod: userinput.KeyModLShift, Rune: rune(b)}, 1
		}
		return Keystroke{Key: userinput.Key(b), Rune: rune(b)}, 1

	case b >= utf8.RuneSelf:
		// no Atari equivalent for multibyte characters
		_, n := utf8.DecodeRune(buf)
		return Keystroke{}, n
	}

	return Keystroke{}, 1
}

// decodeEscape decodes the escape sequence at the start of the buffer.
// Returns false if the sequence is incomplete.
func decodeEscape(buf []byte) (Keystroke, int, bool) {
	if len(buf) == 1 {
		return Keystroke{Key: userinput.KeyEscape, Rune: easyterm.KeyEsc}, 1, true
	}

	switch buf[1] {
	case easyterm.EscCursor:
		return decodeCSI(buf)

	case easyterm.EscSS3:
		if len(buf) < 3 {
			return Keystroke{}, 0, false
		}
		if k, ok := ss3Keys[buf[2]]; ok {
			return Keystroke{Key: k}, 3, true
		}
		if k, ok := cursorKeys[buf[2]]; ok {
			return Keystroke{Key: k}, 3, true
		}
		return Keystroke{}, 3, true

	case easyterm.KeyEsc:
		// a double escape is the escape key followed by whatever the second
		// escape begins
		return Keystroke{Key: userinput.KeyEscape, Rune: easyterm.KeyEsc}, 1, true
	}

	// escape followed by a key is how terminals report the alt modifier
	k, n := decodeByte(buf[1:])
	if k.Key != userinput.KeyNone {
		k.Mod |= userinput.KeyModLAlt
	}
	return k, n + 1, true
}

// decodeCSI decodes a control sequence of the form ESC [ params final.
func decodeCSI(buf []byte) (Keystroke, int, bool) {
	var params []int
	param := 0
	hasParam := false

	for i := 2; i < len(buf); i++ {
		b := buf[i]
		switch {
		case b >= '0' && b <= '9':
			param = param*10 + int(b-'0')
			hasParam = true
		case b == ';':
			params = append(params, param)
			param = 0
			hasParam = false
		case b >= 0x40 && b <= 0x7e:
			if hasParam {
				params = append(params, param)
			}
			return csiKeystroke(b, params), i + 1, true
		default:
			// not a sequence we understand. discard up to this byte
			return Keystroke{}, i + 1, true
		}
	}

	return Keystroke{}, 0, false
}

func csiKeystroke(final byte, params []int) Keystroke {
	var k Keystroke

	if final == easyterm.CursorTilde {
		if len(params) == 0 {
			return k
		}
		k.Key = tildeKeys[params[0]]
	} else {
		k.Key = cursorKeys[final]
		if k.Key == userinput.KeyNone {
			k.Key = ss3Keys[final]
		}
	}

	if k.Key != userinput.KeyNone && len(params) > 1 && params[1] > 1 {
		m := params[1] - 1
		if m&easyterm.ModShift != 0 {
			k.Mod |= userinput.KeyModLShift
		}
		if m&easyterm.ModAlt != 0 {
			k.Mod |= userinput.KeyModLAlt
		}
		if m&easyterm.ModCtrl != 0 {
			k.Mod |= userinput.KeyModLCtrl
		}
	}

	return k
}
