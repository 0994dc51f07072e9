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

var keypadRunes = map[Key]rune{
	KeyKPDivide:   '/',
	KeyKPMultiply: '*',
	KeyKPMinus:    '-',
	KeyKPPlus:     '+',
	KeyKPEnter:    '\r',
	KeyKP0:        '0',
	KeyKP1:        '1',
	KeyKP2:        '2',
	KeyKP3:        '3',
	KeyKP4:        '4',
	KeyKP5:        '5',
	KeyKP6:        '6',
	KeyKP7:        '7',
	KeyKP8:        '8',
	KeyKP9:        '9',
	KeyKPPeriod:   '.',
}

// shifted punctuation for a US keyboard layout
var shiftedRunes = map[Key]rune{
	Key1:            '!',
	Key2:            '@',
	Key3:            '#',
	Key4:            '$',
	Key5:            '%',
	Key6:            '^',
	Key7:            '&',
	Key8:            '*',
	Key9:            '(',
	Key0:            ')',
	KeyMinus:        '_',
	KeyEquals:       '+',
	KeyLeftBracket:  '{',
	KeyRightBracket: '}',
	KeyBackslash:    '|',
	KeySemicolon:    ':',
	KeyQuote:        '"',
	KeyComma:        '<',
	KeyPeriod:       '>',
	KeySlash:        '?',
	KeyBackquote:    '~',
}

// Rune returns the code-point a key produces with the modifiers applied,
// assuming a US keyboard layout. Control with a letter produces the control
// code 1 to 26. Keys that produce no code-point return zero.
//
// Hosts that deliver text separately from key transitions (such as SDL) use
// this to fill EventKeyboard.Rune.
func Rune(k Key, mod KeyMod) rune {
	if r, ok := keypadRunes[k]; ok {
		return r
	}

	if k < KeySpace || k >= KeyDelete {
		return 0
	}

	shift := mod&KeyModShift != 0

	if k >= KeyA && k <= KeyZ {
		if mod&KeyModCtrl != 0 {
			return rune(k-KeyA) + 1
		}
		if shift != (mod&KeyModCaps != 0) {
			return rune(k) - 'a' + 'A'
		}
		return rune(k)
	}

	if shift {
		if r, ok := shiftedRunes[k]; ok {
			return r
		}
	}

	return rune(k)
}
