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

package keyboard

import (
	"github.com/jetsetilly/a8input/userinput"
	"github.com/jetsetilly/a8input/vkey"
)

type chord struct {
	action Action
	menu   Menu

	// adjustments are reported immediately and do not consume the key
	adjust bool

	// only recognised when the NTSC filter is in use
	ntsc bool
}

var chords = map[userinput.Key]chord{
	userinput.KeyF:            {action: ActionToggleFullscreen},
	userinput.KeyG:            {action: ActionToggleHorizontalArea},
	userinput.KeyJ:            {action: ActionSwapPorts},
	userinput.KeyM:            {action: ActionToggleMouseGrab},
	userinput.KeyR:            {menu: MenuRun},
	userinput.KeyY:            {menu: MenuSystem},
	userinput.KeyO:            {menu: MenuSound},
	userinput.KeyW:            {menu: MenuSoundRecording},
	userinput.KeyV:            {menu: MenuVideoRecording},
	userinput.KeyA:            {menu: MenuAbout},
	userinput.KeyS:            {menu: MenuSaveState},
	userinput.KeyD:            {menu: MenuDisk},
	userinput.KeyL:            {menu: MenuLoadState},
	userinput.KeyC:            {menu: MenuCartridge},
	userinput.KeyT:            {menu: MenuCassette},
	userinput.Key1:            {action: ActionHue, adjust: true},
	userinput.Key2:            {action: ActionSaturation, adjust: true},
	userinput.Key3:            {action: ActionContrast, adjust: true},
	userinput.Key4:            {action: ActionBrightness, adjust: true},
	userinput.Key5:            {action: ActionGamma, adjust: true},
	userinput.Key6:            {action: ActionColourDelay, adjust: true},
	userinput.KeyLeftBracket:  {action: ActionScanlines, adjust: true},
	userinput.Key7:            {action: ActionNTSCSharpness, adjust: true, ntsc: true},
	userinput.Key8:            {action: ActionNTSCResolution, adjust: true, ntsc: true},
	userinput.Key9:            {action: ActionNTSCArtifacts, adjust: true, ntsc: true},
	userinput.Key0:            {action: ActionNTSCFringing, adjust: true, ntsc: true},
	userinput.KeyMinus:        {action: ActionNTSCBleed, adjust: true, ntsc: true},
	userinput.KeyEquals:       {action: ActionNTSCBurstPhase, adjust: true, ntsc: true},
	userinput.KeyRightBracket: {action: ActionNextNTSCPreset, ntsc: true},
}

// letters indexed from 'a'.
var letters = [26]vkey.Code{
	vkey.A, vkey.B, vkey.C, vkey.D, vkey.E, vkey.F, vkey.G, vkey.H, vkey.I,
	vkey.J, vkey.K, vkey.L, vkey.M, vkey.N, vkey.O, vkey.P, vkey.Q, vkey.R,
	vkey.S, vkey.T, vkey.U, vkey.V, vkey.W, vkey.X, vkey.Y, vkey.Z,
}

// digits indexed from '0'.
var digits = [10]vkey.Code{
	vkey.Key0, vkey.Key1, vkey.Key2, vkey.Key3, vkey.Key4,
	vkey.Key5, vkey.Key6, vkey.Key7, vkey.Key8, vkey.Key9,
}

var keypad5200 = [10]vkey.Code{
	vkey.Key5200_0, vkey.Key5200_1, vkey.Key5200_2, vkey.Key5200_3, vkey.Key5200_4,
	vkey.Key5200_5, vkey.Key5200_6, vkey.Key5200_7, vkey.Key5200_8, vkey.Key5200_9,
}

// code-points that are not letters or digits.
var punctuation = map[rune]vkey.Code{
	':':  vkey.Colon,
	'!':  vkey.Exclamation,
	'@':  vkey.At,
	'#':  vkey.Hash,
	'$':  vkey.Dollar,
	'%':  vkey.Percent,
	'^':  vkey.Circumflex,
	'&':  vkey.Ampersand,
	'*':  vkey.Asterisk,
	'(':  vkey.ParenLeft,
	')':  vkey.ParenRight,
	'+':  vkey.Plus,
	'_':  vkey.Underscore,
	'"':  vkey.DoubleQuote,
	'?':  vkey.Question,
	'<':  vkey.Less,
	'>':  vkey.Greater,
	';':  vkey.Semicolon,
	',':  vkey.Comma,
	'.':  vkey.FullStop,
	'=':  vkey.Equal,
	'-':  vkey.Minus,
	'\'': vkey.Quote,
	'/':  vkey.Slash,
	'\\': vkey.Backslash,
	'[':  vkey.BracketLeft,
	']':  vkey.BracketRight,
	'|':  vkey.Bar,
}

var cx85 = map[userinput.Key]vkey.Code{
	userinput.KeyKP1:        vkey.CX85_1,
	userinput.KeyKP2:        vkey.CX85_2,
	userinput.KeyKP3:        vkey.CX85_3,
	userinput.KeyKP4:        vkey.CX85_4,
	userinput.KeyKP5:        vkey.CX85_5,
	userinput.KeyKP6:        vkey.CX85_6,
	userinput.KeyKP7:        vkey.CX85_7,
	userinput.KeyKP8:        vkey.CX85_8,
	userinput.KeyKP9:        vkey.CX85_9,
	userinput.KeyKP0:        vkey.CX85_0,
	userinput.KeyKPPeriod:   vkey.CX85_Period,
	userinput.KeyKPMinus:    vkey.CX85_Minus,
	userinput.KeyKPEnter:    vkey.CX85_PlusEnter,
	userinput.KeyKPMultiply: vkey.CX85_Delete,
	userinput.KeyKPPlus:     vkey.CX85_Yes,
}

// printable returns the key code for a code-point. The code-point should
// already have had its case adjusted for the shift key.
func printable(r rune) vkey.Code {
	switch {
	case r >= 'a' && r <= 'z':
		return letters[r-'a']
	case r >= 'A' && r <= 'Z':
		return vkey.Shift | letters[r-'A']
	case r >= '0' && r <= '9':
		return digits[r-'0']
	}
	if c, ok := punctuation[r]; ok {
		return c
	}
	return vkey.None
}
