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

package gamepad

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/vkey"
)

// Function is the behaviour assigned to a gamepad button. The numeric values
// are significant: values of FunctionTurboHold and above produce key codes.
type Function int

// List of valid Function values.
const (
	FunctionNone           Function = 0
	FunctionSpecialHold    Function = 1
	FunctionFireHold       Function = 2
	FunctionFireToggle     Function = 3
	FunctionAutofireHold   Function = 4
	FunctionAutofireToggle Function = 5
	FunctionStartHold      Function = 6
	FunctionSelectHold     Function = 7
	FunctionOptionHold     Function = 8

	// press/release functions
	FunctionTurboHold Function = 256

	// press only functions
	FunctionTurboToggle         Function = 512
	FunctionExit                Function = 513
	FunctionUI                  Function = 514
	FunctionSaveState           Function = 515
	FunctionLoadState           Function = 516
	FunctionWarmstart           Function = 517
	FunctionColdstart           Function = 518
	FunctionBreak               Function = 519
	FunctionScreenshot          Function = 520
	FunctionScreenshotInterlace Function = 521
	FunctionKeyboard            Function = 522
	FunctionHelp                Function = 523
	FunctionEscape              Function = 524
	FunctionSpacebar            Function = 525

	// FunctionCode is the first of 256 functions that produce a raw key
	// code. Use CodeFunction() to create a Function for a specific code.
	FunctionCode Function = 768
)

// class boundaries
const (
	keyFunctions       Function = 256
	pressOnlyFunctions Function = 512
	endFunctions       Function = 1024
)

// Sentinal error patterns.
const (
	UnknownFunction = "gamepad: unknown function (%s)"
)

// CodeFunction returns the Function that produces the key code. Returns
// FunctionNone if the code is out of range.
func CodeFunction(code vkey.Code) Function {
	if code < 0 || code > 0xff {
		return FunctionNone
	}
	return FunctionCode + Function(code)
}

// IsKey returns true if the function produces key codes.
func (f Function) IsKey() bool {
	return f >= keyFunctions
}

// IsPressOnly returns true if the function produces a key code when the
// button is pressed and nothing when the button is released.
func (f Function) IsPressOnly() bool {
	return f >= pressOnlyFunctions && f < endFunctions
}

// IsCode returns true if the function produces a raw key code.
func (f Function) IsCode() bool {
	return f >= FunctionCode && f <= FunctionCode+0xff
}

// symbols are the names used for functions in the preferences file. the
// order is the order used for cycling through functions in a menu.
var symbols = []struct {
	symbol string
	fn     Function
}{
	{"FNPAD_NONE", FunctionNone},
	{"FNPAD_SP_HOLD", FunctionSpecialHold},
	{"FNPAD_FIRE_HOLD", FunctionFireHold},
	{"FNPAD_FIRE_TOGGLE", FunctionFireToggle},
	{"FNPAD_AUTOFIRE_HOLD", FunctionAutofireHold},
	{"FNPAD_AUTOFIRE_TOGGLE", FunctionAutofireToggle},
	{"FNPAD_START_HOLD", FunctionStartHold},
	{"FNPAD_SELECT_HOLD", FunctionSelectHold},
	{"FNPAD_OPTION_HOLD", FunctionOptionHold},
	{"FNPAD_TURBO_HOLD", FunctionTurboHold},
	{"FNPAD_TURBO_TOGGLE", FunctionTurboToggle},
	{"FNPAD_EXIT", FunctionExit},
	{"FNPAD_UI", FunctionUI},
	{"FNPAD_SAVESTATE", FunctionSaveState},
	{"FNPAD_LOADSTATE", FunctionLoadState},
	{"FNPAD_WARMSTART", FunctionWarmstart},
	{"FNPAD_COLDSTART", FunctionColdstart},
	{"FNPAD_BREAK", FunctionBreak},
	{"FNPAD_SCREENSHOT", FunctionScreenshot},
	{"FNPAD_SCREENSHOT_INTERLACE", FunctionScreenshotInterlace},
	{"FNPAD_KEYB", FunctionKeyboard},
	{"FNPAD_HELP", FunctionHelp},
	{"FNPAD_ESCAPE", FunctionEscape},
	{"FNPAD_KEY_SPACEBAR", FunctionSpacebar},
}

const codePrefix = "FNPAD_CODE_"

func (f Function) String() string {
	for _, s := range symbols {
		if s.fn == f {
			return s.symbol
		}
	}
	if f.IsCode() {
		return fmt.Sprintf("%s%02X", codePrefix, int(f-FunctionCode))
	}
	return fmt.Sprintf("FNPAD_UNKNOWN_%d", int(f))
}

// ParseFunction is the reverse of Function.String(). Raw key code functions
// take one or two hex digits after the FNPAD_CODE_ prefix.
func ParseFunction(s string) (Function, error) {
	s = strings.TrimSpace(s)

	for _, sym := range symbols {
		if sym.symbol == s {
			return sym.fn, nil
		}
	}

	if hex, ok := strings.CutPrefix(s, codePrefix); ok && len(hex) > 0 && len(hex) <= 2 {
		v, err := strconv.ParseUint(hex, 16, 8)
		if err == nil {
			return FunctionCode + Function(v), nil
		}
	}

	return FunctionNone, curated.Errorf(UnknownFunction, s)
}

// Functions returns every named function in menu order.
func Functions() []Function {
	fns := make([]Function, len(symbols))
	for i, s := range symbols {
		fns[i] = s.fn
	}
	return fns
}

// PressRelease returns the key code produced by a press/release function.
func (f Function) PressRelease(pressed bool) vkey.Code {
	switch f {
	case FunctionTurboHold:
		if pressed {
			return vkey.TurboStart
		}
		return vkey.TurboStop
	}
	return vkey.None
}

// Press returns the key code produced by a press only function. The open-menu
// function closes the menu if it is already open.
func (f Function) Press(menuActive bool) vkey.Code {
	switch f {
	case FunctionTurboToggle:
		return vkey.Turbo
	case FunctionExit:
		return vkey.Exit
	case FunctionUI:
		if menuActive {
			return vkey.Escape
		}
		return vkey.UI
	case FunctionSaveState, FunctionLoadState:
		return vkey.None
	case FunctionWarmstart:
		return vkey.Warmstart
	case FunctionColdstart:
		return vkey.Coldstart
	case FunctionBreak:
		return vkey.Break
	case FunctionScreenshot:
		return vkey.Screenshot
	case FunctionScreenshotInterlace:
		return vkey.ScreenshotInterlace
	case FunctionKeyboard:
		return vkey.Keyboard
	case FunctionHelp, FunctionEscape, FunctionSpacebar:
		// help and escape both produce a space
		return vkey.Space
	}
	if f.IsCode() {
		return vkey.Code(f - FunctionCode)
	}
	return vkey.None
}
