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

package gamepad_test

import (
	"testing"

	"github.com/jetsetilly/a8input/gamepad"
	"github.com/jetsetilly/a8input/test"
	"github.com/jetsetilly/a8input/userinput"
	"github.com/jetsetilly/a8input/vkey"
)

func button(b ...int) userinput.GamepadSample {
	var s userinput.GamepadSample
	for _, i := range b {
		s.Buttons |= 1 << i
	}
	return s
}

func TestPadStick(t *testing.T) {
	cfg := gamepad.NewConfig()
	pad := gamepad.NewPad(&cfg, 4)

	test.ExpectEquality(t, pad.Update(userinput.GamepadSample{}, false), vkey.ConsoleNone)
	test.ExpectEquality(t, pad.Port(), vkey.StickCentre)
	test.ExpectEquality(t, pad.Trigger(), vkey.TriggerReleased)

	pad.Update(userinput.GamepadSample{X: 20000}, false)
	test.ExpectEquality(t, pad.Port(), vkey.StickRight)

	// the hat is combined with the analogue stick
	pad.Update(userinput.GamepadSample{X: 20000, Hat: userinput.HatUp}, false)
	test.ExpectEquality(t, pad.Port(), vkey.StickRight&vkey.StickForward)

	cfg.UseAsStick = false
	pad.Update(userinput.GamepadSample{X: 20000, Hat: userinput.HatUp}, false)
	test.ExpectEquality(t, pad.Port(), vkey.StickForward)

	cfg.UseHatAsStick = false
	pad.Update(userinput.GamepadSample{X: 20000, Hat: userinput.HatUp}, false)
	test.ExpectEquality(t, pad.Port(), vkey.StickCentre)
}

func TestPadFire(t *testing.T) {
	cfg := gamepad.NewConfig()
	pad := gamepad.NewPad(&cfg, 4)

	pad.Update(button(0), false)
	test.ExpectEquality(t, pad.Trigger(), vkey.TriggerPressed)
	pad.Update(button(), false)
	test.ExpectEquality(t, pad.Trigger(), vkey.TriggerReleased)

	// buttons beyond the number of buttons on the pad are ignored
	pad.Update(button(5), false)
	test.ExpectEquality(t, pad.Trigger(), vkey.TriggerReleased)

	// fire toggle
	cfg.Functions[2] = gamepad.FunctionFireToggle
	pad.Update(button(2), false)
	test.ExpectSuccess(t, pad.Fire())
	pad.Update(button(), false)
	test.ExpectSuccess(t, pad.Fire())
	pad.Update(button(2), false)
	test.ExpectFailure(t, pad.Fire())
	pad.Update(button(), false)
	test.ExpectFailure(t, pad.Fire())

	// fire state is frozen while the menu is active
	pad.Update(button(0), false)
	test.ExpectSuccess(t, pad.Fire())
	pad.Update(button(), true)
	test.ExpectSuccess(t, pad.Fire())
	pad.Update(button(), false)
	test.ExpectFailure(t, pad.Fire())
}

func TestPadAutofire(t *testing.T) {
	cfg := gamepad.NewConfig()
	cfg.Functions[1] = gamepad.FunctionAutofireHold
	cfg.AutofireFreq = 2
	pad := gamepad.NewPad(&cfg, 4)

	expected := []bool{true, true, false, false, true, true}
	for i, e := range expected {
		pad.Update(button(1), false)
		test.ExpectEquality(t, pad.Fire(), e, i)
	}

	// fire held while autofiring cancels on the autofire frames
	pad.Reset()
	expected = []bool{false, false, true, true, false, false}
	for i, e := range expected {
		pad.Update(button(0, 1), false)
		test.ExpectEquality(t, pad.Fire(), e, i)
	}
}

func TestPadConsole(t *testing.T) {
	cfg := gamepad.NewConfig()
	cfg.Functions[0] = gamepad.FunctionStartHold
	cfg.Functions[1] = gamepad.FunctionSelectHold
	cfg.Functions[2] = gamepad.FunctionOptionHold
	pad := gamepad.NewPad(&cfg, 4)

	test.ExpectEquality(t, pad.Update(button(0), false), vkey.ConsoleNone&^vkey.ConsoleStart)
	test.ExpectEquality(t, pad.Update(button(1, 2), false), vkey.ConsoleStart)
	test.ExpectEquality(t, pad.Update(button(0, 1, 2), false), uint8(0))
	test.ExpectEquality(t, pad.Update(button(0, 1, 2), true), vkey.ConsoleNone)
	test.ExpectEquality(t, pad.Trigger(), vkey.TriggerReleased)
}

func TestPadKeys(t *testing.T) {
	cfg := gamepad.NewConfig()
	cfg.Functions[0] = gamepad.FunctionExit
	cfg.Functions[1] = gamepad.FunctionBreak
	cfg.Functions[2] = gamepad.FunctionTurboHold
	cfg.Functions[3] = gamepad.CodeFunction(vkey.A)
	pad := gamepad.NewPad(&cfg, 4)

	pad.Update(button(0), false)
	test.ExpectEquality(t, pad.Key(false), vkey.Exit)
	test.ExpectEquality(t, pad.Key(false), vkey.None)
	pad.Update(button(), false)
	test.ExpectEquality(t, pad.Key(false), vkey.None)

	// two press only buttons in the same frame are reported in turn
	pad.Update(button(0, 1), false)
	test.ExpectEquality(t, pad.Key(false), vkey.Exit)
	test.ExpectEquality(t, pad.Key(false), vkey.Break)
	test.ExpectEquality(t, pad.Key(false), vkey.None)
	pad.Update(button(), false)
	test.ExpectEquality(t, pad.Key(false), vkey.None)

	// press/release
	pad.Update(button(2), false)
	test.ExpectEquality(t, pad.Key(false), vkey.TurboStart)
	pad.Update(button(), false)
	test.ExpectEquality(t, pad.Key(false), vkey.TurboStop)

	// raw key code
	pad.Update(button(3), false)
	test.ExpectEquality(t, pad.Key(false), vkey.A)

	// key functions do not fire
	test.ExpectFailure(t, pad.Fire())
}

func TestPadSpecialBank(t *testing.T) {
	cfg := gamepad.NewConfig()
	cfg.Functions[3] = gamepad.FunctionSpecialHold
	cfg.SpecialFunctions[0] = gamepad.FunctionWarmstart
	pad := gamepad.NewPad(&cfg, 4)

	// without the special button, button 0 is fire
	pad.Update(button(0), false)
	test.ExpectSuccess(t, pad.Fire())
	test.ExpectEquality(t, pad.Key(false), vkey.None)
	pad.Update(button(), false)
	pad.Key(false)

	pad.Update(button(3), false)
	test.ExpectSuccess(t, pad.Special())
	test.ExpectFailure(t, pad.Fire())
	test.ExpectEquality(t, pad.Key(false), vkey.None)

	pad.Update(button(3, 0), false)
	test.ExpectFailure(t, pad.Fire())
	test.ExpectEquality(t, pad.Key(false), vkey.Warmstart)
}

func TestPadMenuNavigation(t *testing.T) {
	cfg := gamepad.NewConfig()
	cfg.Functions[2] = gamepad.FunctionUI
	pad := gamepad.NewPad(&cfg, 4)

	// navigation is off by default
	pad.Update(userinput.GamepadSample{X: 20000}, true)
	test.ExpectEquality(t, pad.Key(true), vkey.None)

	// the open-menu button closes the menu
	pad.Update(button(2), true)
	test.ExpectEquality(t, pad.Key(true), vkey.Escape)
	pad.Update(button(), true)
	pad.Key(true)
	pad.Update(button(2), false)
	test.ExpectEquality(t, pad.Key(false), vkey.UI)
	pad.Update(button(), false)
	pad.Key(false)

	cfg.UseInMenus = true
	pad.Update(userinput.GamepadSample{X: 20000}, true)
	test.ExpectEquality(t, pad.Key(true), vkey.Right)
	pad.Update(userinput.GamepadSample{Y: -20000}, true)
	test.ExpectEquality(t, pad.Key(true), vkey.Up)
	pad.Update(userinput.GamepadSample{}, true)
	test.ExpectEquality(t, pad.Key(true), vkey.None)

	// menu buttons
	pad.Update(button(0), true)
	test.ExpectEquality(t, pad.Key(true), vkey.Return)
	pad.Update(button(), true)
	test.ExpectEquality(t, pad.Key(true), vkey.None)
	pad.Update(button(1), true)
	test.ExpectEquality(t, pad.Key(true), vkey.Escape)

	// the hat has its own setting
	pad.Update(userinput.GamepadSample{Hat: userinput.HatDown}, true)
	test.ExpectEquality(t, pad.Key(true), vkey.None)
	cfg.UseHatInMenus = true
	pad.Update(userinput.GamepadSample{Hat: userinput.HatLeft}, true)
	test.ExpectEquality(t, pad.Key(true), vkey.Left)
}

func TestPadReset(t *testing.T) {
	cfg := gamepad.NewConfig()
	cfg.Functions[0] = gamepad.FunctionFireToggle
	pad := gamepad.NewPad(&cfg, 20)

	pad.Update(userinput.GamepadSample{X: -20000, Buttons: 1}, false)
	test.ExpectSuccess(t, pad.Fire())
	test.ExpectEquality(t, pad.Port(), vkey.StickLeft)

	pad.Reset()
	test.ExpectFailure(t, pad.Fire())
	test.ExpectEquality(t, pad.Port(), vkey.StickCentre)
	test.ExpectEquality(t, pad.Trigger(), vkey.TriggerReleased)
}
