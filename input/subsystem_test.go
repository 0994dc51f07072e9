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

package input_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/gamepad"
	"github.com/jetsetilly/a8input/input"
	"github.com/jetsetilly/a8input/keyboard"
	"github.com/jetsetilly/a8input/lptjoy"
	"github.com/jetsetilly/a8input/test"
	"github.com/jetsetilly/a8input/userinput"
	"github.com/jetsetilly/a8input/vkey"
)

type fakePad struct {
	name    string
	buttons int
	sample  userinput.GamepadSample
	closed  bool
}

func (p *fakePad) Name() string                    { return p.name }
func (p *fakePad) NumButtons() int                 { return p.buttons }
func (p *fakePad) Sample() userinput.GamepadSample { return p.sample }
func (p *fakePad) Close() error                    { p.closed = true; return nil }

type fakeHost struct {
	events []userinput.Event
	pads   []*fakePad
	fail   map[int]bool
}

func (h *fakeHost) PollEvents() []userinput.Event {
	ev := h.events
	h.events = nil
	return ev
}

func (h *fakeHost) NumGamepads() int {
	return len(h.pads)
}

func (h *fakeHost) OpenGamepad(idx int) (userinput.Gamepad, error) {
	if h.fail[idx] {
		return nil, fmt.Errorf("cannot open gamepad %d", idx)
	}
	return h.pads[idx], nil
}

func (h *fakeHost) push(evs ...userinput.Event) {
	h.events = append(h.events, evs...)
}

func down(k userinput.Key, r rune) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k, Rune: r, Down: true}
}

func up(k userinput.Key) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k}
}

func newSubsystem(t *testing.T, numPads int) (*input.Subsystem, *fakeHost) {
	t.Helper()
	s, err := input.NewSubsystem("")
	test.DemandSuccess(t, err)
	host := &fakeHost{}
	for i := 0; i < numPads; i++ {
		host.pads = append(host.pads, &fakePad{name: fmt.Sprintf("pad %d", i), buttons: 4})
	}
	s.Enumerate(host)
	return s, host
}

type fakeLPT struct {
	status lptjoy.Status
	err    error
	closed bool
}

func (l *fakeLPT) Status() (lptjoy.Status, error) {
	return l.status, l.err
}

func (l *fakeLPT) Close() error {
	l.closed = true
	return nil
}

func TestNoInput(t *testing.T) {
	s, _ := newSubsystem(t, 0)
	f := s.Arbitrate()

	test.ExpectEquality(t, f, input.NewFrame())
	test.ExpectEquality(t, s.KeyCode(), vkey.None)
	test.ExpectEquality(t, s.Console(), vkey.ConsoleNone)
	for i := 0; i < input.NumPorts; i++ {
		test.ExpectEquality(t, s.Port(i), vkey.StickCentre, i)
		test.ExpectEquality(t, s.Trigger(i), vkey.TriggerReleased, i)
	}
	test.ExpectEquality(t, s.PortRegister(0), uint8(0xff))
	test.ExpectEquality(t, s.PortRegister(1), uint8(0xff))
	test.ExpectEquality(t, s.PortRegister(2), uint8(0xff))
	test.ExpectEquality(t, s.TriggerLine(3), vkey.TriggerReleased)
	test.ExpectEquality(t, s.TriggerLine(4), vkey.TriggerReleased)
	test.ExpectEquality(t, s.Port(-1), vkey.StickCentre)
}

func TestKeyboardJoystick(t *testing.T) {
	s, host := newSubsystem(t, 0)

	host.push(down(userinput.KeyKP4, '4'), down(userinput.KeyRCtrl, 0))
	f := s.Arbitrate()
	test.ExpectEquality(t, f.Key, vkey.None)
	test.ExpectEquality(t, s.Port(0), vkey.StickLeft)
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerPressed)
	test.ExpectEquality(t, s.PortRegister(0), uint8(0xfb))
	test.ExpectEquality(t, s.Port(1), vkey.StickCentre)

	// keys remain held between frames
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickLeft)

	s.SwapPorts()
	test.ExpectSuccess(t, s.PortsSwapped())
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickCentre)
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerReleased)
	test.ExpectEquality(t, s.Port(1), vkey.StickLeft)
	test.ExpectEquality(t, s.Trigger(1), vkey.TriggerPressed)
	test.ExpectEquality(t, s.PortRegister(0), uint8(0xbf))

	s.SetPortsSwapped(false)
	s.SetKeyboardJoystick(0, false)
	test.ExpectFailure(t, s.KeyboardJoystick(0))
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickCentre)
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerReleased)

	// the disabled joystick keys are now ordinary keys
	host.push(up(userinput.KeyKP4), down(userinput.KeyKP4, '4'))
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.Key4)
}

func TestSwapChord(t *testing.T) {
	s, host := newSubsystem(t, 0)

	host.push(down(userinput.KeyLAlt, 0), down(userinput.KeyJ, 'j'))
	f := s.Arbitrate()
	test.ExpectEquality(t, f.Action, keyboard.ActionNone)
	test.ExpectEquality(t, f.Key, vkey.None)
	test.ExpectSuccess(t, s.PortsSwapped())

	// other chords are reported
	host.push(up(userinput.KeyJ), down(userinput.KeyF, 'f'))
	f = s.Arbitrate()
	test.ExpectEquality(t, f.Action, keyboard.ActionToggleFullscreen)

	host.push(up(userinput.KeyF), down(userinput.KeyD, 'd'))
	f = s.Arbitrate()
	test.ExpectEquality(t, f.Key, vkey.UI)
	test.ExpectEquality(t, f.Menu, keyboard.MenuDisk)
}

func TestGamepads(t *testing.T) {
	s, host := newSubsystem(t, 4)
	test.ExpectEquality(t, s.NumGamepads(), 4)

	host.pads[0].sample.X = -32768
	host.pads[1].sample.Buttons = 0x01
	host.pads[2].sample.Hat = userinput.HatUp | userinput.HatRight
	host.pads[3].sample.Y = 32767
	host.pads[3].sample.Buttons = 0x02

	f := s.Arbitrate()
	test.ExpectEquality(t, f.Ports, [input.NumPorts]uint8{
		vkey.StickLeft,
		vkey.StickCentre,
		vkey.StickRight & vkey.StickForward,
		vkey.StickBack,
	})
	test.ExpectEquality(t, f.Triggers, [input.NumPorts]uint8{
		vkey.TriggerReleased,
		vkey.TriggerPressed,
		vkey.TriggerReleased,
		vkey.TriggerPressed,
	})
	test.ExpectEquality(t, s.PortRegister(0), uint8(0xfb))
	test.ExpectEquality(t, s.PortRegister(1), uint8(0xd6))

	// keyboard and gamepad sticks are combined
	host.push(down(userinput.KeyKP8, '8'))
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickLeft&vkey.StickForward)

	// keyboard trigger and gamepad fire are combined
	host.pads[0].sample.Buttons = 0x01
	s.Arbitrate()
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerPressed)
}

// swapping exchanges the keyboard joysticks only. gamepads stay on the port
// matching their index.
func TestSwapGamepads(t *testing.T) {
	s, host := newSubsystem(t, 2)

	host.pads[0].sample.X = 32767
	host.pads[1].sample.Buttons = 0x01
	host.push(down(userinput.KeyKP4, '4'), down(userinput.KeyRCtrl, 0))

	s.SetPortsSwapped(true)
	f := s.Arbitrate()
	test.ExpectEquality(t, f.Ports[0], vkey.StickRight)
	test.ExpectEquality(t, f.Ports[1], vkey.StickLeft)
	test.ExpectEquality(t, f.Triggers[0], vkey.TriggerReleased)
	test.ExpectEquality(t, f.Triggers[1], vkey.TriggerPressed)

	// keyboard trigger is now on port 1 along with pad 1 fire
	host.pads[1].sample.Buttons = 0
	s.Arbitrate()
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerReleased)
	test.ExpectEquality(t, s.Trigger(1), vkey.TriggerPressed)

	s.SetPortsSwapped(false)
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickRight&vkey.StickLeft)
	test.ExpectEquality(t, s.Port(1), vkey.StickCentre)
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerPressed)
	test.ExpectEquality(t, s.Trigger(1), vkey.TriggerReleased)
}

func TestGamepadKeys(t *testing.T) {
	s, host := newSubsystem(t, 2)

	s.GamepadConfig(0).Functions[1] = gamepad.FunctionStartHold
	s.GamepadConfig(1).Functions[2] = gamepad.CodeFunction(vkey.A)
	s.GamepadConfig(1).Functions[3] = gamepad.FunctionOptionHold

	host.pads[0].sample.Buttons = 0x02
	host.pads[1].sample.Buttons = 0x08
	f := s.Arbitrate()
	test.ExpectEquality(t, f.Console, vkey.ConsoleNone&^(vkey.ConsoleStart|vkey.ConsoleOption))

	// keyboard console keys are combined with the gamepad console buttons
	host.push(down(userinput.KeyF3, 0))
	f = s.Arbitrate()
	test.ExpectEquality(t, f.Console, uint8(0))
	host.push(up(userinput.KeyF3))

	// the keyboard has priority. the gamepad key is reported when the
	// keyboard key is released
	host.push(down(userinput.KeyB, 'b'))
	host.pads[1].sample.Buttons = 0x04
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.B)
	host.push(up(userinput.KeyB))
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.A)
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.None)
}

func TestEnumerate(t *testing.T) {
	s, err := input.NewSubsystem("")
	test.DemandSuccess(t, err)

	host := &fakeHost{fail: map[int]bool{1: true}}
	for i := 0; i < 6; i++ {
		host.pads = append(host.pads, &fakePad{name: fmt.Sprintf("pad %d", i), buttons: 20})
	}
	s.Enumerate(host)

	// failed gamepads are skipped and the slots are filled in order
	test.ExpectEquality(t, s.NumGamepads(), 4)
	test.ExpectEquality(t, s.Gamepad(1).Config(), s.GamepadConfig(1))
	test.ExpectSuccess(t, s.Gamepad(4) == nil)

	host.pads[2].sample.X = 32767
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(1), vkey.StickRight)

	// enumerating again closes the devices and resets the state
	host.pads[0].sample.Buttons = 0x01
	s.Arbitrate()
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerPressed)

	s.Enumerate(&fakeHost{})
	test.ExpectSuccess(t, host.pads[0].closed)
	test.ExpectSuccess(t, host.pads[2].closed)
	test.ExpectFailure(t, host.pads[5].closed)
	test.ExpectEquality(t, s.NumGamepads(), 0)
	s.Arbitrate()
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerReleased)

	// disabled gamepads
	s.DisableGamepads()
	s.Enumerate(host)
	test.ExpectEquality(t, s.NumGamepads(), 0)
}

func TestLPT(t *testing.T) {
	s, host := newSubsystem(t, 2)
	lpt := &fakeLPT{status: 0x38}

	test.ExpectSuccess(t, s.AttachLPT(0, lpt))
	test.ExpectSuccess(t, curated.Is(s.AttachLPT(2, lpt), input.InvalidPort))
	test.ExpectSuccess(t, curated.Is(s.AttachLPT(-1, lpt), input.InvalidPort))

	// the gamepad stick is not used when there is a parallel port joystick
	host.pads[0].sample.Y = -32768
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickRight)
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerReleased)

	// combined with the keyboard joystick
	host.push(down(userinput.KeyKP4, '4'))
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickRight&vkey.StickLeft)
	host.push(up(userinput.KeyKP4))

	// the gamepad trigger is always used
	lpt.status = 0x78
	host.pads[0].sample.Buttons = 0x01
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickCentre)
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerPressed)

	host.pads[0].sample.Buttons = 0x00
	lpt.status = 0x70
	s.Arbitrate()
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerPressed)

	// errors leave the port unchanged
	lpt.err = fmt.Errorf("no device")
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickCentre)
	test.ExpectEquality(t, s.Trigger(0), vkey.TriggerReleased)

	// the gamepad is used again when the parallel port is detached
	test.ExpectSuccess(t, s.AttachLPT(0, nil))
	test.ExpectSuccess(t, lpt.closed)
	s.Arbitrate()
	test.ExpectEquality(t, s.Port(0), vkey.StickForward)
}

func TestToggles(t *testing.T) {
	s, host := newSubsystem(t, 0)

	s.SetCX85(true)
	test.ExpectFailure(t, s.KeyboardJoystick(0))
	host.push(down(userinput.KeyKP1, '1'))
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.CX85_1)
	host.push(up(userinput.KeyKP1))
	s.SetCX85(false)

	s.SetMachine5200(true)
	host.push(down(userinput.KeyP, 'p'))
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.Key5200Pause)
	host.push(up(userinput.KeyP))
	s.SetMachine5200(false)

	s.SetFunctionKeys(true)
	host.push(down(userinput.KeyUp, 0))
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.F1)
	host.push(up(userinput.KeyUp))

	s.SetNTSCFilter(true)
	host.push(down(userinput.KeyLAlt, 0), down(userinput.Key9, '9'))
	f := s.Arbitrate()
	test.ExpectEquality(t, f.Action, keyboard.ActionNTSCArtifacts)
	test.ExpectEquality(t, f.Adjust, 1)

	test.ExpectFailure(t, s.KeyboardJoystick(2))
	s.SetKeyboardJoystick(2, true)
}

func TestMenu(t *testing.T) {
	s, host := newSubsystem(t, 1)
	s.GamepadConfig(0).UseInMenus = true

	s.SetMenuActive(true)
	host.pads[0].sample.X = -32768
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.Left)

	// the stick repeats while it is held
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.Left)
	host.pads[0].sample.X = 0
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.None)

	// select button
	host.pads[0].sample.Buttons = 0x01
	f := s.Arbitrate()
	test.ExpectEquality(t, f.Key, vkey.Return)
	test.ExpectEquality(t, f.Trigger(0), vkey.TriggerReleased)

	// keyboard joystick keys are passed through
	host.push(down(userinput.KeyKP8, '8'))
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.Key8)
}

func TestRestart(t *testing.T) {
	s, host := newSubsystem(t, 0)

	host.push(down(userinput.KeyA, 'a'))
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.A)
	test.ExpectEquality(t, s.KeyCode(), vkey.A)

	s.Restart()
	test.ExpectEquality(t, s.KeyCode(), vkey.None)
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.None)

	// quit
	host.push(userinput.EventQuit{})
	test.ExpectEquality(t, s.Arbitrate().Key, vkey.Exit)
}

type observer struct {
	frames []input.Frame
}

func (o *observer) Arbitrated(f input.Frame) {
	o.frames = append(o.frames, f)
}

func TestObserver(t *testing.T) {
	s, host := newSubsystem(t, 0)
	o := &observer{}
	s.SetObserver(o)

	s.Arbitrate()
	host.push(down(userinput.KeyQ, 'q'))
	s.Arbitrate()

	test.DemandEquality(t, len(o.frames), 2)
	test.ExpectEquality(t, o.frames[0].Key, vkey.None)
	test.ExpectEquality(t, o.frames[1].Key, vkey.Q)
	test.ExpectEquality(t, o.frames[1], s.Frame())

	s.SetObserver(nil)
	s.Arbitrate()
	test.ExpectEquality(t, len(o.frames), 2)

	o2 := &observer{}
	s.SetObserver(input.Observers{o, o2})
	s.Arbitrate()
	test.ExpectEquality(t, len(o.frames), 3)
	test.ExpectEquality(t, len(o2.frames), 1)
}

func TestConfig(t *testing.T) {
	s, _ := newSubsystem(t, 0)

	handled, err := s.ReadConfig("SDL_PAD_2_JOY_DEADZONE", "9000")
	test.ExpectSuccess(t, handled)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s.GamepadConfig(2).Deadzone, 9000)

	handled, err = s.ReadConfig("SDL_JOY_1_ENABLED", "yes")
	test.ExpectSuccess(t, handled)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, s.KeyboardJoystick(1))

	// unrecognised gamepad keys are claimed
	handled, err = s.ReadConfig("SDL_PAD_7_JOY_DEADZONE", "9000")
	test.ExpectSuccess(t, handled)
	test.ExpectSuccess(t, err)

	handled, err = s.ReadConfig("MACHINE_TYPE", "Atari XL/XE")
	test.ExpectFailure(t, handled)
	test.ExpectSuccess(t, err)

	handled, err = s.ReadConfig("SDL_PAD_0_AUTOFIRE_FREQ", "often")
	test.ExpectSuccess(t, handled)
	test.ExpectFailure(t, err)

	w := &strings.Builder{}
	test.ExpectSuccess(t, s.WriteConfig(w))
	c := w.String()
	test.ExpectSuccess(t, strings.HasPrefix(c, "SDL_JOY_0_ENABLED=1\n"))
	test.ExpectSuccess(t, strings.Contains(c, "SDL_TURBO_KEY=1073741893\nSDL_PAD_0_JOY_RADIAL=1\n"))
	test.ExpectSuccess(t, strings.Contains(c, "SDL_PAD_2_JOY_DEADZONE=9000\n"))
	test.ExpectSuccess(t, strings.HasSuffix(c, "SDL_PAD_3_BUTTON_15_SP_FUNC=FNPAD_FIRE_HOLD\n"))
	test.ExpectEquality(t, strings.Count(c, "\n"), 23+4*43)
}
