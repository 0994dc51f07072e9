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

// Result of a single translation.
type Result struct {
	// vkey.None if no key was pressed
	Key vkey.Code

	// chord action for the host. Adjust is +1 or -1 for adjustment actions
	Action Action
	Adjust int

	// the menu to open if Key is vkey.UI
	Menu Menu

	// active-low console key bits
	Consol uint8
}

// Translator turns host key events into key codes. Each call to Translate()
// corresponds to one frame. The zero value is not usable, use
// NewTranslator().
type Translator struct {
	bindings *Bindings

	// emulation state that changes the translation
	Machine5200  bool
	FunctionKeys bool
	CX85         bool
	NTSCFilter   bool

	held map[userinput.Key]bool

	// the most recent key event. pressed is cleared when the key has been
	// consumed so that it is not reported again on the next frame
	lastKey  userinput.Key
	lastRune rune
	lastMod  userinput.KeyMod
	pressed  bool
}

// NewTranslator is the preferred method of initialisation for the Translator
// type.
func NewTranslator(bindings *Bindings) *Translator {
	return &Translator{
		bindings: bindings,
		held:     make(map[userinput.Key]bool),
	}
}

// Bindings returns the key bindings used by the translator.
func (t *Translator) Bindings() *Bindings {
	return t.bindings
}

// Restart forgets the most recent key. Held keys are not forgotten.
func (t *Translator) Restart() {
	t.lastKey = userinput.KeyNone
	t.lastRune = 0
	t.lastMod = userinput.KeyModNone
	t.pressed = false
}

// modifier keys can also be detected from the modifier state of the most
// recent event, for hosts that do not report key transitions for modifiers.
var modifiers = map[userinput.Key]userinput.KeyMod{
	userinput.KeyLShift: userinput.KeyModLShift,
	userinput.KeyRShift: userinput.KeyModRShift,
	userinput.KeyLCtrl:  userinput.KeyModLCtrl,
	userinput.KeyRCtrl:  userinput.KeyModRCtrl,
	userinput.KeyLAlt:   userinput.KeyModLAlt,
	userinput.KeyRAlt:   userinput.KeyModRAlt,
	userinput.KeyLGui:   userinput.KeyModLGui,
	userinput.KeyRGui:   userinput.KeyModRGui,
}

// Held returns true if the key is currently held.
func (t *Translator) Held(k userinput.Key) bool {
	if t.held[k] {
		return true
	}
	if m, ok := modifiers[k]; ok {
		return t.lastMod&m == m
	}
	return false
}

func (t *Translator) shift() bool {
	return t.Held(userinput.KeyLShift) || t.Held(userinput.KeyRShift)
}

func (t *Translator) control() bool {
	return t.Held(userinput.KeyLCtrl) || t.Held(userinput.KeyRCtrl)
}

// Stick returns the stick nibble for keyboard joystick j.
func (t *Translator) Stick(j int) uint8 {
	if j < 0 || j >= len(t.bindings.Joysticks) {
		return vkey.StickCentre
	}
	return t.bindings.Joysticks[j].Stick(t.Held)
}

// Trigger returns the trigger value for keyboard joystick j.
func (t *Translator) Trigger(j int) uint8 {
	if j < 0 || j >= len(t.bindings.Joysticks) {
		return vkey.TriggerReleased
	}
	return t.bindings.Joysticks[j].TriggerValue(t.Held)
}

// Consol returns the console key bits for the held keys.
func (t *Translator) Consol() uint8 {
	c := vkey.ConsoleNone
	if t.Held(t.bindings.Option) {
		c &^= vkey.ConsoleOption
	}
	if t.Held(t.bindings.Select) {
		c &^= vkey.ConsoleSelect
	}
	if t.Held(t.bindings.Start) {
		c &^= vkey.ConsoleStart
	}
	return c
}

// drain applies the events to the key state. Returns true if the events
// included a request to quit.
func (t *Translator) drain(events []userinput.Event) (found bool, quit bool) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case userinput.EventKeyboard:
			found = true
			t.lastKey = ev.Key
			t.lastMod = ev.Mod
			if ev.Down {
				t.held[ev.Key] = true
				t.lastRune = ev.Rune
				t.pressed = true
			} else {
				delete(t.held, ev.Key)
				t.lastRune = 0

				// caps lock is reported as a press on both transitions
				t.pressed = ev.Key == userinput.KeyCapsLock
			}
		case userinput.EventQuit:
			return true, true
		default:
			found = true
		}
	}
	return found, false
}

// Translate the events since the last frame. The menu flag should be true
// if the emulator's user interface is showing.
func (t *Translator) Translate(events []userinput.Event, menuActive bool) Result {
	// caps lock is only ever pressed for a single frame
	if t.lastKey == userinput.KeyCapsLock {
		t.lastKey = userinput.KeyNone
		t.pressed = false
		t.lastRune = 0
	}

	found, quit := t.drain(events)

	res := Result{
		Key:    vkey.None,
		Consol: t.Consol(),
	}

	if quit {
		res.Key = vkey.Exit
		return res
	}

	if !found && !t.pressed {
		return res
	}

	if t.Held(t.bindings.Chord) && t.pressed {
		if done := t.chord(&res); done {
			return res
		}
	}

	res.Key, res.Menu = t.translate(menuActive, res.Menu)
	return res
}

// chord handles the chord key. Returns true if the translation is complete.
func (t *Translator) chord(res *Result) bool {
	// the 80 column toggle requires shift. without shift the key is
	// translated as normal
	if t.lastKey == userinput.KeyX {
		if t.shift() {
			t.pressed = false
			res.Action = ActionToggle80Column
		}
		return false
	}

	if t.lastKey == userinput.KeyBackslash {
		res.Key = vkey.PBIBlackBoxMenu
		return true
	}

	c, ok := chords[t.lastKey]
	if !ok || (c.ntsc && !t.NTSCFilter) {
		return false
	}

	res.Action = c.action
	res.Menu = c.menu

	if c.adjust {
		res.Adjust = 1
		if t.Held(userinput.KeyLShift) {
			res.Adjust = -1
		}
		return true
	}

	if c.menu == MenuNone {
		t.pressed = false
	}

	return false
}

// translate the most recent key. the menu may have been set by a chord and is
// returned with the vkey.UI key code.
func (t *Translator) translate(menuActive bool, menu Menu) (vkey.Code, Menu) {
	if !t.pressed {
		return vkey.None, MenuNone
	}

	k := t.translateKey(menuActive, &menu)
	if k != vkey.UI {
		menu = MenuNone
	}
	return k, menu
}

func (t *Translator) translateKey(menuActive bool, menu *Menu) vkey.Code {

	shift := t.shift()
	control := t.control()
	b := t.bindings

	switch t.lastKey {
	case b.Reset:
		t.pressed = false
		if shift {
			return vkey.Coldstart
		}
		return vkey.Warmstart
	case b.Exit:
		return vkey.Exit
	case b.UI:
		t.pressed = false
		return vkey.UI
	}

	if t.lastKey == b.Monitor {
		*menu = MenuMonitor
	}

	switch t.lastKey {
	case b.Help:
		return vkey.Help
	case b.Break:
		return vkey.Break
	case b.Screenshot:
		t.pressed = false
		if shift {
			return vkey.ScreenshotInterlace
		}
		return vkey.Screenshot
	case b.Turbo:
		t.pressed = false
		return vkey.Turbo
	}

	if *menu != MenuNone {
		t.pressed = false
		return vkey.UI
	}

	// keyboard joystick keys are not passed to the emulation because some
	// games pause on a keypress
	if !menuActive {
		for i := range b.Joysticks {
			if b.Joysticks[i].Enabled && b.Joysticks[i].Binds(t.lastKey) {
				t.pressed = false
				return vkey.None
			}
		}
	}

	var shiftctrl vkey.Code
	if shift {
		shiftctrl ^= vkey.Shift
	}

	if t.Machine5200 && !menuActive {
		return t.translate5200(shiftctrl)
	}

	if control {
		shiftctrl ^= vkey.Ctrl
	}

	if k, ok := t.special(shift, control, shiftctrl, menuActive); ok {
		return k
	}

	if t.CX85 {
		if t.lastKey == userinput.KeyKPDivide {
			if control {
				return vkey.CX85_Escape
			}
			return vkey.CX85_No
		}
		if k, ok := cx85[t.lastKey]; ok {
			return k
		}
	}

	if control {
		if k, ok := t.controlKey(shiftctrl); ok {
			return k
		}
	}

	// the host caps lock state must not change the case of the key
	r := t.lastRune
	if r >= 'A' && r <= 'Z' && !shift {
		r += 'a' - 'A'
	} else if r >= 'a' && r <= 'z' && shift {
		r -= 'a' - 'A'
	}

	if r >= 1 && r <= 26 {
		return vkey.Ctrl | letters[r-1] | shiftctrl
	}

	return printable(r)
}

func (t *Translator) translate5200(shiftctrl vkey.Code) vkey.Code {
	if t.lastKey == userinput.KeyF4 {
		return vkey.Key5200Start ^ shiftctrl
	}

	r := t.lastRune
	switch {
	case r == 'p':
		return vkey.Key5200Pause ^ shiftctrl
	case r == 'r':
		return vkey.Key5200Reset ^ shiftctrl
	case r >= '0' && r <= '9':
		return keypad5200[r-'0'] ^ shiftctrl
	case r == '#' || r == '=':
		return vkey.Key5200Hash ^ shiftctrl
	case r == '*':
		return vkey.Key5200Asterisk ^ shiftctrl
	}

	return vkey.None
}

// special handles keys that have no printable representation, along with
// space, return, escape and tab.
func (t *Translator) special(shift bool, control bool, shiftctrl vkey.Code, menuActive bool) (vkey.Code, bool) {
	// cursor keys are the function keys of the XL/XE when function key mode
	// is enabled
	fkeys := !menuActive && t.FunctionKeys

	cursor := func(fkey vkey.Code, shifted vkey.Code, normal vkey.Code) vkey.Code {
		switch {
		case fkeys:
			return fkey ^ shiftctrl
		case shift:
			return shifted ^ shiftctrl
		}
		return normal ^ shiftctrl
	}

	switch t.lastKey {
	case userinput.KeyBackquote, userinput.KeyLGui:
		return vkey.Atari ^ shiftctrl, true
	case userinput.KeyRGui:
		if shift {
			return vkey.CapsLock, true
		}
		return vkey.CapsToggle, true
	case userinput.KeyEnd, userinput.KeyPageDown:
		return vkey.F2 | vkey.Shift, true
	case userinput.KeyPageUp:
		return vkey.F1 | vkey.Shift, true
	case userinput.KeyHome:
		if control {
			return vkey.Less | shiftctrl, true
		}
		return vkey.Clear, true
	case userinput.KeyPause, userinput.KeyCapsLock:
		if shift {
			return vkey.CapsLock | shiftctrl, true
		}
		return vkey.CapsToggle | shiftctrl, true
	case userinput.KeySpace:
		return vkey.Space ^ shiftctrl, true
	case userinput.KeyBackspace:
		return vkey.Backspace | shiftctrl, true
	case userinput.KeyReturn:
		return vkey.Return ^ shiftctrl, true
	case userinput.KeyLeft:
		return cursor(vkey.F3, vkey.Plus, vkey.Left), true
	case userinput.KeyRight:
		return cursor(vkey.F4, vkey.Asterisk, vkey.Right), true
	case userinput.KeyUp:
		return cursor(vkey.F1, vkey.Minus, vkey.Up), true
	case userinput.KeyDown:
		return cursor(vkey.F2, vkey.Equal, vkey.Down), true
	case userinput.KeyEscape:
		return vkey.Escape ^ shiftctrl, true
	case userinput.KeyTab:
		// some hosts deliver the alt-tab used for window switching
		if t.Held(userinput.KeyLAlt) {
			t.pressed = false
			return vkey.None, true
		}
		return vkey.Tab ^ shiftctrl, true
	case userinput.KeyDelete:
		if shift {
			return vkey.DeleteLine | shiftctrl, true
		}
		return vkey.DeleteChar, true
	case userinput.KeyInsert:
		if shift {
			return vkey.InsertLine | shiftctrl, true
		}
		return vkey.InsertChar, true
	}
	return vkey.None, false
}

// controlKey handles control with a digit or punctuation key.
func (t *Translator) controlKey(shiftctrl vkey.Code) (vkey.Code, bool) {
	switch t.lastRune {
	case '.':
		return vkey.FullStop | shiftctrl, true
	case ',':
		return vkey.Comma | shiftctrl, true
	case ';':
		return vkey.Semicolon | shiftctrl, true
	}

	switch t.lastKey {
	case userinput.KeyPeriod:
		return vkey.FullStop | shiftctrl, true
	case userinput.KeyComma:
		return vkey.Comma | shiftctrl, true
	case userinput.KeySemicolon:
		return vkey.Semicolon | shiftctrl, true
	case userinput.KeySlash:
		return vkey.Slash | shiftctrl, true
	case userinput.KeyBackslash:
		return vkey.Escape | shiftctrl, true
	}

	if t.lastKey >= userinput.Key0 && t.lastKey <= userinput.Key9 {
		return vkey.Ctrl | digits[t.lastKey-userinput.Key0] | shiftctrl, true
	}

	return vkey.None, false
}
