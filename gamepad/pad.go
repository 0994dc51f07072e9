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
	"github.com/jetsetilly/a8input/userinput"
	"github.com/jetsetilly/a8input/vkey"
)

// state of a gamepad after discretisation.
type state struct {
	stick   Stick
	hat     Stick
	buttons uint32
	special bool
}

// Pad is the emulated joystick state for a single gamepad. The zero value is
// not usable, use NewPad().
type Pad struct {
	cfg *Config

	// number of physical buttons that are read from a sample
	numButtons int

	// last is the state as it was last seen by Key(), or by the hold/toggle
	// pass of Update() for the buttons that the pass handles. actual is the
	// state of the most recent Update()
	last   state
	actual state

	autofire   Autofire
	fireToggle bool
	fire       bool
}

// NewPad is the preferred method of initialisation for the Pad type. The
// number of buttons is capped at userinput.MaxButtons.
func NewPad(cfg *Config, numButtons int) *Pad {
	if numButtons > userinput.MaxButtons {
		numButtons = userinput.MaxButtons
	}
	if numButtons < 0 {
		numButtons = 0
	}
	return &Pad{
		cfg:        cfg,
		numButtons: numButtons,
	}
}

// Config returns the configuration used by the pad.
func (p *Pad) Config() *Config {
	return p.cfg
}

// Reset the pad state. The pad is centred with no buttons pressed and with
// the fire and autofire toggles off.
func (p *Pad) Reset() {
	p.last = state{}
	p.actual = state{}
	p.autofire.Reset()
	p.fireToggle = false
	p.fire = false
}

// Update the pad with a new sample. The returned console value has the
// start, select and option bits cleared for held buttons. When the menu is
// active the fire and console state is not changed.
func (p *Pad) Update(sample userinput.GamepadSample, menuActive bool) uint8 {
	consol := vkey.ConsoleNone

	p.actual.stick = Classify(p.cfg, int(sample.X), int(sample.Y), p.last.stick)
	p.actual.hat = ClassifyHat(sample.Hat)

	specialMask, _ := p.cfg.Masks()

	trig := sample.Buttons & (1<<p.numButtons - 1)
	p.actual.special = trig&specialMask != 0
	if p.actual.special {
		trig &^= specialMask
		trig <<= userinput.MaxButtons
	}
	p.actual.buttons = trig

	if menuActive {
		return consol
	}

	var autofire, fire bool

	for i := 0; i < userinput.MaxButtons*2; i++ {
		mask := uint32(1) << i
		changed := trig&mask != p.last.buttons&mask
		pressed := trig&mask != 0
		handled := true

		switch p.cfg.Function(i) {
		case FunctionStartHold:
			if pressed {
				consol &^= vkey.ConsoleStart
			}
		case FunctionSelectHold:
			if pressed {
				consol &^= vkey.ConsoleSelect
			}
		case FunctionOptionHold:
			if pressed {
				consol &^= vkey.ConsoleOption
			}
		case FunctionAutofireToggle:
			if changed && pressed {
				p.autofire.Toggle = !p.autofire.Toggle
			}
		case FunctionAutofireHold:
			if pressed {
				autofire = true
			}
		case FunctionFireToggle:
			if changed && pressed {
				p.fireToggle = !p.fireToggle
			}
		case FunctionFireHold:
			if pressed {
				fire = true
			}
		default:
			handled = false
		}

		if handled && changed {
			if pressed {
				p.last.buttons |= mask
			} else {
				p.last.buttons &^= mask
			}
		}
	}

	// a held fire button and autofire cancel each other out
	fromAutofire := p.autofire.Step(autofire, p.cfg.AutofireFreq)
	fromFire := p.fireToggle != fire
	p.fire = fromAutofire != fromFire

	return consol
}

// keyFromStick returns the menu navigation key for a stick. Horizontal
// movement takes priority over vertical movement.
func keyFromStick(actual Stick, last *Stick, navigate bool) vkey.Code {
	if !navigate {
		*last = actual
		return vkey.None
	}

	last.X = actual.X
	switch actual.X {
	case -1:
		return vkey.Left
	case 1:
		return vkey.Right
	}

	last.Y = actual.Y
	switch actual.Y {
	case -1:
		return vkey.Up
	case 1:
		return vkey.Down
	}

	return vkey.None
}

// Key returns the key code produced by the pad since the last call to Key().
// At most one key is returned. Button changes that are not reported remain
// pending until the next call.
func (p *Pad) Key(menuActive bool) vkey.Code {
	if k := keyFromStick(p.actual.stick, &p.last.stick, menuActive && p.cfg.UseInMenus); k != vkey.None {
		return k
	}
	if k := keyFromStick(p.actual.hat, &p.last.hat, menuActive && p.cfg.UseHatInMenus); k != vkey.None {
		return k
	}

	_, keyMask := p.cfg.Masks()
	navigate := menuActive && (p.cfg.UseInMenus || p.cfg.UseHatInMenus)

	buttons := p.actual.buttons
	for i := 0; i < userinput.MaxButtons*2; i++ {
		mask := uint32(1) << i
		if buttons&mask == p.last.buttons&mask {
			continue
		}

		pressed := buttons&mask != 0
		key := vkey.None
		menuButton := false

		if navigate {
			if i == p.cfg.MenuBackButton {
				menuButton = true
				if pressed {
					key = vkey.Escape
				}
			}
			if i == p.cfg.MenuSelectButton {
				menuButton = true
				if pressed {
					key = vkey.Return
				}
			}
		}

		if key == vkey.None && !menuButton && keyMask&mask == mask {
			fn := p.cfg.Function(i)
			if fn.IsPressOnly() {
				if pressed {
					key = fn.Press(menuActive)
				}
			} else {
				key = fn.PressRelease(pressed)
			}
		}

		if pressed {
			p.last.buttons |= mask
		} else {
			p.last.buttons &^= mask
		}

		if key != vkey.None {
			return key
		}
	}

	return vkey.None
}

// Port returns the active-low stick nibble for the pad. The analogue stick
// and the hat contribute if they are enabled in the configuration.
func (p *Pad) Port() uint8 {
	n := vkey.StickCentre
	if p.cfg.UseAsStick {
		n &= p.actual.stick.Nibble()
	}
	if p.cfg.UseHatAsStick {
		n &= p.actual.hat.Nibble()
	}
	return n
}

// Trigger returns the trigger value for the pad.
func (p *Pad) Trigger() uint8 {
	if p.fire {
		return vkey.TriggerPressed
	}
	return vkey.TriggerReleased
}

// Fire returns true if the emulated fire button is pressed.
func (p *Pad) Fire() bool {
	return p.fire
}

// Stick returns the most recent stick and hat positions.
func (p *Pad) Stick() (stick Stick, hat Stick) {
	return p.actual.stick, p.actual.hat
}

// Special returns true if a special bank button was held during the last
// update.
func (p *Pad) Special() bool {
	return p.actual.special
}

// Autofire returns the autofire generator for the pad.
func (p *Pad) Autofire() *Autofire {
	return &p.autofire
}
