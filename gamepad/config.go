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

import "github.com/jetsetilly/a8input/userinput"

// Default values for a Config.
const (
	DefaultDeadzone        = 15000
	DefaultTolerance       = 0.1
	DefaultRadialTolerance = 0.1
	DefaultAutofireFreq    = 2
)

// Config is the configuration for a single gamepad.
type Config struct {
	// discretisation of the analogue stick
	Radial          bool
	Deadzone        int
	Tolerance       float64
	RadialTolerance float64

	// the analogue stick and the hat both drive the emulated joystick
	UseAsStick    bool
	UseHatAsStick bool

	// menu navigation
	UseInMenus       bool
	UseHatInMenus    bool
	MenuSelectButton int
	MenuBackButton   int

	// number of frames that autofire is on. autofire is off for the same
	// number of frames. must be at least one
	AutofireFreq int

	// normal and special banks of button functions
	Functions        [userinput.MaxButtons]Function
	SpecialFunctions [userinput.MaxButtons]Function
}

// NewConfig returns a Config with the default values.
func NewConfig() Config {
	cfg := Config{
		Radial:           true,
		Deadzone:         DefaultDeadzone,
		Tolerance:        DefaultTolerance,
		RadialTolerance:  DefaultRadialTolerance,
		UseAsStick:       true,
		UseHatAsStick:    true,
		MenuSelectButton: 0,
		MenuBackButton:   1,
		AutofireFreq:     DefaultAutofireFreq,
	}
	for i := range cfg.Functions {
		cfg.Functions[i] = FunctionFireHold
		cfg.SpecialFunctions[i] = FunctionFireHold
	}
	return cfg
}

// Function returns the function for the bit in a button word. Bits 16 to 31
// are the special bank. Returns FunctionNone for out of range bits.
func (cfg *Config) Function(bit int) Function {
	switch {
	case bit < 0:
		return FunctionNone
	case bit < userinput.MaxButtons:
		return cfg.Functions[bit]
	case bit < userinput.MaxButtons*2:
		return cfg.SpecialFunctions[bit-userinput.MaxButtons]
	}
	return FunctionNone
}

// Masks returns the button word masks derived from the configuration. The
// special mask has a bit set for every button assigned FunctionSpecialHold,
// in both halves of the word. The key mask has a bit set for every button
// (in either bank) with a function that produces key codes.
func (cfg *Config) Masks() (special uint32, key uint32) {
	for i := 0; i < userinput.MaxButtons; i++ {
		if cfg.Functions[i] == FunctionSpecialHold {
			special |= 1 << i
		}
		if cfg.Functions[i].IsKey() {
			key |= 1 << i
		}
		if cfg.SpecialFunctions[i].IsKey() {
			key |= 1 << (i + userinput.MaxButtons)
		}
	}
	special |= special << userinput.MaxButtons
	return special, key
}
