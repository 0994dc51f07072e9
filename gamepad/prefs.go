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

	"github.com/jetsetilly/a8input/logger"
	"github.com/jetsetilly/a8input/prefs"
	"github.com/jetsetilly/a8input/userinput"
)

// Key returns the preferences key for a field of the configuration of gamepad
// n. For example, Key(0, "JOY_RADIAL") returns "SDL_PAD_0_JOY_RADIAL".
func Key(n int, field string) string {
	return fmt.Sprintf("SDL_PAD_%d_%s", n, field)
}

// ButtonKey returns the preferences key for a button function of gamepad n.
func ButtonKey(n int, button int, special bool) string {
	if special {
		return Key(n, fmt.Sprintf("BUTTON_%d_SP_FUNC", button))
	}
	return Key(n, fmt.Sprintf("BUTTON_%d_FUNC", button))
}

func functionPref(fn *Function, key string) *prefs.Generic {
	return prefs.NewGeneric(
		func(s string) error {
			v, err := ParseFunction(s)
			if err != nil {
				logger.Logf(logger.Allow, "gamepad", "%s: %v", key, err)
				return err
			}
			*fn = v
			return nil
		},
		func() string {
			return fn.String()
		},
	)
}

// Bind the configuration fields to preference values in the disk instance,
// using the keys for gamepad n. Keys are added in the order in which they are
// written to the preferences file.
func (cfg *Config) Bind(dsk *prefs.Disk, n int) error {
	autofire := prefs.NewInt(&cfg.AutofireFreq)
	autofire.SetHookPost(func(_ prefs.Value) error {
		if cfg.AutofireFreq <= 0 {
			cfg.AutofireFreq = 1
		}
		return nil
	})

	fields := []struct {
		field string
		p     prefs.Pref
	}{
		{"JOY_RADIAL", prefs.NewBool(&cfg.Radial)},
		{"JOY_DEADZONE", prefs.NewInt(&cfg.Deadzone)},
		{"JOY_TOLERANCE", prefs.NewFloat(&cfg.Tolerance)},
		{"JOY_RADIAL_TOLERANCE", prefs.NewFloat(&cfg.RadialTolerance)},
		{"JOY_USE_AS_STICK", prefs.NewBool(&cfg.UseAsStick)},
		{"HAT_USE_AS_STICK", prefs.NewBool(&cfg.UseHatAsStick)},
		{"JOY_USE_IN_MENUS", prefs.NewBool(&cfg.UseInMenus)},
		{"HAT_USE_IN_MENUS", prefs.NewBool(&cfg.UseHatInMenus)},
		{"IN_MENUS_SELECT_BUTTON", prefs.NewInt(&cfg.MenuSelectButton)},
		{"IN_MENUS_BACK_BUTTON", prefs.NewInt(&cfg.MenuBackButton)},
		{"AUTOFIRE_FREQ", autofire},
	}

	for _, f := range fields {
		if err := dsk.Add(Key(n, f.field), f.p); err != nil {
			return err
		}
	}

	for b := 0; b < userinput.MaxButtons; b++ {
		k := ButtonKey(n, b, false)
		if err := dsk.Add(k, functionPref(&cfg.Functions[b], k)); err != nil {
			return err
		}
	}
	for b := 0; b < userinput.MaxButtons; b++ {
		k := ButtonKey(n, b, true)
		if err := dsk.Add(k, functionPref(&cfg.SpecialFunctions[b], k)); err != nil {
			return err
		}
	}

	return nil
}
