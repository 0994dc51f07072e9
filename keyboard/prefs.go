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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/prefs"
	"github.com/jetsetilly/a8input/userinput"
)

// Sentinal error patterns.
const (
	InvalidKey = "keyboard: invalid key value (%s)"
)

// keys are stored as the integer value of the Key type.
func keyPref(k *userinput.Key) *prefs.Generic {
	return prefs.NewGeneric(
		func(s string) error {
			v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
			if err != nil || !userinput.Key(v).Valid() {
				return curated.Errorf(InvalidKey, s)
			}
			*k = userinput.Key(v)
			return nil
		},
		func() string {
			return strconv.FormatInt(int64(*k), 10)
		},
	)
}

// Bind the key bindings to preference values in the disk instance. Keys are
// added in the order in which they are written to the preferences file.
func (b *Bindings) Bind(dsk *prefs.Disk) error {
	for j := range b.Joysticks {
		joy := &b.Joysticks[j]
		fields := []struct {
			field string
			p     prefs.Pref
		}{
			{"ENABLED", prefs.NewBool(&joy.Enabled)},
			{"LEFT", keyPref(&joy.Left)},
			{"RIGHT", keyPref(&joy.Right)},
			{"UP", keyPref(&joy.Up)},
			{"DOWN", keyPref(&joy.Down)},
			{"TRIGGER", keyPref(&joy.Trigger)},
		}
		for _, f := range fields {
			if err := dsk.Add(fmt.Sprintf("SDL_JOY_%d_%s", j, f.field), f.p); err != nil {
				return err
			}
		}
	}

	system := []struct {
		key string
		k   *userinput.Key
	}{
		{"SDL_UI_KEY", &b.UI},
		{"SDL_OPTION_KEY", &b.Option},
		{"SDL_SELECT_KEY", &b.Select},
		{"SDL_START_KEY", &b.Start},
		{"SDL_RESET_KEY", &b.Reset},
		{"SDL_HELP_KEY", &b.Help},
		{"SDL_BREAK_KEY", &b.Break},
		{"SDL_MON_KEY", &b.Monitor},
		{"SDL_EXIT_KEY", &b.Exit},
		{"SDL_SSHOT_KEY", &b.Screenshot},
		{"SDL_TURBO_KEY", &b.Turbo},
	}
	for _, s := range system {
		if err := dsk.Add(s.key, keyPref(s.k)); err != nil {
			return err
		}
	}

	return nil
}
