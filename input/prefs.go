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

package input

import (
	"io"
	"strings"

	"github.com/jetsetilly/a8input/logger"
)

// gamepad keys are recognised by their prefix
const gamepadPrefix = "SDL_PAD_"

// ReadConfig sets the preference named by key. Returns false if the key does
// not belong to the input subsystem. Keys with the gamepad prefix are always
// claimed by the input subsystem, even if they are not recognised.
func (s *Subsystem) ReadConfig(key string, value string) (bool, error) {
	handled, err := s.Prefs.Set(key, value)
	if !handled && strings.HasPrefix(key, gamepadPrefix) {
		logger.Logf(logger.Allow, "input", "unrecognised gamepad preference: %s", key)
		return true, nil
	}
	return handled, err
}

// WriteConfig writes the keyboard preferences followed by the gamepad
// preferences as KEY=VALUE lines.
func (s *Subsystem) WriteConfig(w io.Writer) error {
	return s.Prefs.Write(w)
}
