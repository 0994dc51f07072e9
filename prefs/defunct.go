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

package prefs

// list of preference keys that are no longer used. the hat of a pad was once
// enabled by a single key for each of the two joysticks.
var defunct = []string{
	"SDL_JOY_0_USE_HAT",
	"SDL_JOY_1_USE_HAT",
	"SDL_JOY_0_NO_HAT",
	"SDL_JOY_1_NO_HAT",
}

// returns true if string is in list of defunct values.
func isDefunct(s string) bool {
	for _, m := range defunct {
		if s == m {
			return true
		}
	}
	return false
}
