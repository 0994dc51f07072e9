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

// Autofire generates a square wave fire signal. The signal is on for freq
// frames and off for freq frames, starting from the frame in which autofire
// becomes active.
type Autofire struct {
	// toggled by FunctionAutofireToggle buttons
	Toggle bool

	phase      int
	active     bool
	lastActive bool
}

// Step advances the generator by one frame and returns whether autofire is
// firing. Autofire is active when exactly one of the toggle and the hold
// button is on.
func (af *Autofire) Step(hold bool, freq int) bool {
	if freq < 1 {
		freq = 1
	}

	af.active = af.Toggle != hold
	if af.active && !af.lastActive {
		af.phase = 0
	}
	fire := af.active && af.phase < freq
	af.lastActive = af.active

	af.phase++
	if af.phase >= freq*2 {
		af.phase = 0
	}

	return fire
}

// Phase returns the current frame within the autofire period.
func (af *Autofire) Phase() int {
	return af.phase
}

// Active returns true if autofire was active during the last Step().
func (af *Autofire) Active() bool {
	return af.active
}

// Reset the generator.
func (af *Autofire) Reset() {
	*af = Autofire{}
}
