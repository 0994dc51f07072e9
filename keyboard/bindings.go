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

// Direction selects one of the bindings of a keyboard joystick.
type Direction int

// List of valid Direction values.
const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
	DirTrigger
)

// JoystickKeys are the keys that emulate a joystick.
type JoystickKeys struct {
	Enabled bool
	Left    userinput.Key
	Right   userinput.Key
	Up      userinput.Key
	Down    userinput.Key
	Trigger userinput.Key
}

// Binds returns true if the key is one of the joystick keys.
func (j *JoystickKeys) Binds(k userinput.Key) bool {
	return k == j.Left || k == j.Right || k == j.Up || k == j.Down || k == j.Trigger
}

// key returns a pointer to the binding for the direction.
func (j *JoystickKeys) key(dir Direction) *userinput.Key {
	switch dir {
	case DirLeft:
		return &j.Left
	case DirUp:
		return &j.Up
	case DirRight:
		return &j.Right
	case DirDown:
		return &j.Down
	case DirTrigger:
		return &j.Trigger
	}
	return nil
}

// Stick returns the active-low stick nibble for the held keys.
func (j *JoystickKeys) Stick(held func(userinput.Key) bool) uint8 {
	n := vkey.StickCentre
	if !j.Enabled {
		return n
	}
	if held(j.Left) {
		n &= vkey.StickLeft
	}
	if held(j.Right) {
		n &= vkey.StickRight
	}
	if held(j.Up) {
		n &= vkey.StickForward
	}
	if held(j.Down) {
		n &= vkey.StickBack
	}
	return n
}

// TriggerValue returns the trigger value for the held keys.
func (j *JoystickKeys) TriggerValue(held func(userinput.Key) bool) uint8 {
	if j.Enabled && held(j.Trigger) {
		return vkey.TriggerPressed
	}
	return vkey.TriggerReleased
}

// Bindings are the host keys used by the keyboard translator.
type Bindings struct {
	Joysticks [2]JoystickKeys

	UI         userinput.Key
	Option     userinput.Key
	Select     userinput.Key
	Start      userinput.Key
	Reset      userinput.Key
	Help       userinput.Key
	Break      userinput.Key
	Monitor    userinput.Key
	Exit       userinput.Key
	Screenshot userinput.Key
	Turbo      userinput.Key

	// held with another key to form a chord
	Chord userinput.Key
}

// NewBindings returns the default bindings. Joystick 0 is on the keypad and
// enabled. Joystick 1 is on the WASD keys and disabled.
func NewBindings() Bindings {
	return Bindings{
		Joysticks: [2]JoystickKeys{
			{
				Enabled: true,
				Left:    userinput.KeyKP4,
				Right:   userinput.KeyKP6,
				Up:      userinput.KeyKP8,
				Down:    userinput.KeyKP5,
				Trigger: userinput.KeyRCtrl,
			},
			{
				Enabled: false,
				Left:    userinput.KeyA,
				Right:   userinput.KeyD,
				Up:      userinput.KeyW,
				Down:    userinput.KeyS,
				Trigger: userinput.KeyLCtrl,
			},
		},
		UI:         userinput.KeyF1,
		Option:     userinput.KeyF2,
		Select:     userinput.KeyF3,
		Start:      userinput.KeyF4,
		Reset:      userinput.KeyF5,
		Help:       userinput.KeyF6,
		Break:      userinput.KeyF7,
		Monitor:    userinput.KeyF8,
		Exit:       userinput.KeyF9,
		Screenshot: userinput.KeyF10,
		Turbo:      userinput.KeyF12,
		Chord:      userinput.KeyLAlt,
	}
}

// SetJoystickKey changes the key for a direction of keyboard joystick j. Out
// of range values are ignored.
func (b *Bindings) SetJoystickKey(j int, dir Direction, k userinput.Key) {
	if j < 0 || j >= len(b.Joysticks) {
		return
	}
	if p := b.Joysticks[j].key(dir); p != nil {
		*p = k
	}
}

// JoystickKey returns the key for a direction of keyboard joystick j.
// Returns userinput.KeyNone for out of range values.
func (b *Bindings) JoystickKey(j int, dir Direction) userinput.Key {
	if j < 0 || j >= len(b.Joysticks) {
		return userinput.KeyNone
	}
	if p := b.Joysticks[j].key(dir); p != nil {
		return *p
	}
	return userinput.KeyNone
}
