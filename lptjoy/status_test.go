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

package lptjoy_test

import (
	"testing"

	"github.com/jetsetilly/a8input/lptjoy"
	"github.com/jetsetilly/a8input/vkey"
)

func TestStick(t *testing.T) {
	tests := []struct {
		status   lptjoy.Status
		expected uint8
	}{
		{0x78, vkey.StickCentre},
		{0x38, vkey.StickRight},
		{0x28, vkey.StickRight & vkey.StickForward},
		{0x18, vkey.StickRight & vkey.StickBack},
		{0xf8, vkey.StickLeft},
		{0xe8, vkey.StickLeft & vkey.StickForward},
		{0xd8, vkey.StickLeft & vkey.StickBack},
		{0x68, vkey.StickForward},
		{0x58, vkey.StickBack},

		// opposing directions
		{0x48, vkey.StickForward},
		{0xb8, vkey.StickRight},

		// the trigger line has no effect on the stick
		{0x70, vkey.StickCentre},
	}

	for _, tt := range tests {
		if tt.status.Stick() != tt.expected {
			t.Errorf("status %s: stick %#02x, expected %#02x", tt.status, tt.status.Stick(), tt.expected)
		}
	}
}

func TestTrigger(t *testing.T) {
	if lptjoy.Status(0x78).Trigger() != vkey.TriggerReleased {
		t.Errorf("trigger should be released")
	}
	if lptjoy.Status(0x70).Trigger() != vkey.TriggerPressed {
		t.Errorf("trigger should be pressed")
	}
	if lptjoy.Status(0x28).Trigger() != vkey.TriggerReleased {
		t.Errorf("trigger should be released")
	}
}
