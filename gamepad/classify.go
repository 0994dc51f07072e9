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
	"math"

	"github.com/jetsetilly/a8input/userinput"
	"github.com/jetsetilly/a8input/vkey"
)

// Stick is a nine-way joystick position. Both fields are always -1, 0 or 1.
// Negative Y is up.
type Stick struct {
	X int
	Y int
}

// Centred returns true if the stick is in the centre position.
func (s Stick) Centred() bool {
	return s.X == 0 && s.Y == 0
}

// Nibble returns the active-low port value for the stick position.
func (s Stick) Nibble() uint8 {
	n := vkey.StickCentre
	switch s.X {
	case -1:
		n &= vkey.StickLeft
	case 1:
		n &= vkey.StickRight
	}
	switch s.Y {
	case -1:
		n &= vkey.StickForward
	case 1:
		n &= vkey.StickBack
	}
	return n
}

// sectors are indexed by the angle of the stick in units of 45°, offset by
// four. both -4 and 4 are left.
var sectors = [9]Stick{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

func deadzone(cfg *Config) float64 {
	if cfg.Deadzone < 1 {
		return 1
	}
	return float64(cfg.Deadzone)
}

// Classify the analogue stick position. The last position is used for the
// hysteresis around the deadzone in square mode.
func Classify(cfg *Config, x int, y int, last Stick) Stick {
	if cfg.Radial {
		return classifyRadial(cfg, x, y)
	}
	return Stick{
		X: classifySquare(cfg, x, last.X),
		Y: classifySquare(cfg, y, last.Y),
	}
}

// a deflected axis stays deflected until it falls below the deadzone less
// half the tolerance. a centred axis needs to pass the deadzone plus half the
// tolerance.
func classifySquare(cfg *Config, v int, last int) int {
	dz := deadzone(cfg)
	enter := dz * (1 + 0.5*cfg.Tolerance)
	exit := dz * (1 - 0.5*cfg.Tolerance)

	f := float64(v)
	switch {
	case last == 1 && f >= exit:
		return 1
	case last == -1 && f <= -exit:
		return -1
	case f > enter:
		return 1
	case f < -enter:
		return -1
	}
	return 0
}

func classifyRadial(cfg *Config, x int, y int) Stick {
	dz := deadzone(cfg)
	xn := float64(x) / dz
	yn := float64(y) / dz
	if xn*xn+yn*yn < 1.0 {
		return Stick{}
	}
	sector := int(math.Round(math.Atan2(float64(y), float64(x)) / (math.Pi / 4)))
	return sectors[sector+4]
}

// RadialHysteresis returns true if a stick at x, y has moved far enough from
// the last position for it to be classified again. A stick that was centred
// must move beyond the deadzone plus the tolerance. A deflected stick must
// move inside the deadzone less the tolerance, or out of the last sector
// widened by the radial tolerance.
//
// Classify() does not consult this function. The stick is classified again
// on every sample.
func RadialHysteresis(cfg *Config, x int, y int, last Stick) bool {
	dz := deadzone(cfg)
	xn := float64(x) / dz
	yn := float64(y) / dz
	dist := xn*xn + yn*yn

	if last.Centred() {
		outer := 1.0 + cfg.Tolerance
		return dist > outer*outer
	}

	inner := 1.0 - cfg.Tolerance
	if dist < inner*inner {
		return true
	}

	var lastSector int
	switch last.X {
	case -1:
		lastSector = 4 - last.Y
	case 0:
		lastSector = last.Y * 2
	default:
		lastSector = last.Y
	}
	if lastSector == 5 {
		lastSector = -3
	}

	angle := math.Atan2(float64(y), float64(x))
	width := math.Pi / 8 * (1 + cfg.RadialTolerance/2)
	min := float64(lastSector)*math.Pi/4 - width
	max := float64(lastSector)*math.Pi/4 + width

	// the left sector straddles the discontinuity in atan2()
	if lastSector == 4 {
		max -= math.Pi * 2
		return angle > max && angle < min
	}
	return angle > max || angle < min
}

// ClassifyHat converts the hat direction to a stick position.
func ClassifyHat(h userinput.HatDirection) Stick {
	var s Stick
	if h&userinput.HatLeft == userinput.HatLeft {
		s.X--
	}
	if h&userinput.HatRight == userinput.HatRight {
		s.X++
	}
	if h&userinput.HatDown == userinput.HatDown {
		s.Y++
	}
	if h&userinput.HatUp == userinput.HatUp {
		s.Y--
	}
	return s
}
