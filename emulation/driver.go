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

package emulation

import (
	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/input"
	"github.com/jetsetilly/a8input/logger"
	"github.com/jetsetilly/a8input/vkey"
)

// Sentinal error patterns.
const (
	Crashed = "emulation: core stopped: %v"
)

// Driver advances a Core one frame at a time.
type Driver struct {
	input *input.Subsystem
	core  Core

	state State

	// the most recent crash code
	crash CrashCode

	// number of frames advanced by the core
	frames int
}

// NewDriver is the preferred method of initialisation for the Driver type.
func NewDriver(in *input.Subsystem, core Core) *Driver {
	return &Driver{
		input: in,
		core:  core,
		state: EmulatorStart,
	}
}

// NextFrame arbitrates the input and advances the core by one frame. The
// cold start, warm start and UI keys are handled before the frame is
// advanced. The exit key moves the driver to the Ending state and the core is
// not advanced.
//
// If the core crashes during the frame a Crashed error is returned. The
// crash code is available with the Crash() function until the next frame.
func (d *Driver) NextFrame() error {
	if d.state == Ending {
		return nil
	}
	if d.state == EmulatorStart {
		d.state = Running
	}

	f := d.input.Arbitrate()

	switch f.Key {
	case vkey.Coldstart:
		d.core.Coldstart()
		d.input.Restart()
	case vkey.Warmstart:
		d.core.Warmstart()
		d.input.Restart()
	case vkey.UI:
		d.core.EnterMonitor()
	case vkey.Exit:
		d.state = Ending
		return nil
	}

	if d.state == Paused {
		return nil
	}

	d.crash = d.core.Frame(f)
	d.frames++

	if d.crash != CrashNone {
		err := curated.Errorf(Crashed, d.crash)
		logger.Logf(logger.Allow, "emulation", "frame %d: %v", d.frames, err)
		return err
	}

	return nil
}

// State returns the current state of the driver.
func (d *Driver) State() State {
	return d.state
}

// Crash returns the crash code for the most recent frame.
func (d *Driver) Crash() CrashCode {
	return d.crash
}

// Frames returns the number of frames advanced by the core.
func (d *Driver) Frames() int {
	return d.frames
}

// SetFeature implements a request from the user interface.
func (d *Driver) SetFeature(request FeatureReq, args ...FeatureReqData) error {
	if len(args) != 1 {
		return curated.Errorf(UnsupportedEmulationFeature, request)
	}

	v, ok := args[0].(bool)
	if !ok {
		return curated.Errorf(UnsupportedEmulationFeature, request)
	}

	switch request {
	case ReqSetPause:
		if d.state == Ending {
			return nil
		}
		if v {
			d.state = Paused
		} else {
			d.state = Running
		}
	case ReqSetPortsSwapped:
		d.input.SetPortsSwapped(v)
	case ReqSetMenuActive:
		d.input.SetMenuActive(v)
	default:
		return curated.Errorf(UnsupportedEmulationFeature, request)
	}

	return nil
}
