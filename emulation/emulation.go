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

// Package emulation connects the input subsystem to an emulation core. The
// Driver arbitrates the input for every frame, handles the reset and monitor
// keys and then advances the core by one frame.
package emulation

import (
	"github.com/jetsetilly/a8input/input"
)

// Core is a minimal abstraction of the emulated machine.
type Core interface {
	Coldstart()
	Warmstart()

	// the emulator's monitor has been requested
	EnterMonitor()

	// advance the emulation by one frame with the input for that frame
	Frame(f input.Frame) CrashCode
}

// State indicates the emulation's state.
type State int

// List of possible emulation states.
//
// EmulatorStart is the default state and should never be entered once the
// emulator has begun.
//
// Values are ordered so that order comparisons are meaningful.
const (
	EmulatorStart State = iota
	Paused
	Running
	Ending
)

func (s State) String() string {
	switch s {
	case EmulatorStart:
		return "start"
	case Paused:
		return "paused"
	case Running:
		return "running"
	case Ending:
		return "ending"
	}
	return "unknown"
}

// CrashCode is the reason the core stopped during a frame.
type CrashCode int

// List of valid CrashCode values.
const (
	CrashNone CrashCode = iota
	CrashUnidentifiedCartridge
	CrashCPU
	CrashBRK
	CrashDisplayList
	CrashSelfTest
	CrashMemoPad
	CrashInvalidEscape
)

var crashMessages = []string{
	"no error",
	"unidentified cartridge",
	"CPU crash",
	"BRK instruction",
	"invalid display list",
	"self test",
	"memo pad",
	"invalid escape opcode",
}

func (c CrashCode) String() string {
	if c < 0 || int(c) >= len(crashMessages) {
		return "unknown error"
	}
	return crashMessages[c]
}
