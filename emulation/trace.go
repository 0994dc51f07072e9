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
	"fmt"
	"io"

	"github.com/jetsetilly/a8input/input"
)

// Trace is a Core that writes the input to an io.Writer whenever it changes.
// It is useful for testing an input configuration without an emulator.
type Trace struct {
	w     io.Writer
	frame int
	last  input.Frame
}

// NewTrace is the preferred method of initialisation for the Trace type.
func NewTrace(w io.Writer) *Trace {
	return &Trace{
		w:    w,
		last: input.NewFrame(),
	}
}

// Coldstart implements the Core interface.
func (tr *Trace) Coldstart() {
	fmt.Fprintf(tr.w, "%06d: coldstart\n", tr.frame)
}

// Warmstart implements the Core interface.
func (tr *Trace) Warmstart() {
	fmt.Fprintf(tr.w, "%06d: warmstart\n", tr.frame)
}

// EnterMonitor implements the Core interface.
func (tr *Trace) EnterMonitor() {
	fmt.Fprintf(tr.w, "%06d: monitor\n", tr.frame)
}

// Frame implements the Core interface.
func (tr *Trace) Frame(f input.Frame) CrashCode {
	if f != tr.last {
		fmt.Fprintf(tr.w, "%06d: %s\n", tr.frame, f)
		tr.last = f
	}
	tr.frame++
	return CrashNone
}
