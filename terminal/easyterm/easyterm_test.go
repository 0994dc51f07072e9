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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/a8input/terminal/easyterm"
	"github.com/jetsetilly/a8input/test"
)

func TestInitialiseMissingFiles(t *testing.T) {
	var pt easyterm.Terminal
	test.ExpectFailure(t, pt.Initialise(nil, os.Stdout))
	test.ExpectFailure(t, pt.Initialise(os.Stdin, nil))
}

func TestInitialiseNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()
	defer w.Close()

	// a pipe has no termios attributes
	var pt easyterm.Terminal
	test.ExpectFailure(t, pt.Initialise(r, w))
	test.ExpectEquality(t, pt.Columns(), 0)
}
