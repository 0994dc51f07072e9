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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/a8input/test"
	"github.com/jetsetilly/a8input/userinput"
)

func TestQueue(t *testing.T) {
	q := userinput.NewQueue(2)
	test.ExpectEquality(t, len(q.Drain()), 0)

	test.ExpectSuccess(t, q.Push(userinput.EventKeyboard{Key: userinput.KeyA, Rune: 'a', Down: true}))
	test.ExpectSuccess(t, q.Push(userinput.EventQuit{}))
	test.ExpectFailure(t, q.Push(userinput.EventQuit{}))

	evs := q.Drain()
	test.ExpectEquality(t, len(evs), 2)
	ev, ok := evs[0].(userinput.EventKeyboard)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Key, userinput.KeyA)
	_, ok = evs[1].(userinput.EventQuit)
	test.ExpectSuccess(t, ok)

	test.ExpectEquality(t, len(q.Drain()), 0)
}

func TestKeyString(t *testing.T) {
	test.ExpectEquality(t, userinput.KeyF1.String(), "F1")
	test.ExpectEquality(t, userinput.KeyA.String(), "a")
	test.ExpectEquality(t, userinput.KeySpace.String(), "Space")
	test.ExpectEquality(t, int32(userinput.KeyKP4), int32(92|userinput.ScancodeMask))
}
