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

// Package test bundles helper functions that remove common boilerplate from
// tests written against the standard go test harness.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately and should be used when later
// parts of the test depend on the value being correct, for example checking
// the length of a slice before iterating over it.
//
// Success and failure are decided by the type of the value being tested:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Nil is treated as success because of how errors usually work in Go. A nil
// error means no error.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output. The captured output can then be compared against an expected
// string.
package test
