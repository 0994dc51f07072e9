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

// Package curated wraps the Go error type so that errors raised by a8input can
// be identified by the pattern that created them.
//
// Curated errors are created with Errorf(). Unlike fmt.Errorf() the pattern
// and values are stored and formatting is deferred until Error() is called.
// The stored pattern is what the Is() and Has() functions test against:
//
//	const UnknownFunction = "gamepad: unknown function symbol: %s"
//
//	err := curated.Errorf(UnknownFunction, "FNPAD_FOO")
//	if curated.Is(err, UnknownFunction) {
//		...
//	}
//
// Has() looks for the pattern anywhere in the chain of wrapped curated errors:
//
//	e := curated.Errorf("prefs: %v", err)
//	curated.Has(e, UnknownFunction) // true
//	curated.Is(e, UnknownFunction)  // false
//
// Error() normalises the message by removing the first part of the chain if
// it is repeated immediately afterwards. Chains are parts separated by ": ".
// So wrapping "prefs: %v" around an error that already begins with "prefs: "
// produces a single "prefs: " prefix.
//
// Sentinel patterns are stored as const strings in the package that raises
// them.
package curated
