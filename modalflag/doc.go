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

// Package modalflag wraps the flag package from the standard library. It adds
// program modes and sub-modes to the normal flag handling, with each mode
// able to define its own set of flags.
//
// Unlike flag.FlagSet, the arguments are given to the Modes type with
// NewArgs() and then Parse() is called without arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "PREFS")
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, Mode() returns the sub-mode that was selected. If the first
// non-flag argument is not one of the listed sub-modes then the first listed
// sub-mode is used. Sub-mode comparisons are case insensitive.
//
// Flags for the selected mode are parsed with a further call to NewMode() and
// Parse():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		grab := md.AddBool("grabmouse", false, "grab mouse on start")
//		if p, _ := md.Parse(); p != modalflag.ParseContinue {
//			return
//		}
//		run(*grab, md.RemainingArgs())
//	}
//
// The Path() function returns every mode selected so far, separated by a
// forward slash. The help message for a mode names the path.
package modalflag
