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

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/a8input/version.number=v0.1.0"
//
// Without a number the version is "unreleased" if the binary has vcs
// information and "local" if it does not.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "a8input"

// set by the linker
var number string

var (
	version  string
	revision string
)

func init() {
	version, revision = fromBuildInfo(number)
}

// fromBuildInfo returns the version and revision strings for the version
// number and the build information of the running binary.
func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev != "" && modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}

// Version returns the version string, the vcs revision and whether this is a
// numbered release. The revision is empty if there is no vcs information.
func Version() (string, string, bool) {
	return version, revision, number != ""
}

// String returns the application name and version in a form suitable for
// window titles and log entries.
func String() string {
	if revision == "" || number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}

	// short form of the revision
	rev := revision
	if len(rev) > 7 {
		rev = rev[:7]
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, rev)
}
