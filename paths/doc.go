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

// Package paths prepares paths to a8input resources, such as the preferences
// file.
//
// ResourcePath() prepends the appropriate config directory to the resource
// name:
//
//	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// In development builds the base directory is ".a8input" in the current
// directory. In builds with the release tag the base directory is "a8input"
// in the directory returned by os.UserConfigDir(). On a modern Linux system:
//
//	/home/user/.config/a8input/a8input.cfg
//
// Directories are created as required but the resource itself is not.
package paths
