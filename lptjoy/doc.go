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

// Package lptjoy reads digital joysticks wired to a parallel port. The
// joystick switches are wired to the status lines of the port and read with
// the LPGETSTATUS ioctl of the Linux lp driver.
//
// Status values are decoded to the same stick nibble and trigger values as
// the other input devices. See the vkey package.
//
// Parallel port joysticks are only supported on Linux. On other platforms
// Open() always returns the Unsupported error.
package lptjoy
