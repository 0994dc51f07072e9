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

//go:build !linux

package lptjoy

import "github.com/jetsetilly/a8input/curated"

// Device is an open parallel port.
type Device struct {
	path string
}

// Open always fails on this platform.
func Open(path string) (*Device, error) {
	return nil, curated.Errorf(Unsupported)
}

// Status always fails on this platform.
func (dev *Device) Status() (Status, error) {
	return Status(0), curated.Errorf(Unsupported)
}

// Close the device.
func (dev *Device) Close() error {
	return nil
}

func (dev *Device) String() string {
	return dev.path
}
