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

package lptjoy

import (
	"github.com/jetsetilly/a8input/curated"
	"golang.org/x/sys/unix"
)

// from linux/lp.h
const lpGetStatus = 0x060b

// Device is an open parallel port.
type Device struct {
	path string
	fd   int
}

// Open the parallel port device at path. For example, /dev/lp0.
func Open(path string) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, curated.Errorf(OpenFailed, path, err)
	}
	return &Device{path: path, fd: fd}, nil
}

// Status reads the status register of the port.
func (dev *Device) Status() (Status, error) {
	v, err := unix.IoctlGetInt(dev.fd, lpGetStatus)
	if err != nil {
		return Status(0), curated.Errorf(StatusFailed, dev.path, err)
	}
	return Status(v), nil
}

// Close the device.
func (dev *Device) Close() error {
	return unix.Close(dev.fd)
}

func (dev *Device) String() string {
	return dev.path
}
