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

// Package monitor serves the arbitrated input frames to WebSocket clients as
// JSON messages. It is useful for watching the input subsystem from a
// browser or a script while the emulation is running.
//
// The Monitor type implements the input.Observer interface. Frames are handed
// to the monitor's goroutines through a buffered channel and are dropped if
// the channel is full, so a slow client can never stall arbitration.
//
// A client receives a "full" message when it connects and then a "frame"
// message whenever the arbitrated frame changes.
package monitor
