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

// Package statsview offers a local HTTP server with runtime statistics for
// the emulator process. It is useful for watching the allocation behaviour
// of the per-frame arbitration loop. The server is only available when the
// program is built with the statsview build tag:
//
//	go build -tags statsview
//
// Without the tag, Available() returns false and Launch() only logs that the
// server is missing.
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12800/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12800/debug/pprof/
package statsview

// DefaultAddress is used when Launch() is called with an empty address.
const DefaultAddress = "localhost:12800"

const url = "/debug/statsview"
