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

// Package prefs stores and restores preference values. Each value is bound to
// a field owned by another package so that changes made through the prefs
// system are seen immediately by the code using the field, and changes made
// directly to the field are seen the next time the preferences are saved.
//
// The Disk type associates a key with each value and reads and writes the
// values as lines of text in the KEY=VALUE form:
//
//	SDL_PAD_0_JOY_DEADZONE=15000
//	SDL_PAD_0_BUTTON_2_FUNC=FNPAD_UI
//
// Lines for keys that are not known to a Disk instance are preserved when the
// preferences are saved. More than one Disk instance can therefore use the
// same file, each managing its own namespace of keys.
//
// Keys that are no longer used are listed as defunct. They are accepted when
// read and are dropped on the next save.
//
// A preferences string can be given on the command line. It is pushed onto a
// stack with PushCommandLineStack() and any matching values are applied after
// the next call to Disk.Load(). The format of the preferences string is:
//
//	KEY::VALUE; KEY::VALUE
package prefs
