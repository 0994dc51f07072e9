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

package sdlinput

import (
	"runtime"

	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/keyboard"
	"github.com/jetsetilly/a8input/logger"
	"github.com/jetsetilly/a8input/userinput"
	"github.com/jetsetilly/a8input/version"
	"github.com/veandco/go-sdl2/sdl"
)

// default window size. the display is not drawn so the size only matters
// for the user to find the window
const (
	windowWidth  = 336
	windowHeight = 240
)

// Host implements the userinput.Host interface.
type Host struct {
	window     *sdl.Window
	fullscreen bool
	grab       bool
}

// Create the SDL window and initialise the joystick system.
func Create() (*Host, error) {
	// the SDL package calls LockOSThread() but we call it here too. we never
	// unlock it
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	var v sdl.Version
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", v.Major, v.Minor, v.Patch)

	h := &Host{}

	h.window, err = sdl.CreateWindow(version.String(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowWidth, windowHeight,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	return h, nil
}

// Destroy the window and shutdown SDL. Gamepads opened by the host should be
// closed before calling Destroy().
func (h *Host) Destroy() {
	if h.window != nil {
		if err := h.window.Destroy(); err != nil {
			logger.Logf(logger.Allow, "sdl", "%v", err)
		}
		h.window = nil
	}
	sdl.Quit()
}

// PollEvents implements the userinput.Host interface.
func (h *Host) PollEvents() []userinput.Event {
	sdl.JoystickUpdate()

	var events []userinput.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			// the translator tracks held keys itself
			if ev.Repeat != 0 {
				continue
			}

			key := userinput.Key(ev.Keysym.Sym)
			mod := userinput.KeyMod(ev.Keysym.Mod)
			events = append(events, userinput.EventKeyboard{
				Key:  key,
				Mod:  mod,
				Rune: userinput.Rune(key, mod),
				Down: ev.Type == sdl.KEYDOWN,
			})
		}
	}

	return events
}

// NumGamepads implements the userinput.Host interface.
func (h *Host) NumGamepads() int {
	n := sdl.NumJoysticks()
	if n < 0 {
		return 0
	}
	return n
}

// OpenGamepad implements the userinput.Host interface.
func (h *Host) OpenGamepad(idx int) (userinput.Gamepad, error) {
	joy := sdl.JoystickOpen(idx)
	if joy == nil {
		return nil, curated.Errorf("sdl: %v", sdl.GetError())
	}
	if !joy.Attached() {
		joy.Close()
		return nil, curated.Errorf("sdl: joystick %d is not attached", idx)
	}
	return &joystick{joy: joy}, nil
}

// Apply the host side effects of an action. Actions that have nothing to
// do with the host window are ignored.
func (h *Host) Apply(action keyboard.Action) {
	switch action {
	case keyboard.ActionToggleFullscreen:
		h.SetFullscreen(!h.fullscreen)
	case keyboard.ActionToggleMouseGrab:
		h.SetMouseGrab(!h.grab)
	}
}

// SetFullscreen changes the window between fullscreen and windowed mode.
func (h *Host) SetFullscreen(set bool) {
	var flags uint32
	if set {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := h.window.SetFullscreen(flags); err != nil {
		logger.Logf(logger.Allow, "sdl", "fullscreen: %v", err)
		return
	}
	h.fullscreen = set
}

// SetMouseGrab confines the mouse pointer to the window.
func (h *Host) SetMouseGrab(set bool) {
	h.window.SetGrab(set)
	h.grab = set
	logger.Logf(logger.Allow, "sdl", "mouse grab: %v", set)
}
