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

package input

import (
	"io"

	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/gamepad"
	"github.com/jetsetilly/a8input/keyboard"
	"github.com/jetsetilly/a8input/logger"
	"github.com/jetsetilly/a8input/lptjoy"
	"github.com/jetsetilly/a8input/prefs"
	"github.com/jetsetilly/a8input/userinput"
	"github.com/jetsetilly/a8input/vkey"
)

// Sentinal error patterns.
const (
	InvalidPort = "input: invalid port (%d)"
)

// MaxGamepads is the maximum number of gamepads used by the subsystem.
const MaxGamepads = 4

// number of ports with a keyboard joystick or a parallel port joystick
const numLegacyPorts = 2

// LPT is a joystick on a parallel port. Implemented by lptjoy.Device.
type LPT interface {
	Status() (lptjoy.Status, error)
}

// Observer is notified of every arbitrated frame. Arbitrated() is called
// from the goroutine that calls Arbitrate() and must not block.
type Observer interface {
	Arbitrated(Frame)
}

// Observers is a list of observers that are notified in order.
type Observers []Observer

// Arbitrated implements the Observer interface.
func (obs Observers) Arbitrated(f Frame) {
	for _, o := range obs {
		o.Arbitrated(f)
	}
}

// Subsystem is the input subsystem. The zero value is not usable, use
// NewSubsystem().
type Subsystem struct {
	// preferences for the keyboard bindings and the gamepad configurations
	Prefs *prefs.Disk

	host       userinput.Host
	noGamepads bool

	bindings   keyboard.Bindings
	translator *keyboard.Translator

	// configs are indexed by gamepad slot. a pad uses the config for the
	// slot it occupies
	configs [MaxGamepads]gamepad.Config
	pads    [MaxGamepads]*gamepad.Pad
	devices [MaxGamepads]userinput.Gamepad

	lpt [numLegacyPorts]LPT

	swapped    bool
	menuActive bool

	// the most recent frame
	frame Frame

	observer Observer
}

// NewSubsystem is the preferred method of initialisation for the Subsystem
// type. The preferences file is not loaded, call Prefs.Load() to do that.
func NewSubsystem(prefsFile string) (*Subsystem, error) {
	s := &Subsystem{
		bindings: keyboard.NewBindings(),
		frame:    NewFrame(),
	}
	s.translator = keyboard.NewTranslator(&s.bindings)
	for i := range s.configs {
		s.configs[i] = gamepad.NewConfig()
	}

	var err error

	s.Prefs, err = prefs.NewDisk(prefsFile)
	if err != nil {
		return nil, curated.Errorf("input: %v", err)
	}

	// keyboard preferences are written before gamepad preferences
	if err := s.bindings.Bind(s.Prefs); err != nil {
		return nil, curated.Errorf("input: %v", err)
	}
	for i := range s.configs {
		if err := s.configs[i].Bind(s.Prefs, i); err != nil {
			return nil, curated.Errorf("input: %v", err)
		}
	}

	return s, nil
}

// Enumerate the gamepads of the host. Any previously opened gamepads are
// closed and the state of every pad is reset. Gamepads that cannot be opened
// are skipped, the remaining gamepads take the next free slot.
//
// The host is also the source of events for Arbitrate().
func (s *Subsystem) Enumerate(host userinput.Host) {
	s.closeGamepads()
	s.host = host

	if host == nil || s.noGamepads {
		return
	}

	n := host.NumGamepads()
	slot := 0
	for i := 0; i < n && slot < MaxGamepads; i++ {
		dev, err := host.OpenGamepad(i)
		if err != nil {
			logger.Logf(logger.Allow, "input", "gamepad %d: %v", i, err)
			continue
		}
		s.devices[slot] = dev
		s.pads[slot] = gamepad.NewPad(&s.configs[slot], dev.NumButtons())
		logger.Logf(logger.Allow, "input", "gamepad %d: %s (%d buttons)", slot, dev.Name(), dev.NumButtons())
		slot++
	}

	if slot == 0 {
		logger.Log(logger.Allow, "input", "no gamepads found")
	}
}

func (s *Subsystem) closeGamepads() {
	for i := range s.devices {
		if s.devices[i] != nil {
			if err := s.devices[i].Close(); err != nil {
				logger.Logf(logger.Allow, "input", "gamepad %d: %v", i, err)
			}
		}
		s.devices[i] = nil
		s.pads[i] = nil
	}
}

// DisableGamepads prevents Enumerate() from opening any gamepads. Must be
// called before Enumerate().
func (s *Subsystem) DisableGamepads() {
	s.noGamepads = true
}

// NumGamepads returns the number of gamepads found by Enumerate().
func (s *Subsystem) NumGamepads() int {
	var n int
	for _, p := range s.pads {
		if p != nil {
			n++
		}
	}
	return n
}

// Gamepad returns the pad in slot n. Returns nil if there is no gamepad in
// that slot.
func (s *Subsystem) Gamepad(n int) *gamepad.Pad {
	if n < 0 || n >= MaxGamepads {
		return nil
	}
	return s.pads[n]
}

// GamepadConfig returns the configuration for slot n. Returns nil for out of
// range values.
func (s *Subsystem) GamepadConfig(n int) *gamepad.Config {
	if n < 0 || n >= MaxGamepads {
		return nil
	}
	return &s.configs[n]
}

// Bindings returns the keyboard bindings.
func (s *Subsystem) Bindings() *keyboard.Bindings {
	return &s.bindings
}

// AttachLPT attaches a parallel port joystick to port 0 or port 1. A nil
// value detaches the joystick. The gamepad stick for the port is no longer
// used while a parallel port joystick is attached.
func (s *Subsystem) AttachLPT(port int, lpt LPT) error {
	if port < 0 || port >= numLegacyPorts {
		return curated.Errorf(InvalidPort, port)
	}
	if c, ok := s.lpt[port].(io.Closer); ok && s.lpt[port] != lpt {
		_ = c.Close()
	}
	s.lpt[port] = lpt
	return nil
}

// OpenLPT opens the parallel port device at path and attaches it to the
// port.
func (s *Subsystem) OpenLPT(port int, path string) error {
	if port < 0 || port >= numLegacyPorts {
		return curated.Errorf(InvalidPort, port)
	}
	dev, err := lptjoy.Open(path)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "input", "parallel port joystick on port %d: %s", port, dev)
	return s.AttachLPT(port, dev)
}

// Close all devices.
func (s *Subsystem) Close() {
	s.closeGamepads()
	for i := range s.lpt {
		_ = s.AttachLPT(i, nil)
	}
}

// SetObserver sets the observer that is notified of every frame. A nil value
// removes the observer.
func (s *Subsystem) SetObserver(o Observer) {
	s.observer = o
}

// Restart forgets the most recent key press. Should be called when the
// emulation is restarted.
func (s *Subsystem) Restart() {
	s.translator.Restart()
	s.frame.Key = vkey.None
}

// SwapPorts swaps the keyboard joysticks between ports 0 and 1.
func (s *Subsystem) SwapPorts() {
	s.SetPortsSwapped(!s.swapped)
}

// SetPortsSwapped sets whether the keyboard joysticks are swapped.
func (s *Subsystem) SetPortsSwapped(swapped bool) {
	s.swapped = swapped
	if s.swapped {
		logger.Log(logger.Allow, "input", "keyboard joysticks swapped")
	} else {
		logger.Log(logger.Allow, "input", "keyboard joysticks not swapped")
	}
}

// PortsSwapped returns true if the keyboard joysticks are swapped.
func (s *Subsystem) PortsSwapped() bool {
	return s.swapped
}

// SetKeyboardJoystick enables or disables keyboard joystick j.
func (s *Subsystem) SetKeyboardJoystick(j int, enabled bool) {
	if j < 0 || j >= len(s.bindings.Joysticks) {
		return
	}
	s.bindings.Joysticks[j].Enabled = enabled
}

// KeyboardJoystick returns true if keyboard joystick j is enabled.
func (s *Subsystem) KeyboardJoystick(j int) bool {
	if j < 0 || j >= len(s.bindings.Joysticks) {
		return false
	}
	return s.bindings.Joysticks[j].Enabled
}

// SetMenuActive should be called with true when the emulator's user
// interface is showing. Gamepads can be used to navigate the menu and the
// keyboard joystick keys are passed through.
func (s *Subsystem) SetMenuActive(active bool) {
	s.menuActive = active
}

// SetCX85 enables the CX85 numeric keypad on the host keypad. Keyboard
// joystick 0 is disabled because it uses the same keys.
func (s *Subsystem) SetCX85(enabled bool) {
	s.translator.CX85 = enabled
	if enabled {
		s.SetKeyboardJoystick(0, false)
	}
}

// SetMachine5200 selects the 5200 keypad translation.
func (s *Subsystem) SetMachine5200(is5200 bool) {
	s.translator.Machine5200 = is5200
}

// SetFunctionKeys selects the XL/XE function keys translation of the cursor
// keys.
func (s *Subsystem) SetFunctionKeys(enabled bool) {
	s.translator.FunctionKeys = enabled
}

// SetNTSCFilter should be called with true when the NTSC filter is in use.
// The NTSC filter adjustment chords are not recognised otherwise.
func (s *Subsystem) SetNTSCFilter(enabled bool) {
	s.translator.NTSCFilter = enabled
}

// Arbitrate the input from all devices and return the frame. Events are
// drained from the host.
func (s *Subsystem) Arbitrate() Frame {
	var events []userinput.Event
	if s.host != nil {
		events = s.host.PollEvents()
	}

	// gamepads are updated before the keyboard key is considered
	consol := vkey.ConsoleNone
	for i, p := range s.pads {
		if p != nil {
			consol &= p.Update(s.devices[i].Sample(), s.menuActive)
		}
	}

	res := s.translator.Translate(events, s.menuActive)

	f := NewFrame()
	f.Key = res.Key
	f.Adjust = res.Adjust
	f.Menu = res.Menu
	f.Console = res.Consol & consol

	if f.Key == vkey.None {
		for _, p := range s.pads {
			if p == nil {
				continue
			}
			if k := p.Key(s.menuActive); k != vkey.None {
				f.Key = k
				break
			}
		}
	}

	switch res.Action {
	case keyboard.ActionSwapPorts:
		s.SwapPorts()
	default:
		f.Action = res.Action
	}

	s.arbitratePorts(&f)

	s.frame = f
	if s.observer != nil {
		s.observer.Arbitrated(f)
	}

	return f
}

func (s *Subsystem) arbitratePorts(f *Frame) {
	for j := 0; j < numLegacyPorts; j++ {
		f.Ports[j] = s.translator.Stick(j)
		f.Triggers[j] = s.translator.Trigger(j)
	}
	if s.swapped {
		f.Ports[0], f.Ports[1] = f.Ports[1], f.Ports[0]
		f.Triggers[0], f.Triggers[1] = f.Triggers[1], f.Triggers[0]
	}

	for i := range f.Ports {
		p := s.pads[i]

		if i < numLegacyPorts && s.lpt[i] != nil {
			st, err := s.lpt[i].Status()
			if err != nil {
				logger.Logf(logger.Allow, "input", "port %d: %v", i, err)
			} else {
				f.Ports[i] &= st.Stick()
				f.Triggers[i] &= st.Trigger()
			}
		} else if p != nil {
			f.Ports[i] &= p.Port()
		}

		if p != nil {
			f.Triggers[i] &= p.Trigger()
		}
	}
}

// Frame returns the most recent frame.
func (s *Subsystem) Frame() Frame {
	return s.frame
}

// KeyCode returns the key code of the most recent frame.
func (s *Subsystem) KeyCode() vkey.Code {
	return s.frame.Key
}

// Port returns the stick nibble of port n for the most recent frame.
func (s *Subsystem) Port(n int) uint8 {
	return s.frame.Port(n)
}

// Trigger returns the trigger value of port n for the most recent frame.
func (s *Subsystem) Trigger(n int) uint8 {
	return s.frame.Trigger(n)
}

// Console returns the console key bits for the most recent frame.
func (s *Subsystem) Console() uint8 {
	return s.frame.Console
}

// PortRegister returns the value of PIA port register n for the most recent
// frame.
func (s *Subsystem) PortRegister(n int) uint8 {
	return s.frame.PortRegister(n)
}

// TriggerLine returns the value of trigger line n for the most recent frame.
func (s *Subsystem) TriggerLine(n int) uint8 {
	return s.frame.TriggerLine(n)
}
