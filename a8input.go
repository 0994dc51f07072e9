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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/emulation"
	"github.com/jetsetilly/a8input/gui/sdlinput"
	"github.com/jetsetilly/a8input/input"
	"github.com/jetsetilly/a8input/keyboard"
	"github.com/jetsetilly/a8input/logger"
	"github.com/jetsetilly/a8input/modalflag"
	"github.com/jetsetilly/a8input/monitor"
	"github.com/jetsetilly/a8input/paths"
	"github.com/jetsetilly/a8input/prefs"
	"github.com/jetsetilly/a8input/statsview"
	"github.com/jetsetilly/a8input/terminal"
	"github.com/jetsetilly/a8input/version"
)

// #mainthread
//
// SDL requires that window and event handling happens on the main thread.
// locking the OS thread during initialisation guarantees that main() runs on
// the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// value for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "PREFS")
	showVersion := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		v, rev, _ := version.Version()
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
		if rev != "" {
			fmt.Fprintln(output, rev)
		}
		return 0
	}

	logger.Logf(logger.Allow, "a8input", "%s", version.String())

	switch md.Mode() {
	case "RUN":
		err = runSDL(md, output)

	case "TERM":
		err = runTerminal(md, output)

	case "PREFS":
		err = editPrefs(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to the RUN and TERM modes
type options struct {
	prefsFile *string
	override  *string
	save      *bool

	noJoystick *bool
	lpt        [2]*string
	kbdjoy     [2]*bool
	noKbdjoy   [2]*bool
	cx85       *bool
	is5200     *bool
	fkeys      *bool

	fps       *int
	frames    *int
	trace     *bool
	log       *bool
	monitor   *string
	stats     *bool
	dumpState *bool
}

func defaultPrefsFile() string {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return prefs.DefaultPrefsFile
	}
	return pth
}

func addOptions(md *modalflag.Modes, trace bool) *options {
	opts := &options{}

	opts.prefsFile = md.AddString("prefs", defaultPrefsFile(), "preferences file")
	opts.override = md.AddString("override", "", "override preferences for this session (KEY::VALUE; KEY::VALUE)")
	opts.save = md.AddBool("save", false, "save preferences on exit")

	opts.noJoystick = md.AddBool("nojoystick", false, "do not use gamepads")
	for i := range opts.lpt {
		opts.lpt[i] = md.AddString(fmt.Sprintf("joy%d", i), "", fmt.Sprintf("parallel port device for joystick %d", i))
		opts.kbdjoy[i] = md.AddBool(fmt.Sprintf("kbdjoy%d", i), false, fmt.Sprintf("enable keyboard joystick %d", i))
		opts.noKbdjoy[i] = md.AddBool(fmt.Sprintf("no-kbdjoy%d", i), false, fmt.Sprintf("disable keyboard joystick %d", i))
	}
	opts.cx85 = md.AddBool("cx85", false, "use the host keypad as a CX85 numeric keypad")
	opts.is5200 = md.AddBool("5200", false, "translate keys for the 5200 keypad")
	opts.fkeys = md.AddBool("fkeys", false, "cursor keys are the XL/XE function keys")

	opts.fps = md.AddInt("fps", 50, "frames per second")
	opts.frames = md.AddInt("frames", 0, "stop after number of frames (0 for no limit)")
	opts.trace = md.AddBool("trace", trace, "print changes to the input frame")
	opts.log = md.AddBool("log", false, "echo debugging log to stdout")
	opts.monitor = md.AddString("monitor", "", "serve input frames to websocket clients on address")
	opts.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	opts.dumpState = md.AddBool("dumpstate", false, "write graphviz dump of the input subsystem on exit")

	return opts
}

// subsystem creates the input subsystem and applies the options to it.
func (opts *options) subsystem(output io.Writer) (*input.Subsystem, error) {
	if *opts.log {
		logger.SetEcho(output, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *opts.stats {
		statsview.Launch(output, "")
	}

	in, err := input.NewSubsystem(*opts.prefsFile)
	if err != nil {
		return nil, err
	}

	if *opts.override != "" {
		prefs.PushCommandLineStack(*opts.override)
	}

	err = in.Prefs.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	if *opts.override != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "a8input", "unused override preferences: %s", unused)
		}
	}

	if *opts.noJoystick {
		in.DisableGamepads()
	}

	for i := range opts.lpt {
		if *opts.kbdjoy[i] {
			in.SetKeyboardJoystick(i, true)
		}
		if *opts.noKbdjoy[i] {
			in.SetKeyboardJoystick(i, false)
		}
	}

	in.SetCX85(*opts.cx85)
	in.SetMachine5200(*opts.is5200)
	in.SetFunctionKeys(*opts.fkeys)

	for i := range opts.lpt {
		if *opts.lpt[i] == "" {
			continue
		}
		if err := in.OpenLPT(i, *opts.lpt[i]); err != nil {
			in.Close()
			return nil, err
		}
	}

	return in, nil
}

// finish saves the preferences and writes the state dump if requested.
func (opts *options) finish(in *input.Subsystem) error {
	in.Close()

	if *opts.dumpState {
		fn := paths.UniqueFilename("a8input_state", "dot")
		f, err := os.Create(fn)
		if err != nil {
			return curated.Errorf("a8input: %v", err)
		}
		defer f.Close()
		memviz.Map(f, in)
		logger.Logf(logger.Allow, "a8input", "state written to %s", fn)
	}

	if *opts.save {
		if err := in.Prefs.Save(); err != nil {
			return err
		}
	}

	return nil
}

// run the frame loop until the driver ends, the frame limit is reached or
// the program is interrupted.
func (opts *options) run(in *input.Subsystem, output io.Writer, observers input.Observers, apply func(keyboard.Action)) error {
	if *opts.fps <= 0 {
		return curated.Errorf("a8input: fps must be greater than zero")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *opts.monitor != "" {
		m := monitor.NewMonitor()
		go m.Run(ctx)
		go func() {
			if err := m.ListenAndServe(ctx, *opts.monitor); err != nil {
				logger.Log(logger.Allow, "a8input", err)
			}
		}()
		observers = append(observers, m)
	}
	in.SetObserver(observers)

	w := io.Discard
	if *opts.trace {
		w = output
	}
	drv := emulation.NewDriver(in, emulation.NewTrace(w))

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	tick := time.NewTicker(time.Second / time.Duration(*opts.fps))
	defer tick.Stop()

	for drv.State() != emulation.Ending {
		select {
		case <-intChan:
			return nil
		case <-tick.C:
		}

		if err := drv.NextFrame(); err != nil {
			return err
		}

		if apply != nil {
			apply(in.Frame().Action)
		}

		if *opts.frames > 0 && drv.Frames() >= *opts.frames {
			break // for loop
		}
	}

	return nil
}

func runSDL(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	opts := addOptions(md, true)
	grab := md.AddBool("grabmouse", false, "confine the mouse pointer to the window")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	in, err := opts.subsystem(output)
	if err != nil {
		return err
	}

	host, err := sdlinput.Create()
	if err != nil {
		in.Close()
		return err
	}
	defer host.Destroy()

	if *grab {
		host.SetMouseGrab(true)
	}

	in.Enumerate(host)

	err = opts.run(in, output, nil, host.Apply)
	if ferr := opts.finish(in); err == nil {
		err = ferr
	}
	return err
}

func runTerminal(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	opts := addOptions(md, false)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	in, err := opts.subsystem(output)
	if err != nil {
		return err
	}

	host, err := terminal.Create(os.Stdin, os.Stdout)
	if err != nil {
		in.Close()
		return err
	}
	defer host.CleanUp()

	in.Enumerate(host)

	err = opts.run(in, output, input.Observers{host}, nil)
	if ferr := opts.finish(in); err == nil {
		err = ferr
	}
	return err
}

// editPrefs prints the preferences file after applying any KEY=VALUE
// arguments. The file is saved if any arguments were given.
func editPrefs(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("arguments of the form KEY=VALUE change the preference and save the file")

	prefsFile := md.AddString("prefs", defaultPrefsFile(), "preferences file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	in, err := input.NewSubsystem(*prefsFile)
	if err != nil {
		return err
	}
	defer in.Close()

	err = in.Prefs.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}

	args := md.RemainingArgs()
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return curated.Errorf("a8input: preference argument not in KEY=VALUE form: %s", a)
		}
		handled, err := in.ReadConfig(strings.TrimSpace(key), strings.TrimSpace(value))
		if err != nil {
			return err
		}
		if !handled {
			return curated.Errorf("a8input: unknown preference: %s", key)
		}
	}

	if len(args) > 0 {
		if err := in.Prefs.Save(); err != nil {
			return err
		}
	}

	return in.WriteConfig(output)
}
