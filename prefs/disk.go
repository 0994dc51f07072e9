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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jetsetilly/a8input/curated"
	"github.com/jetsetilly/a8input/logger"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "a8input.cfg"

// WarningBoilerPlate is written to the head of every preferences file.
const WarningBoilerPlate = "# a8input preferences. lines for unknown keys are kept when the file is saved"

// Sentinal error patterns.
const (
	NoPrefsFile   = "prefs: no prefs file (%s)"
	DuplicateKey  = "prefs: duplicate key (%s)"
	MalformedLine = "prefs: malformed line %d (%s)"
	SetFailed     = "prefs: %s: %v"
)

type entry struct {
	key  string
	pref Pref
}

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries []entry
	index   map[string]int
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:  path,
		index: make(map[string]int),
	}, nil
}

// Add preference value to the list of values handled by the Disk instance.
// Keys are written in the order in which they were added.
func (dsk *Disk) Add(key string, p Pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.index[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.index[key] = len(dsk.entries)
	dsk.entries = append(dsk.entries, entry{key: key, pref: p})
	return nil
}

// Has returns true if the key is handled by the Disk instance.
func (dsk *Disk) Has(key string) bool {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	_, ok := dsk.index[key]
	return ok
}

// Set the value for the preference named by key. If the key is not handled
// by the Disk instance then handled is false and no error is returned.
//
// Defunct keys are reported as handled but have no effect. If the value
// cannot be parsed then handled is true, an error is returned and the bound
// field is unchanged.
func (dsk *Disk) Set(key string, value string) (handled bool, err error) {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	return dsk.set(key, value)
}

func (dsk *Disk) set(key string, value string) (bool, error) {
	if isDefunct(key) {
		return true, nil
	}

	i, ok := dsk.index[key]
	if !ok {
		return false, nil
	}

	if err := dsk.entries[i].pref.Set(value); err != nil {
		return true, curated.Errorf(SetFailed, key, err)
	}

	return true, nil
}

// Get returns the string form of the value for the preference named by key.
func (dsk *Disk) Get(key string) (string, bool) {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	i, ok := dsk.index[key]
	if !ok {
		return "", false
	}
	return dsk.entries[i].pref.String(), true
}

// Reset all preference values handled by the Disk instance.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, e := range dsk.entries {
		if err := e.pref.Reset(); err != nil {
			return err
		}
	}
	return nil
}

func (dsk *Disk) String() string {
	s := &strings.Builder{}
	_ = dsk.Write(s)
	return s.String()
}

// Write every handled preference to io.Writer as KEY=VALUE lines.
func (dsk *Disk) Write(w io.Writer) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, e := range dsk.entries {
		if _, err := fmt.Fprintf(w, "%s=%s\n", e.key, e.pref.String()); err != nil {
			return err
		}
	}
	return nil
}

// splitLine divides a KEY=VALUE line. Blank lines and lines beginning with a
// hash are reported as not ok.
func splitLine(line string) (key string, value string, ok bool, malformed bool) {
	line = strings.TrimSpace(line)
	if len(line) == 0 || strings.HasPrefix(line, "#") {
		return "", "", false, false
	}

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false, true
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false, true
	}

	return key, strings.TrimSpace(value), true, false
}

// Read KEY=VALUE lines from io.Reader and set the matching preference
// values. Unknown keys are ignored. Lines that cannot be parsed or values
// that cannot be set are logged and skipped. The number of lines handled is
// returned.
func (dsk *Disk) Read(r io.Reader) (int, error) {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	return dsk.read(r)
}

func (dsk *Disk) read(r io.Reader) (int, error) {
	var handled int

	scanner := bufio.NewScanner(r)
	var n int
	for scanner.Scan() {
		n++

		key, value, ok, malformed := splitLine(scanner.Text())
		if malformed {
			logger.Log(logger.Allow, "prefs", curated.Errorf(MalformedLine, n, scanner.Text()))
			continue
		}
		if !ok {
			continue
		}

		h, err := dsk.set(key, value)
		if err != nil {
			logger.Log(logger.Allow, "prefs", err)
			continue
		}
		if h {
			handled++
		}
	}

	return handled, scanner.Err()
}

// Load preference values from disk. Any values on the top of the command
// line stack are applied afterwards.
//
// If the file does not exist a NoPrefsFile error is returned. Command line
// values are still applied.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	defer dsk.applyCommandLine()

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	if _, err := dsk.read(f); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

func (dsk *Disk) applyCommandLine() {
	for _, e := range dsk.entries {
		if ok, v := GetCommandLinePref(e.key); ok {
			if err := e.pref.Set(v); err != nil {
				logger.Log(logger.Allow, "prefs", curated.Errorf(SetFailed, e.key, err))
			}
		}
	}
}

// Save current preference values to disk. Lines in the existing file for
// keys that are not handled by this Disk instance are kept. Defunct keys are
// dropped.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	var foreign []string

	f, err := os.Open(dsk.path)
	if err == nil {
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			key, _, ok, _ := splitLine(scanner.Text())
			if !ok || isDefunct(key) {
				continue
			}
			if _, handled := dsk.index[key]; !handled {
				foreign = append(foreign, strings.TrimSpace(scanner.Text()))
			}
		}
		err = scanner.Err()
		f.Close()
		if err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return curated.Errorf("prefs: %v", err)
	}

	f, err = os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, l := range foreign {
		fmt.Fprintln(w, l)
	}
	for _, e := range dsk.entries {
		fmt.Fprintf(w, "%s=%s\n", e.key, e.pref.String())
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}
