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
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Value represents the actual Go preference value.
type Value interface{}

// Pref is implemented by every type supported by the prefs system.
type Pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are shared by every pref type.
type hooks struct {
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed. If the callback returns an error the value is not
// updated.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.hookPost = f
}

func (h *hooks) store(nv Value, store func()) error {
	if h.hookPre != nil {
		if err := h.hookPre(nv); err != nil {
			return err
		}
	}

	store()

	if h.hookPost != nil {
		if err := h.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// ParseBool interprets the string as a boolean. Accepted values are 1, 0, y,
// n, yes, no, true and false in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "y", "yes", "true":
		return true, nil
	case "0", "n", "no", "false":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean value: %q", s)
}

// Bool implements a boolean type in the prefs system. Written as 1 or 0.
type Bool struct {
	hooks
	ptr *bool
	own bool
}

// NewBool binds a new Bool to the field pointed to by v.
func NewBool(v *bool) *Bool {
	return &Bool{ptr: v}
}

func (p *Bool) field() *bool {
	if p.ptr == nil {
		p.ptr = &p.own
	}
	return p.ptr
}

func (p *Bool) String() string {
	if *p.field() {
		return "1"
	}
	return "0"
}

// Set new value to Bool type. New value must be of type bool or string.
func (p *Bool) Set(v Value) error {
	var nv bool
	switch v := v.(type) {
	case bool:
		nv = v
	case string:
		var err error
		nv, err = ParseBool(v)
		if err != nil {
			return fmt.Errorf("set: %w", err)
		}
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
	}
	return p.store(nv, func() { *p.field() = nv })
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return *p.field()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	ptr *int
	own int
}

// NewInt binds a new Int to the field pointed to by v.
func NewInt(v *int) *Int {
	return &Int{ptr: v}
}

func (p *Int) field() *int {
	if p.ptr == nil {
		p.ptr = &p.own
	}
	return p.ptr
}

func (p *Int) String() string {
	return strconv.Itoa(*p.field())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
	}
	return p.store(nv, func() { *p.field() = nv })
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return *p.field()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	hooks
	ptr *float64
	own float64
}

// NewFloat binds a new Float to the field pointed to by v.
func NewFloat(v *float64) *Float {
	return &Float{ptr: v}
}

func (p *Float) field() *float64 {
	if p.ptr == nil {
		p.ptr = &p.own
	}
	return p.ptr
}

func (p *Float) String() string {
	return strconv.FormatFloat(*p.field(), 'f', -1, 64)
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Float: %w", v, err)
		}
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Float", v)
	}
	return p.store(nv, func() { *p.field() = nv })
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return *p.field()
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	ptr    *string
	own    string
	maxLen int
}

// NewString binds a new String to the field pointed to by v.
func NewString(v *string) *String {
	return &String{ptr: v}
}

func (p *String) field() *string {
	if p.ptr == nil {
		p.ptr = &p.own
	}
	return p.ptr
}

func (p *String) String() string {
	return *p.field()
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. Note that the existing string
// will be cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if f := p.field(); p.maxLen > 0 && len(*f) > p.maxLen {
		*f = (*f)[:p.maxLen]
	}
}

// Set new value to String type.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(nv, func() { *p.field() = nv })
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return *p.field()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Generic is a general purpose preferences type, useful for values that
// cannot be represented by one of the other types. The set function parses
// the string and should leave the underlying value unchanged on error. You
// must use the NewGeneric() function to initialise a new instance of Generic.
type Generic struct {
	crit sync.Mutex
	set  func(string) error
	get  func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	return p.Get().(string)
}

// Set triggers the set value procedure for the generic type.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.set(fmt.Sprintf("%v", v))
}

// Get triggers the get value procedure for the generic type.
func (p *Generic) Get() Value {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Reset sets the generic value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
