// File: lixenwraith/conf/typed.go
package conf

import (
	"fmt"
	"strconv"
)

// kind classifies the runtime type of an entry default or setter value.
// nil classifies as string, matching the descriptor contract.
type kind int

const (
	kindString kind = iota
	kindBool
	kindInt
	kindInt64
	kindInvalid
)

func (k kind) String() string {
	switch k {
	case kindString:
		return "string"
	case kindBool:
		return "bool"
	case kindInt:
		return "int"
	case kindInt64:
		return "int64"
	}
	return "unsupported"
}

func kindOf(v any) kind {
	switch v.(type) {
	case nil, string:
		return kindString
	case bool:
		return kindBool
	case int:
		return kindInt
	case int64:
		return kindInt64
	}
	return kindInvalid
}

// typesMatch reports whether value may be stored under an entry whose
// default is dflt: a nil value always matches, otherwise the runtime types
// must classify identically. Unsupported types never match.
func typesMatch(value, dflt any) bool {
	if value == nil {
		return true
	}
	k := kindOf(value)
	return k != kindInvalid && k == kindOf(dflt)
}

// raw resolves e through Get after checking that the entry's declared type
// is the one the caller requested.
func (c *Config) raw(e Entry, want kind) (string, bool, error) {
	if kindOf(e.Default()) != want {
		return "", false, fmt.Errorf("%w: invalid %s conversion requested for %s", ErrTypeMismatch, want, e.Key())
	}
	v, ok := c.Get(e.Key())
	return v, ok, nil
}

// String returns the value of e, falling back to its default when absent.
// The entry must be string-typed; a nil default is tolerated and yields "".
func (c *Config) String(e Entry) (string, error) {
	v, ok, err := c.raw(e, kindString)
	if err != nil {
		return "", err
	}
	if ok {
		return v, nil
	}
	if e.Default() == nil {
		return "", nil
	}
	return e.Default().(string), nil
}

// Bool returns the value of e parsed as a boolean. The entry must be
// bool-typed; an absent key returns the default without parsing.
func (c *Config) Bool(e Entry) (bool, error) {
	v, ok, err := c.raw(e, kindBool)
	if err != nil {
		return false, err
	}
	if !ok {
		return e.Default().(bool), nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parsing bool value for %s: %w", e.Key(), err)
	}
	return b, nil
}

// Int returns the value of e parsed as an int. The entry must be int-typed.
func (c *Config) Int(e Entry) (int, error) {
	v, ok, err := c.raw(e, kindInt)
	if err != nil {
		return 0, err
	}
	if !ok {
		return e.Default().(int), nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parsing int value for %s: %w", e.Key(), err)
	}
	return i, nil
}

// Int64 returns the value of e parsed as an int64. The entry must be
// int64-typed.
func (c *Config) Int64(e Entry) (int64, error) {
	v, ok, err := c.raw(e, kindInt64)
	if err != nil {
		return 0, err
	}
	if !ok {
		return e.Default().(int64), nil
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing int64 value for %s: %w", e.Key(), err)
	}
	return i, nil
}

// DurationMs resolves e as a duration string and returns it in
// milliseconds. The entry must be string-typed and, when the key is absent,
// must carry a non-nil default.
func (c *Config) DurationMs(e Entry) (int64, error) {
	v, ok, err := c.raw(e, kindString)
	if err != nil {
		return 0, err
	}
	if !ok {
		if e.Default() == nil {
			return 0, fmt.Errorf("%w: entry %s cannot be converted to a time value", ErrMissingDefault, e.Key())
		}
		v = e.Default().(string)
	}
	return ParseDurationMs(v)
}

// SetEntry stores value under e's key after checking that its runtime type
// matches the entry's default type. A nil value removes the key instead of
// storing anything. A failed SetEntry leaves the store untouched.
func (c *Config) SetEntry(e Entry, value any) (*Config, error) {
	if !typesMatch(value, e.Default()) {
		return c, fmt.Errorf("%w: value does not match entry type for %s", ErrTypeMismatch, e.Key())
	}
	if value == nil {
		c.entries.Delete(e.Key())
		return c, nil
	}
	return c.Set(e.Key(), fmt.Sprint(value)), nil
}
