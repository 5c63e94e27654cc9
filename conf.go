// File: lixenwraith/conf/conf.go
package conf

import (
	"log/slog"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
)

// TestMode reports whether the CONF_TEST environment variable was truthy at
// process start. It is read exactly once; consumers can branch on it to
// relax timeouts or thresholds under test.
var TestMode, _ = strconv.ParseBool(os.Getenv("CONF_TEST"))

// Config is a concurrent key/value configuration store with typed accessors
// and deprecated-key handling. The zero value is not usable; construct
// instances with New or NewWithOptions.
type Config struct {
	entries sync.Map // string -> string
	opts    Options

	// Deprecated-key index, derived from opts.Alternatives on first use.
	altOnce   sync.Once
	altIndex  map[string]altTarget
	altBuilds atomic.Int32
}

// New creates a Config seeded from the given property set. A nil map yields
// an empty store. No deprecation tables are installed; use NewWithOptions
// for those.
func New(initial map[string]string) *Config {
	return NewWithOptions(initial, Options{})
}

// NewWithOptions creates a Config seeded from the given property set, with
// the deprecation tables and logger from opts. The tables must not be
// mutated after construction. Each seeded key goes through the same
// deprecation-warning check as Set.
func NewWithOptions(initial map[string]string, opts Options) *Config {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	c := &Config{opts: opts}
	for key, value := range initial {
		c.logDeprecationWarning(key)
		c.entries.Store(key, value)
	}
	return c
}

// Get returns the raw value stored under key. If the key is absent and is a
// canonical key with a known deprecated alternative, the value stored under
// the alternative key is returned instead; the alternative only takes
// effect when the canonical key was never set.
func (c *Config) Get(key string) (string, bool) {
	if v, ok := c.entries.Load(key); ok {
		return v.(string), true
	}
	if dep, ok := c.opts.Alternatives[key]; ok {
		if v, ok := c.entries.Load(dep.Key()); ok {
			return v.(string), true
		}
	}
	return "", false
}

// Set writes value under key, unconditionally overwriting any previous
// value, and returns the receiver for chaining. Writing a deprecated key
// logs a warning first; the write itself always succeeds.
func (c *Config) Set(key, value string) *Config {
	c.logDeprecationWarning(key)
	c.entries.Store(key, value)
	return c
}

// SetIfMissing writes value under key only if the key is not already
// present. The deprecation warning is logged only when the write actually
// occurs.
func (c *Config) SetIfMissing(key, value string) *Config {
	if _, loaded := c.entries.LoadOrStore(key, value); !loaded {
		c.logDeprecationWarning(key)
	}
	return c
}

// SetAll copies every key/value pair from other into c with Set semantics:
// each pair overwrites and triggers the deprecation check.
func (c *Config) SetAll(other *Config) *Config {
	other.Range(func(key, value string) bool {
		c.Set(key, value)
		return true
	})
	return c
}

// Range calls fn for each key/value pair until fn returns false. It
// reflects the live mapping: pairs written concurrently may or may not be
// visited, with the usual sync.Map guarantees.
func (c *Config) Range(fn func(key, value string) bool) {
	c.entries.Range(func(k, v any) bool {
		return fn(k.(string), v.(string))
	})
}
