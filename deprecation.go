// File: lixenwraith/conf/deprecation.go
package conf

import "log/slog"

// Options carries the per-application deprecation tables and the warning
// logger. The tables are fixed for the lifetime of the Config instance.
type Options struct {
	// Alternatives maps a canonical (current) key to the DeprecatedEntry
	// describing the old key that still resolves to it. Reads of a missing
	// canonical key fall back to the old key; writes of the old key warn.
	Alternatives map[string]DeprecatedEntry

	// Deprecated maps a key that is deprecated outright, with no
	// replacement, to its removal notice.
	Deprecated map[string]DeprecatedEntry

	// Logger receives deprecation warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

// altTarget is one entry of the derived index: the deprecated key's
// replacement plus the descriptor it came from.
type altTarget struct {
	newKey string
	entry  DeprecatedEntry
}

// alternativeKeys returns the deprecated-key -> replacement index, building
// it on first use. The build runs exactly once even under concurrent first
// access; callers only ever observe the fully populated map.
func (c *Config) alternativeKeys() map[string]altTarget {
	c.altOnce.Do(func() {
		index := make(map[string]altTarget, len(c.opts.Alternatives))
		for canonical, dep := range c.opts.Alternatives {
			index[dep.Key()] = altTarget{newKey: canonical, entry: dep}
		}
		c.altIndex = index
		c.altBuilds.Add(1)
	})
	return c.altIndex
}

// logDeprecationWarning logs a warning if key is deprecated: either an old
// alternative of a canonical key, or deprecated outright. Warnings are
// observability only and never fail the triggering write.
func (c *Config) logDeprecationWarning(key string) {
	if alt, ok := c.alternativeKeys()[key]; ok {
		c.opts.Logger.Warn("configuration key is deprecated and may be removed in the future",
			"key", key,
			"since", alt.entry.Version(),
			"replacement", alt.newKey)
		return
	}
	if dep, ok := c.opts.Deprecated[key]; ok {
		c.opts.Logger.Warn("configuration key is deprecated and may be removed in the future",
			"key", dep.Key(),
			"since", dep.Version(),
			"detail", dep.DeprecationMessage())
	}
}
