// File: lixenwraith/conf/doc.go

// Package conf provides a thread-safe, typed accessor over a flat set of
// string configuration properties, with transparent handling of deprecated
// keys.
//
// A Config is seeded from an externally supplied property set (a plain
// map[string]string, or a TOML/JSON/YAML file flattened with LoadFile) and
// exposes typed getters validated against an Entry's declared default value.
// The runtime type of the default is authoritative for the key: reading a
// string-typed entry as a boolean is a type-mismatch error, not a parse
// attempt.
//
// Features:
//   - Concurrent reads and writes without external locking (sync.Map backed)
//   - Typed accessors: String, Bool, Int, Int64, DurationMs
//   - Duration strings with unit suffixes (us, ms, s, m, min, h, d)
//   - Deprecated-key aliasing: reads of a canonical key fall back to the
//     value stored under its deprecated alternative
//   - One warning per write to a deprecated key, logged via slog
//   - Struct binding via Scan for callers that prefer typed config structs
//
// Quick start:
//
//	var entryTimeout = conf.NewEntry("client.timeout", "30s")
//
//	cfg := conf.New(map[string]string{"client.timeout": "2m"})
//	ms, err := cfg.DurationMs(entryTimeout) // 120000
//
// Deprecation tables are injected at construction and are fixed for the
// lifetime of the instance:
//
//	cfg := conf.NewWithOptions(props, conf.Options{
//	    Alternatives: map[string]conf.DeprecatedEntry{
//	        "client.timeout": conf.NewDeprecatedEntry("client.timeout_ms", "0.4", ""),
//	    },
//	})
//
// Thread safety: all operations are safe for concurrent use. Readers never
// block writers; concurrent Set calls to the same key are last-write-wins.
package conf
