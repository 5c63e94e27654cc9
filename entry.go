package conf

// Entry describes a single configuration setting: its key and its default
// value. The runtime type of the default also declares the type of the key;
// supported types are bool, int, int64 and string, with nil treated as
// string. Applications typically implement Entry on their own descriptor
// type so the full key set lives in one table.
type Entry interface {
	// Key returns the key in the configuration property set.
	Key() string

	// Default returns the default value, which also defines the type of the
	// config. Supported types: bool, int, int64, string. nil maps to string.
	Default() any
}

// DeprecatedEntry describes a configuration key that is scheduled for
// removal, optionally acting as the old alternative of a canonical key.
type DeprecatedEntry interface {
	// Key returns the deprecated key.
	Key() string

	// Version returns the release in which the key was deprecated.
	Version() string

	// DeprecationMessage returns extra text for the warning logged when a
	// key without an alternative is written.
	DeprecationMessage() string
}

type entry struct {
	key  string
	dflt any
}

// NewEntry returns a basic Entry for callers that do not need their own
// descriptor type.
func NewEntry(key string, dflt any) Entry {
	return entry{key: key, dflt: dflt}
}

func (e entry) Key() string  { return e.key }
func (e entry) Default() any { return e.dflt }

type deprecatedEntry struct {
	key     string
	version string
	message string
}

// NewDeprecatedEntry returns a basic DeprecatedEntry.
func NewDeprecatedEntry(key, version, message string) DeprecatedEntry {
	return deprecatedEntry{key: key, version: version, message: message}
}

func (d deprecatedEntry) Key() string                { return d.key }
func (d deprecatedEntry) Version() string            { return d.version }
func (d deprecatedEntry) DeprecationMessage() string { return d.message }
