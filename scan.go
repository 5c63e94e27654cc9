// File: lixenwraith/conf/scan.go
package conf

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the current key/value pairs into the target struct or map.
// Dot-separated keys become nested fields, matched through the "conf"
// struct tag. The target must be a non-nil pointer. Values are stored as
// strings, so decoding is weakly typed, with hooks for time.Duration and
// comma-separated slices.
func (c *Config) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	nested := make(map[string]any)
	c.Range(func(key, value string) bool {
		setNestedValue(nested, key, value)
		return true
	})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "conf",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to scan configuration into %T: %w", target, err)
	}

	return nil
}

// setNestedValue places value into nested under a dot-notation path,
// creating intermediate maps as needed. A non-map value sitting on an
// intermediate segment is replaced by a map.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	current[segments[len(segments)-1]] = value
}
