// File: lixenwraith/conf/duration.go
package conf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timeSuffixes maps the recognized unit suffixes to their duration unit.
// An absent suffix means milliseconds.
var timeSuffixes = map[string]time.Duration{
	"us":  time.Microsecond,
	"ms":  time.Millisecond,
	"s":   time.Second,
	"m":   time.Minute,
	"min": time.Minute,
	"h":   time.Hour,
	"d":   24 * time.Hour,
}

// The grammar deliberately admits a leading minus sign; negative magnitudes
// are rejected after parsing so they fail with ErrInvalidValue rather than
// being indistinguishable from a syntax error.
var durationPattern = regexp.MustCompile(`^(-?[0-9]+)([a-z]+)?$`)

// ParseDurationMs parses a duration string such as "30s", "2m" or "150"
// (bare numbers are milliseconds) and returns its length in milliseconds.
// Matching is case-insensitive and surrounding whitespace is ignored.
// Sub-millisecond values truncate toward zero.
func ParseDurationMs(text string) (int64, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return 0, fmt.Errorf("%w: invalid time string %q", ErrInvalidFormat, text)
	}

	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: invalid time string %q", ErrInvalidFormat, text)
	}

	val, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid time string %q: %v", ErrInvalidFormat, text, err)
	}

	unit := time.Millisecond
	if m[2] != "" {
		u, ok := timeSuffixes[m[2]]
		if !ok {
			return 0, fmt.Errorf("%w: invalid suffix %q", ErrInvalidFormat, m[2])
		}
		unit = u
	}

	if val < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidValue, val)
	}

	return val * int64(unit) / int64(time.Millisecond), nil
}
