// Package epoch converts between wire-format timestamps and UTC time values.
// The API encodes instants either as numeric epoch offsets (seconds or
// milliseconds) or as fixed-format strings; all conversions here are pure.
package epoch

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Layout is the wire timestamp layout, a literal Z terminates the value.
// Input without an explicit zone is interpreted as UTC.
const Layout = "2006-01-02T15:04:05.999999999Z"

// Millis returns the milliseconds between t and the Unix epoch, truncated.
// The caller is expected to pass a UTC instant.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromSeconds returns the UTC instant for the given seconds since the epoch.
// The sub-second part is kept at microsecond resolution, the precision the
// wire format carries, so float64 noise does not leak into comparisons.
func FromSeconds(seconds float64) time.Time {
	sec, frac := math.Modf(seconds)
	micros := math.Round(frac * float64(time.Second/time.Microsecond))
	return time.Unix(int64(sec), int64(micros)*int64(time.Microsecond)).UTC()
}

// FromMillis returns the UTC instant for the given millis since the epoch.
func FromMillis(millis float64) time.Time {
	return FromSeconds(millis / 1000)
}

// FromString parses a timestamp in the fixed wire format, i.e.
// 2021-06-15T12:00:00.000000Z. The fractional part is mandatory.
func FromString(value string) (time.Time, error) {
	if !strings.Contains(value, ".") {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: missing fractional seconds", value)
	}
	t, err := time.Parse(Layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t.UTC(), nil
}
