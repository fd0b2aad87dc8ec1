package ts

import (
	"math"
	"time"
)

// Duration is an exact span of time stored as whole milliseconds. The wire
// carries durations as integer counts whose unit (seconds or milliseconds)
// depends on the declaring field, so millisecond storage is the common
// denominator that loses neither encoding.
type Duration int64

// DurationFromSeconds converts a second count to a Duration. ok is false
// when the count cannot be scaled to milliseconds without overflowing.
func DurationFromSeconds(s int64) (Duration, bool) {
	if s > math.MaxInt64/1000 || s < math.MinInt64/1000 {
		return 0, false
	}
	return Duration(s * 1000), true
}

// DurationFromMillis converts a millisecond count to a Duration.
func DurationFromMillis(ms int64) Duration {
	return Duration(ms)
}

// Seconds returns the duration's total whole seconds, truncated toward zero.
func (d Duration) Seconds() int64 {
	return int64(d) / 1000
}

// Milliseconds returns the duration's total whole milliseconds.
func (d Duration) Milliseconds() int64 {
	return int64(d)
}

// Std converts to the standard library representation. Spans beyond the
// nanosecond-representable range (about 292 years) saturate.
func (d Duration) Std() time.Duration {
	if d > Duration(math.MaxInt64/int64(time.Millisecond)) {
		return time.Duration(math.MaxInt64)
	}
	if d < Duration(math.MinInt64/int64(time.Millisecond)) {
		return time.Duration(math.MinInt64)
	}
	return time.Duration(d) * time.Millisecond
}
