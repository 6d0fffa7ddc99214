// Package duration provides the validated time span used by task
// scheduling: never negative and never longer than MaxSpan.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// MaxSpan is the longest representable task duration, roughly 31.7
// years.
const MaxSpan = 999_999_999_999 * time.Millisecond

var (
	// ErrNegative reports an attempt to build a negative span.
	ErrNegative = errors.New("duration: negative spans are not allowed")
	// ErrExceedsMax reports a span longer than MaxSpan.
	ErrExceedsMax = errors.New("duration: span exceeds the maximum allowed value")
	// ErrInvalidInput reports a string Parse could not understand.
	ErrInvalidInput = errors.New("duration: input could not be parsed")
)

// Duration is a non-negative span bounded by MaxSpan. The zero value is
// a valid zero-length span.
type Duration struct {
	d time.Duration
}

// New validates d and wraps it. It fails with ErrNegative or
// ErrExceedsMax when d is outside [0, MaxSpan].
func New(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, ErrNegative
	}
	if d > MaxSpan {
		return Duration{}, ErrExceedsMax
	}
	return Duration{d: d}, nil
}

var hoursRe = regexp.MustCompile(`^[0-9]{1,12} h$`)

// Parse reads a span expressed in whole hours, e.g. "8 h". Any other
// shape fails with ErrInvalidInput; a matching string whose hour count
// lies beyond MaxSpan fails with ErrExceedsMax.
func Parse(s string) (Duration, error) {
	if !hoursRe.MatchString(s) {
		return Duration{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidInput)
	}
	hours, err := strconv.ParseInt(s[:len(s)-len(" h")], 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidInput)
	}
	if hours > int64(MaxSpan/time.Hour) {
		return Duration{}, fmt.Errorf("parsing %q: %w", s, ErrExceedsMax)
	}
	return New(time.Duration(hours) * time.Hour)
}

// Std returns the span as a plain time.Duration.
func (d Duration) Std() time.Duration {
	return d.d
}

// Hours returns the span in whole hours, truncated.
func (d Duration) Hours() int64 {
	return int64(d.d / time.Hour)
}

func (d Duration) String() string {
	return d.d.String()
}
