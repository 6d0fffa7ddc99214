package duration

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		err  error
	}{
		{"zero", 0, nil},
		{"thirty minutes", 30 * time.Minute, nil},
		{"exactly max", MaxSpan, nil},
		{"one past max", MaxSpan + time.Millisecond, ErrExceedsMax},
		{"negative", -time.Second, ErrNegative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("New(%v) error = %v, want %v", tt.in, err, tt.err)
			}
			if err == nil && d.Std() != tt.in {
				t.Errorf("New(%v).Std() = %v, want %v", tt.in, d.Std(), tt.in)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		hours int64
		err   error
	}{
		{"8 h", 8, nil},
		{"0 h", 0, nil},
		{"277777 h", 277777, nil},
		{"277778 h", 0, ErrExceedsMax},
		{"999999999999 h", 0, ErrExceedsMax},
		{"1234567890123 h", 0, ErrInvalidInput}, // 13 digits
		{"8h", 0, ErrInvalidInput},
		{"8 hours", 0, ErrInvalidInput},
		{"-3 h", 0, ErrInvalidInput},
		{" 8 h", 0, ErrInvalidInput},
		{"", 0, ErrInvalidInput},
		{"random garbage", 0, ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := Parse(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.err)
			}
			if err == nil && d.Hours() != tt.hours {
				t.Errorf("Parse(%q).Hours() = %d, want %d", tt.in, d.Hours(), tt.hours)
			}
		})
	}
}

func TestString(t *testing.T) {
	d, err := New(90 * time.Minute)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := d.String(); got != "1h30m0s" {
		t.Errorf("String() = %q, want %q", got, "1h30m0s")
	}
}
