package ts

import (
	"math"
	"testing"
	"time"
)

func TestDurationFromSeconds(t *testing.T) {
	tests := []struct {
		name    string
		seconds int64
		wantMS  int64
		ok      bool
	}{
		{"zero", 0, 0, true},
		{"positive", 90, 90000, true},
		{"negative", -5, -5000, true},
		{"max_representable", math.MaxInt64 / 1000, (math.MaxInt64 / 1000) * 1000, true},
		{"positive_overflow", math.MaxInt64/1000 + 1, 0, false},
		{"negative_overflow", math.MinInt64/1000 - 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := DurationFromSeconds(tt.seconds)
			if ok != tt.ok {
				t.Fatalf("DurationFromSeconds(%d) ok = %v, want %v", tt.seconds, ok, tt.ok)
			}
			if ok && d.Milliseconds() != tt.wantMS {
				t.Errorf("DurationFromSeconds(%d) = %d ms, want %d", tt.seconds, d.Milliseconds(), tt.wantMS)
			}
		})
	}
}

func TestDurationStd(t *testing.T) {
	if got := DurationFromMillis(1500).Std(); got != 1500*time.Millisecond {
		t.Errorf("Std() = %v, want 1.5s", got)
	}

	// Spans past the nanosecond range saturate instead of wrapping.
	huge := Duration(math.MaxInt64/int64(time.Millisecond) + 1)
	if got := huge.Std(); got != time.Duration(math.MaxInt64) {
		t.Errorf("Std() on oversized span = %v, want saturation", got)
	}
}

func TestIconHashNarrowing(t *testing.T) {
	tests := []struct {
		name string
		wire uint64
		want IconHash
	}{
		{"zero", 0, 0},
		{"fits", 12345, 12345},
		{"high_bit", 0xFFFFFFFF, -1},
		{"truncates_upper_word", 1 << 32, 0},
		{"truncates_keeps_low", (1 << 32) + 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := IconHashFromWire(tt.wire)
			if h != tt.want {
				t.Fatalf("IconHashFromWire(%d) = %d, want %d", tt.wire, h, tt.want)
			}
			// 32-bit values round-trip through the unsigned wire form.
			if got := IconHashFromWire(h.Wire()); got != h {
				t.Errorf("round trip of %d changed value to %d", h, got)
			}
		})
	}
}

func TestEnumFromCode(t *testing.T) {
	if m, ok := TextMessageTargetModeFromCode(2); !ok || m != TextMessageTargetChannel {
		t.Errorf("TextMessageTargetModeFromCode(2) = %v, %v", m, ok)
	}
	if _, ok := TextMessageTargetModeFromCode(0); ok {
		t.Error("code 0 should not resolve to a text target mode")
	}

	// Reason codes are sparse; the holes must not resolve.
	if _, ok := ReasonFromCode(7); ok {
		t.Error("reason code 7 is a hole and should not resolve")
	}
	if r, ok := ReasonFromCode(8); !ok || r.Code() != 8 {
		t.Errorf("ReasonFromCode(8) = %v, %v", r, ok)
	}

	if e, ok := ErrorFromCode(0); !ok || e != ErrorOk {
		t.Errorf("ErrorFromCode(0) = %v, %v", e, ok)
	}
}
