package logger

import (
	"errors"
	"testing"
	"time"
)

func TestStatus(t *testing.T) {
	if got := Status(nil); got != "ok" {
		t.Errorf("Status(nil) = %q, want ok", got)
	}
	if got := Status(errors.New("boom")); got != "error" {
		t.Errorf("Status(err) = %q, want error", got)
	}
}

func TestRoundMS(t *testing.T) {
	if got := RoundMS(1499 * time.Microsecond); got != 1*time.Millisecond {
		t.Errorf("RoundMS = %v, want 1ms", got)
	}
	if got := RoundMS(-time.Second); got != 0 {
		t.Errorf("RoundMS of negative = %v, want 0", got)
	}
}
