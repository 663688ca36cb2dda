package logger

import (
	"context"
	"testing"
)

func TestBuildAndCompactRID(t *testing.T) {
	rid := BuildRID(123, 456, 789)
	if rid != "123:456:789" {
		t.Fatalf("BuildRID = %q", rid)
	}
	if got := CompactRID(rid); got != "3f.co.lx" {
		t.Errorf("CompactRID(%q) = %q, want 3f.co.lx", rid, got)
	}
}

func TestCompactRIDPassThrough(t *testing.T) {
	// Malformed input comes back unchanged.
	for _, rid := range []string{"abc", "1:2", "1:x:3", "1:2:3:4"} {
		if got := CompactRID(rid); got != rid {
			t.Errorf("CompactRID(%q) = %q, want unchanged", rid, got)
		}
	}
	if got := CompactRID("  "); got != "" {
		t.Errorf("CompactRID of blank = %q, want empty", got)
	}
}

func TestUpdateMetaRoundTrip(t *testing.T) {
	ctx := WithUpdateMeta(context.Background(), 7, 100, 200)
	ctx = WithRID(ctx, "7:200:100")
	ctx = WithHandler(ctx, "callback")

	if UpdateIDFrom(ctx) != 7 || UserIDFrom(ctx) != 100 || ChatIDFrom(ctx) != 200 {
		t.Error("update meta did not round-trip")
	}
	if RIDFrom(ctx) != "7:200:100" {
		t.Errorf("rid = %q", RIDFrom(ctx))
	}
	if HandlerFrom(ctx) != "callback" {
		t.Errorf("handler = %q", HandlerFrom(ctx))
	}
}

func TestMetaFromEmptyContext(t *testing.T) {
	ctx := context.Background()
	if UpdateIDFrom(ctx) != 0 || UserIDFrom(ctx) != 0 || ChatIDFrom(ctx) != 0 ||
		RIDFrom(ctx) != "" || HandlerFrom(ctx) != "" {
		t.Error("empty context must yield zero values")
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("a\x00b\x1bc"); got != "abc" {
		t.Errorf("Sanitize = %q, want abc", got)
	}
	if got := Sanitize("line1\nline2\tend"); got != "line1\nline2\tend" {
		t.Errorf("Sanitize must keep newlines and tabs, got %q", got)
	}
}

func TestSanitizeLimit(t *testing.T) {
	if got := SanitizeLimit("hello", 3); got != "hel" {
		t.Errorf("SanitizeLimit = %q, want hel", got)
	}
	if got := SanitizeLimit("салом", 3); got != "сал" {
		t.Errorf("SanitizeLimit must count runes, got %q", got)
	}
	if got := SanitizeLimit("x", 0); got != "" {
		t.Errorf("SanitizeLimit with max 0 = %q, want empty", got)
	}
}
