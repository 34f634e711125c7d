package config

import (
	"testing"
	"time"
)

func TestGet(t *testing.T) {
	t.Setenv("TRAVERSE_TEST_KEY", "  value ")
	if got := Get("TRAVERSE_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("Get = %q, want %q", got, "value")
	}

	t.Setenv("TRAVERSE_TEST_KEY", "   ")
	if got := Get("TRAVERSE_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("blank Get = %q, want fallback", got)
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("TRAVERSE_TEST_TTL", "")
	d, err := GetDuration("TRAVERSE_TEST_TTL", time.Hour)
	if err != nil || d != time.Hour {
		t.Fatalf("unset: d=%v err=%v", d, err)
	}

	t.Setenv("TRAVERSE_TEST_TTL", "90s")
	d, err = GetDuration("TRAVERSE_TEST_TTL", time.Hour)
	if err != nil || d != 90*time.Second {
		t.Fatalf("set: d=%v err=%v", d, err)
	}

	t.Setenv("TRAVERSE_TEST_TTL", "soon")
	if _, err := GetDuration("TRAVERSE_TEST_TTL", time.Hour); err == nil {
		t.Fatalf("expected parse error")
	}
}
