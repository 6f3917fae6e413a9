package instance

import "testing"

func TestGetIDPrefersDyno(t *testing.T) {
	t.Setenv("DYNO", "web.1")
	t.Setenv("HOSTNAME", "box")
	if got := GetID(); got != "web.1" {
		t.Fatalf("expected web.1, got %q", got)
	}
}

func TestGetIDFallbacks(t *testing.T) {
	t.Setenv("DYNO", "")
	t.Setenv("HOSTNAME", "box")
	if got := GetID(); got != "box" {
		t.Fatalf("expected box, got %q", got)
	}

	t.Setenv("HOSTNAME", "  ")
	if got := GetID(); got != "local" {
		t.Fatalf("expected local, got %q", got)
	}
}
