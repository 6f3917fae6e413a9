package env

import "testing"

func TestGetTrimsAndFallsBack(t *testing.T) {
	t.Setenv("CARTS_TEST_VALUE", "  8081 ")
	if got := Get("CARTS_TEST_VALUE", "8080"); got != "8081" {
		t.Fatalf("expected trimmed value, got %q", got)
	}

	t.Setenv("CARTS_TEST_VALUE", "")
	if got := Get("CARTS_TEST_VALUE", "8080"); got != "8080" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
