package cart

import (
	"testing"

	pkgerrors "github.com/angelmondragon/cart-backend/pkg/errors"
)

func TestEnsureUnique(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		keys    []int64
		wantErr bool
		wantKey int64
	}{
		{name: "empty", keys: nil},
		{name: "single", keys: []int64{7}},
		{name: "distinct", keys: []int64{1, 2, 3}},
		{name: "adjacent duplicate", keys: []int64{1, 1}, wantErr: true, wantKey: 1},
		{name: "first repeat wins", keys: []int64{4, 9, 9, 4}, wantErr: true, wantKey: 9},
		{name: "three occurrences", keys: []int64{5, 2, 5, 5}, wantErr: true, wantKey: 5},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ensureUnique(tc.keys)
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			details, ok := typed.Details().(map[string]any)
			if !ok {
				t.Fatalf("expected details map, got %T", typed.Details())
			}
			if details["key"] != tc.wantKey {
				t.Fatalf("expected key %d, got %v", tc.wantKey, details["key"])
			}
		})
	}
}

func TestEnsureUniqueMessageCarriesKey(t *testing.T) {
	t.Parallel()

	err := ensureUnique([]string{"a", "b", "a"})
	if err == nil {
		t.Fatal("expected duplicate error")
	}
	if msg := pkgerrors.As(err).Message(); msg != "duplicate item: a" {
		t.Fatalf("unexpected message %q", msg)
	}
}
