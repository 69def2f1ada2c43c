package catalog

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultCatalogOrder(t *testing.T) {
	cat := Default()

	want := []string{"hpam", "xanthan", "atbs"}
	got := cat.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestCost(t *testing.T) {
	cat := Default()

	cases := []struct {
		key  string
		want float64
	}{
		{"hpam", 104_000},    // 0.8 * 100,000 * 1.3
		{"xanthan", 144_000}, // 0.6 * 100,000 * 2.4
		{"atbs", 133_000},    // 0.7 * 100,000 * 1.9
	}
	for _, tc := range cases {
		got, err := cat.Cost(tc.key)
		if err != nil {
			t.Fatalf("Cost(%q): unexpected error: %v", tc.key, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Cost(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestCostUnknownKey(t *testing.T) {
	cat := Default()

	_, err := cat.Cost("peg")
	if err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
	if !errors.Is(err, ErrUnknownPolymer) {
		t.Errorf("expected ErrUnknownPolymer, got %v", err)
	}
}

func TestBaselinePresent(t *testing.T) {
	cat := Default()

	if _, err := cat.Option(BaselineKey); err != nil {
		t.Fatalf("baseline %q missing from default catalog: %v", BaselineKey, err)
	}
}

func TestKeysReturnsCopy(t *testing.T) {
	cat := Default()

	keys := cat.Keys()
	keys[0] = "mutated"

	if cat.Keys()[0] != "hpam" {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}

func TestNewSkipsDuplicateKeys(t *testing.T) {
	cat := New([]PolymerOption{
		{Key: "a", PricePerKg: 1},
		{Key: "a", PricePerKg: 2},
	})

	if cat.Len() != 1 {
		t.Fatalf("expected 1 option, got %d", cat.Len())
	}
	opt, err := cat.Option("a")
	if err != nil {
		t.Fatal(err)
	}
	if opt.PricePerKg != 1 {
		t.Errorf("expected first declaration to win, got price %v", opt.PricePerKg)
	}
}
