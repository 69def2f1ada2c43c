package valuation

import (
	"errors"
	"reflect"
	"testing"

	"polymer_economics/pkg/core/catalog"
	"polymer_economics/pkg/core/config"
)

func TestCompare_DefaultConfiguration(t *testing.T) {
	engine := NewEngine(catalog.Default())

	report, err := engine.Compare(config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(report.Results))
	}
	if !reflect.DeepEqual(report.Keys, []string{"hpam", "xanthan", "atbs"}) {
		t.Errorf("report keys out of catalog order: %v", report.Keys)
	}

	// HPAM has the cheapest slug, so with shared revenue/OPEX series it must
	// carry the highest NPV.
	if report.BestKey != "hpam" {
		t.Errorf("best key = %q, want hpam", report.BestKey)
	}
	hpam := report.Results["hpam"]
	for _, key := range []string{"xanthan", "atbs"} {
		if report.Results[key].NPV >= hpam.NPV {
			t.Errorf("%s NPV %v should be below hpam NPV %v", key, report.Results[key].NPV, hpam.NPV)
		}
	}

	if report.RunID == "" {
		t.Error("report must carry a run ID")
	}
}

func TestCompare_Idempotent(t *testing.T) {
	engine := NewEngine(catalog.Default())
	cfg := config.Default()

	first, err := engine.Compare(cfg)
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Compare(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Error("repeated comparison must produce bit-identical results")
	}
	if first.BestKey != second.BestKey {
		t.Errorf("best key changed between runs: %q vs %q", first.BestKey, second.BestKey)
	}
}

func TestCompare_TieBreakFirstWins(t *testing.T) {
	// Two chemistries with identical cost parameters produce identical NPVs;
	// the first catalog entry keeps the title.
	twin := func(key string) catalog.PolymerOption {
		return catalog.PolymerOption{
			Key:         key,
			Name:        key,
			PricePerKg:  1.5,
			ConcKgPerM3: 0.5,
			InjVolumeM3: 100_000,
		}
	}
	engine := NewEngine(catalog.New([]catalog.PolymerOption{twin("first"), twin("second")}))

	report, err := engine.Compare(config.Default())
	if err != nil {
		t.Fatal(err)
	}

	if report.Results["first"].NPV != report.Results["second"].NPV {
		t.Fatalf("setup broken: NPVs differ (%v vs %v)",
			report.Results["first"].NPV, report.Results["second"].NPV)
	}
	if report.BestKey != "first" {
		t.Errorf("tie must go to the first catalog entry, got %q", report.BestKey)
	}
}

func TestCompare_InvalidYears(t *testing.T) {
	engine := NewEngine(catalog.Default())

	for _, years := range []int{0, 21, -5} {
		cfg := config.Default()
		cfg.Years = years
		if _, err := engine.Compare(cfg); err == nil {
			t.Errorf("years=%d: expected validation error, got nil", years)
		}
	}
}

func TestCompare_InvalidDiscountRate(t *testing.T) {
	engine := NewEngine(catalog.Default())
	cfg := config.Default()
	cfg.DiscountRate = -1.2

	_, err := engine.Compare(cfg)
	if !errors.Is(err, ErrInvalidDiscountRate) {
		t.Fatalf("expected ErrInvalidDiscountRate, got %v", err)
	}
}

func TestReport_ResultUnknownKey(t *testing.T) {
	engine := NewEngine(catalog.Default())
	report, err := engine.Compare(config.Default())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := report.Result("peg"); !errors.Is(err, catalog.ErrUnknownPolymer) {
		t.Fatalf("expected ErrUnknownPolymer, got %v", err)
	}
}

func TestReport_Summary(t *testing.T) {
	engine := NewEngine(catalog.Default())
	report, err := engine.Compare(config.Default())
	if err != nil {
		t.Fatal(err)
	}

	rows := report.Summary()
	if len(rows) != 3 {
		t.Fatalf("expected 3 summary rows, got %d", len(rows))
	}
	for i, key := range report.Keys {
		if rows[i].Key != key {
			t.Errorf("row %d: expected key %q, got %q", i, key, rows[i].Key)
		}
		res := report.Results[key]
		nearlyEqual(t, "summary NPV", rows[i].NPV, res.NPV)
		nearlyEqual(t, "summary sum CF", rows[i].SumCF, res.SumCF)
	}
}

func TestReport_Deltas(t *testing.T) {
	engine := NewEngine(catalog.Default())
	report, err := engine.Compare(config.Default())
	if err != nil {
		t.Fatal(err)
	}

	deltas, err := report.Deltas("hpam")
	if err != nil {
		t.Fatal(err)
	}

	for _, d := range deltas["hpam"] {
		nearlyEqual(t, "baseline delta", d, 0)
	}

	// Year 1: xanthan's slug costs 40,000 more than HPAM's; both years are
	// profitable, so the after-tax difference is -40,000 * 0.92.
	nearlyEqual(t, "xanthan year-1 delta", deltas["xanthan"][0], -40_000*0.92)
	for _, d := range deltas["xanthan"][1:] {
		nearlyEqual(t, "xanthan later-year delta", d, 0)
	}

	if _, err := report.Deltas("peg"); !errors.Is(err, catalog.ErrUnknownPolymer) {
		t.Fatalf("expected ErrUnknownPolymer for unknown baseline, got %v", err)
	}
}
