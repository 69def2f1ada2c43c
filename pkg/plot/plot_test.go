package plot

import (
	"bytes"
	"testing"

	"polymer_economics/pkg/core/catalog"
	"polymer_economics/pkg/core/config"
	"polymer_economics/pkg/core/valuation"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func testReport(t *testing.T) *valuation.ComparisonReport {
	t.Helper()
	report, err := valuation.NewEngine(catalog.Default()).Compare(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	return report
}

func TestRenderCashflows(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderCashflows(&buf, testReport(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderDeltas(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDeltas(&buf, testReport(t), catalog.BaselineKey); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Error("output is not a PNG")
	}
}

func TestRenderDeltas_UnknownBaseline(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderDeltas(&buf, testReport(t), "peg"); err == nil {
		t.Fatal("expected error for unknown baseline, got nil")
	}
}
