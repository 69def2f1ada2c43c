package valuation

import (
	"math"
	"sync"

	"github.com/google/uuid"

	"polymer_economics/pkg/core/catalog"
	"polymer_economics/pkg/core/config"
	"polymer_economics/pkg/core/projection"
)

// Engine runs the full comparison: one shared revenue/OPEX projection, one
// ledger and NPV per catalog entry, and a best-by-NPV ranking.
type Engine struct {
	catalog *catalog.Catalog
	builder *Builder
}

// NewEngine returns a comparison engine over the given catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		catalog: cat,
		builder: NewBuilder(cat),
	}
}

// Compare evaluates every polymer in the catalog under cfg and ranks them
// by NPV. The revenue and OPEX series depend only on cfg, so they are
// generated once and shared read-only across polymers. Per-polymer ledgers
// are independent and evaluated concurrently; results are assembled in
// catalog order so the report never depends on completion order.
func (e *Engine) Compare(cfg config.Financial) (*ComparisonReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	revenues := projection.GenerateRevenues(cfg.Years, cfg.BaseRevenue, cfg.RevenueGrowth)
	opexSeries := projection.GenerateOpex(cfg.Years, cfg.OpexYear1, cfg.OpexGrowthLong)

	keys := e.catalog.Keys()
	results := make([]*PolymerResult, len(keys))
	errs := make([]error, len(keys))

	var wg sync.WaitGroup
	for i, key := range keys {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			results[i], errs[i] = e.builder.Build(key, cfg.Years, revenues, opexSeries, cfg.TaxRate, cfg.DiscountRate)
		}(i, key)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	report := &ComparisonReport{
		RunID:   uuid.New().String(),
		Config:  cfg,
		Keys:    keys,
		Results: make(map[string]*PolymerResult, len(keys)),
	}

	bestNPV := math.Inf(-1)
	for i, key := range keys {
		report.Results[key] = results[i]
		// Strict > keeps the first catalog entry on exact NPV ties.
		if results[i].NPV > bestNPV {
			bestNPV = results[i].NPV
			report.BestKey = key
		}
	}

	return report, nil
}
