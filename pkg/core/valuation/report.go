package valuation

import (
	"fmt"

	"polymer_economics/pkg/core/catalog"
	"polymer_economics/pkg/core/config"
)

// ComparisonReport maps each polymer key to its result and names the best
// option by NPV. RunID tags the report for API consumers; it carries no
// state beyond the report's lifetime.
type ComparisonReport struct {
	RunID   string                    `json:"run_id"`
	Config  config.Financial          `json:"config"`
	Keys    []string                  `json:"keys"`
	Results map[string]*PolymerResult `json:"results"`
	BestKey string                    `json:"best_key"`
}

// SummaryRow is one line of the summary table: display name plus the two
// headline figures.
type SummaryRow struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	NPV   float64 `json:"npv"`
	SumCF float64 `json:"sum_cf"`
}

// Result returns the result for a key, failing with the unknown-key error
// when the report holds no such polymer.
func (r *ComparisonReport) Result(key string) (*PolymerResult, error) {
	res, ok := r.Results[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownPolymer, key)
	}
	return res, nil
}

// Summary returns one row per polymer in catalog order.
func (r *ComparisonReport) Summary() []SummaryRow {
	rows := make([]SummaryRow, 0, len(r.Keys))
	for _, key := range r.Keys {
		res := r.Results[key]
		rows = append(rows, SummaryRow{
			Key:   res.Key,
			Name:  res.Name,
			NPV:   res.NPV,
			SumCF: res.SumCF,
		})
	}
	return rows
}

// Deltas returns each polymer's per-year cash-flow difference against the
// baseline polymer, keyed like Results. The baseline's own series is all
// zeros.
func (r *ComparisonReport) Deltas(baselineKey string) (map[string][]float64, error) {
	base, err := r.Result(baselineKey)
	if err != nil {
		return nil, err
	}
	deltas := make(map[string][]float64, len(r.Keys))
	for _, key := range r.Keys {
		cf := r.Results[key].Cashflows
		d := make([]float64, len(cf))
		for i := range cf {
			d[i] = cf[i] - base.Cashflows[i]
		}
		deltas[key] = d
	}
	return deltas, nil
}
