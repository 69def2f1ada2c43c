// Package valuation builds per-polymer cash-flow statements, discounts them
// to NPV and compares the candidates of a catalog under one shared set of
// financial assumptions.
package valuation

import (
	"polymer_economics/pkg/core/catalog"
)

// EquipmentReplacementCost is charged on every year that is a multiple of
// 10 (year 10, 20, ...), modeling periodic replacement of injection
// equipment. Year 1 is never charged even for a hypothetical year-0 slot.
const EquipmentReplacementCost = 30_000

// YearRecord is one row of a polymer's cash-flow ledger. Cash flow equals
// net profit; no separate depreciation or financing is modeled.
type YearRecord struct {
	Year           int     `json:"year"`
	Revenue        float64 `json:"revenue"`
	Opex           float64 `json:"opex"`
	PolymerExpense float64 `json:"polymer_exp"`
	Equipment      float64 `json:"equipment"`
	TaxableIncome  float64 `json:"taxable_income"`
	Tax            float64 `json:"tax"`
	NetProfit      float64 `json:"net_profit"`
	CashFlow       float64 `json:"cash_flow"`
}

// PolymerResult aggregates one polymer's full ledger and valuation figures.
// Built once per run and read-only afterward.
type PolymerResult struct {
	Key       string       `json:"key"`
	Name      string       `json:"name"`
	Rows      []YearRecord `json:"rows"`
	NPV       float64      `json:"npv"`
	SumCF     float64      `json:"sum_cf"`
	Cashflows []float64    `json:"cashflows"`
}

// Builder assembles PolymerResults from pre-generated revenue and OPEX
// series plus the catalog's cost data.
type Builder struct {
	catalog *catalog.Catalog
}

// NewBuilder returns a builder reading cost data from the given catalog.
func NewBuilder(cat *catalog.Catalog) *Builder {
	return &Builder{catalog: cat}
}

// Build produces the full ledger for one polymer. The polymer slug is
// expensed entirely in year 1; equipment replacement hits every tenth year.
// Revenues and opexSeries must each hold exactly `years` values.
func (b *Builder) Build(polymerKey string, years int, revenues, opexSeries []float64, taxRate, discountRate float64) (*PolymerResult, error) {
	opt, err := b.catalog.Option(polymerKey)
	if err != nil {
		return nil, err
	}
	polyCost := opt.Cost()

	rows := make([]YearRecord, 0, years)
	cashflows := make([]float64, 0, years)
	sumCF := 0.0

	for year := 1; year <= years; year++ {
		revenue := revenues[year-1]
		opex := opexSeries[year-1]

		polyExp := 0.0
		if year == 1 {
			polyExp = polyCost
		}
		equipment := 0.0
		if year%10 == 0 && year > 1 {
			equipment = EquipmentReplacementCost
		}

		taxable := revenue - opex - polyExp - equipment
		tax := 0.0
		if taxable > 0 {
			tax = taxable * taxRate
		}
		netProfit := taxable - tax
		cashFlow := netProfit

		rows = append(rows, YearRecord{
			Year:           year,
			Revenue:        revenue,
			Opex:           opex,
			PolymerExpense: polyExp,
			Equipment:      equipment,
			TaxableIncome:  taxable,
			Tax:            tax,
			NetProfit:      netProfit,
			CashFlow:       cashFlow,
		})
		cashflows = append(cashflows, cashFlow)
		sumCF += cashFlow
	}

	npv, err := NPV(cashflows, discountRate)
	if err != nil {
		return nil, err
	}

	return &PolymerResult{
		Key:       opt.Key,
		Name:      opt.Name,
		Rows:      rows,
		NPV:       npv,
		SumCF:     sumCF,
		Cashflows: cashflows,
	}, nil
}
