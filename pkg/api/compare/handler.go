// Package compare exposes the comparison engine over HTTP for frontend
// consumers. Requests carry partial overrides of the default assumptions;
// the response is the full comparison report.
package compare

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"polymer_economics/pkg/core/catalog"
	"polymer_economics/pkg/core/config"
	"polymer_economics/pkg/core/valuation"
)

// Handler serves the compare and catalog endpoints.
type Handler struct {
	catalog  *catalog.Catalog
	engine   *valuation.Engine
	defaults config.Financial
}

// NewHandler builds a handler over the given catalog, resolving requests
// against the supplied default assumptions.
func NewHandler(cat *catalog.Catalog, defaults config.Financial) *Handler {
	return &Handler{
		catalog:  cat,
		engine:   valuation.NewEngine(cat),
		defaults: defaults,
	}
}

// CompareRequest overrides a subset of the default assumptions. Absent
// fields keep their defaults; rates are fractions.
type CompareRequest struct {
	Years          *int     `json:"years,omitempty"`
	TaxRate        *float64 `json:"tax_rate,omitempty"`
	DiscountRate   *float64 `json:"discount_rate,omitempty"`
	BaseRevenue    *float64 `json:"base_revenue,omitempty"`
	RevenueGrowth  *float64 `json:"revenue_growth,omitempty"`
	OpexYear1      *float64 `json:"opex_year1,omitempty"`
	OpexGrowthLong *float64 `json:"opex_growth_long,omitempty"`
}

func (req CompareRequest) apply(cfg config.Financial) config.Financial {
	if req.Years != nil {
		cfg.Years = config.ClampYears(*req.Years)
	}
	if req.TaxRate != nil {
		cfg.TaxRate = *req.TaxRate
	}
	if req.DiscountRate != nil {
		cfg.DiscountRate = *req.DiscountRate
	}
	if req.BaseRevenue != nil {
		cfg.BaseRevenue = *req.BaseRevenue
	}
	if req.RevenueGrowth != nil {
		cfg.RevenueGrowth = *req.RevenueGrowth
	}
	if req.OpexYear1 != nil {
		cfg.OpexYear1 = *req.OpexYear1
	}
	if req.OpexGrowthLong != nil {
		cfg.OpexGrowthLong = *req.OpexGrowthLong
	}
	return cfg
}

// HandleCompare runs a comparison with the request's overrides.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	cfg := req.apply(h.defaults)
	report, err := h.engine.Compare(cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, catalog.ErrUnknownPolymer) || errors.Is(err, valuation.ErrInvalidDiscountRate) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	fmt.Printf("[COMPARE] run %s: %d years, best=%s\n", report.RunID, cfg.Years, report.BestKey)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// HandleCatalog lists the available polymer options.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"options":  h.catalog.Options(),
		"baseline": catalog.BaselineKey,
	})
}
