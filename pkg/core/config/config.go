// Package config defines the financial assumptions of a comparison run and
// how they are assembled: package defaults, optionally overlaid with a YAML
// or HJSON scenario file. The core engines only ever see a fully resolved,
// validated Financial value; prompting and percent-to-fraction conversion
// live in the shells.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// Default assumption values. Rates are fractions, money is dollars.
const (
	DefaultYears          = 10
	DefaultTaxRate        = 0.08
	DefaultDiscountRate   = 0.08
	DefaultBaseRevenue    = 5_500_000
	DefaultRevenueGrowth  = 0.06
	DefaultOpexYear1      = 910_000
	DefaultOpexGrowthLong = 0.02
)

// Horizon bounds accepted by the model.
const (
	MinYears = 1
	MaxYears = 20
)

// Financial holds all assumptions for one comparison run. Immutable once
// calculations begin.
type Financial struct {
	Years          int     `json:"years" yaml:"years"`
	TaxRate        float64 `json:"tax_rate" yaml:"tax_rate"`
	DiscountRate   float64 `json:"discount_rate" yaml:"discount_rate"`
	BaseRevenue    float64 `json:"base_revenue" yaml:"base_revenue"`
	RevenueGrowth  float64 `json:"revenue_growth" yaml:"revenue_growth"`
	OpexYear1      float64 `json:"opex_year1" yaml:"opex_year1"`
	OpexGrowthLong float64 `json:"opex_growth_long" yaml:"opex_growth_long"`
}

// Default returns the standard assumption set.
func Default() Financial {
	return Financial{
		Years:          DefaultYears,
		TaxRate:        DefaultTaxRate,
		DiscountRate:   DefaultDiscountRate,
		BaseRevenue:    DefaultBaseRevenue,
		RevenueGrowth:  DefaultRevenueGrowth,
		OpexYear1:      DefaultOpexYear1,
		OpexGrowthLong: DefaultOpexGrowthLong,
	}
}

// Validate checks the horizon bounds. Callers are expected to clamp user
// input before handing a configuration to the engines.
func (c Financial) Validate() error {
	if c.Years < MinYears || c.Years > MaxYears {
		return fmt.Errorf("years must be between %d and %d, got %d", MinYears, MaxYears, c.Years)
	}
	return nil
}

// ClampYears forces a requested horizon into the accepted range.
func ClampYears(years int) int {
	if years < MinYears {
		return MinYears
	}
	if years > MaxYears {
		return MaxYears
	}
	return years
}

// Load reads a scenario file and overlays it on the defaults. Fields absent
// from the file keep their default values. The format is chosen by
// extension: .yaml/.yml parse as YAML, .hjson (comments allowed) as HJSON.
func Load(path string) (Financial, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read scenario file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse YAML scenario %s: %w", path, err)
		}
	case ".hjson":
		if err := hjson.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse HJSON scenario %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported scenario format %q (want .yaml, .yml or .hjson)", ext)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("scenario %s: %w", path, err)
	}
	return cfg, nil
}
