// Package catalog holds the fixed registry of candidate polymer treatments
// and their cost parameters. The registry is assembled once at process start
// and never mutated; every comparison run reads from the same shared catalog.
package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownPolymer is returned when a lookup references a key that is not
// present in the catalog.
var ErrUnknownPolymer = errors.New("unknown polymer key")

// BaselineKey identifies the polymer used as the reference curve in
// delta charts (the HPAM entry of the default catalog).
const BaselineKey = "hpam"

// PolymerOption describes one candidate flooding chemistry.
type PolymerOption struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	PricePerKg  float64 `json:"price_per_kg"`
	ConcKgPerM3 float64 `json:"conc_kg_per_m3"`
	InjVolumeM3 float64 `json:"inj_volume_m3"`
}

// Cost returns the one-time purchase cost of the full polymer slug:
// injected mass (concentration x volume) priced per kg.
func (p PolymerOption) Cost() float64 {
	mass := p.ConcKgPerM3 * p.InjVolumeM3
	return mass * p.PricePerKg
}

// Catalog is an ordered, read-only set of polymer options.
type Catalog struct {
	keys    []string
	options map[string]PolymerOption
}

// New builds a catalog from the given options, preserving declaration order
// for iteration.
func New(options []PolymerOption) *Catalog {
	c := &Catalog{
		keys:    make([]string, 0, len(options)),
		options: make(map[string]PolymerOption, len(options)),
	}
	for _, opt := range options {
		if _, dup := c.options[opt.Key]; dup {
			continue
		}
		c.keys = append(c.keys, opt.Key)
		c.options[opt.Key] = opt
	}
	return c
}

// Default returns the standard three-polymer catalog. Prices and
// concentrations are chosen so the cost curves actually differ.
func Default() *Catalog {
	return New([]PolymerOption{
		{
			Key:         "hpam",
			Name:        "Partially hydrolyzed polyacrylamide (HPAM)",
			PricePerKg:  1.3,
			ConcKgPerM3: 0.8,
			InjVolumeM3: 100_000,
		},
		{
			Key:         "xanthan",
			Name:        "Xanthan gum (oilfield grade)",
			PricePerKg:  2.4,
			ConcKgPerM3: 0.6,
			InjVolumeM3: 100_000,
		},
		{
			Key:         "atbs",
			Name:        "ATBS-modified polyacrylamide",
			PricePerKg:  1.9,
			ConcKgPerM3: 0.7,
			InjVolumeM3: 100_000,
		},
	})
}

// Keys returns the polymer keys in declaration order. The returned slice is
// a copy; callers may not reorder the catalog through it.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Option returns the full record for a key.
func (c *Catalog) Option(key string) (PolymerOption, error) {
	opt, ok := c.options[key]
	if !ok {
		return PolymerOption{}, fmt.Errorf("%w: %q", ErrUnknownPolymer, key)
	}
	return opt, nil
}

// Cost returns the one-time purchase cost for a key.
func (c *Catalog) Cost(key string) (float64, error) {
	opt, err := c.Option(key)
	if err != nil {
		return 0, err
	}
	return opt.Cost(), nil
}

// Options returns all records in declaration order.
func (c *Catalog) Options() []PolymerOption {
	opts := make([]PolymerOption, 0, len(c.keys))
	for _, key := range c.keys {
		opts = append(opts, c.options[key])
	}
	return opts
}

// Len reports the number of options in the catalog.
func (c *Catalog) Len() int {
	return len(c.keys)
}
