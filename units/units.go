// Package units implements unit validation and conversion for axes and
// channels. The conversion tables are loaded once from an embedded YAML
// document; the registry is immutable after init.
package units

import (
	"errors"
	"fmt"
	"sort"

	_ "embed"

	"github.com/goccy/go-yaml"
)

// Common errors
var (
	ErrUnknownUnit  = errors.New("unrecognized unit")
	ErrIncompatible = errors.New("incompatible unit categories")
)

//go:embed tables.yaml
var tablesYAML []byte

// unitDef describes one unit relative to its category's canonical unit.
// Exactly one of Scale or Reciprocal is meaningful: a linear unit satisfies
// canonical = Scale*v + Offset, a reciprocal unit canonical = Reciprocal/v.
type unitDef struct {
	Scale      float64 `yaml:"scale"`
	Offset     float64 `yaml:"offset"`
	Reciprocal float64 `yaml:"reciprocal"`
}

type categoryDef struct {
	Canonical string             `yaml:"canonical"`
	Units     map[string]unitDef `yaml:"units"`
}

type tableDef struct {
	Categories map[string]categoryDef `yaml:"categories"`
	Invariant  []string               `yaml:"invariant"`
}

// unit is a resolved registry entry.
type unit struct {
	symbol     string
	kind       string
	scale      float64
	offset     float64
	reciprocal float64 // 0 means linear
}

var registry map[string]unit

func init() {
	var table tableDef
	if err := yaml.Unmarshal(tablesYAML, &table); err != nil {
		panic(fmt.Sprintf("units: parsing embedded tables: %v", err))
	}

	registry = make(map[string]unit)
	for kind, cat := range table.Categories {
		if _, ok := cat.Units[cat.Canonical]; !ok {
			panic(fmt.Sprintf("units: category %q missing canonical unit %q", kind, cat.Canonical))
		}
		for symbol, def := range cat.Units {
			u := unit{
				symbol:     symbol,
				kind:       kind,
				scale:      def.Scale,
				offset:     def.Offset,
				reciprocal: def.Reciprocal,
			}
			if u.reciprocal == 0 && u.scale == 0 {
				panic(fmt.Sprintf("units: unit %q has neither scale nor reciprocal", symbol))
			}
			registry[symbol] = u
		}
	}
	for _, symbol := range table.Invariant {
		// Invariant units form single-member categories.
		registry[symbol] = unit{symbol: symbol, kind: "invariant:" + symbol, scale: 1}
	}
}

// Valid reports whether symbol names a recognized unit.
func Valid(symbol string) bool {
	_, ok := registry[symbol]
	return ok
}

// Kind returns the category of a unit ("energy", "delay", ...).
// Invariant units report a category unique to themselves.
func Kind(symbol string) (string, error) {
	u, ok := registry[symbol]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return u.kind, nil
}

// Compatible reports whether values can be converted between two units.
func Compatible(a, b string) bool {
	ua, ok := registry[a]
	if !ok {
		return false
	}
	ub, ok := registry[b]
	if !ok {
		return false
	}
	return ua.kind == ub.kind
}

// toCanonical maps a value into the category's canonical unit.
func (u unit) toCanonical(v float64) float64 {
	if u.reciprocal != 0 {
		return u.reciprocal / v
	}
	return u.scale*v + u.offset
}

// fromCanonical maps a canonical value into this unit.
func (u unit) fromCanonical(v float64) float64 {
	if u.reciprocal != 0 {
		return u.reciprocal / v
	}
	return (v - u.offset) / u.scale
}

// Convert rescales v from one unit to another.
// Returns ErrUnknownUnit for unrecognized symbols and ErrIncompatible when
// the units belong to different categories.
func Convert(v float64, from, to string) (float64, error) {
	uf, ok := registry[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	ut, ok := registry[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}
	if uf.kind != ut.kind {
		return 0, fmt.Errorf("%w: %q (%s) -> %q (%s)", ErrIncompatible, from, uf.kind, to, ut.kind)
	}
	if from == to {
		return v, nil
	}
	return ut.fromCanonical(uf.toCanonical(v)), nil
}

// ConvertSlice rescales every value in vs from one unit to another,
// returning a new slice. The input is not modified.
func ConvertSlice(vs []float64, from, to string) ([]float64, error) {
	uf, ok := registry[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	ut, ok := registry[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}
	if uf.kind != ut.kind {
		return nil, fmt.Errorf("%w: %q (%s) -> %q (%s)", ErrIncompatible, from, uf.kind, to, ut.kind)
	}
	out := make([]float64, len(vs))
	if from == to {
		copy(out, vs)
		return out, nil
	}
	for i, v := range vs {
		out[i] = ut.fromCanonical(uf.toCanonical(v))
	}
	return out, nil
}

// Symbols returns all recognized unit symbols in sorted order.
func Symbols() []string {
	out := make([]string, 0, len(registry))
	for symbol := range registry {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}
