package main

import (
	"fmt"
	"log/slog"
	"strings"
)

const undefinedElement = "undefined"

// isValidElement reports whether an element key has no comma and is not
// the "undefined" placeholder.
func isValidElement(name string) bool {
	return !strings.Contains(name, ",") && name != undefinedElement
}

// FilterValid returns the depth of every valid element, in document order.
func FilterValid(g *ItemGraph) *ElementDepths {
	d := newElementDepths()
	for _, e := range g.Elements {
		if isValidElement(e.Name) {
			d.add(e.Name, e.Depth)
		}
	}
	return d
}

// ExtractCombinations lists every recipe of a valid element whose operands
// are both valid.
//
// Each recipe of an element is emitted once per entry in that element's
// recipe list, so an element with n recipes yields every valid recipe n
// times.
func ExtractCombinations(g *ItemGraph, valid *ElementDepths) []Combination {
	var out []Combination
	for _, e := range g.Elements {
		if !valid.Has(e.Name) {
			continue
		}
		for range e.Recipes {
			for _, o := range e.Recipes {
				if valid.Has(o.Item1) && valid.Has(o.Item2) {
					out = append(out, Combination{A: o.Item1, B: o.Item2, Result: e.Name})
				}
			}
		}
	}
	return out
}

// GroupByResult collects the operand pairs of each result element, keeping
// the order (and repetitions) of combos.
func GroupByResult(combos []Combination) map[string][]Recipe {
	m := make(map[string][]Recipe)
	for _, c := range combos {
		m[c.Result] = append(m[c.Result], Recipe{Item1: c.A, Item2: c.B})
	}
	return m
}

// ComputeCombinationDepths assigns max(depth(a), depth(b)) + 1 to every
// distinct combination.
func ComputeCombinationDepths(combos []Combination, valid *ElementDepths) (*CombinationDepths, error) {
	cd := newCombinationDepths()
	for _, c := range combos {
		da, ok := valid.Depth(c.A)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownElement, c.A, c)
		}
		db, ok := valid.Depth(c.B)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrUnknownElement, c.B, c)
		}
		cd.set(c, max(da, db)+1)
	}
	return cd, nil
}

// Generate runs every stage over g. The element and combination counts are
// logged as soon as they are known.
func Generate(g *ItemGraph, logger *slog.Logger) (*Dataset, error) {
	valid := FilterValid(g)
	logger.Info("found elements without comma", "count", valid.Len())

	combos := ExtractCombinations(g, valid)
	byResult := GroupByResult(combos)
	logger.Debug("extracted combinations", "rows", len(combos), "results", len(byResult))

	depths, err := ComputeCombinationDepths(combos, valid)
	if err != nil {
		return nil, fmt.Errorf("combination depth: %w", err)
	}
	logger.Info("found recipes", "count", depths.Len())

	reach, err := ComputeReachability(valid, byResult, depths)
	if err != nil {
		return nil, fmt.Errorf("reachability: %w", err)
	}

	return &Dataset{
		Elements:          valid,
		Combinations:      combos,
		ByResult:          byResult,
		CombinationDepths: depths,
		Reachability:      reach,
	}, nil
}

func (c Combination) String() string {
	return c.A + " + " + c.B + " = " + c.Result
}
