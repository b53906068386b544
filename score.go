package main

import (
	"fmt"
	"math"
)

// Weights of the reachability moving average. A recipe that lowers the best
// depth seen so far takes leadWeight against the running total; any other
// recipe takes trailWeight.
const (
	leadWeight  = 0.75
	trailWeight = 0.25
)

// minDepth is the smallest combination depth folded so far. The zero value
// is unset and compares greater than any real depth.
type minDepth struct {
	depth int
	set   bool
}

func (m minDepth) greaterThan(d int) bool {
	return !m.set || m.depth > d
}

// ComputeReachability scores every valid element from its recipes as result.
// Elements without recipes score 0.
func ComputeReachability(valid *ElementDepths, byResult map[string][]Recipe, depths *CombinationDepths) (*Reachability, error) {
	r := newReachability()
	for _, name := range valid.Names() {
		score, err := foldReach(name, byResult[name], depths)
		if err != nil {
			return nil, err
		}
		r.set(name, score)
	}
	return r, nil
}

// foldReach folds recipes in order. The fold is not commutative: reordering
// recipes changes the score.
func foldReach(result string, recipes []Recipe, depths *CombinationDepths) (float64, error) {
	var (
		reach float64
		best  minDepth
	)
	for _, rc := range recipes {
		c := Combination{A: rc.Item1, B: rc.Item2, Result: result}
		d, ok := depths.Depth(c)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownCombination, c)
		}
		newW, oldW := trailWeight, leadWeight
		if best.greaterThan(d) {
			best = minDepth{depth: d, set: true}
			newW, oldW = leadWeight, trailWeight
		}
		reach = math.Ldexp(1, -d)*newW + reach*oldW
	}
	return reach, nil
}
