package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func score(t *testing.T, r *Reachability, name string) float64 {
	t.Helper()
	v, ok := r.Score(name)
	require.True(t, ok, "no score for %q", name)
	return v
}

func TestReachabilityExample(t *testing.T) {
	ds := mustGenerate(t, exampleItems)

	require.Equal(t, 0.375, score(t, ds.Reachability, "c"))
	require.Equal(t, 0.0, score(t, ds.Reachability, "a"))
	require.Equal(t, 0.0, score(t, ds.Reachability, "b"))
	require.Equal(t, []string{"a", "b", "c"}, ds.Reachability.Names())
}

func TestReachabilitySingleRecipe(t *testing.T) {
	for _, depth := range []int{0, 3, 998, 999, 1000} {
		valid := newElementDepths()
		valid.add("a", depth)
		valid.add("b", 0)
		valid.add("c", depth+1)
		combos := []Combination{{A: "a", B: "b", Result: "c"}}
		cd, err := ComputeCombinationDepths(combos, valid)
		require.NoError(t, err)

		r, err := ComputeReachability(valid, GroupByResult(combos), cd)
		require.NoError(t, err)
		want := leadWeight * math.Ldexp(1, -(depth + 1))
		require.Equal(t, want, score(t, r, "c"), "operand depth %d", depth)
	}
}

func TestReachabilityFoldWeights(t *testing.T) {
	ds := mustGenerate(t, orderedItems)

	// c folds x+m (2), x+y (1), x+m (2), x+y (1):
	//   0.25*0.75            = 0.1875    new minimum 2
	//   0.5*0.75 + r*0.25    = 0.421875  new minimum 1
	//   0.25*0.25 + r*0.75   = 0.37890625
	//   0.5*0.25 + r*0.75    = 0.4091796875
	require.InDelta(t, 0.4091796875, score(t, ds.Reachability, "c"), 1e-15)
	require.Equal(t, 0.375, score(t, ds.Reachability, "m"))
	require.Equal(t, 0.0, score(t, ds.Reachability, "x"))
}

func TestReachabilityDependsOnRecipeOrder(t *testing.T) {
	reversed := mustGenerate(t, `{
	  "x": {"depth": 0},
	  "y": {"depth": 0},
	  "m": {"depth": 1, "recipes": [{"item_1": "x", "item_2": "y"}]},
	  "c": {"depth": 1, "recipes": [
	    {"item_1": "x", "item_2": "y"},
	    {"item_1": "x", "item_2": "m"}
	  ]}
	}`)
	ordered := mustGenerate(t, orderedItems)

	// x+y (1), x+m (2), x+y (1), x+m (2): only the first recipe leads.
	require.InDelta(t, 0.349609375, score(t, reversed.Reachability, "c"), 1e-15)
	require.NotEqual(t, score(t, ordered.Reachability, "c"), score(t, reversed.Reachability, "c"))
}

func TestFoldReachEqualDepthDoesNotLead(t *testing.T) {
	cd := newCombinationDepths()
	cd.set(Combination{A: "a", B: "b", Result: "c"}, 2)
	cd.set(Combination{A: "b", B: "a", Result: "c"}, 2)

	got, err := foldReach("c", []Recipe{{"a", "b"}, {"b", "a"}}, cd)
	require.NoError(t, err)
	// 0.25*0.75 = 0.1875, then 0.25*0.25 + 0.1875*0.75 = 0.203125
	require.Equal(t, 0.203125, got)
}

func TestFoldReachUnknownCombination(t *testing.T) {
	_, err := foldReach("c", []Recipe{{"a", "b"}}, newCombinationDepths())
	require.ErrorIs(t, err, ErrUnknownCombination)
}

func TestReachabilityInUnitRange(t *testing.T) {
	ds := mustGenerate(t, orderedItems)
	for _, name := range ds.Reachability.Names() {
		v := score(t, ds.Reachability, name)
		require.GreaterOrEqual(t, v, 0.0, name)
		require.LessOrEqual(t, v, 1.0, name)
	}
}
