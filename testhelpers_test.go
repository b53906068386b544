package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// exampleItems is the three-element graph a + b = c.
const exampleItems = `{
  "a": {"depth": 0},
  "b": {"depth": 0},
  "c": {"depth": 0, "recipes": [{"item_1": "a", "item_2": "b"}]}
}`

// orderedItems gives c two recipes of depth 2 and 1, in that order.
const orderedItems = `{
  "x": {"depth": 0, "recipes": []},
  "y": {"depth": 0},
  "m": {"depth": 1, "recipes": [{"item_1": "x", "item_2": "y"}]},
  "c": {"depth": 1, "recipes": [
    {"item_1": "x", "item_2": "m"},
    {"item_1": "x", "item_2": "y"}
  ]}
}`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustGenerate(t *testing.T, itemsJSON string) *Dataset {
	t.Helper()
	g, err := ParseItems(itemsJSON)
	require.NoError(t, err)
	ds, err := Generate(g, discardLogger())
	require.NoError(t, err)
	return ds
}
