package main

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
)

// WordRow is one parsed line of Words.csv.
type WordRow struct {
	Element      string
	Depth        int
	Reachability float64
}

// CombinationRow is one parsed line of Combinations.csv.
type CombinationRow struct {
	Depth int
	Combination
}

func readRecords(r io.Reader, header string, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing %q header", header)
	}
	return records[1:], nil
}

// ReadWords parses a Words.csv stream, header included.
func ReadWords(r io.Reader) ([]WordRow, error) {
	records, err := readRecords(r, wordsHeader, 3)
	if err != nil {
		return nil, err
	}
	rows := make([]WordRow, 0, len(records))
	for i, rec := range records {
		depth, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: depth: %w", i+2, err)
		}
		reach, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: reachability: %w", i+2, err)
		}
		rows = append(rows, WordRow{Element: rec[0], Depth: depth, Reachability: reach})
	}
	return rows, nil
}

// ReadCombinations parses a Combinations.csv stream, header included.
func ReadCombinations(r io.Reader) ([]CombinationRow, error) {
	records, err := readRecords(r, combinationsHeader, 4)
	if err != nil {
		return nil, err
	}
	rows := make([]CombinationRow, 0, len(records))
	for i, rec := range records {
		depth, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: depth: %w", i+2, err)
		}
		rows = append(rows, CombinationRow{
			Depth:       depth,
			Combination: Combination{A: rec[1], B: rec[2], Result: rec[3]},
		})
	}
	return rows, nil
}

func readCSVFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rows, nil
}

// TopReachable returns the n most reachable words, shallower first on ties.
func TopReachable(rows []WordRow, n int) []WordRow {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b WordRow) int {
		if c := cmp.Compare(b.Reachability, a.Reachability); c != 0 {
			return c
		}
		return cmp.Compare(a.Depth, b.Depth)
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// DepthHistogram counts combinations per depth, indexed by depth.
func DepthHistogram(rows []CombinationRow) []int {
	var hist []int
	for _, r := range rows {
		if r.Depth < 0 {
			continue
		}
		for len(hist) <= r.Depth {
			hist = append(hist, 0)
		}
		hist[r.Depth]++
	}
	return hist
}
