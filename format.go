package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	combinationsHeader = "Depth,A,B,C"
	wordsHeader        = "Element,Depth,Reachability"
)

// WriteCombinations writes one row per distinct combination. Fields are
// joined with commas and never quoted.
func WriteCombinations(w io.Writer, cd *CombinationDepths) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, combinationsHeader)
	for _, c := range cd.Combinations() {
		d, _ := cd.Depth(c)
		fmt.Fprintf(bw, "%d,%s,%s,%s\n", d, c.A, c.B, c.Result)
	}
	return bw.Flush()
}

// WriteWords writes one row per scored element.
func WriteWords(w io.Writer, r *Reachability, elems *ElementDepths) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, wordsHeader)
	for _, name := range r.Names() {
		depth, ok := elems.Depth(name)
		if !ok {
			return fmt.Errorf("%w: %q has a score but no depth", ErrUnknownElement, name)
		}
		score, _ := r.Score(name)
		fmt.Fprintf(bw, "%s,%d,%s\n", name, depth, formatScore(score))
	}
	return bw.Flush()
}

// formatScore prints the shortest decimal that round-trips, always marked
// as a float: 0 -> "0.0", 0.375 -> "0.375", 1e-05 -> "1e-05".
func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") {
		return s
	}
	return s + ".0"
}

// WriteDataset writes both CSV files to the paths in cfg.
func WriteDataset(cfg Config, ds *Dataset) error {
	if err := writeFile(cfg.CombinationsPath, func(w io.Writer) error {
		return WriteCombinations(w, ds.CombinationDepths)
	}); err != nil {
		return err
	}
	return writeFile(cfg.WordsPath, func(w io.Writer) error {
		return WriteWords(w, ds.Reachability, ds.Elements)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
