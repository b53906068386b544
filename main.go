//go:build !lambda

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootFlags struct {
	configPath       string
	itemsPath        string
	combinationsPath string
	wordsPath        string
}

var rootCmd = &cobra.Command{
	Use:   "alchemy-datagen",
	Short: "Derive Combinations.csv and Words.csv from items.json",
	Long: "alchemy-datagen reads the element graph in items.json and writes every\n" +
		"valid combination with its depth, and a reachability score per element.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

var inspectFlags struct {
	top int
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize previously generated CSV files",
	Args:  cobra.NoArgs,
	RunE:  runInspect,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.configPath, "config", "", "YAML file with items/combinations/words paths")
	pf.StringVar(&rootFlags.itemsPath, "items", "", "Input element graph (default items.json)")
	pf.StringVar(&rootFlags.combinationsPath, "combinations", "", "Combinations output (default Combinations.csv)")
	pf.StringVar(&rootFlags.wordsPath, "words", "", "Words output (default Words.csv)")
	pf.BoolVarP(&Verbose, "verbose", "v", false, "Log each pipeline stage to stderr")

	inspectCmd.Flags().IntVarP(&inspectFlags.top, "top", "n", 10, "Number of most reachable elements to list")
	rootCmd.AddCommand(inspectCmd)
}

// resolveConfig layers defaults, the optional config file and explicit flags.
func resolveConfig() (Config, error) {
	cfg := DefaultConfig()
	if rootFlags.configPath != "" {
		var err error
		if cfg, err = LoadConfig(rootFlags.configPath); err != nil {
			return cfg, err
		}
	}
	if rootFlags.itemsPath != "" {
		cfg.ItemsPath = rootFlags.itemsPath
	}
	if rootFlags.combinationsPath != "" {
		cfg.CombinationsPath = rootFlags.combinationsPath
	}
	if rootFlags.wordsPath != "" {
		cfg.WordsPath = rootFlags.wordsPath
	}
	return cfg, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	return Run(cfg, newLogger(cmd.ErrOrStderr()))
}

// Run loads cfg.ItemsPath, derives the dataset and writes both CSV files.
func Run(cfg Config, logger *slog.Logger) error {
	g, err := LoadItems(cfg.ItemsPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded items", "path", cfg.ItemsPath, "entries", len(g.Elements))

	ds, err := Generate(g, logger)
	if err != nil {
		return err
	}
	if err := WriteDataset(cfg, ds); err != nil {
		return err
	}
	logger.Debug("wrote dataset", "combinations", cfg.CombinationsPath, "words", cfg.WordsPath)
	return nil
}

func runInspect(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	words, err := readCSVFile(cfg.WordsPath, ReadWords)
	if err != nil {
		return err
	}
	combos, err := readCSVFile(cfg.CombinationsPath, ReadCombinations)
	if err != nil {
		return err
	}
	printSummary(cmd.OutOrStdout(), words, combos, inspectFlags.top)
	return nil
}

func printSummary(out io.Writer, words []WordRow, combos []CombinationRow, top int) {
	fmt.Fprintf(out, "%d elements, %d combinations\n\n", len(words), len(combos))

	fmt.Fprintf(out, "%-8s %12s\n", "Depth", "Recipes")
	fmt.Fprintf(out, "%-8s %12s\n", "--------", "------------")
	for d, n := range DepthHistogram(combos) {
		if n > 0 {
			fmt.Fprintf(out, "%-8d %12d\n", d, n)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "%-24s %6s %14s\n", "Element", "Depth", "Reachability")
	fmt.Fprintf(out, "%-24s %6s %14s\n", "------------------------", "------", "--------------")
	for _, w := range TopReachable(words, top) {
		fmt.Fprintf(out, "%-24s %6d %14.6f\n", w.Element, w.Depth, w.Reachability)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
