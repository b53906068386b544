package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the input and output paths of one run.
type Config struct {
	// ItemsPath is the element graph to read.
	ItemsPath string `yaml:"items"`
	// CombinationsPath receives the Depth,A,B,C table.
	CombinationsPath string `yaml:"combinations"`
	// WordsPath receives the Element,Depth,Reachability table.
	WordsPath string `yaml:"words"`
}

// DefaultConfig returns the file names the generator has always used,
// relative to the working directory.
func DefaultConfig() Config {
	return Config{
		ItemsPath:        "items.json",
		CombinationsPath: "Combinations.csv",
		WordsPath:        "Words.csv",
	}
}

// LoadConfig reads a YAML config file. Keys left out keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Verbose enables debug logging of each pipeline stage.
var Verbose bool
