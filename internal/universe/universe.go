// Package universe holds the fixed ticker universe the dashboard operates on.
// The universe is loaded once from a YAML file and treated as read-only.
package universe

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ticker is a single entry in the universe.
type Ticker struct {
	Symbol string `yaml:"symbol" json:"symbol"`
	Name   string `yaml:"name" json:"name"`
}

// Universe is an ordered, immutable list of valid ticker symbols.
type Universe struct {
	tickers []Ticker
	index   map[string]int
}

type universeFile struct {
	Tickers []Ticker `yaml:"tickers"`
}

// Load reads the universe from a YAML file.
func Load(path string) (*Universe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read universe file: %w", err)
	}
	return Parse(data)
}

// Parse builds a universe from YAML bytes.
func Parse(data []byte) (*Universe, error) {
	var file universeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse universe file: %w", err)
	}
	if len(file.Tickers) == 0 {
		return nil, fmt.Errorf("universe file contains no tickers")
	}

	index := make(map[string]int, len(file.Tickers))
	for i, t := range file.Tickers {
		if t.Symbol == "" {
			return nil, fmt.Errorf("universe entry %d has no symbol", i)
		}
		if _, dup := index[t.Symbol]; dup {
			return nil, fmt.Errorf("duplicate symbol in universe: %s", t.Symbol)
		}
		index[t.Symbol] = i
	}

	return &Universe{tickers: file.Tickers, index: index}, nil
}

// Tickers returns the universe entries in file order.
func (u *Universe) Tickers() []Ticker {
	out := make([]Ticker, len(u.tickers))
	copy(out, u.tickers)
	return out
}

// Symbols returns the ticker symbols in file order.
func (u *Universe) Symbols() []string {
	symbols := make([]string, len(u.tickers))
	for i, t := range u.tickers {
		symbols[i] = t.Symbol
	}
	return symbols
}

// Contains reports whether the symbol is part of the universe.
func (u *Universe) Contains(symbol string) bool {
	_, ok := u.index[symbol]
	return ok
}

// Size returns the number of tickers.
func (u *Universe) Size() int {
	return len(u.tickers)
}
