package botsim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedToken is one entry in the simulator's token universe.
type SeedToken struct {
	Address string `yaml:"address"`
	Symbol  string `yaml:"symbol"`
}

type seedFile struct {
	Tokens []SeedToken `yaml:"tokens"`
}

// LoadUniverse reads a token universe from a YAML file:
//
//	tokens:
//	  - address: 9n4nbM75f5Ui33ZbPYXn59EwSgE8CGsHtAeTH5YFeJ9E
//	    symbol: BONK
func LoadUniverse(path string) ([]SeedToken, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("botsim: read universe file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("botsim: parse universe file: %w", err)
	}
	if len(f.Tokens) == 0 {
		return nil, fmt.Errorf("botsim: universe file %s has no tokens", path)
	}
	for i, tok := range f.Tokens {
		if tok.Address == "" || tok.Symbol == "" {
			return nil, fmt.Errorf("botsim: universe entry %d missing address or symbol", i)
		}
	}
	return f.Tokens, nil
}

// DefaultUniverse returns the built-in token universe used when no seed file
// is configured.
func DefaultUniverse() []SeedToken {
	return []SeedToken{
		{Address: "DezXAZ8z7PnrnRJjz3wXBoRgixCa6xjnB7YaB1pPB263", Symbol: "BONK"},
		{Address: "EKpQGSJtjMFqKZ9KQanSqYXRcF8fBopzLHYxdM65zcjm", Symbol: "WIF"},
		{Address: "7GCihgDB8fe6KNjn2MYtkzZcRjQy3t9GHdC8uHYmW2hr", Symbol: "POPCAT"},
		{Address: "ukHH6c7mMyiWCf1b9pnWe25TSpkDDt3H5pQZgZ74J82", Symbol: "BOME"},
		{Address: "MEW1gQWJ3nEXg2qgERiKu7FAFj79PHvQVREQUzScPP5", Symbol: "MEW"},
		{Address: "5z3EqYQo9HiCEs3R84RCDMu2n7anpDMxRhdK8PSWmrRC", Symbol: "PONKE"},
		{Address: "A8C3xuqscfmyLrte3VmTqrAq8kgMASius9AFNANwpump", Symbol: "FWOG"},
		{Address: "ED5nyyWEzpPPiWimP8vYm7sD7TD3LAt3Q3gRTWHzPJBY", Symbol: "MOODENG"},
		{Address: "6ogzHhzdrQr9Pgv6hZ2MNze7UrzBMAFyBBWUYp1Fhitx", Symbol: "RETARDIO"},
		{Address: "2qEHjDLDLbuBgRYvsxhc5D6uDWAivNFZGan56P1tpump", Symbol: "PNUT"},
		{Address: "CzLSujWBLFsSjncfkh59rUFqvafWcY5tzedWJSuypump", Symbol: "GOAT"},
		{Address: "8x5VqbHA8D7NkD52uNuS5nnt3PwA8pLD34ymskeSo2Wn", Symbol: "ZEREBRO"},
	}
}
