package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/etnz/netbook"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config carries the account settings and the rate board the CLI runs with.
type Config struct {
	// Settlement is the asset the account balance is denominated in.
	Settlement string `yaml:"settlement"`
	// Opening is the opening balance, a decimal string.
	Opening string `yaml:"opening,omitempty"`
	// Scale is the number of decimal places of the balance; negative means
	// the settlement currency's own fraction.
	Scale int32 `yaml:"scale,omitempty"`
	// Policy selects the book aggregation: "strict" or "non-strict".
	Policy string `yaml:"policy"`
	// Pivot is the asset used to cross pairs with no direct rate.
	Pivot string `yaml:"pivot,omitempty"`
	// Rates is the two-way rate board used to settle realized profit/loss.
	Rates []Rate `yaml:"rates,omitempty"`
}

// Rate is one two-way entry of the rate board.
type Rate struct {
	Pair string `yaml:"pair"` // 6-letter instrument, e.g. EURUSD
	Bid  string `yaml:"bid"`
	Ask  string `yaml:"ask"`
}

// LoadConfig reads the YAML configuration, returning defaults when the file
// does not exist.
func LoadConfig() (*Config, error) {
	cfg := &Config{Settlement: "USD", Scale: -1, Policy: "strict", Pivot: "USD"}
	data, err := os.ReadFile(*configFile)
	if errors.Is(err, fs.ErrNotExist) {
		Logger.Warn().Str("file", *configFile).Msg("config does not exist, using defaults")
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %q: %w", *configFile, err)
	}
	return cfg, nil
}

// SettlementAsset validates and returns the configured settlement asset.
func (c *Config) SettlementAsset() (netbook.Asset, error) {
	return netbook.NewAsset(c.Settlement)
}

// NewBook returns an empty book under the configured policy.
func (c *Config) NewBook() netbook.Portfolio {
	if c.Policy == "non-strict" {
		return netbook.NewNonStrictPortfolio()
	}
	return netbook.NewStrictPortfolio()
}

// Market builds the rate board from the configured entries.
func (c *Config) Market() (*netbook.RateBoard, error) {
	pivot, err := netbook.NewAsset(c.Pivot)
	if err != nil {
		return nil, fmt.Errorf("invalid pivot: %w", err)
	}
	board := netbook.NewRateBoard(pivot)
	for _, r := range c.Rates {
		i, err := netbook.ParseInstrument(r.Pair)
		if err != nil {
			return nil, fmt.Errorf("invalid rate pair: %w", err)
		}
		bid, err := decimal.NewFromString(r.Bid)
		if err != nil {
			return nil, fmt.Errorf("invalid bid for %s: %w", r.Pair, err)
		}
		ask, err := decimal.NewFromString(r.Ask)
		if err != nil {
			return nil, fmt.Errorf("invalid ask for %s: %w", r.Pair, err)
		}
		q, err := netbook.NewQuote(i, netbook.M(bid, i.Quote()), netbook.M(ask, i.Quote()), time.Now())
		if err != nil {
			return nil, err
		}
		board.Set(q)
	}
	return board, nil
}

// balanceState is the persisted account balance.
type balanceState struct {
	Asset   string `yaml:"asset"`
	Balance string `yaml:"balance"`
}

// LoadBalance returns the persisted balance, falling back to the configured
// opening balance.
func LoadBalance(cfg *Config) (netbook.Money, error) {
	asset, err := cfg.SettlementAsset()
	if err != nil {
		return netbook.Money{}, err
	}
	data, err := os.ReadFile(*stateFile)
	if errors.Is(err, fs.ErrNotExist) {
		opening := cfg.Opening
		if opening == "" {
			opening = "0"
		}
		v, err := decimal.NewFromString(opening)
		if err != nil {
			return netbook.Money{}, fmt.Errorf("invalid opening balance: %w", err)
		}
		return netbook.M(v, asset), nil
	}
	if err != nil {
		return netbook.Money{}, err
	}
	var st balanceState
	if err := yaml.Unmarshal(data, &st); err != nil {
		return netbook.Money{}, fmt.Errorf("could not parse state %q: %w", *stateFile, err)
	}
	if st.Asset != string(asset) {
		return netbook.Money{}, fmt.Errorf("state balance in %s but account settles in %s", st.Asset, asset)
	}
	v, err := decimal.NewFromString(st.Balance)
	if err != nil {
		return netbook.Money{}, fmt.Errorf("invalid state balance: %w", err)
	}
	return netbook.M(v, asset), nil
}

// SaveBalance persists the balance for the next run.
func SaveBalance(balance netbook.Money) error {
	data, err := yaml.Marshal(balanceState{
		Asset:   string(balance.Asset()),
		Balance: balance.Amount().String(),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(*stateFile, data, 0o644)
}
