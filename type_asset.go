package netbook

import (
	"fmt"
	"regexp"

	"github.com/Rhymond/go-money"
)

// assetCodeRegex checks for the format: 3 uppercase letters.
var assetCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// instrumentRegex checks for the format: 6 uppercase letters (3 for base, 3 for quote).
var instrumentRegex = regexp.MustCompile(`^[A-Z]{6}$`)

// Asset identifies a single currency-like asset by its 3-letter code
// following the ISO 4217 convention (e.g. "EUR", "USD").
type Asset string

// NewAsset validates a 3-letter asset code. Codes known to the go-money
// currency catalog are accepted as-is; unknown codes are still accepted when
// they match the 3-uppercase-letter format, so privately quoted assets can
// be booked too.
func NewAsset(code string) (Asset, error) {
	if money.GetCurrency(code) != nil {
		return Asset(code), nil
	}
	if !assetCodeRegex.MatchString(code) {
		return "", fmt.Errorf("invalid asset code: must be 3 uppercase letters, got %q", code)
	}
	return Asset(code), nil
}

// String implements the fmt.Stringer interface.
func (a Asset) String() string { return string(a) }

// Instrument represents a tradable pair of assets following the common FX
// market convention: the base asset is priced in units of the quote asset.
//
// Example: the instrument "EURUSD" is the price of one Euro (EUR, the base)
// in terms of US Dollars (USD, the quote).
type Instrument struct {
	base  Asset
	quote Asset
}

// NewInstrument creates an instrument from a base and quote asset after validation.
func NewInstrument(base, quote Asset) (Instrument, error) {
	if _, err := NewAsset(string(base)); err != nil {
		return Instrument{}, fmt.Errorf("invalid base asset: %w", err)
	}
	if _, err := NewAsset(string(quote)); err != nil {
		return Instrument{}, fmt.Errorf("invalid quote asset: %w", err)
	}
	if base == quote {
		return Instrument{}, fmt.Errorf("base and quote assets must differ, got %q twice", base)
	}
	return Instrument{base: base, quote: quote}, nil
}

// ParseInstrument parses the 6-letter concatenated form, e.g. "EURUSD".
func ParseInstrument(s string) (Instrument, error) {
	if !instrumentRegex.MatchString(s) {
		return Instrument{}, fmt.Errorf("invalid instrument: must be 6 uppercase letters, got %q", s)
	}
	return NewInstrument(Asset(s[:3]), Asset(s[3:]))
}

// Base returns the asset being priced.
func (i Instrument) Base() Asset { return i.base }

// Quote returns the asset the price is expressed in.
func (i Instrument) Quote() Asset { return i.quote }

// Reverse returns the instrument with base and quote swapped.
func (i Instrument) Reverse() Instrument { return Instrument{base: i.quote, quote: i.base} }

// String implements the fmt.Stringer interface.
func (i Instrument) String() string { return string(i.base) + string(i.quote) }
