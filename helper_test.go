package netbook

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// fixed timestamps for deterministic tests.
var (
	t0 = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// GBP is a helper for test to create pound money from const
func GBP(v float64) Money { return M(v, "GBP") }

// dec is a helper for test to build an exact decimal from its string form.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// pos is a helper for test to build a valid position from its two legs.
func pos(t *testing.T, primary, secondary Money, id MatchID, at time.Time) Position {
	t.Helper()
	p, err := NewPosition(primary, secondary, id, at)
	if err != nil {
		t.Fatalf("NewPosition(%s, %s) error = %v", primary.value, secondary.value, err)
	}
	return p
}

// eurusd is a helper for test to build an EURUSD position: a positive amount
// is long, a negative one short, at the given price.
func eurusd(t *testing.T, amount, price float64, id MatchID, at time.Time) Position {
	t.Helper()
	a := decimal.NewFromFloat(amount)
	p := decimal.NewFromFloat(price)
	return pos(t, M(a, "EUR"), M(a.Mul(p).Neg(), "USD"), id, at)
}

// mustInstrument is a helper for test to parse an instrument.
func mustInstrument(t *testing.T, s string) Instrument {
	t.Helper()
	i, err := ParseInstrument(s)
	if err != nil {
		t.Fatalf("ParseInstrument(%q) error = %v", s, err)
	}
	return i
}
