package netbook

import (
	"errors"
	"testing"
)

func TestAccount_Ingest_FullClose(t *testing.T) {
	m := board(t, "USD")
	acc, err := NewAccount("USD", USD(1000), NewStrictPortfolio(), 2)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}

	acc, ok, err := acc.Ingest(eurusd(t, 100000, 1.1000, "", t0), m)
	if err != nil || !ok {
		t.Fatalf("Ingest(open) = ok %v, error %v", ok, err)
	}
	if !acc.Balance().Equal(USD(1000)) {
		t.Errorf("balance after open = %v, want unchanged 1000", acc.Balance().value)
	}

	acc, ok, err = acc.Ingest(eurusd(t, -100000, 1.1050, "", t1), m)
	if err != nil || !ok {
		t.Fatalf("Ingest(close) = ok %v, error %v", ok, err)
	}
	if !acc.Balance().Equal(USD(1500)) {
		t.Errorf("balance after close = %v, want 1500", acc.Balance().value)
	}
	if acc.Portfolio().Len() != 0 {
		t.Errorf("portfolio Len() = %d, want 0", acc.Portfolio().Len())
	}
	if _, found := acc.LastDiff().FirstDeal(); !found {
		t.Error("audit diff must carry the realizing deal")
	}
}

func TestAccount_Ingest_ConvertsAndRounds(t *testing.T) {
	// the realized 500 USD settles into GBP through the reversed GBPUSD
	// quote: 500 / 3 rounds to 166.67 at scale 2.
	m := board(t, "USD", [3]string{"GBPUSD", "3", "3"})
	acc, err := NewAccount("GBP", GBP(0), NewStrictPortfolio(), 2)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}

	acc, ok, err := acc.Ingest(eurusd(t, 100000, 1.1000, "", t0), m)
	if err != nil || !ok {
		t.Fatalf("Ingest(open) = ok %v, error %v", ok, err)
	}
	acc, ok, err = acc.Ingest(eurusd(t, -100000, 1.1050, "", t1), m)
	if err != nil || !ok {
		t.Fatalf("Ingest(close) = ok %v, error %v", ok, err)
	}
	if !acc.Balance().Equal(M(dec(t, "166.67"), "GBP")) {
		t.Errorf("balance = %v, want 166.67 GBP", acc.Balance().value)
	}
}

func TestAccount_Ingest_NoRoute(t *testing.T) {
	// settling in CHF with an empty board: even a zero realization needs a
	// conversion route, so the whole ingestion yields no result.
	m := board(t, "USD")
	acc, err := NewAccount("CHF", M(100, Asset("CHF")), NewStrictPortfolio(), 2)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}

	next, ok, err := acc.Ingest(eurusd(t, 100000, 1.1000, "", t0), m)
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}
	if ok || next != nil {
		t.Errorf("Ingest() = (%v, %v), want no result", next, ok)
	}
	// the receiving account is untouched.
	if !acc.Balance().Equal(M(100, Asset("CHF"))) || acc.Portfolio().Len() != 0 {
		t.Error("account mutated by a failed ingestion")
	}
}

func TestAccount_Ingest_InvariantError(t *testing.T) {
	m := board(t, "USD")
	acc, err := NewAccount("USD", USD(0), NewStrictPortfolio(), 2)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	acc, ok, err := acc.Ingest(eurusd(t, 100000, 1.1, "", t0), m)
	if err != nil || !ok {
		t.Fatalf("Ingest() = ok %v, error %v", ok, err)
	}
	// replaying the booked position's own add is a caller bug surfaced as an
	// invariant error, not an absent result.
	stale := Diff{AddPosition{Position: eurusd(t, 100000, 1.1, "", t0)}}
	if _, err := acc.Portfolio().Apply(stale); !errors.Is(err, ErrSlotOccupied) {
		t.Errorf("Apply() error = %v, want %v", err, ErrSlotOccupied)
	}
}

func TestNewAccount(t *testing.T) {
	if _, err := NewAccount("USD", EUR(10), NewStrictPortfolio(), 2); err == nil {
		t.Error("NewAccount() accepted an opening balance in another asset")
	}
	// negative scale defaults to the currency fraction.
	acc, err := NewAccount("USD", M(dec(t, "10.005"), "USD"), NewStrictPortfolio(), -1)
	if err != nil {
		t.Fatalf("NewAccount() error = %v", err)
	}
	if !acc.Balance().Equal(M(dec(t, "10.01"), "USD")) {
		t.Errorf("opening balance = %v, want rounded 10.01", acc.Balance().value)
	}
}
