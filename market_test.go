package netbook

import (
	"testing"
)

// board is a helper for test to build a rate board from (pair, bid, ask) rows.
func board(t *testing.T, pivot Asset, rows ...[3]string) *RateBoard {
	t.Helper()
	b := NewRateBoard(pivot)
	for _, row := range rows {
		i := mustInstrument(t, row[0])
		q, err := NewQuote(i, M(dec(t, row[1]), i.Quote()), M(dec(t, row[2]), i.Quote()), t0)
		if err != nil {
			t.Fatalf("NewQuote(%v) error = %v", row, err)
		}
		b.Set(q)
	}
	return b
}

func TestNewQuote(t *testing.T) {
	i := mustInstrument(t, "EURUSD")
	if _, err := NewQuote(i, EUR(1.1), EUR(1.2), t0); err == nil {
		t.Error("NewQuote() accepted prices in the base asset")
	}
	if _, err := NewQuote(i, USD(-1.1), USD(1.2), t0); err == nil {
		t.Error("NewQuote() accepted a negative price")
	}
	q, err := NewQuote(i, USD(1.1), USD(1.2), t0)
	if err != nil {
		t.Fatalf("NewQuote() error = %v", err)
	}
	if !q.Price(Bid).Equal(USD(1.1)) || !q.Price(Ask).Equal(USD(1.2)) {
		t.Errorf("Price() = %v/%v, want 1.1/1.2", q.Bid().value, q.Ask().value)
	}
}

func TestRateBoard_Quote(t *testing.T) {
	b := board(t, "USD", [3]string{"EURUSD", "2", "4"})

	if q, ok := b.Quote(mustInstrument(t, "EURUSD"), Q(1)); !ok || !q.Bid().Equal(USD(2)) {
		t.Errorf("direct quote = %v ok=%v, want bid 2", q, ok)
	}
	// the reversed pair is synthesized: its bid is the reciprocal of the ask.
	q, ok := b.Quote(mustInstrument(t, "USDEUR"), Q(1))
	if !ok {
		t.Fatal("reversed quote missing")
	}
	if !q.Bid().Equal(EUR(0.25)) || !q.Ask().Equal(EUR(0.5)) {
		t.Errorf("reversed quote = %v/%v, want 0.25/0.5", q.Bid().value, q.Ask().value)
	}
	if _, ok := b.Quote(mustInstrument(t, "GBPJPY"), Q(1)); ok {
		t.Error("unquoted instrument must report absence, not a zero quote")
	}
}

func TestRateBoard_Convert(t *testing.T) {
	b := board(t, "USD",
		[3]string{"GBPUSD", "2", "2"},
		[3]string{"EURUSD", "4", "4"},
	)

	testCases := []struct {
		name   string
		in     Money
		target Asset
		want   Money
		wantOK bool
	}{
		{name: "identity", in: USD(42), target: "USD", want: USD(42), wantOK: true},
		{name: "direct", in: GBP(8), target: "USD", want: USD(16), wantOK: true},
		{name: "inverse", in: USD(16), target: "GBP", want: GBP(8), wantOK: true},
		{name: "cross through pivot", in: GBP(8), target: "EUR", want: EUR(4), wantOK: true},
		{name: "no route", in: M(8, Asset("JPY")), target: "GBP", wantOK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := b.Convert(tc.in, tc.target, Bid, Q(1))
			if ok != tc.wantOK {
				t.Fatalf("Convert() ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("Convert() = %v %s, want %v %s", got.value, got.asset, tc.want.value, tc.want.asset)
			}
		})
	}
}

func TestRateBoard_Convert_SideSelection(t *testing.T) {
	b := board(t, "USD", [3]string{"EURUSD", "2", "3"})

	bid, ok := b.Convert(EUR(10), "USD", Bid, Q(10))
	if !ok || !bid.Equal(USD(20)) {
		t.Errorf("Convert(bid) = %v ok=%v, want 20", bid.value, ok)
	}
	ask, ok := b.Convert(EUR(10), "USD", Ask, Q(10))
	if !ok || !ask.Equal(USD(30)) {
		t.Errorf("Convert(ask) = %v ok=%v, want 30", ask.value, ok)
	}
}
