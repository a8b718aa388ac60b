package netbook

import "testing"

func TestNewAsset(t *testing.T) {
	testCases := []struct {
		code    string
		wantErr bool
	}{
		{code: "USD"},
		{code: "EUR"},
		{code: "XYZ"}, // unknown but well-formed private asset
		{code: "usd", wantErr: true},
		{code: "US", wantErr: true},
		{code: "EURO", wantErr: true},
		{code: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			_, err := NewAsset(tc.code)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewAsset(%q) error = %v, wantErr %v", tc.code, err, tc.wantErr)
			}
		})
	}
}

func TestParseInstrument(t *testing.T) {
	i, err := ParseInstrument("EURUSD")
	if err != nil {
		t.Fatalf("ParseInstrument() error = %v", err)
	}
	if i.Base() != "EUR" || i.Quote() != "USD" {
		t.Errorf("ParseInstrument() = %s/%s, want EUR/USD", i.Base(), i.Quote())
	}
	if got := i.Reverse().String(); got != "USDEUR" {
		t.Errorf("Reverse() = %s, want USDEUR", got)
	}

	for _, bad := range []string{"EUR", "eurusd", "EUR-USD", "EUREUR"} {
		if _, err := ParseInstrument(bad); err == nil {
			t.Errorf("ParseInstrument(%q) accepted an invalid instrument", bad)
		}
	}
}

func TestSideMappings(t *testing.T) {
	if Long.Reverse() != Short || Short.Reverse() != Long {
		t.Error("Reverse() is not a total involution")
	}
	if Long.CloseSide() != Bid {
		t.Errorf("Long.CloseSide() = %v, want %v", Long.CloseSide(), Bid)
	}
	if Short.CloseSide() != Ask {
		t.Errorf("Short.CloseSide() = %v, want %v", Short.CloseSide(), Ask)
	}
	if Bid.Opposite() != Ask || Ask.Opposite() != Bid {
		t.Error("Opposite() is not a total involution")
	}
}
