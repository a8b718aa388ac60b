package netbook

import (
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	if got := USD(10).Add(USD(2.5)); !got.Equal(USD(12.5)) {
		t.Errorf("Add() = %v, want 12.5", got.value)
	}
	if got := USD(10).Sub(USD(2.5)); !got.Equal(USD(7.5)) {
		t.Errorf("Sub() = %v, want 7.5", got.value)
	}
	if got := USD(-10).Abs(); !got.Equal(USD(10)) {
		t.Errorf("Abs() = %v, want 10", got.value)
	}
	if got := USD(10).Neg(); !got.Equal(USD(-10)) {
		t.Errorf("Neg() = %v, want -10", got.value)
	}
	if got := USD(10).Mul(Q(3)); !got.Equal(USD(30)) {
		t.Errorf("Mul() = %v, want 30", got.value)
	}
	if got := USD(-1).Sign(); got != -1 {
		t.Errorf("Sign() = %d, want -1", got)
	}
}

func TestMoney_WeakAsset(t *testing.T) {
	// the zero Money's "" asset merges with any other asset.
	var zero Money
	if got := zero.Add(USD(5)); got.Asset() != "USD" || !got.Equal(USD(5)) {
		t.Errorf("zero.Add(5 USD) = %v %s, want 5 USD", got.value, got.asset)
	}

	defer func() {
		if recover() == nil {
			t.Error("adding EUR to USD must panic")
		}
	}()
	USD(1).Add(EUR(1))
}

func TestMoney_Round(t *testing.T) {
	testCases := []struct {
		in    string
		scale int32
		want  string
	}{
		{"166.664", 2, "166.66"},
		{"166.665", 2, "166.67"},
		{"-166.665", 2, "-166.67"},
		{"500", 2, "500"},
	}
	for _, tc := range testCases {
		got := M(dec(t, tc.in), "USD").Round(tc.scale)
		if !got.Equal(M(dec(t, tc.want), "USD")) {
			t.Errorf("Round(%s, %d) = %v, want %s", tc.in, tc.scale, got.value, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := USD(500).SignedString(); got != "+$500.00" {
		t.Errorf("SignedString(500) = %q, want %q", got, "+$500.00")
	}
}
