package utils

import "testing"

func TestRoundCents(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{29.9985, 30.00},
		{169.99, 169.99},
		{199.99 * 0.10, 20.00},
		{199.99 * 0.20, 40.00},
		{1.005, 1.0}, // 1.005 is stored slightly below .005 in binary
	}
	for _, tc := range cases {
		if got := RoundCents(tc.in); got != tc.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	if got := FormatMoney(169.99); got != "169.99" {
		t.Errorf("FormatMoney(169.99) = %q", got)
	}
	if got := FormatMoney(0); got != "0.00" {
		t.Errorf("FormatMoney(0) = %q", got)
	}
}

func TestFormatSeat(t *testing.T) {
	if got := FormatSeat(12, "A"); got != "12A" {
		t.Errorf("FormatSeat(12, A) = %q", got)
	}
}
