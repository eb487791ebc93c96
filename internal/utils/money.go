package utils

import (
	"fmt"
	"math"
)

// RoundCents applies the fixed pricing precision policy: amounts are
// dollars rounded half away from zero to two decimals.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatSeat renders a seat label like "12A".
func FormatSeat(row int, letter string) string {
	return fmt.Sprintf("%d%s", row, letter)
}
