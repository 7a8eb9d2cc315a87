package domain

import "math"

// RoundHalfUp rounds to the nearest integer with ties going toward +Inf
// (2.5 -> 3, -2.5 -> -2).
// x-floor(x) is exact, so values just below a half and odd integers past 2^52 stay put.
func RoundHalfUp(x float64) int64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int64(f)
}

// EffectiveUnitPrice applies a percentage discount to a unit price and rounds to a whole unit.
// Inputs are not validated: a negative price or a discount outside [0,100] flows through the formula as is.
func EffectiveUnitPrice(price, discountPercent float64) int64 {
	return RoundHalfUp(price - price*discountPercent/100)
}

// ActualTotal sums the line totals of items.
// Each line is rounded per unit before multiplying by its quantity.
func ActualTotal(items []LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Total()
	}
	return total
}
