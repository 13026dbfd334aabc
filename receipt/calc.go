package receipt

import "strconv"

// parseAmount converts a user-entered decimal string to a float64. Anything
// unparsable counts as zero so partial form input never blocks a render.
func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != f {
		return 0
	}
	return f
}

// parseQuantity converts a user-entered quantity string to an int, zero when
// unparsable or negative.
func parseQuantity(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Subtotal sums unit price times quantity over all items. Arithmetic keeps
// full float precision; rounding happens only at display time.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += parseAmount(it.Price) * float64(parseQuantity(it.Quantity))
	}
	return sum
}

// TaxAmount computes subtotal * (rate / 100) for a percentage rate string.
func TaxAmount(subtotal float64, taxRatePercent string) float64 {
	return subtotal * (parseAmount(taxRatePercent) / 100)
}

// Total is the sum of subtotal and tax amount.
func Total(subtotal, taxAmount float64) float64 {
	return subtotal + taxAmount
}

// Calculate derives all three figures from the item list and tax rate.
func Calculate(items []LineItem, taxRatePercent string) Totals {
	sub := Subtotal(items)
	tax := TaxAmount(sub, taxRatePercent)
	return Totals{Subtotal: sub, TaxAmount: tax, Total: Total(sub, tax)}
}

// FormatAmount renders a value with exactly two decimal places and no currency
// symbol. Rounding is round-half-to-even as implemented by strconv's shortest
// correctly-rounded conversion; the same helper is used everywhere an amount
// is printed so the policy stays uniform.
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
