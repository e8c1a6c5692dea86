// Package numwords renders currency amounts as English words using the
// Indian numbering system (Hundred, Thousand, Lakh, Crore).
package numwords

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid_amount")

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// ToWords converts a non-negative amount into words, rupee part first and,
// when present, the paise part appended as " and <words> Paise".
//
// The amount is rounded to 2 decimal places (half away from zero) before the
// integer/fractional split, so callers do not need to pre-round.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
func ToWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", ErrInvalidAmount
	}

	amount = amount.Round(2)
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	out := Integer(rupees)
	if paise > 0 {
		out += " and " + Integer(paise) + " Paise"
	}
	return out, nil
}

// Integer converts a non-negative integer into Indian-system words.
// Grouping is Crore (10^7), Lakh (10^5), Thousand, then the final
// three digits with "and" between the hundreds word and a non-zero
// remainder ("Two Hundred and Thirty Four").
func Integer(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var parts []string
	if crore := n / 1e7; crore > 0 {
		parts = append(parts, Integer(crore)+" Crore")
		n %= 1e7
	}
	if lakh := n / 1e5; lakh > 0 {
		parts = append(parts, belowHundred(lakh)+" Lakh")
		n %= 1e5
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, belowHundred(thousand)+" Thousand")
		n %= 1000
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

func belowThousand(n int64) string {
	if n < 100 {
		return belowHundred(n)
	}
	out := belowHundred(n/100) + " Hundred"
	if rem := n % 100; rem > 0 {
		out += " and " + belowHundred(rem)
	}
	return out
}

func belowHundred(n int64) string {
	if n < 20 {
		return ones[n]
	}
	out := tens[n/10]
	if rem := n % 10; rem > 0 {
		out += " " + ones[rem]
	}
	return out
}
