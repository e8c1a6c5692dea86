package numwords

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(t *testing.T, amount string) string {
	t.Helper()
	out, err := ToWords(decimal.RequireFromString(amount))
	require.NoError(t, err)
	return out
}

func TestToWords_Zero(t *testing.T) {
	assert.Equal(t, "Zero", words(t, "0"))
}

func TestToWords_Hundreds(t *testing.T) {
	assert.Equal(t, "One Hundred", words(t, "100"))
	assert.Equal(t, "Two Hundred and Thirty Four", words(t, "234"))
	assert.Equal(t, "Nine Hundred and Ninety Nine", words(t, "999"))
}

func TestToWords_IndianGrouping(t *testing.T) {
	// Lakh, not "One Hundred Thousand".
	assert.Equal(t, "One Lakh", words(t, "100000"))
	assert.Equal(t, "Ten Lakh", words(t, "1000000"))
	assert.Equal(t, "One Crore", words(t, "10000000"))
	assert.Equal(t,
		"One Crore Twenty Three Lakh Forty Five Thousand Six Hundred and Seventy Eight",
		words(t, "12345678"))
	assert.Equal(t, "One Hundred and Twenty Five Crore", words(t, "1250000000"))
}

func TestToWords_Teens(t *testing.T) {
	assert.Equal(t, "Nineteen", words(t, "19"))
	assert.Equal(t, "Twenty", words(t, "20"))
	assert.Equal(t, "One Thousand Five", words(t, "1005"))
}

func TestToWords_Paise(t *testing.T) {
	out := words(t, "1234.50")
	assert.True(t, strings.HasSuffix(out, "Fifty Paise"), out)
	assert.Contains(t, out, " and ")
	assert.Equal(t, "One Thousand Two Hundred and Thirty Four and Fifty Paise", out)

	// Whole amounts carry no paise segment.
	assert.Equal(t, "Five", words(t, "5.00"))

	// Rounded to 2 decimals before splitting.
	assert.Equal(t, "One and Twenty Four Paise", words(t, "1.235"))
}

func TestToWords_NegativeRejected(t *testing.T) {
	_, err := ToWords(decimal.RequireFromString("-1"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
