package service

import (
	"testing"

	"github.com/shopspring/decimal"
	taxdomain "github.com/smallbiznis/gstbill/internal/tax/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(value string) decimal.Decimal { return decimal.RequireFromString(value) }

func item(qty, rate, taxRate, discount string) taxdomain.LineItem {
	return taxdomain.LineItem{
		Description:    "test item",
		HSNCode:        "8471",
		Quantity:       d(qty),
		UnitRate:       d(rate),
		TaxRatePercent: d(taxRate),
		Discount:       d(discount),
	}
}

var (
	sameState  = taxdomain.Jurisdiction{SellerStateCode: "27", BuyerStateCode: "27"}
	crossState = taxdomain.Jurisdiction{SellerStateCode: "27", BuyerStateCode: "29"}
)

func TestComputeTotals_IntraState(t *testing.T) {
	totals, err := ComputeTotals([]taxdomain.LineItem{item("2", "100", "18", "0")}, sameState)
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(d("200")), totals.Subtotal.String())
	assert.True(t, totals.TotalCGST.Equal(d("18")))
	assert.True(t, totals.TotalSGST.Equal(d("18")))
	assert.True(t, totals.TotalIGST.IsZero())
	assert.True(t, totals.TotalTax.Equal(d("36")))
	assert.True(t, totals.GrandTotal.Equal(d("236")))
	assert.False(t, totals.InterState)
}

func TestComputeTotals_InterState(t *testing.T) {
	totals, err := ComputeTotals([]taxdomain.LineItem{item("2", "100", "18", "0")}, crossState)
	require.NoError(t, err)

	assert.True(t, totals.TotalCGST.IsZero())
	assert.True(t, totals.TotalSGST.IsZero())
	assert.True(t, totals.TotalIGST.Equal(d("36")))
	assert.True(t, totals.TotalTax.Equal(totals.TotalIGST))
	assert.True(t, totals.GrandTotal.Equal(d("236")))
	assert.True(t, totals.InterState)
}

func TestComputeTotals_MixedRateBreakdown(t *testing.T) {
	items := []taxdomain.LineItem{
		item("1", "500", "18", "0"),
		item("1", "1000", "5", "0"),
	}
	totals, err := ComputeTotals(items, sameState)
	require.NoError(t, err)

	require.Len(t, totals.Breakdown, 2)
	// Sorted ascending by rate.
	assert.True(t, totals.Breakdown[0].Rate.Equal(d("5")))
	assert.True(t, totals.Breakdown[0].TaxableAmount.Equal(d("1000")))
	assert.True(t, totals.Breakdown[0].TotalTax.Equal(d("50")))
	assert.True(t, totals.Breakdown[1].Rate.Equal(d("18")))
	assert.True(t, totals.Breakdown[1].TaxableAmount.Equal(d("500")))
	assert.True(t, totals.Breakdown[1].TotalTax.Equal(d("90")))

	assert.True(t, totals.Subtotal.Equal(d("1500")))
	assert.True(t, totals.TotalTax.Equal(d("140")))

	// Column-wise sums across rows match the invoice totals.
	taxableSum, taxSum := decimal.Zero, decimal.Zero
	for _, row := range totals.Breakdown {
		taxableSum = taxableSum.Add(row.TaxableAmount)
		taxSum = taxSum.Add(row.TotalTax)
	}
	assert.True(t, taxableSum.Equal(totals.Subtotal))
	assert.True(t, taxSum.Equal(totals.TotalTax))
}

func TestComputeTotals_DiscountAndRounding(t *testing.T) {
	totals, err := ComputeTotals([]taxdomain.LineItem{item("3", "33.33", "18", "10")}, sameState)
	require.NoError(t, err)

	// 3*33.33 - 10 = 89.99 taxable, tax 16.20 (8.10 + 8.10).
	assert.True(t, totals.Subtotal.Equal(d("89.99")), totals.Subtotal.String())
	assert.True(t, totals.TotalTax.Equal(d("16.2")), totals.TotalTax.String())
	assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.TotalTax)))
	assert.True(t, totals.RoundedTotal.Equal(d("106")))
	assert.True(t, totals.RoundOff.Equal(totals.RoundedTotal.Sub(totals.GrandTotal)))
	assert.True(t, totals.RoundOff.Abs().LessThan(d("1")))
}

func TestComputeTotals_AmountInWords(t *testing.T) {
	totals, err := ComputeTotals([]taxdomain.LineItem{item("2", "100", "18", "0")}, sameState)
	require.NoError(t, err)
	assert.Equal(t, "Two Hundred and Thirty Six", totals.AmountInWords)
}

func TestComputeTotals_EmptyItems(t *testing.T) {
	totals, err := ComputeTotals(nil, sameState)
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TotalTax.IsZero())
	assert.Empty(t, totals.Breakdown)
	assert.Equal(t, "Zero", totals.AmountInWords)
}

func TestComputeTotals_NegativeTaxableRejected(t *testing.T) {
	// Discount exceeds the line amount: rejected, never clamped.
	_, err := ComputeTotals([]taxdomain.LineItem{item("1", "50", "18", "100")}, sameState)
	assert.ErrorIs(t, err, taxdomain.ErrNegativeTaxableAmount)
}

func TestComputeTotals_InvalidInputs(t *testing.T) {
	_, err := ComputeTotals([]taxdomain.LineItem{item("-1", "50", "18", "0")}, sameState)
	assert.ErrorIs(t, err, taxdomain.ErrInvalidQuantity)

	_, err = ComputeTotals([]taxdomain.LineItem{item("1", "-50", "18", "0")}, sameState)
	assert.ErrorIs(t, err, taxdomain.ErrInvalidUnitRate)

	_, err = ComputeTotals([]taxdomain.LineItem{item("1", "50", "-18", "0")}, sameState)
	assert.ErrorIs(t, err, taxdomain.ErrInvalidTaxRate)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	items := []taxdomain.LineItem{
		item("2", "149.99", "12", "5"),
		item("1", "899", "28", "0"),
	}
	first, err := ComputeTotals(items, crossState)
	require.NoError(t, err)
	second, err := ComputeTotals(items, crossState)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeTotals_ZeroRateLines(t *testing.T) {
	totals, err := ComputeTotals([]taxdomain.LineItem{item("4", "25", "0", "0")}, crossState)
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(d("100")))
	assert.True(t, totals.TotalTax.IsZero())
	assert.True(t, totals.GrandTotal.Equal(d("100")))
	require.Len(t, totals.Breakdown, 1)
	assert.True(t, totals.Breakdown[0].TotalTax.IsZero())
}
