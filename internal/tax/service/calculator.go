// Package service implements the GST totals computation.
package service

import (
	"sort"

	"github.com/shopspring/decimal"
	taxdomain "github.com/smallbiznis/gstbill/internal/tax/domain"
	"github.com/smallbiznis/gstbill/pkg/numwords"
)

var (
	hundred    = decimal.NewFromInt(100)
	twoHundred = decimal.NewFromInt(200)
)

// ComputeTotals converts invoice lines plus jurisdiction info into the full
// totals breakdown. Validation fails fast before anything is aggregated.
//
// Rounding rule: every per-rate tax amount is rounded half away from zero to
// 2 decimals, the grand total is subtotal + total tax with no further
// rounding, and RoundedTotal rounds the grand total to the whole rupee.
//
// This function is PURE:
// - No side effects
// - Fully deterministic
func ComputeTotals(items []taxdomain.LineItem, jurisdiction taxdomain.Jurisdiction) (taxdomain.InvoiceTotals, error) {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return taxdomain.InvoiceTotals{}, err
		}
	}

	interState := jurisdiction.InterState()

	type group struct {
		rate    decimal.Decimal
		taxable decimal.Decimal
	}
	groups := make(map[string]*group)
	subtotal := decimal.Zero
	for _, item := range items {
		taxable := item.TaxableAmount()
		subtotal = subtotal.Add(taxable)

		key := item.TaxRatePercent.String()
		g, ok := groups[key]
		if !ok {
			g = &group{rate: item.TaxRatePercent}
			groups[key] = g
		}
		g.taxable = g.taxable.Add(taxable)
	}

	breakdown := make([]taxdomain.TaxBreakdownRow, 0, len(groups))
	for _, g := range groups {
		row := taxdomain.TaxBreakdownRow{
			Rate:          g.rate,
			TaxableAmount: g.taxable,
			CGST:          decimal.Zero,
			SGST:          decimal.Zero,
			IGST:          decimal.Zero,
		}
		if interState {
			row.IGST = g.taxable.Mul(g.rate).Div(hundred).Round(2)
		} else {
			half := g.taxable.Mul(g.rate).Div(twoHundred).Round(2)
			row.CGST = half
			row.SGST = half
		}
		row.TotalTax = row.CGST.Add(row.SGST).Add(row.IGST)
		breakdown = append(breakdown, row)
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Rate.LessThan(breakdown[j].Rate)
	})

	totals := taxdomain.InvoiceTotals{
		Subtotal:   subtotal,
		TotalCGST:  decimal.Zero,
		TotalSGST:  decimal.Zero,
		TotalIGST:  decimal.Zero,
		InterState: interState,
		Breakdown:  breakdown,
	}
	for _, row := range breakdown {
		totals.TotalCGST = totals.TotalCGST.Add(row.CGST)
		totals.TotalSGST = totals.TotalSGST.Add(row.SGST)
		totals.TotalIGST = totals.TotalIGST.Add(row.IGST)
	}
	totals.TotalTax = totals.TotalCGST.Add(totals.TotalSGST).Add(totals.TotalIGST)
	totals.GrandTotal = subtotal.Add(totals.TotalTax)
	totals.RoundedTotal = totals.GrandTotal.Round(0)
	totals.RoundOff = totals.RoundedTotal.Sub(totals.GrandTotal)

	words, err := numwords.ToWords(totals.RoundedTotal)
	if err != nil {
		return taxdomain.InvoiceTotals{}, err
	}
	totals.AmountInWords = words

	return totals, nil
}
