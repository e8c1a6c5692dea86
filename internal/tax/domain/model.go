// Package domain holds the pure value types for GST computation.
package domain

import (
	"github.com/shopspring/decimal"
)

// LineItem is one product or service line on an invoice, pre-tax.
type LineItem struct {
	Description    string          `json:"description"`
	HSNCode        string          `json:"hsn_code"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitRate       decimal.Decimal `json:"unit_rate"`
	TaxRatePercent decimal.Decimal `json:"tax_rate_percent"`
	Discount       decimal.Decimal `json:"discount"`
}

// TaxableAmount is quantity * unit rate minus the absolute discount.
func (li LineItem) TaxableAmount() decimal.Decimal {
	return li.Quantity.Mul(li.UnitRate).Sub(li.Discount)
}

func (li LineItem) Validate() error {
	if li.Quantity.IsNegative() {
		return ErrInvalidQuantity
	}
	if li.UnitRate.IsNegative() {
		return ErrInvalidUnitRate
	}
	if li.TaxRatePercent.IsNegative() {
		return ErrInvalidTaxRate
	}
	if li.Discount.IsNegative() {
		return ErrInvalidDiscount
	}
	if li.TaxableAmount().IsNegative() {
		return ErrNegativeTaxableAmount
	}
	return nil
}

// Jurisdiction carries the seller and buyer state codes. The split decision
// is made once per invoice, not per line.
type Jurisdiction struct {
	SellerStateCode string `json:"seller_state_code"`
	BuyerStateCode  string `json:"buyer_state_code"`
}

// InterState reports whether the supply crosses state lines, which switches
// the tax treatment from CGST+SGST to a single IGST.
func (j Jurisdiction) InterState() bool {
	return j.SellerStateCode != j.BuyerStateCode
}

// TaxBreakdownRow aggregates the lines sharing one tax rate. Exactly one of
// {CGST+SGST} or {IGST} is non-zero for a given invoice.
type TaxBreakdownRow struct {
	Rate          decimal.Decimal `json:"rate"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	CGST          decimal.Decimal `json:"cgst"`
	SGST          decimal.Decimal `json:"sgst"`
	IGST          decimal.Decimal `json:"igst"`
	TotalTax      decimal.Decimal `json:"total_tax"`
}

// InvoiceTotals is the derived aggregate for one invoice. It is computed
// fresh on every request and never persisted partially.
type InvoiceTotals struct {
	Subtotal      decimal.Decimal   `json:"subtotal"`
	TotalCGST     decimal.Decimal   `json:"total_cgst"`
	TotalSGST     decimal.Decimal   `json:"total_sgst"`
	TotalIGST     decimal.Decimal   `json:"total_igst"`
	TotalTax      decimal.Decimal   `json:"total_tax"`
	GrandTotal    decimal.Decimal   `json:"grand_total"`
	RoundedTotal  decimal.Decimal   `json:"rounded_total"`
	RoundOff      decimal.Decimal   `json:"round_off"`
	AmountInWords string            `json:"amount_in_words"`
	InterState    bool              `json:"inter_state"`
	Breakdown     []TaxBreakdownRow `json:"breakdown"`
}
