package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	taxdomain "github.com/smallbiznis/gstbill/internal/tax/domain"
)

// Invoice is an issued tax invoice. The totals columns are a snapshot of the
// computation at issue time; rendering recomputes from the stored items and
// refuses to print if the two drift apart.
type Invoice struct {
	ID            snowflake.ID `gorm:"primaryKey" json:"id"`
	InvoiceNumber string       `gorm:"uniqueIndex;not null" json:"invoice_number"`
	CustomerID    snowflake.ID `gorm:"index;not null" json:"customer_id"`
	InvoiceDate   time.Time    `gorm:"not null" json:"invoice_date"`
	DueDate       time.Time    `gorm:"not null" json:"due_date"`
	PlaceOfSupply string       `gorm:"type:text" json:"place_of_supply"`

	SellerStateCode string `gorm:"type:text;not null" json:"seller_state_code"`
	BuyerStateCode  string `gorm:"type:text;not null" json:"buyer_state_code"`
	InterState      bool   `gorm:"not null" json:"inter_state"`

	Subtotal      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"subtotal"`
	TotalCGST     decimal.Decimal `gorm:"column:total_cgst;type:numeric(14,2);not null" json:"total_cgst"`
	TotalSGST     decimal.Decimal `gorm:"column:total_sgst;type:numeric(14,2);not null" json:"total_sgst"`
	TotalIGST     decimal.Decimal `gorm:"column:total_igst;type:numeric(14,2);not null" json:"total_igst"`
	TotalTax      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_tax"`
	GrandTotal    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"grand_total"`
	RoundedTotal  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"rounded_total"`
	RoundOff      decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"round_off"`
	AmountInWords string          `gorm:"type:text" json:"amount_in_words"`

	Notes string `gorm:"type:text" json:"notes,omitempty"`
	Terms string `gorm:"type:text" json:"terms,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Items []InvoiceItem `gorm:"-" json:"items,omitempty"`
}

func (Invoice) TableName() string { return "invoices" }

// InvoiceItem is one persisted invoice line. The tax split columns are
// per-line display amounts; authoritative totals come from the per-rate
// breakdown on the parent invoice.
type InvoiceItem struct {
	ID        snowflake.ID  `gorm:"primaryKey" json:"id"`
	InvoiceID snowflake.ID  `gorm:"index;not null" json:"invoice_id"`
	ProductID *snowflake.ID `gorm:"index" json:"product_id,omitempty"`

	Description    string          `gorm:"type:text;not null" json:"description"`
	HSNCode        string          `gorm:"column:hsn_code;type:text" json:"hsn_code"`
	Quantity       decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantity"`
	UnitRate       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"unit_rate"`
	TaxRatePercent decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"tax_rate_percent"`
	Discount       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"discount"`

	TaxableAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"taxable_amount"`
	CGST          decimal.Decimal `gorm:"column:cgst;type:numeric(14,2);not null" json:"cgst"`
	SGST          decimal.Decimal `gorm:"column:sgst;type:numeric(14,2);not null" json:"sgst"`
	IGST          decimal.Decimal `gorm:"column:igst;type:numeric(14,2);not null" json:"igst"`
	LineTotal     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"line_total"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }

// TaxLine projects the stored item back into the calculator's input shape.
func (it InvoiceItem) TaxLine() taxdomain.LineItem {
	return taxdomain.LineItem{
		Description:    it.Description,
		HSNCode:        it.HSNCode,
		Quantity:       it.Quantity,
		UnitRate:       it.UnitRate,
		TaxRatePercent: it.TaxRatePercent,
		Discount:       it.Discount,
	}
}
