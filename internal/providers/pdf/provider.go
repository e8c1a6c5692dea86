package pdf

import (
	"context"
	"io"
	"time"

	taxdomain "github.com/smallbiznis/gstbill/internal/tax/domain"
)

// Party is one side of the invoice (seller or buyer).
type Party struct {
	Name      string
	Address   string
	GSTIN     string
	State     string
	StateCode string
	Phone     string
	Email     string
}

// BankDetails is the remittance block printed on the invoice.
type BankDetails struct {
	AccountHolderName string
	BankName          string
	AccountNumber     string
	Branch            string
	IFSCCode          string
}

// DocumentItem is one printed line of the items table, amounts pre-split.
type DocumentItem struct {
	Description    string
	HSNCode        string
	Quantity       string
	UnitRate       string
	TaxableAmount  string
	TaxRatePercent string
	CGST           string
	SGST           string
	IGST           string
	Total          string
}

// InvoiceDocument is the full deterministic input for one rendered invoice.
type InvoiceDocument struct {
	InvoiceNumber string
	InvoiceDate   time.Time
	DueDate       time.Time
	PlaceOfSupply string

	Seller Party
	Buyer  Party

	Items  []DocumentItem
	Totals taxdomain.InvoiceTotals

	Bank  BankDetails
	Notes string
	Terms string
}

// Provider renders invoice documents. Implementations either return a
// complete document or an error, never partial bytes.
type Provider interface {
	GenerateInvoice(ctx context.Context, doc InvoiceDocument) (io.Reader, error)
}
