package pdf

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	taxdomain "github.com/smallbiznis/gstbill/internal/tax/domain"
	taxservice "github.com/smallbiznis/gstbill/internal/tax/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(t *testing.T, interState bool) InvoiceDocument {
	t.Helper()

	jurisdiction := taxdomain.Jurisdiction{SellerStateCode: "27", BuyerStateCode: "27"}
	if interState {
		jurisdiction.BuyerStateCode = "29"
	}
	totals, err := taxservice.ComputeTotals([]taxdomain.LineItem{{
		Description:    "USB-C Cable",
		HSNCode:        "8544",
		Quantity:       decimal.NewFromInt(2),
		UnitRate:       decimal.NewFromInt(100),
		TaxRatePercent: decimal.NewFromInt(18),
		Discount:       decimal.Zero,
	}}, jurisdiction)
	require.NoError(t, err)

	return InvoiceDocument{
		InvoiceNumber: "INV-20250101-000001",
		InvoiceDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		PlaceOfSupply: "Maharashtra",
		Seller: Party{
			Name:      "Acme Traders",
			Address:   "12 MG Road, Pune, Maharashtra 411001",
			GSTIN:     "27AAAPL1234C1ZV",
			State:     "Maharashtra",
			StateCode: "27",
			Phone:     "+91 9000000000",
			Email:     "billing@acmetraders.example",
		},
		Buyer: Party{
			Name:      "Bharat Electronics Retail",
			Address:   "5 Brigade Road, Bengaluru, Karnataka 560001",
			State:     "Karnataka",
			StateCode: "29",
		},
		Items: []DocumentItem{{
			Description:    "USB-C Cable",
			HSNCode:        "8544",
			Quantity:       "2",
			UnitRate:       "100.00",
			TaxableAmount:  "200.00",
			TaxRatePercent: "18",
			CGST:           "18.00",
			SGST:           "18.00",
			Total:          "236.00",
		}},
		Totals: totals,
		Bank: BankDetails{
			AccountHolderName: "Acme Traders",
			BankName:          "State Bank of India",
			AccountNumber:     "000123456789",
			Branch:            "Pune Camp",
			IFSCCode:          "SBIN0000300",
		},
		Notes: "Thank you for your business.",
		Terms: "Payment due within 15 days of the invoice date.",
	}
}

func TestGenerateInvoice(t *testing.T) {
	provider := New()

	out, err := provider.GenerateInvoice(context.Background(), sampleDocument(t, false))
	require.NoError(t, err)

	raw, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestGenerateInvoice_InterState(t *testing.T) {
	provider := New()

	out, err := provider.GenerateInvoice(context.Background(), sampleDocument(t, true))
	require.NoError(t, err)

	raw, err := io.ReadAll(out)
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
}

func TestGenerateInvoice_EmptyItems(t *testing.T) {
	provider := New()

	doc := sampleDocument(t, false)
	doc.Items = nil

	// Renders a placeholder row rather than failing.
	out, err := provider.GenerateInvoice(context.Background(), doc)
	require.NoError(t, err)
	assert.NotNil(t, out)
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9, 4)
	assert.Equal(t, []string{"one two", "three", "four"}, lines)

	// Overflow is truncated with an explicit marker.
	lines = wrapText(strings.Repeat("word ", 40), 20, 3)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[2], "…"))

	assert.Nil(t, wrapText("   ", 10, 2))
}
