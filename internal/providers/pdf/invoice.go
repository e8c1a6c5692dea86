package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

const (
	currencySymbol = "₹"
	dateLayout     = "02 Jan 2006"

	// Free-text boxes are wrapped and capped; overflow is marked with an
	// ellipsis instead of being dropped silently.
	freeTextWidth    = 58
	freeTextMaxLines = 4
)

var (
	headerBg  = props.Color{Red: 235, Green: 235, Blue: 235}
	mutedText = props.Color{Red: 110, Green: 110, Blue: 110}
)

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, doc InvoiceDocument) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)
	interState := doc.Totals.InterState

	// Title bar
	m.AddRows(row.New(12).Add(
		text.NewCol(8, "TAX INVOICE", props.Text{
			Size:  16,
			Style: fontstyle.Bold,
			Top:   2,
		}),
		text.NewCol(4, "ORIGINAL", props.Text{
			Size:  9,
			Align: align.Right,
			Top:   4,
			Color: &mutedText,
		}),
	).WithStyle(&props.Cell{BackgroundColor: &headerBg}))

	// Seller / Buyer
	m.AddRow(42,
		partyCol("Sold By", doc.Seller),
		partyCol("Billed To", doc.Buyer),
	)

	// Invoice Meta
	m.AddRow(14,
		col.New(3).Add(
			text.New("Invoice Number", props.Text{Size: 8, Color: &mutedText}),
			text.New(doc.InvoiceNumber, props.Text{Size: 9, Top: 4, Style: fontstyle.Bold}),
		),
		col.New(3).Add(
			text.New("Invoice Date", props.Text{Size: 8, Color: &mutedText}),
			text.New(doc.InvoiceDate.Format(dateLayout), props.Text{Size: 9, Top: 4}),
		),
		col.New(3).Add(
			text.New("Due Date", props.Text{Size: 8, Color: &mutedText}),
			text.New(doc.DueDate.Format(dateLayout), props.Text{Size: 9, Top: 4}),
		),
		col.New(3).Add(
			text.New("Place of Supply", props.Text{Size: 8, Color: &mutedText}),
			text.New(doc.PlaceOfSupply, props.Text{Size: 9, Top: 4}),
		),
	)

	m.AddRows(line.NewRow(2))

	// Items Table
	m.AddRows(itemHeaderRow(interState))
	items := doc.Items
	if len(items) == 0 {
		// Explicit fallback so the table never renders empty.
		m.AddRow(8, text.NewCol(12, "No items", props.Text{Size: 8, Align: align.Center, Color: &mutedText}))
	}
	for i, item := range items {
		m.AddRows(itemRow(i+1, item, interState))
	}
	m.AddRows(line.NewRow(2))

	// Footer Totals
	m.AddRows(totalRow("Taxable Amount", doc.Totals.Subtotal, false))
	if interState {
		m.AddRows(totalRow("IGST", doc.Totals.TotalIGST, false))
	} else {
		m.AddRows(totalRow("CGST", doc.Totals.TotalCGST, false))
		m.AddRows(totalRow("SGST", doc.Totals.TotalSGST, false))
	}
	m.AddRows(totalRow("Round Off", doc.Totals.RoundOff, false))
	m.AddRows(totalRow("Grand Total", doc.Totals.RoundedTotal, true))

	// Amount in Words
	m.AddRows(row.New(10).Add(
		col.New(12).Add(
			text.New("Amount in Words", props.Text{Size: 8, Color: &mutedText}),
			text.New(doc.Totals.AmountInWords+" Rupees Only", props.Text{Size: 9, Top: 4, Style: fontstyle.Bold}),
		),
	).WithStyle(&props.Cell{BackgroundColor: &headerBg}))

	// Tax Breakdown
	m.AddRow(8, text.NewCol(12, "Tax Summary", props.Text{Size: 9, Style: fontstyle.Bold, Top: 2}))
	m.AddRows(breakdownHeaderRow(interState))
	for _, brk := range doc.Totals.Breakdown {
		m.AddRows(breakdownRow(brk.Rate.String()+"%", brk.TaxableAmount, brk.CGST, brk.SGST, brk.IGST, brk.TotalTax, interState, false))
	}
	m.AddRows(breakdownRow("Total", doc.Totals.Subtotal, doc.Totals.TotalCGST, doc.Totals.TotalSGST, doc.Totals.TotalIGST, doc.Totals.TotalTax, interState, true))

	// Bank Details / Notes
	m.AddRow(30,
		col.New(6).Add(
			text.New("Bank Details", props.Text{Size: 8, Style: fontstyle.Bold}),
			text.New("Account Holder: "+doc.Bank.AccountHolderName, props.Text{Size: 8, Top: 5}),
			text.New("Bank: "+doc.Bank.BankName, props.Text{Size: 8, Top: 9}),
			text.New("Account Number: "+doc.Bank.AccountNumber, props.Text{Size: 8, Top: 13}),
			text.New("IFSC: "+doc.Bank.IFSCCode, props.Text{Size: 8, Top: 17}),
			text.New("Branch: "+doc.Bank.Branch, props.Text{Size: 8, Top: 21}),
		),
		freeTextCol(6, "Notes", doc.Notes),
	)

	// Terms & Conditions
	m.AddRow(24, freeTextCol(12, "Terms & Conditions", doc.Terms))

	// Declaration and signature
	m.AddRow(10, text.NewCol(12,
		"We declare that this invoice shows the actual price of the goods described and that all particulars are true and correct.",
		props.Text{Size: 7, Color: &mutedText}))
	m.AddRow(18,
		col.New(7),
		col.New(5).Add(
			text.New("For "+doc.Seller.Name, props.Text{Size: 8, Align: align.Right}),
			text.New("Authorized Signatory", props.Text{Size: 8, Top: 12, Align: align.Right}),
		),
	)
	m.AddRow(6, text.NewCol(12,
		"This is a computer generated invoice and does not require a physical signature.",
		props.Text{Size: 7, Align: align.Center, Color: &mutedText}))

	generated, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate invoice pdf: %w", err)
	}

	return bytes.NewReader(generated.GetBytes()), nil
}

func partyCol(title string, party Party) core.Col {
	texts := []core.Component{
		text.New(title, props.Text{Size: 8, Color: &mutedText}),
		text.New(party.Name, props.Text{Size: 10, Top: 4, Style: fontstyle.Bold}),
	}
	top := 9.0
	for _, addr := range wrapText(party.Address, 44, 3) {
		texts = append(texts, text.New(addr, props.Text{Size: 8, Top: top}))
		top += 4
	}
	if party.GSTIN != "" {
		texts = append(texts, text.New("GSTIN: "+party.GSTIN, props.Text{Size: 8, Top: top}))
		top += 4
	}
	texts = append(texts, text.New(fmt.Sprintf("State: %s (%s)", party.State, party.StateCode), props.Text{Size: 8, Top: top}))
	top += 4
	if party.Phone != "" {
		texts = append(texts, text.New("Phone: "+party.Phone, props.Text{Size: 8, Top: top}))
		top += 4
	}
	if party.Email != "" {
		texts = append(texts, text.New("Email: "+party.Email, props.Text{Size: 8, Top: top}))
	}
	return col.New(6).Add(texts...)
}

func itemHeaderRow(interState bool) core.Row {
	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center}
	cols := []core.Col{
		text.NewCol(1, "No.", head),
	}
	if interState {
		cols = append(cols,
			text.NewCol(3, "Description", head),
			text.NewCol(1, "HSN/SAC", head),
			text.NewCol(1, "Qty", head),
			text.NewCol(1, "Rate", head),
			text.NewCol(2, "Amount", head),
			text.NewCol(1, "Tax %", head),
			text.NewCol(1, "IGST", head),
			text.NewCol(1, "Total", head),
		)
	} else {
		cols = append(cols,
			text.NewCol(2, "Description", head),
			text.NewCol(1, "HSN/SAC", head),
			text.NewCol(1, "Qty", head),
			text.NewCol(1, "Rate", head),
			text.NewCol(2, "Amount", head),
			text.NewCol(1, "Tax %", head),
			text.NewCol(1, "CGST", head),
			text.NewCol(1, "SGST", head),
			text.NewCol(1, "Total", head),
		)
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: &headerBg})
}

func itemRow(no int, item DocumentItem, interState bool) core.Row {
	cell := props.Text{Size: 8}
	num := props.Text{Size: 8, Align: align.Right}
	cols := []core.Col{
		text.NewCol(1, fmt.Sprintf("%d", no), props.Text{Size: 8, Align: align.Center}),
	}
	if interState {
		cols = append(cols,
			text.NewCol(3, item.Description, cell),
			text.NewCol(1, item.HSNCode, cell),
			text.NewCol(1, item.Quantity, num),
			text.NewCol(1, item.UnitRate, num),
			text.NewCol(2, item.TaxableAmount, num),
			text.NewCol(1, item.TaxRatePercent, num),
			text.NewCol(1, item.IGST, num),
			text.NewCol(1, item.Total, num),
		)
	} else {
		cols = append(cols,
			text.NewCol(2, item.Description, cell),
			text.NewCol(1, item.HSNCode, cell),
			text.NewCol(1, item.Quantity, num),
			text.NewCol(1, item.UnitRate, num),
			text.NewCol(2, item.TaxableAmount, num),
			text.NewCol(1, item.TaxRatePercent, num),
			text.NewCol(1, item.CGST, num),
			text.NewCol(1, item.SGST, num),
			text.NewCol(1, item.Total, num),
		)
	}
	return row.New(7).Add(cols...)
}

func totalRow(label string, amount decimal.Decimal, bold bool) core.Row {
	style := props.Text{Size: 9}
	if bold {
		style = props.Text{Size: 10, Style: fontstyle.Bold}
	}
	value := style
	value.Align = align.Right
	return row.New(6).Add(
		col.New(7),
		text.NewCol(3, label, style),
		text.NewCol(2, money(amount), value),
	)
}

func breakdownHeaderRow(interState bool) core.Row {
	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center}
	cols := []core.Col{
		text.NewCol(2, "Tax Rate", head),
		text.NewCol(4, "Taxable Amount", head),
	}
	if interState {
		cols = append(cols,
			text.NewCol(3, "IGST", head),
			text.NewCol(3, "Total Tax", head),
		)
	} else {
		cols = append(cols,
			text.NewCol(2, "CGST", head),
			text.NewCol(2, "SGST", head),
			text.NewCol(2, "Total Tax", head),
		)
	}
	return row.New(7).Add(cols...).WithStyle(&props.Cell{BackgroundColor: &headerBg})
}

func breakdownRow(label string, taxable, cgst, sgst, igst, total decimal.Decimal, interState, bold bool) core.Row {
	cell := props.Text{Size: 8, Align: align.Center}
	if bold {
		cell.Style = fontstyle.Bold
	}
	num := cell
	num.Align = align.Right
	cols := []core.Col{
		text.NewCol(2, label, cell),
		text.NewCol(4, money(taxable), num),
	}
	if interState {
		cols = append(cols,
			text.NewCol(3, money(igst), num),
			text.NewCol(3, money(total), num),
		)
	} else {
		cols = append(cols,
			text.NewCol(2, money(cgst), num),
			text.NewCol(2, money(sgst), num),
			text.NewCol(2, money(total), num),
		)
	}
	return row.New(6).Add(cols...)
}

func freeTextCol(size int, title, content string) core.Col {
	texts := []core.Component{
		text.New(title, props.Text{Size: 8, Style: fontstyle.Bold}),
	}
	top := 5.0
	for _, ln := range wrapText(content, freeTextWidth, freeTextMaxLines) {
		texts = append(texts, text.New(ln, props.Text{Size: 8, Top: top}))
		top += 4
	}
	return col.New(size).Add(texts...)
}

func money(amount decimal.Decimal) string {
	return currencySymbol + amount.StringFixed(2)
}

// wrapText word-wraps content to maxWidth runes per line and caps the result
// at maxLines. Dropped content is signalled with a trailing ellipsis.
func wrapText(content string, maxWidth, maxLines int) []string {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return nil
	}

	lines := []string{}
	current := ""
	for _, word := range fields {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= maxWidth:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] += " …"
	}
	return lines
}
