package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	companydomain "github.com/smallbiznis/gstbill/internal/company/domain"
	"github.com/smallbiznis/gstbill/internal/config"
	customerdomain "github.com/smallbiznis/gstbill/internal/customer/domain"
	"github.com/smallbiznis/gstbill/internal/invoice/domain"
	"github.com/smallbiznis/gstbill/internal/invoice/format"
	productdomain "github.com/smallbiznis/gstbill/internal/product/domain"
	"github.com/smallbiznis/gstbill/internal/providers/pdf"
	taxdomain "github.com/smallbiznis/gstbill/internal/tax/domain"
	taxservice "github.com/smallbiznis/gstbill/internal/tax/service"
	"github.com/smallbiznis/gstbill/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	oneHundred = decimal.NewFromInt(100)
	twoHundred = decimal.NewFromInt(200)
)

type Params struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Config config.Config

	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	ProductRepo  productdomain.Repository
	CompanyRepo  companydomain.Repository
	PDF          pdf.Provider
}

type Service struct {
	db     *gorm.DB
	log    *zap.Logger
	genID  *snowflake.Node
	config config.Config

	repo         domain.Repository
	customerRepo customerdomain.Repository
	productRepo  productdomain.Repository
	companyRepo  companydomain.Repository
	pdf          pdf.Provider
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("invoice.service"),
		genID:        p.GenID,
		config:       p.Config,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		productRepo:  p.ProductRepo,
		companyRepo:  p.CompanyRepo,
		pdf:          p.PDF,
	}
}

type stockDecrement struct {
	productID snowflake.ID
	quantity  decimal.Decimal
}

func (s *Service) Create(ctx context.Context, req domain.CreateInvoiceRequest) (domain.Invoice, error) {
	customerID, err := snowflake.ParseString(req.CustomerID)
	if err != nil {
		return domain.Invoice{}, customerdomain.ErrInvalidID
	}
	customer, err := s.customerRepo.FindByID(ctx, s.db, customerID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if customer == nil {
		return domain.Invoice{}, customerdomain.ErrCustomerNotFound
	}

	company, err := s.companyRepo.Get(ctx, s.db)
	if err != nil {
		return domain.Invoice{}, err
	}
	if company == nil {
		return domain.Invoice{}, companydomain.ErrNotConfigured
	}

	invoiceDate := req.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now().UTC()
	}
	dueDate := req.DueDate
	if dueDate.IsZero() {
		dueDate = invoiceDate
	}

	items, decrements, err := s.buildItems(ctx, req.Items)
	if err != nil {
		return domain.Invoice{}, err
	}

	jurisdiction := taxdomain.Jurisdiction{
		SellerStateCode: company.StateCode,
		BuyerStateCode:  customer.StateCode,
	}
	lines := make([]taxdomain.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.TaxLine())
	}
	totals, err := taxservice.ComputeTotals(lines, jurisdiction)
	if err != nil {
		return domain.Invoice{}, err
	}
	applyLineSplit(items, totals.InterState)

	placeOfSupply := strings.TrimSpace(req.PlaceOfSupply)
	if placeOfSupply == "" {
		placeOfSupply = customer.State
	}
	notes := req.Notes
	if notes == "" {
		notes = company.DefaultNotes
	}
	terms := req.Terms
	if terms == "" {
		terms = company.DefaultTerms
	}

	template := s.config.InvoiceNumberTemplate
	if template == "" {
		template = format.DefaultInvoiceNumberTemplate
	}

	invoice := domain.Invoice{
		ID:            s.genID.Generate(),
		CustomerID:    customer.ID,
		InvoiceDate:   invoiceDate,
		DueDate:       dueDate,
		PlaceOfSupply: placeOfSupply,

		SellerStateCode: jurisdiction.SellerStateCode,
		BuyerStateCode:  jurisdiction.BuyerStateCode,
		InterState:      totals.InterState,

		Subtotal:      totals.Subtotal,
		TotalCGST:     totals.TotalCGST,
		TotalSGST:     totals.TotalSGST,
		TotalIGST:     totals.TotalIGST,
		TotalTax:      totals.TotalTax,
		GrandTotal:    totals.GrandTotal,
		RoundedTotal:  totals.RoundedTotal,
		RoundOff:      totals.RoundOff,
		AmountInWords: totals.AmountInWords,

		Notes: notes,
		Terms: terms,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		seq, err := s.repo.CountOnDay(ctx, tx, invoiceDate)
		if err != nil {
			return err
		}
		number, err := format.FormatInvoiceNumber(template, invoiceDate, seq+1)
		if err != nil {
			return err
		}
		invoice.InvoiceNumber = number

		for i := range items {
			items[i].ID = s.genID.Generate()
			items[i].InvoiceID = invoice.ID
		}
		for _, dec := range decrements {
			if err := s.productRepo.AdjustStock(ctx, tx, dec.productID, dec.quantity.Neg()); err != nil {
				return err
			}
		}
		return s.repo.Insert(ctx, tx, &invoice, items)
	})
	if err != nil {
		return domain.Invoice{}, err
	}

	invoice.Items = items
	s.log.Info("invoice created",
		zap.String("invoice_number", invoice.InvoiceNumber),
		zap.String("customer_id", customer.ID.String()),
		zap.String("rounded_total", invoice.RoundedTotal.String()),
	)
	return invoice, nil
}

// buildItems resolves product references into concrete invoice lines and
// collects the stock decrements to apply at commit time.
func (s *Service) buildItems(ctx context.Context, reqs []domain.CreateInvoiceItemRequest) ([]domain.InvoiceItem, []stockDecrement, error) {
	items := make([]domain.InvoiceItem, 0, len(reqs))
	decrements := make([]stockDecrement, 0, len(reqs))

	for _, in := range reqs {
		item := domain.InvoiceItem{
			Description: strings.TrimSpace(in.Description),
			HSNCode:     strings.TrimSpace(in.HSNCode),
			Quantity:    in.Quantity,
			Discount:    in.Discount,
		}

		if in.ProductID != "" {
			productID, err := snowflake.ParseString(in.ProductID)
			if err != nil {
				return nil, nil, productdomain.ErrInvalidID
			}
			product, err := s.productRepo.FindByID(ctx, s.db, productID)
			if err != nil {
				return nil, nil, err
			}
			if product == nil {
				return nil, nil, productdomain.ErrProductNotFound
			}
			if product.StockQuantity.LessThan(in.Quantity) {
				return nil, nil, productdomain.ErrInsufficientStock
			}

			item.ProductID = &productID
			item.UnitRate = product.UnitPrice
			item.TaxRatePercent = product.TaxRatePercent
			if item.Description == "" {
				item.Description = product.Name
			}
			if item.HSNCode == "" {
				item.HSNCode = product.HSNCode
			}
			decrements = append(decrements, stockDecrement{productID: productID, quantity: in.Quantity})
		}

		if in.UnitRate != nil {
			item.UnitRate = *in.UnitRate
		}
		if in.TaxRatePercent != nil {
			item.TaxRatePercent = *in.TaxRatePercent
		}
		items = append(items, item)
	}
	return items, decrements, nil
}

// applyLineSplit fills the per-line display amounts. These mirror the per-rate
// breakdown computation but are rounded per line, so they are presentation
// values only.
func applyLineSplit(items []domain.InvoiceItem, interState bool) {
	for i := range items {
		taxable := items[i].TaxLine().TaxableAmount()
		items[i].TaxableAmount = taxable
		items[i].CGST = decimal.Zero
		items[i].SGST = decimal.Zero
		items[i].IGST = decimal.Zero
		if interState {
			items[i].IGST = taxable.Mul(items[i].TaxRatePercent).Div(oneHundred).Round(2)
		} else {
			half := taxable.Mul(items[i].TaxRatePercent).Div(twoHundred).Round(2)
			items[i].CGST = half
			items[i].SGST = half
		}
		items[i].LineTotal = taxable.Add(items[i].CGST).Add(items[i].SGST).Add(items[i].IGST)
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Invoice, error) {
	invoiceID, err := snowflake.ParseString(id)
	if err != nil {
		return domain.Invoice{}, domain.ErrInvalidID
	}
	invoice, err := s.repo.FindByID(ctx, s.db, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if invoice == nil {
		return domain.Invoice{}, domain.ErrInvoiceNotFound
	}
	items, err := s.repo.ListItems(ctx, s.db, invoice.ID)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice.Items = items
	return *invoice, nil
}

func (s *Service) List(ctx context.Context, req domain.ListInvoiceRequest) (domain.ListInvoiceResponse, error) {
	req.Normalize()

	filter := domain.ListInvoiceFilter{}
	if req.CustomerID != "" {
		customerID, err := snowflake.ParseString(req.CustomerID)
		if err != nil {
			return domain.ListInvoiceResponse{}, customerdomain.ErrInvalidID
		}
		filter.CustomerID = customerID
	}

	invoices, total, err := s.repo.List(ctx, s.db, filter, req.Pagination)
	if err != nil {
		return domain.ListInvoiceResponse{}, err
	}
	return domain.ListInvoiceResponse{
		PageInfo: pagination.BuildPageInfo(req.Pagination, total),
		Invoices: invoices,
	}, nil
}

func (s *Service) RenderPDF(ctx context.Context, id string) (domain.RenderPDFResponse, error) {
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.RenderPDFResponse{}, err
	}

	company, err := s.companyRepo.Get(ctx, s.db)
	if err != nil {
		return domain.RenderPDFResponse{}, err
	}
	if company == nil {
		return domain.RenderPDFResponse{}, companydomain.ErrNotConfigured
	}
	customer, err := s.customerRepo.FindByID(ctx, s.db, invoice.CustomerID)
	if err != nil {
		return domain.RenderPDFResponse{}, err
	}
	if customer == nil {
		return domain.RenderPDFResponse{}, customerdomain.ErrCustomerNotFound
	}

	lines := make([]taxdomain.LineItem, 0, len(invoice.Items))
	for _, item := range invoice.Items {
		lines = append(lines, item.TaxLine())
	}
	totals, err := taxservice.ComputeTotals(lines, taxdomain.Jurisdiction{
		SellerStateCode: invoice.SellerStateCode,
		BuyerStateCode:  invoice.BuyerStateCode,
	})
	if err != nil {
		return domain.RenderPDFResponse{}, err
	}
	if !totals.GrandTotal.Equal(invoice.GrandTotal) || !totals.RoundedTotal.Equal(invoice.RoundedTotal) {
		s.log.Error("stored invoice totals drifted from recomputation",
			zap.String("invoice_number", invoice.InvoiceNumber),
			zap.String("stored_grand_total", invoice.GrandTotal.String()),
			zap.String("computed_grand_total", totals.GrandTotal.String()),
		)
		return domain.RenderPDFResponse{}, domain.ErrTotalsMismatch
	}

	doc := pdf.InvoiceDocument{
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate,
		DueDate:       invoice.DueDate,
		PlaceOfSupply: invoice.PlaceOfSupply,
		Seller: pdf.Party{
			Name:      company.Name,
			Address:   company.Address,
			GSTIN:     company.GSTIN,
			State:     company.State,
			StateCode: company.StateCode,
			Phone:     company.Phone,
			Email:     company.Email,
		},
		Buyer: pdf.Party{
			Name:      customer.Name,
			Address:   customer.Address,
			GSTIN:     customer.GSTIN,
			State:     customer.State,
			StateCode: customer.StateCode,
			Phone:     customer.Phone,
			Email:     customer.Email,
		},
		Items:  documentItems(invoice.Items),
		Totals: totals,
		Bank: pdf.BankDetails{
			AccountHolderName: company.BankAccountHolderName,
			BankName:          company.BankName,
			AccountNumber:     company.BankAccountNumber,
			Branch:            company.BankBranch,
			IFSCCode:          company.BankIFSCCode,
		},
		Notes: invoice.Notes,
		Terms: invoice.Terms,
	}

	reader, err := s.pdf.GenerateInvoice(ctx, doc)
	if err != nil {
		return domain.RenderPDFResponse{}, err
	}
	content, err := io.ReadAll(reader)
	if err != nil {
		return domain.RenderPDFResponse{}, fmt.Errorf("read invoice pdf: %w", err)
	}

	return domain.RenderPDFResponse{
		Filename: fmt.Sprintf("Invoice-%s.pdf", invoice.InvoiceNumber),
		Content:  content,
	}, nil
}

func documentItems(items []domain.InvoiceItem) []pdf.DocumentItem {
	out := make([]pdf.DocumentItem, 0, len(items))
	for _, item := range items {
		out = append(out, pdf.DocumentItem{
			Description:    item.Description,
			HSNCode:        item.HSNCode,
			Quantity:       item.Quantity.String(),
			UnitRate:       item.UnitRate.StringFixed(2),
			TaxableAmount:  item.TaxableAmount.StringFixed(2),
			TaxRatePercent: item.TaxRatePercent.String() + "%",
			CGST:           item.CGST.StringFixed(2),
			SGST:           item.SGST.StringFixed(2),
			IGST:           item.IGST.StringFixed(2),
			Total:          item.LineTotal.StringFixed(2),
		})
	}
	return out
}
