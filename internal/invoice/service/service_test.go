package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	companydomain "github.com/smallbiznis/gstbill/internal/company/domain"
	companyrepo "github.com/smallbiznis/gstbill/internal/company/repository"
	"github.com/smallbiznis/gstbill/internal/config"
	customerdomain "github.com/smallbiznis/gstbill/internal/customer/domain"
	customerrepo "github.com/smallbiznis/gstbill/internal/customer/repository"
	"github.com/smallbiznis/gstbill/internal/invoice/domain"
	invoicerepo "github.com/smallbiznis/gstbill/internal/invoice/repository"
	productdomain "github.com/smallbiznis/gstbill/internal/product/domain"
	productrepo "github.com/smallbiznis/gstbill/internal/product/repository"
	"github.com/smallbiznis/gstbill/internal/providers/pdf"
	taxdomain "github.com/smallbiznis/gstbill/internal/tax/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc      domain.Service
	db       *gorm.DB
	company  companydomain.Profile
	customer customerdomain.Customer
	product  productdomain.Product
}

func d(v string) decimal.Decimal {
	out, _ := decimal.NewFromString(v)
	return out
}

func setup(t *testing.T, buyerStateCode string) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&companydomain.Profile{},
		&customerdomain.Customer{},
		&productdomain.Product{},
		&domain.Invoice{},
		&domain.InvoiceItem{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	company := companydomain.Profile{
		ID:        node.Generate(),
		Name:      "Acme Traders",
		Address:   "12 MG Road, Bengaluru",
		GSTIN:     "29AAAAA0000A1Z5",
		State:     "Karnataka",
		StateCode: "29",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&company).Error)

	customer := customerdomain.Customer{
		ID:        node.Generate(),
		Name:      "Retail Mart",
		Address:   "4 Park Street, Kolkata",
		State:     "Karnataka",
		StateCode: buyerStateCode,
	}
	require.NoError(t, db.Create(&customer).Error)

	product := productdomain.Product{
		ID:             node.Generate(),
		Name:           "Steel Bolt M8",
		HSNCode:        "7318",
		UnitPrice:      d("100"),
		TaxRatePercent: d("18"),
		StockQuantity:  d("50"),
		Active:         true,
	}
	require.NoError(t, db.Create(&product).Error)

	svc := New(Params{
		DB:           db,
		Log:          zap.NewNop(),
		GenID:        node,
		Config:       config.Config{},
		Repo:         invoicerepo.Provide(),
		CustomerRepo: customerrepo.Provide(),
		ProductRepo:  productrepo.Provide(),
		CompanyRepo:  companyrepo.Provide(),
		PDF:          pdf.New(),
	})

	return &fixture{svc: svc, db: db, company: company, customer: customer, product: product}
}

func TestCreateInvoiceIntraState(t *testing.T) {
	fx := setup(t, "29")
	ctx := context.Background()

	inv, err := fx.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID: fx.customer.ID.String(),
		Items: []domain.CreateInvoiceItemRequest{
			{ProductID: fx.product.ID.String(), Quantity: d("2")},
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(inv.InvoiceNumber, "INV-"))
	assert.True(t, strings.HasSuffix(inv.InvoiceNumber, "-000001"))
	assert.False(t, inv.InterState)
	assert.True(t, inv.Subtotal.Equal(d("200")))
	assert.True(t, inv.TotalCGST.Equal(d("18")))
	assert.True(t, inv.TotalSGST.Equal(d("18")))
	assert.True(t, inv.TotalIGST.IsZero())
	assert.True(t, inv.GrandTotal.Equal(d("236")))
	assert.True(t, inv.RoundedTotal.Equal(d("236")))
	assert.Equal(t, "Two Hundred and Thirty Six", inv.AmountInWords)

	require.Len(t, inv.Items, 1)
	assert.Equal(t, "Steel Bolt M8", inv.Items[0].Description)
	assert.Equal(t, "7318", inv.Items[0].HSNCode)
	assert.True(t, inv.Items[0].UnitRate.Equal(d("100")))

	// Stock decremented inside the same transaction.
	var product productdomain.Product
	require.NoError(t, fx.db.First(&product, "id = ?", fx.product.ID).Error)
	assert.True(t, product.StockQuantity.Equal(d("48")), "got stock %s", product.StockQuantity)
}

func TestCreateInvoiceInterState(t *testing.T) {
	fx := setup(t, "27")
	ctx := context.Background()

	inv, err := fx.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID: fx.customer.ID.String(),
		Items: []domain.CreateInvoiceItemRequest{
			{ProductID: fx.product.ID.String(), Quantity: d("2")},
		},
	})
	require.NoError(t, err)

	assert.True(t, inv.InterState)
	assert.True(t, inv.TotalIGST.Equal(d("36")))
	assert.True(t, inv.TotalCGST.IsZero())
	assert.True(t, inv.TotalSGST.IsZero())
	require.Len(t, inv.Items, 1)
	assert.True(t, inv.Items[0].IGST.Equal(d("36")))
}

func TestCreateInvoiceSequencePerDay(t *testing.T) {
	fx := setup(t, "29")
	ctx := context.Background()
	day := time.Date(2026, time.April, 1, 11, 0, 0, 0, time.UTC)

	first, err := fx.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:  fx.customer.ID.String(),
		InvoiceDate: day,
		Items: []domain.CreateInvoiceItemRequest{
			{ProductID: fx.product.ID.String(), Quantity: d("1")},
		},
	})
	require.NoError(t, err)
	second, err := fx.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID:  fx.customer.ID.String(),
		InvoiceDate: day,
		Items: []domain.CreateInvoiceItemRequest{
			{ProductID: fx.product.ID.String(), Quantity: d("1")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-20260401-000001", first.InvoiceNumber)
	assert.Equal(t, "INV-20260401-000002", second.InvoiceNumber)
}

func TestCreateInvoiceInsufficientStock(t *testing.T) {
	fx := setup(t, "29")

	_, err := fx.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		CustomerID: fx.customer.ID.String(),
		Items: []domain.CreateInvoiceItemRequest{
			{ProductID: fx.product.ID.String(), Quantity: d("51")},
		},
	})
	assert.ErrorIs(t, err, productdomain.ErrInsufficientStock)
}

func TestCreateInvoiceNegativeTaxableRejected(t *testing.T) {
	fx := setup(t, "29")
	rate := d("100")
	taxRate := d("18")

	_, err := fx.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		CustomerID: fx.customer.ID.String(),
		Items: []domain.CreateInvoiceItemRequest{
			{
				Description:    "Over-discounted line",
				Quantity:       d("1"),
				UnitRate:       &rate,
				TaxRatePercent: &taxRate,
				Discount:       d("150"),
			},
		},
	})
	assert.ErrorIs(t, err, taxdomain.ErrNegativeTaxableAmount)
}

func TestCreateInvoiceUnknownCustomer(t *testing.T) {
	fx := setup(t, "29")

	_, err := fx.svc.Create(context.Background(), domain.CreateInvoiceRequest{
		CustomerID: "123456789",
		Items:      nil,
	})
	assert.ErrorIs(t, err, customerdomain.ErrCustomerNotFound)
}

func TestGetByIDNotFound(t *testing.T) {
	fx := setup(t, "29")

	_, err := fx.svc.GetByID(context.Background(), "987654321")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)

	_, err = fx.svc.GetByID(context.Background(), "not-a-number")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestRenderPDF(t *testing.T) {
	fx := setup(t, "29")
	ctx := context.Background()

	inv, err := fx.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID: fx.customer.ID.String(),
		Notes:      "Thank you for your business.",
		Items: []domain.CreateInvoiceItemRequest{
			{ProductID: fx.product.ID.String(), Quantity: d("3"), Discount: d("10")},
		},
	})
	require.NoError(t, err)

	out, err := fx.svc.RenderPDF(ctx, inv.ID.String())
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("Invoice-%s.pdf", inv.InvoiceNumber), out.Filename)
	require.NotEmpty(t, out.Content)
	assert.True(t, strings.HasPrefix(string(out.Content[:5]), "%PDF-"))
}

func TestRenderPDFTotalsMismatch(t *testing.T) {
	fx := setup(t, "29")
	ctx := context.Background()

	inv, err := fx.svc.Create(ctx, domain.CreateInvoiceRequest{
		CustomerID: fx.customer.ID.String(),
		Items: []domain.CreateInvoiceItemRequest{
			{ProductID: fx.product.ID.String(), Quantity: d("1")},
		},
	})
	require.NoError(t, err)

	// Tamper with a stored line to force drift between the snapshot and the
	// recomputation.
	require.NoError(t, fx.db.Model(&domain.InvoiceItem{}).
		Where("invoice_id = ?", inv.ID).
		Update("unit_rate", d("999")).Error)

	_, err = fx.svc.RenderPDF(ctx, inv.ID.String())
	assert.ErrorIs(t, err, domain.ErrTotalsMismatch)
}
